package render

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/yosintv/matchsite/internal/pkg/config"
	"github.com/yosintv/matchsite/internal/pkg/localtime"
	"github.com/yosintv/matchsite/internal/pkg/models"
)

// Run start fixed to the UTC calendar date of kickoff 1700000000.
var testNow = time.Date(2023, 11, 14, 9, 0, 0, 0, time.UTC)

var testTemplates = &Templates{
	Day: `<html><head><title>{{PAGE_TITLE}}</title></head><body>` +
		`<nav>{{WEEKLY_MENU}}</nav>` +
		`<main data-date="{{SELECTED_DATE}}" data-path="{{CURRENT_PATH}}">{{MATCH_LISTING}}</main>` +
		`</body></html>`,
	Match: `<html><body><h1>{{FIXTURE}}</h1>` +
		`<p class="league">{{LEAGUE}}</p><p class="venue">{{VENUE}}</p>` +
		`<time data-unix="{{UNIX}}">{{LOCAL_DATE}} {{LOCAL_TIME}}</time>` +
		`<div id="rows">{{BROADCAST_ROWS}}</div><div id="faq">{{FAQ_COUNTRY_ROWS}}</div>` +
		`</body></html>`,
	Channel: `<html><body><h1>{{CHANNEL_NAME}}</h1>{{MATCH_LISTING}}</body></html>`,
}

func newTestRenderer(modify func(*Site)) *Renderer {
	site := Site{
		Domain:         "https://tv.example.com",
		Locale:         "en",
		PathLayout:     config.LayoutNested,
		Clock:          localtime.New(0, testNow),
		TopLeagues:     map[string]bool{"Premier League": true},
		SponsorCadence: 10,
	}
	if modify != nil {
		modify(&site)
	}
	return New(site, testTemplates)
}

func parsePage(t *testing.T, page Page) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Content))
	if err != nil {
		t.Fatalf("failed to parse %s: %v", page.Path, err)
	}
	return doc
}

func testMatch(id string, kickoff int64, fixture string) models.MatchRecord {
	return models.MatchRecord{MatchID: id, Kickoff: models.Epoch(kickoff), Fixture: fixture}
}
