package render

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/yosintv/matchsite/internal/pkg/localtime"
	"github.com/yosintv/matchsite/internal/pkg/models"
	"github.com/yosintv/matchsite/internal/pkg/slug"
)

// ChannelIndex maps a channel display name to the matches it broadcasts.
// Accumulated while match pages render, consumed by the channel renderer.
type ChannelIndex map[string][]models.MatchRecord

// RenderMatches renders one detail page per match and returns the pages
// together with the channel index built along the way. A match that cannot
// be rendered is skipped and reported; it never aborts the batch.
func (r *Renderer) RenderMatches(matches []models.MatchRecord) ([]Page, ChannelIndex) {
	pages := make([]Page, 0, len(matches))
	index := make(ChannelIndex)

	for i := range matches {
		m := &matches[i]
		page, err := r.renderMatch(m)
		if err != nil {
			slog.Warn("Skipping match page", "match_id", m.MatchID, "error", err)
			continue
		}
		pages = append(pages, page)

		for _, bc := range m.TV {
			for _, ch := range bc.Channels {
				if ch == "" {
					continue
				}
				index[ch] = append(index[ch], *m)
			}
		}
	}

	return pages, index
}

func (r *Renderer) renderMatch(m *models.MatchRecord) (Page, error) {
	if m.Fixture == "" {
		return Page{}, fmt.Errorf("fixture name is empty")
	}
	if slug.Make(m.Fixture) == "" {
		return Page{}, fmt.Errorf("fixture name %q has no slug", m.Fixture)
	}

	kickoff := r.site.Clock.Localize(m.KickoffUnix())

	var rows, faq strings.Builder
	countries := 0
	for _, bc := range m.TV {
		if bc.Country == "" || len(bc.Channels) == 0 {
			continue
		}

		var pills []string
		for _, ch := range bc.Channels {
			if ch == "" {
				continue
			}
			pills = append(pills, fmt.Sprintf(`<a href="%s" class="ch-pill">%s</a>`, r.site.channelURL(ch), ch))
		}
		if len(pills) == 0 {
			continue
		}

		rows.WriteString(fmt.Sprintf(`<div class="country-row"><b>%s</b>: %s</div>`, bc.Country, strings.Join(pills, " ")))
		faq.WriteString(fmt.Sprintf(`<div class="faq-item"><b>Where to watch %s in %s?</b><p>You can watch it on %s.</p></div>`,
			m.Fixture, bc.Country, strings.Join(bc.Channels, ", ")))

		countries++
		if r.site.SponsorHTML != "" && countries%r.site.SponsorCadence == 0 {
			rows.WriteString(r.site.SponsorHTML)
		}
	}

	content := substitute(r.tpl.Match, map[string]string{
		"FIXTURE":          m.Fixture,
		"LEAGUE":           m.LeagueName(),
		"VENUE":            m.VenueName(),
		"LOCAL_DATE":       kickoff.Format(localtime.LayoutHumanDate),
		"LOCAL_TIME":       kickoff.Format(localtime.LayoutTimeOfDay),
		"UNIX":             strconv.FormatInt(m.KickoffUnix(), 10),
		"BROADCAST_ROWS":   rows.String(),
		"FAQ_COUNTRY_ROWS": faq.String(),
		"DOMAIN":           r.site.Domain,
	})

	return Page{
		Path:    r.site.matchPath(m),
		URL:     r.site.matchURL(m),
		Content: content,
	}, nil
}
