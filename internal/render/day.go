package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yosintv/matchsite/internal/pkg/config"
	"github.com/yosintv/matchsite/internal/pkg/localtime"
	"github.com/yosintv/matchsite/internal/pkg/models"
	"github.com/yosintv/matchsite/internal/pkg/slug"
)

// Markup emitted when a listing has nothing to show. Pages are always
// generated for their date, match data or not.
const noMatchesHTML = `<div class="no-matches">No matches scheduled.</div>`

// DateInventory decides which daily pages a run emits. In "data" mode it is
// the sorted distinct local dates of the loaded matches. In "fixed" mode it
// is a sliding window around the frozen run date, so the page inventory is
// stable even on days with no fixtures.
func DateInventory(matches []models.MatchRecord, clock localtime.Clock, mode string, daysBefore, daysAfter int) []time.Time {
	if mode == config.WindowFixed {
		today := clock.Today()
		dates := make([]time.Time, 0, daysBefore+daysAfter+1)
		for d := -daysBefore; d <= daysAfter; d++ {
			dates = append(dates, today.AddDate(0, 0, d))
		}
		return dates
	}

	seen := make(map[time.Time]bool)
	var dates []time.Time
	for i := range matches {
		day := clock.DateOf(matches[i].KickoffUnix())
		if !seen[day] {
			seen[day] = true
			dates = append(dates, day)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// RenderDays renders one listing page per date plus the root index mirror of
// today's page. The mirror shares today's listing but carries its own
// current path, so the landing page's canonical link points at itself. The
// weekly menu is derived once from the inventory and re-rendered per page
// only to mark the active date.
func (r *Renderer) RenderDays(matches []models.MatchRecord, dates []time.Time) []Page {
	var pages []Page
	today := r.site.Clock.Today()

	for _, date := range dates {
		pagePath := r.site.dayPath(date)
		pages = append(pages, r.renderDay(matches, date, dates, pagePath, r.site.dayURL(date), "/"+pagePath))

		if date.Equal(today) {
			pages = append(pages, r.renderDay(matches, date, dates,
				r.site.RootPath(), r.site.RootURL(), "/"+r.site.Prefix))
		}
	}
	return pages
}

func (r *Renderer) renderDay(matches []models.MatchRecord, date time.Time, dates []time.Time, pagePath, url, currentPath string) Page {
	dayMatches := r.matchesOn(matches, date)
	r.sortForListing(dayMatches)

	listing := noMatchesHTML
	if len(dayMatches) > 0 {
		listing = r.buildDayListing(dayMatches)
	}

	dateStr := date.Format(localtime.LayoutPageDate)

	content := substitute(r.tpl.Day, map[string]string{
		"PAGE_TITLE":    "Schedule for " + dateStr,
		"SELECTED_DATE": dateStr,
		"WEEKLY_MENU":   r.weeklyMenu(dates, date),
		"MATCH_LISTING": listing,
		"CURRENT_PATH":  currentPath,
		"DOMAIN":        r.site.Domain,
	})

	return Page{Path: pagePath, URL: url, Content: content}
}

// matchesOn filters a date's matches, dropping records the match renderer
// cannot produce a page for. A listing row must never link to a match page
// that does not exist.
func (r *Renderer) matchesOn(matches []models.MatchRecord, date time.Time) []models.MatchRecord {
	var out []models.MatchRecord
	for i := range matches {
		if matches[i].Fixture == "" || slug.Make(matches[i].Fixture) == "" {
			continue
		}
		if r.site.Clock.DateOf(matches[i].KickoffUnix()).Equal(date) {
			out = append(out, matches[i])
		}
	}
	return out
}

// sortForListing orders a day's matches so the configured top leagues come
// first, then leagues alphabetically, then kickoff within each league.
func (r *Renderer) sortForListing(matches []models.MatchRecord) {
	sort.SliceStable(matches, func(i, j int) bool {
		li, lj := matches[i].LeagueName(), matches[j].LeagueName()
		ti, tj := r.site.TopLeagues[li], r.site.TopLeagues[lj]
		if ti != tj {
			return ti
		}
		if li != lj {
			return li < lj
		}
		return matches[i].Kickoff < matches[j].Kickoff
	})
}

// buildDayListing emits a league header each time the league changes, with a
// sponsor block after every SponsorCadence league transitions.
func (r *Renderer) buildDayListing(matches []models.MatchRecord) string {
	var b strings.Builder
	prevLeague := ""
	transitions := 0

	b.WriteString("<ul>")
	for i := range matches {
		m := &matches[i]
		league := m.LeagueName()
		if league != prevLeague {
			b.WriteString(fmt.Sprintf(`<li class="league-header">%s</li>`, league))
			prevLeague = league
			transitions++
			if r.site.SponsorHTML != "" && transitions%r.site.SponsorCadence == 0 {
				b.WriteString(fmt.Sprintf(`<li class="sponsor">%s</li>`, r.site.SponsorHTML))
			}
		}

		kickoff := r.site.Clock.Localize(m.KickoffUnix())
		b.WriteString(fmt.Sprintf(`<li><span class="time">%s</span> <a href="%s">%s</a></li>`,
			kickoff.Format(localtime.LayoutTimeOfDay), r.site.matchURL(m), m.Fixture))
	}
	b.WriteString("</ul>")
	return b.String()
}

// weeklyMenu links every date in the inventory, marking the current page's
// date active.
func (r *Renderer) weeklyMenu(dates []time.Time, active time.Time) string {
	items := make([]string, 0, len(dates))
	for _, d := range dates {
		class := "menu-item"
		if d.Equal(active) {
			class = "menu-item active"
		}
		items = append(items, fmt.Sprintf(`<a href="%s" class="%s">%s</a>`,
			r.site.dayURL(d), class, d.Format(localtime.LayoutMenuDate)))
	}
	return strings.Join(items, " | ")
}
