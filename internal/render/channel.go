package render

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/yosintv/matchsite/internal/pkg/localtime"
	"github.com/yosintv/matchsite/internal/pkg/models"
	"github.com/yosintv/matchsite/internal/pkg/slug"
)

// RenderChannels renders one listing page per channel in the index. Matches
// are deduplicated by id (a channel can be registered once per country row),
// sorted by kickoff, and optionally filtered of fixtures whose kickoff plus
// the grace window has already passed. dates feeds the optional weekly menu.
func (r *Renderer) RenderChannels(index ChannelIndex, dates []time.Time) []Page {
	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)

	var pages []Page
	for _, name := range names {
		if slug.Make(name) == "" {
			slog.Warn("Skipping channel page, name has no slug", "channel", name)
			continue
		}
		pages = append(pages, r.renderChannel(name, index[name], dates))
	}
	return pages
}

func (r *Renderer) renderChannel(name string, matches []models.MatchRecord, dates []time.Time) Page {
	seen := make(map[string]bool)
	var kept []models.MatchRecord
	cutoff := r.site.Clock.Now().Add(-r.site.StaleGrace)

	for i := range matches {
		m := matches[i]
		if seen[m.MatchID] {
			continue
		}
		seen[m.MatchID] = true
		if r.site.StaleGrace > 0 && r.site.Clock.Localize(m.KickoffUnix()).Before(cutoff) {
			continue
		}
		kept = append(kept, m)
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Kickoff < kept[j].Kickoff })

	listing := noMatchesHTML
	if len(kept) > 0 {
		var b strings.Builder
		b.WriteString("<ul>")
		for i := range kept {
			m := &kept[i]
			kickoff := r.site.Clock.Localize(m.KickoffUnix())
			b.WriteString(fmt.Sprintf(`<li><a href="%s">%s</a> (%s)</li>`,
				r.site.matchURL(m), m.Fixture, kickoff.Format(localtime.LayoutShortDate)))
		}
		b.WriteString("</ul>")
		listing = b.String()
	}

	content := substitute(r.tpl.Channel, map[string]string{
		"CHANNEL_NAME":  name,
		"MATCH_LISTING": listing,
		"WEEKLY_MENU":   r.weeklyMenu(dates, time.Time{}),
		"DOMAIN":        r.site.Domain,
	})

	return Page{
		Path:    r.site.channelPath(name),
		URL:     r.site.channelURL(name),
		Content: content,
	}
}
