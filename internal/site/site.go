package site

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/yosintv/matchsite/internal/fixtures"
	"github.com/yosintv/matchsite/internal/pkg/config"
	"github.com/yosintv/matchsite/internal/pkg/fsutil"
	"github.com/yosintv/matchsite/internal/pkg/localtime"
	"github.com/yosintv/matchsite/internal/render"
	"github.com/yosintv/matchsite/internal/sitemap"
)

// Stats summarizes one completed generation run.
type Stats struct {
	Matches   int
	Pages     int
	StartedAt time.Time
	Duration  time.Duration
}

// Generator runs the full pipeline: load fixtures, render every locale's
// match/day/channel pages, then emit the sitemap. Every run is a complete
// rebuild; the only state that survives is the output tree itself.
type Generator struct {
	cfg   *config.Config
	clock localtime.Clock
}

// NewGenerator freezes "now" for the whole run. All pages generated by one
// run share the same notion of today, even across a midnight boundary.
func NewGenerator(cfg *config.Config, now time.Time) *Generator {
	return &Generator{
		cfg:   cfg,
		clock: localtime.New(cfg.Site.UTCOffsetMinutes, now),
	}
}

// Run executes one full rebuild. An empty fixture set or a missing template
// is fatal; a page that fails to render or write is skipped and reported.
func (g *Generator) Run() (Stats, error) {
	started := g.clock.Now()

	records, err := fixtures.LoadDir(g.cfg.Paths.FixturesDir)
	if err != nil {
		return Stats{}, err
	}

	// All templates must resolve before any page renders.
	templates := make(map[string]*render.Templates, len(g.cfg.Site.Locales))
	for _, locale := range g.cfg.Site.Locales {
		tpl, err := render.LoadTemplates(g.cfg.Paths.TemplatesDir, locale)
		if err != nil {
			return Stats{}, fmt.Errorf("failed to load templates: %w", err)
		}
		templates[locale] = tpl
	}

	if g.cfg.Site.CleanOutput {
		if err := g.clearOutput(); err != nil {
			return Stats{}, err
		}
	}

	sm := sitemap.NewBuilder(started)
	topLeagues := make(map[string]bool, len(g.cfg.Site.TopLeagues))
	for _, l := range g.cfg.Site.TopLeagues {
		topLeagues[l] = true
	}

	written := 0
	for i, locale := range g.cfg.Site.Locales {
		siteCtx := render.Site{
			Domain:         g.cfg.Site.Domain,
			Locale:         locale,
			Prefix:         g.localePrefix(i, locale),
			PathLayout:     g.cfg.Site.PathLayout,
			Clock:          g.clock,
			TopLeagues:     topLeagues,
			SponsorHTML:    g.cfg.Site.SponsorHTML,
			SponsorCadence: g.cfg.Site.SponsorCadence,
			StaleGrace:     time.Duration(g.cfg.Site.StaleGraceMinutes) * time.Minute,
		}
		r := render.New(siteCtx, templates[locale])

		matchPages, channelIndex := r.RenderMatches(records)
		dates := render.DateInventory(records, g.clock, g.cfg.Site.DateWindow, g.cfg.Site.DaysBefore, g.cfg.Site.DaysAfter)
		dayPages := r.RenderDays(records, dates)
		channelPages := r.RenderChannels(channelIndex, dates)

		slog.Info("Locale rendered",
			"locale", locale,
			"match_pages", len(matchPages),
			"day_pages", len(dayPages),
			"channel_pages", len(channelPages))

		for _, pages := range [][]render.Page{matchPages, dayPages, channelPages} {
			for _, page := range pages {
				if err := g.writePage(page); err != nil {
					slog.Warn("Failed to write page, skipping", "path", page.Path, "error", err)
					continue
				}
				written++
				sm.Add(locale, strings.TrimPrefix(page.Path, siteCtx.Prefix), page.URL)
			}
		}
	}

	if err := g.writeSitemap(sm); err != nil {
		return Stats{}, err
	}
	written++

	return Stats{
		Matches:   len(records),
		Pages:     written,
		StartedAt: started,
		Duration:  time.Since(started),
	}, nil
}

// localePrefix places the default locale (the first one) at the site root
// and every other locale under its own path prefix, on disk and in URLs.
func (g *Generator) localePrefix(index int, locale string) string {
	if index == 0 {
		return ""
	}
	return locale + "/"
}

func (g *Generator) clearOutput() error {
	subtrees := []string{"home", "match", "channel"}
	for i, locale := range g.cfg.Site.Locales {
		prefix := g.localePrefix(i, locale)
		for _, dir := range subtrees {
			if err := fsutil.ClearDirs(g.cfg.Paths.OutputDir, prefix+dir); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Generator) writePage(page render.Page) error {
	path := filepath.Join(g.cfg.Paths.OutputDir, filepath.FromSlash(page.Path))
	return fsutil.WriteFileAtomic(path, []byte(page.Content))
}

func (g *Generator) writeSitemap(sm *sitemap.Builder) error {
	data, err := sm.XML()
	if err != nil {
		return err
	}
	path := filepath.Join(g.cfg.Paths.OutputDir, "sitemap.xml")
	if err := fsutil.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to write sitemap: %w", err)
	}
	slog.Info("Sitemap written", "urls", sm.Len())
	return nil
}
