package render

import (
	"path"
	"time"

	"github.com/yosintv/matchsite/internal/pkg/config"
	"github.com/yosintv/matchsite/internal/pkg/localtime"
	"github.com/yosintv/matchsite/internal/pkg/models"
	"github.com/yosintv/matchsite/internal/pkg/slug"
)

// Site is the per-locale rendering context. The default locale lives at the
// site root; every other locale is nested under its own path prefix.
type Site struct {
	Domain         string // absolute base URL without trailing slash
	Locale         string
	Prefix         string // "" for the default locale, "pt/" style otherwise
	PathLayout     string // config.LayoutNested or config.LayoutFlat
	Clock          localtime.Clock
	TopLeagues     map[string]bool
	SponsorHTML    string
	SponsorCadence int
	StaleGrace     time.Duration
}

// Page is one rendered output unit: where it goes on disk (relative to the
// output root), its canonical URL, and its content.
type Page struct {
	Path    string
	URL     string
	Content string
}

// Renderer renders all page kinds for one locale.
type Renderer struct {
	site Site
	tpl  *Templates
}

func New(site Site, tpl *Templates) *Renderer {
	return &Renderer{site: site, tpl: tpl}
}

// RootPath and RootURL describe the locale's landing page.
func (s Site) RootPath() string { return path.Join(s.Prefix, "index.html") }
func (s Site) RootURL() string  { return s.Domain + "/" + s.Prefix }

func (s Site) dayPath(date time.Time) string {
	return path.Join(s.Prefix, "home", date.Format(localtime.LayoutPageDate)+".html")
}

func (s Site) dayURL(date time.Time) string {
	return s.Domain + "/" + s.dayPath(date)
}

func (s Site) matchPath(m *models.MatchRecord) string {
	folder := s.Clock.Localize(m.KickoffUnix()).Format(localtime.LayoutFolderDate)
	sl := slug.Make(m.Fixture)
	if s.PathLayout == config.LayoutFlat {
		return path.Join(s.Prefix, "match", sl+"-"+folder+".html")
	}
	return path.Join(s.Prefix, "match", sl, folder, "index.html")
}

func (s Site) matchURL(m *models.MatchRecord) string {
	p := s.matchPath(m)
	if s.PathLayout == config.LayoutFlat {
		return s.Domain + "/" + p
	}
	// Nested pages are addressed by their directory.
	return s.Domain + "/" + path.Dir(p) + "/"
}

func (s Site) channelPath(name string) string {
	sl := slug.Make(name)
	if s.PathLayout == config.LayoutFlat {
		return path.Join(s.Prefix, "channel", sl+".html")
	}
	return path.Join(s.Prefix, "channel", sl, "index.html")
}

func (s Site) channelURL(name string) string {
	p := s.channelPath(name)
	if s.PathLayout == config.LayoutFlat {
		return s.Domain + "/" + p
	}
	return s.Domain + "/" + path.Dir(p) + "/"
}
