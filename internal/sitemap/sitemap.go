package sitemap

import (
	"encoding/xml"
	"fmt"
	"sort"
	"time"

	"github.com/yosintv/matchsite/internal/pkg/localtime"
)

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"
const xmlnsXhtml = "http://www.w3.org/1999/xhtml"

// Builder accumulates every generated page URL during a run and emits one
// sitemap document at the end. Entries are keyed by canonical path + locale,
// so re-registering a page is harmless.
type Builder struct {
	lastmod string
	entries map[string]entry // key: canonicalPath + "\x00" + locale
}

type entry struct {
	canonicalPath string
	locale        string
	url           string
}

func NewBuilder(runStart time.Time) *Builder {
	return &Builder{
		lastmod: runStart.Format(localtime.LayoutPageDate),
		entries: make(map[string]entry),
	}
}

// Add registers one page URL for a locale. canonicalPath identifies the page
// across locales and groups the alternate links.
func (b *Builder) Add(locale, canonicalPath, url string) {
	key := canonicalPath + "\x00" + locale
	b.entries[key] = entry{canonicalPath: canonicalPath, locale: locale, url: url}
}

// Len reports how many distinct page URLs are registered.
func (b *Builder) Len() int { return len(b.entries) }

type urlsetXML struct {
	XMLName    xml.Name   `xml:"urlset"`
	Xmlns      string     `xml:"xmlns,attr"`
	XmlnsXhtml string     `xml:"xmlns:xhtml,attr,omitempty"`
	URLs       []urlXML   `xml:"url"`
}

type urlXML struct {
	Loc        string         `xml:"loc"`
	LastMod    string         `xml:"lastmod,omitempty"`
	Alternates []alternateXML `xml:"xhtml:link,omitempty"`
}

type alternateXML struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// XML renders the sitemap. Every URL carries the run-start date as lastmod.
// When a canonical path exists in more than one locale, each of its URLs
// cross-links all sibling locales (itself included) as alternates.
func (b *Builder) XML() ([]byte, error) {
	siblings := make(map[string][]entry)
	for _, e := range b.entries {
		siblings[e.canonicalPath] = append(siblings[e.canonicalPath], e)
	}

	doc := urlsetXML{Xmlns: xmlns}

	for _, group := range siblings {
		sort.Slice(group, func(i, j int) bool { return group[i].locale < group[j].locale })
		for _, e := range group {
			u := urlXML{Loc: e.url, LastMod: b.lastmod}
			if len(group) > 1 {
				doc.XmlnsXhtml = xmlnsXhtml
				for _, alt := range group {
					u.Alternates = append(u.Alternates, alternateXML{
						Rel:      "alternate",
						Hreflang: alt.locale,
						Href:     alt.url,
					})
				}
			}
			doc.URLs = append(doc.URLs, u)
		}
	}

	sort.Slice(doc.URLs, func(i, j int) bool { return doc.URLs[i].Loc < doc.URLs[j].Loc })

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
