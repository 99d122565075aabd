package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	types "github.com/stainsolver/stainsolver-backend/internal/domain"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

var staticPaths = []string{"/", "/stains", "/materials", "/guides"}

// Paths lists every public page: static pages, stain and material pages, then one page per
// existing guide. Guides without loaded associations are skipped.
func Paths(stains []*types.Stain, materials []*types.Material, guides []*types.Guide) []string {
	out := make([]string, 0, len(staticPaths)+len(stains)+len(materials)+len(guides))
	out = append(out, staticPaths...)
	for _, s := range stains {
		out = append(out, "/stains/"+s.Name)
	}
	for _, m := range materials {
		out = append(out, "/materials/"+m.Name)
	}
	for _, g := range guides {
		if slug := g.Slug(); slug != "" {
			out = append(out, "/remove/"+slug)
		}
	}
	return out
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// BuildSitemap renders a sitemaps.org urlset for paths under baseURL.
func BuildSitemap(baseURL string, paths []string, now time.Time) ([]byte, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("sitemap base url required")
	}
	set := urlSet{XMLNS: sitemapNS, URLs: make([]sitemapURL, 0, len(paths))}
	lastMod := now.UTC().Format(time.RFC3339)
	for _, p := range paths {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        baseURL + p,
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   priority(p),
		})
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

func priority(path string) string {
	switch {
	case path == "/":
		return "1.0"
	case strings.HasPrefix(path, "/remove/"):
		return "0.9"
	default:
		return "0.8"
	}
}
