// Package etree renders the directory's city pages as an XML sitemap.
package etree

import (
	"net/url"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/kwloc"
)

// SitemapNamespace is the sitemaps.org urlset namespace.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Page priorities match the directory's own sitemap.
const (
	statePriority = "0.8"
	cityPriority  = "0.7"
)

// SitemapRenderer renders state hub and city page URLs for an aggregate.
type SitemapRenderer struct {
	baseURL string
}

// NewSitemapRenderer returns a renderer for pages under baseURL.
// Returns EINVALID unless baseURL is an absolute http(s) URL.
func NewSitemapRenderer(baseURL string) (*SitemapRenderer, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, kwloc.Errorf(kwloc.EINVALID, "sitemap base URL %q must be an absolute http(s) URL", baseURL)
	}
	return &SitemapRenderer{baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Render returns the sitemap artifact. State hub pages come first in
// alphabetical order, then one city page per distinct place ordered by
// state and slug.
func (r *SitemapRenderer) Render(agg *kwloc.Aggregate) (*kwloc.Artifact, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", SitemapNamespace)

	for _, sg := range agg.SortedStates() {
		addURL(urlset, r.baseURL+"/"+stateSlug(sg.State), statePriority)
	}

	seen := make(map[string]bool)
	for _, p := range sortedPlaces(agg.Places()) {
		loc := r.baseURL + "/" + stateSlug(p.State) + "/" + p.Slug()
		if seen[loc] || p.Slug() == "" {
			continue
		}
		seen[loc] = true
		addURL(urlset, loc, cityPriority)
	}

	doc.Indent(2)
	s, err := doc.WriteToString()
	if err != nil {
		return nil, err
	}
	return &kwloc.Artifact{Name: kwloc.SitemapFile, Content: []byte(s)}, nil
}

func addURL(parent *etree.Element, loc, priority string) {
	u := parent.CreateElement("url")
	u.CreateElement("loc").SetText(loc)
	u.CreateElement("changefreq").SetText("weekly")
	u.CreateElement("priority").SetText(priority)
}

// stateSlug returns the URL segment for a state, e.g. "SC" → "south-carolina".
func stateSlug(abbr string) string {
	name, ok := kwloc.StateName(abbr)
	if !ok {
		return strings.ToLower(abbr)
	}
	return kwloc.Slugify(name)
}

func sortedPlaces(places []kwloc.Place) []kwloc.Place {
	out := make([]kwloc.Place, len(places))
	copy(out, places)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}
		return out[i].Slug() < out[j].Slug()
	})
	return out
}
