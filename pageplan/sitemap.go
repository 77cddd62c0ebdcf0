package pageplan

import (
	"encoding/xml"
	"fmt"
	"time"
)

// Sitemap size limits. The protocol caps a single file at 50000 URLs; we
// split far earlier so files stay small enough for fast crawler fetches.
const (
	SitemapMaxURLs        = 50000
	SitemapSplitThreshold = 1000
)

// ChangeFreq is the sitemap change-frequency hint.
type ChangeFreq string

const (
	ChangeDaily   ChangeFreq = "daily"
	ChangeWeekly  ChangeFreq = "weekly"
	ChangeMonthly ChangeFreq = "monthly"
)

// SitemapEntry is one url element of a sitemap file.
type SitemapEntry struct {
	XMLName    xml.Name   `xml:"url"`
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod"`
	ChangeFreq ChangeFreq `xml:"changefreq"`
	Priority   string     `xml:"priority"`
}

type urlset struct {
	XMLName xml.Name       `xml:"urlset"`
	Xmlns   string         `xml:"xmlns,attr"`
	URLs    []SitemapEntry `xml:"url"`
}

type sitemapIndexEntry struct {
	XMLName xml.Name `xml:"sitemap"`
	Loc     string   `xml:"loc"`
	LastMod string   `xml:"lastmod"`
}

type sitemapindex struct {
	XMLName  xml.Name            `xml:"sitemapindex"`
	Xmlns    string              `xml:"xmlns,attr"`
	Sitemaps []sitemapIndexEntry `xml:"sitemap"`
}

const sitemapXmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapEntries builds the sitemap entry list for a plan: the homepage
// first, then every page. Province pages refresh weekly at priority 0.9,
// district pages monthly at 0.7.
func SitemapEntries(plan *Plan, lastMod time.Time) []SitemapEntry {
	date := lastMod.Format("2006-01-02")
	entries := make([]SitemapEntry, 0, len(plan.Pages)+1)
	entries = append(entries, SitemapEntry{
		Loc:        plan.BaseURL + "/",
		LastMod:    date,
		ChangeFreq: ChangeDaily,
		Priority:   "1.0",
	})
	for _, page := range plan.Pages {
		entry := SitemapEntry{
			Loc:        page.CanonicalURL,
			LastMod:    date,
			ChangeFreq: ChangeWeekly,
			Priority:   "0.9",
		}
		if page.IsDistrictPage {
			entry.ChangeFreq = ChangeMonthly
			entry.Priority = "0.7"
		}
		entries = append(entries, entry)
	}
	return entries
}

// SitemapFile is one rendered sitemap document.
type SitemapFile struct {
	Filename string
	XML      []byte
}

// SitemapXML renders a single sitemap file from the given entries.
func SitemapXML(entries []SitemapEntry) ([]byte, error) {
	if len(entries) > SitemapMaxURLs {
		return nil, fmt.Errorf("sitemap: %d urls exceeds the %d limit", len(entries), SitemapMaxURLs)
	}
	out, err := xml.MarshalIndent(urlset{Xmlns: sitemapXmlns, URLs: entries}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// WriteSitemaps renders the sitemap file set for the entries. Small sites
// get a single sitemap.xml; past the split threshold the entries are
// chunked into sitemap-N.xml files under a sitemap index.
func WriteSitemaps(entries []SitemapEntry, baseURL string, lastMod time.Time) (index []byte, files []SitemapFile, err error) {
	if len(entries) <= SitemapSplitThreshold {
		data, err := SitemapXML(entries)
		if err != nil {
			return nil, nil, err
		}
		return nil, []SitemapFile{{Filename: "sitemap.xml", XML: data}}, nil
	}

	date := lastMod.Format("2006-01-02")
	var idx sitemapindex
	idx.Xmlns = sitemapXmlns

	for i := 0; i < len(entries); i += SitemapSplitThreshold {
		end := min(i+SitemapSplitThreshold, len(entries))
		filename := fmt.Sprintf("sitemap-%d.xml", i/SitemapSplitThreshold+1)

		data, err := SitemapXML(entries[i:end])
		if err != nil {
			return nil, nil, err
		}
		files = append(files, SitemapFile{Filename: filename, XML: data})
		idx.Sitemaps = append(idx.Sitemaps, sitemapIndexEntry{
			Loc:     baseURL + "/" + filename,
			LastMod: date,
		})
	}

	out, err := xml.MarshalIndent(idx, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("sitemap index: %w", err)
	}
	return append([]byte(xml.Header), out...), files, nil
}
