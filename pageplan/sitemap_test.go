package pageplan

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prosektorweb/sitegen/catalog"
)

func TestSitemapEntries(t *testing.T) {
	gen, err := New(testGraph(t), catalog.Default(),
		WithServices("risk-analizi"),
		WithBaseURL("https://alfaosgb.example"),
	)
	require.NoError(t, err)

	plan, err := gen.Generate(context.Background(), 1)
	require.NoError(t, err)

	lastMod := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	entries := SitemapEntries(plan, lastMod)
	require.Len(t, entries, 13)

	// Homepage leads at top priority.
	assert.Equal(t, "https://alfaosgb.example/", entries[0].Loc)
	assert.Equal(t, ChangeDaily, entries[0].ChangeFreq)
	assert.Equal(t, "1.0", entries[0].Priority)
	assert.Equal(t, "2026-03-15", entries[0].LastMod)

	// Province page, then its districts.
	assert.Equal(t, ChangeWeekly, entries[1].ChangeFreq)
	assert.Equal(t, "0.9", entries[1].Priority)
	assert.Equal(t, ChangeMonthly, entries[2].ChangeFreq)
	assert.Equal(t, "0.7", entries[2].Priority)
}

func TestSitemapXML(t *testing.T) {
	entries := []SitemapEntry{
		{Loc: "https://example.com/a/", LastMod: "2026-01-01", ChangeFreq: ChangeWeekly, Priority: "0.9"},
	}
	data, err := SitemapXML(entries)
	require.NoError(t, err)

	xml := string(data)
	assert.True(t, strings.HasPrefix(xml, "<?xml"))
	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, xml, "<loc>https://example.com/a/</loc>")
	assert.Contains(t, xml, "<changefreq>weekly</changefreq>")
	assert.Contains(t, xml, "<priority>0.9</priority>")
}

func TestSitemapXMLEscapesLoc(t *testing.T) {
	entries := []SitemapEntry{
		{Loc: "https://example.com/?a=1&b=2", LastMod: "2026-01-01", ChangeFreq: ChangeDaily, Priority: "1.0"},
	}
	data, err := SitemapXML(entries)
	require.NoError(t, err)
	assert.Contains(t, string(data), "a=1&amp;b=2")
}

func TestWriteSitemapsSingleFile(t *testing.T) {
	entries := make([]SitemapEntry, 0, SitemapSplitThreshold)
	for i := 0; i < SitemapSplitThreshold; i++ {
		entries = append(entries, SitemapEntry{
			Loc: fmt.Sprintf("https://example.com/p%d/", i), LastMod: "2026-01-01",
			ChangeFreq: ChangeWeekly, Priority: "0.9",
		})
	}

	index, files, err := WriteSitemaps(entries, "https://example.com", time.Now())
	require.NoError(t, err)
	assert.Nil(t, index)
	require.Len(t, files, 1)
	assert.Equal(t, "sitemap.xml", files[0].Filename)
}

func TestWriteSitemapsSplits(t *testing.T) {
	entries := make([]SitemapEntry, 0, 2500)
	for i := 0; i < 2500; i++ {
		entries = append(entries, SitemapEntry{
			Loc: fmt.Sprintf("https://example.com/p%d/", i), LastMod: "2026-01-01",
			ChangeFreq: ChangeMonthly, Priority: "0.7",
		})
	}

	lastMod := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	index, files, err := WriteSitemaps(entries, "https://example.com", lastMod)
	require.NoError(t, err)

	require.Len(t, files, 3)
	assert.Equal(t, "sitemap-1.xml", files[0].Filename)
	assert.Equal(t, "sitemap-3.xml", files[2].Filename)

	idx := string(index)
	assert.Contains(t, idx, "<sitemapindex")
	assert.Contains(t, idx, "<loc>https://example.com/sitemap-1.xml</loc>")
	assert.Contains(t, idx, "<loc>https://example.com/sitemap-3.xml</loc>")
	assert.Contains(t, idx, "2026-03-15")

	// Chunks cover all entries.
	total := 0
	for _, f := range files {
		total += strings.Count(string(f.XML), "<url>")
	}
	assert.Equal(t, 2500, total)
}

func TestSitemapXMLRejectsOversize(t *testing.T) {
	entries := make([]SitemapEntry, SitemapMaxURLs+1)
	_, err := SitemapXML(entries)
	assert.Error(t, err)
}
