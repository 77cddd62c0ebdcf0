package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prosektorweb/sitegen/catalog"
	"github.com/prosektorweb/sitegen/geo"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	g, err := geo.Default()
	require.NoError(t, err)
	return NewEngine(g, catalog.Default(),
		WithCompany(CompanyInfo{Name: "Acme OSGB", Phone: "0212 555 0101", Email: "info@acme.example"}),
		WithYear(2026),
	)
}

func TestForServiceTemplateBlocks(t *testing.T) {
	for _, s := range catalog.Default().All() {
		tmpl := ForService(&s)
		require.NotEmpty(t, tmpl.Sections, s.ID)
		for _, block := range tmpl.Sections {
			assert.NotEmpty(t, block.ID, s.ID)
			if !block.Optional {
				assert.NotEmpty(t, block.Template, "%s/%s", s.ID, block.ID)
			}
		}
	}
}

// Template blocks and structured sections are separate records: one holds
// raw markdown with placeholders, the other the rendered typed output.
func TestTemplateBlocksFeedStructuredSections(t *testing.T) {
	e := testEngine(t)

	block := TemplateSection{ID: "hero", Template: "# {{sehir}} hizmeti"}
	assert.Contains(t, Render(block.Template, Variables{"sehir": "Bursa"}), "Bursa")

	sections, err := e.Sections("isyeri-hekimi", 16, "")
	require.NoError(t, err)
	require.NotEmpty(t, sections)
	assert.Equal(t, SectionHero, sections[0].Type)
	assert.NotEmpty(t, sections[0].Content)
}

func TestRenderSubstitutesVariables(t *testing.T) {
	tmpl := "# {{bolge}} hizmeti\n{{firma}} - {{yil}}"
	out := Render(tmpl, Variables{"bolge": "Bursa", "firma": "Acme", "yil": "2026"})
	assert.Equal(t, "# Bursa hizmeti\nAcme - 2026", out)
}

func TestRenderStripsUnresolvedPlaceholders(t *testing.T) {
	out := Render("tel: {{telefon}} son", Variables{})
	assert.Equal(t, "tel:  son", out)
	assert.NotContains(t, out, "{{")
}

func TestPrepareVariables(t *testing.T) {
	g, err := geo.Default()
	require.NoError(t, err)
	p, err := g.ProvinceBySlug("yalova")
	require.NoError(t, err)
	s, ok := catalog.Default().ByID("risk-analizi")
	require.True(t, ok)

	vars := PrepareVariables(g, p, s, nil, CompanyInfo{Name: "Acme"}, 2026)
	assert.Equal(t, "Yalova", vars["sehir"])
	assert.Equal(t, "Yalova", vars["bolge"])
	assert.Equal(t, "2026", vars["yil"])
	assert.Contains(t, vars["komsu_iller"], "Bursa")
	assert.Contains(t, vars["komsu_iller"], "Kocaeli")
	_, hasDistrict := vars["ilce"]
	assert.False(t, hasDistrict)

	d, ok := p.District("termal")
	require.True(t, ok)
	vars = PrepareVariables(g, p, s, &d, CompanyInfo{}, 2026)
	assert.Equal(t, "Termal, Yalova", vars["bolge"])
	assert.Equal(t, "termal", vars["ilce_kucuk"])
}

func TestEngineRenderProvincePage(t *testing.T) {
	e := testEngine(t)

	out, err := e.Render("isyeri-hekimi", 16, "")
	require.NoError(t, err)

	assert.Contains(t, out.Markdown, "# Bursa Isyeri Hekimligi Hizmeti")
	assert.Contains(t, out.Markdown, "2026")
	assert.Contains(t, out.Markdown, "Acme OSGB")
	assert.NotContains(t, out.Markdown, "{{")
	assert.Greater(t, out.WordCount, 200)

	require.NotEmpty(t, out.Headings)
	assert.Equal(t, 1, out.Headings[0].Level)
	assert.True(t, strings.HasPrefix(out.Headings[0].Text, "Bursa"))
}

func TestEngineRenderDistrictPage(t *testing.T) {
	e := testEngine(t)

	out, err := e.Render("risk-analizi", 16, "nilufer")
	require.NoError(t, err)
	assert.Contains(t, out.Markdown, "Nilufer, Bursa")
}

func TestEngineRenderDeterministic(t *testing.T) {
	e := testEngine(t)

	a, err := e.Render("is-guvenligi-uzmani", 34, "kadikoy")
	require.NoError(t, err)
	b, err := e.Render("is-guvenligi-uzmani", 34, "kadikoy")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEngineRenderGenericFallback(t *testing.T) {
	e := testEngine(t)

	// No hand-written template for this service.
	out, err := e.Render("onayli-defter", 6, "")
	require.NoError(t, err)
	assert.Contains(t, out.Markdown, "# Ankara Onayli Defter Islemleri")
	assert.Contains(t, out.Markdown, "Sikca Sorulan Sorular")
	assert.NotContains(t, out.Markdown, "{{")
}

func TestEngineRenderErrors(t *testing.T) {
	e := testEngine(t)

	_, err := e.Render("yok-boyle-hizmet", 16, "")
	assert.Error(t, err)

	_, err = e.Render("isyeri-hekimi", 999, "")
	assert.Error(t, err)

	_, err = e.Render("isyeri-hekimi", 16, "yok-ilce")
	assert.Error(t, err)
}

func TestStripMarkdown(t *testing.T) {
	md := "## Baslik\n\n**kalin** ve [link](https://example.com) metin\n\n| a | b |\n|---|---|\n"
	plain := stripMarkdown(md)
	assert.NotContains(t, plain, "#")
	assert.NotContains(t, plain, "**")
	assert.Contains(t, plain, "kalin")
	assert.Contains(t, plain, "link")
	assert.NotContains(t, plain, "](")
}
