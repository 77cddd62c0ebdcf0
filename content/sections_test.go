package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionsStructure(t *testing.T) {
	e := testEngine(t)

	sections, err := e.Sections("isyeri-hekimi", 16, "")
	require.NoError(t, err)
	require.Len(t, sections, 6)

	assert.Equal(t, SectionHero, sections[0].Type)
	assert.Equal(t, "Bursa Isyeri Hekimligi", sections[0].Heading)
	assert.Equal(t, SectionText, sections[1].Type)
	assert.Equal(t, SectionFAQ, sections[4].Type)
	assert.Equal(t, SectionCTA, sections[5].Type)

	faqs, ok := sections[4].Data["faqs"].([]FAQ)
	require.True(t, ok)
	// 4 long-tail questions plus the location question.
	require.Len(t, faqs, 5)
	assert.Equal(t, "Isyeri hekimi fiyatlari?", faqs[0].Question)
	assert.Contains(t, faqs[0].Answer, "fiyat")
	assert.Contains(t, faqs[4].Question, "Bursa'da OSGB hizmeti nasil alabilirim?")
}

func TestSectionsDistrictUsesDistrictName(t *testing.T) {
	e := testEngine(t)

	sections, err := e.Sections("risk-analizi", 16, "gemlik")
	require.NoError(t, err)
	assert.Equal(t, "Gemlik, Bursa Risk Degerlendirmesi", sections[0].Heading)
}

func TestSectionsPure(t *testing.T) {
	e := testEngine(t)

	a, err := e.Sections("isg-egitimi", 41, "gebze")
	require.NoError(t, err)
	b, err := e.Sections("isg-egitimi", 41, "gebze")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSectionsErrors(t *testing.T) {
	e := testEngine(t)

	_, err := e.Sections("yok", 16, "")
	assert.Error(t, err)
	_, err = e.Sections("risk-analizi", 999, "")
	assert.Error(t, err)
	_, err = e.Sections("risk-analizi", 16, "yok")
	assert.Error(t, err)
}

func TestNewSectionDegradesUnknownType(t *testing.T) {
	s := NewSection("ozel", SectionType("hologram"), "Baslik", "icerik", nil)
	assert.Equal(t, SectionText, s.Type)

	s = NewSection("hero", SectionHero, "Baslik", "icerik", nil)
	assert.Equal(t, SectionHero, s.Type)
}
