package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, 11, c.Len())

	mandatory := c.Mandatory()
	require.Len(t, mandatory, 4)
	ids := make([]string, 0, len(mandatory))
	for _, s := range mandatory {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"isyeri-hekimi", "is-guvenligi-uzmani", "risk-analizi", "isg-egitimi"}, ids)

	// Every service carries the section skeleton a page needs.
	for _, s := range c.All() {
		assert.NotEmpty(t, s.Keywords.Primary, "service %s has no primary keywords", s.ID)
		assert.NotEmpty(t, s.LocationPatterns, "service %s has no location patterns", s.ID)
		assert.Contains(t, s.RequiredSections, "hero", "service %s", s.ID)
		assert.Contains(t, s.RequiredSections, "iletisim_cta", "service %s", s.ID)
	}
}

func TestCatalogLookups(t *testing.T) {
	c := Default()

	s, ok := c.ByID("isg-egitimi")
	require.True(t, ok)
	// Slug diverges from id for this service.
	assert.Equal(t, "is-guvenligi-egitimi", s.Slug)

	s, ok = c.BySlug("is-guvenligi-egitimi")
	require.True(t, ok)
	assert.Equal(t, "isg-egitimi", s.ID)

	_, ok = c.ByID("yok-boyle-hizmet")
	assert.False(t, ok)

	training := c.ByCategory(CategoryTraining)
	assert.Len(t, training, 3)
}

func TestNewRejectsDuplicates(t *testing.T) {
	services := []Service{
		{ID: "a", Name: "A", Slug: "a", Category: CategoryHealth},
		{ID: "a", Name: "A2", Slug: "a2", Category: CategoryHealth},
	}
	_, err := New(services)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate service id")

	services = []Service{
		{ID: "a", Name: "A", Slug: "x", Category: CategoryHealth},
		{ID: "b", Name: "B", Slug: "x", Category: CategoryHealth},
	}
	_, err = New(services)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate service slug")

	services = []Service{{ID: "a", Name: "A", Slug: "a", Category: "bilinmeyen"}}
	_, err = New(services)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestLocationKeywords(t *testing.T) {
	c := Default()
	s, ok := c.ByID("risk-analizi")
	require.True(t, ok)

	// Province level: district and sector patterns are skipped.
	kws := LocationKeywords(s, "Bursa", "")
	assert.Equal(t, []string{"bursa risk analizi", "bursa risk degerlendirmesi"}, kws)

	// District level: district patterns expand, sector patterns still skip.
	kws = LocationKeywords(s, "Bursa", "Nilufer")
	assert.Contains(t, kws, "nilufer isyeri risk analizi")
	for _, kw := range kws {
		assert.NotContains(t, kw, "{")
	}
}

func TestPageTitleAndMetaDescription(t *testing.T) {
	c := Default()
	s, ok := c.ByID("isyeri-hekimi")
	require.True(t, ok)

	assert.Equal(t, "Bursa Isyeri Hekimligi", PageTitle(s, "Bursa", "", ""))
	assert.Equal(t, "Nilufer, Bursa Isyeri Hekimligi | Acme OSGB",
		PageTitle(s, "Bursa", "Nilufer", "Acme OSGB"))

	desc := MetaDescription(s, "Bursa", "Nilufer")
	assert.Contains(t, desc, "Nilufer ve Bursa bolgesinde")
	assert.Contains(t, desc, "isyeri hekimligi hizmeti")
	assert.Contains(t, desc, "Hemen teklif alin!")
}
