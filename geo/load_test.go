package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDataset(t *testing.T) {
	g, err := Default()
	require.NoError(t, err, "embedded dataset must be closed and symmetric")
	assert.Equal(t, 16, g.Len())

	ist, err := g.ProvinceBySlug("istanbul")
	require.NoError(t, err)
	assert.Equal(t, 34, ist.ID)
	assert.Equal(t, RegionMarmara, ist.Region)
	assert.NotEmpty(t, ist.Districts)

	area, err := g.ServiceArea(34)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"kocaeli", "tekirdag"}, neighborSlugs(g, 34))
	assert.Equal(t, 3, len(area.Provinces()))

	ind := g.Industrial()
	require.NotEmpty(t, ind)
	assert.Equal(t, 34, ind[0].ID, "priority order starts with the densest province")
}

func TestLoadRejectsGarbage(t *testing.T) {
	_, err := Load([]byte("provinces: [not: {valid"))
	assert.Error(t, err)

	_, err = Load([]byte("provinces: []"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestMustDefault(t *testing.T) {
	assert.NotPanics(t, func() { MustDefault() })
}
