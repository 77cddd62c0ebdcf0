package geo

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvinces() []*Province {
	return []*Province{
		{
			ID: 1, Name: "Alfa", Slug: "alfa", Region: RegionMarmara,
			Neighbors: []int{2, 3},
			Districts: []District{
				{Name: "Merkez", Slug: "merkez", IsCenter: true},
				{Name: "Liman", Slug: "liman"},
			},
		},
		{
			ID: 2, Name: "Beta", Slug: "beta", Region: RegionMarmara,
			Neighbors: []int{1},
			Districts: []District{
				{Name: "Merkez", Slug: "merkez", IsCenter: true},
			},
		},
		{
			ID: 3, Name: "Gama", Slug: "gama", Region: RegionEge,
			Neighbors: []int{1},
			Districts: []District{
				{Name: "Merkez", Slug: "merkez", IsCenter: true},
				{Name: "Ova", Slug: "ova"},
				{Name: "Yayla", Slug: "yayla"},
			},
		},
	}
}

func TestNewGraphValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]*Province)
		wantErr string
	}{
		{
			name:   "valid dataset",
			mutate: func([]*Province) {},
		},
		{
			name:    "duplicate province id",
			mutate:  func(ps []*Province) { ps[1].ID = 1 },
			wantErr: "duplicate province id",
		},
		{
			name:    "duplicate province slug",
			mutate:  func(ps []*Province) { ps[1].Slug = "alfa" },
			wantErr: "duplicate province slug",
		},
		{
			name:    "duplicate district slug within province",
			mutate:  func(ps []*Province) { ps[0].Districts[1].Slug = "merkez" },
			wantErr: "duplicate district slug",
		},
		{
			name:    "empty district slug",
			mutate:  func(ps []*Province) { ps[2].Districts[1].Slug = "" },
			wantErr: "empty slug",
		},
		{
			name:    "asymmetric adjacency rejected",
			mutate:  func(ps []*Province) { ps[1].Neighbors = nil },
			wantErr: "asymmetric adjacency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provinces := testProvinces()
			tt.mutate(provinces)

			_, err := NewGraph(provinces)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewGraphAllowAsymmetric(t *testing.T) {
	provinces := testProvinces()
	provinces[1].Neighbors = nil

	g, err := NewGraph(provinces, AllowAsymmetric())
	require.NoError(t, err)

	// The one-directional edge still resolves from the side that lists it.
	names := neighborSlugs(g, 1)
	assert.Equal(t, []string{"beta", "gama"}, names)
	assert.Empty(t, g.Neighbors(2))
}

func TestNeighborsDropsUnresolvedAndDedups(t *testing.T) {
	provinces := testProvinces()
	// 99 has no record; 3 appears twice.
	provinces[0].Neighbors = []int{2, 99, 3, 3}
	provinces[2].Neighbors = []int{1}

	g, err := NewGraph(provinces, WithLogger(slog.Default()))
	require.NoError(t, err)

	assert.Equal(t, []string{"beta", "gama"}, neighborSlugs(g, 1))
	assert.Nil(t, g.Neighbors(99))
}

func TestServiceAreaDepthOne(t *testing.T) {
	// Chain: delta - alfa - beta. delta's area must not include beta.
	provinces := testProvinces()
	provinces = append(provinces, &Province{
		ID: 4, Name: "Delta", Slug: "delta", Region: RegionEge,
		Neighbors: []int{1},
		Districts: []District{{Name: "Merkez", Slug: "merkez", IsCenter: true}},
	})
	provinces[0].Neighbors = []int{2, 3, 4}

	g, err := NewGraph(provinces)
	require.NoError(t, err)

	area, err := g.ServiceArea(4)
	require.NoError(t, err)

	assert.Equal(t, "delta", area.Home.Slug)
	require.Len(t, area.Neighbors, 1)
	assert.Equal(t, "alfa", area.Neighbors[0].Slug)
	assert.False(t, area.Contains(2))

	all := area.Provinces()
	require.Len(t, all, 2)
	assert.Equal(t, "delta", all[0].Slug, "home province comes first")
}

func TestServiceAreaUnknownHome(t *testing.T) {
	g, err := NewGraph(testProvinces())
	require.NoError(t, err)

	_, err = g.ServiceArea(99)
	var unknown *ErrUnknownProvince
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, 99, unknown.ID)
}

func TestPageStats(t *testing.T) {
	g, err := NewGraph(testProvinces())
	require.NoError(t, err)

	stats, err := g.PageStats(1)
	require.NoError(t, err)

	// 3 provinces (alfa + 2 neighbors), 2+1+3 districts.
	assert.Equal(t, 3, stats.ProvincePages)
	assert.Equal(t, 6, stats.DistrictPages)
	assert.Equal(t, 9, stats.Total)
}

func TestLookupsAndOrdering(t *testing.T) {
	g, err := NewGraph(testProvinces())
	require.NoError(t, err)

	p, err := g.Province(2)
	require.NoError(t, err)
	assert.Equal(t, "beta", p.Slug)

	p, err = g.ProvinceBySlug("gama")
	require.NoError(t, err)
	assert.Equal(t, 3, p.ID)

	_, err = g.ProvinceBySlug("missing")
	assert.Error(t, err)

	all := g.All()
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})

	ege := g.ByRegion(RegionEge)
	require.Len(t, ege, 1)
	assert.Equal(t, "gama", ege[0].Slug)
}

func TestProvinceDistrictHelpers(t *testing.T) {
	p := testProvinces()[2]

	d, ok := p.District("ova")
	require.True(t, ok)
	assert.Equal(t, "Ova", d.Name)

	_, ok = p.District("missing")
	assert.False(t, ok)

	centers := p.CenterDistricts()
	require.Len(t, centers, 1)
	assert.Equal(t, "merkez", centers[0].Slug)
}

func neighborSlugs(g *Graph, id int) []string {
	var out []string
	for _, n := range g.Neighbors(id) {
		out = append(out, n.Slug)
	}
	return out
}
