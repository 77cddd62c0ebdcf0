package geo

import (
	"fmt"
	"log/slog"
	"sort"
)

// ErrUnknownProvince is returned when a lookup references a province id or
// slug that does not exist in the graph.
type ErrUnknownProvince struct {
	ID   int
	Slug string
}

// Error implements the error interface.
func (e *ErrUnknownProvince) Error() string {
	if e.Slug != "" {
		return fmt.Sprintf("unknown province: %q", e.Slug)
	}
	return fmt.Sprintf("unknown province: %d", e.ID)
}

// Graph is the immutable province adjacency graph.
// Construct via Load, LoadFile, or Default; do not mutate after construction.
type Graph struct {
	provinces []*Province
	byID      map[int]*Province
	bySlug    map[string]*Province
	logger    *slog.Logger
}

// NewGraph builds a graph from the given provinces after validating integrity.
func NewGraph(provinces []*Province, opts ...Option) (*Graph, error) {
	g := &Graph{
		provinces: provinces,
		byID:      make(map[int]*Province, len(provinces)),
		bySlug:    make(map[string]*Province, len(provinces)),
		logger:    slog.Default(),
	}

	cfg := applyOptions(opts)
	if cfg.logger != nil {
		g.logger = cfg.logger
	}

	for _, p := range provinces {
		if _, dup := g.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate province id %d (%s)", p.ID, p.Name)
		}
		if _, dup := g.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate province slug %q", p.Slug)
		}
		g.byID[p.ID] = p
		g.bySlug[p.Slug] = p

		seen := make(map[string]struct{}, len(p.Districts))
		for _, d := range p.Districts {
			if d.Slug == "" {
				return nil, fmt.Errorf("province %s: district %q has empty slug", p.Slug, d.Name)
			}
			if _, dup := seen[d.Slug]; dup {
				return nil, fmt.Errorf("province %s: duplicate district slug %q", p.Slug, d.Slug)
			}
			seen[d.Slug] = struct{}{}
		}
	}

	if err := g.checkAdjacency(cfg.allowAsymmetric); err != nil {
		return nil, err
	}

	return g, nil
}

// checkAdjacency verifies the neighbor lists. Unknown neighbor ids are
// tolerated and logged (the lookup path drops them); asymmetric edges are an
// error unless explicitly allowed, since the source data never guaranteed
// symmetry and silently one-directional links skew page cross-linking.
func (g *Graph) checkAdjacency(allowAsymmetric bool) error {
	for _, p := range g.provinces {
		for _, id := range p.Neighbors {
			n, ok := g.byID[id]
			if !ok {
				g.logger.Warn("neighbor id has no province record, will be dropped",
					"province", p.Slug, "neighbor_id", id)
				continue
			}
			if !containsInt(n.Neighbors, p.ID) {
				if !allowAsymmetric {
					return fmt.Errorf("asymmetric adjacency: %s lists %s but not vice versa",
						p.Slug, n.Slug)
				}
				g.logger.Warn("tolerating asymmetric adjacency",
					"province", p.Slug, "neighbor", n.Slug)
			}
		}
	}
	return nil
}

// Province returns the province with the given id.
func (g *Graph) Province(id int) (*Province, error) {
	p, ok := g.byID[id]
	if !ok {
		return nil, &ErrUnknownProvince{ID: id}
	}
	return p, nil
}

// ProvinceBySlug returns the province with the given slug.
func (g *Graph) ProvinceBySlug(slug string) (*Province, error) {
	p, ok := g.bySlug[slug]
	if !ok {
		return nil, &ErrUnknownProvince{Slug: slug}
	}
	return p, nil
}

// Neighbors returns the provinces referenced by the neighbor-id list of the
// given province. Ids without a province record are silently dropped and
// duplicates removed; an unknown province id yields an empty slice.
func (g *Graph) Neighbors(id int) []*Province {
	p, ok := g.byID[id]
	if !ok {
		return nil
	}

	seen := make(map[int]struct{}, len(p.Neighbors))
	neighbors := make([]*Province, 0, len(p.Neighbors))
	for _, nid := range p.Neighbors {
		if _, dup := seen[nid]; dup {
			continue
		}
		seen[nid] = struct{}{}
		n, ok := g.byID[nid]
		if !ok {
			g.logger.Debug("dropping unresolved neighbor id", "province", p.Slug, "neighbor_id", nid)
			continue
		}
		neighbors = append(neighbors, n)
	}
	return neighbors
}

// ServiceArea resolves the depth-1 service area for a home province: the
// province itself plus its direct neighbors. Transitive reachability is
// deliberately not computed; a business serves its home region and the
// immediately adjacent ones only.
func (g *Graph) ServiceArea(homeID int) (ServiceArea, error) {
	home, err := g.Province(homeID)
	if err != nil {
		return ServiceArea{}, err
	}
	return ServiceArea{
		Home:      home,
		Neighbors: g.Neighbors(homeID),
	}, nil
}

// All returns every province, ordered by id.
func (g *Graph) All() []*Province {
	out := make([]*Province, len(g.provinces))
	copy(out, g.provinces)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByRegion returns the provinces in the given macro-region, ordered by id.
func (g *Graph) ByRegion(region Region) []*Province {
	var out []*Province
	for _, p := range g.All() {
		if p.Region == region {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of provinces in the graph.
func (g *Graph) Len() int {
	return len(g.provinces)
}

// industrialIDs lists industry-dense provinces in priority order.
var industrialIDs = []int{34, 41, 16, 35, 6, 1, 42, 26, 33, 27}

// Industrial returns the industry-dense priority provinces present in the
// graph, in fixed priority order. Missing ids are skipped.
func (g *Graph) Industrial() []*Province {
	var out []*Province
	for _, id := range industrialIDs {
		if p, ok := g.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// PageStats summarizes how many location pages a home province expands to,
// before multiplying by the service count.
type PageStats struct {
	// ProvincePages is the number of province-level page locations
	// (home + resolvable neighbors).
	ProvincePages int `json:"province_pages"`

	// DistrictPages is the number of district-level page locations across
	// the service area.
	DistrictPages int `json:"district_pages"`

	// Total is ProvincePages + DistrictPages.
	Total int `json:"total"`
}

// PageStats computes the location page counts for a home province.
func (g *Graph) PageStats(homeID int) (PageStats, error) {
	area, err := g.ServiceArea(homeID)
	if err != nil {
		return PageStats{}, err
	}

	stats := PageStats{ProvincePages: len(area.Provinces())}
	stats.DistrictPages = area.DistrictCount()
	stats.Total = stats.ProvincePages + stats.DistrictPages
	return stats, nil
}

// Option customizes graph construction.
type Option func(*options)

type options struct {
	allowAsymmetric bool
	logger          *slog.Logger
}

// AllowAsymmetric tolerates one-directional adjacency edges instead of
// rejecting the dataset. Tolerated edges are logged.
func AllowAsymmetric() Option {
	return func(o *options) { o.allowAsymmetric = true }
}

// WithLogger sets the logger used for data-integrity warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func applyOptions(opts []Option) options {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
