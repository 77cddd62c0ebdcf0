// Package geo provides the province/district adjacency graph used to
// compute service areas for location-targeted page generation.
//
// The graph is reference data: loaded once at process start, immutable
// afterwards, and safe for concurrent readers without locking.
package geo

// Region identifies one of the seven macro-regions.
type Region string

const (
	RegionMarmara     Region = "marmara"
	RegionEge         Region = "ege"
	RegionAkdeniz     Region = "akdeniz"
	RegionIcAnadolu   Region = "ic_anadolu"
	RegionKaradeniz   Region = "karadeniz"
	RegionDoguAnadolu Region = "dogu_anadolu"
	RegionGuneydogu   Region = "guneydogu_anadolu"
)

// String returns the string representation of the region.
func (r Region) String() string {
	return string(r)
}

// IsValid returns true if the region is one of the seven macro-regions.
func (r Region) IsValid() bool {
	switch r {
	case RegionMarmara, RegionEge, RegionAkdeniz, RegionIcAnadolu,
		RegionKaradeniz, RegionDoguAnadolu, RegionGuneydogu:
		return true
	default:
		return false
	}
}

// RiskClass is the dominant workplace hazard classification for a province.
type RiskClass string

const (
	// RiskLow marks provinces where low-hazard workplaces dominate.
	RiskLow RiskClass = "az_tehlikeli"
	// RiskMedium marks provinces where hazardous workplaces dominate.
	RiskMedium RiskClass = "tehlikeli"
	// RiskHigh marks provinces where highly hazardous workplaces dominate.
	RiskHigh RiskClass = "cok_tehlikeli"
)

// District is an administrative subdivision owned by exactly one province.
type District struct {
	// Name is the display name.
	Name string `yaml:"name" json:"name"`

	// Slug is the URL-friendly identifier, unique within the province.
	Slug string `yaml:"slug" json:"slug"`

	// Population is the resident count if known.
	Population int `yaml:"population,omitempty" json:"population,omitempty"`

	// IsCenter marks districts belonging to the provincial urban core.
	IsCenter bool `yaml:"is_center,omitempty" json:"is_center,omitempty"`
}

// Province is one node of the adjacency graph.
type Province struct {
	// ID is the stable regional (plate) code.
	ID int `yaml:"id" json:"id"`

	// Name is the display name.
	Name string `yaml:"name" json:"name"`

	// Slug is the URL-friendly identifier, unique across the graph.
	Slug string `yaml:"slug" json:"slug"`

	// Region is the macro-region tag.
	Region Region `yaml:"region" json:"region"`

	// Neighbors lists the ids of bordering provinces.
	Neighbors []int `yaml:"neighbors" json:"neighbors"`

	// Districts are the subdivisions owned by this province.
	Districts []District `yaml:"districts" json:"districts"`

	// Population is the resident count if known.
	Population int `yaml:"population,omitempty" json:"population,omitempty"`

	// RiskClass is the dominant hazard classification if known.
	RiskClass RiskClass `yaml:"risk_class,omitempty" json:"risk_class,omitempty"`
}

// District returns the district with the given slug, or false if absent.
func (p *Province) District(slug string) (District, bool) {
	for _, d := range p.Districts {
		if d.Slug == slug {
			return d, true
		}
	}
	return District{}, false
}

// CenterDistricts returns the districts flagged as part of the urban core.
func (p *Province) CenterDistricts() []District {
	var centers []District
	for _, d := range p.Districts {
		if d.IsCenter {
			centers = append(centers, d)
		}
	}
	return centers
}

// ServiceArea is the derived set of provinces a business serves: its home
// province plus the direct graph neighbors. It is always recomputed from the
// graph, never persisted as authoritative state.
type ServiceArea struct {
	// Home is the province the business operates from.
	Home *Province `json:"home"`

	// Neighbors are the provinces directly adjacent to Home.
	Neighbors []*Province `json:"neighbors"`
}

// Provinces returns all provinces in the area, home first.
func (a ServiceArea) Provinces() []*Province {
	out := make([]*Province, 0, 1+len(a.Neighbors))
	out = append(out, a.Home)
	out = append(out, a.Neighbors...)
	return out
}

// Contains reports whether the province id is part of the service area.
func (a ServiceArea) Contains(id int) bool {
	if a.Home != nil && a.Home.ID == id {
		return true
	}
	for _, n := range a.Neighbors {
		if n.ID == id {
			return true
		}
	}
	return false
}

// DistrictCount returns the total number of districts across the area.
func (a ServiceArea) DistrictCount() int {
	count := 0
	for _, p := range a.Provinces() {
		count += len(p.Districts)
	}
	return count
}
