// Package catalog defines the occupational health and safety service
// catalog: what the business sells, the keyword sets per service, and the
// lookups the page generator works from.
//
// Like the geo graph, the catalog is reference data: built once, immutable,
// safe for concurrent readers.
package catalog

import "fmt"

// Category groups services by their role in the offering.
type Category string

const (
	// CategoryMandatory covers the legally required core services.
	CategoryMandatory Category = "zorunlu"
	// CategoryTraining covers workplace training services.
	CategoryTraining Category = "egitim"
	// CategoryHealth covers medical examination services.
	CategoryHealth Category = "saglik"
	// CategoryCompliance covers documentation and audit services.
	CategoryCompliance Category = "belge"
	// CategoryIntegration covers ministry-system integration services.
	CategoryIntegration Category = "entegrasyon"
)

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// IsValid returns true if the category is a known grouping.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMandatory, CategoryTraining, CategoryHealth,
		CategoryCompliance, CategoryIntegration:
		return true
	default:
		return false
	}
}

// KeywordSet holds the search phrases targeted for a service, by intent tier.
type KeywordSet struct {
	// Primary are the head terms the service page ranks for.
	Primary []string `json:"primary"`

	// Secondary are supporting mid-tail terms.
	Secondary []string `json:"secondary"`

	// LongTail are question-style and price-intent phrases.
	LongTail []string `json:"long_tail"`
}

// Service describes one catalog entry.
type Service struct {
	// ID is the stable identifier, never shown to visitors.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Slug is the URL segment, unique across the catalog.
	Slug string `json:"slug"`

	// ShortDescription is a one-line summary used in meta descriptions.
	ShortDescription string `json:"short_description"`

	// Category groups the service in the offering.
	Category Category `json:"category"`

	// Mandatory marks services every employer is legally required to buy.
	// These carry the main search volume and are generated first.
	Mandatory bool `json:"mandatory"`

	// Keywords are the targeted search phrases.
	Keywords KeywordSet `json:"keywords"`

	// LocationPatterns are keyword templates with {sehir}, {ilce} and
	// {sektor} placeholders, expanded per generated page.
	LocationPatterns []string `json:"location_patterns"`

	// RequiredSections lists the content sections every page for this
	// service must carry, in render order.
	RequiredSections []string `json:"required_sections"`

	// TargetSectors optionally narrows the service to specific industries.
	TargetSectors []string `json:"target_sectors,omitempty"`

	// LegalReferences cites the statutes the service is grounded on.
	LegalReferences []string `json:"legal_references,omitempty"`
}

// Catalog is an immutable indexed view over a set of services.
type Catalog struct {
	services []Service
	byID     map[string]*Service
	bySlug   map[string]*Service
}

// New builds a catalog from the given services after validating uniqueness.
func New(services []Service) (*Catalog, error) {
	c := &Catalog{
		services: services,
		byID:     make(map[string]*Service, len(services)),
		bySlug:   make(map[string]*Service, len(services)),
	}
	for i := range services {
		s := &services[i]
		if s.ID == "" || s.Slug == "" {
			return nil, fmt.Errorf("service %q: id and slug are required", s.Name)
		}
		if !s.Category.IsValid() {
			return nil, fmt.Errorf("service %s: unknown category %q", s.ID, s.Category)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate service id %q", s.ID)
		}
		if _, dup := c.bySlug[s.Slug]; dup {
			return nil, fmt.Errorf("duplicate service slug %q", s.Slug)
		}
		c.byID[s.ID] = s
		c.bySlug[s.Slug] = s
	}
	return c, nil
}

// Default returns the built-in service catalog.
// The built-in data is validated by tests; a failure here is a build bug.
func Default() *Catalog {
	c, err := New(builtinServices())
	if err != nil {
		panic(fmt.Sprintf("builtin service catalog invalid: %v", err))
	}
	return c
}

// ByID returns the service with the given id, or false if absent.
func (c *Catalog) ByID(id string) (*Service, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// BySlug returns the service with the given slug, or false if absent.
func (c *Catalog) BySlug(slug string) (*Service, bool) {
	s, ok := c.bySlug[slug]
	return s, ok
}

// All returns every service in catalog order.
func (c *Catalog) All() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// Mandatory returns the legally required services in catalog order.
func (c *Catalog) Mandatory() []Service {
	var out []Service
	for _, s := range c.services {
		if s.Mandatory {
			out = append(out, s)
		}
	}
	return out
}

// ByCategory returns the services in the given category, in catalog order.
func (c *Catalog) ByCategory(cat Category) []Service {
	var out []Service
	for _, s := range c.services {
		if s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of services.
func (c *Catalog) Len() int {
	return len(c.services)
}
