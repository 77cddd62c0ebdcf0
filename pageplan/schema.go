package pageplan

import (
	"github.com/prosektorweb/sitegen/catalog"
	"github.com/prosektorweb/sitegen/content"
	"github.com/prosektorweb/sitegen/geo"
)

// PostalAddress is the schema.org address block.
type PostalAddress struct {
	Type            string `json:"@type"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	AddressCountry  string `json:"addressCountry"`
}

// ServedArea is one schema.org areaServed entry.
type ServedArea struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// LocalBusinessSchema is the JSON-LD structured-data block emitted on every
// location page.
type LocalBusinessSchema struct {
	Context     string        `json:"@context"`
	Type        string        `json:"@type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	Telephone   string        `json:"telephone,omitempty"`
	Email       string        `json:"email,omitempty"`
	Address     PostalAddress `json:"address"`
	AreaServed  []ServedArea  `json:"areaServed"`
	ServiceType []string      `json:"serviceType,omitempty"`
	PriceRange  string        `json:"priceRange,omitempty"`
}

// buildSchema assembles the structured-data block for one page. The home
// province is typed City, neighbors AdministrativeArea, matching how search
// engines weight the primary location.
func buildSchema(g *geo.Graph, s *catalog.Service, p *geo.Province, d *geo.District, company content.CompanyInfo, canonicalURL string) *LocalBusinessSchema {
	locality := p.Name
	if d != nil {
		locality = d.Name
	}

	name := company.Name
	if name == "" {
		name = p.Name + " OSGB"
	}

	areaServed := []ServedArea{{Type: "City", Name: p.Name}}
	for _, n := range g.Neighbors(p.ID) {
		areaServed = append(areaServed, ServedArea{Type: "AdministrativeArea", Name: n.Name})
	}

	var districtName string
	if d != nil {
		districtName = d.Name
	}

	return &LocalBusinessSchema{
		Context:     "https://schema.org",
		Type:        "ProfessionalService",
		Name:        name,
		Description: catalog.MetaDescription(s, p.Name, districtName),
		URL:         canonicalURL,
		Telephone:   company.Phone,
		Email:       company.Email,
		Address: PostalAddress{
			Type:            "PostalAddress",
			AddressLocality: locality,
			AddressRegion:   p.Name,
			AddressCountry:  "TR",
		},
		AreaServed:  areaServed,
		ServiceType: append([]string{s.Name}, s.Keywords.Primary...),
		PriceRange:  "$$",
	}
}
