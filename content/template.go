// Package content renders the markdown body of location pages from
// service-specific templates.
//
// Rendering is deterministic: all inputs, including the publication year,
// come from the caller. The same inputs always produce the same output,
// which keeps regenerated sites diff-clean.
package content

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/prosektorweb/sitegen/catalog"
	"github.com/prosektorweb/sitegen/geo"
)

// TemplateSection is one block of a page template.
type TemplateSection struct {
	// ID matches the section ids declared in the service catalog.
	ID string

	// Title is the editorial label, not rendered.
	Title string

	// Template is the markdown body with {{variable}} placeholders.
	Template string

	// Optional sections are skipped when their variables are absent.
	Optional bool
}

// Template is the full section list for one service's pages.
type Template struct {
	ServiceID string
	Sections  []TemplateSection
}

// Variables is the substitution set for one rendering pass.
type Variables map[string]string

var placeholderPattern = regexp.MustCompile(`{{[^}]+}}`)

// Render substitutes {{key}} placeholders and strips any that remain
// unresolved, so a missing optional variable never leaks into the output.
func Render(template string, vars Variables) string {
	result := template
	for key, value := range vars {
		if value == "" {
			continue
		}
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return placeholderPattern.ReplaceAllString(result, "")
}

// CompanyInfo carries the brand fields injected into every page.
type CompanyInfo struct {
	Name  string `yaml:"name" json:"name"`
	Phone string `yaml:"phone" json:"phone"`
	Email string `yaml:"email" json:"email"`
}

// PrepareVariables builds the substitution set for a province, service and
// optional district. Neighbor names come from the graph so the template can
// name the wider service area.
func PrepareVariables(g *geo.Graph, p *geo.Province, s *catalog.Service, d *geo.District, company CompanyInfo, year int) Variables {
	var neighborNames []string
	for _, n := range g.Neighbors(p.ID) {
		neighborNames = append(neighborNames, n.Name)
	}
	neighbors := strings.Join(neighborNames, ", ")
	if neighbors == "" {
		neighbors = "cevre iller"
	}

	region := p.Name
	vars := Variables{
		"sehir":           p.Name,
		"sehir_kucuk":     strings.ToLower(p.Name),
		"komsu_iller":     neighbors,
		"hizmet":          s.Name,
		"hizmet_kucuk":    strings.ToLower(s.Name),
		"hizmet_aciklama": s.ShortDescription,
		"firma":           company.Name,
		"telefon":         company.Phone,
		"email":           company.Email,
		"yil":             strconv.Itoa(year),
	}
	if d != nil {
		vars["ilce"] = d.Name
		vars["ilce_kucuk"] = strings.ToLower(d.Name)
		region = d.Name + ", " + p.Name
	}
	vars["bolge"] = region
	return vars
}
