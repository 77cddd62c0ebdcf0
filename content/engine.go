package content

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/prosektorweb/sitegen/catalog"
	"github.com/prosektorweb/sitegen/geo"
)

// Heading is one extracted markdown heading.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Rendered is the output of one page rendering pass.
type Rendered struct {
	// Markdown is the full page body.
	Markdown string `json:"markdown"`

	// PlainText is the body with markdown syntax stripped, used for
	// readability scoring and word counts.
	PlainText string `json:"plain_text"`

	// WordCount counts whitespace-separated tokens of PlainText.
	WordCount int `json:"word_count"`

	// Headings lists the document outline in order.
	Headings []Heading `json:"headings"`
}

// Engine renders location page bodies. Construct with NewEngine; safe for
// concurrent use.
type Engine struct {
	graph   *geo.Graph
	catalog *catalog.Catalog
	company CompanyInfo
	year    int
	logger  *slog.Logger
}

// EngineOption customizes an Engine.
type EngineOption func(*Engine)

// WithCompany sets the brand fields injected into pages.
func WithCompany(info CompanyInfo) EngineOption {
	return func(e *Engine) { e.company = info }
}

// WithYear pins the publication year shown in page copy. The year is an
// explicit input rather than wall-clock time so output stays reproducible.
func WithYear(year int) EngineOption {
	return func(e *Engine) { e.year = year }
}

// WithEngineLogger sets the logger.
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine builds a rendering engine over the given reference data.
func NewEngine(g *geo.Graph, c *catalog.Catalog, opts ...EngineOption) *Engine {
	e := &Engine{
		graph:   g,
		catalog: c,
		year:    2025,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var headingPattern = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

// Render produces the page body for a service in a province, optionally
// scoped to a district.
func (e *Engine) Render(serviceID string, provinceID int, districtSlug string) (*Rendered, error) {
	service, ok := e.catalog.ByID(serviceID)
	if !ok {
		return nil, fmt.Errorf("render page: unknown service %q", serviceID)
	}
	province, err := e.graph.Province(provinceID)
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}

	var district *geo.District
	if districtSlug != "" {
		d, ok := province.District(districtSlug)
		if !ok {
			return nil, fmt.Errorf("render page: province %s has no district %q", province.Slug, districtSlug)
		}
		district = &d
	}

	tmpl := ForService(service)
	vars := PrepareVariables(e.graph, province, service, district, e.company, e.year)

	var b strings.Builder
	var headings []Heading
	for _, section := range tmpl.Sections {
		rendered := Render(section.Template, vars)
		if strings.TrimSpace(rendered) == "" {
			if !section.Optional {
				e.logger.Warn("section rendered empty",
					"service", serviceID, "section", section.ID)
			}
			continue
		}
		b.WriteString(rendered)
		b.WriteString("\n\n")

		for _, m := range headingPattern.FindAllStringSubmatch(rendered, -1) {
			headings = append(headings, Heading{Level: len(m[1]), Text: m[2]})
		}
	}

	markdown := b.String()
	plain := stripMarkdown(markdown)

	return &Rendered{
		Markdown:  markdown,
		PlainText: plain,
		WordCount: len(strings.Fields(plain)),
		Headings:  headings,
	}, nil
}

var (
	headingMarkPattern = regexp.MustCompile(`#{1,6}\s+`)
	boldPattern        = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	linkPattern        = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	tableMarkPattern   = regexp.MustCompile(`[|:-]+`)
	blankRunPattern    = regexp.MustCompile(`\n{3,}`)
)

// stripMarkdown reduces a markdown body to readable plain text. Good enough
// for word counts and readability heuristics, not a real parser.
func stripMarkdown(md string) string {
	out := headingMarkPattern.ReplaceAllString(md, "")
	out = boldPattern.ReplaceAllString(out, "$1")
	out = linkPattern.ReplaceAllString(out, "$1")
	out = tableMarkPattern.ReplaceAllString(out, " ")
	out = blankRunPattern.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
