package pageplan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/prosektorweb/sitegen/catalog"
	"github.com/prosektorweb/sitegen/content"
	"github.com/prosektorweb/sitegen/geo"
)

// Plan is the complete page set for one site.
type Plan struct {
	// HomeProvinceID is the province the site is generated for.
	HomeProvinceID int `json:"home_province_id"`

	// HomeProvince is the home province display name.
	HomeProvince string `json:"home_province"`

	// BaseURL prefixes every canonical URL in the plan.
	BaseURL string `json:"base_url"`

	// Pages holds every page descriptor, in deterministic order: home
	// province first, then neighbors in adjacency order; within a
	// province, services in catalog order; within a service, the
	// province page then districts in dataset order.
	Pages []Page `json:"pages"`

	// Excluded counts pages dropped by exclusion patterns.
	Excluded int `json:"excluded"`
}

// Stats summarizes a plan.
type Stats struct {
	ProvincePages int `json:"province_pages"`
	DistrictPages int `json:"district_pages"`
	Total         int `json:"total"`
}

// Stats computes page counts over the plan.
func (p *Plan) Stats() Stats {
	var s Stats
	for _, page := range p.Pages {
		if page.IsDistrictPage {
			s.DistrictPages++
		} else {
			s.ProvincePages++
		}
	}
	s.Total = len(p.Pages)
	return s
}

// Generator explodes service areas into page plans. Construct with New;
// safe for concurrent use.
type Generator struct {
	graph    *geo.Graph
	catalog  *catalog.Catalog
	engine   *content.Engine
	logger   *slog.Logger
	company  content.CompanyInfo
	baseURL  string
	services []string
	exclude  []string
	workers  int

	includeDistricts bool
	renderBodies     bool
}

// defaultWorkers bounds the per-province fan-out.
const defaultWorkers = 4

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithBaseURL sets the canonical URL prefix, e.g. "https://bursaosgb.example".
func WithBaseURL(baseURL string) GeneratorOption {
	return func(g *Generator) { g.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithServices restricts the plan to the given service ids. The default is
// the catalog's mandatory services.
func WithServices(ids ...string) GeneratorOption {
	return func(g *Generator) { g.services = ids }
}

// WithAllServices plans pages for the entire catalog.
func WithAllServices() GeneratorOption {
	return func(g *Generator) {
		g.services = nil
		for _, s := range g.catalog.All() {
			g.services = append(g.services, s.ID)
		}
	}
}

// WithoutDistricts limits the plan to province-level pages.
func WithoutDistricts() GeneratorOption {
	return func(g *Generator) { g.includeDistricts = false }
}

// WithCompany sets the brand fields stamped into titles and schema blocks.
func WithCompany(info content.CompanyInfo) GeneratorOption {
	return func(g *Generator) { g.company = info }
}

// WithExcludePatterns drops pages whose path matches any of the given glob
// patterns, e.g. "/isg-katip/**" or "/*/usak/*/".
func WithExcludePatterns(patterns ...string) GeneratorOption {
	return func(g *Generator) { g.exclude = patterns }
}

// WithContentEngine renders full page bodies into the plan. Without it the
// plan carries descriptors only, which is much cheaper for estimation runs.
func WithContentEngine(e *content.Engine) GeneratorOption {
	return func(g *Generator) {
		g.engine = e
		g.renderBodies = true
	}
}

// WithWorkers bounds the number of provinces rendered concurrently.
func WithWorkers(n int) GeneratorOption {
	return func(g *Generator) {
		if n > 0 {
			g.workers = n
		}
	}
}

// WithGeneratorLogger sets the logger.
func WithGeneratorLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) { g.logger = logger }
}

// New builds a page plan generator over the given reference data.
func New(graph *geo.Graph, cat *catalog.Catalog, opts ...GeneratorOption) (*Generator, error) {
	g := &Generator{
		graph:            graph,
		catalog:          cat,
		logger:           slog.Default(),
		workers:          defaultWorkers,
		includeDistricts: true,
	}
	for _, opt := range opts {
		opt(g)
	}

	if len(g.services) == 0 {
		for _, s := range cat.Mandatory() {
			g.services = append(g.services, s.ID)
		}
	}
	for _, id := range g.services {
		if _, ok := cat.ByID(id); !ok {
			return nil, fmt.Errorf("page generator: unknown service %q", id)
		}
	}
	for _, pattern := range g.exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("page generator: invalid exclude pattern %q", pattern)
		}
	}
	return g, nil
}

// Generate builds the full page plan for a home province. Work fans out per
// province in the service area; output order stays deterministic regardless
// of scheduling.
func (g *Generator) Generate(ctx context.Context, homeID int) (*Plan, error) {
	area, err := g.graph.ServiceArea(homeID)
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	provinces := area.Provinces()
	perProvince := make([][]Page, len(provinces))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i, province := range provinces {
		i, province := i, province
		eg.Go(func() error {
			pages, err := g.provincePages(ctx, province)
			if err != nil {
				return err
			}
			perProvince[i] = pages
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	plan := &Plan{
		HomeProvinceID: homeID,
		HomeProvince:   area.Home.Name,
		BaseURL:        g.baseURL,
	}

	seen := make(map[string]string)
	for _, pages := range perProvince {
		for _, page := range pages {
			excluded, err := g.isExcluded(page.Path)
			if err != nil {
				return nil, err
			}
			if excluded {
				plan.Excluded++
				continue
			}
			if prev, dup := seen[page.Path]; dup {
				return nil, fmt.Errorf("generate plan: url collision at %s between %s and %s",
					page.Path, prev, page.ServiceID)
			}
			seen[page.Path] = page.ServiceID
			plan.Pages = append(plan.Pages, page)
		}
	}

	g.logger.Info("page plan generated",
		"home_province", area.Home.Slug,
		"provinces", len(provinces),
		"pages", len(plan.Pages),
		"excluded", plan.Excluded)
	return plan, nil
}

func (g *Generator) provincePages(ctx context.Context, province *geo.Province) ([]Page, error) {
	var pages []Page
	for _, serviceID := range g.services {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		service, _ := g.catalog.ByID(serviceID)

		page, err := g.buildPage(service, province, nil)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *page)

		if !g.includeDistricts {
			continue
		}
		for i := range province.Districts {
			district := &province.Districts[i]
			page, err := g.buildPage(service, province, district)
			if err != nil {
				return nil, err
			}
			pages = append(pages, *page)
		}
	}
	return pages, nil
}

func (g *Generator) buildPage(service *catalog.Service, province *geo.Province, district *geo.District) (*Page, error) {
	var path, districtName, districtSlug string
	if district != nil {
		path = DistrictPagePath(service.Slug, province.Slug, district.Slug)
		districtName = district.Name
		districtSlug = district.Slug
	} else {
		path = ProvincePagePath(service.Slug, province.Slug)
	}
	canonical := g.baseURL + path

	h1 := province.Name + " " + service.Name
	if district != nil {
		h1 = district.Name + " " + service.Name
	}

	page := &Page{
		Path:            path,
		CanonicalURL:    canonical,
		Title:           catalog.PageTitle(service, province.Name, districtName, g.company.Name),
		MetaDescription: catalog.MetaDescription(service, province.Name, districtName),
		Keywords:        catalog.LocationKeywords(service, province.Name, districtName),
		H1:              h1,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		ProvinceID:      province.ID,
		ProvinceSlug:    province.Slug,
		DistrictSlug:    districtSlug,
		IsDistrictPage:  district != nil,
		Sections:        service.RequiredSections,
		Schema:          buildSchema(g.graph, service, province, district, g.company, canonical),
		RelatedPages:    g.relatedPages(service, province, district),
		Breadcrumbs:     g.breadcrumbs(service, province, district),
	}

	if g.renderBodies {
		body, err := g.engine.Render(service.ID, province.ID, districtSlug)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", path, err)
		}
		sections, err := g.engine.Sections(service.ID, province.ID, districtSlug)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", path, err)
		}
		page.Body = body
		page.ContentSections = sections
	}
	return page, nil
}

// relatedPages cross-links the same service in nearby locations: up to three
// sibling districts and up to two neighbor provinces.
func (g *Generator) relatedPages(service *catalog.Service, province *geo.Province, district *geo.District) []string {
	var related []string
	if district != nil {
		count := 0
		for _, d := range province.Districts {
			if d.Slug == district.Slug {
				continue
			}
			related = append(related, DistrictPagePath(service.Slug, province.Slug, d.Slug))
			count++
			if count == 3 {
				break
			}
		}
	}
	neighbors := g.graph.Neighbors(province.ID)
	for i, n := range neighbors {
		if i == 2 {
			break
		}
		related = append(related, ProvincePagePath(service.Slug, n.Slug))
	}
	return related
}

func (g *Generator) breadcrumbs(service *catalog.Service, province *geo.Province, district *geo.District) []Breadcrumb {
	trail := []Breadcrumb{
		{Name: "Ana Sayfa", URL: "/"},
		{Name: service.Name, URL: "/" + service.Slug + "/"},
		{Name: province.Name, URL: ProvincePagePath(service.Slug, province.Slug)},
	}
	if district != nil {
		trail = append(trail, Breadcrumb{
			Name: district.Name,
			URL:  DistrictPagePath(service.Slug, province.Slug, district.Slug),
		})
	}
	return trail
}

func (g *Generator) isExcluded(path string) (bool, error) {
	for _, pattern := range g.exclude {
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// BatchResult is the outcome of generating plans for several home provinces
// under one base URL.
type BatchResult struct {
	Plans []*Plan `json:"plans"`

	// Deduplicated counts pages removed from later plans because an
	// earlier plan already claimed the same path. Adjacent home provinces
	// overlap in their service areas, so this is expected, not an error.
	Deduplicated int `json:"deduplicated"`
}

// TotalPages counts the pages remaining across all plans.
func (b *BatchResult) TotalPages() int {
	total := 0
	for _, p := range b.Plans {
		total += len(p.Pages)
	}
	return total
}

// GenerateBatch builds plans for several home provinces and removes
// cross-plan duplicate paths, keeping the earliest occurrence.
func (g *Generator) GenerateBatch(ctx context.Context, homeIDs []int) (*BatchResult, error) {
	result := &BatchResult{}
	seen := make(map[string]struct{})

	for _, id := range homeIDs {
		plan, err := g.Generate(ctx, id)
		if err != nil {
			return nil, err
		}

		kept := plan.Pages[:0]
		for _, page := range plan.Pages {
			if _, dup := seen[page.Path]; dup {
				result.Deduplicated++
				continue
			}
			seen[page.Path] = struct{}{}
			kept = append(kept, page)
		}
		plan.Pages = kept
		result.Plans = append(result.Plans, plan)
	}
	return result, nil
}

// Estimate computes the page counts a plan for homeID would contain,
// without building descriptors.
func (g *Generator) Estimate(homeID int) (Stats, error) {
	geoStats, err := g.graph.PageStats(homeID)
	if err != nil {
		return Stats{}, err
	}
	n := len(g.services)
	s := Stats{ProvincePages: geoStats.ProvincePages * n}
	if g.includeDistricts {
		s.DistrictPages = geoStats.DistrictPages * n
	}
	s.Total = s.ProvincePages + s.DistrictPages
	return s, nil
}

// EstimateAll computes per-province page estimates for every province in
// the graph. Each estimate includes one homepage on top of location pages.
func (g *Generator) EstimateAll() ([]ProvinceEstimate, error) {
	var out []ProvinceEstimate
	for _, p := range g.graph.All() {
		s, err := g.Estimate(p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, ProvinceEstimate{
			ProvinceID:   p.ID,
			ProvinceName: p.Name,
			Pages:        s.Total + 1,
		})
	}
	return out, nil
}

// ProvinceEstimate is one row of EstimateAll.
type ProvinceEstimate struct {
	ProvinceID   int    `json:"province_id"`
	ProvinceName string `json:"province_name"`
	Pages        int    `json:"pages"`
}
