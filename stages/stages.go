// Package stages provides the deterministic stage handlers that wire the
// geographic reference data, the service catalog, the content engine and
// the page plan generator into a pipeline run. Every handler is a pure
// function of the run state and the immutable reference data, so a run
// with the same inputs always produces the same site.
package stages

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prosektorweb/sitegen/catalog"
	"github.com/prosektorweb/sitegen/content"
	"github.com/prosektorweb/sitegen/geo"
	"github.com/prosektorweb/sitegen/pageplan"
	"github.com/prosektorweb/sitegen/pipeline"
)

// Env carries everything the stage handlers need for one project.
type Env struct {
	// Request seeds the input stage.
	Request pipeline.InputRequest

	Graph   *geo.Graph
	Catalog *catalog.Catalog

	// HomeProvinceID anchors the service area the site targets.
	HomeProvinceID int

	// BaseURL prefixes every canonical URL, e.g. "https://bursaosgb.example".
	BaseURL string

	// ServiceIDs restricts the plan; empty means the mandatory catalog
	// services.
	ServiceIDs []string

	// ExcludePatterns drops matching page paths from the plan.
	ExcludePatterns []string

	// NoDistricts limits the plan to province-level pages.
	NoDistricts bool

	Company content.CompanyInfo

	// Year is stamped into generated content instead of the clock.
	Year int

	// PlanDate is the lastmod date written into sitemaps.
	PlanDate time.Time

	Metrics *pipeline.Metrics
	Logger  *slog.Logger

	engine    *content.Engine
	generator *pageplan.Generator
	services  []*catalog.Service
}

// Register validates the environment, builds the content engine and page
// plan generator, and installs a handler for every stage on the runner.
func Register(r *pipeline.Runner, env *Env) error {
	if env.Graph == nil || env.Catalog == nil {
		return fmt.Errorf("register stages: graph and catalog are required")
	}
	if _, err := env.Graph.Province(env.HomeProvinceID); err != nil {
		return fmt.Errorf("register stages: %w", err)
	}
	if env.Logger == nil {
		env.Logger = slog.Default()
	}
	if env.PlanDate.IsZero() {
		return fmt.Errorf("register stages: plan date is required")
	}

	ids := env.ServiceIDs
	if len(ids) == 0 {
		for _, s := range env.Catalog.Mandatory() {
			ids = append(ids, s.ID)
		}
	}
	for _, id := range ids {
		s, ok := env.Catalog.ByID(id)
		if !ok {
			return fmt.Errorf("register stages: unknown service %q", id)
		}
		env.services = append(env.services, s)
	}

	engineOpts := []content.EngineOption{content.WithCompany(env.Company)}
	if env.Year != 0 {
		engineOpts = append(engineOpts, content.WithYear(env.Year))
	}
	env.engine = content.NewEngine(env.Graph, env.Catalog, engineOpts...)

	genOpts := []pageplan.GeneratorOption{
		pageplan.WithBaseURL(env.BaseURL),
		pageplan.WithServices(ids...),
		pageplan.WithCompany(env.Company),
		pageplan.WithContentEngine(env.engine),
		pageplan.WithGeneratorLogger(env.Logger),
	}
	if len(env.ExcludePatterns) > 0 {
		genOpts = append(genOpts, pageplan.WithExcludePatterns(env.ExcludePatterns...))
	}
	if env.NoDistricts {
		genOpts = append(genOpts, pageplan.WithoutDistricts())
	}
	gen, err := pageplan.New(env.Graph, env.Catalog, genOpts...)
	if err != nil {
		return fmt.Errorf("register stages: %w", err)
	}
	env.generator = gen

	r.Register(pipeline.StageInput, env.inputStage)
	r.Register(pipeline.StageResearch, env.researchStage)
	r.Register(pipeline.StageDesign, env.designStage)
	r.Register(pipeline.StageContent, env.contentStage)
	r.Register(pipeline.StageSEO, env.seoStage)
	r.Register(pipeline.StageBuild, env.buildStage)
	r.Register(pipeline.StageReview, env.reviewStage)
	r.Register(pipeline.StagePublish, env.publishStage)
	return nil
}

var slugReplacer = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
	"Ç", "c", "Ğ", "g", "İ", "i", "Ö", "o", "Ş", "s", "Ü", "u",
)

// slugify folds a display name into a URL slug.
func slugify(name string) string {
	s := strings.ToLower(slugReplacer.Replace(name))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// shade scales every channel of a #RRGGBB color, clamping to the byte
// range. Factors above 1 lighten, below 1 darken.
func shade(hex string, factor float64) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return hex
	}
	scale := func(c int) int {
		v := int(float64(c) * factor)
		if v > 255 {
			return 255
		}
		return v
	}
	return fmt.Sprintf("#%02X%02X%02X", scale(r), scale(g), scale(b))
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
