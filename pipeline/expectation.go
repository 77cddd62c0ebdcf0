package pipeline

import (
	"fmt"
	"math"
	"net/url"
	"strings"
)

// Expectation is a non-binding forecast of the next stage, derived purely
// from the completed stage's output. It drives the operator preview in
// interactive mode and is advisory only; forecasting never blocks a run.
type Expectation struct {
	// NextStage is empty after the terminal stage.
	NextStage Stage `json:"next_stage,omitempty"`

	// Outputs is the stage-specific forecast record, one of the
	// *Forecast types in this package.
	Outputs any `json:"expected_outputs"`
}

// Terminal reports whether the pipeline has no further stage.
func (e Expectation) Terminal() bool { return e.NextStage == "" }

// ResearchForecast previews the research stage.
type ResearchForecast struct {
	Topics            []string `json:"research_topics"`
	EstimatedDuration string   `json:"estimated_duration"`
}

// DesignForecast previews the design stage.
type DesignForecast struct {
	SuggestedColors []string `json:"suggested_colors"`
	SuggestedFonts  []string `json:"suggested_fonts"`
	Direction       string   `json:"design_direction"`
}

// ContentForecast previews the content stage.
type ContentForecast struct {
	PageCount          int      `json:"page_count"`
	ContentTypes       []string `json:"content_types"`
	EstimatedWordCount int      `json:"estimated_word_count"`
}

// SeoForecast previews the seo stage.
type SeoForecast struct {
	Files          []string `json:"seo_files"`
	SchemaTypes    []string `json:"schema_types"`
	EstimatedScore int      `json:"estimated_seo_score"`
}

// BuildForecast previews the build stage.
type BuildForecast struct {
	OutputFiles       []string `json:"output_files"`
	Duration          string   `json:"build_duration"`
	OptimizationLevel string   `json:"optimization_level"`
}

// ReviewForecast previews the review stage.
type ReviewForecast struct {
	Checks          []string `json:"review_checks"`
	PotentialIssues []string `json:"potential_issues"`
	QualityScore    int      `json:"quality_score"`
}

// PublishForecast previews the publish stage.
type PublishForecast struct {
	Platform            string   `json:"deployment_platform"`
	EstimatedDeployTime string   `json:"estimated_deploy_time"`
	RequiredActions     []string `json:"required_actions"`
}

// LiveForecast confirms the published site. Terminal.
type LiveForecast struct {
	LiveURL    string `json:"live_url"`
	Monitoring bool   `json:"monitoring_setup"`
	Analytics  bool   `json:"analytics_setup"`
}

// industryPalettes maps an industry keyword to its suggested colors.
// Ordered so forecasts are deterministic.
var industryPalettes = []struct {
	keyword string
	colors  []string
}{
	{"saglik", []string{"#0891B2", "#059669"}},
	{"teknoloji", []string{"#4F46E5", "#6366F1"}},
	{"finans", []string{"#1E40AF", "#047857"}},
	{"egitim", []string{"#2563EB", "#7C3AED"}},
	{"hukuk", []string{"#1E293B", "#0F172A"}},
	{"insaat", []string{"#EA580C", "#0369A1"}},
	{"gida", []string{"#16A34A", "#CA8A04"}},
}

var defaultPalette = []string{"#1E40AF", "#059669"}

var suggestedFonts = []string{"Inter", "Poppins", "Montserrat"}

// Forecast derives the expectation for the stage after the given one from
// that stage's validated output. Every branch is a deterministic,
// side-effect-free projection; scores are clamped to [0,100] and rounding
// is half away from zero.
func Forecast(stage Stage, output any) (Expectation, error) {
	switch stage {
	case StageInput:
		out, ok := output.(*InputOutput)
		if !ok {
			return Expectation{}, forecastTypeError(stage, output)
		}
		return forecastResearch(out), nil
	case StageResearch:
		out, ok := output.(*ResearchOutput)
		if !ok {
			return Expectation{}, forecastTypeError(stage, output)
		}
		return forecastDesign(out), nil
	case StageDesign:
		out, ok := output.(*DesignOutput)
		if !ok {
			return Expectation{}, forecastTypeError(stage, output)
		}
		return forecastContent(out), nil
	case StageContent:
		out, ok := output.(*ContentOutput)
		if !ok {
			return Expectation{}, forecastTypeError(stage, output)
		}
		return forecastSeo(out), nil
	case StageSEO:
		out, ok := output.(*SeoOutput)
		if !ok {
			return Expectation{}, forecastTypeError(stage, output)
		}
		return forecastBuild(out), nil
	case StageBuild:
		out, ok := output.(*BuildOutput)
		if !ok {
			return Expectation{}, forecastTypeError(stage, output)
		}
		return forecastReview(out), nil
	case StageReview:
		out, ok := output.(*ReviewOutput)
		if !ok {
			return Expectation{}, forecastTypeError(stage, output)
		}
		return forecastPublish(out), nil
	case StagePublish:
		out, ok := output.(*PublishOutput)
		if !ok {
			return Expectation{}, forecastTypeError(stage, output)
		}
		return forecastLive(out), nil
	default:
		return Expectation{}, fmt.Errorf("forecast: unknown stage %q", stage)
	}
}

func forecastTypeError(stage Stage, output any) error {
	return fmt.Errorf("forecast %s: unexpected output type %T", stage, output)
}

// forecastResearch derives research topics from the company profile and
// scales the duration estimate by topic count.
func forecastResearch(out *InputOutput) Expectation {
	var topics []string
	if out.Company.Industry != "" {
		topics = append(topics,
			out.Company.Industry+" sektoru analizi",
			out.Company.Industry+" rakip analizi")
	}
	if len(out.Company.TargetAudience) > 0 {
		topics = append(topics, "Hedef kitle analizi")
	}
	topics = append(topics, "Anahtar kelime arastirmasi")

	minutes := float64(len(topics)) * 0.5
	if minutes < 2 {
		minutes = 2
	}

	return Expectation{
		NextStage: StageResearch,
		Outputs: &ResearchForecast{
			Topics: topics,
			EstimatedDuration: fmt.Sprintf("%d-%d dakika",
				int(math.Round(minutes)), int(math.Round(minutes+1))),
		},
	}
}

// forecastDesign suggests a palette by industry keyword, a static font
// list, and a design direction by competitor pressure.
func forecastDesign(out *ResearchOutput) Expectation {
	var colors []string
	if out.Industry != nil {
		industry := strings.ToLower(out.Industry.Name)
		for _, entry := range industryPalettes {
			if strings.Contains(industry, entry.keyword) {
				colors = append(colors, entry.colors...)
			}
		}
	}
	if len(colors) == 0 {
		colors = append(colors, defaultPalette...)
	}
	colors = dedupStrings(colors)

	direction := "modern ve profesyonel"
	if out.Industry != nil && out.Industry.Competitors > 10 {
		direction = "diferansiye edici ve dikkat cekici"
	}

	fonts := make([]string, len(suggestedFonts))
	copy(fonts, suggestedFonts)

	return Expectation{
		NextStage: StageDesign,
		Outputs: &DesignForecast{
			SuggestedColors: colors,
			SuggestedFonts:  fonts,
			Direction:       direction,
		},
	}
}

// forecastContent works from the fixed base page set and scales the word
// estimate by the typography density.
func forecastContent(out *DesignOutput) Expectation {
	basePages := []string{"homepage", "about", "services", "contact"}
	contentTypes := []string{"hero", "features", "cta", "faq"}

	words := float64(len(basePages) * 500)
	switch out.Typography.Scale {
	case ScaleSpacious:
		words *= 0.8
	case ScaleCompact:
		words *= 1.2
	}

	return Expectation{
		NextStage: StageContent,
		Outputs: &ContentForecast{
			PageCount:          len(basePages),
			ContentTypes:       contentTypes,
			EstimatedWordCount: int(math.Round(words)),
		},
	}
}

// forecastSeo blends average readability with a required-pages bonus.
func forecastSeo(out *ContentOutput) Expectation {
	schemaTypes := []string{"Organization", "WebSite"}
	for _, p := range out.Pages {
		if p.Type == PageFAQ {
			schemaTypes = append(schemaTypes, "FAQPage")
			break
		}
	}
	for _, p := range out.Pages {
		if p.Type == PageServices {
			schemaTypes = append(schemaTypes, "Service")
			break
		}
	}

	readability := out.AverageReadability
	if readability == 0 {
		readability = 70
	}
	bonus := 40.0
	if len(out.Pages) >= 4 {
		bonus = 60
	}
	score := clampScore(math.Round(readability*0.4 + bonus))

	return Expectation{
		NextStage: StageSEO,
		Outputs: &SeoForecast{
			Files:          []string{"robots.txt", "sitemap.xml", "manifest.json"},
			SchemaTypes:    schemaTypes,
			EstimatedScore: score,
		},
	}
}

// forecastBuild derives output file paths from the sitemap URLs and picks
// an optimization level by page count.
func forecastBuild(out *SeoOutput) Expectation {
	files := []string{"index.html"}
	for _, raw := range out.SitemapURLs {
		files = append(files, outputFileForURL(raw))
	}
	for _, f := range out.Files {
		files = append(files, f.Filename)
	}
	files = dedupStrings(files)

	pageCount := len(out.SitemapURLs)
	seconds := 60 + pageCount*5
	duration := fmt.Sprintf("%d sn", seconds%60)
	if seconds >= 60 {
		duration = fmt.Sprintf("%d dk %d sn", seconds/60, seconds%60)
	}

	optimization := "standard"
	switch {
	case pageCount > 20:
		optimization = "aggressive"
	case pageCount < 10:
		optimization = "full"
	}

	return Expectation{
		NextStage: StageBuild,
		Outputs: &BuildForecast{
			OutputFiles:       files,
			Duration:          duration,
			OptimizationLevel: optimization,
		},
	}
}

// outputFileForURL maps a sitemap URL onto the static file the build will
// emit for it. The root path maps to the top-level index file.
func outputFileForURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "page.html"
	}
	path := strings.TrimSuffix(u.Path, "/")
	if path == "" {
		return "index.html"
	}
	return path + "/index.html"
}

// buildIssueThresholds: a bundle above 500 kB or any audit sub-score
// below its cutoff flags a potential issue, each costing 5 points.
func forecastReview(out *BuildOutput) Expectation {
	checks := []string{
		"Lighthouse performans",
		"Erisilebilirlik (a11y)",
		"Responsive tasarim",
		"Renk kontrast kontrolu",
		"Typography hiyerarsisi",
		"Form UX",
		"Loading state'ler",
	}

	var issues []string
	if out.Stats != nil && out.Stats.BundleSize > 500000 {
		issues = append(issues, "Bundle boyutu yuksek - optimizasyon gerekebilir")
	}
	if out.Lighthouse != nil {
		if out.Lighthouse.Performance < 80 {
			issues = append(issues, "Performans skoru dusuk")
		}
		if out.Lighthouse.Accessibility < 90 {
			issues = append(issues, "Erisilebilirlik iyilestirmesi gerekebilir")
		}
		if out.Lighthouse.SEO < 90 {
			issues = append(issues, "SEO optimizasyonu gerekebilir")
		}
	}

	quality := 85.0
	if out.Lighthouse != nil {
		quality = math.Round((out.Lighthouse.Performance +
			out.Lighthouse.Accessibility +
			out.Lighthouse.BestPractices +
			out.Lighthouse.SEO) / 4)
	}
	quality -= float64(len(issues) * 5)

	return Expectation{
		NextStage: StageReview,
		Outputs: &ReviewForecast{
			Checks:          checks,
			PotentialIssues: issues,
			QualityScore:    clampScore(quality),
		},
	}
}

func forecastPublish(out *ReviewOutput) Expectation {
	var actions []string
	if !out.ReadyForPublish {
		actions = append(actions, "Blocker sorunlari coz")
	}
	for _, blocker := range out.Blockers {
		actions = append(actions, "Duzelt: "+blocker.Name)
	}
	if len(actions) == 0 {
		actions = append(actions, "Yayin onayi ver")
	}

	return Expectation{
		NextStage: StagePublish,
		Outputs: &PublishForecast{
			Platform:            "vercel",
			EstimatedDeployTime: "1-2 dakika",
			RequiredActions:     actions,
		},
	}
}

func forecastLive(out *PublishOutput) Expectation {
	return Expectation{
		Outputs: &LiveForecast{
			LiveURL:    out.URL,
			Monitoring: true,
			Analytics:  true,
		},
	}
}

// Summary renders the expectation as a single operator-readable line.
func (e Expectation) Summary() string {
	if e.Terminal() {
		return "Pipeline tamamlandi. Site yayinda!"
	}

	switch o := e.Outputs.(type) {
	case *ResearchForecast:
		return join(
			count("Arastirma konulari", len(o.Topics)),
			"Tahmini sure: "+o.EstimatedDuration)
	case *DesignForecast:
		return join(
			count("Onerilen renkler", len(o.SuggestedColors)),
			count("Onerilen fontlar", len(o.SuggestedFonts)),
			"Tasarim yonu: "+o.Direction)
	case *ContentForecast:
		return join(
			fmt.Sprintf("Sayfa sayisi: %d", o.PageCount),
			count("Icerik turleri", len(o.ContentTypes)),
			fmt.Sprintf("Tahmini kelime: %d", o.EstimatedWordCount))
	case *SeoForecast:
		return join(
			count("SEO dosyalari", len(o.Files)),
			count("Schema turleri", len(o.SchemaTypes)),
			fmt.Sprintf("Tahmini SEO skoru: %d", o.EstimatedScore))
	case *BuildForecast:
		return join(
			count("Cikti dosyalari", len(o.OutputFiles)),
			"Derleme suresi: "+o.Duration,
			"Optimizasyon: "+o.OptimizationLevel)
	case *ReviewForecast:
		return join(
			count("Inceleme kontrolleri", len(o.Checks)),
			count("Olasi sorunlar", len(o.PotentialIssues)),
			fmt.Sprintf("Kalite skoru: %d", o.QualityScore))
	case *PublishForecast:
		return join(
			"Deploy platformu: "+o.Platform,
			"Deploy suresi: "+o.EstimatedDeployTime,
			count("Gerekli aksiyonlar", len(o.RequiredActions)))
	default:
		return ""
	}
}

func count(label string, n int) string {
	return fmt.Sprintf("%s: %d oge", label, n)
}

func join(parts ...string) string {
	return strings.Join(parts, " | ")
}

// clampScore pins a score into [0,100].
func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}

func dedupStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
