package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustForecast(t *testing.T, stage Stage, output any) Expectation {
	t.Helper()
	exp, err := Forecast(stage, output)
	require.NoError(t, err)
	return exp
}

func TestForecastResearchTopics(t *testing.T) {
	out := &InputOutput{
		ProjectID: "p-1",
		Slug:      "acme",
		Company: Company{
			Name:           "Acme OSGB",
			Industry:       "saglik",
			TargetAudience: []string{"kobiler"},
		},
	}
	exp := mustForecast(t, StageInput, out)
	require.Equal(t, StageResearch, exp.NextStage)

	f, ok := exp.Outputs.(*ResearchForecast)
	require.True(t, ok)
	assert.Equal(t, []string{
		"saglik sektoru analizi",
		"saglik rakip analizi",
		"Hedef kitle analizi",
		"Anahtar kelime arastirmasi",
	}, f.Topics)
	assert.Equal(t, "2-3 dakika", f.EstimatedDuration)
}

func TestForecastResearchMinimumDuration(t *testing.T) {
	exp := mustForecast(t, StageInput, &InputOutput{ProjectID: "p-1", Slug: "acme"})
	f := exp.Outputs.(*ResearchForecast)
	// One topic still floors the estimate at two minutes.
	assert.Equal(t, []string{"Anahtar kelime arastirmasi"}, f.Topics)
	assert.Equal(t, "2-3 dakika", f.EstimatedDuration)
}

func TestForecastDesignPalette(t *testing.T) {
	tests := []struct {
		name      string
		industry  *IndustryData
		colors    []string
		direction string
	}{
		{
			name:      "health industry",
			industry:  &IndustryData{Name: "Saglik Hizmetleri", Competitors: 3},
			colors:    []string{"#0891B2", "#059669"},
			direction: "modern ve profesyonel",
		},
		{
			name:      "crowded market",
			industry:  &IndustryData{Name: "teknoloji", Competitors: 15},
			colors:    []string{"#4F46E5", "#6366F1"},
			direction: "diferansiye edici ve dikkat cekici",
		},
		{
			name:      "unknown industry falls back",
			industry:  &IndustryData{Name: "uzay madenciligi"},
			colors:    []string{"#1E40AF", "#059669"},
			direction: "modern ve profesyonel",
		},
		{
			name:      "no industry data",
			colors:    []string{"#1E40AF", "#059669"},
			direction: "modern ve profesyonel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := mustForecast(t, StageResearch, &ResearchOutput{
				ProjectID: "p-1", Industry: tt.industry,
			})
			require.Equal(t, StageDesign, exp.NextStage)
			f := exp.Outputs.(*DesignForecast)
			assert.Equal(t, tt.colors, f.SuggestedColors)
			assert.Equal(t, tt.direction, f.Direction)
			assert.Equal(t, []string{"Inter", "Poppins", "Montserrat"}, f.SuggestedFonts)
		})
	}
}

func TestForecastContentWordScale(t *testing.T) {
	tests := []struct {
		scale TypographyScale
		words int
	}{
		{ScaleNormal, 2000},
		{ScaleSpacious, 1600},
		{ScaleCompact, 2400},
	}
	for _, tt := range tests {
		t.Run(string(tt.scale), func(t *testing.T) {
			exp := mustForecast(t, StageDesign, &DesignOutput{
				ProjectID:  "p-1",
				Typography: Typography{Scale: tt.scale},
			})
			f := exp.Outputs.(*ContentForecast)
			assert.Equal(t, 4, f.PageCount)
			assert.Equal(t, []string{"hero", "features", "cta", "faq"}, f.ContentTypes)
			assert.Equal(t, tt.words, f.EstimatedWordCount)
		})
	}
}

func TestForecastSeoScoreAndSchemas(t *testing.T) {
	out := &ContentOutput{
		ProjectID: "p-1",
		Pages: []PageContent{
			{Slug: "/", Type: PageHomepage},
			{Slug: "/hakkimizda", Type: PageAbout},
			{Slug: "/hizmetler", Type: PageServices},
			{Slug: "/sss", Type: PageFAQ},
		},
		AverageReadability: 80,
	}
	exp := mustForecast(t, StageContent, out)
	f := exp.Outputs.(*SeoForecast)
	assert.Equal(t, []string{"robots.txt", "sitemap.xml", "manifest.json"}, f.Files)
	assert.Equal(t, []string{"Organization", "WebSite", "FAQPage", "Service"}, f.SchemaTypes)
	// round(80*0.4 + 60) = 92
	assert.Equal(t, 92, f.EstimatedScore)
}

func TestForecastSeoScoreDefaults(t *testing.T) {
	// Zero readability falls back to 70; under four pages loses the bonus.
	exp := mustForecast(t, StageContent, &ContentOutput{
		ProjectID: "p-1",
		Pages:     []PageContent{{Slug: "/", Type: PageHomepage}},
	})
	f := exp.Outputs.(*SeoForecast)
	assert.Equal(t, 68, f.EstimatedScore)
	assert.Equal(t, []string{"Organization", "WebSite"}, f.SchemaTypes)
}

func TestForecastSeoScoreClamped(t *testing.T) {
	low := mustForecast(t, StageContent, &ContentOutput{
		ProjectID:          "p-1",
		Pages:              []PageContent{{Slug: "/"}},
		AverageReadability: -1000,
	})
	assert.Equal(t, 0, low.Outputs.(*SeoForecast).EstimatedScore)

	high := mustForecast(t, StageContent, &ContentOutput{
		ProjectID:          "p-1",
		Pages:              []PageContent{{}, {}, {}, {}},
		AverageReadability: 10000,
	})
	assert.Equal(t, 100, high.Outputs.(*SeoForecast).EstimatedScore)
}

func TestForecastBuildFiles(t *testing.T) {
	out := &SeoOutput{
		ProjectID: "p-1",
		Files:     []SeoFile{{Filename: "robots.txt"}, {Filename: "sitemap.xml"}},
		SitemapURLs: []string{
			"https://acme.example/",
			"https://acme.example/risk-analizi/bursa/",
		},
	}
	exp := mustForecast(t, StageSEO, out)
	f := exp.Outputs.(*BuildForecast)
	assert.Equal(t, []string{
		"index.html",
		"/risk-analizi/bursa/index.html",
		"robots.txt",
		"sitemap.xml",
	}, f.OutputFiles)
	// 60 + 2*5 = 70 seconds.
	assert.Equal(t, "1 dk 10 sn", f.Duration)
	assert.Equal(t, "full", f.OptimizationLevel)
}

func TestForecastBuildOptimizationLevels(t *testing.T) {
	urls := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = "https://acme.example/p/"
		}
		return out
	}
	tests := []struct {
		pages int
		level string
	}{
		{5, "full"},
		{15, "standard"},
		{25, "aggressive"},
	}
	for _, tt := range tests {
		exp := mustForecast(t, StageSEO, &SeoOutput{
			ProjectID:   "p-1",
			Files:       []SeoFile{{Filename: "robots.txt"}},
			SitemapURLs: urls(tt.pages),
		})
		assert.Equal(t, tt.level, exp.Outputs.(*BuildForecast).OptimizationLevel, "pages=%d", tt.pages)
	}
}

func TestForecastReviewIssuesAndQuality(t *testing.T) {
	out := &BuildOutput{
		ProjectID: "p-1",
		Status:    BuildReadyForReview,
		Lighthouse: &Lighthouse{
			Performance:   60,
			Accessibility: 95,
			BestPractices: 90,
			SEO:           85,
		},
	}
	exp := mustForecast(t, StageBuild, out)
	f := exp.Outputs.(*ReviewForecast)
	require.Len(t, f.Checks, 7)
	// Performance 60 < 80 and SEO 85 < 90 each flag an issue; the mean
	// 82.5 rounds to 83 and each issue costs 5 points.
	assert.Equal(t, []string{
		"Performans skoru dusuk",
		"SEO optimizasyonu gerekebilir",
	}, f.PotentialIssues)
	assert.Equal(t, 73, f.QualityScore)
}

func TestForecastReviewDefaults(t *testing.T) {
	exp := mustForecast(t, StageBuild, &BuildOutput{
		ProjectID: "p-1", Status: BuildReadyForReview,
	})
	f := exp.Outputs.(*ReviewForecast)
	assert.Empty(t, f.PotentialIssues)
	assert.Equal(t, 85, f.QualityScore)
}

func TestForecastReviewBundleFlag(t *testing.T) {
	exp := mustForecast(t, StageBuild, &BuildOutput{
		ProjectID: "p-1",
		Status:    BuildReadyForReview,
		Stats:     &BuildStats{BundleSize: 600000},
	})
	f := exp.Outputs.(*ReviewForecast)
	assert.Equal(t, []string{"Bundle boyutu yuksek - optimizasyon gerekebilir"}, f.PotentialIssues)
	assert.Equal(t, 80, f.QualityScore)
}

func TestForecastReviewQualityClamped(t *testing.T) {
	zero := mustForecast(t, StageBuild, &BuildOutput{
		ProjectID:  "p-1",
		Status:     BuildNeedsIteration,
		Stats:      &BuildStats{BundleSize: 1 << 30},
		Lighthouse: &Lighthouse{},
	})
	assert.Equal(t, 0, zero.Outputs.(*ReviewForecast).QualityScore)

	high := mustForecast(t, StageBuild, &BuildOutput{
		ProjectID:  "p-1",
		Status:     BuildReadyForReview,
		Lighthouse: &Lighthouse{Performance: 1000, Accessibility: 1000, BestPractices: 1000, SEO: 1000},
	})
	assert.Equal(t, 100, high.Outputs.(*ReviewForecast).QualityScore)
}

func TestForecastPublishActions(t *testing.T) {
	blocked := mustForecast(t, StageReview, &ReviewOutput{
		ProjectID:       "p-1",
		OverallScore:    55,
		ReadyForPublish: false,
		Blockers: []ReviewCheck{
			{Name: "Eksik meta aciklama", Status: CheckFail},
			{Name: "Bozuk ic link", Status: CheckFail},
		},
	})
	f := blocked.Outputs.(*PublishForecast)
	assert.Equal(t, "vercel", f.Platform)
	assert.Equal(t, "1-2 dakika", f.EstimatedDeployTime)
	assert.Equal(t, []string{
		"Blocker sorunlari coz",
		"Duzelt: Eksik meta aciklama",
		"Duzelt: Bozuk ic link",
	}, f.RequiredActions)

	ready := mustForecast(t, StageReview, &ReviewOutput{
		ProjectID: "p-1", OverallScore: 95, ReadyForPublish: true,
	})
	assert.Equal(t, []string{"Yayin onayi ver"},
		ready.Outputs.(*PublishForecast).RequiredActions)
}

func TestForecastPublishTerminal(t *testing.T) {
	exp := mustForecast(t, StagePublish, &PublishOutput{
		ProjectID:    "p-1",
		DeploymentID: "dep-1",
		URL:          "https://acme.example",
	})
	assert.True(t, exp.Terminal())
	f := exp.Outputs.(*LiveForecast)
	assert.Equal(t, "https://acme.example", f.LiveURL)
	assert.True(t, f.Monitoring)
	assert.True(t, f.Analytics)
	assert.Equal(t, "Pipeline tamamlandi. Site yayinda!", exp.Summary())
}

func TestForecastTypeMismatch(t *testing.T) {
	_, err := Forecast(StageInput, &ResearchOutput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected output type")

	_, err = Forecast(Stage("images"), &InputOutput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown stage")
}

func TestSummaryFormatting(t *testing.T) {
	exp := mustForecast(t, StageInput, &InputOutput{
		ProjectID: "p-1",
		Slug:      "acme",
		Company:   Company{Name: "Acme", Industry: "saglik"},
	})
	assert.Equal(t, "Arastirma konulari: 3 oge | Tahmini sure: 2-3 dakika", exp.Summary())

	review := mustForecast(t, StageBuild, &BuildOutput{ProjectID: "p-1", Status: BuildReadyForReview})
	assert.Equal(t,
		"Inceleme kontrolleri: 7 oge | Olasi sorunlar: 0 oge | Kalite skoru: 85",
		review.Summary())
}
