package stages

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prosektorweb/sitegen/pipeline"
)

// buildStage models a static-site build over the planned pages. The
// bundle numbers are derived from the content and the sitemap, so the
// same plan always builds to the same stats.
func (env *Env) buildStage(_ context.Context, st *pipeline.State) (any, error) {
	input, ok := st.Output(pipeline.StageInput).(*pipeline.InputOutput)
	if !ok {
		return nil, fmt.Errorf("build: input output missing")
	}
	contentOut, ok := st.Output(pipeline.StageContent).(*pipeline.ContentOutput)
	if !ok {
		return nil, fmt.Errorf("build: content output missing")
	}
	seoOut, ok := st.Output(pipeline.StageSEO).(*pipeline.SeoOutput)
	if !ok {
		return nil, fmt.Errorf("build: seo output missing")
	}

	totalPages := len(seoOut.SitemapURLs)
	if totalPages == 0 {
		totalPages = len(contentOut.Pages)
	}

	// Rough static-bundle estimate: page text plus per-page markup and
	// shared assets.
	bundle := int64(contentOut.TotalWordCount)*6 + int64(totalPages)*1800

	pages := make([]pipeline.BuiltPage, 0, len(contentOut.Pages))
	for _, p := range contentOut.Pages {
		path := strings.Trim(p.Slug, "/")
		if path == "" {
			path = "index"
		}
		pages = append(pages, pipeline.BuiltPage{
			Path: path + ".html",
			Size: int64(p.WordCount)*6 + 1800,
			Type: "html",
		})
	}

	return &pipeline.BuildOutput{
		ProjectID:  input.ProjectID,
		OutputPath: "dist/" + input.Slug,
		PreviewURL: "https://" + input.Slug + ".vercel.app",
		Stats: &pipeline.BuildStats{
			Duration:    time.Duration(60+5*totalPages) * time.Second,
			TotalPages:  totalPages,
			TotalAssets: len(seoOut.Files) + 4,
			BundleSize:  bundle,
		},
		Lighthouse: &pipeline.Lighthouse{
			Performance:   clamp100(99 - float64(bundle)/50000),
			Accessibility: 95,
			BestPractices: 92,
			SEO:           98,
		},
		Pages:  pages,
		Status: pipeline.BuildReadyForReview,
	}, nil
}

// reviewStage runs the quality gate over the built site. A failed check
// is a blocker and keeps the site from publishing.
func (env *Env) reviewStage(_ context.Context, st *pipeline.State) (any, error) {
	contentOut, ok := st.Output(pipeline.StageContent).(*pipeline.ContentOutput)
	if !ok {
		return nil, fmt.Errorf("review: content output missing")
	}
	seoOut, ok := st.Output(pipeline.StageSEO).(*pipeline.SeoOutput)
	if !ok {
		return nil, fmt.Errorf("review: seo output missing")
	}
	buildOut, ok := st.Output(pipeline.StageBuild).(*pipeline.BuildOutput)
	if !ok {
		return nil, fmt.Errorf("review: build output missing")
	}

	missingMeta := 0
	for _, p := range contentOut.Pages {
		if p.MetaDescription == "" {
			missingMeta++
		}
	}

	checks := []pipeline.ReviewCheck{
		wordCountCheck(contentOut),
		readabilityCheck(contentOut),
		metaDescriptionCheck(len(contentOut.Pages), missingMeta),
		sitemapCheck(seoOut),
		lighthouseCheck("performance", "Performans", buildOut.Lighthouse.Performance, 80),
		lighthouseCheck("accessibility", "Erisilebilirlik", buildOut.Lighthouse.Accessibility, 90),
	}

	var blockers, warnings []pipeline.ReviewCheck
	passed := 0
	total := 0.0
	for _, c := range checks {
		total += c.Score
		switch c.Status {
		case pipeline.CheckPass:
			passed++
		case pipeline.CheckFail:
			blockers = append(blockers, c)
		case pipeline.CheckWarning:
			warnings = append(warnings, c)
		}
	}

	overall := math.Round(total / float64(len(checks)))
	ready := len(blockers) == 0

	summary := fmt.Sprintf("%d kontrolun %d tanesi basarili. Genel puan %.0f (%s).",
		len(checks), passed, overall, grade(overall))
	if ready {
		summary += " Site yayina hazir."
	} else {
		summary += fmt.Sprintf(" %d engelleyici sorun cozulmeli.", len(blockers))
	}

	return &pipeline.ReviewOutput{
		ProjectID:       contentOut.ProjectID,
		OverallScore:    overall,
		Grade:           grade(overall),
		Checks:          checks,
		Blockers:        blockers,
		Warnings:        warnings,
		PassedChecks:    passed,
		TotalChecks:     len(checks),
		ReadyForPublish: ready,
		Summary:         summary,
	}, nil
}

func wordCountCheck(out *pipeline.ContentOutput) pipeline.ReviewCheck {
	// The base pages are summaries; the location pages carry the bulk of
	// the text. 100 words per base page is the floor.
	target := len(out.Pages) * 100
	score := clamp100(float64(out.TotalWordCount) / float64(target) * 100)
	c := pipeline.ReviewCheck{
		Category: "content",
		Name:     "Kelime sayisi",
		Score:    math.Round(score),
		Details:  fmt.Sprintf("%d kelime, hedef %d", out.TotalWordCount, target),
	}
	switch {
	case score >= 80:
		c.Status = pipeline.CheckPass
	case score >= 50:
		c.Status = pipeline.CheckWarning
		c.Suggestions = []string{"Temel sayfalara icerik ekleyin"}
	default:
		c.Status = pipeline.CheckFail
		c.Suggestions = []string{"Sayfa basina en az 100 kelime yazin"}
	}
	return c
}

func readabilityCheck(out *pipeline.ContentOutput) pipeline.ReviewCheck {
	c := pipeline.ReviewCheck{
		Category: "content",
		Name:     "Okunabilirlik",
		Score:    out.AverageReadability,
		Details:  fmt.Sprintf("ortalama %.1f", out.AverageReadability),
	}
	switch {
	case out.AverageReadability >= 60:
		c.Status = pipeline.CheckPass
	case out.AverageReadability >= 40:
		c.Status = pipeline.CheckWarning
		c.Suggestions = []string{"Cumleleri kisaltin"}
	default:
		c.Status = pipeline.CheckFail
		c.Suggestions = []string{"Metinleri sadelestirin"}
	}
	return c
}

func metaDescriptionCheck(pages, missing int) pipeline.ReviewCheck {
	c := pipeline.ReviewCheck{
		Category: "seo",
		Name:     "Meta aciklamalar",
		Details:  fmt.Sprintf("%d sayfadan %d eksik", pages, missing),
	}
	if missing == 0 {
		c.Status = pipeline.CheckPass
		c.Score = 100
	} else {
		c.Status = pipeline.CheckWarning
		c.Score = clamp100(float64(pages-missing) / float64(pages) * 100)
		c.Suggestions = []string{"Eksik meta aciklamalari tamamlayin"}
	}
	return c
}

func sitemapCheck(out *pipeline.SeoOutput) pipeline.ReviewCheck {
	c := pipeline.ReviewCheck{
		Category: "seo",
		Name:     "Site haritasi",
		Details:  fmt.Sprintf("%d url", len(out.SitemapURLs)),
	}
	if len(out.SitemapURLs) > 0 {
		c.Status = pipeline.CheckPass
		c.Score = 100
	} else {
		c.Status = pipeline.CheckFail
		c.Score = 0
		c.Suggestions = []string{"Site haritasi uretimini kontrol edin"}
	}
	return c
}

func lighthouseCheck(category, name string, score, threshold float64) pipeline.ReviewCheck {
	c := pipeline.ReviewCheck{
		Category: category,
		Name:     name + " skoru",
		Score:    score,
		Details:  fmt.Sprintf("%.0f / esik %.0f", score, threshold),
	}
	switch {
	case score >= threshold:
		c.Status = pipeline.CheckPass
	case score >= threshold-15:
		c.Status = pipeline.CheckWarning
	default:
		c.Status = pipeline.CheckFail
	}
	return c
}

func grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// publishStage records the deployment. The deployment id is the only
// non-deterministic value a full run produces.
func (env *Env) publishStage(_ context.Context, st *pipeline.State) (any, error) {
	input, ok := st.Output(pipeline.StageInput).(*pipeline.InputOutput)
	if !ok {
		return nil, fmt.Errorf("publish: input output missing")
	}
	review, ok := st.Output(pipeline.StageReview).(*pipeline.ReviewOutput)
	if !ok {
		return nil, fmt.Errorf("publish: review output missing")
	}
	if !review.ReadyForPublish {
		return nil, fmt.Errorf("publish: %d blocker unresolved", len(review.Blockers))
	}
	buildOut, ok := st.Output(pipeline.StageBuild).(*pipeline.BuildOutput)
	if !ok {
		return nil, fmt.Errorf("publish: build output missing")
	}

	url := "https://" + input.Slug + ".vercel.app"
	customDomain := ""
	if input.Company.Domain != "" {
		customDomain = input.Company.Domain
		url = "https://" + input.Company.Domain
	}

	files := len(buildOut.Pages)
	var size int64
	if buildOut.Stats != nil {
		files += buildOut.Stats.TotalAssets
		size = buildOut.Stats.BundleSize
	}

	return &pipeline.PublishOutput{
		ProjectID:    input.ProjectID,
		DeploymentID: uuid.NewString(),
		URL:          url,
		CustomDomain: customDomain,
		SSL:          true,
		CDN:          true,
		Stats: pipeline.DeploymentStats{
			Duration:      90 * time.Second,
			FilesUploaded: files,
			TotalSize:     size,
		},
	}, nil
}
