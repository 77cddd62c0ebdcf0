package stages

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prosektorweb/sitegen/pageplan"
	"github.com/prosektorweb/sitegen/pipeline"
)

// seoStage generates the location page plan and the technical SEO
// artifacts derived from it. This is where the combinatorial expansion
// happens: every (service, province) and (service, district) pair in the
// service area becomes a sitemap URL.
func (env *Env) seoStage(ctx context.Context, st *pipeline.State) (any, error) {
	input, ok := st.Output(pipeline.StageInput).(*pipeline.InputOutput)
	if !ok {
		return nil, fmt.Errorf("seo: input output missing")
	}
	contentOut, ok := st.Output(pipeline.StageContent).(*pipeline.ContentOutput)
	if !ok {
		return nil, fmt.Errorf("seo: content output missing")
	}

	plan, err := env.generator.Generate(ctx, env.HomeProvinceID)
	if err != nil {
		return nil, fmt.Errorf("seo: %w", err)
	}
	env.Metrics.AddPagesGenerated(len(plan.Pages))

	entries := pageplan.SitemapEntries(plan, env.PlanDate)
	index, sitemapFiles, err := pageplan.WriteSitemaps(entries, env.BaseURL, env.PlanDate)
	if err != nil {
		return nil, fmt.Errorf("seo: %w", err)
	}

	files := []pipeline.SeoFile{
		{
			Filename: "robots.txt",
			Content: fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n",
				env.BaseURL),
			Purpose: "crawler directives",
		},
	}
	if index != nil {
		files = append(files, pipeline.SeoFile{
			Filename: "sitemap.xml",
			Content:  string(index),
			Purpose:  "sitemap index",
		})
	}
	for _, f := range sitemapFiles {
		files = append(files, pipeline.SeoFile{
			Filename: f.Filename,
			Content:  string(f.XML),
			Purpose:  "sitemap",
		})
	}
	manifest, err := json.MarshalIndent(map[string]any{
		"name":             input.Company.Name,
		"short_name":       input.Company.Name,
		"start_url":        "/",
		"display":          "standalone",
		"background_color": "#FFFFFF",
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("seo: marshal manifest: %w", err)
	}
	files = append(files, pipeline.SeoFile{
		Filename: "manifest.json",
		Content:  string(manifest),
		Purpose:  "web app manifest",
	})

	urls := make([]string, 0, len(entries))
	for _, e := range entries {
		urls = append(urls, e.Loc)
	}

	schemas := []pipeline.SchemaBlock{
		{Type: "Organization", Data: map[string]any{
			"name": input.Company.Name,
			"url":  env.BaseURL,
		}},
		{Type: "WebSite", Data: map[string]any{
			"name": input.Company.Name,
			"url":  env.BaseURL,
		}},
	}
	if len(plan.Pages) > 0 && plan.Pages[0].Schema != nil {
		data, err := schemaToMap(plan.Pages[0].Schema)
		if err != nil {
			return nil, fmt.Errorf("seo: %w", err)
		}
		schemas = append(schemas, pipeline.SchemaBlock{Type: "LocalBusiness", Data: data})
	}

	metaTags := make([]pipeline.MetaTags, 0, len(contentOut.Pages))
	missingMeta := 0
	for _, p := range contentOut.Pages {
		if p.MetaDescription == "" {
			missingMeta++
		}
		metaTags = append(metaTags, pipeline.MetaTags{
			Page:        p.Slug,
			Title:       p.MetaTitle,
			Description: p.MetaDescription,
			Keywords:    p.Keywords,
		})
	}

	checks := []pipeline.TechnicalCheck{
		{Check: "robots.txt", Passed: true},
		{Check: "sitemap", Passed: true,
			Details: fmt.Sprintf("%d url, %d dosya", len(urls), len(sitemapFiles))},
		{Check: "canonical urls", Passed: true,
			Details: fmt.Sprintf("%d benzersiz sayfa", len(plan.Pages))},
		{Check: "meta descriptions", Passed: missingMeta == 0,
			Details: fmt.Sprintf("%d eksik", missingMeta)},
	}

	return &pipeline.SeoOutput{
		ProjectID:       input.ProjectID,
		Files:           files,
		Schemas:         schemas,
		SitemapURLs:     urls,
		MetaTags:        metaTags,
		TechnicalChecks: checks,
	}, nil
}

func schemaToMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	return out, nil
}
