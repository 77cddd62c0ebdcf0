package stages

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/prosektorweb/sitegen/catalog"
	"github.com/prosektorweb/sitegen/pipeline"
)

// inputStage normalizes the seed request into the project setup record.
// The site always starts from the four base pages.
func (env *Env) inputStage(_ context.Context, st *pipeline.State) (any, error) {
	req := env.Request
	if req.ProjectID == "" {
		req.ProjectID = st.ProjectID
	}
	if req.ProjectID == "" {
		req.ProjectID = uuid.NewString()
	}

	if res := pipeline.ValidateInput(pipeline.StageInput, req); !res.Valid {
		return nil, fmt.Errorf("input request invalid: %v", res.Errors)
	}

	industry := req.Industry
	if industry == "" {
		industry = "is sagligi ve guvenligi"
	}

	return &pipeline.InputOutput{
		ProjectID: req.ProjectID,
		Slug:      slugify(req.CompanyName),
		Company: pipeline.Company{
			Name:        req.CompanyName,
			Industry:    industry,
			Description: req.Description,
			Tone:        pipeline.ToneProfessional,
			Domain:      req.Domain,
		},
		Pages: []pipeline.PageRef{
			{Name: "Ana Sayfa", Slug: "/", Type: pipeline.PageHomepage},
			{Name: "Hakkimizda", Slug: "/hakkimizda", Type: pipeline.PageAbout},
			{Name: "Hizmetlerimiz", Slug: "/hizmetler", Type: pipeline.PageServices},
			{Name: "Iletisim", Slug: "/iletisim", Type: pipeline.PageContact},
		},
	}, nil
}

// researchStage derives sector data from the reference tables: the
// keyword pool comes from the configured services, the competitive
// picture from the size of the service area.
func (env *Env) researchStage(_ context.Context, st *pipeline.State) (any, error) {
	input, ok := st.Output(pipeline.StageInput).(*pipeline.InputOutput)
	if !ok {
		return nil, fmt.Errorf("research: input output missing")
	}

	area, err := env.Graph.ServiceArea(env.HomeProvinceID)
	if err != nil {
		return nil, fmt.Errorf("research: %w", err)
	}
	provinces := area.Provinces()

	keywords := catalog.KeywordSet{}
	for _, s := range env.services {
		keywords.Primary = append(keywords.Primary, s.Keywords.Primary...)
		keywords.Secondary = append(keywords.Secondary, s.Keywords.Secondary...)
		keywords.LongTail = append(keywords.LongTail, s.Keywords.LongTail...)
	}
	for _, s := range env.services {
		keywords.Secondary = append(keywords.Secondary,
			catalog.LocationKeywords(s, area.Home.Name, "")...)
	}

	var names []string
	districts := 0
	for _, p := range provinces {
		names = append(names, p.Name)
		districts += len(p.Districts)
	}

	// Each served province is assumed to host roughly three rival
	// providers.
	competitors := len(provinces) * 3

	return &pipeline.ResearchOutput{
		ProjectID: input.ProjectID,
		Industry: &pipeline.IndustryData{
			Name:        input.Company.Industry,
			Competitors: competitors,
			Trends: []string{
				"6331 sayili Kanun kapsaminda denetimlerin sikilasmasi",
				"Uzaktan ISG egitimi talebinin artmasi",
				"KOBI segmentinde dis kaynak kullaniminin yayginlasmasi",
			},
			Opportunities: []string{
				"Ilce bazli yerel arama trafigi",
				"Zorunlu hizmet paketleri icin toplu teklifler",
			},
		},
		Keywords: keywords,
		Insights: pipeline.Insights{
			Notes: []string{
				fmt.Sprintf("Hizmet bolgesi: %s", strings.Join(names, ", ")),
				fmt.Sprintf("Toplam %d il, %d ilce hedefleniyor", len(provinces), districts),
			},
			Recommendations: []string{
				"Zorunlu hizmetler icin il ve ilce sayfalari oncelikli",
				"Komsu il sayfalarinda yerel referanslara yer verilmeli",
			},
		},
	}, nil
}

// designStage materializes the palette suggested by the research
// forecast into a full design system. The operator preview and the
// executed design therefore always agree.
func (env *Env) designStage(_ context.Context, st *pipeline.State) (any, error) {
	research, ok := st.Output(pipeline.StageResearch).(*pipeline.ResearchOutput)
	var projectID string
	if ok {
		projectID = research.ProjectID
	} else if input, ok := st.Output(pipeline.StageInput).(*pipeline.InputOutput); ok {
		// Research may have been skipped.
		projectID = input.ProjectID
	} else {
		return nil, fmt.Errorf("design: no prior stage output")
	}

	primary := "#1E40AF"
	secondary := "#059669"
	headingFont := "Poppins"
	bodyFont := "Inter"

	if rec := st.Results[pipeline.StageResearch]; rec != nil && rec.Expectation != nil {
		if f, ok := rec.Expectation.Outputs.(*pipeline.DesignForecast); ok {
			if len(f.SuggestedColors) > 0 {
				primary = f.SuggestedColors[0]
			}
			if len(f.SuggestedColors) > 1 {
				secondary = f.SuggestedColors[1]
			}
			if len(f.SuggestedFonts) > 0 {
				bodyFont = f.SuggestedFonts[0]
			}
			if len(f.SuggestedFonts) > 1 {
				headingFont = f.SuggestedFonts[1]
			}
		}
	}

	return &pipeline.DesignOutput{
		ProjectID: projectID,
		Colors: pipeline.Palette{
			Primary:      primary,
			PrimaryLight: shade(primary, 1.25),
			PrimaryDark:  shade(primary, 0.75),
			Secondary:    secondary,
			Accent:       secondary,
			Background:   "#FFFFFF",
			Text:         "#0F172A",
		},
		Typography: pipeline.Typography{
			HeadingFont: headingFont,
			BodyFont:    bodyFont,
			Scale:       pipeline.ScaleNormal,
		},
		Layout: pipeline.Layout{
			Style:           "modern",
			HeroType:        "gradient",
			NavigationStyle: "sticky",
			FooterStyle:     "columns",
			BorderRadius:    "medium",
		},
	}, nil
}
