package pipeline

import (
	"time"

	"github.com/prosektorweb/sitegen/catalog"
	"github.com/prosektorweb/sitegen/content"
)

// Tone is the writing voice requested for a project.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneFormal       Tone = "formal"
	ToneCasual       Tone = "casual"
)

// Company is the validated company profile the pipeline works from. It is
// supplied by the external project system at the input stage.
type Company struct {
	Name           string   `json:"name"`
	Industry       string   `json:"industry,omitempty"`
	Description    string   `json:"description,omitempty"`
	Tone           Tone     `json:"tone,omitempty"`
	TargetAudience []string `json:"target_audience,omitempty"`
	Domain         string   `json:"domain,omitempty"`
}

// PageType classifies a planned site page.
type PageType string

const (
	PageHomepage PageType = "homepage"
	PageAbout    PageType = "about"
	PageServices PageType = "services"
	PageContact  PageType = "contact"
	PageFAQ      PageType = "faq"
	PageCustom   PageType = "custom"
)

// PageRef names one page the site will carry.
type PageRef struct {
	Name string   `json:"name"`
	Slug string   `json:"slug"`
	Type PageType `json:"type"`
}

// InputRequest is the seed record handed to the input stage by the caller.
type InputRequest struct {
	ProjectID   string `json:"project_id"`
	CompanyName string `json:"company_name"`
	Domain      string `json:"domain,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Description string `json:"description,omitempty"`
}

// InputOutput is the normalized project setup produced by the input stage.
type InputOutput struct {
	ProjectID string    `json:"project_id"`
	Slug      string    `json:"slug"`
	Company   Company   `json:"company"`
	Pages     []PageRef `json:"pages"`
}

// IndustryData summarizes the researched sector.
type IndustryData struct {
	Name          string   `json:"name"`
	Trends        []string `json:"trends,omitempty"`
	Competitors   int      `json:"competitors"`
	Opportunities []string `json:"opportunities,omitempty"`
}

// CompetitorProfile is one analyzed competitor.
type CompetitorProfile struct {
	Name       string   `json:"name"`
	URL        string   `json:"url,omitempty"`
	Strengths  []string `json:"strengths,omitempty"`
	Weaknesses []string `json:"weaknesses,omitempty"`
}

// Insights carries free-form research notes.
type Insights struct {
	Notes           []string `json:"notes,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// ResearchOutput is the research stage result.
type ResearchOutput struct {
	ProjectID   string              `json:"project_id"`
	Industry    *IndustryData       `json:"industry,omitempty"`
	Competitors []CompetitorProfile `json:"competitors,omitempty"`
	Keywords    catalog.KeywordSet  `json:"keywords"`
	Insights    Insights            `json:"insights"`
}

// Palette is the resolved site color scheme. Values are #RRGGBB.
type Palette struct {
	Primary      string `json:"primary"`
	PrimaryLight string `json:"primary_light"`
	PrimaryDark  string `json:"primary_dark"`
	Secondary    string `json:"secondary"`
	Accent       string `json:"accent"`
	Background   string `json:"background"`
	Text         string `json:"text"`
}

// TypographyScale adjusts content density sitewide.
type TypographyScale string

const (
	ScaleCompact  TypographyScale = "compact"
	ScaleNormal   TypographyScale = "normal"
	ScaleSpacious TypographyScale = "spacious"
)

// Typography is the resolved font choice.
type Typography struct {
	HeadingFont string          `json:"heading_font"`
	BodyFont    string          `json:"body_font"`
	Scale       TypographyScale `json:"scale"`
}

// Layout is the resolved structural style of the site.
type Layout struct {
	Style           string `json:"style"`
	HeroType        string `json:"hero_type"`
	NavigationStyle string `json:"navigation_style"`
	FooterStyle     string `json:"footer_style"`
	BorderRadius    string `json:"border_radius"`
}

// DesignOutput is the design stage result.
type DesignOutput struct {
	ProjectID  string     `json:"project_id"`
	Colors     Palette    `json:"colors"`
	Typography Typography `json:"typography"`
	Layout     Layout     `json:"layout"`
}

// PageContent is one fully written page.
type PageContent struct {
	Slug            string            `json:"slug"`
	Type            PageType          `json:"type"`
	Title           string            `json:"title"`
	MetaTitle       string            `json:"meta_title"`
	MetaDescription string            `json:"meta_description"`
	Sections        []content.Section `json:"sections"`
	Keywords        []string          `json:"keywords,omitempty"`
	WordCount       int               `json:"word_count"`
	Readability     float64           `json:"readability,omitempty"`
}

// ContentOutput is the content stage result.
type ContentOutput struct {
	ProjectID          string        `json:"project_id"`
	Pages              []PageContent `json:"pages"`
	TotalWordCount     int           `json:"total_word_count"`
	AverageReadability float64       `json:"average_readability"`
}

// SeoFile is one generated technical SEO artifact.
type SeoFile struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Purpose  string `json:"purpose"`
}

// SchemaBlock is one structured-data block emitted for the site.
type SchemaBlock struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}

// MetaTags are the per-page head tags.
type MetaTags struct {
	Page        string   `json:"page"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
}

// TechnicalCheck records one technical SEO verification.
type TechnicalCheck struct {
	Check   string `json:"check"`
	Passed  bool   `json:"passed"`
	Details string `json:"details,omitempty"`
}

// SeoOutput is the seo stage result. SitemapURLs enumerate every page of
// the generated plan, including the location landing pages.
type SeoOutput struct {
	ProjectID       string           `json:"project_id"`
	Files           []SeoFile        `json:"files"`
	Schemas         []SchemaBlock    `json:"schemas,omitempty"`
	SitemapURLs     []string         `json:"sitemap_urls"`
	MetaTags        []MetaTags       `json:"meta_tags,omitempty"`
	TechnicalChecks []TechnicalCheck `json:"technical_checks,omitempty"`
}

// BuildStatus is the outcome class of a build.
type BuildStatus string

const (
	BuildReadyForReview BuildStatus = "ready_for_review"
	BuildNeedsIteration BuildStatus = "needs_iteration"
	BuildCompleted      BuildStatus = "completed"
)

// BuildStats summarizes the produced site bundle.
type BuildStats struct {
	Duration    time.Duration `json:"duration"`
	TotalPages  int           `json:"total_pages"`
	TotalAssets int           `json:"total_assets"`
	BundleSize  int64         `json:"bundle_size"`
}

// Lighthouse holds the four audit sub-scores, each on a 0-100 scale.
type Lighthouse struct {
	Performance   float64 `json:"performance"`
	Accessibility float64 `json:"accessibility"`
	BestPractices float64 `json:"best_practices"`
	SEO           float64 `json:"seo"`
}

// BuiltPage is one emitted page file.
type BuiltPage struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// BuildOutput is the build stage result.
type BuildOutput struct {
	ProjectID  string      `json:"project_id"`
	OutputPath string      `json:"output_path,omitempty"`
	PreviewURL string      `json:"preview_url,omitempty"`
	Stats      *BuildStats `json:"stats,omitempty"`
	Lighthouse *Lighthouse `json:"lighthouse,omitempty"`
	Pages      []BuiltPage `json:"pages,omitempty"`
	Status     BuildStatus `json:"status"`
}

// CheckStatus is the verdict of one review check.
type CheckStatus string

const (
	CheckPass    CheckStatus = "pass"
	CheckWarning CheckStatus = "warning"
	CheckFail    CheckStatus = "fail"
)

// ReviewCheck is one quality control item.
type ReviewCheck struct {
	Category    string      `json:"category"`
	Name        string      `json:"name"`
	Status      CheckStatus `json:"status"`
	Score       float64     `json:"score"`
	Details     string      `json:"details,omitempty"`
	Suggestions []string    `json:"suggestions,omitempty"`
}

// ReviewOutput is the review stage result.
type ReviewOutput struct {
	ProjectID       string        `json:"project_id"`
	OverallScore    float64       `json:"overall_score"`
	Grade           string        `json:"grade"`
	Checks          []ReviewCheck `json:"checks"`
	Blockers        []ReviewCheck `json:"blockers,omitempty"`
	Warnings        []ReviewCheck `json:"warnings,omitempty"`
	PassedChecks    int           `json:"passed_checks"`
	TotalChecks     int           `json:"total_checks"`
	ReadyForPublish bool          `json:"ready_for_publish"`
	Summary         string        `json:"summary,omitempty"`
}

// DeploymentStats summarizes the publish upload.
type DeploymentStats struct {
	Duration      time.Duration `json:"duration"`
	FilesUploaded int           `json:"files_uploaded"`
	TotalSize     int64         `json:"total_size"`
}

// PublishOutput is the terminal stage result.
type PublishOutput struct {
	ProjectID    string          `json:"project_id"`
	DeploymentID string          `json:"deployment_id"`
	URL          string          `json:"url"`
	CustomDomain string          `json:"custom_domain,omitempty"`
	SSL          bool            `json:"ssl"`
	CDN          bool            `json:"cdn"`
	Stats        DeploymentStats `json:"stats"`
}
