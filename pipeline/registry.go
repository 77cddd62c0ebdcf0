package pipeline

import "regexp"

// Kind is the JSON shape a validated field must have.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "boolean"
	KindArray  Kind = "array"
	KindObject Kind = "object"
)

// FieldRule is one declarative constraint on a stage document. Field is a
// dotted path resolved against the document's JSON form. A violated rule
// on an optional field downgrades to a warning.
type FieldRule struct {
	Field    string
	Required bool
	Kind     Kind

	// MinLen and MaxLen bound string length or array size; zero means
	// unbounded.
	MinLen int
	MaxLen int

	// Min and Max bound numeric fields.
	Min *float64
	Max *float64

	Pattern *regexp.Regexp
}

func bound(v float64) *float64 { return &v }

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9-]+$`)
	hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// inputRules constrain the document a stage consumes.
var inputRules = map[Stage][]FieldRule{
	StageInput: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "company_name", Required: true, Kind: KindString, MinLen: 2},
	},
	StageResearch: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "company", Required: true, Kind: KindObject},
	},
	StageDesign: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "company", Required: true, Kind: KindObject},
		{Field: "research", Kind: KindObject},
	},
	StageContent: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "company", Required: true, Kind: KindObject},
		{Field: "pages", Required: true, Kind: KindArray},
		{Field: "design", Required: true, Kind: KindObject},
	},
	StageSEO: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "content", Required: true, Kind: KindObject},
		{Field: "domain", Required: true, Kind: KindString},
	},
	StageBuild: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "slug", Required: true, Kind: KindString},
		{Field: "config", Required: true, Kind: KindObject},
		{Field: "content", Required: true, Kind: KindObject},
	},
	StageReview: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "company", Required: true, Kind: KindObject},
		{Field: "content", Required: true, Kind: KindObject},
		{Field: "build", Required: true, Kind: KindObject},
	},
	StagePublish: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "slug", Required: true, Kind: KindString},
		{Field: "domain", Required: true, Kind: KindString},
		{Field: "platform", Required: true, Kind: KindString},
	},
}

// outputRules constrain the document a stage produces. A failed output
// rule blocks the runner from advancing.
var outputRules = map[Stage][]FieldRule{
	StageInput: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "slug", Required: true, Kind: KindString, Pattern: slugPattern},
		{Field: "company", Required: true, Kind: KindObject},
		{Field: "company.name", Required: true, Kind: KindString},
	},
	StageResearch: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "keywords", Required: true, Kind: KindObject},
	},
	StageDesign: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "colors", Required: true, Kind: KindObject},
		{Field: "colors.primary", Required: true, Kind: KindString, Pattern: hexColorPattern},
		{Field: "typography", Required: true, Kind: KindObject},
		{Field: "layout", Required: true, Kind: KindObject},
	},
	StageContent: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "pages", Required: true, Kind: KindArray, MinLen: 1},
		{Field: "total_word_count", Required: true, Kind: KindNumber, Min: bound(100)},
	},
	StageSEO: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "files", Required: true, Kind: KindArray, MinLen: 1},
		{Field: "sitemap_urls", Required: true, Kind: KindArray},
	},
	StageBuild: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "status", Required: true, Kind: KindString},
	},
	StageReview: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "overall_score", Required: true, Kind: KindNumber, Min: bound(0), Max: bound(100)},
		{Field: "checks", Required: true, Kind: KindArray},
		{Field: "ready_for_publish", Required: true, Kind: KindBool},
	},
	StagePublish: {
		{Field: "project_id", Required: true, Kind: KindString},
		{Field: "deployment_id", Required: true, Kind: KindString},
		{Field: "url", Required: true, Kind: KindString},
	},
}

// InputRules returns the declared constraints on a stage's input document.
func InputRules(s Stage) []FieldRule { return inputRules[s] }

// OutputRules returns the declared constraints on a stage's output
// document.
func OutputRules(s Stage) []FieldRule { return outputRules[s] }

// RequiredInputFields lists the required input field paths of a stage.
func RequiredInputFields(s Stage) []string {
	var fields []string
	for _, rule := range inputRules[s] {
		if rule.Required {
			fields = append(fields, rule.Field)
		}
	}
	return fields
}
