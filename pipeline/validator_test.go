package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prosektorweb/sitegen/catalog"
)

func validInputOutput() *InputOutput {
	return &InputOutput{
		ProjectID: "p-1",
		Slug:      "acme-osgb",
		Company:   Company{Name: "Acme OSGB", Industry: "saglik"},
		Pages:     []PageRef{{Name: "Ana Sayfa", Slug: "/", Type: PageHomepage}},
	}
}

func TestValidateOutputInputStage(t *testing.T) {
	res := ValidateOutput(StageInput, validInputOutput())
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidateOutputSlugPattern(t *testing.T) {
	out := validInputOutput()
	out.Slug = "Acme OSGB!"
	res := ValidateOutput(StageInput, out)
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "slug", res.Errors[0].Field)
	assert.Contains(t, res.Errors[0].Message, "invalid format")
}

func TestValidateOutputNestedField(t *testing.T) {
	out := validInputOutput()
	out.Company.Name = ""
	res := ValidateOutput(StageInput, out)
	// company.name marshals to "" which is present; an absent object
	// is the real failure mode.
	assert.True(t, res.Valid)

	res = ValidateOutput(StageInput, map[string]any{
		"project_id": "p-1",
		"slug":       "acme",
		"company":    map[string]any{"industry": "saglik"},
	})
	require.False(t, res.Valid)
	assert.Equal(t, "company.name", res.Errors[0].Field)
	assert.Contains(t, res.Errors[0].Message, "required")
}

func TestValidateOutputNumberBounds(t *testing.T) {
	out := &ContentOutput{
		ProjectID:      "p-1",
		Pages:          []PageContent{{Slug: "/", Type: PageHomepage}},
		TotalWordCount: 50,
	}
	res := ValidateOutput(StageContent, out)
	require.False(t, res.Valid)
	assert.Equal(t, "total_word_count", res.Errors[0].Field)
	assert.Contains(t, res.Errors[0].Message, "at least 100")

	review := &ReviewOutput{
		ProjectID:       "p-1",
		OverallScore:    150,
		Checks:          []ReviewCheck{},
		ReadyForPublish: true,
	}
	res = ValidateOutput(StageReview, review)
	require.False(t, res.Valid)
	assert.Equal(t, "overall_score", res.Errors[0].Field)
	assert.Contains(t, res.Errors[0].Message, "at most 100")
}

func TestValidateOutputTypeMismatch(t *testing.T) {
	res := ValidateOutput(StageSEO, map[string]any{
		"project_id":   "p-1",
		"files":        "robots.txt",
		"sitemap_urls": []any{},
	})
	require.False(t, res.Valid)
	assert.Equal(t, "files", res.Errors[0].Field)
	assert.Contains(t, res.Errors[0].Message, "must be of type array")
}

func TestValidateOutputEmptyArrayMin(t *testing.T) {
	res := ValidateOutput(StageContent, map[string]any{
		"project_id":       "p-1",
		"pages":            []any{},
		"total_word_count": 500,
	})
	require.False(t, res.Valid)
	assert.Contains(t, res.Errors[0].Message, "at least 1 items")
}

func TestValidateOutputNonObject(t *testing.T) {
	res := ValidateOutput(StageInput, "not an object")
	require.False(t, res.Valid)
	assert.Contains(t, res.Errors[0].Message, "must be an object")
}

func TestValidateInputOptionalFieldWarns(t *testing.T) {
	res := ValidateInput(StageDesign, map[string]any{
		"project_id": "p-1",
		"company":    map[string]any{"name": "Acme"},
		"research":   "not an object",
	})
	// Optional field with the wrong type downgrades to a warning.
	assert.True(t, res.Valid)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "research", res.Warnings[0].Field)
}

func TestValidateInputMinLength(t *testing.T) {
	res := ValidateInput(StageInput, &InputRequest{ProjectID: "p-1", CompanyName: "A"})
	require.False(t, res.Valid)
	assert.Equal(t, "company_name", res.Errors[0].Field)
	assert.Contains(t, res.Errors[0].Message, "at least 2 characters")
}

func TestMissingInputFields(t *testing.T) {
	missing := MissingInputFields(StageSEO, map[string]any{"project_id": "p-1"})
	assert.Equal(t, []string{"content", "domain"}, missing)

	missing = MissingInputFields(StageSEO, nil)
	assert.Equal(t, []string{"project_id", "content", "domain"}, missing)
}

func TestValidateResearchOutput(t *testing.T) {
	out := &ResearchOutput{
		ProjectID: "p-1",
		Keywords:  catalog.KeywordSet{Primary: []string{"osgb"}},
	}
	assert.True(t, ValidateOutput(StageResearch, out).Valid)
}
