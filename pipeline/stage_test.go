package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageOrderWalk(t *testing.T) {
	want := []Stage{
		StageInput, StageResearch, StageDesign, StageContent,
		StageSEO, StageBuild, StageReview, StagePublish,
	}
	assert.Equal(t, want, Stages())

	// Walking Next from input visits every stage exactly once.
	var visited []Stage
	for s := StageInput; s != ""; s = s.Next() {
		visited = append(visited, s)
	}
	assert.Equal(t, want, visited)

	assert.Equal(t, Stage(""), StagePublish.Next())
	assert.Equal(t, Stage(""), StageInput.Prev())
	assert.Equal(t, StageBuild, StageReview.Prev())
	assert.True(t, StagePublish.Terminal())
	assert.False(t, StageSEO.Terminal())
}

func TestStageIndexAndValidity(t *testing.T) {
	assert.Equal(t, 0, StageInput.Index())
	assert.Equal(t, 7, StagePublish.Index())
	assert.Equal(t, -1, Stage("images").Index())
	assert.True(t, StageContent.IsValid())
	assert.False(t, Stage("ui_ux").IsValid())
}

func TestStageMetadata(t *testing.T) {
	require.True(t, StageInfo(StageResearch).CanSkip)
	assert.False(t, StageInfo(StageDesign).CanSkip)
	assert.True(t, StageInfo(StageInput).Interactive)
	assert.True(t, StageInfo(StageBuild).Interactive)
	assert.False(t, StageInfo(StageSEO).Interactive)

	for _, s := range Stages() {
		md := StageInfo(s)
		assert.NotEmpty(t, md.Name, "metadata missing for %s", s)
		assert.True(t, md.CanRetry, "every stage can be retried")
	}
}
