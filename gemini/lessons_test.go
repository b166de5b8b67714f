package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/luminary"
	"github.com/fwojciec/luminary/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonGenerator_Lessons_ReturnsErrorWhenNameEmpty(t *testing.T) {
	t.Parallel()

	g := gemini.NewLessonGenerator(nil, "")

	_, err := g.Lessons(context.Background(), "", "summary")

	require.Error(t, err)
	assert.Equal(t, luminary.EINVALID, luminary.ErrorCode(err))
}

func TestBuildLessonsPrompt(t *testing.T) {
	t.Parallel()

	t.Run("embeds the biography when provided", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildLessonsPrompt("Marie Curie", "She discovered radium.")

		assert.Contains(t, prompt, "Person: Marie Curie")
		assert.Contains(t, prompt, "<biography>\nShe discovered radium.\n</biography>")
		assert.Contains(t, prompt, "5 practical lessons")
	})

	t.Run("omits the biography block when empty", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildLessonsPrompt("Marie Curie", "")

		assert.NotContains(t, prompt, "<biography>")
	})
}
