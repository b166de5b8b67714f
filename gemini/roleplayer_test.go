package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/luminary"
	"github.com/fwojciec/luminary/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestRolePlayer_Chat_ReturnsErrorWhenPersonaEmpty(t *testing.T) {
	t.Parallel()

	rp := gemini.NewRolePlayer(nil, "") // nil client ok for validation tests

	_, err := rp.Chat(context.Background(), "", nil, "hello")

	require.Error(t, err)
	assert.Equal(t, luminary.EINVALID, luminary.ErrorCode(err))
	assert.Contains(t, luminary.ErrorMessage(err), "persona required")
}

func TestRolePlayer_Chat_ReturnsErrorWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	rp := gemini.NewRolePlayer(nil, "")

	_, err := rp.Chat(context.Background(), "Marie Curie", nil, "")

	require.Error(t, err)
	assert.Equal(t, luminary.EINVALID, luminary.ErrorCode(err))
	assert.Contains(t, luminary.ErrorMessage(err), "message required")
}

func TestBuildPersonaInstruction(t *testing.T) {
	t.Parallel()

	instruction := gemini.BuildPersonaInstruction("Marie Curie")

	assert.Contains(t, instruction, "You are Marie Curie.")
	assert.Contains(t, instruction, "first person")
}

func TestBuildChatContents(t *testing.T) {
	t.Parallel()

	t.Run("maps history roles and appends the new message", func(t *testing.T) {
		t.Parallel()

		history := []luminary.ChatMessage{
			{Role: luminary.RoleUser, Text: "How did you discover radium?"},
			{Role: luminary.RolePersona, Text: "Through years of work with pitchblende."},
		}

		contents := gemini.BuildChatContents(history, "What kept you going?")

		require.Len(t, contents, 3)
		assert.Equal(t, genai.RoleUser, contents[0].Role)
		assert.Equal(t, genai.RoleModel, contents[1].Role)
		assert.Equal(t, genai.RoleUser, contents[2].Role)
		assert.Equal(t, "What kept you going?", contents[2].Parts[0].Text)
	})

	t.Run("empty history yields just the message", func(t *testing.T) {
		t.Parallel()

		contents := gemini.BuildChatContents(nil, "Hello")

		require.Len(t, contents, 1)
		assert.Equal(t, "Hello", contents[0].Parts[0].Text)
	})
}

func TestBuildPersonaConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildPersonaConfig("Marie Curie")

	require.NotNil(t, config.SystemInstruction)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "Marie Curie")
	require.NotNil(t, config.Temperature)
}
