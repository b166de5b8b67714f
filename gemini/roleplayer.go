// Package gemini provides generative-text services backed by Google
// Gemini: role-play chat in a person's voice and life-lesson summaries.
package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/luminary"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is specified.
const DefaultModel = "gemini-2.5-flash"

// Ensure RolePlayer implements luminary.RolePlayer at compile time.
var _ luminary.RolePlayer = (*RolePlayer)(nil)

// RolePlayer implements luminary.RolePlayer using Google Gemini.
type RolePlayer struct {
	client *genai.Client
	model  string
}

// NewRolePlayer creates a new RolePlayer. An empty model selects
// DefaultModel.
func NewRolePlayer(client *genai.Client, model string) *RolePlayer {
	if model == "" {
		model = DefaultModel
	}
	return &RolePlayer{client: client, model: model}
}

// Chat answers a message in the persona's voice, continuing the given
// conversation history.
func (r *RolePlayer) Chat(ctx context.Context, persona string, history []luminary.ChatMessage, message string) (string, error) {
	if persona == "" {
		return "", luminary.Errorf(luminary.EINVALID, "persona required")
	}
	if message == "" {
		return "", luminary.Errorf(luminary.EINVALID, "message required")
	}

	result, err := r.client.Models.GenerateContent(ctx, r.model,
		BuildChatContents(history, message),
		BuildPersonaConfig(persona),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", luminary.Errorf(luminary.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildPersonaConfig returns the GenerateContentConfig for role-play calls.
func BuildPersonaConfig(persona string) *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: BuildPersonaInstruction(persona)}},
		},
		Temperature: &temp,
	}
}

// BuildPersonaInstruction builds the system instruction that keeps the
// model in character.
func BuildPersonaInstruction(persona string) string {
	return fmt.Sprintf("You are %s. Answer in the first person, in their voice and era, drawing on their documented life, work, and views. Keep answers under 200 words. If a question falls outside what %s could know, say so in character.", persona, persona)
}

// BuildChatContents converts a conversation history plus the new message
// into Gemini contents.
func BuildChatContents(history []luminary.ChatMessage, message string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		role := genai.RoleUser
		if m.Role == luminary.RolePersona {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Text}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: message}},
	})
	return contents
}
