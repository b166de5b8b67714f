package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/luminary"
	"google.golang.org/genai"
)

// Ensure LessonGenerator implements luminary.LessonGenerator at compile time.
var _ luminary.LessonGenerator = (*LessonGenerator)(nil)

// LessonGenerator implements luminary.LessonGenerator using Google Gemini.
type LessonGenerator struct {
	client *genai.Client
	model  string
}

// NewLessonGenerator creates a new LessonGenerator. An empty model
// selects DefaultModel.
func NewLessonGenerator(client *genai.Client, model string) *LessonGenerator {
	if model == "" {
		model = DefaultModel
	}
	return &LessonGenerator{client: client, model: model}
}

// Lessons distills practical life lessons from a person's biography.
// The summary is optional grounding material.
func (g *LessonGenerator) Lessons(ctx context.Context, name, summary string) (string, error) {
	if name == "" {
		return "", luminary.Errorf(luminary.EINVALID, "person name required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: BuildLessonsPrompt(name, summary)}},
		}},
		BuildLessonsConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", luminary.Errorf(luminary.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildLessonsConfig returns the GenerateContentConfig for lesson calls.
func BuildLessonsConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You distill practical, modern lessons from the lives of notable people. Ground every lesson in the biography provided when one is given. Be concrete and avoid platitudes.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildLessonsPrompt builds the user prompt for lesson generation.
func BuildLessonsPrompt(name, summary string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Person: %s\n\n", name)
	if summary != "" {
		fmt.Fprintf(&sb, "<biography>\n%s\n</biography>\n\n", summary)
	}
	sb.WriteString("List 5 practical lessons from this person's life, each with a one-sentence explanation.")
	return sb.String()
}
