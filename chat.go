package luminary

import "context"

// Chat message roles.
const (
	RoleUser    = "user"
	RolePersona = "persona"
)

// ChatMessage is a single turn in a role-play conversation.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// RolePlayer holds a conversation in the voice of a historical figure.
// The generative model is an opaque collaborator: prompt in, text or
// error out.
type RolePlayer interface {
	Chat(ctx context.Context, persona string, history []ChatMessage, message string) (string, error)
}

// LessonGenerator distills practical life lessons from a person's
// biography.
type LessonGenerator interface {
	Lessons(ctx context.Context, name, summary string) (string, error)
}
