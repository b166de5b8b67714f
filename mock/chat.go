package mock

import (
	"context"

	"github.com/fwojciec/luminary"
)

var _ luminary.RolePlayer = (*RolePlayer)(nil)

// RolePlayer is a mock implementation of luminary.RolePlayer.
type RolePlayer struct {
	ChatFn func(ctx context.Context, persona string, history []luminary.ChatMessage, message string) (string, error)
}

func (r *RolePlayer) Chat(ctx context.Context, persona string, history []luminary.ChatMessage, message string) (string, error) {
	return r.ChatFn(ctx, persona, history, message)
}

var _ luminary.LessonGenerator = (*LessonGenerator)(nil)

// LessonGenerator is a mock implementation of luminary.LessonGenerator.
type LessonGenerator struct {
	LessonsFn func(ctx context.Context, name, summary string) (string, error)
}

func (g *LessonGenerator) Lessons(ctx context.Context, name, summary string) (string, error) {
	return g.LessonsFn(ctx, name, summary)
}
