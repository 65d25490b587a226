package server

import (
	"context"

	"github.com/playperu/wordballoon/internal/game"
)

// Game is the controller surface the HTTP layer drives.
type Game interface {
	Snapshot() game.State
	Collection() game.CollectionView
	StartQuiz(ctx context.Context) error
	Answer(ctx context.Context, optionID string) error
	ReplayPrompt(ctx context.Context) error
	Navigate(ctx context.Context, to game.Screen) error
	Spin(ctx context.Context) error
	DismissDraw(ctx context.Context) error
	SpeakItem(ctx context.Context, id string) error
	ResetProfile(ctx context.Context, conf game.Confirmation) error
}

var _ Game = (*game.Controller)(nil)
