package i

import (
	"context"
	"errors"
)

var ErrNotRanked = errors.New("member is not ranked")

// ScoreEntry is one ranked line of the leaderboard.
type ScoreEntry struct {
	Member string  // user ID
	Score  float64 // best score of that user
}

// ScoreBoard keeps the best score of every member in a ranked set.
type ScoreBoard interface {
	// SubmitBest stores score for member unless a higher one is already stored.
	// It reports whether the stored score changed.
	SubmitBest(ctx context.Context, boardKey, member string, score float64) (bool, error)

	// Top returns up to amount members with the highest scores, best first.
	Top(ctx context.Context, boardKey string, amount int64) ([]ScoreEntry, error)

	// Rank returns the zero-based position of member, best first, and its score.
	// ErrNotRanked is returned for members without a score.
	Rank(ctx context.Context, boardKey, member string) (int64, float64, error)
}
