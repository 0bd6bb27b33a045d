package i

import (
	"context"

	"github.com/google/uuid"
)

// LeaderboardEntry is a ranked player.
type LeaderboardEntry struct {
	Rank      int64
	UserID    uuid.UUID
	Username  string
	BestScore int
}

// Leaderboard records finished runs and lists the best players.
type Leaderboard interface {
	Submit(ctx context.Context, userID uuid.UUID, score int) error
	Top(ctx context.Context, limit int64) ([]LeaderboardEntry, error)
	Standing(ctx context.Context, userID uuid.UUID) (LeaderboardEntry, error)
}
