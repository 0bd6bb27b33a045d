package i

import (
	"context"

	"github.com/beka-birhanu/labiri-api/maze"
	"github.com/google/uuid"
)

// MoveResult is the state after a move request together with what the move did.
type MoveResult struct {
	Outcome  maze.Outcome
	Snapshot maze.Snapshot
}

// MazeSessionManager owns the in-memory game of every playing user.
type MazeSessionManager interface {
	Start(ctx context.Context, userID uuid.UUID) (maze.Snapshot, error)
	Snapshot(ctx context.Context, userID uuid.UUID) (maze.Snapshot, error)
	Move(ctx context.Context, userID uuid.UUID, d maze.Direction) (MoveResult, error)
	ReturnToStart(ctx context.Context, userID uuid.UUID) (maze.Snapshot, error)
	Reset(ctx context.Context, userID uuid.UUID) (maze.Snapshot, error)
	End(ctx context.Context, userID uuid.UUID) (maze.Snapshot, error)
}
