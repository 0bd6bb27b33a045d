package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/labiri-api/service/i"
	"github.com/google/uuid"
)

const defaultBoardKey = "labiri:leaderboard"

// Leaderboard ranks users by the most mazes escaped in one game.
// The ranking lives in the score board, the per-user best in the user repository.
type Leaderboard struct {
	board    i.ScoreBoard
	userRepo i.UserRepo
	boardKey string
	logger   i.Logger
}

// LeaderboardConfig configures a Leaderboard.
type LeaderboardConfig struct {
	Board    i.ScoreBoard
	UserRepo i.UserRepo
	BoardKey string // defaults to "labiri:leaderboard"
	Logger   i.Logger
}

// NewLeaderboard creates a leaderboard service.
func NewLeaderboard(c LeaderboardConfig) (*Leaderboard, error) {
	if c.Board == nil || c.UserRepo == nil || c.Logger == nil {
		return nil, errors.New("leaderboard needs a score board, a user repository and a logger")
	}
	if c.BoardKey == "" {
		c.BoardKey = defaultBoardKey
	}
	return &Leaderboard{
		board:    c.Board,
		userRepo: c.UserRepo,
		boardKey: c.BoardKey,
		logger:   c.Logger,
	}, nil
}

// Submit records score for the user if it is a personal best.
func (l *Leaderboard) Submit(ctx context.Context, userID uuid.UUID, score int) error {
	if score <= 0 {
		return nil
	}

	changed, err := l.board.SubmitBest(ctx, l.boardKey, userID.String(), float64(score))
	if err != nil {
		return fmt.Errorf("submitting score: %w", err)
	}
	if !changed {
		return nil
	}

	user, err := l.userRepo.ByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading user %s: %w", userID, err)
	}
	if user.RecordScore(score) {
		if err := l.userRepo.Save(ctx, user); err != nil {
			return fmt.Errorf("saving best score: %w", err)
		}
	}

	l.logger.Info(fmt.Sprintf("new best score %d for %s", score, user.Username))
	return nil
}

// Top returns the best limit players.
func (l *Leaderboard) Top(ctx context.Context, limit int64) ([]i.LeaderboardEntry, error) {
	entries, err := l.board.Top(ctx, l.boardKey, limit)
	if err != nil {
		return nil, fmt.Errorf("reading leaderboard: %w", err)
	}

	result := make([]i.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		id, err := uuid.Parse(e.Member)
		if err != nil {
			l.logger.Warning(fmt.Sprintf("skipping leaderboard member %q: %v", e.Member, err))
			continue
		}

		entry := i.LeaderboardEntry{
			Rank:      int64(len(result)) + 1,
			UserID:    id,
			BestScore: int(e.Score),
		}
		if user, err := l.userRepo.ByID(ctx, id); err == nil {
			entry.Username = user.Username
		} else {
			l.logger.Warning(fmt.Sprintf("leaderboard member %s has no user record: %v", id, err))
		}
		result = append(result, entry)
	}

	return result, nil
}

// Standing returns the rank and best score of one user.
func (l *Leaderboard) Standing(ctx context.Context, userID uuid.UUID) (i.LeaderboardEntry, error) {
	user, err := l.userRepo.ByID(ctx, userID)
	if err != nil {
		return i.LeaderboardEntry{}, err
	}

	rank, score, err := l.board.Rank(ctx, l.boardKey, userID.String())
	if err != nil {
		return i.LeaderboardEntry{}, err
	}

	return i.LeaderboardEntry{
		Rank:      rank + 1,
		UserID:    userID,
		Username:  user.Username,
		BestScore: int(score),
	}, nil
}
