package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/labiri-api/config"
	"github.com/beka-birhanu/labiri-api/maze"
	"github.com/beka-birhanu/labiri-api/service/i"
	"github.com/google/uuid"
)

// submitTimeout bounds the leaderboard write done after a level or a game ends.
const submitTimeout = 2 * time.Second

var (
	ErrNoSession = errors.New("no maze session for player")
)

// mazeSession is the game of one user. Only the manager touches it, under its lock.
type mazeSession struct {
	id        uuid.UUID
	state     maze.State
	startedAt time.Time
}

// MazeSessionManager keeps one in-memory maze per playing user.
type MazeSessionManager struct {
	sessions    map[uuid.UUID]*mazeSession // keyed by user ID
	generator   *maze.Generator
	mazeConfig  config.MazeConfig
	leaderboard i.Leaderboard
	logger      i.Logger
	sync.RWMutex
}

// MazeSessionConfig configures a MazeSessionManager.
type MazeSessionConfig struct {
	Maze        config.MazeConfig
	Generator   *maze.Generator // shared by every session; built from Maze.RandomSeed when nil
	Leaderboard i.Leaderboard
	Logger      i.Logger
}

// NewMazeSessionManager validates the configuration and creates a manager.
func NewMazeSessionManager(c MazeSessionConfig) (*MazeSessionManager, error) {
	if c.Leaderboard == nil || c.Logger == nil {
		return nil, errors.New("maze session manager needs a leaderboard and a logger")
	}
	if c.Maze.InitialCols < 1 || c.Maze.InitialRows < 1 {
		return nil, fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimensions, c.Maze.InitialCols, c.Maze.InitialRows)
	}

	gen := c.Generator
	if gen == nil {
		gen = maze.NewGenerator(c.Maze.RandomSeed)
	}

	return &MazeSessionManager{
		sessions:    make(map[uuid.UUID]*mazeSession),
		generator:   gen,
		mazeConfig:  c.Maze,
		leaderboard: c.Leaderboard,
		logger:      c.Logger,
	}, nil
}

// Start begins a new game for the user. A game already in progress is ended first.
func (m *MazeSessionManager) Start(ctx context.Context, userID uuid.UUID) (maze.Snapshot, error) {
	state, err := maze.NewState(m.mazeConfig.InitialCols, m.mazeConfig.InitialRows, m.generator)
	if err != nil {
		return maze.Snapshot{}, err
	}

	m.Lock()
	previous, hadPrevious := m.sessions[userID]
	m.sessions[userID] = &mazeSession{
		id:        uuid.New(),
		state:     state,
		startedAt: time.Now(),
	}
	m.Unlock()

	if hadPrevious {
		m.logger.Info(fmt.Sprintf("replacing session %s of player %s", previous.id, userID))
		m.submit(ctx, userID, previous.state.Score())
	}

	m.logger.Info(fmt.Sprintf("started %dx%d maze for player %s", state.Cols(), state.Rows(), userID))
	return state.Snapshot(), nil
}

// Snapshot returns the current view of the user's game.
func (m *MazeSessionManager) Snapshot(ctx context.Context, userID uuid.UUID) (maze.Snapshot, error) {
	m.RLock()
	defer m.RUnlock()

	s, ok := m.sessions[userID]
	if !ok {
		return maze.Snapshot{}, ErrNoSession
	}
	return s.state.Snapshot(), nil
}

// Move applies one directional request. Blocked moves leave the game unchanged.
func (m *MazeSessionManager) Move(ctx context.Context, userID uuid.UUID, d maze.Direction) (i.MoveResult, error) {
	m.Lock()
	s, ok := m.sessions[userID]
	if !ok {
		m.Unlock()
		return i.MoveResult{}, ErrNoSession
	}

	next, outcome := maze.Move(s.state, d)
	s.state = next
	snapshot := next.Snapshot()
	m.Unlock()

	if outcome == maze.Escaped {
		m.logger.Info(fmt.Sprintf("player %s escaped, level %d is %dx%d", userID, next.Level(), next.Cols(), next.Rows()))
		m.submit(ctx, userID, next.Score())
	}

	return i.MoveResult{Outcome: outcome, Snapshot: snapshot}, nil
}

// ReturnToStart puts the player back on (0,0) of the current maze.
func (m *MazeSessionManager) ReturnToStart(ctx context.Context, userID uuid.UUID) (maze.Snapshot, error) {
	return m.update(userID, maze.State.ReturnToStart)
}

// Reset replaces the current maze with a new one of the same size.
func (m *MazeSessionManager) Reset(ctx context.Context, userID uuid.UUID) (maze.Snapshot, error) {
	return m.update(userID, maze.State.Reset)
}

// End finishes the user's game and records its score.
func (m *MazeSessionManager) End(ctx context.Context, userID uuid.UUID) (maze.Snapshot, error) {
	m.Lock()
	s, ok := m.sessions[userID]
	if ok {
		delete(m.sessions, userID)
	}
	m.Unlock()

	if !ok {
		return maze.Snapshot{}, ErrNoSession
	}

	m.logger.Info(fmt.Sprintf("session %s of player %s ended after %s with score %d", s.id, userID, time.Since(s.startedAt).Round(time.Second), s.state.Score()))
	m.submit(ctx, userID, s.state.Score())
	return s.state.Snapshot(), nil
}

// Active returns the number of games in progress.
func (m *MazeSessionManager) Active() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.sessions)
}

func (m *MazeSessionManager) update(userID uuid.UUID, f func(maze.State) maze.State) (maze.Snapshot, error) {
	m.Lock()
	defer m.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		return maze.Snapshot{}, ErrNoSession
	}
	s.state = f(s.state)
	return s.state.Snapshot(), nil
}

// submit records a score. Failures are logged; the game goes on regardless.
func (m *MazeSessionManager) submit(ctx context.Context, userID uuid.UUID, score int) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), submitTimeout)
	defer cancel()

	if err := m.leaderboard.Submit(ctx, userID, score); err != nil {
		m.logger.Error(fmt.Sprintf("recording score %d for player %s: %v", score, userID, err))
	}
}
