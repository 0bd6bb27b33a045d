package service

import (
	"context"
	"errors"
	"testing"

	"github.com/beka-birhanu/labiri-api/config"
	"github.com/beka-birhanu/labiri-api/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, lb *fakeLeaderboard) *MazeSessionManager {
	t.Helper()
	m, err := NewMazeSessionManager(MazeSessionConfig{
		Maze:        config.MazeConfig{InitialCols: 2, InitialRows: 2, RandomSeed: 77},
		Leaderboard: lb,
		Logger:      nopLogger{},
	})
	require.NoError(t, err)
	return m
}

// pathToExit finds the open corridor from the player to the exit of a snapshot.
func pathToExit(s maze.Snapshot) []maze.Direction {
	type step struct {
		prev maze.Position
		dir  maze.Direction
	}
	open := func(p maze.Position, d maze.Direction) bool {
		w := s.Walls(p.Col, p.Row)
		switch d {
		case maze.Up:
			return !w.Top
		case maze.Down:
			return !w.Bottom
		case maze.Left:
			return !w.Left
		default:
			return !w.Right
		}
	}

	came := map[maze.Position]step{}
	seen := map[maze.Position]bool{s.Player: true}
	queue := []maze.Position{s.Player}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range []maze.Direction{maze.Up, maze.Down, maze.Left, maze.Right} {
			n := p.Add(d.Delta())
			if !open(p, d) || seen[n] {
				continue
			}
			seen[n] = true
			came[n] = step{prev: p, dir: d}
			queue = append(queue, n)
		}
	}

	var path []maze.Direction
	for p := s.Exit; p != s.Player; p = came[p].prev {
		path = append([]maze.Direction{came[p].dir}, path...)
	}
	return path
}

func TestNewMazeSessionManager(t *testing.T) {
	_, err := NewMazeSessionManager(MazeSessionConfig{Logger: nopLogger{}})
	assert.Error(t, err)

	_, err = NewMazeSessionManager(MazeSessionConfig{
		Maze:        config.MazeConfig{InitialCols: 0, InitialRows: 3},
		Leaderboard: &fakeLeaderboard{},
		Logger:      nopLogger{},
	})
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
}

func TestMazeSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	lb := &fakeLeaderboard{}
	m := newTestManager(t, lb)
	player := uuid.New()

	t.Run("operations need a session", func(t *testing.T) {
		_, err := m.Snapshot(ctx, player)
		assert.ErrorIs(t, err, ErrNoSession)
		_, err = m.Move(ctx, player, maze.Right)
		assert.ErrorIs(t, err, ErrNoSession)
		_, err = m.ReturnToStart(ctx, player)
		assert.ErrorIs(t, err, ErrNoSession)
		_, err = m.Reset(ctx, player)
		assert.ErrorIs(t, err, ErrNoSession)
		_, err = m.End(ctx, player)
		assert.ErrorIs(t, err, ErrNoSession)
	})

	snap, err := m.Start(ctx, player)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Cols)
	assert.Equal(t, 2, snap.Rows)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 1, m.Active())

	t.Run("blocked move changes nothing", func(t *testing.T) {
		res, err := m.Move(ctx, player, maze.Up)
		require.NoError(t, err)
		assert.Equal(t, maze.Blocked, res.Outcome)
		assert.Equal(t, snap, res.Snapshot)
	})

	t.Run("escaping grows the maze and submits the score", func(t *testing.T) {
		var outcome maze.Outcome
		for _, d := range pathToExit(snap) {
			res, err := m.Move(ctx, player, d)
			require.NoError(t, err)
			outcome = res.Outcome
		}
		assert.Equal(t, maze.Escaped, outcome)

		current, err := m.Snapshot(ctx, player)
		require.NoError(t, err)
		assert.Equal(t, 3, current.Cols)
		assert.Equal(t, 3, current.Rows)
		assert.Equal(t, 1, current.Score)
		require.Len(t, lb.submissions, 1)
		assert.Equal(t, submission{userID: player, score: 1}, lb.submissions[0])
	})

	t.Run("return to start keeps the maze", func(t *testing.T) {
		before, _ := m.Snapshot(ctx, player)
		path := pathToExit(before)
		_, err := m.Move(ctx, player, path[0])
		require.NoError(t, err)

		back, err := m.ReturnToStart(ctx, player)
		require.NoError(t, err)
		assert.Equal(t, before, back)
	})

	t.Run("reset keeps size and score", func(t *testing.T) {
		reset, err := m.Reset(ctx, player)
		require.NoError(t, err)
		assert.Equal(t, 3, reset.Cols)
		assert.Equal(t, 1, reset.Score)
		assert.Equal(t, maze.Position{}, reset.Player)
	})

	t.Run("end submits the final score", func(t *testing.T) {
		final, err := m.End(ctx, player)
		require.NoError(t, err)
		assert.Equal(t, 1, final.Score)
		assert.Equal(t, 0, m.Active())
		require.Len(t, lb.submissions, 2)
	})
}

func TestMazeSessionRestart(t *testing.T) {
	ctx := context.Background()
	lb := &fakeLeaderboard{}
	m := newTestManager(t, lb)
	player := uuid.New()

	_, err := m.Start(ctx, player)
	require.NoError(t, err)
	_, err = m.Start(ctx, player)
	require.NoError(t, err)

	assert.Equal(t, 1, m.Active())
	assert.Len(t, lb.submissions, 1)
}

func TestMazeSessionLeaderboardFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	lb := &fakeLeaderboard{err: errors.New("redis down")}
	m := newTestManager(t, lb)
	player := uuid.New()

	snap, err := m.Start(ctx, player)
	require.NoError(t, err)
	for _, d := range pathToExit(snap) {
		_, err := m.Move(ctx, player, d)
		require.NoError(t, err)
	}

	current, err := m.Snapshot(ctx, player)
	require.NoError(t, err)
	assert.Equal(t, 1, current.Score)
}

func TestMazeSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, &fakeLeaderboard{})
	alice, bob := uuid.New(), uuid.New()

	a, err := m.Start(ctx, alice)
	require.NoError(t, err)
	_, err = m.Start(ctx, bob)
	require.NoError(t, err)

	for _, d := range pathToExit(a) {
		_, err := m.Move(ctx, alice, d)
		require.NoError(t, err)
	}

	bobSnap, err := m.Snapshot(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, 0, bobSnap.Score)
	assert.Equal(t, 2, bobSnap.Cols)
}
