package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/labiri-api/domain"
	"github.com/beka-birhanu/labiri-api/service/i"
	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}
func (nopLogger) Debug(string)   {}

type submission struct {
	userID uuid.UUID
	score  int
}

type fakeLeaderboard struct {
	mu          sync.Mutex
	submissions []submission
	err         error
}

func (f *fakeLeaderboard) Submit(_ context.Context, userID uuid.UUID, score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submissions = append(f.submissions, submission{userID: userID, score: score})
	return f.err
}

func (f *fakeLeaderboard) Top(context.Context, int64) ([]i.LeaderboardEntry, error) {
	return nil, nil
}

func (f *fakeLeaderboard) Standing(context.Context, uuid.UUID) (i.LeaderboardEntry, error) {
	return i.LeaderboardEntry{}, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]dmn.User
	saves int
}

func newFakeUserRepo(users ...*dmn.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]dmn.User)}
	for _, u := range users {
		r.users[u.ID] = *u
	}
	return r
}

func (r *fakeUserRepo) Save(_ context.Context, user *dmn.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if u.Username == user.Username && id != user.ID {
			return dmn.ErrUsernameConflict
		}
	}
	r.users[user.ID] = *user
	r.saves++
	return nil
}

func (r *fakeUserRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, dmn.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) ByUsername(_ context.Context, username string) (*dmn.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

type fakeTokenizer struct {
	claims map[string]interface{}
}

func (f *fakeTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	f.claims = claims
	return "token", nil
}

func (f *fakeTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != "token" {
		return nil, errors.New("invalid token")
	}
	return f.claims, nil
}

type fakeScoreBoard struct {
	scores map[string]float64
}

func newFakeScoreBoard() *fakeScoreBoard {
	return &fakeScoreBoard{scores: make(map[string]float64)}
}

func (f *fakeScoreBoard) SubmitBest(_ context.Context, _ string, member string, score float64) (bool, error) {
	if current, ok := f.scores[member]; ok && current >= score {
		return false, nil
	}
	f.scores[member] = score
	return true, nil
}

func (f *fakeScoreBoard) ranked() []i.ScoreEntry {
	entries := make([]i.ScoreEntry, 0, len(f.scores))
	for m, s := range f.scores {
		entries = append(entries, i.ScoreEntry{Member: m, Score: s})
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].Score > entries[b].Score })
	return entries
}

func (f *fakeScoreBoard) Top(_ context.Context, _ string, amount int64) ([]i.ScoreEntry, error) {
	entries := f.ranked()
	if int64(len(entries)) > amount {
		entries = entries[:amount]
	}
	return entries, nil
}

func (f *fakeScoreBoard) Rank(_ context.Context, _ string, member string) (int64, float64, error) {
	for idx, e := range f.ranked() {
		if e.Member == member {
			return int64(idx), e.Score, nil
		}
	}
	return 0, 0, i.ErrNotRanked
}
