package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/labiri-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisScoreBoard keeps best scores in a Redis sorted set with TTL support.
type RedisScoreBoard struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisScoreBoard initializes a RedisScoreBoard with the provided Redis client and TTL.
// A non-positive ttlSeconds keeps the board forever.
func NewRedisScoreBoard(client *redis.Client, ttlSeconds int) (*RedisScoreBoard, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	board := &RedisScoreBoard{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// SubmitBest stores score for member if it beats the stored one.
// The read-compare-write runs under a redsync mutex so concurrent API instances
// cannot overwrite a higher score with a lower one.
func (rsb *RedisScoreBoard) SubmitBest(ctx context.Context, boardKey, member string, score float64) (bool, error) {
	mutex := rsb.locker.NewMutex(fmt.Sprintf("%s:%s:submit_lock", boardKey, member))
	if err := mutex.LockContext(ctx); err != nil {
		return false, err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	current, err := rsb.client.ZScore(ctx, boardKey, member).Result()
	switch {
	case err == nil && current >= score:
		return false, nil
	case err != nil && !errors.Is(err, redis.Nil):
		return false, err
	}

	if _, err := rsb.client.ZAdd(ctx, boardKey, redis.Z{Score: score, Member: member}).Result(); err != nil {
		return false, err
	}

	// Set expiration only if it's not already set
	if rsb.ttl > 0 {
		ttl, err := rsb.client.TTL(ctx, boardKey).Result()
		if err == nil && ttl == -1 {
			_ = rsb.client.Expire(ctx, boardKey, rsb.ttl).Err()
		}
	}

	return true, nil
}

// Top retrieves up to amount members with the highest scores.
func (rsb *RedisScoreBoard) Top(ctx context.Context, boardKey string, amount int64) ([]i.ScoreEntry, error) {
	if amount <= 0 {
		return []i.ScoreEntry{}, nil
	}

	zs, err := rsb.client.ZRevRangeWithScores(ctx, boardKey, 0, amount-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]i.ScoreEntry, 0, len(zs))
	for _, z := range zs {
		entries = append(entries, i.ScoreEntry{Member: fmt.Sprint(z.Member), Score: z.Score})
	}
	return entries, nil
}

// Rank returns the zero-based position of member counted from the best score.
func (rsb *RedisScoreBoard) Rank(ctx context.Context, boardKey, member string) (int64, float64, error) {
	rank, err := rsb.client.ZRevRank(ctx, boardKey, member).Result()
	if errors.Is(err, redis.Nil) {
		return 0, 0, i.ErrNotRanked
	}
	if err != nil {
		return 0, 0, err
	}

	score, err := rsb.client.ZScore(ctx, boardKey, member).Result()
	if err != nil {
		return 0, 0, err
	}
	return rank, score, nil
}
