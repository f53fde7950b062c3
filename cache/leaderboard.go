// Package cache provides the Redis-backed leaderboard of approved star
// points. The cache is advisory: callers fall back to the relational
// store when it is empty or unreachable.
package cache

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/Frezz12/AchStudentsBackend/app/model"
)

// keyLeaderboard is the sorted set mapping studentID -> approved points.
const keyLeaderboard = "leaderboard:points"

type Leaderboard struct {
	rdb *redis.Client
}

func NewLeaderboard(addr string) *Leaderboard {
	return &Leaderboard{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func NewLeaderboardWithClient(rdb *redis.Client) *Leaderboard {
	return &Leaderboard{rdb: rdb}
}

// SetStudent writes a student's current approved-point total.
func (l *Leaderboard) SetStudent(ctx context.Context, studentID int64, points int) error {
	return l.rdb.ZAdd(ctx, keyLeaderboard, redis.Z{
		Score:  float64(points),
		Member: strconv.FormatInt(studentID, 10),
	}).Err()
}

// RemoveStudent drops a student from the board.
func (l *Leaderboard) RemoveStudent(ctx context.Context, studentID int64) error {
	return l.rdb.ZRem(ctx, keyLeaderboard, strconv.FormatInt(studentID, 10)).Err()
}

// Top returns the highest-scoring students, best first.
func (l *Leaderboard) Top(ctx context.Context, limit int) ([]model.StudentPoints, error) {
	if limit <= 0 {
		limit = 10
	}
	zs, err := l.rdb.ZRevRangeWithScores(ctx, keyLeaderboard, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	top := make([]model.StudentPoints, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		top = append(top, model.StudentPoints{StudentID: id, Points: int(z.Score)})
	}
	return top, nil
}

// Size reports how many students are on the board.
func (l *Leaderboard) Size(ctx context.Context) (int64, error) {
	return l.rdb.ZCard(ctx, keyLeaderboard).Result()
}

// Rebuild replaces the whole board with a fresh aggregation from the
// store.
func (l *Leaderboard) Rebuild(ctx context.Context, points []model.StudentPoints) error {
	pipe := l.rdb.TxPipeline()
	pipe.Del(ctx, keyLeaderboard)
	for _, p := range points {
		pipe.ZAdd(ctx, keyLeaderboard, redis.Z{
			Score:  float64(p.Points),
			Member: strconv.FormatInt(p.StudentID, 10),
		})
	}
	_, err := pipe.Exec(ctx)
	return err
}
