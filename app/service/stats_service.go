package service

import (
	"context"
	"log"
	"sort"

	"github.com/Frezz12/AchStudentsBackend/app/model"
	"github.com/Frezz12/AchStudentsBackend/app/repo"
	"github.com/Frezz12/AchStudentsBackend/cache"
)

// StatsService derives read-only statistics from the award record
// store. No method here mutates anything.
type StatsService struct {
	awards       repo.AwardRepository
	achievements repo.AchievementRepository
	users        repo.UserRepository
	board        *cache.Leaderboard
}

func NewStatsService(
	awards repo.AwardRepository,
	achievements repo.AchievementRepository,
	users repo.UserRepository,
	board *cache.Leaderboard,
) *StatsService {
	return &StatsService{
		awards:       awards,
		achievements: achievements,
		users:        users,
		board:        board,
	}
}

// approvedPoints sums the star points of a student's approved awards.
func approvedPoints(awards repo.AwardRepository, achievements repo.AchievementRepository, studentID int64) (int, error) {
	records, err := awards.Find(model.AwardFilter{StudentID: studentID, Status: model.StatusApproved})
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	ids := make([]int64, 0, len(records))
	for _, sa := range records {
		ids = append(ids, sa.AchievementID)
	}
	defs, err := achievements.FindByIDs(ids)
	if err != nil {
		return 0, err
	}
	pointsByID := make(map[int64]int, len(defs))
	for _, a := range defs {
		pointsByID[a.ID] = a.StarPoints
	}

	total := 0
	for _, sa := range records {
		total += pointsByID[sa.AchievementID]
	}
	return total, nil
}

// StudentStats counts a student's awards by status and sums the star
// points of approved ones. A student with no records gets all zeros.
func (s *StatsService) StudentStats(studentID int64) (*model.StudentStatsResponse, error) {
	records, err := s.awards.Find(model.AwardFilter{StudentID: studentID})
	if err != nil {
		return nil, err
	}

	stats := &model.StudentStatsResponse{TotalAchievements: len(records)}
	for _, sa := range records {
		switch sa.Status {
		case model.StatusApproved:
			stats.ApprovedAchievements++
		case model.StatusPending:
			stats.PendingAchievements++
		case model.StatusRejected:
			stats.RejectedAchievements++
		}
	}

	stats.TotalPoints, err = approvedPoints(s.awards, s.achievements, studentID)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// AchievementStats counts how many students hold an achievement, by
// status. Points are per-student, so none are aggregated here.
func (s *StatsService) AchievementStats(achievementID int64) (*model.AchievementStatsResponse, error) {
	records, err := s.awards.Find(model.AwardFilter{AchievementID: achievementID})
	if err != nil {
		return nil, err
	}

	stats := &model.AchievementStatsResponse{TotalStudents: len(records)}
	for _, sa := range records {
		switch sa.Status {
		case model.StatusApproved:
			stats.ApprovedStudents++
		case model.StatusPending:
			stats.PendingStudents++
		case model.StatusRejected:
			stats.RejectedStudents++
		}
	}
	return stats, nil
}

func (s *StatsService) UserStats() (*model.UserStats, error) {
	return s.users.CountByRole()
}

// Leaderboard returns the top students by approved points. Redis serves
// the fast path; an empty or unreachable board falls back to a store
// aggregation.
func (s *StatsService) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var top []model.StudentPoints
	if s.board != nil {
		if size, err := s.board.Size(ctx); err == nil && size > 0 {
			if cached, err := s.board.Top(ctx, limit); err == nil {
				top = cached
			} else {
				log.Println("Leaderboard cache read failed:", err)
			}
		}
	}

	if top == nil {
		points, err := s.awards.ApprovedPointsByStudent()
		if err != nil {
			return nil, err
		}
		sort.Slice(points, func(i, j int) bool { return points[i].Points > points[j].Points })
		if len(points) > limit {
			points = points[:limit]
		}
		top = points
	}

	entries := make([]model.LeaderboardEntry, 0, len(top))
	for _, p := range top {
		entry := model.LeaderboardEntry{StudentID: p.StudentID, TotalPoints: p.Points}
		if user, err := s.users.FindByID(p.StudentID); err == nil {
			entry.StudentName = user.Firstname + " " + user.Lastname
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// RebuildLeaderboard recomputes the whole board from the store. Wired
// to the cron scheduler; also safe to call ad hoc.
func (s *StatsService) RebuildLeaderboard(ctx context.Context) error {
	if s.board == nil {
		return nil
	}
	points, err := s.awards.ApprovedPointsByStudent()
	if err != nil {
		return err
	}
	return s.board.Rebuild(ctx, points)
}
