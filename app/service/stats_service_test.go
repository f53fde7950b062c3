package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Frezz12/AchStudentsBackend/app/model"
)

func newStatsFixture(t *testing.T) (*StatsService, *AwardService, *fakeAchievementRepo, *fakeUserRepo) {
	t.Helper()
	awards := newFakeAwardRepo()
	achievements := newFakeAchievementRepo()
	users := newFakeUserRepo()
	awardSvc := NewAwardService(awards, achievements, users, newFakeEvidenceRepo(), nil)
	statsSvc := NewStatsService(awards, achievements, users, nil)
	return statsSvc, awardSvc, achievements, users
}

func TestStudentStatsEmpty(t *testing.T) {
	statsSvc, _, _, _ := newStatsFixture(t)

	stats, err := statsSvc.StudentStats(42)
	require.NoError(t, err)
	assert.Equal(t, &model.StudentStatsResponse{}, stats)
}

func TestStudentStatsCountsAndPoints(t *testing.T) {
	statsSvc, awardSvc, achievements, users := newStatsFixture(t)
	student := seedStudent(t, users)
	actor := model.Actor{ID: student.ID, Role: model.RoleStudent}
	curator := model.Actor{ID: 9, Role: model.RoleCurator}

	a1 := seedAchievement(achievements, 50, model.CategoryAcademic)
	a2 := seedAchievement(achievements, 30, model.CategorySports)
	a3 := seedAchievement(achievements, 20, model.CategoryCreative)

	sa1, err := awardSvc.SelfClaim(actor, model.ClaimRequest{AchievementID: a1.ID})
	require.NoError(t, err)
	sa2, err := awardSvc.SelfClaim(actor, model.ClaimRequest{AchievementID: a2.ID})
	require.NoError(t, err)
	_, err = awardSvc.SelfClaim(actor, model.ClaimRequest{AchievementID: a3.ID})
	require.NoError(t, err)

	approved := model.StatusApproved
	rejected := model.StatusRejected
	_, err = awardSvc.Transition(curator, sa1.ID, model.UpdateAwardRequest{Status: &approved})
	require.NoError(t, err)
	_, err = awardSvc.Transition(curator, sa2.ID, model.UpdateAwardRequest{Status: &rejected})
	require.NoError(t, err)

	stats, err := statsSvc.StudentStats(student.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalAchievements)
	assert.Equal(t, 1, stats.ApprovedAchievements)
	assert.Equal(t, 1, stats.PendingAchievements)
	assert.Equal(t, 1, stats.RejectedAchievements)
	// Only the approved record contributes points.
	assert.Equal(t, 50, stats.TotalPoints)
}

func TestAchievementStatsCountsByStatus(t *testing.T) {
	statsSvc, awardSvc, achievements, users := newStatsFixture(t)
	a := seedAchievement(achievements, 25, model.CategoryLeadership)
	curator := model.Actor{ID: 9, Role: model.RoleCurator}

	var studentIDs []int64
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		u := &model.User{Firstname: "S", Lastname: "T", Email: email, Role: model.RoleStudent}
		require.NoError(t, users.Create(u))
		studentIDs = append(studentIDs, u.ID)
	}

	var recordIDs []int64
	for _, id := range studentIDs {
		sa, err := awardSvc.Grant(curator, id, model.ClaimRequest{AchievementID: a.ID})
		require.NoError(t, err)
		recordIDs = append(recordIDs, sa.ID)
	}

	approved := model.StatusApproved
	rejected := model.StatusRejected
	_, err := awardSvc.Transition(curator, recordIDs[0], model.UpdateAwardRequest{Status: &approved})
	require.NoError(t, err)
	_, err = awardSvc.Transition(curator, recordIDs[1], model.UpdateAwardRequest{Status: &rejected})
	require.NoError(t, err)

	stats, err := statsSvc.AchievementStats(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 1, stats.ApprovedStudents)
	assert.Equal(t, 1, stats.PendingStudents)
	assert.Equal(t, 1, stats.RejectedStudents)
}

func TestAchievementStatsEmpty(t *testing.T) {
	statsSvc, _, achievements, _ := newStatsFixture(t)
	a := seedAchievement(achievements, 25, model.CategoryLeadership)

	stats, err := statsSvc.AchievementStats(a.ID)
	require.NoError(t, err)
	assert.Equal(t, &model.AchievementStatsResponse{}, stats)
}

func TestUserStatsCountsByRole(t *testing.T) {
	statsSvc, _, _, users := newStatsFixture(t)

	for i, role := range []model.Role{model.RoleStudent, model.RoleStudent, model.RoleCurator, model.RoleAdmin} {
		u := &model.User{Firstname: "U", Lastname: "V", Email: string(rune('a'+i)) + "@example.com", Role: role}
		require.NoError(t, users.Create(u))
	}

	stats, err := statsSvc.UserStats()
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.Students)
	assert.Equal(t, int64(1), stats.Curators)
	assert.Equal(t, int64(1), stats.Admins)
}

func TestLeaderboardFallbackOrdersByPoints(t *testing.T) {
	statsSvc, awardSvc, achievements, users := newStatsFixture(t)
	curator := model.Actor{ID: 9, Role: model.RoleCurator}
	a := seedAchievement(achievements, 10, model.CategoryAcademic)
	b := seedAchievement(achievements, 10, model.CategorySports)

	first := &model.User{Firstname: "Top", Lastname: "Scorer", Email: "top@example.com", Role: model.RoleStudent}
	second := &model.User{Firstname: "Runner", Lastname: "Up", Email: "up@example.com", Role: model.RoleStudent}
	require.NoError(t, users.Create(first))
	require.NoError(t, users.Create(second))

	approved := model.StatusApproved
	for _, achievementID := range []int64{a.ID, b.ID} {
		sa, err := awardSvc.Grant(curator, first.ID, model.ClaimRequest{AchievementID: achievementID})
		require.NoError(t, err)
		_, err = awardSvc.Transition(curator, sa.ID, model.UpdateAwardRequest{Status: &approved})
		require.NoError(t, err)
	}
	sa, err := awardSvc.Grant(curator, second.ID, model.ClaimRequest{AchievementID: a.ID})
	require.NoError(t, err)
	_, err = awardSvc.Transition(curator, sa.ID, model.UpdateAwardRequest{Status: &approved})
	require.NoError(t, err)

	entries, err := statsSvc.Leaderboard(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].StudentID)
	assert.Equal(t, "Top Scorer", entries[0].StudentName)
	assert.Equal(t, second.ID, entries[1].StudentID)
	assert.Greater(t, entries[0].TotalPoints, entries[1].TotalPoints)
}

func TestLeaderboardLimitTruncates(t *testing.T) {
	statsSvc, awardSvc, achievements, users := newStatsFixture(t)
	curator := model.Actor{ID: 9, Role: model.RoleCurator}
	a := seedAchievement(achievements, 10, model.CategoryAcademic)

	approved := model.StatusApproved
	for _, email := range []string{"x@example.com", "y@example.com", "z@example.com"} {
		u := &model.User{Firstname: "S", Lastname: "T", Email: email, Role: model.RoleStudent}
		require.NoError(t, users.Create(u))
		sa, err := awardSvc.Grant(curator, u.ID, model.ClaimRequest{AchievementID: a.ID})
		require.NoError(t, err)
		_, err = awardSvc.Transition(curator, sa.ID, model.UpdateAwardRequest{Status: &approved})
		require.NoError(t, err)
	}

	entries, err := statsSvc.Leaderboard(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
