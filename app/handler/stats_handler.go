package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Frezz12/AchStudentsBackend/app/model"
	"github.com/Frezz12/AchStudentsBackend/app/service"
)

type StatsHandler struct {
	stats *service.StatsService
}

func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GET /api/v1/student-achievements/stats/student/:studentId
func (h *StatsHandler) StudentStats(c *fiber.Ctx) error {
	studentID, err := parseID(c, "studentId")
	if err != nil {
		return badRequest(c, "Invalid student id")
	}

	stats, err := h.stats.StudentStats(studentID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.StudentStatsResponse]{Success: true, Data: stats})
}

// GET /api/v1/student-achievements/stats/achievement/:achievementId
func (h *StatsHandler) AchievementStats(c *fiber.Ctx) error {
	achievementID, err := parseID(c, "achievementId")
	if err != nil {
		return badRequest(c, "Invalid achievement id")
	}

	stats, err := h.stats.AchievementStats(achievementID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.AchievementStatsResponse]{Success: true, Data: stats})
}

// GET /api/v1/users/stats
func (h *StatsHandler) UserStats(c *fiber.Ctx) error {
	stats, err := h.stats.UserStats()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[*model.UserStats]{Success: true, Data: stats})
}

// GET /api/v1/leaderboard?limit=
func (h *StatsHandler) Leaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	entries, err := h.stats.Leaderboard(c.Context(), limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(model.SuccessResponse[[]model.LeaderboardEntry]{Success: true, Data: entries})
}
