package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Frezz12/AchStudentsBackend/app/service"
)

// Start schedules the periodic leaderboard rebuild and returns the
// running cron instance so the caller can stop it on shutdown.
func Start(stats *service.StatsService) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@every 10m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := stats.RebuildLeaderboard(ctx); err != nil {
			log.Println("leaderboard rebuild failed:", err)
		}
	})
	if err != nil {
		log.Println("failed to schedule leaderboard rebuild:", err)
		return c
	}

	c.Start()
	return c
}
