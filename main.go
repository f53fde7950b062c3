package main

import (
	"log"

	"github.com/Frezz12/AchStudentsBackend/cache"
	"github.com/Frezz12/AchStudentsBackend/config"
	"github.com/Frezz12/AchStudentsBackend/db"
	"github.com/Frezz12/AchStudentsBackend/route"
	"github.com/Frezz12/AchStudentsBackend/scheduler"
)

func main() {
	config.Logger()
	config.LoadEnv()

	db.ConnectDB()

	board := cache.NewLeaderboard(config.Env.RedisAddr)

	app := config.NewApp()

	statsService := route.SetupRoutes(app, db.GetDB(), db.GetMongo(), board)

	cronJobs := scheduler.Start(statsService)
	defer cronJobs.Stop()

	log.Fatal(app.Listen(":" + config.Env.AppPort))
}
