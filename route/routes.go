package route

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Frezz12/AchStudentsBackend/app/handler"
	"github.com/Frezz12/AchStudentsBackend/app/model"
	"github.com/Frezz12/AchStudentsBackend/app/repo"
	"github.com/Frezz12/AchStudentsBackend/app/service"
	"github.com/Frezz12/AchStudentsBackend/cache"
	"github.com/Frezz12/AchStudentsBackend/middleware"
)

// SetupRoutes wires repositories, services and handlers onto the app.
// The stats service is returned for the background scheduler.
func SetupRoutes(app *fiber.App, pgDB *sql.DB, mongoDB *mongo.Database, board *cache.Leaderboard) *service.StatsService {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	userRepo := repo.NewUserRepo(pgDB)
	achievementRepo := repo.NewAchievementRepo(pgDB)
	awardRepo := repo.NewAwardRepo(pgDB)
	evidenceRepo := repo.NewEvidenceRepo(mongoDB)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(achievementRepo)
	awardService := service.NewAwardService(awardRepo, achievementRepo, userRepo, evidenceRepo, board)
	statsService := service.NewStatsService(awardRepo, achievementRepo, userRepo, board)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, awardService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	awardHandler := handler.NewAwardHandler(awardService)
	statsHandler := handler.NewStatsHandler(statsService)

	auth := v1.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/profile", middleware.AuthRequired(), authHandler.Profile)

	achievements := v1.Group("/achievements")
	achievements.Get("/", catalogHandler.List)
	achievements.Get("/uuid/:uuid", catalogHandler.GetByUUID)
	achievements.Get("/:id", catalogHandler.Get)
	achievements.Post("/", middleware.AuthRequired(), catalogHandler.Create)
	achievements.Patch("/:id", middleware.AuthRequired(), catalogHandler.Update)
	achievements.Delete("/:id", middleware.AuthRequired(), catalogHandler.Delete)

	awards := v1.Group("/student-achievements")
	awards.Get("/", awardHandler.List)
	awards.Get("/stats/student/:studentId", statsHandler.StudentStats)
	awards.Get("/stats/achievement/:achievementId", statsHandler.AchievementStats)
	awards.Get("/uuid/:uuid", awardHandler.GetByUUID)
	awards.Get("/:id", awardHandler.Get)
	awards.Get("/:id/evidence", awardHandler.ListEvidence)
	awards.Post("/", middleware.AuthRequired(), awardHandler.Claim)
	awards.Post("/:id/evidence", middleware.AuthRequired(), awardHandler.AddEvidence)
	awards.Patch("/:id", middleware.AuthRequired(), awardHandler.Update)
	awards.Delete("/:id", middleware.AuthRequired(), awardHandler.Delete)

	users := v1.Group("/users")
	users.Get("/", userHandler.List)
	users.Get("/stats", statsHandler.UserStats)
	users.Get("/uuid/:uuid", userHandler.GetByUUID)
	users.Get("/:id", userHandler.Get)
	users.Post("/", middleware.AuthRequired(), middleware.RolesRequired(model.RoleAdmin), userHandler.Create)
	users.Post("/:id/achievements", middleware.AuthRequired(), middleware.RolesRequired(model.RoleCurator, model.RoleAdmin), userHandler.Grant)
	users.Patch("/:id", middleware.AuthRequired(), userHandler.Update)
	users.Delete("/:id", middleware.AuthRequired(), userHandler.Delete)

	v1.Get("/leaderboard", statsHandler.Leaderboard)

	return statsService
}
