package routes

import (
	"log"

	"profile-sync/internal/config"
	"profile-sync/internal/database"
	"profile-sync/internal/delivery/http/handler"
	"profile-sync/internal/delivery/http/middleware"
	"profile-sync/internal/infrastructure/persistence/postgres"
	"profile-sync/internal/pkg/jwt"
	"profile-sync/internal/usecase"
	ucprofile "profile-sync/internal/usecase/profile"

	"github.com/gofiber/fiber/v3"
)

// Register wires the full HTTP surface: /health openly, /api/* behind the
// JWT identity boundary.
func Register(app *fiber.App, cfg config.Config, db database.DB, c ucprofile.Cache, logger *log.Logger) {
	if app == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	RegisterWithJWT(app, jwtSvc, db, c, logger)
}

// RegisterWithJWT is split out so tests can inject a deterministic token
// service.
func RegisterWithJWT(app *fiber.App, jwtSvc jwt.Service, db database.DB, c ucprofile.Cache, logger *log.Logger) {
	if app == nil {
		return
	}

	healthHandler := handler.NewHealthHandler(db)
	healthHandler.RegisterRoutes(app)

	profileRepo := postgres.NewProfileRepository(db)
	industryRepo := postgres.NewIndustryRepository(db)
	profileUC := usecase.NewProfileUsecase(profileRepo, industryRepo, c, logger)

	authMw := middleware.NewAuthMiddleware(jwtSvc)
	api := app.Group("/api", authMw.Middleware())

	profileHandler := handler.NewProfileHandler(profileUC)
	profileHandler.RegisterRoutes(api)
}
