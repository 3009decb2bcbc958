package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/servicehub/marketplace-api/internal/audit"
	"github.com/servicehub/marketplace-api/internal/config"
	domain "github.com/servicehub/marketplace-api/internal/domain/onboarding"
	"github.com/servicehub/marketplace-api/internal/handlers"
	"github.com/servicehub/marketplace-api/internal/infra/cache"
	infraRepo "github.com/servicehub/marketplace-api/internal/infra/repository"
	"github.com/servicehub/marketplace-api/internal/middleware"
	ucOnboarding "github.com/servicehub/marketplace-api/internal/usecase/onboarding"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	onboardingRepo := infraRepo.NewOnboardingGormRepository(db)

	var directory domain.CategoryDirectory = onboardingRepo
	if rdb != nil {
		directory = cache.NewCategoryCache(rdb, onboardingRepo, log)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — ONBOARDING
	// ======================================================
	commitProfileUC := ucOnboarding.NewCommitProfile(
		onboardingRepo,
		onboardingRepo,
		auditDispatcher,
	)

	onboardingFlow := ucOnboarding.NewFlow(
		directory,
		commitProfileUC,
		log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	categoryHandler := handlers.NewCategoryHandler(directory)
	onboardingHandler := handlers.NewOnboardingHandler(db, onboardingFlow)
	routeHandler := handlers.NewRouteHandler(db, cfg)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/route", routeHandler.Resolve)
		api.GET("/categories", categoryHandler.List)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// ONBOARDING
			// ------------------------------
			secured.POST("/me/onboarding", onboardingHandler.Start)
			secured.GET("/me/onboarding", onboardingHandler.Get)
			secured.POST("/me/onboarding/submit", onboardingHandler.Submit)
			secured.DELETE("/me/onboarding", onboardingHandler.End)
		}
	}
}
