package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/servicehub/marketplace-api/internal/config"
	dbpkg "github.com/servicehub/marketplace-api/internal/db"
	"github.com/servicehub/marketplace-api/internal/logger"
	"github.com/servicehub/marketplace-api/internal/middleware"
	"github.com/servicehub/marketplace-api/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unavailable, category cache disabled")
			rdb = nil
		}
		cancel()
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
