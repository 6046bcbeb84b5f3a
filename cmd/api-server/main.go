package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	_ "github.com/amara-health/his-api/api/swagger"
	"github.com/amara-health/his-api/internal/handler"
	"github.com/amara-health/his-api/internal/repository"
	"github.com/amara-health/his-api/internal/router"
	"github.com/amara-health/his-api/internal/service"
	"github.com/amara-health/his-api/pkg/cache"
	"github.com/amara-health/his-api/pkg/config"
	"github.com/amara-health/his-api/pkg/database"
	"github.com/amara-health/his-api/pkg/logger"
)

// @title Health Records API
// @version 1.0.0
// @description Registers clients, defines health programs and enrolls clients into programs.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(migrateCtx, db); err != nil {
		logr.Sugar().Fatalw("failed to apply schema", "error", err)
	}

	metrics := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cfg.Cache.Enabled && cacheRepo != nil)

	validate := validator.New()

	programRepo := repository.NewProgramRepository(db)
	clientRepo := repository.NewClientRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	programSvc := service.NewProgramService(programRepo, cacheSvc, validate, logr)
	clientSvc := service.NewClientService(clientRepo, enrollmentRepo, cfg.Search.ResultLimit, validate, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, programRepo, clientRepo, validate, logr)

	var exportSvc *service.ExportService
	if cfg.Exports.Enabled {
		exportSvc = service.NewExportService(clientSvc, logr)
	}

	r := router.New(router.Deps{
		Config:      cfg,
		Logger:      logr,
		Metrics:     metrics,
		Programs:    handler.NewProgramHandler(programSvc),
		Clients:     handler.NewClientHandler(clientSvc, exportSvc),
		Enrollments: handler.NewEnrollmentHandler(enrollmentSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
