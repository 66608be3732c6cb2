package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"partnerdesk/internal/core/config"
	"partnerdesk/internal/core/database"
	"partnerdesk/internal/core/logger"
	"partnerdesk/internal/core/server"
	"partnerdesk/internal/repo"
	"partnerdesk/internal/service"
	"partnerdesk/internal/store/partnerstore"
	"partnerdesk/internal/store/userstore"
	"partnerdesk/internal/transport/http/handler"
	"partnerdesk/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON,
		cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	// One gateway per bounded context over the shared pool.
	userGW, err := userstore.New(db)
	if err != nil {
		log.Fatal("users gateway", zap.Error(err))
	}
	partnerGW, err := partnerstore.New(db)
	if err != nil {
		log.Fatal("partners gateway", zap.Error(err))
	}

	if cfg.DB.AutoMigrate {
		if err := userGW.AutoMigrate(); err != nil {
			log.Fatal("automigrate users context", zap.Error(err))
		}
		if err := partnerGW.AutoMigrate(); err != nil {
			log.Fatal("automigrate partners context", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	userSvc := service.NewUserService(repo.NewUserRepo(userGW))
	settingsSvc := service.NewUserSettingsService(repo.NewUserSettingsRepo(userGW))
	partnerSvc := service.NewPartnerService(repo.NewPartnerRepo(partnerGW))
	contractSvc := service.NewContractService(repo.NewContractRepo(partnerGW))

	r := router.NewAPIEngine(log, router.Handlers{
		Users:        handler.NewUserHandler(userSvc),
		UserSettings: handler.NewUserSettingsHandler(settingsSvc),
		Partners:     handler.NewPartnerHandler(partnerSvc),
		Contracts:    handler.NewContractHandler(contractSvc),
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	// Both gateways share one pool; close it once at the source.
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("api stopped gracefully")
}
