package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/config"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/bootstrap"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/logger"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/planner"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/repository"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/service"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/storage/postgres"
)

const serviceName = "vibe-code-assistant"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.New(cfg.App.LogLevel, cfg.App.LogPath)
	defer func() { _ = lg.Sync() }()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := postgres.DSN(&cfg.Database)
	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: dsn})
	if err != nil {
		lg.Fatal("open db pool", zap.Error(err))
	}
	defer pool.Close()

	if err := bootstrap.ApplySchema(ctx, pool); err != nil {
		lg.Fatal("schema", zap.Error(err))
	}

	sqlDB, err := postgres.NewConnection(ctx, &cfg.Database)
	if err != nil {
		lg.Fatal("open db", zap.Error(err))
	}
	defer sqlDB.Close()

	opts := service.Options{
		Planner:     planner.New(planner.WithDefaultUsername(cfg.Scaffold.DefaultGitHubUsername)),
		ScratchRoot: cfg.Scaffold.ScratchDir,
		Logger:      lg,
	}

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	switch {
	case err != nil:
		lg.Warn("project cache disabled", zap.Error(err))
	case rdb != nil:
		defer rdb.Close()
		opts.Cache = repository.NewProjectCache(rdb, cfg.Redis.TTL)
		lg.Info("project cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	svc := service.NewProjectService(repository.NewProjectRepository(sqlDB), opts)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:       serviceName,
		Version:           cfg.App.Version,
		DB:                pool,
		Projects:          svc,
		Logger:            lg,
		AllowedOrigins:    cfg.Server.CORSAllowedOrigins,
		StaticDir:         cfg.Server.StaticDir,
		DownloadRateLimit: cfg.Server.DownloadRateLimit,
		DownloadBurst:     cfg.Server.DownloadBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		lg.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("shutdown", zap.Error(err))
	}
}
