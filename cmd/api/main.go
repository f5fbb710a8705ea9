package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voiceagent-bridge/internal/audit"
	"voiceagent-bridge/internal/auth"
	"voiceagent-bridge/internal/config"
	"voiceagent-bridge/internal/httpapi"
	"voiceagent-bridge/internal/normalize"
	"voiceagent-bridge/internal/upstream"
	"voiceagent-bridge/pkg/logger"
	"voiceagent-bridge/pkg/utils"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	authManager, err := auth.NewManager(cfg.Auth)
	if err != nil {
		log.Error("auth init failed", "err", err)
		os.Exit(1)
	}

	db, err := utils.OpenPostgres(rootCtx, "pgx", cfg.PostgresDSN(), utils.PostgresPoolConfig{})
	if err != nil {
		log.Error("postgres init failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	auditRepo := audit.NewPostgresRepo(db)
	if err := auditRepo.Migrate(rootCtx); err != nil {
		log.Error("audit migrate failed", "err", err)
		os.Exit(1)
	}

	rdb, err := utils.OpenRedis(rootCtx, cfg.Redis)
	if err != nil {
		log.Error("redis init failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	atoms, err := upstream.New(cfg.Upstream)
	if err != nil {
		log.Error("upstream init failed", "err", err)
		os.Exit(1)
	}

	h := httpapi.Handlers{
		Normalizer: normalize.New(normalize.Options{
			KnownLanguages: cfg.Normalize.KnownLanguages,
			BatchWorkers:   cfg.Normalize.BatchWorkers,
		}),
		Upstream: atoms,
		Audit:    audit.NewService(auditRepo),
	}
	batchCap := httpapi.BatchCap(httpapi.RedisLimiter{
		Client: rdb,
		Limit:  cfg.Normalize.BatchCap,
		TTL:    2 * time.Minute,
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))

	registerPublicRoutes(r)
	registerProtectedRoutes(r, auth.RequireAccessToken(authManager), h, batchCap)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}
