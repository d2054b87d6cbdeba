package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-pro/internal/audit"
	"github.com/BruksfildServices01/agenda-pro/internal/config"
	dbpkg "github.com/BruksfildServices01/agenda-pro/internal/db"
	"github.com/BruksfildServices01/agenda-pro/internal/lock"
	"github.com/BruksfildServices01/agenda-pro/internal/logger"
	"github.com/BruksfildServices01/agenda-pro/internal/notification"
	"github.com/BruksfildServices01/agenda-pro/internal/routes"
	"github.com/BruksfildServices01/agenda-pro/internal/tasks"
)

const shutdownTimeout = 15 * time.Second

func main() {

	cfg := config.Load()
	log := logger.New(cfg)

	db, err := dbpkg.Connect(cfg.DBUrl, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	if err := dbpkg.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	locker, closeLocker := newLocker(ctx, cfg, log)
	defer closeLocker()

	// ------------------------------
	// Filas de tarefas em segundo plano
	// ------------------------------
	auditQueue := tasks.NewQueue(log.With().Str("queue", "audit").Logger(), cfg.TaskQueueSize, 1)
	notifyQueue := tasks.NewQueue(log.With().Str("queue", "notification").Logger(), cfg.TaskQueueSize, 2)

	auditDispatcher := audit.NewDispatcher(
		audit.New(db, audit.NewSanitizer(cfg.LogSensitiveFields, cfg.LogMaxFieldLength)),
		auditQueue,
	)
	notifyDispatcher := notification.NewDispatcher(notification.NewLogSender(log), notifyQueue)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Log:    log,
		Locker: locker,
		Audit:  auditDispatcher,
		Notify: notifyDispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	// drena auditoria e notificações pendentes antes de fechar o banco
	notifyQueue.Close()
	auditQueue.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// newLocker usa Redis quando configurado; sem Redis o lock vale só para este processo.
func newLocker(ctx context.Context, cfg *config.Config, log zerolog.Logger) (lock.Locker, func()) {
	if cfg.RedisURL == "" {
		log.Warn().Msg("REDIS_URL not set, using in-process booking lock")
		return lock.NewLocal(), func() {}
	}

	rl, err := lock.NewRedis(cfg.RedisURL, cfg.BookingLockTTL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid redis url")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rl.Ping(pingCtx); err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}

	return rl, func() {
		if err := rl.Close(); err != nil {
			log.Error().Err(err).Msg("close redis")
		}
	}
}
