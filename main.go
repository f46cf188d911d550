// @title                       Y-Ultimate API
// @version                     1.0
// @description                 Children, sites, sessions, attendance, home visits, LSAS assessments, CSV import and reports.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
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

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yultimate/config"
	"yultimate/jobs"
	"yultimate/routes"
	"yultimate/seeds"
	"yultimate/services"
	"yultimate/services/logger"
	"yultimate/services/notification"
)

var (
	cfg *config.Config
	zl  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "yultimate",
	Short:         "Y-Ultimate programme backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		zl, err = logger.New(cfg.Env, cfg.LogLevel)
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDB(cfg, zl)
		if err != nil {
			return err
		}
		defer config.CloseDB(db)

		if err := config.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		zl.Info("migrations applied")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo users, sites, children and sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.ConnectDB(cfg, zl)
		if err != nil {
			return err
		}
		defer config.CloseDB(db)

		if err := config.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		rdb, err := config.ConnectRedis(cmd.Context(), cfg, zl)
		if err != nil {
			return err
		}
		var cache services.Cache = services.NopCache{}
		if rdb != nil {
			defer rdb.Close()
			cache = services.NewRedisCache(rdb, cfg.CacheTTL)
		}
		return seeds.Run(cmd.Context(), db, cache, logger.Wrap(zl))
	},
}

func serve(ctx context.Context) error {
	defer zl.Sync()
	log := logger.Wrap(zl)

	db, err := config.ConnectDB(cfg, zl)
	if err != nil {
		return err
	}
	defer config.CloseDB(db)
	if err := config.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	rdb, err := config.ConnectRedis(ctx, cfg, zl)
	if err != nil {
		return err
	}
	var cache services.Cache = services.NopCache{}
	if rdb != nil {
		defer rdb.Close()
		cache = services.NewRedisCache(rdb, cfg.CacheTTL)
	}

	cld, err := config.ConnectCloudinary(cfg, zl)
	if err != nil {
		return err
	}
	var archiver services.Archiver = services.NopArchiver{}
	if cld != nil {
		archiver = services.NewCloudinaryArchiver(cld)
	}

	m := melody.New()
	notifier := notification.NewMelodyService(m)

	router := config.NewRouter(cfg, zl)
	routes.SetupRoutes(router, routes.Dependencies{
		DB:             db,
		Redis:          rdb,
		Cache:          cache,
		Tokens:         services.NewTokenService(cfg.JWTSecret, cfg.JWTTTL),
		Melody:         m,
		Notifier:       notifier,
		Archiver:       archiver,
		Logger:         log,
		GoogleClientID: cfg.GoogleClientID,
		LoginRateLimit: cfg.LoginRateLimit,
		ImportMaxBytes: cfg.ImportMaxBytes,
		ImportWorkers:  cfg.ImportWorkers,
	})

	scheduler := cron.New(cron.WithLocation(time.UTC))
	digest := services.NewDigestService(services.DigestServiceOptions{DB: db, Notifier: notifier, Logger: log})
	if err := jobs.InitCronJobs(scheduler, cfg.DigestSchedule, digest, log); err != nil {
		return fmt.Errorf("cron: %w", err)
	}
	defer func() { <-scheduler.Stop().Done() }()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-sigCtx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = m.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	zl.Info("server stopped")
	return nil
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
