package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/auth"
	config "task-tracker.com/task-tracker/internal/configs"
	httpapi "task-tracker.com/task-tracker/internal/http"
	"task-tracker.com/task-tracker/internal/queue"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task API and the activity worker pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadServer()

		database := config.NewDatabaseClient(cfg.DatabaseDSN, cfg.Debug)
		taskRepo := repository.NewTaskRepository(database)
		activityRepo := repository.NewActivityRepository(database)

		var quota queue.Quota
		if cfg.RedisEnabled {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			quota = queue.NewRedisQuota(redisClient, "task_create", cfg.CreateRateLimit, cfg.CreateRateWindow)
			log.WithField("addr", cfg.RedisAddr).Info("using redis creation quota")
		} else {
			quota = queue.NewMemoryQuota(cfg.CreateRateLimit, cfg.CreateRateWindow)
			log.Info("using in-memory creation quota")
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		poolService := services.NewPoolService(activityRepo, cfg.ActivityWorkers, cfg.ActivityQueueSize)
		taskService := services.NewTaskService(quota, taskRepo, activityRepo, poolService)

		e := echo.New()
		e.HideBanner = true
		e.Use(echomw.Recover())
		e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
			LogMethod: true,
			LogURI:    true,
			LogStatus: true,
			LogError:  true,
			LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
				entry := log.WithFields(log.Fields{"method": v.Method, "uri": v.URI, "status": v.Status})
				if v.Error != nil {
					entry = entry.WithError(v.Error)
				}
				entry.Debug("request")
				return nil
			},
		}))
		httpapi.Register(e, httpapi.NewHandler(taskService), auth.NewVerifier(cfg.JWTSecret), cfg.RateLimit)

		go func() {
			log.Infof("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("server stopped: %v", err)
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		poolService.Shutdown(shutdownCtx)

		log.Info("HTTP server and activity pool shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
