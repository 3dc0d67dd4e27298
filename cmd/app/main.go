package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/chainsaw-registry/backend/internal/api/http"
	"github.com/chainsaw-registry/backend/internal/cache"
	"github.com/chainsaw-registry/backend/internal/config"
	"github.com/chainsaw-registry/backend/internal/db"
	"github.com/chainsaw-registry/backend/internal/queue/asynqserver"
	queueClient "github.com/chainsaw-registry/backend/internal/queue/client"
	"github.com/chainsaw-registry/backend/internal/repository"
	"github.com/chainsaw-registry/backend/internal/server"
	"github.com/chainsaw-registry/backend/internal/service"
	"github.com/chainsaw-registry/backend/internal/worker"
	"github.com/chainsaw-registry/backend/pkg/auth"
	"github.com/chainsaw-registry/backend/pkg/email/smtp"
	"github.com/chainsaw-registry/backend/pkg/hash"
	"github.com/chainsaw-registry/backend/pkg/logger"
	"github.com/chainsaw-registry/backend/pkg/otp"
	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	appLogger := logger.SetupLogger(cfg.Env)
	defer func() {
		_ = appLogger.Sync()
	}()

	logger.Info("starting chainsaw registry api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		logger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			logger.Error("error when closing mysql", zap.Error(err))
		}
	}()
	logger.Info("mysql connection done")

	rdb, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		logger.Error("redis connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Error("error when closing redis", zap.Error(err))
		}
	}()
	logger.Info("redis connection done")

	hasher := hash.NewSHA256Hasher(cfg.Auth.PasswordSalt)

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		logger.Error("smtp sender creation failed", zap.Error(err))
		return
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		logger.Error("auth manager creation err", zap.Error(err))
		return
	}

	otpGenerator := otp.NewGOTPGenerator()

	// Queue client for outbound notifications
	redisOpt := asynqserver.RedisOptions(cfg.Cache)
	notifier := queueClient.New(redisOpt)
	defer func() {
		if err := notifier.Close(); err != nil {
			logger.Error("error when closing queue client", zap.Error(err))
		}
	}()

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL, rdb)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Hasher:       hasher,
		TokenManager: tokenManager,
		OtpGenerator: otpGenerator,
		Notifier:     notifier,
		Repos:        repos,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// Queue server processes the email tasks the request path enqueues
	workers := worker.NewWorkers(worker.Deps{
		EmailProvider: emailSender,
		Config:        cfg,
	})
	asynqSrv, asynqMux := asynqserver.New(cfg.Cache, workers)
	go func() {
		if err := asynqSrv.Run(asynqMux); err != nil {
			logger.Error("error occurred while running queue server", zap.Error(err))
		}
	}()
	logger.Info("queue server started")

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	asynqSrv.Shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	logger.Info("app stopped")
}
