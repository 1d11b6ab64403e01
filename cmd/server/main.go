package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"portfolio-api/internal/auth"
	"portfolio-api/internal/config"
	apphttp "portfolio-api/internal/http"
	"portfolio-api/internal/repository/sqlite"
	"portfolio-api/internal/service"
	"portfolio-api/internal/storage"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}
	if strings.TrimSpace(cfg.Auth.AdminUsername) == "" {
		logger.Fatalf("admin username is required")
	}
	if strings.TrimSpace(cfg.Auth.AdminPassword) == "" && strings.TrimSpace(cfg.Auth.AdminPasswordHash) == "" {
		logger.Fatalf("admin password (or password hash) is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	projectRepo := sqlite.NewProjectRepository(db)
	contactRepo := sqlite.NewContactRepository(db)

	if err := projectRepo.Init(ctx); err != nil {
		logger.Fatalf("init project repository: %v", err)
	}
	if err := contactRepo.Init(ctx); err != nil {
		logger.Fatalf("init contact repository: %v", err)
	}

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	credentials := auth.AdminCredentials{
		Username:     cfg.Auth.AdminUsername,
		Password:     cfg.Auth.AdminPassword,
		PasswordHash: cfg.Auth.AdminPasswordHash,
	}

	authService := service.NewAuthService(credentials, tokens)
	projectService := service.NewProjectService(projectRepo)
	contactService := service.NewContactService(contactRepo, logger)

	storageSvc := buildStorage(ctx, cfg, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	handler := apphttp.NewHandler(
		authService,
		tokens,
		projectService,
		contactService,
		storageSvc,
		apphttp.Options{
			Environment:     cfg.Environment,
			Bucket:          cfg.Storage.Bucket,
			KeyPrefix:       cfg.Storage.KeyPrefix,
			PublicBaseURL:   cfg.Storage.PublicBaseURL,
			CORSOrigins:     cfg.CORS.Origins,
			RateLimitCount:  cfg.RateLimit.Requests,
			RateLimitWindow: time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute,
		},
		logger,
	)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

// buildStorage wires the S3 client when a bucket is configured. Without one
// the upload endpoints stay registered but answer with a failure envelope.
func buildStorage(ctx context.Context, cfg config.Config, logger *logrus.Logger) storage.Service {
	if cfg.Storage.Bucket == "" {
		logger.Info("no storage bucket configured, image uploads disabled")
		return nil
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Storage.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		logger.Fatalf("load aws config: %v", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Infof("using s3 bucket %s (region %s)", cfg.Storage.Bucket, cfg.Storage.Region)
	return storage.NewS3Service(client)
}
