package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bryanwahyu/spinalscan/internal/application"
	appauth "github.com/bryanwahyu/spinalscan/internal/application/auth"
	appchat "github.com/bryanwahyu/spinalscan/internal/application/chat"
	apppredictions "github.com/bryanwahyu/spinalscan/internal/application/predictions"
	"github.com/bryanwahyu/spinalscan/internal/config"
	"github.com/bryanwahyu/spinalscan/internal/domain/chat"
	"github.com/bryanwahyu/spinalscan/internal/infra/ai"
	openaiClient "github.com/bryanwahyu/spinalscan/internal/infra/ai/openai"
	"github.com/bryanwahyu/spinalscan/internal/infra/classifier"
	"github.com/bryanwahyu/spinalscan/internal/infra/db"
	"github.com/bryanwahyu/spinalscan/internal/infra/httpserver"
	"github.com/bryanwahyu/spinalscan/internal/infra/storage"
	"github.com/bryanwahyu/spinalscan/internal/infra/token"
	"github.com/bryanwahyu/spinalscan/internal/middleware"
)

func main() {
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	repos, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	defer repos.Close()

	scans, err := storage.New(ctx,
		cfg.Minio.Endpoint,
		cfg.Minio.Region,
		cfg.Minio.BucketName,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		log.Fatalf("minio init error: %v", err)
	}

	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.TokenTTL())

	var answerer chat.Answerer = ai.StaticAnswerer{}
	if cfg.AI.OpenAIAPIKey != "" {
		answerer = openaiClient.NewClient(cfg.AI.OpenAIAPIKey, cfg.AI.Model)
	}

	clock := application.SystemClock{}
	authSvc := &appauth.Service{Users: repos.Users, Tokens: tokens, Clock: clock}
	predSvc := &apppredictions.Service{
		Repo:       repos.Predictions,
		Classifier: classifier.New(),
		Scans:      scans,
		Clock:      clock,
	}
	chatSvc := &appchat.Service{Repo: repos.Chats, Answerer: answerer, Clock: clock}

	handler := httpserver.NewRouter(authSvc, predSvc, chatSvc, tokens, httpserver.Options{
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		RateLimitCapacity: cfg.RateLimit.Capacity,
		RateLimitRefill:   cfg.RateLimit.RefillRate,
		StaticDir:         cfg.Server.StaticDir,
		HealthCheckers: map[string]middleware.HealthChecker{
			"database": &middleware.DatabaseHealthChecker{DB: repos.DB()},
			"storage":  middleware.CheckerFunc(scans.Ping),
		},
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
