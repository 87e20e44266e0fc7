package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"interviewerbot/internal/cache"
	"interviewerbot/internal/config"
	"interviewerbot/internal/repository"
	"interviewerbot/internal/service"
	"interviewerbot/internal/transport/rest"
	"interviewerbot/internal/transport/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	ctx := context.Background()
	cfg := config.Load()

	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Models:   %s", strings.Join(aiConfig.Models, ", "))
	if aiConfig.IsEnabled() {
		log.Printf("  API Keys: %d configured", aiConfig.Keys.Len())
	} else {
		log.Println("  API Keys: NOT SET (fallback question generator only)")
	}
	if cfg.MLServiceURL == "" {
		log.Println("ML_SERVICE_URL not set, using local answer scorer")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisURI, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	sessionRepo := repository.NewSessionRepo(db)
	questionRepo := repository.NewQuestionRepo(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb)
	bankStatsCache := cache.NewBankStatsCache(rdb)

	// Initialize services
	tokenSvc := service.NewTokenService(cfg.JWTSecret)
	questionSvc := service.NewQuestionService(questionRepo, bankStatsCache)
	evaluator := service.NewEvaluatorService(cfg.MLServiceURL)
	keywords := service.NewKeywordExtractor()
	workers := service.NewSessionWorkers()
	interviewSvc := service.NewInterviewService(cfg, sessionRepo, sessionCache, questionSvc, evaluator, keywords, workers)
	resumeSvc := service.NewResumeService(aiConfig, service.PlainTextExtractor{})

	// Pipeline writes back through the interview service (per-session ordering)
	resumeSvc.SetReadyHandler(interviewSvc)

	// Create router with container
	container := &rest.Container{
		InterviewService: interviewSvc,
		QuestionService:  questionSvc,
		ResumeService:    resumeSvc,
		TokenService:     tokenSvc,
		WSHub:            wsHub,
		UploadDir:        cfg.UploadDir,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/interviews/start")
		log.Println("  GET  /v1/interviews/{id}")
		log.Println("  POST /v1/interviews/{id}/end")
		log.Println("  GET  /v1/interviews/{id}/report")
		log.Println("  POST /v1/resumes/upload")
		log.Println("  GET  /v1/questions/topics")
		log.Println("  WS   /v1/ws/interviews/{id}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
