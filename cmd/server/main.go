package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/subrahmanyasv/InterviewBit-Backend/internal/config"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/dashboard"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/handlers"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/jobs"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/llm"
	_ "github.com/subrahmanyasv/InterviewBit-Backend/internal/llm/gemini"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/metrics"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/prompts"
	mongorepo "github.com/subrahmanyasv/InterviewBit-Backend/internal/repositories/mongo"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/routers"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/services"
	"github.com/subrahmanyasv/InterviewBit-Backend/internal/utils"
)

func registerRoutes(router *chi.Mux, authHandler *handlers.AuthHandler, interviewHandler *handlers.InterviewHandler, candidateHandler *handlers.CandidateHandler, reportHandler *handlers.ReportHandler, sessionHandler *handlers.SessionHandler, healthHandler *handlers.HealthHandler, dashboardSvc *dashboard.Service) {
	routers.HealthRoutes(router, healthHandler)
	routers.AuthRoutes(router, authHandler)
	routers.InterviewRoutes(router, interviewHandler, candidateHandler, reportHandler)
	routers.SessionRoutes(router, sessionHandler)
	routers.DashboardRoutes(router, dashboardSvc)
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("port", cfg.Port),
		zap.String("ai_provider", cfg.AIProvider))

	ctx := context.Background()
	mongoClient, err := mongorepo.NewClient(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	db := mongoClient.DB(cfg.MongoDBName)

	interviewerRepo := mongorepo.NewInterviewerRepo(db)
	interviewRepo := mongorepo.NewInterviewRepo(db)
	candidateRepo := mongorepo.NewCandidateRepo(db)
	transcriptRepo := mongorepo.NewTranscriptRepo(db)

	// prompt manager
	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	// AI provider based on configuration; the app degrades to manual question
	// entry and unscored answers when it is absent
	var aiProvider llm.Provider
	if cfg.AIProvider != "" {
		aiProvider, err = llm.NewProvider(cfg.AIProvider)
		if err != nil {
			logger.Warn("AI provider unavailable, question generation disabled", zap.Error(err))
		}
	}

	questionService := services.NewQuestionService(aiProvider, promptManager, logger)
	reader := services.NewInterviewReader(interviewRepo, candidateRepo, transcriptRepo)

	verifier := dashboard.TokenVerifierFunc(func(token string) (string, error) {
		claims, err := utils.ValidateAuthToken(token)
		if err != nil {
			return "", err
		}
		return claims.Subject, nil
	})
	dashboardSvc := dashboard.NewService(reader, verifier, logger, cfg.PingInterval)
	dashboardSvc.Start()

	authHandler := handlers.NewAuthHandler(interviewerRepo, logger)
	interviewHandler := handlers.NewInterviewHandler(interviewRepo, candidateRepo, transcriptRepo, questionService, logger)
	candidateHandler := handlers.NewCandidateHandler(interviewRepo, candidateRepo, reader, cfg.AppBaseURL, logger)
	reportHandler := handlers.NewReportHandler(interviewRepo, candidateRepo, transcriptRepo, logger)
	sessionHandler := handlers.NewSessionHandler(interviewRepo, candidateRepo, transcriptRepo, questionService, logger)
	healthHandler := handlers.NewHealthHandler(mongoClient, questionService, promptManager)

	exporter := jobs.NewReportExporter(interviewRepo, candidateRepo, transcriptRepo, jobs.ExporterConfig{
		Enabled:   cfg.ReportExportEnabled,
		Schedule:  cfg.ReportExportSchedule,
		OutputDir: cfg.ReportExportDir,
	}, logger)
	if err := exporter.Start(); err != nil {
		logger.Error("Failed to start report exporter", zap.Error(err))
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Logger, chimiddleware.Recoverer, chimiddleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware())

	registerRoutes(router, authHandler, interviewHandler, candidateHandler, reportHandler, sessionHandler, healthHandler, dashboardSvc)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("InterviewBit backend starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("InterviewBit backend shutting down...")

	exporter.Stop()
	dashboardSvc.Shutdown()

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Error("MongoDB disconnect failed", zap.Error(err))
	}

	logger.Info("InterviewBit backend exited")
}
