package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tahqeeq/outreach/internal/infra/database"
	"github.com/tahqeeq/outreach/internal/infra/http/handlers"
	"github.com/tahqeeq/outreach/internal/infra/http/middleware"
	"github.com/tahqeeq/outreach/internal/infra/integration/signals"
	"github.com/tahqeeq/outreach/internal/infra/mail"
	"github.com/tahqeeq/outreach/internal/infra/queue"
	"github.com/tahqeeq/outreach/internal/infra/storage"
	"github.com/tahqeeq/outreach/internal/usecase"
)

func main() {
	godotenv.Load()

	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	// Storage: a local SQLite file by default, shared Postgres when asked.
	var store *storage.Store
	var err error
	if os.Getenv("STORAGE_DRIVER") == "postgres" {
		store, err = storage.OpenPostgres(os.Getenv("DATABASE_URL"))
	} else {
		store, err = storage.Open(envOr("STORAGE_PATH", "data/outreach.db"))
	}
	if err != nil {
		logger.Fatal("open storage", zap.Error(err))
	}
	defer store.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		logger.Fatal("connect rabbitmq", zap.Error(err))
	}
	defer rabbitMQ.Close()

	// Repositories
	leadRepo := database.NewLeadRepository(store)
	templateRepo := database.NewTemplateRepository(store)
	triggerRepo := database.NewTriggerRepository(store)
	sessionRepo := database.NewSessionRepository(store)
	apiKeyRepo := database.NewAPIKeyRepository(store)
	jobRepo := database.NewJobRepository(store)

	// Adapters
	producer := queue.NewProducer(rabbitMQ.Ch)
	provider := usecase.NewTemplateProvider()
	signalClient := signals.NewMockClient()
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		envOr("MAIL_FROM", "outreach@tahqeeq.app"),
	)

	// Usecases
	authUC := usecase.NewAuthUseCase(sessionRepo, logger)
	batchUC := usecase.NewBatchGenerateUseCase(leadRepo, templateRepo, jobRepo, provider, producer, logger)
	discoverUC := usecase.NewDiscoverUseCase(signalClient, triggerRepo, leadRepo, logger)
	importUC := usecase.NewImportLeadsUseCase(leadRepo, logger)
	exportUC := usecase.NewExportUseCase(leadRepo)
	sendDraftUC := usecase.NewSendDraftUseCase(leadRepo, mailSender, logger)

	// Generation worker shares the process with the API.
	worker := queue.NewWorker(rabbitMQ.Ch, batchUC, jobRepo, logger)
	go func() {
		if err := worker.Start(queue.QueueName); err != nil {
			logger.Fatal("start worker", zap.Error(err))
		}
	}()

	// Handlers
	authHandler := handlers.NewAuthHandler(authUC)
	leadHandler := handlers.NewLeadHandler(leadRepo, sendDraftUC)
	templateHandler := handlers.NewTemplateHandler(templateRepo)
	generateHandler := handlers.NewGenerateHandler(batchUC)
	discoverHandler := handlers.NewDiscoverHandler(discoverUC, triggerRepo)
	importHandler := handlers.NewImportHandler(importUC)
	exportHandler := handlers.NewExportHandler(exportUC)
	statsHandler := handlers.NewStatsHandler(leadRepo, templateRepo)
	settingsHandler := handlers.NewSettingsHandler(apiKeyRepo)
	healthHandler := handlers.NewHealthHandler(store, rabbitMQ.Conn)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/signup", authHandler.Signup)
		r.Post("/logout", authHandler.Logout)
		r.Post("/forgot-password", authHandler.ForgotPassword)
		r.Get("/me", authHandler.Me)
	})

	r.Route("/leads", func(r chi.Router) {
		r.Get("/", leadHandler.List)
		r.Post("/", leadHandler.Create)
		r.Delete("/", leadHandler.Clear)
		r.Post("/import", importHandler.Upload)
		r.Patch("/{id}", leadHandler.Update)
		r.Delete("/{id}", leadHandler.Delete)
		r.Post("/{id}/send", leadHandler.Send)
	})

	r.Route("/templates", func(r chi.Router) {
		r.Get("/", templateHandler.List)
		r.Post("/", templateHandler.Create)
		r.Patch("/{id}", templateHandler.Update)
		r.Delete("/{id}", templateHandler.Delete)
	})

	r.Route("/generate", func(r chi.Router) {
		r.Post("/", generateHandler.Start)
		r.Get("/jobs/{id}", generateHandler.Job)
	})

	r.Route("/discover", func(r chi.Router) {
		r.Get("/", discoverHandler.List)
		r.Post("/", discoverHandler.Search)
		r.Post("/convert", discoverHandler.Convert)
	})

	r.Post("/export/{format}", exportHandler.Download)
	r.Get("/stats/dashboard", statsHandler.Dashboard)
	r.Get("/stats/analytics", statsHandler.Analytics)
	r.Get("/settings/api-keys", settingsHandler.GetAPIKeys)
	r.Put("/settings/api-keys", settingsHandler.PutAPIKeys)
	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := envOr("PORT", "8080")
	logger.Info("outreach API listening", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
