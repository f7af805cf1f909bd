package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/workvine/crm-backend/internal/config"
	"github.com/workvine/crm-backend/internal/infra/database"
	"github.com/workvine/crm-backend/internal/infra/http/handlers"
	"github.com/workvine/crm-backend/internal/infra/http/middleware"
	"github.com/workvine/crm-backend/internal/infra/mail"
	"github.com/workvine/crm-backend/internal/infra/queue"
	"github.com/workvine/crm-backend/internal/logging"
	"github.com/workvine/crm-backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Logger.WithError(err).Fatal("invalid configuration")
	}
	logging.Init(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logging.Logger.WithError(err).Fatal("failed to connect to Postgres")
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		logging.Logger.WithError(err).Fatal("failed to connect to RabbitMQ")
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Repositories
	clientRepo := database.NewClientRepository(db)
	contactRepo := database.NewContactRepository(db)
	leadRepo := database.NewLeadRepository(db)
	userRepo := database.NewUserRepository(db)
	queryRepo := database.NewQueryRepository(db)
	statsRepo := database.NewStatsRepository(db)

	// Messaging and mail
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)

	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// Use cases
	createClientUC := usecase.NewCreateClientUseCase(clientRepo, contactRepo, producer)
	updateClientUC := usecase.NewUpdateClientUseCase(clientRepo)
	convertLeadUC := usecase.NewConvertLeadUseCase(clientRepo, leadRepo, producer)
	leadUC := usecase.NewLeadUseCase(leadRepo, contactRepo)
	queryUC := usecase.NewCreateQueryUseCase(queryRepo)
	dashboardUC := usecase.NewDashboardUseCase(statsRepo, leadRepo, cfg.IndianTimezones)

	// Handlers
	clientHandler := handlers.NewClientHandler(createClientUC, updateClientUC, convertLeadUC, clientRepo)
	leadHandler := handlers.NewLeadHandler(leadUC)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	queryHandler := handlers.NewQueryHandler(queryUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	auth := middleware.NewAuth(cfg.JWTSecret, userRepo)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/query", queryHandler.Create)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.Authenticate)

		pr.Route("/client", func(cr chi.Router) {
			cr.Post("/", clientHandler.Create)
			cr.Get("/", clientHandler.List)
			cr.Post("/fromLead/{leadId}", clientHandler.ConvertFromLead)
			cr.Get("/{id}", clientHandler.Get)
			cr.Put("/{id}", clientHandler.Update)
		})

		pr.Route("/lead", func(lr chi.Router) {
			lr.Post("/create", leadHandler.Create)
			lr.Get("/", leadHandler.List)
			lr.Get("/lead-details/{id}", leadHandler.Get)
			lr.Put("/update/{id}", leadHandler.Update)
			lr.Delete("/delete/{id}", leadHandler.Delete)
			lr.Put("/update-stage/{id}", leadHandler.UpdateStage)
		})

		pr.Get("/dashboard/user", dashboardHandler.User)
		pr.With(auth.RequireAdmin).Get("/dashboard/admin", dashboardHandler.Admin)
	})

	logging.Logger.Infof("CRM API listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		logging.Logger.WithError(err).Fatal("server stopped")
	}
}
