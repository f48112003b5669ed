package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"rhdesk/internal/domain/auth"
	"rhdesk/internal/domain/employee"
	"rhdesk/internal/domain/leave"
	"rhdesk/internal/domain/payroll"
	"rhdesk/internal/domain/reports"
	"rhdesk/internal/platform/config"
	"rhdesk/internal/platform/db"
	"rhdesk/internal/platform/metrics"
	"rhdesk/internal/transport/http/api"
	authhandler "rhdesk/internal/transport/http/handlers/auth"
	employeehandler "rhdesk/internal/transport/http/handlers/employee"
	leavehandler "rhdesk/internal/transport/http/handlers/leave"
	payrollhandler "rhdesk/internal/transport/http/handlers/payroll"
	reportshandler "rhdesk/internal/transport/http/handlers/reports"
	"rhdesk/internal/transport/http/middleware"
)

func Run() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("config invalid", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			log.Error("migrations failed", "err", err)
			os.Exit(1)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Error("seed failed", "err", err)
			os.Exit(1)
		}
	}

	collector := metrics.New()

	authService := auth.NewService(pool, cfg.JWTSecret, cfg.TokenTTL)
	employeeService := employee.NewService(employee.NewStore(pool))
	leaveService := leave.NewService(leave.NewStore(pool))
	payrollService := payroll.NewService(payroll.NewStore(pool))
	reportsService := reports.NewService(reports.NewStore(pool))

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log))
	router.Use(middleware.Metrics(collector))
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSAllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Total-Count", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(authService).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(cfg.JWTSecret))

			employeehandler.NewHandler(employeeService, cfg.DefaultLeaveDays).RegisterRoutes(r)
			leavehandler.NewHandler(leaveService).RegisterRoutes(r)
			payrollhandler.NewHandler(payrollService, cfg.PayslipDir).RegisterRoutes(r)
			reportshandler.NewHandler(reportsService).RegisterRoutes(r)

			r.With(middleware.RequireHR).Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
				api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
			})
		})
	})

	log.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
}
