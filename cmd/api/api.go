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

	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/docs"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/auth"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/processor"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/queue"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/ratelimiter"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/repo"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/service"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/store/mongo"
	"github.com/Mozammal-Hossain-MH/MHS-Food-Paradise-Server/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config            config
	logger            *zap.SugaredLogger
	rateLimiter       ratelimiter.Limiter
	storage           *mongo.Storage
	broker            queue.Broker
	authenticator     *auth.Authenticator
	processor         processor.PaymentProcessor
	userRepo          repo.UserRepository
	menuRepo          repo.MenuRepository
	reviewRepo        repo.ReviewRepository
	cartRepo          repo.CartRepository
	reservationRepo   repo.ReservationRepository
	paymentRepo       repo.PaymentRepository
	settlementService *service.SettlementService
	statsService      *service.StatsService
	importService     *service.MenuImportService
	auditWorker       *worker.SettlementAuditWorker
	importWorker      *worker.MenuImportWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	auth        authConfig
	stripeKey   string
	googleCreds string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

type authConfig struct {
	secret   string
	issuer   string
	audience string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Post("/auth/token", app.createTokenHandler)
		r.Post("/users", app.createUserHandler)

		r.Get("/menu", app.getMenuHandler)
		r.Get("/menu/{id}", app.getMenuItemHandler)
		r.Get("/reviews", app.getReviewsHandler)

		r.Group(func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)

			r.Get("/users/admin/{email}", app.checkAdminHandler)

			r.Post("/reviews", app.upsertReviewHandler)

			r.Post("/carts", app.createCartHandler)
			r.Get("/carts", app.getCartsHandler)
			r.Delete("/carts/{id}", app.deleteCartHandler)

			r.Post("/reservations", app.createReservationHandler)
			r.Get("/reservations", app.getReservationsHandler)
			r.Delete("/reservations/{id}", app.deleteReservationHandler)

			r.Post("/create-payment-intent", app.createPaymentIntentHandler)
			r.Post("/payments", app.createPaymentHandler)
			r.Get("/payments/{email}", app.getPaymentsHandler)

			r.Get("/user-stats/{email}", app.userStatsHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.adminRequiredMiddleware)

				r.Get("/users", app.getUsersHandler)
				r.Patch("/users/admin/{id}", app.promoteUserHandler)
				r.Delete("/users/{id}", app.deleteUserHandler)

				r.Post("/menu", app.createMenuItemHandler)
				r.Patch("/menu/{id}", app.updateMenuItemHandler)
				r.Delete("/menu/{id}", app.deleteMenuItemHandler)
				r.Post("/menu/import", app.importMenuHandler)
				r.Get("/menu/import/{task_id}", app.getImportTaskHandler)

				r.Get("/payments/{id}/audit", app.getPaymentAuditHandler)

				r.Get("/admin-stats", app.adminStatsHandler)
				r.Get("/order-stats", app.orderStatsHandler)
			})
		})

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "MHS Food Paradise"
	docs.SwaggerInfo.Description = "Restaurant ordering API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.auditWorker != nil {
		if err := app.auditWorker.Start(); err != nil {
			return fmt.Errorf("failed to start settlement audit worker: %w", err)
		}
	}
	if app.importWorker != nil {
		if err := app.importWorker.Start(); err != nil {
			return fmt.Errorf("failed to start menu import worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.auditWorker != nil {
			app.auditWorker.Stop()
		}
		if app.importWorker != nil {
			app.importWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
