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

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/yusuf-wknd/devanshi-culture-shop/docs"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/cache"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/content"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/queue"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/ratelimiter"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/render"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/service"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/store/mongo"
	"github.com/yusuf-wknd/devanshi-culture-shop/internal/worker"
)

type application struct {
	config              config
	logger              *zap.SugaredLogger
	rateLimiter         ratelimiter.Limiter
	storage             *mongo.Storage
	pageCache           *cache.PageCache
	broker              queue.Broker
	content             *content.Client
	renderer            *render.Renderer
	pageService         *service.PageService
	searchService       *service.SearchService
	revalidationService *service.RevalidationService
	warmWorker          *worker.PageWarmWorker
}

type config struct {
	addr          string
	env           string
	apiURL        string
	baseURL       string
	webhookSecret string
	warmQuiet     time.Duration
	rateLimiter   ratelimiter.Config
	mongo         mongoConfig
	rabbitMQ      rabbitMQConfig
	redis         redisConfig
	sanity        sanityConfig
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

type redisConfig struct {
	Addr     string
	Password string
	DB       int
	PageTTL  time.Duration
}

type sanityConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	Timeout    time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(app.rateLimiterMiddleware)

		r.Get("/health", app.healthCheckHandler)

		r.Get("/search", app.searchProductsHandler)

		r.Get("/revalidate", app.revalidateStatusHandler)
		r.Post("/revalidate", app.revalidateWebhookHandler)
		r.Get("/revalidations", app.listRevalidationsHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	r.Handle("/static/*", render.StaticHandler())
	r.Get("/sitemap.xml", app.sitemapHandler)
	r.Get("/robots.txt", app.robotsHandler)

	r.Get("/", app.rootRedirectHandler)
	r.Get("/{lang}", app.pageHandler)
	r.Get("/{lang}/*", app.pageHandler)

	r.NotFound(app.localeFallbackHandler)

	return r
}

func (app *application) rateLimiterMiddleware(next http.Handler) http.Handler {
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

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Devanshi Culture Shop"
	docs.SwaggerInfo.Description = "API for the Devanshi Culture Shop storefront"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.warmWorker != nil {
		if err := app.warmWorker.Start(); err != nil {
			return fmt.Errorf("failed to start page warm worker: %w", err)
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

		if app.warmWorker != nil {
			app.warmWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.pageCache != nil {
			if err := app.pageCache.Close(); err != nil {
				app.logger.Errorw("error closing Redis", "error", err)
			} else {
				app.logger.Info("Redis connection closed gracefully")
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
