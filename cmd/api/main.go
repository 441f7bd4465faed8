package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fhuszti/showcase-ms-go/internal/cache"
	"github.com/fhuszti/showcase-ms-go/internal/config"
	"github.com/fhuszti/showcase-ms-go/internal/db"
	"github.com/fhuszti/showcase-ms-go/internal/handler/api"
	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/metrics"
	cMiddleware "github.com/fhuszti/showcase-ms-go/internal/middleware"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/renderer"
	"github.com/fhuszti/showcase-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/showcase-ms-go/internal/storage"
	"github.com/fhuszti/showcase-ms-go/internal/task"
	"github.com/fhuszti/showcase-ms-go/internal/usecase/certification"
	"github.com/fhuszti/showcase-ms-go/internal/usecase/dashboard"
	"github.com/fhuszti/showcase-ms-go/internal/usecase/event"
	"github.com/fhuszti/showcase-ms-go/internal/usecase/gallery"
	"github.com/fhuszti/showcase-ms-go/internal/usecase/product"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	strg := initStorage(ctx, cfg)
	initBuckets(ctx, strg, cfg.Buckets())

	m := metrics.New()
	newCache := initCacheFactory(ctx, cfg)
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
	} else {
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured, uploaded medias will not be optimised")
	}

	productRepo := mariadb.NewProductRepository(database.DB)
	eventRepo := mariadb.NewEventRepository(database.DB)
	certRepo := mariadb.NewCertificationRepository(database.DB)
	mediaRepo := mariadb.NewMediaRepository(database.DB)

	productLister := product.NewProductLister(productRepo)
	productManager := product.NewProductManager(productRepo, uuid.NewUUID)
	eventSvc := event.NewEventService(eventRepo, uuid.NewUUID)
	certSvc := certification.NewCertificationService(certRepo, uuid.NewUUID)
	dashboardSvc := dashboard.NewDashboardGetter(productRepo, eventRepo, certRepo, mediaRepo)
	galleryLister := gallery.NewGalleryLister(mediaRepo, strg)
	uploadLinkSvc := gallery.NewUploadLinkGenerator(mediaRepo, strg, cfg.StagingBucket, uuid.NewUUID)
	finaliserSvc := gallery.NewUploadFinaliser(mediaRepo, strg, dispatcher, cfg.GalleryBucket)
	deleterSvc := gallery.NewMediaDeleter(mediaRepo, strg)

	productsRenderer := renderer.NewListingRenderer(newCache(cache.ProductsTTL), m)
	eventsRenderer := renderer.NewListingRenderer(newCache(cache.EventsTTL), m)
	certsRenderer := renderer.NewListingRenderer(newCache(cache.CertificationsTTL), m)
	galleryRenderer := renderer.NewListingRenderer(newCache(cache.GalleryTTL), m)

	r := initRouter(ctx)

	r.Get("/healthz", api.HealthHandler(database))
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Get("/products", api.ListProductsHandler(productsRenderer, productLister))
	r.Get("/products/featured", api.ListFeaturedProductsHandler(productsRenderer, productLister))
	r.Get("/brands/{brandId}/products", api.ListBrandProductsHandler(productsRenderer, productLister))
	r.Get("/events", api.ListEventsHandler(eventsRenderer, eventSvc))
	r.Get("/certifications", api.ListCertificationsHandler(certsRenderer, certSvc))
	r.Post("/certifications", api.SubmitCertificationHandler(certSvc))
	r.Get("/gallery", api.ListGalleryHandler(galleryRenderer, galleryLister))

	r.Route("/admin", func(r chi.Router) {
		r.Use(cMiddleware.WithAdminAuth(cfg.JWTPublicKey))

		r.Get("/dashboard", api.DashboardHandler(dashboardSvc))

		r.Post("/products", api.CreateProductHandler(productManager))
		r.With(cMiddleware.WithID()).Put("/products/{id}", api.UpdateProductHandler(productManager))
		r.With(cMiddleware.WithID()).Delete("/products/{id}", api.DeleteProductHandler(productManager))

		r.Post("/events", api.CreateEventHandler(eventSvc))
		r.With(cMiddleware.WithID()).Delete("/events/{id}", api.DeleteEventHandler(eventSvc))

		r.With(cMiddleware.WithID()).Patch("/certifications/{id}", api.ReviewCertificationHandler(certSvc))

		r.Post("/gallery/upload_link", api.GenerateUploadLinkHandler(uploadLinkSvc))
		r.With(cMiddleware.WithID()).Post("/gallery/{id}/finalise", api.FinaliseUploadHandler(finaliserSvc))
		r.With(cMiddleware.WithID()).Delete("/gallery/{id}", api.DeleteMediaHandler(deleterSvc))
	})

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(db.Config{
		DSN:             cfg.MariaDBDSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

// initCacheFactory returns a constructor for listing caches. Every listing
// gets its own cache instance with its own fixed TTL.
func initCacheFactory(ctx context.Context, cfg *config.Settings) func(ttl time.Duration) port.ListingCache {
	switch cfg.CacheBackend {
	case config.CacheBackendNone:
		logger.Warn(ctx, "⚠️  Listing caches disabled")
		return func(ttl time.Duration) port.ListingCache { return cache.NewNoop(ttl) }
	case config.CacheBackendRedis:
		client := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Errorf(ctx, "❌  Failed to reach Redis at %s: %v", cfg.RedisAddr, err)
			os.Exit(1)
		}
		logger.Info(ctx, "✅  Redis listing cache enabled")
		return func(ttl time.Duration) port.ListingCache { return cache.NewRedis(client, ttl) }
	}

	logger.Info(ctx, "✅  In-process listing cache enabled")
	return func(ttl time.Duration) port.ListingCache { return cache.NewMemory(ttl) }
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewMinioStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBuckets(ctx context.Context, strg port.Storage, buckets []string) {
	for _, b := range buckets {
		if err := strg.InitBucket(b); err != nil {
			logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", b, err)
			os.Exit(1)
		}
	}
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
