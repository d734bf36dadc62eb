package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/controllers"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/api/routes"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/aiimage"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/auth"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/banners"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/cart"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/catalog"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/checkout"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/composite"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/customizer"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/orders"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/sheets"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/internal/users"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/auth/session"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/config"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/db"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/logger"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/metrics"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/migrate"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/redis"
	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/storage/gcs"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)
	renderMetrics := metrics.NewRenderMetrics(registry)

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewRepository(dbClient.DB()),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	bannerService, err := banners.NewService(banners.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create banner service", err)
		os.Exit(1)
	}

	customizerStore, err := customizer.NewStore(redisClient, redisClient, cfg.Customizer.SessionTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create customizer store", err)
		os.Exit(1)
	}
	customizerService, err := customizer.NewService(catalogService, customizerStore, cfg.Customizer)
	if err != nil {
		logg.Error(context.Background(), "failed to create customizer service", err)
		os.Exit(1)
	}

	compositeBuilder, err := composite.Load(cfg.Customizer, renderMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to load composite builder", err)
		os.Exit(1)
	}

	var aiClient *aiimage.Client
	if cfg.AI.BaseURL != "" {
		aiClient, err = aiimage.NewClient(cfg.AI)
		if err != nil {
			logg.Error(context.Background(), "failed to create preview client", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "preview enhancement disabled: no base url configured")
	}

	cartService, err := cart.NewService(redisClient, redisClient, catalogService, cfg.Cart.TTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	orderRepo := orders.NewRepository(dbClient.DB())
	ordersService, err := orders.NewService(orderRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	var (
		orderSheet checkout.OrderSheet
		leadSheet  controllers.LeadSheet
	)
	if cfg.Sheets.SpreadsheetID != "" {
		sheetLogger, err := sheets.New(context.Background(), cfg.Sheets)
		if err != nil {
			logg.Error(context.Background(), "failed to create spreadsheet logger", err)
			os.Exit(1)
		}
		orderSheet = sheetLogger
		leadSheet = sheetLogger
	} else {
		logg.Warn(context.Background(), "order spreadsheet logging disabled: no spreadsheet configured")
	}

	checkoutService, err := checkout.NewService(dbClient.DB(), orderRepo, cartService, orderSheet, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	var gcsClient *gcs.Client
	if cfg.GCS.BucketName != "" {
		gcsClient, err = gcs.NewClient(context.Background(), cfg.GCS, cfg.GCP, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to create object storage client", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "image uploads disabled: no storage bucket configured")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:           cfg,
			Logger:           logg,
			Redis:            redisClient,
			SessionManager:   sessionManager,
			HTTPMetrics:      httpMetrics,
			Registry:         registry,
			AuthService:      authService,
			CatalogService:   catalogService,
			BannerService:    bannerService,
			CustomizerSvc:    customizerService,
			CompositeBuilder: compositeBuilder,
			AIClient:         aiClient,
			CartService:      cartService,
			CheckoutService:  checkoutService,
			OrdersService:    ordersService,
			LeadSheet:        leadSheet,
			GCSClient:        gcsClient,
		}),
	}

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stopCtx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	var closeErr error
	closeErr = multierr.Append(closeErr, server.Shutdown(shutdownCtx))
	closeErr = multierr.Append(closeErr, redisClient.Close())
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if gcsClient != nil {
		closeErr = multierr.Append(closeErr, gcsClient.Close())
	}
	if closeErr != nil {
		logg.Error(ctx, "shutdown finished with errors", closeErr)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}
