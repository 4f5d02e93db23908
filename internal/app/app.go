package app

import (
	"context"
	"exrates/internal/adapters"
	"exrates/internal/adapters/cache"
	"exrates/internal/adapters/httpclient"
	"exrates/internal/adapters/postgres"
	"exrates/internal/api"
	"exrates/internal/config"
	"exrates/internal/metrics"
	"exrates/internal/platform/db"
	httpserver "exrates/internal/platform/http"
	"exrates/internal/provider"
	"exrates/internal/rate"
	"exrates/internal/rate/handler"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run(configFile string) error {
	appCfg, err := config.Init(configFile)
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional postgres archive; providers keep working from memory without it
	var archive adapters.RateArchive
	if appCfg.Archive.Enabled {
		startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		if err = db.Migrate(startupCtx, appCfg.DbServer.GetConnectionStr()); err != nil {
			logrus.WithError(err).Error("Error migrating db")
			return err
		}
		pool, poolErr := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
		if poolErr != nil {
			logrus.WithError(poolErr).Error("Error connecting to db")
			return poolErr
		}
		defer pool.Close()
		archive = postgres.NewRateArchive(pool)
		logrus.Info("✅ Postgres archive enabled")
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(registry)

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 30 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// Source client with payload cache
	payloadCache, err := cache.NewPayloadCache(
		appCfg.Sources.PayloadCacheMaxBytes,
		time.Duration(appCfg.Sources.PayloadCacheTTLSeconds)*time.Second,
	)
	if err != nil {
		logrus.WithError(err).Error("Failed to create payload cache")
		return err
	}
	defer payloadCache.Close()
	sourceClient := httpclient.NewSourceClient(baseHTTPClient, payloadCache)

	// Providers
	urls := provider.SourceURLs{
		ECBCurrent:    appCfg.Sources.ECBCurrentURL,
		ECBHistoric90: appCfg.Sources.ECBHistoric90URL,
		ECBHistoric:   appCfg.Sources.ECBHistoricURL,
		IMF:           appCfg.Sources.IMFURL,
	}
	providers := provider.NewRegistry(provider.NewFactory(urls, sourceClient, archive, appMetrics))

	// Services
	rateService := rate.NewService(providers, appMetrics)
	rateValidator := rate.NewValidator()

	if appCfg.Scheduler.Enabled {
		scheduler := rate.NewScheduler(providers, appCfg.Scheduler.Providers, time.Duration(appCfg.Scheduler.JobDurationSec)*time.Second)
		// Ensure scheduler stops before DB pool closes
		defer func() {
			if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
			}
		}()
		// Start scheduler tied to root context
		if startErr := scheduler.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start scheduler")
			return startErr
		}
		logrus.Info("✅ Scheduler activation successful")
	}

	// Handlers and router
	rateHandler := handler.NewRateHandler(rateValidator, rateService)
	router := api.NewRouter(rateHandler, registry)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router, nil); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
