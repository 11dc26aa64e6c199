package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estatehub/config"
	"estatehub/cron"
	"estatehub/database"
	"estatehub/database/repository"
	"estatehub/handlers"
	"estatehub/routes"
	"estatehub/services/contact"
	"estatehub/services/offering"
	"estatehub/services/property"
	"estatehub/services/storage"
	"estatehub/services/tasks"
	"estatehub/services/user"
	"estatehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.RegisterValidators()

	database.InitDB()
	repos := repository.NewMongoSet(database.DB())

	// Token revocation is optional; without Redis logout only discards the
	// token client-side.
	var revoked utils.TokenStore
	healthChecks := []utils.HealthCheck{{Name: "mongo", Ping: database.Ping}}
	if store := utils.InitAuthCache(cfg); store != nil {
		revoked = store
		healthChecks = append(healthChecks, utils.HealthCheck{
			Name:     "redis",
			Optional: true,
			Ping:     func(ctx context.Context) error { return store.Client().Ping(ctx).Err() },
		})
	}

	// View counters.
	propertySink := tasks.ViewSink(repos.Properties.IncrementViews)
	serviceSink := tasks.ViewSink(repos.Services.IncrementViews)
	var (
		queueClient *asynq.Client
		viewWorker  *cron.ViewWorker
	)
	if cfg.ViewQueueEnabled {
		opt := cron.RedisOpt(cfg)
		queueClient = asynq.NewClient(opt)
		propertySink = tasks.QueueSink(queueClient, "property")
		serviceSink = tasks.QueueSink(queueClient, "service")

		viewWorker = cron.NewViewWorker(opt, map[string]cron.Counter{
			"property": repos.Properties,
			"service":  repos.Services,
		})
		if err := viewWorker.Start(); err != nil {
			logger.Fatal("main: failed to start view worker", zap.Error(err))
		}
	}
	propertyViews := tasks.NewViewRecorder("property", propertySink, cfg.ViewBufferSize)
	serviceViews := tasks.NewViewRecorder("service", serviceSink, cfg.ViewBufferSize)

	// services.
	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiresIn)
	userService := user.NewUserService(repos.Users, tokens, revoked)
	propertyService := property.NewPropertyService(repos.Properties, storage.NewImageStore(cfg), propertyViews)
	offeringService := offering.NewOfferingService(repos.Services, serviceViews)
	contactService := contact.NewContactService(repos.Contacts, repos.Properties, repos.Services)

	health := utils.NewHealthMonitor(healthChecks...)
	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	health.Start(healthCtx, 60*time.Second)

	handlerBundle := handlers.NewHandlerBundle(userService, propertyService, offeringService, contactService, health)

	router := gin.New()
	routes.RegisterRoutes(router, handlerBundle, cfg)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s (%s)...", srv.Addr, cfg.Env)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	for _, r := range []*tasks.ViewRecorder{propertyViews, serviceViews} {
		if err := r.Close(ctx); err != nil {
			logger.Warn("main: view recorder did not drain", zap.Error(err))
		}
	}
	if viewWorker != nil {
		viewWorker.Shutdown()
	}
	if queueClient != nil {
		_ = queueClient.Close()
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
