package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/storefront/gateway"
	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/discovery"
	"github.com/example/storefront/pkg/notify"
	"github.com/example/storefront/pkg/repository"
	"github.com/example/storefront/pkg/service"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := buildLogger(&cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting storefront API",
		zap.String("name", cfg.Server.Name),
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port))

	ctx := context.Background()

	// Storage
	var (
		users    service.UserStore
		products service.ProductStore
		orders   service.OrderStore
	)
	if cfg.MySQL.Host != "" {
		db, err := repository.Open(&cfg.MySQL)
		if err != nil {
			logger.Fatal("Failed to connect to MySQL", zap.Error(err))
		}
		if err := repository.SeedCatalog(db, logger); err != nil {
			logger.Fatal("Failed to seed catalog", zap.Error(err))
		}
		users = repository.NewUserRepository(db)
		products = repository.NewProductRepository(db)
		orders = repository.NewOrderRepository(db)
	} else {
		logger.Warn("No MySQL host configured, using in-memory store")
		mem := repository.NewMemoryStore()
		repository.SeedMemory(mem)
		users = mem.Users()
		products = mem.Products()
		orders = mem.Orders()
	}

	// Services
	tokens := service.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	authSvc := service.NewAuthService(users, tokens, logger)
	orderSvc := service.NewOrderService(orders, products, logger)

	// Redis product cache
	var cache service.ProductCache
	redisRepo := repository.NewRedisRepository(&cfg.Redis)
	if err := redisRepo.Ping(ctx); err != nil {
		logger.Warn("Redis connection failed, continuing without cache", zap.Error(err))
	} else {
		logger.Info("Redis connected successfully")
		cache = redisRepo
		orderSvc.WithCache(cache)
	}
	catalogSvc := service.NewCatalogService(products, cache, logger)

	// MongoDB audit log
	mongoRepo, err := repository.NewMongoRepository(&cfg.MongoDB)
	if err == nil {
		err = mongoRepo.Ping(ctx)
	}
	if err != nil {
		logger.Warn("MongoDB connection failed, continuing without audit log", zap.Error(err))
		mongoRepo = nil
	} else {
		orderSvc.WithAudit(mongoRepo)
	}

	// Notification actor
	notifier, err := notify.NewNotifier(logger)
	if err != nil {
		logger.Warn("Failed to start notification actor", zap.Error(err))
	} else {
		orderSvc.WithNotifier(notifier)
		defer notifier.Shutdown()
	}

	// Service discovery
	sd, err := discovery.NewServiceDiscovery(&cfg.Etcd)
	if err != nil {
		logger.Warn("Failed to connect to etcd, continuing without service discovery", zap.Error(err))
		sd = nil
	}
	instance := &discovery.ServiceInstance{
		Name: cfg.Server.Name,
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	}
	if sd != nil {
		if err := sd.Register(ctx, instance); err != nil {
			logger.Warn("Failed to register service in etcd", zap.Error(err))
		} else {
			logger.Info("Service registered in etcd",
				zap.String("name", instance.Name),
				zap.String("address", fmt.Sprintf("%s:%d", instance.Host, instance.Port)))
		}
	}

	// Create gateway
	gw := gateway.NewGateway(cfg, logger, authSvc, catalogSvc, orderSvc)
	gw.SetupRoutes()

	// Start gateway in goroutine
	gwErr := make(chan error, 1)
	go func() {
		if err := gw.Start(); err != nil {
			gwErr <- err
		}
	}()

	logger.Info("Gateway started successfully")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-gwErr:
		logger.Fatal("Gateway error", zap.Error(err))
	}

	if sd != nil {
		if err := sd.Deregister(ctx, instance); err != nil {
			logger.Error("Failed to deregister service", zap.Error(err))
		}
		sd.Close()
	}

	redisRepo.Close()
	if mongoRepo != nil {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		mongoRepo.Close(closeCtx)
		cancel()
	}

	logger.Info("Service stopped")
}

func buildLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	if len(cfg.OutputPaths) > 0 {
		zcfg.OutputPaths = cfg.OutputPaths
	}
	return zcfg.Build()
}
