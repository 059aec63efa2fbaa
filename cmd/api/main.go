package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tradedesk/config"
	"tradedesk/internal/feed"
	"tradedesk/internal/handler"
	"tradedesk/internal/middleware"
	"tradedesk/internal/repository"
	"tradedesk/internal/router"
	"tradedesk/internal/seed"
	"tradedesk/internal/service"
	"tradedesk/internal/ws"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/clickhouse"
	"gorm.io/gorm"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cfg := config.Load()

	migrateFlag := flag.Bool("migrate", false, "Run database migrations and exit")
	flag.Parse()

	var tradeRepo repository.TradeRepository
	switch cfg.StoreBackend {
	case config.StoreBackendClickHouse:
		db, err := gorm.Open(clickhouse.Open(cfg.ClickHouseDSN), &gorm.Config{})
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		if *migrateFlag {
			sqlDB, err := db.DB()
			if err != nil {
				logger.Fatalf("Failed to get sql.DB: %v", err)
			}
			if err := goose.SetDialect("clickhouse"); err != nil {
				logger.Fatalf("Goose: failed to set dialect: %v", err)
			}
			logger.Info("Running database migrations...")
			if err := goose.Up(sqlDB, "migrations"); err != nil {
				logger.Fatalf("Goose migration failed: %v", err)
			}
			logger.Info("Migrations completed successfully")
			return
		}
		tradeRepo = repository.NewGormTradeRepository(db)
	default:
		tradeRepo = repository.NewMemoryTradeRepository()
	}

	if cfg.SeedCount > 0 && cfg.StoreBackend == config.StoreBackendMemory {
		randomSeed := cfg.SeedRandomSeed
		if randomSeed == 0 {
			randomSeed = time.Now().UnixNano()
		}
		seeder := seed.New(rand.New(rand.NewSource(randomSeed)), time.Now)
		if err := seeder.Populate(tradeRepo, cfg.SeedCount); err != nil {
			logger.Fatalf("Failed to seed trades: %v", err)
		}
		logger.Infof("Seeded %d trades", cfg.SeedCount)
	}

	hub := ws.NewHub(logger)
	go hub.Run()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.FeedEnabled {
		tradeFeed, err := feed.New(feed.Config{
			Broker:  cfg.KafkaBroker,
			Topic:   cfg.KafkaTopic,
			GroupID: cfg.KafkaGroupID,
		}, tradeRepo, hub, logger)
		if err != nil {
			logger.Fatalf("Failed to start trade feed: %v", err)
		}
		go func() {
			if err := tradeFeed.Run(ctx); err != nil {
				logger.Errorf("Trade feed stopped: %v", err)
			}
		}()
	}

	tradeService := service.NewTradeService(tradeRepo)
	tradeHandler := handler.NewTradeHandler(tradeService, logger)

	routerConfig := &router.Config{
		TradeHandler: tradeHandler,
		WSHandler:    ws.NewHandler(hub),
		RateLimiter:  middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
	}
	router := router.NewRouter(routerConfig)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Info("Shutting down...")
		cancel()
		os.Exit(0)
	}()

	logger.Infof("Trade query service listening on :%s", cfg.ServerPort)
	if err := router.Run(fmt.Sprintf(":%s", cfg.ServerPort)); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
