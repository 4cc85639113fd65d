package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kofiantwi/airroutes/config"
	"github.com/kofiantwi/airroutes/internal/bootstrap"
	"github.com/kofiantwi/airroutes/internal/cache"
	"github.com/kofiantwi/airroutes/internal/dataset"
	"github.com/kofiantwi/airroutes/internal/kafka"
	"github.com/kofiantwi/airroutes/internal/repository"
	"github.com/kofiantwi/airroutes/internal/service/routes"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	index, err := buildIndex(ctx, cfg)
	if err != nil {
		log.Fatalf("load dataset: %v", err)
	}

	planCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Search.PlanCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	routeService := routes.NewRouteService(
		index,
		planCache,
		producer,
		cfg.Kafka.SearchTopic,
		routes.WithMaxDepth(cfg.Search.MaxDepth),
	)

	if err := bootstrap.Run(ctx, cfg, routeService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func buildIndex(ctx context.Context, cfg *config.Config) (*dataset.Index, error) {
	if cfg.Dataset.Source != "postgres" {
		return dataset.LoadFromFiles(cfg.Dataset.AirportsFile, cfg.Dataset.AirlinesFile, cfg.Dataset.RoutesFile)
	}

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	repo := repository.NewDatasetRepository(pool)
	airports, err := repo.Airports(ctx)
	if err != nil {
		return nil, err
	}
	airlines, err := repo.Airlines(ctx)
	if err != nil {
		return nil, err
	}
	edges, err := repo.Routes(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.NewIndex(airports, airlines, edges), nil
}
