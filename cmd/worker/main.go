package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kofiantwi/airroutes/config"
	"github.com/kofiantwi/airroutes/internal/kafka"
	"github.com/kofiantwi/airroutes/internal/stats"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.SearchTopic)
	defer consumer.Close()

	recorder := stats.NewRecorder()

	go func() {
		if err := consumer.ConsumeSearchEvents(ctx, recorder.Record); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	reportEvery := time.Duration(cfg.Worker.StatsReportMinutes) * time.Minute
	if reportEvery <= 0 {
		reportEvery = 15 * time.Minute
	}
	reportTicker := time.NewTicker(reportEvery)
	defer reportTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-reportTicker.C:
			recorder.Report()
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
