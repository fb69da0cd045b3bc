package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/transfeera/receiver-api/internal/config"
	"github.com/transfeera/receiver-api/internal/logging"
	"github.com/transfeera/receiver-api/internal/repository"
	"github.com/transfeera/receiver-api/internal/seed"
	"go.uber.org/zap"
)

func main() {
	count := flag.Int("count", 30, "number of receivers to insert")
	seedValue := flag.Int64("seed", time.Now().UnixNano(), "random seed, for reproducible data")
	flag.Parse()

	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logging.Sync()

	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	if err := config.InitMongoDB(); err != nil {
		logging.Logger.Fatal("failed to initialize MongoDB", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	defer config.CloseMongoDB(context.Background())

	repo := repository.NewMongoReceiverRepository(
		config.MongoDB,
		config.AppConfig.ReceiverCollection,
		config.AppConfig.CounterCollection,
	)
	gen := seed.NewGenerator(rand.New(rand.NewSource(*seedValue)))

	logging.Logger.Info("seeding receivers",
		zap.Int("count", *count),
		zap.Int64("seed", *seedValue),
		zap.String("database", config.AppConfig.MongoDatabase),
	)

	created, err := seed.Receivers(ctx, repo, gen, *count, logging.Logger)
	if err != nil {
		logging.Logger.Error("seeding stopped early", zap.Int("inserted", len(created)), zap.Error(err))
		return
	}

	logging.Logger.Info("seeding completed", zap.Int("inserted", len(created)))
}
