package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/transfeera/receiver-api/internal/logging"
	"github.com/transfeera/receiver-api/internal/redisclient"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

var (
	// MongoDB database
	MongoDB *mongo.Database
	// Redis client, nil unless rate limiting is enabled
	Redis *redisclient.Client
)

// InitMongoDB connects to MongoDB and makes sure the receiver indexes exist
func InitMongoDB() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoDB = client.Database(AppConfig.MongoDatabase)

	if err := EnsureIndexes(ctx, MongoDB); err != nil {
		logging.Logger.Error("failed to ensure indexes on startup", zap.Error(err))
	}

	logging.Logger.Info("connected to MongoDB",
		zap.String("uri", maskMongoURI(AppConfig.MongoURI)),
		zap.String("database", AppConfig.MongoDatabase),
	)
	return nil
}

// CloseMongoDB disconnects the MongoDB client
func CloseMongoDB(ctx context.Context) {
	if MongoDB == nil {
		return
	}
	if err := MongoDB.Client().Disconnect(ctx); err != nil {
		logging.Logger.Error("failed to disconnect from MongoDB", zap.Error(err))
	}
}

// InitRedis connects to Redis
func InitRedis() error {
	opts, err := redis.ParseURL(AppConfig.RedisURI)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URI: %w", err)
	}
	if AppConfig.RedisPassword != "" {
		opts.Password = AppConfig.RedisPassword
	}
	opts.DB = AppConfig.RedisDB
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolSize = 10
	opts.MinIdleConns = 2

	// Wrap with traced client
	Redis = redisclient.NewClient(redis.NewClient(opts))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		_ = Redis.Close()
		Redis = nil
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.Logger.Info("connected to Redis", zap.String("uri", maskRedisURI(AppConfig.RedisURI)))
	return nil
}

// maskMongoURI masks the credentials of a MongoDB URI
func maskMongoURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at < 0 {
		return uri
	}
	scheme := "mongodb://"
	if strings.HasPrefix(uri, "mongodb+srv://") {
		scheme = "mongodb+srv://"
	}
	return scheme + "****:****@" + uri[at+1:]
}

// maskRedisURI masks the credentials of a Redis URI
func maskRedisURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at < 0 {
		return uri
	}
	scheme := uri[:strings.Index(uri, "://")+3]
	return scheme + "****@" + uri[at+1:]
}

// EnsureIndexes creates the receiver indexes if they don't exist.
// CreateMany is a no-op for indexes that already exist with the same options.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	logger := logging.Logger.Named("database")
	collection := db.Collection(AppConfig.ReceiverCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("status_1"),
		},
		{
			Keys:    bson.D{{Key: "pix_key_type", Value: 1}},
			Options: options.Index().SetName("pix_key_type_1"),
		},
		{
			Keys:    bson.D{{Key: "cpf_cnpj", Value: 1}},
			Options: options.Index().SetName("cpf_cnpj_1"),
		},
	}

	names, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create receiver indexes: %w", err)
	}

	logger.Info("receiver indexes verified",
		zap.String("collection", AppConfig.ReceiverCollection),
		zap.Strings("indexes", names),
	)
	return nil
}
