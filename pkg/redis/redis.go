package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IRedis backs the cross-instance attendance debounce: a key per person
// with the debounce interval as TTL short-circuits repeat video frames
// before the ledger is consulted.
type IRedis interface {
	SetDebounce(ctx context.Context, name string, expiration time.Duration) error
	IsDebounced(ctx context.Context, name string) (bool, error)
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func debounceKey(name string) string {
	return "attendance:debounce:" + name
}

func (r *redisClient) SetDebounce(ctx context.Context, name string, expiration time.Duration) error {
	err := r.client.Set(ctx, debounceKey(name), "1", expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error setting debounce for %s: %v", name, err))
		return err
	}
	return nil
}

func (r *redisClient) IsDebounced(ctx context.Context, name string) (bool, error) {
	_, err := r.client.Get(ctx, debounceKey(name)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		logrus.Error(fmt.Sprintf("Error checking debounce for %s: %v", name, err))
		return false, err
	}
	return true, nil
}
