package utils

import (
	"context"
	"sync"
	"time"

	"craftlink/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus reports reachability of each backing service.
type HealthStatus struct {
	Mongo         bool      `json:"mongo"`
	Cache         bool      `json:"cache"`
	AuthCache     bool      `json:"authCache"`
	ReminderQueue bool      `json:"reminderQueue"`
	CheckedAt     time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex

	reminderQueueClient *redis.Client
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// queueClient pings the reminder queue's Redis DB. asynq owns that DB, so no
// other component holds a plain client for it.
func queueClient() *redis.Client {
	if reminderQueueClient == nil {
		reminderQueueClient = redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		})
	}
	return reminderQueueClient
}

func pingRedis(ctx context.Context, client *redis.Client) bool {
	return client.Ping(ctx).Err() == nil
}

func checkHealth(ctx context.Context, mongoClient *mongo.Client) HealthStatus {
	return HealthStatus{
		Mongo:         mongoClient.Ping(ctx, nil) == nil,
		Cache:         pingRedis(ctx, GetCacheClient()),
		AuthCache:     pingRedis(ctx, GetAuthCacheClient()),
		ReminderQueue: pingRedis(ctx, queueClient()),
		CheckedAt:     time.Now(),
	}
}

// StartHealthMonitor probes Mongo, both Redis caches and the reminder queue
// once at startup and then every minute, updating the in-memory snapshot.
func StartHealthMonitor(mongoClient *mongo.Client) {
	go func() {
		ctx := context.Background()

		update := func() {
			status := checkHealth(ctx, mongoClient)
			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}

		update()
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			update()
		}
	}()
}
