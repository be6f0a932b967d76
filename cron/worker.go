package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"craftlink/config"
	"craftlink/models"
	"craftlink/services/reminder"
	"craftlink/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(reminder.TypeMeetingReminder, handleMeetingReminder)

	// Start async worker with retry logic.
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleMeetingReminder fires when a confirmed meeting is approaching.
// Delivery to devices is out of scope; the reminder is logged for the
// notification pipeline to pick up.
func handleMeetingReminder(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ReminderWorker] Invalid payload: %v", err)
		return err
	}

	utils.GetLogger().Info("meeting reminder due",
		zap.String("contractorID", p.ContractorID),
		zap.String("realtorID", p.RealtorID),
		zap.String("date", p.Date),
		zap.String("startTime", p.StartTime))
	return nil
}
