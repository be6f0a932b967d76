package reminder

import (
	"encoding/json"
	"time"

	"craftlink/config"
	"craftlink/models"

	"github.com/hibiken/asynq"
)

// TypeMeetingReminder is the asynq task type for pre-meeting reminders.
const TypeMeetingReminder = "meeting:reminder"

// Scheduler enqueues reminder tasks on the asynq queue. The lead duration is
// how long before the meeting start the reminder fires.
type Scheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewScheduler builds a Scheduler from application config.
func NewScheduler() *Scheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &Scheduler{
		client: client,
		lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
}

// NewMeetingReminderTask builds the asynq task and options for a reminder
// firing at the given time.
func NewMeetingReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeMeetingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ScheduleMeetingReminder enqueues a reminder ahead of the meeting start.
// Meetings closer than the lead time get an immediate reminder.
func (s *Scheduler) ScheduleMeetingReminder(payload models.ReminderPayload, meetingStart time.Time) error {
	fireAt := meetingStart.Add(-s.lead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	task, opts, err := NewMeetingReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.client.Enqueue(task, opts...)
	return err
}

// Close releases the underlying asynq client.
func (s *Scheduler) Close() error {
	return s.client.Close()
}
