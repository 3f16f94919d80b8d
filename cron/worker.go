package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"resortly/config"
	"resortly/models"
	"resortly/services/notification"

	reservationRepo "resortly/database/repository/reservation"

	"github.com/hibiken/asynq"
)

const TypeStayReminder = "reminder:stay"

type stayReminderPayload struct {
	ReservationID string `json:"reservation_id"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
}

// NewReminderClient returns the asynq client used to enqueue reminders.
func NewReminderClient() *asynq.Client {
	return asynq.NewClient(redisOpts())
}

// EnqueueStayReminder schedules a reminder 24 hours before a reservation
// begins. Stays starting sooner than that get no reminder.
func EnqueueStayReminder(client *asynq.Client, res *models.Reservation) error {
	start := res.CheckIn
	if res.ResourceType == models.ResourceShared {
		start = res.SessionDate
	}
	remindAt := start.Time().Add(-24 * time.Hour)
	if remindAt.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(stayReminderPayload{ReservationID: res.ID})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeStayReminder, payload)
	if _, err := client.Enqueue(task, asynq.ProcessAt(remindAt)); err != nil {
		return fmt.Errorf("failed to enqueue stay reminder: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService, reservations reservationRepo.ReservationRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeStayReminder, handleStayReminderTask(notifSvc, reservations))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[ReminderWorker] failed to start worker: %v", err)
		}
	}()
}

func handleStayReminderTask(notifSvc notification.NotificationService, reservations reservationRepo.ReservationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload stayReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("invalid stay reminder payload: %w", err)
		}

		res, err := reservations.GetByID(ctx, payload.ReservationID)
		if err != nil {
			return fmt.Errorf("stay reminder: %w", err)
		}
		// Cancelled or completed stays no longer get reminders.
		if res.Status != models.StatusConfirmed && res.Status != models.StatusPending {
			return nil
		}
		return notifSvc.SendStayReminder(ctx, res)
	}
}
