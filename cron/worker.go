package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"docportal/config"
	bookingRepo "docportal/database/repository/booking"
	"docportal/models"

	"github.com/hibiken/asynq"
)

const TypeReminderDeliver = "reminder:deliver"

// ReminderPayload is the task body for an appointment reminder.
type ReminderPayload struct {
	BookingID       string `json:"bookingId"`
	PatientEmail    string `json:"patientEmail"`
	Treatment       string `json:"treatment"`
	AppointmentDate string `json:"appointmentDate"`
	Slot            string `json:"slot"`
}

// AsynqReminderScheduler enqueues reminder tasks for accepted bookings.
// Appointment dates are opaque strings, so reminders fire a configured
// interval after admission rather than relative to the appointment itself.
type AsynqReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewReminderScheduler creates a scheduler backed by the reminder queue.
func NewReminderScheduler() *AsynqReminderScheduler {
	lead, err := time.ParseDuration(config.AppConfig.ReminderLeadTime)
	if err != nil || lead <= 0 {
		lead = 12 * time.Hour
	}

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})

	return &AsynqReminderScheduler{client: client, lead: lead}
}

// Schedule enqueues a reminder task for the booking.
func (s *AsynqReminderScheduler) Schedule(booking models.Booking) error {
	payload, err := json.Marshal(ReminderPayload{
		BookingID:       booking.ID,
		PatientEmail:    booking.PatientEmail,
		Treatment:       booking.Treatment,
		AppointmentDate: booking.AppointmentDate,
		Slot:            booking.Slot,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReminderDeliver, payload)
	_, err = s.client.Enqueue(task, asynq.ProcessIn(s.lead))
	return err
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(bookings bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
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
	mux.HandleFunc(TypeReminderDeliver, handleReminderTask(bookings))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Println("[ReminderWorker] max retry attempts reached; reminders disabled")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] reminder due for %s: %s on %s at %s",
			p.PatientEmail, p.Treatment, p.AppointmentDate, p.Slot)

		if err := bookings.MarkReminderSent(p.BookingID); err != nil {
			log.Printf("[ReminderHandler] failed to mark reminder delivered: %v", err)
			return err
		}
		return nil
	}
}
