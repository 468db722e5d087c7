package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/hospital_beds/internal/config"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/sirupsen/logrus"
)

// LogWriter сохраняет записи журнала бронирований
type LogWriter interface {
	SaveReservationLog(ctx context.Context, entry *models.ReservationLog) error
}

// EventWorker - обработчик очереди событий бронирования
type EventWorker struct {
	redisClient *redis.Client
	writer      LogWriter
	logger      *logrus.Logger
	cfg         *config.Config
}

// NewEventWorker создает новый EventWorker
func NewEventWorker(redisClient *redis.Client, writer LogWriter, logger *logrus.Logger, cfg *config.Config) *EventWorker {
	return &EventWorker{
		redisClient: redisClient,
		writer:      writer,
		logger:      logger,
		cfg:         cfg,
	}
}

// requeueTimeout ограничивает запись в Redis при остановке воркера
const requeueTimeout = 5 * time.Second

// Start запускает горутину для обработки очереди.
// Перед стартом события из очереди отказов возвращаются в основную.
func (w *EventWorker) Start(ctx context.Context) {
	w.logger.Info("Starting reservation event worker...")
	if n, err := w.RequeueFailed(ctx); err != nil {
		w.logger.WithError(err).Error("Failed to requeue failed reservation events")
	} else if n > 0 {
		w.logger.WithField("count", n).Info("Requeued failed reservation events")
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping reservation event worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка, 0 - бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, reservationQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop reservation event from Redis")
					time.Sleep(w.cfg.EventBaseDelay)
					continue
				}

				// result[0] - ключ, result[1] - значение
				var event ReservationEvent
				if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal reservation event from Redis")
					continue
				}

				w.processEvent(ctx, event)
			}
		}
	}()
}

func (w *EventWorker) processEvent(ctx context.Context, event ReservationEvent) {
	log := w.logger.WithField("hospital_id", event.HospitalID).WithField("bed_type", event.BedType)
	log.Debug("Processing reservation event...")

	entry := &models.ReservationLog{
		HospitalID:  event.HospitalID,
		BedType:     event.BedType,
		PatientName: event.PatientName,
		ReservedAt:  event.Timestamp,
	}

	maxRetries := w.cfg.EventMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.EventBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.writer.SaveReservationLog(ctx, entry)
		if err == nil {
			log.Info("Reservation event stored successfully.")
			return
		}
		log.WithError(err).Warnf("Failed to store reservation event. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		if i == maxRetries-1 {
			break
		}
		select {
		case <-ctx.Done():
			// Воркер останавливается: событие возвращается в голову очереди
			w.park(ctx, log, reservationQueueKey, event, true)
			return
		case <-time.After(delay):
		}
		delay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to store reservation event after %d retries.", maxRetries)
	w.park(ctx, log, reservationFailedQueueKey, event, false)
}

// park кладет событие обратно в Redis, чтобы журнал не потерял бронирование.
// head=true ставит его первым на извлечение для BRPOP.
func (w *EventWorker) park(ctx context.Context, log *logrus.Entry, queue string, event ReservationEvent, head bool) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Error("Failed to marshal reservation event for requeue")
		return
	}

	parkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), requeueTimeout)
	defer cancel()

	if head {
		err = w.redisClient.RPush(parkCtx, queue, payload).Err()
	} else {
		err = w.redisClient.LPush(parkCtx, queue, payload).Err()
	}
	if err != nil {
		log.WithError(err).WithField("queue", queue).Error("Failed to requeue reservation event, entry is lost")
		return
	}
	log.WithField("queue", queue).Warn("Reservation event requeued")
}

// RequeueFailed переносит события из очереди отказов в основную очередь
func (w *EventWorker) RequeueFailed(ctx context.Context) (int, error) {
	moved := 0
	for {
		err := w.redisClient.LMove(ctx, reservationFailedQueueKey, reservationQueueKey, "RIGHT", "LEFT").Err()
		if errors.Is(err, redis.Nil) {
			return moved, nil
		}
		if err != nil {
			return moved, fmt.Errorf("failed to requeue reservation event: %w", err)
		}
		moved++
	}
}
