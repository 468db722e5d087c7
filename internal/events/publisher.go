package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/hospital_beds/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	reservationQueueKey = "reservation_events"
	// События, которые не удалось записать после всех повторов
	reservationFailedQueueKey = "reservation_events:failed"
)

// ReservationEvent - событие успешного бронирования для журнала
type ReservationEvent struct {
	HospitalID  uuid.UUID      `json:"hospital_id"`
	BedType     models.BedType `json:"bed_type"`
	PatientName string         `json:"patient_name,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий бронирования
type EventPublisher interface {
	Publish(ctx context.Context, event ReservationEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая список Redis как очередь
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в левую часть очереди
func (p *RedisEventPublisher) Publish(ctx context.Context, event ReservationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal reservation event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, reservationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish reservation event to Redis: %w", err)
	}
	return nil
}
