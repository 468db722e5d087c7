package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/hospital_beds/internal/config"
	"github.com/shenikar/hospital_beds/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyWriter падает первые failures вызовов
type flakyWriter struct {
	mu       sync.Mutex
	failures int
	calls    int
	saved    []*models.ReservationLog
}

func (w *flakyWriter) SaveReservationLog(_ context.Context, entry *models.ReservationLog) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.calls <= w.failures {
		return errors.New("db down")
	}
	w.saved = append(w.saved, entry)
	return nil
}

func newTestWorker(t *testing.T, writer LogWriter, retries int) (*EventWorker, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	cfg := &config.Config{
		EventMaxRetries: retries,
		EventBaseDelay:  time.Millisecond,
	}
	return NewEventWorker(client, writer, logger, cfg), client
}

func queuedEvents(t *testing.T, client *redis.Client, queue string) []ReservationEvent {
	t.Helper()
	raw, err := client.LRange(context.Background(), queue, 0, -1).Result()
	require.NoError(t, err)
	out := make([]ReservationEvent, 0, len(raw))
	for _, item := range raw {
		var event ReservationEvent
		require.NoError(t, json.Unmarshal([]byte(item), &event))
		out = append(out, event)
	}
	return out
}

func TestProcessEvent_StoresEntry(t *testing.T) {
	writer := &flakyWriter{}
	worker, _ := newTestWorker(t, writer, 3)
	event := ReservationEvent{
		HospitalID:  uuid.New(),
		BedType:     models.BedICU,
		PatientName: "Jane Doe",
		Timestamp:   time.Now().UTC(),
	}

	worker.processEvent(context.Background(), event)

	require.Len(t, writer.saved, 1)
	assert.Equal(t, event.HospitalID, writer.saved[0].HospitalID)
	assert.Equal(t, models.BedICU, writer.saved[0].BedType)
	assert.Equal(t, "Jane Doe", writer.saved[0].PatientName)
	assert.Equal(t, event.Timestamp, writer.saved[0].ReservedAt)
}

func TestProcessEvent_RetriesUntilSuccess(t *testing.T) {
	writer := &flakyWriter{failures: 2}
	worker, _ := newTestWorker(t, writer, 3)

	worker.processEvent(context.Background(), ReservationEvent{HospitalID: uuid.New(), BedType: models.BedGeneral})

	assert.Equal(t, 3, writer.calls)
	assert.Len(t, writer.saved, 1)
}

func TestProcessEvent_GivesUpAfterMaxRetries(t *testing.T) {
	writer := &flakyWriter{failures: 10}
	worker, client := newTestWorker(t, writer, 3)
	event := ReservationEvent{HospitalID: uuid.New(), BedType: models.BedGeneral}

	worker.processEvent(context.Background(), event)

	assert.Equal(t, 3, writer.calls)
	assert.Empty(t, writer.saved)
	// Событие не теряется, а уходит в очередь отказов
	failed := queuedEvents(t, client, reservationFailedQueueKey)
	require.Len(t, failed, 1)
	assert.Equal(t, event.HospitalID, failed[0].HospitalID)
	assert.Empty(t, queuedEvents(t, client, reservationQueueKey))
}

func TestProcessEvent_StopsOnCancel(t *testing.T) {
	writer := &flakyWriter{failures: 10}
	worker, client := newTestWorker(t, writer, 5)
	worker.cfg.EventBaseDelay = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	event := ReservationEvent{HospitalID: uuid.New(), BedType: models.BedGeneral}

	worker.processEvent(ctx, event)

	assert.Equal(t, 1, writer.calls)
	// Прерванное событие возвращается в основную очередь
	queued := queuedEvents(t, client, reservationQueueKey)
	require.Len(t, queued, 1)
	assert.Equal(t, event.HospitalID, queued[0].HospitalID)
	assert.Empty(t, queuedEvents(t, client, reservationFailedQueueKey))
}

func TestRequeueFailed_MovesEventsBackToQueue(t *testing.T) {
	writer := &flakyWriter{failures: 10}
	worker, client := newTestWorker(t, writer, 1)
	first := ReservationEvent{HospitalID: uuid.New(), BedType: models.BedICU}
	second := ReservationEvent{HospitalID: uuid.New(), BedType: models.BedGeneral}
	worker.processEvent(context.Background(), first)
	worker.processEvent(context.Background(), second)
	require.Len(t, queuedEvents(t, client, reservationFailedQueueKey), 2)

	moved, err := worker.RequeueFailed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, moved)
	assert.Empty(t, queuedEvents(t, client, reservationFailedQueueKey))
	// BRPOP читает справа: первым снова обработается более старое событие
	queued := queuedEvents(t, client, reservationQueueKey)
	require.Len(t, queued, 2)
	assert.Equal(t, first.HospitalID, queued[1].HospitalID)
	assert.Equal(t, second.HospitalID, queued[0].HospitalID)
}

func TestRequeueFailed_EmptyQueue(t *testing.T) {
	worker, _ := newTestWorker(t, &flakyWriter{}, 1)

	moved, err := worker.RequeueFailed(context.Background())

	require.NoError(t, err)
	assert.Zero(t, moved)
}

func TestStart_ReplaysFailedEvents(t *testing.T) {
	writer := &flakyWriter{}
	worker, client := newTestWorker(t, writer, 1)
	event := ReservationEvent{HospitalID: uuid.New(), BedType: models.BedDelivery, Timestamp: time.Now().UTC()}
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	require.NoError(t, client.LPush(context.Background(), reservationFailedQueueKey, payload).Err())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	assert.Eventually(t, func() bool {
		writer.mu.Lock()
		defer writer.mu.Unlock()
		return len(writer.saved) == 1
	}, 2*time.Second, 10*time.Millisecond)
}
