package analytics_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/analytics"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/config"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu       sync.Mutex
	err      error
	calls    int
	messages []kafka.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	return nil
}

func breakerConfig() config.Breaker {
	return config.Breaker{MaxRequests: 1, Timeout: time.Minute, ConsecutiveFailures: 2}
}

func TestPublisher_EmitConfirmationEvent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	selection := entities.PickupOption{
		ID:            "Retirada (P1)",
		PickupPointID: "P1",
		Name:          "Store P1",
		Address:       entities.Address{City: "Rio de Janeiro", PostalCode: "22250-040"},
		StoreInfo:     &entities.StoreInfo{IsPickupStore: true},
	}

	t.Run("event is written", func(t *testing.T) {
		w := &fakeWriter{}
		p := analytics.NewPublisher(logger, w, breakerConfig())

		p.EmitConfirmationEvent(context.Background(), selection)

		require.Len(t, w.messages, 1)
		assert.Equal(t, []byte("P1"), w.messages[0].Key)

		var event analytics.ConfirmationEvent
		require.NoError(t, json.Unmarshal(w.messages[0].Value, &event))
		assert.Equal(t, analytics.EventPickupConfirmed, event.Event)
		assert.Equal(t, "Retirada (P1)", event.PickupOptionID)
		assert.Equal(t, "Rio de Janeiro", event.City)
		assert.True(t, event.IsPickupStore)
		assert.False(t, event.OccurredAt.IsZero())
	})

	t.Run("open breaker drops events", func(t *testing.T) {
		w := &fakeWriter{err: errors.New("broker down")}
		p := analytics.NewPublisher(logger, w, breakerConfig())

		for range 5 {
			p.EmitConfirmationEvent(context.Background(), selection)
		}

		assert.Equal(t, 2, w.calls, "breaker opens after consecutive failures")
		assert.Empty(t, w.messages)
		require.NoError(t, p.Close())
	})
}
