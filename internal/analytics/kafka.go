package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/config"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

const EventPickupConfirmed = "pickup_point_confirmed"

// ConfirmationEvent событие аналитики о подтверждении пункта самовывоза
type ConfirmationEvent struct {
	Event          string    `json:"event"`
	PickupOptionID string    `json:"pickup_option_id"`
	PickupPointID  string    `json:"pickup_point_id"`
	Name           string    `json:"name"`
	City           string    `json:"city,omitempty"`
	PostalCode     string    `json:"postal_code,omitempty"`
	IsPickupStore  bool      `json:"is_pickup_store"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type publisher struct {
	logger  *slog.Logger
	writer  Writer
	breaker *gobreaker.CircuitBreaker[struct{}]
	now     func() time.Time
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka, breaker config.Breaker) *publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.EventsTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return NewPublisher(logger, writer, breaker)
}

// NewPublisher оборачивает запись событий в circuit breaker: пока брокер недоступен,
// события отбрасываются сразу, не задерживая подтверждение.
func NewPublisher(logger *slog.Logger, writer Writer, conf config.Breaker) *publisher {
	logger = logger.With(slog.String("component", "analytics"))

	settings := gobreaker.Settings{
		Name:        "analytics-publisher",
		MaxRequests: conf.MaxRequests,
		Interval:    conf.Interval,
		Timeout:     conf.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= conf.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			breakerState.Set(float64(to))
		},
	}

	return &publisher{
		logger:  logger,
		writer:  writer,
		breaker: gobreaker.NewCircuitBreaker[struct{}](settings),
		now:     time.Now,
	}
}

// EmitConfirmationEvent публикует событие. Ошибки только логируются: аналитика
// не влияет на результат подтверждения.
func (p *publisher) EmitConfirmationEvent(ctx context.Context, selection entities.PickupOption) {
	event := ConfirmationEvent{
		Event:          EventPickupConfirmed,
		PickupOptionID: selection.ID,
		PickupPointID:  selection.PickupPointID,
		Name:           selection.Name,
		City:           selection.Address.City,
		PostalCode:     selection.Address.PostalCode,
		IsPickupStore:  selection.StoreInfo != nil && selection.StoreInfo.IsPickupStore,
		OccurredAt:     p.now().UTC(),
	}

	if err := p.publish(ctx, event); err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			eventsPublished.WithLabelValues("dropped").Inc()
			p.logger.DebugContext(ctx, "analytics event dropped", slog.String("pickup_option_id", selection.ID))
			return
		}
		eventsPublished.WithLabelValues("failed").Inc()
		p.logger.ErrorContext(ctx, "failed to publish analytics event", slog.Any("error", err))
		return
	}
	eventsPublished.WithLabelValues("published").Inc()
}

func (p *publisher) publish(ctx context.Context, event ConfirmationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	_, err = p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(event.PickupPointID),
			Value: data,
		})
	})
	return err
}

func (p *publisher) Close() error {
	return p.writer.Close()
}
