package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/config"
	"github.com/SergeyBogomolovv/pickup-point-service/internal/entities"
	"github.com/SergeyBogomolovv/pickup-point-service/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type CatalogSaver interface {
	SavePickupPoint(ctx context.Context, point entities.PickupPoint) error
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	saver    CatalogSaver
}

// NewKafkaHandler консьюмер каталога пунктов самовывоза
func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, saver CatalogSaver) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.CatalogTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: utils.NewValidator(),
		saver:    saver,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		// В операции сохранения уже есть retry
		if err := h.HandleMessage(ctx, m); err != nil {
			h.logger.Error("failed to handle message", slog.Any("error", err))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) HandleMessage(ctx context.Context, m kafka.Message) error {
	start := time.Now()
	defer func() {
		pointProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	if err := h.handleSavePickupPoint(ctx, m); err != nil {
		pointsFailed.Inc()
		return err
	}
	pointsProcessed.Inc()
	return nil
}

func (h *kafkaHandler) handleSavePickupPoint(ctx context.Context, m kafka.Message) error {
	var point PickupPoint
	if err := json.Unmarshal(m.Value, &point); err != nil {
		return fmt.Errorf("failed to unmarshal pickup point: %w", err)
	}

	if err := h.validate.Struct(point); err != nil {
		return fmt.Errorf("invalid pickup point data: %w", err)
	}

	return h.saver.SavePickupPoint(ctx, PickupPointJSONToEntity(point))
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	pointsDLQ.Inc()
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
