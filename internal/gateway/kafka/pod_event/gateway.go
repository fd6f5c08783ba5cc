package pod_event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"podservice/internal/entities"
)

const eventTypeDeliveryCommitted = "pod.delivery_committed"

// Gateway публикует события о закоммиченных доставках в Kafka.
// Публикация строго best-effort: вызывающая сторона логирует ошибку
// и не откатывает коммит.
type Gateway struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

func (g *Gateway) DeliveryCommitted(ctx context.Context, record *entities.DeliveryRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("gateway pod_event, publish: %w", err)
	}

	event := fromDomain(record)
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("gateway pod_event, marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(record.AWBNumber),
		Value: sarama.ByteEncoder(payload),
	}

	start := time.Now()
	_, _, err = g.producer.SendMessage(msg)

	status := "ok"
	if err != nil {
		status = "error"
	}
	// Метрики Prometheus
	EventPublishDuration.WithLabelValues(g.topic, status).Observe(time.Since(start).Seconds())
	EventPublishTotal.WithLabelValues(g.topic, status).Inc()

	if err != nil {
		return fmt.Errorf("gateway pod_event, send message: %w", err)
	}
	return nil
}
