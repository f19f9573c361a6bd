package producer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/DilipRavikumar/freelance-project/internal/dto"
)

// EmployeeProducer publishes employee lifecycle events to a single topic,
// keyed by message id.
type EmployeeProducer struct {
	sp     sarama.SyncProducer
	topic  string
	source string
	log    zerolog.Logger
}

type Config struct {
	Topic  string
	Source string
}

func NewEmployeeProducer(sp sarama.SyncProducer, cfg Config, log zerolog.Logger) *EmployeeProducer {
	return &EmployeeProducer{
		sp:     sp,
		topic:  cfg.Topic,
		source: cfg.Source,
		log:    log.With().Str("component", "EmployeeProducer").Logger(),
	}
}

func (p *EmployeeProducer) Close() error {
	if p == nil || p.sp == nil {
		return nil
	}
	return p.sp.Close()
}

func (p *EmployeeProducer) EmployeeCreated(ctx context.Context, e dto.EmployeeDTO) error {
	return p.produce(ctx, kindCreated, e.EmployeeID, EmployeePayload{Employee: e})
}

func (p *EmployeeProducer) EmployeeUpdated(ctx context.Context, e dto.EmployeeDTO) error {
	return p.produce(ctx, kindUpdated, e.EmployeeID, EmployeePayload{Employee: e})
}

func (p *EmployeeProducer) EmployeeDeleted(ctx context.Context, employeeID int64) error {
	return p.produce(ctx, kindDeleted, employeeID, DeletedPayload{EmployeeID: employeeID})
}

func (p *EmployeeProducer) produce(ctx context.Context, kind string, employeeID int64, payload any) error {
	env := Envelope[any]{
		Kind:       kind,
		MessageID:  uuid.New(),
		EmployeeID: employeeID,
		Payload:    payload,
		Timestamp:  time.Now().UTC(),
		Source:     p.source,
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	return p.send(ctx, p.topic, env.MessageID.String(), body, map[string]string{
		"event-kind":   kind,
		"source":       p.source,
		"content-type": "application/json",
	})
}

func (p *EmployeeProducer) send(_ context.Context, topic, key string, value []byte, headers map[string]string) error {
	if p == nil || p.sp == nil {
		return errors.New("sync producer is not initialized")
	}

	var hs []sarama.RecordHeader
	for k, v := range headers {
		hs = append(hs, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(value),
		Headers: hs,
	}

	part, off, err := p.sp.SendMessage(msg)
	if err != nil {
		p.log.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Int("bytes", len(value)).
			Msg("failed to send kafka message")
		return fmt.Errorf("send kafka message: %w", err)
	}

	p.log.Info().
		Str("topic", topic).
		Str("key", key).
		Int32("partition", part).
		Int64("offset", off).
		Int("bytes", len(value)).
		Msg("kafka message sent")
	return nil
}
