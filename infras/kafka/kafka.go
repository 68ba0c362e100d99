package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"reserve/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const defaultWriteTimeout = 10 * time.Second

// Message is JSON encoded on publish. Headers travel as kafka record headers.
type Message struct {
	Key     string
	Value   any
	Headers map[string]string
}

func (m Message) encode() (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to encode message %q: %w", m.Key, err)
	}

	headers := make([]kafkaGo.Header, 0, len(m.Headers))
	for k, v := range m.Headers {
		headers = append(headers, kafkaGo.Header{Key: k, Value: []byte(v)})
	}

	return kafkaGo.Message{
		Key:     []byte(m.Key),
		Value:   value,
		Headers: headers,
	}, nil
}

// Client publishes to kafka. Writers are created lazily, one per topic, and reused.
type Client interface {
	Publish(ctx context.Context, topic string, messages ...Message) error
	Close() error
}

type producer struct {
	config    *config.Config
	transport *kafkaGo.Transport

	mu      sync.Mutex
	writers map[string]*kafkaGo.Writer
}

func New(config *config.Config) Client {
	transport := &kafkaGo.Transport{}

	if config.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka producer initialized")

	return &producer{
		config:    config,
		transport: transport,
		writers:   map[string]*kafkaGo.Writer{},
	}
}

func (p *producer) writer(topic string) *kafkaGo.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, ok := p.writers[topic]; ok {
		return w
	}

	timeout := defaultWriteTimeout
	if p.config.Kafka.WriteTimeoutSeconds > 0 {
		timeout = time.Duration(p.config.Kafka.WriteTimeoutSeconds) * time.Second
	}

	w := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(p.config.Kafka.Brokers...),
		Topic:                  topic,
		Transport:              p.transport,
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireOne,
		WriteTimeout:           timeout,
		AllowAutoTopicCreation: true,
	}

	p.writers[topic] = w

	return w
}

// Publish writes messages synchronously. Messages with the same key land on the same partition, so a
// booking's notifications stay ordered.
func (p *producer) Publish(ctx context.Context, topic string, messages ...Message) error {
	if topic == "" {
		return ErrEmptyTopic
	}

	if len(messages) == 0 {
		return nil
	}

	encoded := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.encode()
		if err != nil {
			return err
		}

		encoded = append(encoded, msg)
	}

	if err := p.writer(topic).WriteMessages(ctx, encoded...); err != nil {
		log.Error().Err(err).Str("topic", topic).Int("messages", len(encoded)).Msg("failed to publish to kafka")

		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	log.Debug().Str("topic", topic).Int("messages", len(encoded)).Msg("published to kafka")

	return nil
}

func (p *producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error

	for topic, w := range p.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close writer for %s: %w", topic, err)
		}

		delete(p.writers, topic)
	}

	return firstErr
}
