package kafka

import (
	"context"
	"testing"

	"reserve/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageEncode(t *testing.T) {
	msg := Message{
		Key:     "evt-1",
		Value:   map[string]any{"status": "APPROVED"},
		Headers: map[string]string{"tenant": "mc"},
	}

	encoded, err := msg.encode()
	require.NoError(t, err)

	assert.Equal(t, []byte("evt-1"), encoded.Key)
	assert.JSONEq(t, `{"status":"APPROVED"}`, string(encoded.Value))
	require.Len(t, encoded.Headers, 1)
	assert.Equal(t, "tenant", encoded.Headers[0].Key)
	assert.Equal(t, []byte("mc"), encoded.Headers[0].Value)
}

func TestMessageEncodeInvalidValue(t *testing.T) {
	_, err := Message{Key: "evt-1", Value: make(chan int)}.encode()

	require.Error(t, err)
}

func TestPublishValidation(t *testing.T) {
	client := New(&config.Config{})

	require.ErrorIs(t, client.Publish(context.Background(), ""), ErrEmptyTopic)
	require.NoError(t, client.Publish(context.Background(), "mc-booking-emails"))
	require.NoError(t, client.Close())
}

func TestWriterIsReused(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Brokers = []string{"localhost:9092"}

	p, ok := New(cfg).(*producer)
	require.True(t, ok)

	first := p.writer("mc-booking-emails")

	assert.Same(t, first, p.writer("mc-booking-emails"))
	assert.NotSame(t, first, p.writer("tc-booking-emails"))
	require.NoError(t, p.Close())
	assert.Empty(t, p.writers)
}
