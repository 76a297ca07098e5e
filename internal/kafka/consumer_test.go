package kafka

import (
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestConsumerOptions(t *testing.T) {
	cfg := kafkago.ReaderConfig{
		HeartbeatInterval: defaultHeartbeatInterval,
		SessionTimeout:    defaultSessionTimeout,
	}

	WithHeartbeatInterval(5 * time.Second)(&cfg)
	WithSessionTimeout(45 * time.Second)(&cfg)

	assert.Equal(t, 5*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 45*time.Second, cfg.SessionTimeout)

	// non-positive values keep the current settings
	WithHeartbeatInterval(0)(&cfg)
	WithSessionTimeout(-time.Second)(&cfg)

	assert.Equal(t, 5*time.Second, cfg.HeartbeatInterval)
	assert.Equal(t, 45*time.Second, cfg.SessionTimeout)
}
