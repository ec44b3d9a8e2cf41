package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, -5*time.Hour, cfg.Promo.TimezoneOffset)
	assert.Equal(t, 10, cfg.Promo.LotterySize)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, "update_promos", cfg.Kafka.UpdateTopic)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("PROMO_TIMEZONE_OFFSET", "-4h")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("REDIS_ADDRESS", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, -4*time.Hour, cfg.Promo.TimezoneOffset)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.True(t, cfg.Redis.Enabled())
}
