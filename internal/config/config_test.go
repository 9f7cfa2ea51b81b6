package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pickup-point-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("POSTGRES_USER", "pickup")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("SESSION_SCROLL_DELAY", "250ms")
	t.Setenv("POSTGRES_AUTO_MIGRATE", "false")
	t.Setenv("SESSION_CAPACITY", "not-a-number")

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 250*time.Millisecond, conf.Session.ScrollDelay)
	assert.False(t, conf.Postgres.AutoMigrate)
	assert.Equal(t, 10000, conf.Session.Capacity, "invalid value falls back to default")
}

func TestConfig_Validate(t *testing.T) {
	t.Setenv("POSTGRES_USER", "pickup")
	t.Setenv("POSTGRES_PASSWORD", "secret")

	testCases := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{name: "unknown env", mutate: func(c *config.Config) { c.Env = "dev" }},
		{name: "no brokers", mutate: func(c *config.Config) { c.Kafka.Brokers = nil }},
		{name: "bad broker address", mutate: func(c *config.Config) { c.Kafka.Brokers = []string{"kafka"} }},
		{name: "zero session ttl", mutate: func(c *config.Config) { c.Session.TTL = 0 }},
		{name: "search limit too large", mutate: func(c *config.Config) { c.Session.SearchLimit = 1000 }},
		{name: "bad ssl mode", mutate: func(c *config.Config) { c.Postgres.SSLMode = "maybe" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conf := config.New()
			require.NoError(t, conf.Validate())

			tc.mutate(&conf)
			assert.Error(t, conf.Validate())
		})
	}
}
