package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_OnMissingFile_ShouldUseDefaults(t *testing.T) {
	cfg, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.API().BaseURL())
	assert.Equal(t, time.Duration(0), cfg.API().Timeout())
	assert.Equal(t, 5*time.Second, cfg.App().RefreshInterval())
	assert.Equal(t, 3*time.Second, cfg.App().NotificationTTL())
	assert.Equal(t, "gastos-events", cfg.Kafka().EventsTopic())
	assert.Equal(t, "gastos-client", cfg.Kafka().ConsumerGroup())
	assert.False(t, cfg.Kafka().Enabled())
	assert.False(t, cfg.Memcached().Enabled())
	assert.Empty(t, cfg.Metrics().Listen())
}

func Test_OnYAMLFile_ShouldOverrideDefaults(t *testing.T) {
	path := writeConfig(t, `
api:
  base-url: https://gastos.example.com/
  timeout-seconds: 10
app:
  refresh-interval-seconds: 30
  notification-ttl-seconds: 4
  location: UTC
memcached:
  hosts: ["127.0.0.1:11211"]
kafka:
  brokers: ["127.0.0.1:9092"]
  events-topic: changes
telegram:
  token: secret
`)

	cfg, err := New(path)
	require.NoError(t, err)

	assert.Equal(t, "https://gastos.example.com", cfg.API().BaseURL())
	assert.Equal(t, 10*time.Second, cfg.API().Timeout())
	assert.Equal(t, 30*time.Second, cfg.App().RefreshInterval())
	assert.Equal(t, 4*time.Second, cfg.App().NotificationTTL())
	assert.Equal(t, time.UTC, cfg.App().Location())
	assert.Equal(t, []string{"127.0.0.1:11211"}, cfg.Memcached().Hosts())
	assert.Equal(t, "changes", cfg.Kafka().EventsTopic())
	assert.True(t, cfg.Kafka().Enabled())
	assert.Equal(t, "secret", cfg.Telegram().Token())
}

func Test_OnEnvironment_ShouldWinOverFile(t *testing.T) {
	path := writeConfig(t, "api:\n  base-url: http://file:8000\n")
	t.Setenv(apiURLEnv, "http://env:9000")
	t.Setenv(kafkaBrokersEnv, "a:9092, b:9092,")

	cfg, err := New(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env:9000", cfg.API().BaseURL())
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka().Brokers())
}

func Test_OnInvalidValues_ShouldFail(t *testing.T) {
	cases := map[string]string{
		"scheme":   "api:\n  base-url: ftp://host\n",
		"interval": "app:\n  refresh-interval-seconds: 0\n",
		"ttl":      "app:\n  notification-ttl-seconds: -1\n",
		"yaml":     "api: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
