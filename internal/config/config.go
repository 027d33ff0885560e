package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFile   = "data/config.yaml"
	configFileEnv = "GASTOS_CONFIG"
	envFile       = ".env"

	apiURLEnv         = "GASTOS_API_URL"
	telegramTokenEnv  = "TELEGRAM_TOKEN"
	memcachedHostsEnv = "MEMCACHED_HOSTS"
	kafkaBrokersEnv   = "KAFKA_BROKERS"
)

type config struct {
	API       APIConfig       `yaml:"api"`
	App       AppConfig       `yaml:"app"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type Service struct {
	config config
}

// New reads the YAML file at path (DefaultFile or $GASTOS_CONFIG when empty).
// A missing file is not an error: every section has working defaults.
// Environment variables, optionally loaded from .env, win over the file.
func New(path string) (*Service, error) {
	_ = godotenv.Load(envFile)

	if path == "" {
		path = os.Getenv(configFileEnv)
	}
	if path == "" {
		path = DefaultFile
	}

	s := &Service{config: defaults()}

	rawYAML, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, errors.Wrap(err, "reading config file")
	default:
		if err = yaml.Unmarshal(rawYAML, &s.config); err != nil {
			return nil, errors.Wrap(err, "parsing yaml")
		}
	}

	s.applyEnv()

	if err = s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func defaults() config {
	return config{
		API: APIConfig{
			URL: DefaultBaseURL,
		},
		App: AppConfig{
			RefreshIntervalSeconds: defaultRefreshSeconds,
			NotificationTTLSeconds: defaultNotificationSeconds,
			LocationName:           defaultLocation,
		},
		Kafka: KafkaConfig{
			Topic: defaultEventsTopic,
			Group: defaultConsumerGroup,
		},
		Tracing: TracingConfig{
			Service: defaultServiceName,
		},
	}
}

func (s *Service) applyEnv() {
	if v := os.Getenv(apiURLEnv); v != "" {
		s.config.API.URL = v
	}
	if v := os.Getenv(telegramTokenEnv); v != "" {
		s.config.Telegram.APIToken = v
	}
	if v := os.Getenv(memcachedHostsEnv); v != "" {
		s.config.Memcached.NodeHosts = splitList(v)
	}
	if v := os.Getenv(kafkaBrokersEnv); v != "" {
		s.config.Kafka.BrokerList = splitList(v)
	}
}

func (s *Service) validate() error {
	if err := s.config.API.validate(); err != nil {
		return errors.Wrap(err, "api section")
	}
	if err := s.config.App.validate(); err != nil {
		return errors.Wrap(err, "app section")
	}
	return nil
}

func splitList(v string) []string {
	var res []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}

func (s *Service) API() *APIConfig {
	return &s.config.API
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
