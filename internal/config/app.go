package config

import (
	"time"

	"github.com/pkg/errors"
)

const (
	defaultRefreshSeconds      = 5
	defaultNotificationSeconds = 3
	defaultLocation            = "America/Sao_Paulo"
)

type AppConfig struct {
	RefreshIntervalSeconds int64  `yaml:"refresh-interval-seconds"`
	NotificationTTLSeconds int64  `yaml:"notification-ttl-seconds"`
	LocationName           string `yaml:"location"`
}

func (s *AppConfig) RefreshInterval() time.Duration {
	return time.Duration(s.RefreshIntervalSeconds) * time.Second
}

func (s *AppConfig) NotificationTTL() time.Duration {
	return time.Duration(s.NotificationTTLSeconds) * time.Second
}

// Location falls back to UTC when the zone database does not know the name.
func (s *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.LocationName)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s *AppConfig) validate() error {
	if s.RefreshIntervalSeconds < 1 {
		return errors.Errorf("invalid refresh-interval-seconds %d: must be at least 1", s.RefreshIntervalSeconds)
	}
	if s.NotificationTTLSeconds < 1 {
		return errors.Errorf("invalid notification-ttl-seconds %d: must be at least 1", s.NotificationTTLSeconds)
	}
	return nil
}
