package config

import (
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const DefaultBaseURL = "http://localhost:8000"

type APIConfig struct {
	URL            string `yaml:"base-url"`
	TimeoutSeconds int64  `yaml:"timeout-seconds"`
}

func (a *APIConfig) BaseURL() string {
	return strings.TrimRight(a.URL, "/")
}

// Timeout of zero leaves the transport default in place.
func (a *APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

func (a *APIConfig) validate() error {
	u, err := url.Parse(a.URL)
	if err != nil {
		return errors.Wrapf(err, "invalid base-url %q", a.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("invalid base-url %q: scheme must be http or https", a.URL)
	}
	if a.TimeoutSeconds < 0 {
		return errors.Errorf("invalid timeout-seconds %d", a.TimeoutSeconds)
	}
	return nil
}
