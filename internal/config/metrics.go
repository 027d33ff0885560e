package config

type MetricsConfig struct {
	ListenAddr string `yaml:"listen"`
}

// Listen is empty when metrics are not exported.
func (m *MetricsConfig) Listen() string {
	return m.ListenAddr
}
