package config

const defaultServiceName = "gastos-client"

type TracingConfig struct {
	Service string `yaml:"service-name"`
	On      bool   `yaml:"enabled"`
}

func (t *TracingConfig) ServiceName() string {
	return t.Service
}

func (t *TracingConfig) Enabled() bool {
	return t.On
}
