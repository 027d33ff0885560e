package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	enabled bool
}

func (c testConfig) ServiceName() string {
	return "gastos-test"
}

func (c testConfig) Enabled() bool {
	return c.enabled
}

func Test_OnDisabledTracing_ShouldKeepNoopTracer(t *testing.T) {
	closer, err := Init(testConfig{})

	require.NoError(t, err)
	assert.NoError(t, closer.Close())
	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
}

func Test_OnEnabledTracing_ShouldInstallGlobalTracer(t *testing.T) {
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	closer, err := Init(testConfig{enabled: true})

	require.NoError(t, err)
	defer closer.Close()
	assert.True(t, opentracing.IsGlobalTracerRegistered())
}
