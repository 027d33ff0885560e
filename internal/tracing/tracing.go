package tracing

import (
	"fmt"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/gastos-client/internal/logger"
)

type config interface {
	ServiceName() string
	Enabled() bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init installs a Jaeger tracer as the global opentracing tracer. Agent
// address and sampling can be tuned with the standard JAEGER_* variables.
// When tracing is disabled the global no-op tracer stays in place.
func Init(cfg config) (io.Closer, error) {
	if !cfg.Enabled() {
		return nopCloser{}, nil
	}

	jcfg := jaegercfg.Configuration{
		ServiceName: cfg.ServiceName(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
	}
	if _, err := jcfg.FromEnv(); err != nil {
		return nil, errors.Wrap(err, "jaeger config from env")
	}

	tracer, closer, err := jcfg.NewTracer(jaegercfg.Logger(zapLogger{}))
	if err != nil {
		return nil, errors.Wrap(err, "new jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)
	logger.Info("tracing enabled", zap.String("service", cfg.ServiceName()))
	return closer, nil
}

type zapLogger struct{}

func (zapLogger) Error(msg string) {
	logger.Error(msg)
}

func (zapLogger) Infof(msg string, args ...interface{}) {
	logger.Debug(fmt.Sprintf(msg, args...))
}
