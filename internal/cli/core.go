package cli

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/gastos-client/internal/clients/api"
	"max.ks1230/gastos-client/internal/clients/cache"
	"max.ks1230/gastos-client/internal/clients/kafka"
	"max.ks1230/gastos-client/internal/config"
	"max.ks1230/gastos-client/internal/logger"
	"max.ks1230/gastos-client/internal/model/notify"
	"max.ks1230/gastos-client/internal/model/remote"
	"max.ks1230/gastos-client/internal/model/state"
	"max.ks1230/gastos-client/internal/tracing"
)

type notifier interface {
	Notify(ctx context.Context, n notify.Notification)
}

// core is what every subcommand works with: one API client, one store and the
// syncer over them. Kafka and memcached are optional; when configured but
// unreachable they are skipped with a warning.
type core struct {
	cfg     *config.Service
	client  *api.Client
	syncer  *remote.Syncer
	cache   *cache.MemcacheClient
	closers []func()
}

func newCore(cfg *config.Service, n notifier) (*core, error) {
	c := &core{
		cfg:    cfg,
		client: api.New(cfg.API()),
	}

	closer, err := tracing.Init(cfg.Tracing())
	if err != nil {
		return nil, errors.Wrap(err, "init tracing")
	}
	c.closers = append(c.closers, func() { _ = closer.Close() })

	var opts []remote.Option
	if cfg.Kafka().Enabled() {
		producer, pErr := kafka.NewProducer(cfg.Kafka())
		if pErr != nil {
			logger.Warn("kafka producer unavailable", zap.Error(pErr))
		} else {
			opts = append(opts, remote.WithEvents(producer))
			c.closers = append(c.closers, producer.Close)
		}
	}
	if cfg.Memcached().Enabled() {
		mc, mErr := cache.NewMemcache(cfg.Memcached())
		if mErr != nil {
			logger.Warn("memcached unavailable", zap.Error(mErr))
		} else {
			c.cache = mc
			opts = append(opts, remote.WithSnapshots(mc))
		}
	}

	c.syncer = remote.New(c.client, state.New(), n, cfg.App(), opts...)
	return c, nil
}

// consume starts a change-event consumer when kafka is configured, so writes
// made by other clients refresh this one without waiting for the next tick.
func (c *core) consume(ctx context.Context) {
	if !c.cfg.Kafka().Enabled() {
		return
	}
	consumer, err := kafka.NewConsumer(c.cfg.Kafka(), c.syncer)
	if err != nil {
		logger.Warn("kafka consumer unavailable", zap.Error(err))
		return
	}
	c.closers = append(c.closers, consumer.Close)

	go func() {
		if err := consumer.StartConsuming(ctx); err != nil {
			logger.Error("consuming changes stopped", zap.Error(err))
		}
	}()
}

func (c *core) close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	logger.Sync()
}
