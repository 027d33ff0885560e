package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/gastos-client/internal/clients/api"
	"max.ks1230/gastos-client/internal/clients/cache"
	"max.ks1230/gastos-client/internal/clients/kafka"
	"max.ks1230/gastos-client/internal/clients/tg"
	"max.ks1230/gastos-client/internal/config"
	"max.ks1230/gastos-client/internal/logger"
	"max.ks1230/gastos-client/internal/model/messages"
	"max.ks1230/gastos-client/internal/model/remote"
	"max.ks1230/gastos-client/internal/model/state"
	"max.ks1230/gastos-client/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "config file (default "+config.DefaultFile+")")
	flag.Parse()

	logger.Info("Bot init - start")
	defer logger.Sync()

	conf, err := config.New(*configPath)
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	apiClient := api.New(conf.API())

	var opts []remote.Option
	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer", zap.Error(err))
		}
		defer producer.Close()
		opts = append(opts, remote.WithEvents(producer))
	}
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Fatal("failed to init memcached", zap.Error(err))
		}
		opts = append(opts, remote.WithSnapshots(mc))
	}

	syncer := remote.New(apiClient, state.New(), messages.NewChatNotifier(client), conf.App(), opts...)
	dashboards := messages.NewDashboards(client, syncer.Store(), conf.App())
	msgService := messages.NewService(client, syncer, apiClient, conf.App(), messages.WithDashboards(dashboards))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	syncer.Warm(ctx)
	go syncer.Run(ctx)
	go dashboards.Run(ctx)

	if conf.Kafka().Enabled() {
		consumer, err := kafka.NewConsumer(conf.Kafka(), syncer)
		if err != nil {
			logger.Fatal("failed to init kafka consumer", zap.Error(err))
		}
		defer consumer.Close()
		go func() {
			if err := consumer.StartConsuming(ctx); err != nil {
				logger.Error("consuming changes stopped", zap.Error(err))
			}
		}()
	}

	if addr := conf.Metrics().Listen(); addr != "" {
		srv := &http.Server{Addr: addr, Handler: promhttp.Handler()}
		go func() {
			logger.Info("serving metrics", zap.String("addr", addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancelShutdown()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	logger.Info("Bot init - end")

	client.ListenUpdates(ctx, msgService)
}
