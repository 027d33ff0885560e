package kafka

import (
	"context"
	"encoding/json"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/gastos-client/internal/entity/event"
	"max.ks1230/gastos-client/internal/logger"
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type changeHandler interface {
	HandleChange(ctx context.Context, change event.Change)
}

// Consumer reads change events written by other clients and hands them to a
// changeHandler. Events produced by this process are skipped.
type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	handler       changeHandler
}

func NewConsumer(cfg consumerConfig, handler changeHandler) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetNewest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	if err != nil {
		return nil, errors.Wrap(err, "new consumer group")
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.EventsTopic(),
		handler:       handler,
	}, nil
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrapf(err, "consume from %s", c.topic)
			}
		}
	}
}

func (c *Consumer) Close() {
	if err := c.consumerGroup.Close(); err != nil {
		logger.Error("failed to close consumer group", zap.Error(err))
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		c.process(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

func (c *Consumer) process(ctx context.Context, message *sarama.ConsumerMessage) {
	if string(message.Key) == instanceID {
		return
	}

	var change event.Change
	if err := json.Unmarshal(message.Value, &change); err != nil {
		logger.Error("cannot unmarshal kafka message", zap.Error(err))
		return
	}
	logger.Info(
		"received change",
		zap.ByteString("key", message.Key),
		zap.String("event", string(change.Type)),
		zap.String("id", change.EntityID),
	)
	c.handler.HandleChange(ctx, change)
}
