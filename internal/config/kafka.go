package config

const (
	defaultEventsTopic   = "gastos-events"
	defaultConsumerGroup = "gastos-client"
)

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers"`
	Topic      string   `yaml:"events-topic"`
	Group      string   `yaml:"consumer-group"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) EventsTopic() string {
	return s.Topic
}

// ConsumerGroup should differ per running process, otherwise only one of them
// sees each event.
func (s *KafkaConfig) ConsumerGroup() string {
	return s.Group
}

func (s *KafkaConfig) Enabled() bool {
	return len(s.BrokerList) > 0
}
