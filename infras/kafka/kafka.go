package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"

	"stayhub/config"
)

// Message is a key/value pair published to a topic. Value is marshalled
// to JSON on the way out.
type Message struct {
	Key   string
	Value any
}

func (m *Message) toKafkaMessage() (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("marshalling message value: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: value,
	}, nil
}

func Decode[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("unmarshalling message value: %w", err)
	}

	return value, nil
}

type Client interface {
	Publish(ctx context.Context, topic string, messages ...Message) error
	Consume(ctx context.Context, consumerGroup, topic string, handler func(message kafkaGo.Message))
}

type clientImpl struct {
	config    *config.Config
	dialer    *kafkaGo.Dialer
	transport *kafkaGo.Transport
	address   net.Addr
}

func New(conf *config.Config) Client {
	mechanism := plain.Mechanism{
		Username: conf.Kafka.SASL.Username,
		Password: conf.Kafka.SASL.Password,
	}

	log.Info().Strs("brokers", conf.Kafka.Brokers).Msg("Kafka client initialized")

	return &clientImpl{
		config: conf,
		dialer: &kafkaGo.Dialer{
			DualStack:     true,
			SASLMechanism: mechanism,
		},
		transport: &kafkaGo.Transport{
			SASL: mechanism,
		},
		address: kafkaGo.TCP(conf.Kafka.Brokers...),
	}
}

func (c *clientImpl) Publish(ctx context.Context, topic string, messages ...Message) error {
	writer := &kafkaGo.Writer{
		Addr:                   c.address,
		Topic:                  topic,
		Transport:              c.transport,
		AllowAutoTopicCreation: true,
		Async:                  true,
	}

	msgs := make([]kafkaGo.Message, 0, len(messages))
	for _, message := range messages {
		msg, err := message.toKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to encode Kafka message")

			return err
		}

		msgs = append(msgs, msg)
	}

	if err := writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to publish messages to Kafka")

		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (c *clientImpl) Consume(ctx context.Context, consumerGroup, topic string, handler func(message kafkaGo.Message)) {
	groupID := c.config.Kafka.ConsumerGroup
	if consumerGroup != "" {
		groupID = consumerGroup
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     c.config.Kafka.Brokers,
		Topic:       topic,
		GroupID:     groupID,
		Dialer:      c.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})

	for {
		select {
		case <-ctx.Done():
			if err := reader.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close Kafka reader")
			}

			return
		default:
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				log.Error().Err(err).Str("topic", topic).Msg("Failed to read message from Kafka")

				continue
			}

			go handler(msg)
		}
	}
}
