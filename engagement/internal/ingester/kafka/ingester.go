package kafka

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"ugcengagement/engagement/pkg/model"
	"ugcengagement/pkg/logging"
)

// pollTimeout bounds a single read so cancellation is noticed.
const pollTimeout = 500 * time.Millisecond

var errSessionClosed = errors.New("kafka consumer session closed")

// consumer is the part of *kafka.Consumer the ingester relies on.
type consumer interface {
	SubscribeTopics(topics []string, rebalanceCb kafka.RebalanceCb) error
	ReadMessage(timeout time.Duration) (*kafka.Message, error)
	CommitMessage(m *kafka.Message) ([]kafka.TopicPartition, error)
	Close() error
}

func newKafkaConsumer(cfg *kafka.ConfigMap) (consumer, error) {
	return kafka.NewConsumer(cfg)
}

// Ingester defines a Kafka ingester. Every Ingest call opens its own
// consumer, so a restarted ingestion never reuses a closed handle.
// Offsets are committed only when a delivery is acknowledged.
type Ingester struct {
	config      kafka.ConfigMap
	topic       string
	newConsumer func(cfg *kafka.ConfigMap) (consumer, error)
	logger      *zap.Logger
}

// NewIngester creates a new Kafka ingester.
func NewIngester(addr string, groupID string, topic string, logger *zap.Logger) (*Ingester, error) {
	if addr == "" || groupID == "" || topic == "" {
		return nil, errors.New("kafka address, group id and topic must be set")
	}
	logger = logger.With(
		zap.String(logging.FieldComponent, "kafka-ingester"),
		zap.String("topic", topic),
	)
	return &Ingester{
		config: kafka.ConfigMap{
			"bootstrap.servers":  addr,
			"group.id":           groupID,
			"auto.offset.reset":  "earliest",
			"enable.auto.commit": false,
		},
		topic:       topic,
		newConsumer: newKafkaConsumer,
		logger:      logger,
	}, nil
}

// session owns one consumer for the lifetime of one Ingest call.
type session struct {
	mu       sync.Mutex
	consumer consumer
	closed   bool
}

func (s *session) commit(msg *kafka.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errSessionClosed
	}
	_, err := s.consumer.CommitMessage(msg)
	return err
}

func (s *session) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.consumer.Close()
}

// Ingest starts ingestion from Kafka and returns a channel of deliveries
// consumed from the topic. The channel is closed and the consumer
// released once ctx is done.
func (i *Ingester) Ingest(ctx context.Context) (chan model.EngagementDelivery, error) {
	i.logger.Info("Starting Kafka ingester")
	cfg := kafka.ConfigMap{}
	for k, v := range i.config {
		cfg[k] = v
	}
	c, err := i.newConsumer(&cfg)
	if err != nil {
		return nil, err
	}
	s := &session{consumer: c}
	if err := c.SubscribeTopics([]string{i.topic}, nil); err != nil {
		_ = s.close()
		return nil, err
	}

	ch := make(chan model.EngagementDelivery, 1)
	go func() {
		defer func() {
			if err := s.close(); err != nil {
				i.logger.Warn("Failed to close consumer", zap.Error(err))
			}
			close(ch)
		}()
		for ctx.Err() == nil {
			msg, err := c.ReadMessage(pollTimeout)
			var kerr kafka.Error
			if errors.As(err, &kerr) && kerr.Code() == kafka.ErrTimedOut {
				continue
			}
			if err != nil {
				i.logger.Warn("Consumer error", zap.Error(err))
				continue
			}
			event, err := Decode(msg.Value)
			if err != nil {
				i.logger.Warn("Unmarshal error", zap.Error(err), zap.Any("offset", msg.TopicPartition.Offset))
				if err := s.commit(msg); err != nil {
					i.logger.Warn("Failed to commit skipped message", zap.Error(err))
				}
				continue
			}
			delivery := model.EngagementDelivery{
				Event: event,
				Ack:   func() error { return s.commit(msg) },
			}
			select {
			case ch <- delivery:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// Decode parses a JSON encoded engagement event.
func Decode(b []byte) (model.EngagementEvent, error) {
	var event model.EngagementEvent
	err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(b, &event)
	return event, err
}

// Encode renders an engagement event as JSON.
func Encode(event model.EngagementEvent) ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(event)
}
