package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	ingester "ugcengagement/engagement/internal/ingester/kafka"
	"ugcengagement/engagement/pkg/model"
	"ugcengagement/pkg/logging"
)

const timeout = 10 * time.Second

type config struct {
	Address  string `env:"KAFKA_ADDRESS" envDefault:"localhost"`
	Topic    string `env:"KAFKA_TOPIC" envDefault:"engagement"`
	FileName string `env:"EVENTS_FILE" envDefault:"engagementevents.json"`
}

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	log = log.With(zap.String(logging.FieldService, "eventproducer"))

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal("Failed to parse environment", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Creating a Kafka producer", zap.String("address", cfg.Address))
	producer, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": cfg.Address})
	if err != nil {
		log.Fatal("Failed to create producer", zap.Error(err))
	}
	defer producer.Close()

	events, err := readEngagementEvents(cfg.FileName)
	if err != nil {
		log.Fatal("Failed to read events", zap.Error(err))
	}
	log.Info("Producing events", zap.Int("count", len(events)), zap.String("topic", cfg.Topic))
	if err := produceEngagementEvents(ctx, cfg.Topic, producer, events); err != nil {
		log.Fatal("Failed to produce events", zap.Error(err))
	}

	if remaining := producer.Flush(int(timeout.Milliseconds())); remaining > 0 {
		log.Warn("Events left unflushed", zap.Int("remaining", remaining))
	}
	log.Info("Done")
}

func readEngagementEvents(fileName string) ([]model.EngagementEvent, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var events []model.EngagementEvent
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(f).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode %s: %w", fileName, err)
	}
	return events, nil
}

func produceEngagementEvents(ctx context.Context, topic string, producer *kafka.Producer, events []model.EngagementEvent) error {
	for _, event := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		encoded, err := ingester.Encode(event)
		if err != nil {
			return err
		}
		if err := producer.Produce(&kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
			Key:            []byte(event.FilmID),
			Value:          encoded,
		}, nil); err != nil {
			return err
		}
	}
	return nil
}
