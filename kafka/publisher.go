package kafka

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"briefbot/types"

	"github.com/IBM/sarama"
)

// ClusterMessage is the wire record for one finished cluster. Downstream
// consumers (summarizers, renderers) read these instead of raw feed items.
type ClusterMessage struct {
	RunID       string        `json:"run_id"`
	Category    string        `json:"category"`
	PublishedAt time.Time     `json:"published_at"`
	Cluster     types.Cluster `json:"cluster"`
}

// PublisherConfig holds Kafka publisher configuration
type PublisherConfig struct {
	Brokers []string
	Topic   string
}

// Publisher sends finished cluster records to a Kafka topic.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(config PublisherConfig) (*Publisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &Publisher{producer: producer, topic: config.Topic}, nil
}

// PublishClusters sends one message per cluster, keyed by category so all
// clusters of a category land on the same partition in order.
func (p *Publisher) PublishClusters(runID, category string, clusters []types.Cluster) error {
	now := time.Now()
	for _, cluster := range clusters {
		msg := ClusterMessage{
			RunID:       runID,
			Category:    category,
			PublishedAt: now,
			Cluster:     cluster,
		}

		payload, err := EncodeClusterMessage(&msg)
		if err != nil {
			return err
		}

		partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(category),
			Value: sarama.ByteEncoder(payload),
		})
		if err != nil {
			return fmt.Errorf("failed to publish cluster %q: %w", cluster.Title, err)
		}
		log.Printf("Published cluster %q to %s (partition=%d, offset=%d)", cluster.Title, p.topic, partition, offset)
	}
	return nil
}

// Close gracefully shuts down the publisher
func (p *Publisher) Close() error {
	return p.producer.Close()
}

// EncodeClusterMessage renders one cluster message as JSON.
func EncodeClusterMessage(msg *ClusterMessage) ([]byte, error) {
	if msg == nil {
		return nil, fmt.Errorf("nil cluster message")
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cluster message: %w", err)
	}
	return payload, nil
}
