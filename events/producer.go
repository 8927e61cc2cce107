// Package events publishes order lifecycle events to Kafka. The producer is
// optional: without KAFKA_BROKERS configured every publish is a no-op.
package events

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/IBM/sarama"
)

const TopicOrderCreated = "order.created"

var producer sarama.SyncProducer

// Connect initializes the Kafka producer when KAFKA_BROKERS is configured.
func Connect() {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	p, err := sarama.NewSyncProducer(strings.Split(brokers, ","), config)
	if err != nil {
		log.Printf("kafka unavailable, order events disabled: %v", err)
		return
	}
	producer = p
	log.Println("kafka producer initialized")
}

// PublishOrderCreated emits an order.created event. Delivery failures are
// logged, never surfaced to the checkout caller: the order is already
// committed by the time this runs.
func PublishOrderCreated(event interface{}) {
	if producer == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal order.created event: %v", err)
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: TopicOrderCreated,
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err := producer.SendMessage(msg); err != nil {
		log.Printf("failed to send order.created event: %v", err)
	}
}
