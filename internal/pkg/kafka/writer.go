package kafka

import (
	"encoding/json"

	"github.com/airenas/workopt/internal/pkg/cmdapp"
	"github.com/airenas/workopt/internal/pkg/persistence"
	"github.com/pkg/errors"

	ckafka "github.com/confluentinc/confluent-kafka-go/kafka"
)

// Writer writes finished runs to Kafka topic
type Writer struct {
	producer *ckafka.Producer
	topic    string
}

// NewWriter creates Kafka writer
func NewWriter(brokers, topic string) (*Writer, error) {
	if brokers == "" {
		return nil, errors.New("No kafka.brokers provided")
	}
	if topic == "" {
		return nil, errors.New("No kafka.resultTopic provided")
	}
	res := Writer{topic: topic}

	cmdapp.Log.Infof("Connecting to Kafka on %s", brokers)
	var err error
	res.producer, err = ckafka.NewProducer(&ckafka.ConfigMap{"bootstrap.servers": brokers})
	if err != nil {
		return nil, errors.Wrap(err, "Can't connect to kafka brokers: "+brokers)
	}
	return &res, nil
}

// Name returns publisher name for logging
func (sp *Writer) Name() string {
	return "kafka:" + sp.topic
}

// Publish writes the run to Kafka and waits for delivery
func (sp *Writer) Publish(run *persistence.Run) error {
	msg, err := newMessage(sp.topic, run)
	if err != nil {
		return err
	}
	deliveryChan := make(chan ckafka.Event, 1)
	err = sp.producer.Produce(msg, deliveryChan)
	if err != nil {
		return errors.Wrap(err, "Can't send message to kafka topic")
	}
	e := <-deliveryChan
	m, ok := e.(*ckafka.Message)
	if !ok {
		return errors.Errorf("Unexpected kafka event %v", e)
	}
	if m.TopicPartition.Error != nil {
		return errors.Wrap(m.TopicPartition.Error, "Can't deliver msg")
	}
	cmdapp.Log.Infof("Delivered run %s to topic %s [%d] at offset %v",
		run.ID, *m.TopicPartition.Topic, m.TopicPartition.Partition, m.TopicPartition.Offset)
	return nil
}

// Close flushes pending messages and closes the producer
func (sp *Writer) Close() {
	if sp.producer != nil {
		cmdapp.Log.Info("Closing kafka producer")
		sp.producer.Flush(5000)
		sp.producer.Close()
	}
}

func newMessage(topic string, run *persistence.Run) (*ckafka.Message, error) {
	b, err := json.Marshal(run)
	if err != nil {
		return nil, errors.Wrap(err, "Can't marshal run")
	}
	return &ckafka.Message{
		TopicPartition: ckafka.TopicPartition{Topic: &topic, Partition: ckafka.PartitionAny},
		Key:            []byte(run.ID),
		Value:          b,
		Headers:        []ckafka.Header{{Key: "strategy", Value: []byte(run.Strategy)}}}, nil
}
