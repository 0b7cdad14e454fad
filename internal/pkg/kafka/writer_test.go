package kafka

import (
	"encoding/json"
	"testing"

	"github.com/airenas/workopt/internal/pkg/persistence"
	"github.com/airenas/workopt/internal/pkg/strategy/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ckafka "github.com/confluentinc/confluent-kafka-go/kafka"
)

func TestNewMessage(t *testing.T) {
	r := &persistence.Run{ID: "id", Strategy: "cost", Result: api.NewInfeasibleResult("no")}
	m, err := newMessage("topic", r)
	require.Nil(t, err)
	assert.Equal(t, "topic", *m.TopicPartition.Topic)
	assert.Equal(t, ckafka.PartitionAny, m.TopicPartition.Partition)
	assert.Equal(t, "id", string(m.Key))
	require.Len(t, m.Headers, 1)
	assert.Equal(t, "strategy", m.Headers[0].Key)
	assert.Equal(t, "cost", string(m.Headers[0].Value))

	var got map[string]interface{}
	require.Nil(t, json.Unmarshal(m.Value, &got))
	assert.Equal(t, "id", got["id"])
	assert.Equal(t, map[string]interface{}{"feasible": false, "reason": "no"}, got["result"])
}

func TestNewWriter_Fail(t *testing.T) {
	_, err := NewWriter("", "topic")
	assert.NotNil(t, err)
	_, err = NewWriter("localhost:9092", "")
	assert.NotNil(t, err)
}
