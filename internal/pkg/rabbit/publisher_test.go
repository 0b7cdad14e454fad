package rabbit

import (
	"testing"

	"github.com/airenas/workopt/internal/pkg/messages"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher_DefaultExchange(t *testing.T) {
	p := NewPublisher(nil, "")
	assert.Equal(t, DefaultExchange, p.exchange)
	assert.Equal(t, "rabbit:OptimizationFinished", p.Name())
}

func TestNewPublisher_Exchange(t *testing.T) {
	p := NewPublisher(nil, "olia")
	assert.Equal(t, "rabbit:olia", p.Name())
}

func TestNewPublishing(t *testing.T) {
	m, err := newPublishing(&messages.RunEvent{ID: "id", Strategy: "cost", Feasible: true,
		TotalCost: 800, Makespan: 4})
	require.Nil(t, err)
	assert.Equal(t, "application/json", m.ContentType)
	assert.Equal(t, amqp.Persistent, m.DeliveryMode)
	assert.Equal(t, "id", m.MessageId)
	assert.JSONEq(t, `{"id":"id","strategy":"cost","feasible":true,"totalCost":800,"makespan":4}`,
		string(m.Body))
}
