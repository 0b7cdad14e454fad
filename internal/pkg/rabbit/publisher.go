package rabbit

import (
	"encoding/json"
	"sync"

	"github.com/airenas/workopt/internal/pkg/cmdapp"
	"github.com/airenas/workopt/internal/pkg/messages"
	"github.com/airenas/workopt/internal/pkg/persistence"

	"github.com/pkg/errors"
	"github.com/streadway/amqp"
)

// DefaultExchange is used when messageServer.exchange is not configured
const DefaultExchange = "OptimizationFinished"

// Publisher publish run events to rabbit mq broker
type Publisher struct {
	ChannelProvider *ChannelProvider
	exchange        string
	declared        bool
	m               sync.Mutex
}

// NewPublisher initializes rabbit publisher
func NewPublisher(provider *ChannelProvider, exchange string) *Publisher {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &Publisher{ChannelProvider: provider, exchange: exchange}
}

// Name returns publisher name for logging
func (sender *Publisher) Name() string {
	return "rabbit:" + sender.exchange
}

// Publish publish the run event
func (sender *Publisher) Publish(run *persistence.Run) error {
	cmdapp.Log.Infof("Publishing event %s(%s)", sender.exchange, run.ID)

	msg, err := newPublishing(messages.NewRunEvent(run))
	if err != nil {
		return err
	}
	err = sender.ChannelProvider.RunOnChannelWithRetry(func(ch *amqp.Channel) error {
		if err := sender.declare(ch); err != nil {
			return err
		}
		return ch.Publish(
			sender.exchange,
			"",
			false, // mandatory
			false,
			msg)
	})
	if err != nil {
		return errors.Wrap(err, "Can't publish event")
	}
	return nil
}

func (sender *Publisher) declare(ch *amqp.Channel) error {
	sender.m.Lock()
	defer sender.m.Unlock()

	if sender.declared {
		return nil
	}
	if err := DeclareExchange(ch, sender.exchange); err != nil {
		return errors.Wrap(err, "Can't declare exchange "+sender.exchange)
	}
	sender.declared = true
	return nil
}

func newPublishing(e *messages.RunEvent) (amqp.Publishing, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return amqp.Publishing{}, errors.Wrap(err, "Can't marshal event")
	}
	return amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    e.ID,
		Body:         b,
	}, nil
}
