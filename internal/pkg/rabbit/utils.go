package rabbit

import "github.com/streadway/amqp"

// DeclareExchange declares durable fanout exchange
func DeclareExchange(ch *amqp.Channel, name string) error {
	return ch.ExchangeDeclare(
		name,
		amqp.ExchangeFanout,
		true,  // durable
		false, // delete when unused
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
}
