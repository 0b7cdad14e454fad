package rabbit

import (
	"sync"

	"github.com/airenas/workopt/internal/pkg/cmdapp"
	"github.com/airenas/workopt/internal/pkg/utils"
	"github.com/streadway/amqp"

	"github.com/pkg/errors"
)

// ChannelProvider provider amqp channel
type ChannelProvider struct {
	url  string
	conn *amqp.Connection
	ch   *amqp.Channel
	m    sync.Mutex // struct field mutex
}

type runOnChannelFunc func(*amqp.Channel) error

// NewChannelProvider initializes channel provider
func NewChannelProvider(url, user, pass string) (*ChannelProvider, error) {
	finalURL, err := brokerURL(url, user, pass)
	if err != nil {
		return nil, err
	}
	cmdapp.Log.Infof("Rabbit broker: %s", utils.URLToLog(finalURL))
	return &ChannelProvider{url: finalURL}, nil
}

func brokerURL(url, user, pass string) (string, error) {
	if url == "" {
		return "", errors.New("No broker url from messageServer.url")
	}
	if user != "" && pass == "" {
		return "", errors.New("No broker pass from messageServer.pass")
	}
	res := "amqp://"
	if user != "" {
		res = res + user + ":" + pass + "@"
	}
	return res + url, nil
}

// Channel return cached channel or tries to connect to rabbit broker
func (pr *ChannelProvider) Channel() (*amqp.Channel, error) {
	pr.m.Lock()
	defer pr.m.Unlock()

	if pr.ch != nil {
		return pr.ch, nil
	}
	conn, err := amqp.Dial(pr.url)
	if err != nil {
		return nil, errors.Wrap(err, "Can't connect to rabbit broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		defer conn.Close()
		return nil, errors.Wrap(err, "Can't create channel")
	}
	pr.conn = conn
	pr.ch = ch
	return pr.ch, nil
}

// RunOnChannelWithRetry invokes method on channel, reconnects once on failure
func (pr *ChannelProvider) RunOnChannelWithRetry(f runOnChannelFunc) error {
	ch, err := pr.Channel()
	if err != nil {
		return errors.Wrap(err, "Can't init channel")
	}
	err = f(ch)
	if err != nil {
		cmdapp.Log.Infof("Retry opening channel")
		pr.Close()
		ch, err = pr.Channel()
		if err != nil {
			return errors.Wrap(err, "Can't init channel")
		}
		err = f(ch)
	}
	return err
}

// Healthy checks if connection to the broker is alive
func (pr *ChannelProvider) Healthy() error {
	pr.m.Lock()
	conn := pr.conn
	pr.m.Unlock()
	if conn != nil && !conn.IsClosed() {
		return nil
	}
	_, err := pr.Channel()
	return err
}

// Close finalizes ChannelProvider
func (pr *ChannelProvider) Close() {
	pr.m.Lock()
	defer pr.m.Unlock()

	if pr.ch != nil {
		defer pr.ch.Close()
	}
	if pr.conn != nil {
		defer pr.conn.Close()
	}
	pr.ch = nil
	pr.conn = nil
}
