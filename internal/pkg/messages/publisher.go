package messages

import "github.com/airenas/workopt/internal/pkg/persistence"

// Publisher publishes the finished run event to some broker
type Publisher interface {
	Publish(run *persistence.Run) error
	Name() string
}
