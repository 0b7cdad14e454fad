package deliver

import (
	"sync"
	"time"

	"github.com/airenas/workopt/internal/pkg/cmdapp"
	"github.com/airenas/workopt/internal/pkg/messages"
	"github.com/airenas/workopt/internal/pkg/persistence"
	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
)

// BackOffProvider creates a fresh backoff for every delivery
type BackOffProvider interface {
	Get() backoff.BackOff
}

// Deliverer sends finished runs to all configured publishers
type Deliverer struct {
	publishers []messages.Publisher
	bp         BackOffProvider
	wg         sync.WaitGroup
}

// NewDeliverer creates Deliverer. Nil backoff provider means exponential backoff
func NewDeliverer(bp BackOffProvider, publishers ...messages.Publisher) *Deliverer {
	if bp == nil {
		bp = NewExpBackOffProvider(45 * time.Second)
	}
	return &Deliverer{publishers: publishers, bp: bp}
}

// Enabled returns true if there is at least one publisher
func (d *Deliverer) Enabled() bool {
	return d != nil && len(d.publishers) > 0
}

// Start delivers the run in background
func (d *Deliverer) Start(run *persistence.Run) {
	if !d.Enabled() {
		return
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.Deliver(run)
	}()
}

// Deliver sends the run to every publisher with retry.
// Returns the number of failed publishers
func (d *Deliverer) Deliver(run *persistence.Run) int {
	res := 0
	for _, p := range d.publishers {
		if err := publish(p, run, d.bp.Get()); err != nil {
			cmdapp.Log.Error(errors.Wrapf(err, "Can't deliver run %s to %s", run.ID, p.Name()))
			res++
		}
	}
	return res
}

// Wait waits for all background deliveries
func (d *Deliverer) Wait() {
	d.wg.Wait()
}

func publish(p messages.Publisher, run *persistence.Run, b backoff.BackOff) error {
	op := func() error {
		err := p.Publish(run)
		if err != nil {
			cmdapp.Log.Warn(err)
		}
		return err
	}
	return backoff.Retry(op, b)
}

type expBackOffProvider struct {
	maxElapsed time.Duration
}

// NewExpBackOffProvider creates provider of exponential backoff limited by max elapsed time
func NewExpBackOffProvider(maxElapsed time.Duration) BackOffProvider {
	return &expBackOffProvider{maxElapsed: maxElapsed}
}

func (bp *expBackOffProvider) Get() backoff.BackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     backoff.DefaultInitialInterval,
		RandomizationFactor: backoff.DefaultRandomizationFactor,
		Multiplier:          backoff.DefaultMultiplier,
		MaxInterval:         backoff.DefaultMaxInterval,
		MaxElapsedTime:      bp.maxElapsed,
		Clock:               backoff.SystemClock,
	}
	b.Reset()
	return b
}
