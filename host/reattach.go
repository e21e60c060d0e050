package host

import (
	"fmt"
	"io"
	"time"
)

// ConnectFunc opens a source. The closer may be nil.
type ConnectFunc func() (Source, io.Closer, error)

// Reattach connects lazily and reconnects after the source keeps failing,
// e.g. when the game restarts. Attempts are spaced by Interval.
type Reattach struct {
	Interval    time.Duration
	MaxFailures int

	connect  ConnectFunc
	src      Source
	closer   io.Closer
	failures int
	last     time.Time
	tried    bool
	now      func() time.Time
}

func NewReattach(connect ConnectFunc, interval time.Duration) *Reattach {
	return &Reattach{
		Interval:    interval,
		MaxFailures: 120,
		connect:     connect,
		now:         time.Now,
	}
}

func (r *Reattach) Attached() bool {
	return r.src != nil
}

func (r *Reattach) Read() (Snapshot, error) {
	if r.src == nil {
		if err := r.attach(); err != nil {
			return Snapshot{}, err
		}
	}

	snap, err := r.src.Read()
	if err != nil {
		r.failures++
		if r.failures >= r.MaxFailures {
			r.detach()
		}
		return Snapshot{}, err
	}
	r.failures = 0
	return snap, nil
}

func (r *Reattach) attach() error {
	now := r.now()
	if r.tried && now.Sub(r.last) < r.Interval {
		return ErrNotAttached
	}
	r.tried = true
	r.last = now

	src, closer, err := r.connect()
	if err != nil {
		return fmt.Errorf("attach: %w", err)
	}
	r.src = src
	r.closer = closer
	r.failures = 0
	return nil
}

func (r *Reattach) detach() {
	if r.closer != nil {
		r.closer.Close()
	}
	r.src = nil
	r.closer = nil
	r.failures = 0
}

func (r *Reattach) Close() error {
	if r.closer == nil {
		r.src = nil
		return nil
	}
	err := r.closer.Close()
	r.src = nil
	r.closer = nil
	return err
}
