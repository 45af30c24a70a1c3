package view

import (
	"context"
	"errors"
	"sync"
)

// State is what a view shows for one logical fetch.
type State[T any] struct {
	// Value is the last successfully fetched value. A failed fetch leaves it
	// in place.
	Value T
	// Err is the error of the most recent committed fetch, nil on success.
	Err     error
	Loading bool
	// Generation counts committed fetches.
	Generation uint64
}

// Loader runs the fetches of one view. Starting a fetch cancels the one in
// flight, and only the most recently started fetch may commit its result.
// Cancellation is never committed as an error.
type Loader[T any] struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	state  State[T]
}

// Load cancels any fetch in flight and runs fetch. It reports whether the
// result was committed; a superseded or canceled fetch returns false and
// leaves the state untouched.
func (l *Loader[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) (State[T], bool) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	seq := l.seq
	l.cancel = cancel
	l.state.Loading = true
	l.mu.Unlock()

	value, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if seq != l.seq {
		return l.state, false
	}
	l.cancel = nil
	l.state.Loading = false

	if errors.Is(err, context.Canceled) {
		return l.state, false
	}

	if err == nil {
		l.state.Value = value
	}
	l.state.Err = err
	l.state.Generation++
	return l.state, true
}

// Cancel aborts the fetch in flight, if any. Nothing is committed for it.
func (l *Loader[T]) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	// a canceled fetch can no longer commit
	l.seq++
	l.state.Loading = false
}

// State returns the current view state.
func (l *Loader[T]) State() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}
