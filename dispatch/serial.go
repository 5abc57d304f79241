// Package dispatch provides observer dispatchers for promises that should
// not run their observers inline on the completing goroutine.
package dispatch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/zyedidia/generic/queue"
)

type _SerialOption func(opts *serialOptions)

type serialOptions struct {
	Pool   *ants.Pool
	Logger *slog.Logger
}

var _DefaultSerialOptions = serialOptions{
	Logger: slog.Default(),
}

// WithPool runs the dispatcher on a shared pool instead of a private one.
// Shutdown will not release a shared pool.
func WithPool(pool *ants.Pool) _SerialOption {
	return func(opts *serialOptions) {
		opts.Pool = pool
	}
}

func WithLogger(logger *slog.Logger) _SerialOption {
	return func(opts *serialOptions) {
		opts.Logger = logger
	}
}

// NewSerial returns a dispatcher that runs submitted functions off the
// submitting goroutine, one at a time, in submission order. A panicking
// function is recovered and logged; later functions still run.
func NewSerial(opts ..._SerialOption) *Serial {
	var opt = _DefaultSerialOptions
	for _, o := range opts {
		o(&opt)
	}
	s := &Serial{
		opts:    opt,
		pool:    opt.Pool,
		pending: queue.New[func()](),
	}
	if s.pool == nil {
		pool, err := ants.NewPool(1)
		if err != nil {
			panic(err)
		}
		s.pool = pool
		s.ownsPool = true
	}
	return s
}

type Serial struct {
	mu       sync.Mutex
	pending  *queue.Queue[func()]
	draining bool
	pool     *ants.Pool
	ownsPool bool
	opts     serialOptions
}

// Dispatch enqueues fn. At most one drain runs at a time, so functions run in
// submission order even when the pool has spare workers.
func (s *Serial) Dispatch(fn func()) {
	s.mu.Lock()
	s.pending.Enqueue(fn)
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.mu.Unlock()

	if err := s.pool.Submit(s.drain); err != nil {
		s.mu.Lock()
		s.draining = false
		s.mu.Unlock()
		s.opts.Logger.Error("dispatch rejected", slog.Any("cause", err))
	}
}

func (s *Serial) drain() {
	for {
		s.mu.Lock()
		if s.pending.Empty() {
			s.draining = false
			s.mu.Unlock()
			return
		}
		fn := s.pending.Dequeue()
		s.mu.Unlock()

		s.run(fn)
	}
}

func (s *Serial) run(fn func()) {
	defer func() {
		if cause := recover(); cause != nil {
			s.opts.Logger.Error("dispatched function panicked", slog.Any("cause", cause))
		}
	}()

	fn()
}

// Shutdown releases the dispatcher's private pool. A pool supplied through
// WithPool is left to its owner.
func (s *Serial) Shutdown(ctx context.Context) error {
	if !s.ownsPool {
		return nil
	}

	ch := make(chan struct{})
	go func() {
		s.pool.Release()
		ch <- struct{}{}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ch:
		return nil
	}
}
