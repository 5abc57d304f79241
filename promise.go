package futures

import (
	"sync"
)

// NewPromise returns a pending promise whose observers run inline, on the
// goroutine that completes it or that registers against it once terminal.
func NewPromise[T any]() Promise[T] {
	return newPromise[T](nil)
}

// NewPromiseOn returns a pending promise whose observers run through d.
func NewPromiseOn[T any](d Dispatcher) Promise[T] {
	return newPromise[T](d)
}

func newPromise[T any](d Dispatcher) *promise[T] {
	return &promise[T]{dispatcher: d}
}

// promise implements both Promise and Future over a single state cell, so
// Future() can return the promise itself.
type promise[T any] struct {
	mu         sync.Mutex
	result     *asyncResult[T]
	listeners  []CompleteFunction[T]
	dispatcher Dispatcher
}

func (p *promise[T]) Complete(value T) {
	if !p.TryComplete(value) {
		panic(ErrCompleted)
	}
}

func (p *promise[T]) Fail(err error) {
	if !p.TryFail(err) {
		panic(ErrCompleted)
	}
}

func (p *promise[T]) TryComplete(value T) bool {
	return p.settle(succeededResult[T](value))
}

func (p *promise[T]) TryFail(err error) bool {
	return p.settle(failedResult[T](err))
}

// settle performs the single PENDING -> terminal transition. The listener
// list is detached under the lock and drained outside it, in registration
// order, so observers may register new observers or complete other promises
// without deadlocking.
func (p *promise[T]) settle(res *asyncResult[T]) bool {
	p.mu.Lock()
	if p.result != nil {
		p.mu.Unlock()
		return false
	}
	p.result = res
	listeners := p.listeners
	p.listeners = nil
	p.mu.Unlock()

	for _, fn := range listeners {
		p.dispatch(fn, res)
	}
	return true
}

func (p *promise[T]) dispatch(fn CompleteFunction[T], res Result[T]) {
	if p.dispatcher == nil {
		fn(res)
		return
	}
	p.dispatcher.Dispatch(func() {
		fn(res)
	})
}

func (p *promise[T]) Future() Future[T] {
	return p
}

func (p *promise[T]) IsComplete() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result != nil
}

func (p *promise[T]) OnSuccess(fn SuccessFunction[T]) Future[T] {
	return p.OnComplete(func(res Result[T]) {
		if res.Succeeded() {
			fn(res.Result())
		}
	})
}

func (p *promise[T]) OnFailure(fn FailureFunction) Future[T] {
	return p.OnComplete(func(res Result[T]) {
		if res.Failed() {
			fn(res.Cause())
		}
	})
}

func (p *promise[T]) OnComplete(fn CompleteFunction[T]) Future[T] {
	p.mu.Lock()
	if p.result == nil {
		p.listeners = append(p.listeners, fn)
		p.mu.Unlock()
		return p
	}
	res := p.result
	p.mu.Unlock()

	// already terminal, fire at registration
	p.dispatch(fn, res)
	return p
}
