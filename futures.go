package futures

import (
	"errors"
	"fmt"
)

var (
	// ErrCompleted is the panic value raised by Complete and Fail when the
	// promise already holds a terminal result.
	ErrCompleted = errors.New("promise already completed")
)

// ErrPanic carries a non-error value recovered from a panicking composition
// mapper.
type ErrPanic struct {
	Cause interface{}
}

func (e ErrPanic) Error() string {
	return fmt.Sprintf("%v", e.Cause)
}

type SuccessFunction[T any] func(value T)
type FailureFunction func(err error)
type CompleteFunction[T any] func(res Result[T])

// Result is the terminal outcome of an asynchronous operation, carrying
// either a value or an error, never both.
type Result[T any] interface {
	Succeeded() bool
	Failed() bool

	// Result returns the success value, or the zero value if Failed.
	Result() T

	// Cause returns the failure error, or nil if Succeeded.
	Cause() error
}

// Future is a read-only view of an eventual outcome.
//
// Registration methods return the future itself so observers can be chained.
type Future[T any] interface {
	// OnSuccess registers fn to run with the value if the future succeeds.
	// fn never runs if the future fails, and never runs more than once.
	OnSuccess(fn SuccessFunction[T]) Future[T]

	// OnFailure registers fn to run with the error if the future fails.
	OnFailure(fn FailureFunction) Future[T]

	// OnComplete registers fn to run exactly once with the terminal result,
	// whichever branch occurred.
	OnComplete(fn CompleteFunction[T]) Future[T]

	// IsComplete reports whether the future holds a terminal result.
	IsComplete() bool
}

// Promise is the write handle for an eventual outcome. It is completed at
// most once; any later completion attempt is rejected.
type Promise[T any] interface {
	// Complete succeeds the promise with value.
	// Panics with ErrCompleted if the promise is already terminal.
	Complete(value T)

	// Fail fails the promise with err.
	// Panics with ErrCompleted if the promise is already terminal.
	Fail(err error)

	// TryComplete succeeds the promise with value and reports whether the
	// transition happened. Returns false, with no side effects, if the
	// promise is already terminal.
	TryComplete(value T) bool

	// TryFail is the failure counterpart of TryComplete.
	TryFail(err error) bool

	// Future returns the read view of this promise. The returned future is
	// the promise itself, not a wrapper.
	Future() Future[T]

	IsComplete() bool
}

// Dispatcher runs observer callbacks on behalf of a promise built with
// NewPromiseOn. Implementations must run functions exactly once and preserve
// submission order for functions submitted from a single goroutine.
type Dispatcher interface {
	Dispatch(fn func())
}

// Succeeded returns a future that already succeeded with value.
// Observers fire immediately at registration.
func Succeeded[T any](value T) Future[T] {
	return &promise[T]{result: succeededResult[T](value)}
}

// Failed returns a future that already failed with err.
func Failed[T any](err error) Future[T] {
	return &promise[T]{result: failedResult[T](err)}
}

// Create builds a fresh pending promise, hands it to init synchronously
// exactly once and returns its future. If init (or anyone it gave the promise
// to) never completes the promise, the future stays pending forever.
func Create[T any](init func(p Promise[T])) Future[T] {
	return CreateOn[T](nil, init)
}

// CreateOn is Create with observer dispatch routed through d.
// A nil d dispatches inline.
func CreateOn[T any](d Dispatcher, init func(p Promise[T])) Future[T] {
	p := newPromise[T](d)
	init(p)
	return p.Future()
}
