package futures

type asyncResult[T any] struct {
	value  T
	err    error
	failed bool
}

func succeededResult[T any](value T) *asyncResult[T] {
	return &asyncResult[T]{value: value}
}

func failedResult[T any](err error) *asyncResult[T] {
	return &asyncResult[T]{err: err, failed: true}
}

func (r *asyncResult[T]) Succeeded() bool {
	return !r.failed
}

func (r *asyncResult[T]) Failed() bool {
	return r.failed
}

func (r *asyncResult[T]) Result() T {
	return r.value
}

func (r *asyncResult[T]) Cause() error {
	return r.err
}
