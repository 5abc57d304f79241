package futures

// Compose chains f through mapper: once f succeeds, mapper runs exactly once
// with the value and the returned future's eventual outcome becomes the
// outcome of the future Compose returned, flattening the nesting. If f fails,
// the error propagates untouched and mapper never runs.
//
// Compose never blocks. If f is already terminal the mapper runs
// synchronously, inside the Compose call.
func Compose[T, U any](f Future[T], mapper func(value T) Future[U]) Future[U] {
	return ComposeWith(f, mapper, Failed[U])
}

// ComposeWith is Compose with a mapper for each branch: onSuccess runs when f
// succeeds, onFailure when it fails. Exactly one of them runs, exactly once,
// and the future it returns drives the outcome of the returned future.
//
// A mapper that panics fails the returned future instead: with the recovered
// error, or with ErrPanic wrapping a non-error panic value.
func ComposeWith[T, U any](f Future[T], onSuccess func(value T) Future[U], onFailure func(err error) Future[U]) Future[U] {
	next := newPromise[U](dispatcherOf(f))
	f.OnComplete(func(res Result[T]) {
		if res.Succeeded() {
			forward(next, apply(onSuccess, res.Result()))
		} else {
			forward(next, apply(onFailure, res.Cause()))
		}
	})
	return next.Future()
}

// Recover passes a succeeded f through unchanged and maps a failed f through
// onFailure, whose returned future may succeed (recovery) or fail again
// (error translation).
func Recover[T any](f Future[T], onFailure func(err error) Future[T]) Future[T] {
	return ComposeWith(f, Succeeded[T], onFailure)
}

// apply runs a mapper, turning a panic into a failed future.
func apply[In, U any](mapper func(In) Future[U], in In) (out Future[U]) {
	defer func() {
		if cause := recover(); cause != nil {
			if err, ok := cause.(error); ok {
				out = Failed[U](err)
				return
			}
			out = Failed[U](ErrPanic{Cause: cause})
		}
	}()
	return mapper(in)
}

// forward mirrors the outcome of from into next. next is owned by the
// composition machinery and from settles at most once, so the completing
// calls cannot double-fire.
func forward[U any](next *promise[U], from Future[U]) {
	from.OnComplete(func(res Result[U]) {
		if res.Succeeded() {
			next.Complete(res.Result())
		} else {
			next.Fail(res.Cause())
		}
	})
}

// dispatcherOf keeps a composed future on the same dispatcher as its
// upstream.
func dispatcherOf[T any](f Future[T]) Dispatcher {
	if p, ok := f.(*promise[T]); ok {
		return p.dispatcher
	}
	return nil
}
