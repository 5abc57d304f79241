package main

import (
	"context"
	"errors"

	"github.com/completable/futures"
	"github.com/completable/futures/dispatch"
)

type Person struct {
	Name string
}

func main() {

	// complete a promise, observe it through its future
	p := futures.NewPromise[Person]()

	p.Future().OnSuccess(func(val Person) {
		println(val.Name)
	})

	p.Complete(Person{Name: "sam"})

	// chain a lookup onto an already resolved future
	f := futures.Compose(futures.Succeeded("sam"), func(name string) futures.Future[Person] {
		return futures.Succeeded(Person{Name: name})
	})

	f.OnComplete(func(res futures.Result[Person]) {
		if res.Succeeded() {
			println(res.Result().Name)
		} else {
			println(res.Cause().Error())
		}
	})

	// recover a failure to a fallback value
	recovered := futures.Recover(futures.Failed[string](errors.New("lookup failed")), func(err error) futures.Future[string] {
		return futures.Succeeded("fallback")
	})

	recovered.OnSuccess(func(val string) {
		println(val)
	})

	// run observers off the completing goroutine
	d := dispatch.NewSerial()
	defer d.Shutdown(context.Background())

	done := make(chan struct{})
	p2 := futures.NewPromiseOn[string](d)
	p2.Future().OnSuccess(func(val string) {
		println(val)
		close(done)
	})

	p2.Complete("dispatched")
	<-done
}
