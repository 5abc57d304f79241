package futures

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type Person struct {
	Name string
}

func TestSucceeded(t *testing.T) {
	value := &Person{Name: "sam"}
	ft := Succeeded(value)

	succeeded := false
	ft.OnSuccess(func(data *Person) {
		succeeded = true
		require.Same(t, value, data)
	})

	completed := false
	ft.OnComplete(func(res Result[*Person]) {
		completed = true
		require.True(t, res.Succeeded())
		require.False(t, res.Failed())
		require.Same(t, value, res.Result())
		require.NoError(t, res.Cause())
	})

	ft.OnFailure(func(err error) {
		t.Fatal("onFailure must not run for a succeeded future")
	})

	require.True(t, succeeded)
	require.True(t, completed)
	require.True(t, ft.IsComplete())
}

func TestFailed(t *testing.T) {
	cause := errors.New("something went wrong")
	ft := Failed[*Person](cause)

	ft.OnSuccess(func(data *Person) {
		t.Fatal("onSuccess must not run for a failed future")
	})

	completed := false
	ft.OnComplete(func(res Result[*Person]) {
		completed = true
		require.False(t, res.Succeeded())
		require.True(t, res.Failed())
		require.Nil(t, res.Result())
		require.Same(t, cause, res.Cause())
	})

	failed := false
	ft.OnFailure(func(err error) {
		failed = true
		require.Same(t, cause, err)
	})

	require.True(t, completed)
	require.True(t, failed)
	require.True(t, ft.IsComplete())
}

func TestCreate(t *testing.T) {
	t.Run("initializer completes the promise", func(t *testing.T) {
		var order []string

		ft := Create(func(p Promise[string]) {
			p.Complete("done")
			order = append(order, "initializer")
		})

		ft.OnSuccess(func(val string) {
			order = append(order, "observer")
		})

		// observers attach after the initializer returns, so they fire second
		// even though the promise completed first
		require.Equal(t, []string{"initializer", "observer"}, order)
	})

	t.Run("initializer never completes the promise", func(t *testing.T) {
		ran := false
		ft := Create(func(p Promise[string]) {
			ran = true
		})
		require.True(t, ran)

		ft.OnSuccess(func(val string) {
			t.Fatal("onSuccess must not run for a pending future")
		})
		ft.OnFailure(func(err error) {
			t.Fatal("onFailure must not run for a pending future")
		})

		require.False(t, ft.IsComplete())
	})
}
