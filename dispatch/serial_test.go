package dispatch

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/require"
)

func TestSerial_Dispatch(t *testing.T) {
	s := NewSerial()
	defer s.Shutdown(context.Background())

	const n = 100

	var got []int
	done := make(chan struct{})

	for i := 0; i < n; i++ {
		i := i
		s.Dispatch(func() {
			got = append(got, i)
			if i == n-1 {
				close(done)
			}
		})
	}
	<-done

	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	require.Equal(t, want, got)
}

func TestSerial_RecoversPanic(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewSerial(WithLogger(logger))
	defer s.Shutdown(context.Background())

	done := make(chan struct{})

	s.Dispatch(func() {
		panic("boom")
	})
	s.Dispatch(func() {
		close(done)
	})

	// the panic must not kill the drain loop
	<-done
}

func TestSerial_SharedPool(t *testing.T) {
	pool, err := ants.NewPool(2)
	require.NoError(t, err)
	defer pool.Release()

	s1 := NewSerial(WithPool(pool))
	s2 := NewSerial(WithPool(pool))

	done1 := make(chan struct{})
	done2 := make(chan struct{})

	s1.Dispatch(func() { close(done1) })
	s2.Dispatch(func() { close(done2) })

	<-done1
	<-done2

	// a shared pool is left alone
	require.NoError(t, s1.Shutdown(context.Background()))
	require.False(t, pool.IsClosed())
}

func TestSerial_Shutdown(t *testing.T) {
	s := NewSerial()

	done := make(chan struct{})
	s.Dispatch(func() {
		close(done)
	})
	<-done

	require.NoError(t, s.Shutdown(context.Background()))
}
