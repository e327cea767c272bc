package keylock_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"logistics/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_SerializesSameKey(t *testing.T) {
	l := keylock.New()

	var (
		inside  atomic.Int32
		maxSeen atomic.Int32
		wg      sync.WaitGroup
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock("stake:alice")
			defer unlock()

			n := inside.Add(1)
			if n > maxSeen.Load() {
				maxSeen.Store(n)
			}
			time.Sleep(100 * time.Microsecond)
			inside.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
	assert.Zero(t, l.Len())
}

func TestLocker_DifferentKeysDoNotBlock(t *testing.T) {
	l := keylock.New()
	unlockA := l.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := l.Lock("b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestLocker_MultipleKeysAndDuplicates(t *testing.T) {
	l := keylock.New()

	unlock := l.Lock("b", "a", "b")
	require.Equal(t, 2, l.Len())

	unlock()
	unlock()
	assert.Zero(t, l.Len())
}

func TestLocker_OverlappingSetsDoNotDeadlock(t *testing.T) {
	l := keylock.New()

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var unlock func()
			if i%2 == 0 {
				unlock = l.Lock("x", "y")
			} else {
				unlock = l.Lock("y", "x")
			}
			unlock()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("deadlock")
	}
}
