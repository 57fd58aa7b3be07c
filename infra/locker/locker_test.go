package locker

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocker(t *testing.T) {
	l := New()

	assert.True(t, l.TryLock("a"))
	assert.False(t, l.TryLock("a"))
	assert.True(t, l.TryLock("b"))

	l.Unlock("a")
	assert.True(t, l.TryLock("a"))
	assert.False(t, l.TryLock("b"))
}

func TestLocker_OneWinner(t *testing.T) {
	l := New()
	var won int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.TryLock("same") {
				atomic.AddInt32(&won, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), won)
}
