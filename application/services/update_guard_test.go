package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateGuard(t *testing.T) {
	t.Run("acquire and release", func(t *testing.T) {
		guard := NewUpdateGuard()

		assert.True(t, guard.Acquire("btc-usd"))
		assert.True(t, guard.IsUpdating("btc-usd"))
		assert.False(t, guard.Acquire("btc-usd"))

		guard.Release("btc-usd")
		assert.False(t, guard.IsUpdating("btc-usd"))
		assert.True(t, guard.Acquire("btc-usd"))
	})

	t.Run("independent ids do not block each other", func(t *testing.T) {
		guard := NewUpdateGuard()

		assert.True(t, guard.Acquire("btc-usd"))
		assert.True(t, guard.Acquire("eth-usd"))
		assert.ElementsMatch(t, []string{"btc-usd", "eth-usd"}, guard.Updating())
	})

	t.Run("release of unknown id is safe", func(t *testing.T) {
		guard := NewUpdateGuard()
		guard.Release("never-acquired")
		assert.Empty(t, guard.Updating())
	})

	t.Run("concurrent acquire admits exactly one", func(t *testing.T) {
		guard := NewUpdateGuard()

		const goroutines = 50
		var wg sync.WaitGroup
		var mu sync.Mutex
		acquired := 0

		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if guard.Acquire("btc-usd") {
					mu.Lock()
					acquired++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, acquired)
	})
}
