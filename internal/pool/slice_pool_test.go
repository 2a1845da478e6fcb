package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	c byte
	n uint8
}

func TestSlicePool_Get(t *testing.T) {
	p := NewSlicePool[pair](0)

	t.Run("returns slice with requested length", func(t *testing.T) {
		slice, release := p.Get(100)
		defer release()

		require.Len(t, slice, 100)
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("grows when pooled capacity is insufficient", func(t *testing.T) {
		_, release := p.Get(10)
		release()

		slice, release := p.Get(1000)
		defer release()

		require.Len(t, slice, 1000)
	})

	t.Run("shrinks length for smaller requests", func(t *testing.T) {
		_, release := p.Get(64)
		release()

		slice, release := p.Get(3)
		defer release()

		require.Len(t, slice, 3)
	})

	t.Run("zero length", func(t *testing.T) {
		slice, release := p.Get(0)
		defer release()

		require.Empty(t, slice)
	})
}

func TestSlicePool_MaxRetain(t *testing.T) {
	p := NewSlicePool[int](16)

	big, release := p.Get(1024)
	big[0] = 7
	release()

	// An oversized slice must never come back out of the pool.
	for range 8 {
		slice, release := p.Get(1)
		require.LessOrEqual(t, cap(slice), 16)
		release()
	}
}

func TestSlicePool_ConcurrentAccess(t *testing.T) {
	p := NewSlicePool[pair](0)

	var wg sync.WaitGroup
	for g := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				size := (g*31+i)%128 + 1
				slice, release := p.Get(size)
				for j := range slice {
					slice[j] = pair{c: 'a' + byte(g%26), n: uint8(j)}
				}
				assert.Len(t, slice, size)
				release()
			}
		}()
	}
	wg.Wait()
}
