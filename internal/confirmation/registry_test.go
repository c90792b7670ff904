package confirmation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutResolve(t *testing.T) {
	r := NewRegistry[string]()

	token := r.Put("hola")
	require.NotEmpty(t, token)
	assert.Equal(t, 1, r.Len())

	v, ok := r.Resolve(token)
	require.True(t, ok)
	assert.Equal(t, "hola", v)
	assert.Equal(t, 0, r.Len())
}

func TestResolveExactlyOnce(t *testing.T) {
	r := NewRegistry[int]()

	token := r.Put(7)

	_, ok := r.Resolve(token)
	require.True(t, ok)

	_, ok = r.Resolve(token)
	assert.False(t, ok, "second resolve of the same token must miss")
}

func TestResolveUnknownToken(t *testing.T) {
	r := NewRegistry[int]()

	_, ok := r.Resolve("no-such-token")
	assert.False(t, ok)
}

func TestTokensAreIndependent(t *testing.T) {
	r := NewRegistry[int]()

	t1 := r.Put(1)
	t2 := r.Put(2)
	require.NotEqual(t, t1, t2)

	v, ok := r.Resolve(t2)
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = r.Resolve(t1)
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestConcurrentResolveSingleWinner(t *testing.T) {
	r := NewRegistry[int]()
	token := r.Put(42)

	const workers = 16
	var wg sync.WaitGroup
	wins := make(chan int, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := r.Resolve(token); ok {
				wins <- 1
			}
		}()
	}
	wg.Wait()
	close(wins)

	total := 0
	for w := range wins {
		total += w
	}
	assert.Equal(t, 1, total)
}
