package lexicon

import (
	"testing"

	"github.com/matryer/is"
)

func TestRandomPool(t *testing.T) {
	is := is.New(t)
	pool := RandomPool(10)
	is.Equal(pool.Len(), 10)
	for _, letter := range pool.String() {
		is.True(letter >= 'a' && letter <= 'z')
	}
}

func TestPoolContains(t *testing.T) {
	is := is.New(t)
	pool := PoolFromString("eatpotato")

	is.True(pool.Contains('t'))
	is.True(pool.Contains('e'))
	is.True(!pool.Contains('z'))
}

func TestPoolCount(t *testing.T) {
	is := is.New(t)
	pool := PoolFromString("eatpotato")

	is.Equal(pool.Count('t'), 3)
	is.Equal(pool.Count('a'), 2)
	is.Equal(pool.Count('o'), 2)
	is.Equal(pool.Count('e'), 1)
	is.Equal(pool.Count('z'), 0)
}
