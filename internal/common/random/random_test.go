package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededSourceIsRepeatable(t *testing.T) {
	a := New(&Config{Seed: 42})
	b := New(&Config{Seed: 42})

	for range 20 {
		assert.Equal(t, a.Intn(10), b.Intn(10))
	}
}

func TestIntnBounds(t *testing.T) {
	r := New(nil)

	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, 0, r.Intn(-3))
	for range 100 {
		n := r.Intn(3)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 3)
	}
}
