package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashMap(t *testing.T) {
	m := NewHashMap[int](WithCapacity(2))

	keys := make([]*StateSet, 0, 20)
	for i := uint(0); i < 20; i++ {
		keys = append(keys, NewStateSet(newBits(32, i, i+1)))
	}
	for i, k := range keys {
		m.Set(k, i)
	}
	assert.Len(t, m.order, 20)
	assert.Greater(t, len(m.buckets), 2)

	for i := uint(0); i < 20; i++ {
		v, ok := m.Get(NewStateSet(newBits(64, i+1, i)))
		assert.True(t, ok)
		assert.Equal(t, int(i), v)
	}

	_, ok := m.Get(NewStateSet(newBits(8, 0, 2)))
	assert.False(t, ok)

	m.Set(NewStateSet(newBits(8, 0, 1)), 100)
	assert.Len(t, m.order, 20)
	v, _ := m.Get(keys[0])
	assert.Equal(t, 100, v)
}
