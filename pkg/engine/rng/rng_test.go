package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cavegen/pkg/engine/world"
)

func TestStreamIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.NextInt(0, 100), b.NextInt(0, 100))
		require.Equal(t, a.NextUnit(), b.NextUnit())
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestNextIntRange(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		v := s.NextInt(3, 8)
		require.GreaterOrEqual(t, v, 3)
		require.Less(t, v, 8)
	}
	assert.Panics(t, func() { s.NextInt(5, 5) })
}

func TestNextUnitRange(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		v := s.NextUnit()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func points(n int) []world.Point {
	ps := make([]world.Point, n)
	for i := range ps {
		ps[i] = world.Point{X: i, Y: 0}
	}
	return ps
}

func TestShuffleIsPermutation(t *testing.T) {
	in := points(20)
	c := New(99).Shuffle(in)
	require.Equal(t, 20, c.Len())
	assert.ElementsMatch(t, in, c.order())
	// input untouched
	for i, p := range in {
		assert.Equal(t, i, p.X)
	}
}

func TestShuffleSameSeedSameOrder(t *testing.T) {
	a := New(5).Shuffle(points(30)).order()
	b := New(5).Shuffle(points(30)).order()
	assert.Equal(t, a, b)
}

func TestCursorCycles(t *testing.T) {
	c := NewCursor([]world.Point{{1, 1}, {2, 2}, {3, 3}})
	var drawn []world.Point
	for i := 0; i < 7; i++ {
		drawn = append(drawn, c.Draw())
	}
	assert.Equal(t, []world.Point{{1, 1}, {2, 2}, {3, 3}, {1, 1}, {2, 2}, {3, 3}, {1, 1}}, drawn)
	assert.Equal(t, []world.Point{{2, 2}, {3, 3}, {1, 1}}, c.order())
}

func TestCursorEmptyPanics(t *testing.T) {
	c := NewCursor(nil)
	assert.Equal(t, 0, c.Len())
	assert.Panics(t, func() { c.Draw() })
}

func TestShuffleSingleElement(t *testing.T) {
	c := New(3).Shuffle([]world.Point{{4, 4}})
	assert.Equal(t, world.Point{X: 4, Y: 4}, c.Draw())
	assert.Equal(t, world.Point{X: 4, Y: 4}, c.Draw())
}
