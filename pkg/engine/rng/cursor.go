package rng

import (
	"github.com/zyedidia/generic/queue"

	"cavegen/pkg/engine/world"
)

// Cursor cycles through a fixed sequence of points forever.
// Draw returns the head and moves it to the back.
type Cursor struct {
	items *queue.Queue[world.Point]
	size  int
}

// NewCursor creates a cursor that yields points in the given order
func NewCursor(points []world.Point) *Cursor {
	q := queue.New[world.Point]()
	for _, p := range points {
		q.Enqueue(p)
	}
	return &Cursor{items: q, size: len(points)}
}

// Len returns the number of distinct points in the cycle
func (c *Cursor) Len() int {
	return c.size
}

// Draw returns the next point in the cycle. Panics on an empty cursor.
func (c *Cursor) Draw() world.Point {
	if c.size == 0 || c.items.Empty() {
		panic("rng: Draw on empty cursor")
	}
	p := c.items.Dequeue()
	c.items.Enqueue(p)
	return p
}

// order returns one full cycle starting at the current head without advancing the cursor
func (c *Cursor) order() []world.Point {
	order := make([]world.Point, 0, c.size)
	c.items.Each(func(p world.Point) {
		order = append(order, p)
	})
	return order
}
