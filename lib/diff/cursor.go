package diff

// Cursor walks an ordered sequence one element at a time. Exhaustion is an
// observable state, not a sentinel value or panic.
type Cursor[T any] struct {
	items []T
	pos   int
}

func NewCursor[T any](items []T) *Cursor[T] {
	return &Cursor[T]{items: items}
}

func (c *Cursor[T]) Valid() bool {
	return c.pos < len(c.items)
}

func (c *Cursor[T]) Current() T {
	return c.items[c.pos]
}

func (c *Cursor[T]) Advance() {
	c.pos += 1
}
