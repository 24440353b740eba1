// Package reactive provides observable state cells and derived cells that
// recompute from the latest value of every input.
//
// Cells are owned by a single goroutine. Nothing here locks; hosts deliver
// asynchronous results back to the owning goroutine before touching a cell.
package reactive

// Value is the read-only face of a cell handed to view code.
type Value[T any] interface {
	Get() T
	Subscribe(fn func(T)) *Subscription
}

// Source is anything a derived cell can depend on.
type Source interface {
	Watch(fn func()) *Subscription
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Cell holds a current value and notifies subscribers on every Set.
type Cell[T any] struct {
	value T
	subs  []subscriber[T]
	next  uint64
}

// NewCell returns a cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

func (c *Cell[T]) Get() T { return c.value }

// Set stores v and notifies subscribers in subscription order.
func (c *Cell[T]) Set(v T) {
	c.value = v
	// snapshot so a subscriber releasing itself mid-notify is safe
	subs := make([]subscriber[T], len(c.subs))
	copy(subs, c.subs)
	for _, s := range subs {
		if c.has(s.id) {
			s.fn(v)
		}
	}
}

// Update sets the cell to fn(current).
func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.value))
}

// Subscribe calls fn with the current value now and with every later value.
func (c *Cell[T]) Subscribe(fn func(T)) *Subscription {
	s := c.add(fn)
	fn(c.value)
	return s
}

// Watch calls fn on every later change only.
func (c *Cell[T]) Watch(fn func()) *Subscription {
	return c.add(func(T) { fn() })
}

// Subscribers reports how many live subscriptions the cell has.
func (c *Cell[T]) Subscribers() int { return len(c.subs) }

func (c *Cell[T]) add(fn func(T)) *Subscription {
	c.next++
	id := c.next
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})
	return newSubscription(func() { c.remove(id) })
}

func (c *Cell[T]) remove(id uint64) {
	for i, s := range c.subs {
		if s.id == id {
			c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
			return
		}
	}
}

func (c *Cell[T]) has(id uint64) bool {
	for _, s := range c.subs {
		if s.id == id {
			return true
		}
	}
	return false
}
