package reactive

// Subscription is a handle on one registered callback.
type Subscription struct {
	release func()
}

func newSubscription(release func()) *Subscription {
	return &Subscription{release: release}
}

// Release unregisters the callback. Safe to call more than once.
func (s *Subscription) Release() {
	if s == nil || s.release == nil {
		return
	}
	s.release()
	s.release = nil
}

// Bag collects subscriptions owned by one component so they can be released together.
type Bag struct {
	subs []*Subscription
}

// Add keeps subs until Dispose.
func (b *Bag) Add(subs ...*Subscription) {
	b.subs = append(b.subs, subs...)
}

// Len reports how many subscriptions the bag holds.
func (b *Bag) Len() int { return len(b.subs) }

// Dispose releases everything in the bag, newest first.
func (b *Bag) Dispose() {
	for i := len(b.subs) - 1; i >= 0; i-- {
		b.subs[i].Release()
	}
	b.subs = nil
}

// Derive keeps out equal to compute() over the latest values of inputs.
// compute runs once immediately and again after any input changes.
// The returned subscriptions stop the recomputation when released.
func Derive[T any](out *Cell[T], compute func() T, inputs ...Source) []*Subscription {
	out.Set(compute())
	subs := make([]*Subscription, 0, len(inputs))
	for _, in := range inputs {
		subs = append(subs, in.Watch(func() { out.Set(compute()) }))
	}
	return subs
}
