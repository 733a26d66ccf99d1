// Package arena is an index-addressed slot pool. Values live in a single
// slice and are referred to by generation-stamped handles, so a handle kept
// past the release of its slot can be told apart from the slot's next tenant.
package arena

import "github.com/pkg/errors"

// ErrExhausted is returned by Alloc when the arena is at its slot limit.
var ErrExhausted = errors.New("arena: no free slots left")

// ErrDoubleRelease is returned when a slot that is already free is released again.
var ErrDoubleRelease = errors.New("arena: slot released twice")

// ErrStale is returned when a handle refers to a slot that has since been reused.
var ErrStale = errors.New("arena: stale handle")

// Handle addresses a slot. The zero Handle is Nil.
type Handle struct {
	idx uint32 // slot index + 1
	gen uint32
}

// Nil is the handle that addresses nothing.
var Nil Handle

// IsNil reports whether h addresses nothing.
func (h Handle) IsNil() bool { return h.idx == 0 }

// Index returns a number identifying the slot, unique among live handles of one arena.
func (h Handle) Index() int { return int(h.idx) }

type slot[T any] struct {
	val  T
	gen  uint32
	live bool
}

// Arena is a pool of T values addressed by Handle. It is not safe for
// concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	limit int
	live  int
}

// New creates an arena holding at most limit live values; limit <= 0 means no limit.
func New[T any](limit int) *Arena[T] {
	return &Arena[T]{limit: limit}
}

// Alloc stores v in a free slot and returns its handle.
func (a *Arena[T]) Alloc(v T) (Handle, error) {
	if a.limit > 0 && a.live >= a.limit {
		return Nil, errors.Wrapf(ErrExhausted, "limit of %v slots", a.limit)
	}
	var i uint32
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		i = uint32(len(a.slots) - 1)
	}
	s := &a.slots[i]
	s.val = v
	s.gen++
	s.live = true
	a.live++
	return Handle{idx: i + 1, gen: s.gen}, nil
}

// lookup returns the slot h addresses, or nil if h is Nil or out of range.
func (a *Arena[T]) lookup(h Handle) *slot[T] {
	if h.IsNil() || int(h.idx) > len(a.slots) {
		return nil
	}
	return &a.slots[h.idx-1]
}

// Get returns a pointer to the value h addresses, or nil if h is Nil,
// released or stale. The pointer is invalidated by the next Alloc.
func (a *Arena[T]) Get(h Handle) *T {
	s := a.lookup(h)
	if s == nil || !s.live || s.gen != h.gen {
		return nil
	}
	return &s.val
}

// MustGet is Get for handles the caller knows to be live.
func (a *Arena[T]) MustGet(h Handle) *T {
	v := a.Get(h)
	if v == nil {
		panic(errors.Wrapf(ErrStale, "slot %v generation %v", h.idx, h.gen))
	}
	return v
}

// Valid reports whether h addresses a live value.
func (a *Arena[T]) Valid(h Handle) bool {
	return a.Get(h) != nil
}

// Release frees the slot h addresses. The stored value is zeroed so the
// arena holds no references on behalf of released slots.
func (a *Arena[T]) Release(h Handle) error {
	s := a.lookup(h)
	switch {
	case s == nil:
		return errors.Wrap(ErrStale, "release of nil or foreign handle")
	case s.gen != h.gen:
		return errors.Wrapf(ErrStale, "slot %v is at generation %v, handle has %v", h.idx, s.gen, h.gen)
	case !s.live:
		return errors.Wrapf(ErrDoubleRelease, "slot %v", h.idx)
	}
	var zero T
	s.val = zero
	s.live = false
	a.free = append(a.free, h.idx-1)
	a.live--
	return nil
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int { return a.live }

// Limit returns the slot limit the arena was created with.
func (a *Arena[T]) Limit() int { return a.limit }

// Reset releases every live slot at once. Generations survive, so handles
// taken before the reset stay stale afterwards.
func (a *Arena[T]) Reset() {
	var zero T
	a.free = a.free[:0]
	for i := range a.slots {
		a.slots[i].val = zero
		a.slots[i].live = false
		a.free = append(a.free, uint32(i))
	}
	a.live = 0
}
