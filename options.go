// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// options configures ring creation.
type options struct {
	singleProducer bool
	singleConsumer bool
	watermark      int // 0 means "disabled" (watermark = capacity)
	capacity       int
}

// Builder configures and creates a [Ring] with a fluent API.
//
// Example:
//
//	// SP+SC ring, no watermark
//	r, err := ring.Build(ring.New(1024).SingleProducer().SingleConsumer())
//
//	// MPMC ring (default) with a watermark at 3/4 capacity
//	r, err := ring.Build(ring.New(4096).Watermark(3072))
type Builder struct {
	opts options
}

// New creates a ring builder for the given capacity.
//
// Capacity is NOT rounded: it must be an exact power of two (spec.md treats
// a non-power-of-two count as a precondition violation). [Build] returns
// [ErrInvalid] if it is not. This is a deliberate departure from the
// teacher's own Builder, which silently rounds — see SPEC_FULL.md §6.
func New(capacity int) *Builder {
	return &Builder{opts: options{capacity: capacity}}
}

// SingleProducer declares that only one goroutine will enqueue.
// Enables the wait-free single-producer reservation path.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will dequeue.
// Enables the wait-free single-consumer reservation path.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Watermark seeds the initial watermark (see [Ring.SetWatermark]).
// 0 (the default if Watermark is never called) disables it.
func (b *Builder) Watermark(count int) *Builder {
	b.opts.watermark = count
	return b
}

// Build creates the [Ring].
//
// Returns [ErrInvalid] if capacity is not a power of two ≥ 2, or if a
// watermark was configured that is negative or ≥ capacity.
func Build(b *Builder) (*Ring, error) {
	return newRing(b.opts)
}

// NewRing is a direct convenience constructor equivalent to
// Build(New(capacity).<flags>), for callers who already know their flags
// and don't need the fluent form. It mirrors original_source's
// ring_create(count, flags) shape.
func NewRing(capacity int, flags ...Flag) (*Ring, error) {
	b := New(capacity)
	for _, f := range flags {
		switch f {
		case FlagSingleProducer:
			b.SingleProducer()
		case FlagSingleConsumer:
			b.SingleConsumer()
		}
	}
	return Build(b)
}

// Flag selects a ring concurrency constraint for [NewRing].
type Flag int

const (
	// FlagSingleProducer declares a single enqueueing goroutine.
	FlagSingleProducer Flag = iota + 1
	// FlagSingleConsumer declares a single dequeueing goroutine.
	FlagSingleConsumer
)

// isPow2 reports whether n is a power of two.
func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// pad is cache line padding to prevent false sharing between the
// producer-side and consumer-side cursors.
type pad [64]byte
