// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/atomix"

// QuotaExceededBit marks bit 31 of a burst-enqueue return value: the burst
// brought occupancy up to or past the watermark. Mask with [SzMask] to
// recover the accepted count.
//
// This assumes a 64-bit int, as the teacher's own 128-bit cursor arithmetic
// does: on a 32-bit int the constant does not fit in int, so OR-ing it into
// the returned count does not compile.
const QuotaExceededBit = 1 << 31

// SzMask recovers the accepted count from a burst-enqueue return value,
// stripping [QuotaExceededBit]. This bounds usable burst sizes to SzMask
// (0x0FFFFFFF), a constraint inherited from the return-value encoding.
const SzMask = 0x0FFFFFFF

// Ring is a bounded FIFO of pointer-sized handles shared by concurrent
// producers and consumers. See the package doc for the concurrency model.
//
// The zero Ring is not usable; construct one with [Build] or [NewRing].
type Ring struct {
	_ pad
	pHead atomix.Uint32 // producer reservation cursor
	_ pad
	pTail atomix.Uint32 // producer commit cursor
	_ pad
	cHead atomix.Uint32 // consumer reservation cursor
	_ pad
	cTail atomix.Uint32 // consumer commit cursor
	_ pad
	watermark atomix.Uint32 // absolute occupancy threshold; plain/relaxed access is a benign race

	mask           uint32
	capacity       uint32
	singleProducer bool
	singleConsumer bool
	slots          []uintptr
}

func newRing(opts options) (*Ring, error) {
	if opts.capacity < 2 || !isPow2(opts.capacity) {
		return nil, ErrInvalid
	}
	n := uint32(opts.capacity)

	r := &Ring{
		mask:           n - 1,
		capacity:       n,
		singleProducer: opts.singleProducer,
		singleConsumer: opts.singleConsumer,
		slots:          make([]uintptr, n),
	}
	r.watermark.StoreRelaxed(n) // disabled

	if opts.watermark != 0 {
		if err := r.SetWatermark(opts.watermark); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Cap returns the ring's physical capacity N. Accessible capacity — the
// maximum number of elements ever actually held — is N−1: one slot
// disambiguates full from empty under the two-cursor scheme.
func (r *Ring) Cap() int {
	return int(r.capacity)
}

// SetWatermark sets the occupancy threshold to count, or disables it
// (count == 0). Returns [ErrInvalid] if count >= Cap().
//
// Safe to call concurrently with enqueues: the watermark is read with a
// plain relaxed load, so a racing enqueue may observe the old or the new
// value — both are individually safe, matching spec.md §5's "Watermark
// races" note.
func (r *Ring) SetWatermark(count int) error {
	if count < 0 || count >= int(r.capacity) {
		return ErrInvalid
	}
	if count == 0 {
		count = int(r.capacity)
	}
	r.watermark.StoreRelaxed(uint32(count))
	return nil
}

// Empty reports whether the ring is observably empty. Advisory: may be
// stale by the time the caller acts on it.
func (r *Ring) Empty() bool {
	return r.pTail.LoadRelaxed() == r.cTail.LoadRelaxed()
}

// Full reports whether the ring is observably full. Advisory.
func (r *Ring) Full() bool {
	return (r.cTail.LoadRelaxed()-r.pTail.LoadRelaxed()-1)&r.mask == 0
}

// Count returns the observable occupancy. Advisory.
func (r *Ring) Count() int {
	return int((r.pTail.LoadRelaxed() - r.cTail.LoadRelaxed()) & r.mask)
}

// FreeCount returns the observable free-slot count (accessible capacity
// minus occupancy). Advisory.
func (r *Ring) FreeCount() int {
	return int((r.cTail.LoadRelaxed() - r.pTail.LoadRelaxed() - 1) & r.mask)
}
