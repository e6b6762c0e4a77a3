// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/spin"

// EnqueueBulk reserves and writes exactly len(values) slots, or none.
// Returns:
//   - nil on success within the watermark
//   - [ErrQuotaExceeded] on success, but occupancy has now reached the
//     watermark (the values WERE enqueued)
//   - [ErrNoBufs] if fewer than len(values) slots are free
//
// len(values) == 0 always returns nil without touching any cursor.
func (r *Ring) EnqueueBulk(values []uintptr) error {
	n, quotaExceeded, wouldBlock := r.doEnqueue(values, false)
	_ = n
	if wouldBlock {
		return ErrNoBufs
	}
	if quotaExceeded {
		return ErrQuotaExceeded
	}
	return nil
}

// EnqueueBurst reserves and writes up to len(values) slots, whichever fits.
// Returns the count actually enqueued (0 is a valid outcome), OR-ed with
// [QuotaExceededBit] if occupancy has now reached the watermark. Mask with
// [SzMask] to recover the plain count.
func (r *Ring) EnqueueBurst(values []uintptr) int {
	n, quotaExceeded, _ := r.doEnqueue(values, true)
	if quotaExceeded {
		return int(n) | QuotaExceededBit
	}
	return int(n)
}

// Enqueue adds a single handle (fixed demand). Dispatches to the
// single- or multi-producer reservation path according to the ring's
// construction flags. Returns [ErrNoBufs] if the ring is full, or
// [ErrQuotaExceeded] if the enqueue succeeded but crossed the watermark.
func (r *Ring) Enqueue(v uintptr) error {
	var buf [1]uintptr
	buf[0] = v
	return r.EnqueueBulk(buf[:])
}

// doEnqueue implements both the fixed- and variable-demand producer
// protocol from spec.md §4.2. wouldBlock is only ever true for
// fixed-demand, insufficient-space calls.
func (r *Ring) doEnqueue(values []uintptr, variable bool) (n uint32, quotaExceeded bool, wouldBlock bool) {
	max := uint32(len(values))
	if max == 0 {
		return 0, false, false
	}

	var head, free uint32

	if r.singleProducer {
		// Wait-free: no concurrent producer can race this reservation.
		head = r.pHead.LoadRelaxed()
		ct := r.cTail.LoadAcquire()
		free = r.mask + ct - head
		n = max
		if n > free {
			if !variable {
				return 0, false, true
			}
			if free == 0 {
				return 0, false, false
			}
			n = free
		}
		r.pHead.StoreRelaxed(head + n)
	} else {
		sw := spin.Wait{}
		for {
			head = r.pHead.LoadAcquire()
			ct := r.cTail.LoadAcquire()
			free = r.mask + ct - head
			n = max
			if n > free {
				if !variable {
					return 0, false, true
				}
				if free == 0 {
					return 0, false, false
				}
				n = free
			}
			if r.pHead.CompareAndSwapAcqRel(head, head+n) {
				break
			}
			sw.Once()
		}
	}

	r.writeSlots(head, values[:n])
	// The tail store below is a release: every payload write above becomes
	// visible to any consumer that observes the new p_tail (spec.md §5,
	// "write-before-advertise").

	// capacity - free also counts the reserved gap slot, so occupied is one
	// more than the occupancy after this enqueue: the quota signal fires
	// once that occupancy reaches the watermark.
	occupied := (r.capacity - free) + n
	quotaExceeded = occupied > r.watermark.LoadRelaxed()

	if !r.singleProducer {
		// Per-producer FIFO commit: wait for every earlier reserver (which
		// reserved a lower head) to advance p_tail before advancing past it.
		// spin.Wait already implements the pause-then-yield-every-R policy.
		sw := spin.Wait{}
		for r.pTail.LoadAcquire() != head {
			sw.Once()
		}
	}
	r.pTail.StoreRelease(head + n)

	return n, quotaExceeded, false
}
