// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/spin"

// DequeueBulk collects and reads exactly len(out) elements into out, or
// none. Returns nil on success, or [ErrNoEnt] if fewer than len(out)
// elements are available.
//
// len(out) == 0 always returns nil without touching any cursor.
func (r *Ring) DequeueBulk(out []uintptr) error {
	_, wouldBlock := r.doDequeue(out, false)
	if wouldBlock {
		return ErrNoEnt
	}
	return nil
}

// DequeueBurst collects and reads up to len(out) elements into out,
// whichever are available, and returns the count actually delivered
// (0 is a valid outcome).
func (r *Ring) DequeueBurst(out []uintptr) int {
	n, _ := r.doDequeue(out, true)
	return int(n)
}

// Dequeue removes a single handle (fixed demand). Dispatches to the
// single- or multi-consumer reservation path according to the ring's
// construction flags. Returns [ErrNoEnt] if the ring is empty.
func (r *Ring) Dequeue() (uintptr, error) {
	var buf [1]uintptr
	if err := r.DequeueBulk(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// doDequeue implements both the fixed- and variable-demand consumer
// protocol from spec.md §4.3. wouldBlock is only ever true for
// fixed-demand, insufficient-elements calls.
func (r *Ring) doDequeue(out []uintptr, variable bool) (n uint32, wouldBlock bool) {
	max := uint32(len(out))
	if max == 0 {
		return 0, false
	}

	var head uint32

	if r.singleConsumer {
		head = r.cHead.LoadRelaxed()
		pt := r.pTail.LoadAcquire()
		entries := pt - head
		n = max
		if n > entries {
			if !variable {
				return 0, true
			}
			if entries == 0 {
				return 0, false
			}
			n = entries
		}
		r.cHead.StoreRelaxed(head + n)
	} else {
		sw := spin.Wait{}
		for {
			head = r.cHead.LoadAcquire()
			pt := r.pTail.LoadAcquire()
			entries := pt - head
			n = max
			if n > entries {
				if !variable {
					return 0, true
				}
				if entries == 0 {
					return 0, false
				}
				n = entries
			}
			if r.cHead.CompareAndSwapAcqRel(head, head+n) {
				break
			}
			sw.Once()
		}
	}

	r.readSlots(head, out[:n])
	// No fence is needed here beyond the acquire load of p_tail above and
	// the release store of c_tail below (spec.md §5, "read-before-consume"):
	// a slot is not re-observed by another consumer until c_tail advances
	// past it.

	if !r.singleConsumer {
		// Per-consumer FIFO commit, mirroring the producer side.
		sw := spin.Wait{}
		for r.cTail.LoadAcquire() != head {
			sw.Once()
		}
	}
	r.cTail.StoreRelease(head + n)

	return n, false
}
