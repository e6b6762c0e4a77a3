// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// writeSlots copies values into the ring starting at logical index head,
// splitting into two contiguous runs across the wraparound point.
// Equivalent to the original's ENQUEUE_PTRS macro, expressed with Go's
// slice copy primitive per spec.md's DESIGN NOTES §9.
func (r *Ring) writeSlots(head uint32, values []uintptr) {
	n := uint32(len(values))
	if n == 0 {
		return
	}
	size := r.capacity
	idx := head & r.mask
	if idx+n <= size {
		copy(r.slots[idx:idx+n], values)
		return
	}
	first := size - idx
	copy(r.slots[idx:], values[:first])
	copy(r.slots[:n-first], values[first:])
}

// readSlots copies values out of the ring starting at logical index head,
// the mirror image of writeSlots (the original's DEQUEUE_PTRS macro).
func (r *Ring) readSlots(head uint32, out []uintptr) {
	n := uint32(len(out))
	if n == 0 {
		return
	}
	size := r.capacity
	idx := head & r.mask
	if idx+n <= size {
		copy(out, r.slots[idx:idx+n])
		return
	}
	first := size - idx
	copy(out, r.slots[idx:])
	copy(out[first:], r.slots[:n-first])
}
