// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/ringq"
)

func mustRing(t *testing.T, capacity int, fn func(*ring.Builder) *ring.Builder) *ring.Ring {
	t.Helper()
	b := ring.New(capacity)
	if fn != nil {
		b = fn(b)
	}
	r, err := ring.Build(b)
	if err != nil {
		t.Fatalf("Build(%d): %v", capacity, err)
	}
	return r
}

func TestNewRejectsNonPowerOfTwo(t *testing.T) {
	for _, c := range []int{0, 1, -4, 3, 5, 6, 7, 9, 1000} {
		if _, err := ring.Build(ring.New(c)); !errors.Is(err, ring.ErrInvalid) {
			t.Fatalf("Build(%d): got %v, want ErrInvalid", c, err)
		}
	}
}

func TestScenario1_SPSCRoundTrip(t *testing.T) {
	r := mustRing(t, 4, func(b *ring.Builder) *ring.Builder {
		return b.SingleProducer().SingleConsumer()
	})

	for _, v := range []uintptr{0x1, 0x2, 0x3} {
		if err := r.Enqueue(v); err != nil {
			t.Fatalf("Enqueue(%#x): %v", v, err)
		}
	}

	for _, want := range []uintptr{0x1, 0x2, 0x3} {
		got, err := r.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
		if got != want {
			t.Fatalf("Dequeue: got %#x, want %#x", got, want)
		}
	}

	if _, err := r.Dequeue(); !errors.Is(err, ring.ErrNoEnt) {
		t.Fatalf("Dequeue on empty: got %v, want ErrNoEnt", err)
	}
}

func TestScenario2_BulkNFailsWithoutEnqueueing(t *testing.T) {
	r := mustRing(t, 4, func(b *ring.Builder) *ring.Builder {
		return b.SingleProducer().SingleConsumer()
	})

	buf := []uintptr{0x1, 0x2, 0x3, 0x4}
	if err := r.EnqueueBulk(buf); !errors.Is(err, ring.ErrNoBufs) {
		t.Fatalf("EnqueueBulk(n=4) on N=4 ring: got %v, want ErrNoBufs", err)
	}
	if !r.Empty() {
		t.Fatalf("ring should remain empty after failed bulk enqueue")
	}
}

func TestScenario3_BurstAcceptsAccessibleCapacity(t *testing.T) {
	r := mustRing(t, 4, func(b *ring.Builder) *ring.Builder {
		return b.SingleProducer().SingleConsumer()
	})

	n := r.EnqueueBurst([]uintptr{0x1, 0x2, 0x3, 0x4})
	if n != 3 {
		t.Fatalf("EnqueueBurst: got %d, want 3", n)
	}
	if !r.Full() {
		t.Fatalf("ring should be full after accepting accessible capacity")
	}

	out := make([]uintptr, 10)
	got := r.DequeueBurst(out)
	if got != 3 {
		t.Fatalf("DequeueBurst: got %d, want 3", got)
	}
}

func TestScenario4_FixedEnqueueOverWatermarkStillEnqueues(t *testing.T) {
	r := mustRing(t, 8, nil)
	if err := r.SetWatermark(5); err != nil {
		t.Fatalf("SetWatermark: %v", err)
	}

	buf := make([]uintptr, 6)
	for i := range buf {
		buf[i] = uintptr(i + 1)
	}
	if err := r.EnqueueBulk(buf); !errors.Is(err, ring.ErrQuotaExceeded) {
		t.Fatalf("EnqueueBulk over watermark: got %v, want ErrQuotaExceeded", err)
	}
	if r.Count() != 6 {
		t.Fatalf("Count: got %d, want 6 (elements ARE enqueued despite the quota signal)", r.Count())
	}
}

func TestScenario5_BurstEnqueueOverWatermarkTagsBit(t *testing.T) {
	r := mustRing(t, 8, nil)
	if err := r.SetWatermark(5); err != nil {
		t.Fatalf("SetWatermark: %v", err)
	}

	buf := make([]uintptr, 6)
	for i := range buf {
		buf[i] = uintptr(i + 1)
	}
	got := r.EnqueueBurst(buf)
	if got&ring.QuotaExceededBit == 0 {
		t.Fatalf("EnqueueBurst over watermark: quota bit not set (got %#x)", got)
	}
	if got&ring.SzMask != 6 {
		t.Fatalf("EnqueueBurst masked count: got %d, want 6", got&ring.SzMask)
	}
}

func TestSetWatermarkDisableAndInvalid(t *testing.T) {
	r := mustRing(t, 8, nil)

	if err := r.SetWatermark(8); !errors.Is(err, ring.ErrInvalid) {
		t.Fatalf("SetWatermark(cap): got %v, want ErrInvalid", err)
	}
	if err := r.SetWatermark(9); !errors.Is(err, ring.ErrInvalid) {
		t.Fatalf("SetWatermark(>cap): got %v, want ErrInvalid", err)
	}
	if err := r.SetWatermark(0); err != nil {
		t.Fatalf("SetWatermark(0): %v", err)
	}

	// Disabled watermark: a full bulk enqueue at N-1 must not report quota.
	buf := make([]uintptr, 7)
	for i := range buf {
		buf[i] = uintptr(i)
	}
	if err := r.EnqueueBulk(buf); err != nil {
		t.Fatalf("EnqueueBulk with disabled watermark: %v", err)
	}
}

func TestBoundaryZeroLengthBulkIsNoop(t *testing.T) {
	r := mustRing(t, 4, nil)
	if err := r.EnqueueBulk(nil); err != nil {
		t.Fatalf("EnqueueBulk(nil): %v", err)
	}
	if err := r.DequeueBulk(nil); err != nil {
		t.Fatalf("DequeueBulk(nil): %v", err)
	}
	if r.Count() != 0 {
		t.Fatalf("Count after no-op bulk ops: got %d, want 0", r.Count())
	}
}

func TestBoundaryNMinus1SucceedsNFails(t *testing.T) {
	r := mustRing(t, 4, nil)
	buf3 := make([]uintptr, 3)
	if err := r.EnqueueBulk(buf3); err != nil {
		t.Fatalf("EnqueueBulk(N-1) on empty ring: %v", err)
	}
	if !r.Full() {
		t.Fatalf("ring should be full with accessible capacity filled")
	}

	drain := make([]uintptr, 3)
	if err := r.DequeueBulk(drain); err != nil {
		t.Fatalf("drain: %v", err)
	}

	buf4 := make([]uintptr, 4)
	if err := r.EnqueueBulk(buf4); !errors.Is(err, ring.ErrNoBufs) {
		t.Fatalf("EnqueueBulk(N) on empty ring: got %v, want ErrNoBufs", err)
	}
}

func TestBurstOnFullRingReturnsZero(t *testing.T) {
	r := mustRing(t, 4, nil)
	buf3 := make([]uintptr, 3)
	if err := r.EnqueueBulk(buf3); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if n := r.EnqueueBurst([]uintptr{0xdead}); n != 0 {
		t.Fatalf("EnqueueBurst on full ring: got %d, want 0", n)
	}
}

func TestEmptyAndFullInvariants(t *testing.T) {
	r := mustRing(t, 8, nil)
	if !r.Empty() {
		t.Fatalf("new ring should be empty")
	}
	if r.Count() != 0 || r.FreeCount() != r.Cap()-1 {
		t.Fatalf("new ring accounting: count=%d free=%d", r.Count(), r.FreeCount())
	}

	for i := 0; i < r.Cap()-1; i++ {
		if err := r.Enqueue(uintptr(i)); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	if !r.Full() {
		t.Fatalf("ring should report full at accessible capacity")
	}
	if r.Count()+r.FreeCount() != r.Cap()-1 {
		t.Fatalf("count+free invariant: count=%d free=%d cap=%d", r.Count(), r.FreeCount(), r.Cap())
	}
}

func TestSPMCAndMPSCModes(t *testing.T) {
	spmc := mustRing(t, 8, func(b *ring.Builder) *ring.Builder { return b.SingleProducer() })
	for i := 0; i < 4; i++ {
		if err := spmc.Enqueue(uintptr(i)); err != nil {
			t.Fatalf("spmc Enqueue: %v", err)
		}
	}
	for i := 0; i < 4; i++ {
		v, err := spmc.Dequeue()
		if err != nil || v != uintptr(i) {
			t.Fatalf("spmc Dequeue: got (%v,%v), want (%d,nil)", v, err, i)
		}
	}

	mpsc := mustRing(t, 8, func(b *ring.Builder) *ring.Builder { return b.SingleConsumer() })
	for i := 0; i < 4; i++ {
		if err := mpsc.Enqueue(uintptr(i)); err != nil {
			t.Fatalf("mpsc Enqueue: %v", err)
		}
	}
	for i := 0; i < 4; i++ {
		v, err := mpsc.Dequeue()
		if err != nil || v != uintptr(i) {
			t.Fatalf("mpsc Dequeue: got (%v,%v), want (%d,nil)", v, err, i)
		}
	}
}

func TestCursorWraparound(t *testing.T) {
	r := mustRing(t, 4, nil)
	// Cycle through the slot array many times: the masked slot index wraps
	// every 4 operations (the 32-bit cursors themselves only reach 5000 and
	// do not overflow here); behavior must stay identical.
	for round := 0; round < 5000; round++ {
		if err := r.Enqueue(uintptr(round)); err != nil {
			t.Fatalf("round %d Enqueue: %v", round, err)
		}
		v, err := r.Dequeue()
		if err != nil || v != uintptr(round) {
			t.Fatalf("round %d Dequeue: got (%v,%v), want (%d,nil)", round, v, err, round)
		}
	}
}
