// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides a bounded, lock-free multi-producer/multi-consumer
// FIFO of pointer-sized handles, and a supporting Treiber stack.
//
// The ring is a DPDK-style two-index (head/tail) reservation queue: an
// enqueue first reserves a contiguous slot range by bumping a head cursor
// (CAS under contention, a plain store when the caller declares a single
// producer), writes the payload, then commits by advancing a tail cursor —
// in FIFO order among concurrent committers, never skipping ahead of an
// earlier reserver. Dequeue is the mirror image on the consumer side.
//
// # Quick Start
//
//	r, err := ring.Build(ring.New(1024).SingleProducer().SingleConsumer())
//	if err != nil {
//	    // capacity wasn't a power of two
//	}
//
//	if err := r.Enqueue(uintptr(handle)); err != nil {
//	    // ring.IsWouldBlock(err): full, retry later
//	}
//
//	h, err := r.Dequeue()
//	if err != nil {
//	    // ring.IsWouldBlock(err): empty, retry later
//	}
//
// # Bulk vs. Burst
//
// Bulk operations are fixed-demand (all-or-nothing): [Ring.EnqueueBulk] and
// [Ring.DequeueBulk] either move exactly n elements or move none, signaled
// by a nil or non-nil error. Burst operations are variable-demand
// (best-effort): [Ring.EnqueueBurst] and [Ring.DequeueBurst] move as many
// as currently fit and return the count actually moved, including zero.
//
// # Watermark
//
// A ring can carry a soft occupancy threshold. Enqueues that bring
// occupancy up to or past it still succeed — the data is in the ring — but signal
// [ErrQuotaExceeded] (bulk) or set [QuotaExceededBit] in the returned count
// (burst), intended as an early-warning for upstream admission control.
//
// # Concurrency Modes
//
// A ring is configured at construction with independent SingleProducer and
// SingleConsumer flags:
//
//	SP + SC → both sides wait-free (plain load/store, no CAS, no spin)
//	MP       → producers CAS-reserve and spin-wait to commit in FIFO order
//	MC       → consumers CAS-reserve and spin-wait to commit in FIFO order
//
// Violating a configured constraint (e.g. two goroutines enqueueing on an
// SP ring) is undefined behavior: data corruption, lost updates, or torn
// reads are possible. The ring does not detect or guard against this.
//
// # Opaque Handles
//
// The ring stores uintptr-sized handles — indices into a caller-owned pool,
// or any other pointer-sized token. It performs no allocation and no
// interpretation of the value. Storing a live Go pointer converted to
// uintptr is possible but unsafe for garbage collection (the GC does not
// trace a uintptr); prefer handing the ring an index into a slice the
// caller keeps reachable elsewhere, the way a free-list would.
//
// # Producer-Consumer Pipeline (SP+SC)
//
//	r, _ := ring.Build(ring.New(1024).SingleProducer().SingleConsumer())
//
//	go func() { // producer
//	    for v := range input {
//	        for r.Enqueue(v) != nil {
//	            runtime.Gosched()
//	        }
//	    }
//	}()
//
//	go func() { // consumer
//	    for {
//	        v, err := r.Dequeue()
//	        if err != nil {
//	            continue
//	        }
//	        process(v)
//	    }
//	}()
//
// # Worker Pool (MPMC)
//
//	r, _ := ring.Build(ring.New(4096)) // no flags: MPMC
//
//	for range numWorkers {
//	    go func() {
//	        for {
//	            job, err := r.Dequeue()
//	            if err == nil {
//	                run(job)
//	            }
//	        }
//	    }()
//	}
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic cursors with explicit memory
// ordering, and [code.hybscloud.com/spin] for CAS retry and tail-commit
// backoff.
package ring
