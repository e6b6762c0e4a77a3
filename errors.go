// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrNoBufs indicates a fixed-demand enqueue could not reserve n slots:
// fewer than n are free right now.
//
// ErrNoBufs is a control flow signal, not a failure: capacity exhaustion is
// transient and expected. The caller should retry, drop, or back off.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency. See
// also [ErrNoEnt], the symmetric consumer-side signal — both collapse to
// the same underlying value, distinguished only by which method returned
// them.
var ErrNoBufs = iox.ErrWouldBlock

// ErrNoEnt indicates a fixed-demand dequeue could not collect n elements:
// fewer than n are available right now. Alias for [iox.ErrWouldBlock];
// see [ErrNoBufs].
var ErrNoEnt = iox.ErrWouldBlock

// ErrQuotaExceeded indicates a fixed-demand enqueue brought occupancy up to
// or past the ring's watermark. Unlike ErrNoBufs, the elements WERE enqueued: this
// is an early-warning signal for upstream admission control, not a failed
// operation.
var ErrQuotaExceeded = errors.New("ring: watermark exceeded, elements were enqueued")

// ErrInvalid indicates a bad argument: a non-power-of-two capacity at
// construction, or a watermark at or above capacity. A programming error,
// not a transient condition — fail fast.
var ErrInvalid = errors.New("ring: invalid argument")

// IsWouldBlock reports whether err indicates an operation would block
// (ring full for enqueue, ring empty for dequeue). Delegates to
// [iox.IsWouldBlock] for wrapped error support.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := r.EnqueueBulk(buf)
//	    if err == nil || ring.IsQuotaExceeded(err) {
//	        backoff.Reset()
//	        break
//	    }
//	    if ring.IsWouldBlock(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    return err // ErrInvalid: programming error
//	}
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsQuotaExceeded reports whether err is [ErrQuotaExceeded].
func IsQuotaExceeded(err error) bool {
	return errors.Is(err, ErrQuotaExceeded)
}
