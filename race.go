// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ring

// RaceEnabled is true when the race detector is active.
// Used by tests to skip MP/MC stress tests, which trigger false positives:
// the race detector cannot observe the acquire/release ordering established
// through atomix's atomics across the head/tail cursor pairs.
const RaceEnabled = true
