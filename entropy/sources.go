// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package entropy

import (
	"crypto/rand"
	"time"
)

// Default returns the stock source list: kernel randomness, a hardware-RNG
// stand-in, a cycle-counter stand-in, and a wall-clock sample. Each source
// declares a fixed per-draw byte count and bit credit; callers needing a
// different mix (or real hardware-RNG/cycle-counter access, which this
// package does not provide) construct their own SourceList instead.
func Default() SourceList {
	return SourceList{
		{
			Name:         "kernel",
			BytesPerDraw: 2,
			BitsPerDraw:  12,
			Draw:         makeDrawKernel(12),
		},
		{
			Name:         "hwrng",
			Flags:        FlagNoPrev,
			BytesPerDraw: 2,
			BitsPerDraw:  9,
			Draw:         makeDrawKernel(9),
		},
		{
			Name:         "cycles",
			BytesPerDraw: 2,
			BitsPerDraw:  5,
			Draw:         drawCycles,
		},
		{
			Name:         "walltime",
			Flags:        FlagOnce,
			BytesPerDraw: 2,
			BitsPerDraw:  4,
			Draw:         drawWalltime,
		},
	}
}

// makeDrawKernel returns a Draw func that reads from the operating system's
// CSPRNG but reports exactly credit bits, regardless of how many bytes it
// filled. It backs both the "kernel" source and the "hwrng" stand-in, each
// at its own declared credit: this package has no architecture-specific
// access to a hardware RNG instruction, so both draw from the same
// kernel-backed pool that instruction ultimately feeds, but only "kernel" is
// trusted for its full declared share — "hwrng" is capped lower to reflect
// that it is a stand-in, not a distinct physical source.
func makeDrawKernel(credit int) func(out []byte) (n int, bits int, ok bool) {
	return func(out []byte) (n int, bits int, ok bool) {
		n, err := rand.Read(out)
		if err != nil || n != len(out) {
			return 0, 0, false
		}
		return n, credit, true
	}
}

// drawCycles samples the low bits of the wall clock's nanosecond count
// (time.Now().UnixNano()) as a stand-in for
// a CPU cycle counter, which Go cannot read without architecture-specific
// assembly.
func drawCycles(out []byte) (n int, bits int, ok bool) {
	if len(out) < 2 {
		return 0, 0, false
	}
	ns := time.Now().UnixNano()
	out[0] = byte(ns)
	out[1] = byte(ns >> 8)
	return 2, 5, true
}

// drawWalltime samples the microsecond-of-second component of the wall
// clock.
func drawWalltime(out []byte) (n int, bits int, ok bool) {
	if len(out) < 2 {
		return 0, 0, false
	}
	micros := time.Now().Nanosecond() / 1000
	out[0] = byte(micros)
	out[1] = byte(micros >> 8)
	return 2, 4, true
}
