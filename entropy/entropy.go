// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package entropy

import "errors"

// ErrExhausted is returned by Generate when a full pass over sources set no
// new bit before the requested bit target was met.
var ErrExhausted = errors.New("entropy: no source succeeded in a full pass")

// ErrBufferTooSmall is returned by Generate when out cannot hold every byte
// the sources might write before the bit target is met.
var ErrBufferTooSmall = errors.New("entropy: output buffer too small for requested bits")

// Flag governs a Source's retry and same-pass ordering behavior.
type Flag uint8

const (
	// FlagOnce marks a source that may contribute at most once across an
	// entire Generate call, regardless of how many passes run.
	FlagOnce Flag = 1 << iota
	// FlagNoPrev marks a source that is skipped on any pass where an
	// earlier source already succeeded.
	FlagNoPrev
)

// Source is a single entropy collector: Draw attempts to fill out with up
// to len(out) bytes, returning how many bytes it wrote, the entropy credit
// in bits those bytes carry, and whether the draw succeeded. BitsPerDraw and
// BytesPerDraw describe what a successful Draw is expected to report; Draw
// itself is free to report less (or fail outright; ok == false).
type Source struct {
	Name         string
	Flags        Flag
	BytesPerDraw int
	BitsPerDraw  int
	Draw         func(out []byte) (n int, bits int, ok bool)
}

// SourceList is an ordered list of Sources, consulted in declaration order
// on every pass.
type SourceList []Source

// Generate drives sources, in declared order, across as many passes as
// needed until accumulated entropy credit meets bitsRequested, or a full
// pass sets no new bit. It writes concatenated raw bytes — no scaling or
// whitening — starting at out[0], and returns the number of bytes written.
//
// ONCE-flagged sources contribute at most once across the whole call.
// NO_PREV-flagged sources are skipped on any pass where an earlier source
// already succeeded.
func Generate(sources SourceList, bitsRequested int, out []byte) (int, error) {
	onceDone := make([]bool, len(sources))
	accumulatedBits := 0
	cursor := 0

	for accumulatedBits < bitsRequested {
		anySucceeded := false

		for i := range sources {
			if onceDone[i] {
				continue
			}
			src := &sources[i]
			if src.Flags&FlagNoPrev != 0 && anySucceeded {
				continue
			}

			want := src.BytesPerDraw
			if cursor+want > len(out) {
				return cursor, ErrBufferTooSmall
			}

			n, bits, ok := src.Draw(out[cursor : cursor+want])
			if !ok {
				continue
			}

			cursor += n
			accumulatedBits += bits
			anySucceeded = true
			if src.Flags&FlagOnce != 0 {
				onceDone[i] = true
			}

			if accumulatedBits >= bitsRequested {
				break
			}
		}

		if !anySucceeded {
			return cursor, ErrExhausted
		}
	}

	return cursor, nil
}
