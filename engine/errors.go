// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package engine

import "errors"

var (
	// ErrHashUnavailable is returned by New when the requested crypto.Hash
	// identifier has no implementation linked into the running binary (its
	// package was never imported).
	ErrHashUnavailable = errors.New("engine: hash algorithm not linked into binary")

	// ErrInvalidSeedLen is returned by New when seedLen is not one of the two
	// seed lengths SP 800-90A Rev. 1 table 2 defines for Hash_DRBG (55 or 111
	// bytes).
	ErrInvalidSeedLen = errors.New("engine: seed length must be 55 or 111 bytes")

	// ErrReseedRequired is returned by Generate once reseedCounter has reached
	// its reseed interval; the caller must call Reseed before further output
	// can be produced.
	ErrReseedRequired = errors.New("engine: reseed interval exceeded, reseed required")

	// ErrRequestTooLarge is returned by Generate when the caller asks for more
	// output than a single engine call may produce; callers above this
	// package chunk requests instead of hitting this error (see the root
	// package's Generator).
	ErrRequestTooLarge = errors.New("engine: requested output exceeds per-call maximum")
)
