// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package engine

import (
	"crypto"
	"hash"
)

// maxRequestBytes is the largest number of bytes a single Generate call may
// emit, per SP 800-90A Rev. 1 table 2 (2^19 bits, expressed here as 2^16
// bytes for this implementation's byte-oriented Generate signature).
const maxRequestBytes = 1 << 16

// maxReseedInterval bounds reseedCounter; SP 800-90A Rev. 1 table 2 sets the
// Hash_DRBG reseed interval at 2^48 requests. Generate refuses to run once
// this is reached and ErrReseedRequired propagates to the caller.
const maxReseedInterval = 1 << 48

// State is the NIST SP 800-90A Rev. 1 Hash_DRBG working state (section
// 10.1.1): the value V, the constant C, the reseed counter, plus a scratch
// buffer t reused across Generate calls. It is parameterized by a hash
// capability (newHash) and a seed length fixed at construction.
//
// A State is not safe for concurrent use.
type State struct {
	newHash func() hash.Hash
	hashLen int
	seedLen int

	// v holds a one-byte operation tag (0x00/0x01/0x02/0x03 per the Hash_df
	// and Generate steps that prepend it) followed by the seedLen-byte value
	// V. v[1:] is V itself; v[:1+seedLen] is what Hash_df consumes as a
	// contiguous "tag || V" input.
	v []byte
	// c is the seedLen-byte constant C, derived once at Instantiate/Reseed
	// time and held fixed until the next Reseed.
	c []byte
	// t is scratch space reused by Generate's hashgen step; it never holds
	// state that outlives a single Generate call, but is preallocated here
	// to avoid an allocation on every call.
	t []byte

	reseedCounter uint64
}

// New allocates a Hash_DRBG working state bound to hash algorithm h, with
// the given seed length (55 or 111 bytes, per table 2). It does not
// instantiate the state; call Instantiate before the first Generate.
func New(h crypto.Hash, seedLen int) (*State, error) {
	if seedLen != 55 && seedLen != 111 {
		return nil, ErrInvalidSeedLen
	}
	if !h.Available() {
		return nil, ErrHashUnavailable
	}
	return &State{
		newHash: h.New,
		hashLen: h.Size(),
		seedLen: seedLen,
		v:       make([]byte, 1+seedLen),
		c:       make([]byte, seedLen),
		t:       make([]byte, seedLen),
	}, nil
}

// SeedLen reports the configured seed length in bytes.
func (s *State) SeedLen() int { return s.seedLen }

// HashLen reports the output size in bytes of the bound hash function.
func (s *State) HashLen() int { return s.hashLen }

// ReseedCounter reports one plus the number of Generate calls served since
// the last Instantiate or Reseed (it is 1 right after either).
func (s *State) ReseedCounter() uint64 { return s.reseedCounter }

// SetReseedCounterForTesting forces the internal reseed counter, letting
// callers above this package exercise the reseed-interval exhaustion path
// (Generate returning ErrReseedRequired) without performing 2^48 real
// Generate calls. It exists for tests only.
func (s *State) SetReseedCounterForTesting(n uint64) { s.reseedCounter = n }

// Close zeroizes the working state. The State must not be used afterward.
func (s *State) Close() {
	zero(s.v)
	zero(s.c)
	zero(s.t)
	s.reseedCounter = 0
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
