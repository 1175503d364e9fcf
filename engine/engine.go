// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package engine

import "encoding/binary"

// tag bytes Hash_DRBG prepends to V before hashing, per section 10.1.1.
const (
	tagDerive  = 0x00 // C = Hash_df(0x00 || V)
	tagReseed  = 0x01 // seed material for Reseed's Hash_df input
	tagUpdateV = 0x02 // V += Hash(0x02 || V || additional_input)
	tagUpdateH = 0x03 // H = Hash(0x03 || V), folded back into V at the end
)

// Instantiate implements SP 800-90A Rev. 1 section 10.1.1.2: it derives the
// initial V and C from entropyInput and personalizationString via Hash_df,
// and resets the reseed counter to 1.
func (s *State) Instantiate(entropyInput, personalizationString []byte) {
	s.hashDF(s.v[1:], entropyInput, personalizationString)
	s.v[0] = tagDerive
	s.hashDF(s.c, s.v[:1+s.seedLen])
	s.reseedCounter = 1
}

// Reseed implements SP 800-90A Rev. 1 section 10.1.1.3: it derives a new V
// from the current V, entropyInput, and additionalInput, rederives C from
// the new V, and resets the reseed counter to 1.
func (s *State) Reseed(entropyInput, additionalInput []byte) {
	s.v[0] = tagReseed
	newV := make([]byte, s.seedLen)
	s.hashDF(newV, s.v[:1+s.seedLen], entropyInput, additionalInput)
	copy(s.v[1:], newV)

	s.v[0] = tagDerive
	s.hashDF(s.c, s.v[:1+s.seedLen])
	s.reseedCounter = 1
}

// Generate implements SP 800-90A Rev. 1 section 10.1.1.4. It fills out with
// pseudorandom bytes, optionally folding additionalInput into V first, and
// advances V and the reseed counter afterward. len(out) must not exceed
// maxRequestBytes; callers above this package chunk larger requests (see
// the root package's Generator).
//
// Generate returns ErrReseedRequired without producing output once the
// reseed interval has been reached; the caller must Reseed first.
func (s *State) Generate(additionalInput []byte, out []byte) error {
	if s.reseedCounter >= maxReseedInterval {
		return ErrReseedRequired
	}
	if len(out) > maxRequestBytes {
		return ErrRequestTooLarge
	}

	h := s.newHash()

	if len(additionalInput) > 0 {
		s.v[0] = tagUpdateV
		h.Reset()
		h.Write(s.v[:1+s.seedLen])
		h.Write(additionalInput)
		addInto(s.v[1:], h.Sum(nil))
	}

	copy(s.t, s.v[1:])
	s.hashgen(out)

	s.v[0] = tagUpdateH
	h.Reset()
	h.Write(s.v[:1+s.seedLen])
	hVal := h.Sum(nil)

	var counterBytes [4]byte
	binary.BigEndian.PutUint32(counterBytes[:], uint32(s.reseedCounter))
	addVCH(s.v[1:], s.c, hVal, counterBytes[:])

	s.reseedCounter++
	return nil
}

// hashgen implements the Hashgen subroutine inside Generate (section
// 10.1.1.4, step 4): it repeatedly hashes a working value seeded from V,
// incrementing the working value as a big-endian integer after every block,
// until out is filled.
func (s *State) hashgen(out []byte) {
	w := make([]byte, s.seedLen)
	copy(w, s.t)

	h := s.newHash()
	produced := 0
	for produced < len(out) {
		h.Reset()
		h.Write(w)
		produced += copy(out[produced:], h.Sum(nil))
		if produced < len(out) {
			incBytes(w)
		}
	}
}

// incBytes increments b, treated as a big-endian unsigned integer, modulo
// 2^(8*len(b)).
func incBytes(b []byte) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			return
		}
	}
}

// addInto computes v += addend, both treated as big-endian unsigned
// integers, modulo 2^(8*len(v)). addend is right-aligned against v's
// low-order end when shorter.
func addInto(v, addend []byte) {
	carry := uint16(0)
	vi, ai := len(v)-1, len(addend)-1
	for vi >= 0 {
		sum := uint16(v[vi]) + carry
		if ai >= 0 {
			sum += uint16(addend[ai])
			ai--
		}
		v[vi] = byte(sum)
		carry = sum >> 8
		vi--
	}
}

// addVCH computes v += c + h + counter (all big-endian unsigned integers,
// right-aligned against v's low-order end, modulo 2^(8*len(v))) in a single
// carry chain, implementing Generate step 6. c is always len(v) bytes; h and
// counter are each right-aligned independently, matching the construction's
// treatment of the hash output and the reseed counter as separate
// lower-order addends rather than one concatenated value.
func addVCH(v, c, h, counter []byte) {
	n := len(v)
	hLen, cnLen := len(h), len(counter)
	carry := uint16(0)
	for i := n - 1; i >= 0; i-- {
		distFromEnd := n - 1 - i
		sum := uint16(v[i]) + uint16(c[i]) + carry
		if distFromEnd < hLen {
			sum += uint16(h[hLen-1-distFromEnd])
		}
		if distFromEnd < cnLen {
			sum += uint16(counter[cnLen-1-distFromEnd])
		}
		v[i] = byte(sum)
		carry = sum >> 8
	}
}
