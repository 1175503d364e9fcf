// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package engine

import "encoding/binary"

// hashDF implements the Hash_df derivation function, SP 800-90A Rev. 1
// section 10.3.1. It derives len(out) bytes from the concatenation of
// inputs, iterating a one-byte counter and the four-byte big-endian output
// length in bits ahead of the hashed material on every iteration.
//
// out must already be sized to the number of bytes the caller wants; hashDF
// fills it completely, discarding any trailing bytes of the final hash
// block that don't fit.
func (s *State) hashDF(out []byte, inputs ...[]byte) {
	outLen := len(out)
	var prefix [5]byte
	binary.BigEndian.PutUint32(prefix[1:], uint32(outLen)*8)

	h := s.newHash()
	counter := byte(1)
	produced := 0
	for produced < outLen {
		h.Reset()
		prefix[0] = counter
		h.Write(prefix[:])
		for _, in := range inputs {
			h.Write(in)
		}
		produced += copy(out[produced:], h.Sum(nil))
		counter++
	}
}
