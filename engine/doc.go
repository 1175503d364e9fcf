// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package engine implements the NIST SP 800-90A Rev. 1 Hash_DRBG
// construction (section 10.1.1): the Hash_df derivation function, the
// internal Hashgen output stage, and the Instantiate/Reseed/Generate
// algorithms, parameterized by an abstract hash capability.
//
// The hash capability is consumed through the standard library's hash.Hash
// interface, selected via a crypto.Hash identifier. This mirrors NIST's own
// treatment of the underlying hash function as a pluggable primitive: the
// concrete hash algorithms (SHA-1, SHA-224/256/384/512, SHA-512/224,
// SHA-512/256) are external collaborators, not something this package
// re-implements.
//
// A State is not safe for concurrent use; callers serialize access to a
// single instance (see the root package's Generator for the owning facade).
package engine
