// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hashdrbg

import (
	"crypto"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
)

// VariantID identifies one of the seven Hash_DRBG variants the registry
// carries, each binding a specific hash algorithm to a security strength
// and seed length.
type VariantID int

const (
	VariantSHA1 VariantID = iota + 1
	VariantSHA224
	VariantSHA256
	VariantSHA384
	VariantSHA512
	VariantSHA512_224
	VariantSHA512_256
)

// RegistryFlags is reserved for future selection criteria beyond security
// strength (the source this package follows defines none today; the type
// exists so New/NewByID's signature does not need to change if one is
// added).
type RegistryFlags uint8

const FlagNone RegistryFlags = 0

// registryEntry is one row of the static variant table.
type registryEntry struct {
	id           VariantID
	name         string
	hash         crypto.Hash
	securityBits int
	seedLen      int
	flags        RegistryFlags
}

// registryTable is immutable after package initialization: no entry is ever
// added, removed, or mutated at runtime.
var registryTable = [...]registryEntry{
	{VariantSHA1, "SHA-1", crypto.SHA1, 128, 55, FlagNone},
	{VariantSHA224, "SHA-224", crypto.SHA224, 192, 55, FlagNone},
	{VariantSHA256, "SHA-256", crypto.SHA256, 256, 55, FlagNone},
	{VariantSHA384, "SHA-384", crypto.SHA384, 256, 111, FlagNone},
	{VariantSHA512, "SHA-512", crypto.SHA512, 256, 111, FlagNone},
	{VariantSHA512_224, "SHA-512/224", crypto.SHA512_224, 192, 55, FlagNone},
	{VariantSHA512_256, "SHA-512/256", crypto.SHA512_256, 256, 55, FlagNone},
}

// lookupByID scans the registry for an exact variant id match whose flags
// satisfy required, in table order.
func lookupByID(id VariantID, required RegistryFlags) (registryEntry, bool) {
	for _, e := range registryTable {
		if e.id == id && e.flags&required == required {
			return e, true
		}
	}
	return registryEntry{}, false
}

// selectByStrength scans the registry in declared order and returns the
// first entry whose security strength meets minBits and whose flags satisfy
// required.
func selectByStrength(minBits int, required RegistryFlags) (registryEntry, bool) {
	for _, e := range registryTable {
		if e.securityBits >= minBits && e.flags&required == required {
			return e, true
		}
	}
	return registryEntry{}, false
}
