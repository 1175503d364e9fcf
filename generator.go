// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package hashdrbg implements a NIST SP 800-90A Rev. 1 Hash_DRBG
// (Deterministic Random Bit Generator) library: callers obtain a Generator
// bound to a hash algorithm and security strength, instantiate it with
// entropy plus an optional personalization string, and then repeatedly
// request arbitrary-length pseudorandom output, optionally mixing in
// per-call additional input.
//
// All cryptographic primitives are provided by the Go standard library
// (crypto/sha1, crypto/sha256, crypto/sha512); this package supplies the
// Hash_DRBG construction itself (package engine) and the entropy
// orchestrator that feeds it (package entropy).
package hashdrbg

import (
	"errors"
	"fmt"

	"github.com/go90a/hashdrbg/engine"
	"github.com/go90a/hashdrbg/entropy"
)

// requestChunk is the largest number of bytes a single internal engine call
// may produce; larger requests are served across multiple chunked calls,
// transparently reseeding between chunks if the engine's reseed interval is
// reached mid-request.
const requestChunk = 1 << 16

// Generator is the caller-visible Hash_DRBG instance: the RANDOM facade.
// A Generator is exclusively owned by its caller; concurrent calls against
// one instance are not supported, callers must serialize (see the
// package-level Reader for a pooled, concurrency-safe alternative).
type Generator struct {
	entry      registryEntry
	state      *engine.State
	sources    entropy.SourceList
	entropyBuf []byte
	closed     bool
}

// New scans the registry in declared order and returns a Generator bound to
// the first variant whose security strength is at least minBits and whose
// flags satisfy required. The returned Generator is not yet instantiated;
// call Init before the first Generate.
func New(sources entropy.SourceList, minBits int, required RegistryFlags) (*Generator, error) {
	if len(sources) == 0 {
		return nil, ErrParamNull
	}
	entry, ok := selectByStrength(minBits, required)
	if !ok {
		return nil, ErrNotFound
	}
	return newGenerator(entry, sources)
}

// NewByID scans the registry for an exact variant match, subject to the
// same flag filter as New.
func NewByID(sources entropy.SourceList, id VariantID, required RegistryFlags) (*Generator, error) {
	if len(sources) == 0 {
		return nil, ErrParamNull
	}
	entry, ok := lookupByID(id, required)
	if !ok {
		return nil, ErrNotFound
	}
	return newGenerator(entry, sources)
}

func newGenerator(entry registryEntry, sources entropy.SourceList) (*Generator, error) {
	state, err := engine.New(entry.hash, entry.seedLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlloc, err)
	}
	return &Generator{
		entry:      entry,
		state:      state,
		sources:    sources,
		entropyBuf: make([]byte, entry.securityBits/8*4),
	}, nil
}

// ImplName returns the bound variant's human-readable name, e.g. "SHA-256".
func (g *Generator) ImplName() string { return g.entry.name }

// VariantInfo is the non-secret, immutable metadata describing a
// Generator's bound variant.
type VariantInfo struct {
	ID           VariantID
	Name         string
	SecurityBits int
	SeedLen      int
}

// Variant returns the non-secret metadata for the variant this Generator is
// bound to. It never exposes V, C, or the reseed counter.
func (g *Generator) Variant() VariantInfo {
	return VariantInfo{
		ID:           g.entry.id,
		Name:         g.entry.name,
		SecurityBits: g.entry.securityBits,
		SeedLen:      g.entry.seedLen,
	}
}

// Init instantiates the generator: it draws 1.5x the variant's security
// strength in entropy bits (entropy and nonce collapsed into one draw, per
// the construction this implements) and calls the engine's Instantiate with
// that entropy plus personalization. The entropy scratch buffer is zeroized
// afterward.
func (g *Generator) Init(personalization []byte) error {
	if g.closed {
		return ErrClosed
	}
	bitsNeeded := g.entry.securityBits * 3 / 2
	n, err := entropy.Generate(g.sources, bitsNeeded, g.entropyBuf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	g.state.Instantiate(g.entropyBuf[:n], personalization)
	zero(g.entropyBuf[:n])
	return nil
}

// Seed reseeds the generator: it draws security_bits of fresh entropy and
// calls the engine's Reseed with that entropy plus additionalInput. The
// entropy scratch buffer is zeroized afterward.
func (g *Generator) Seed(additionalInput []byte) error {
	if g.closed {
		return ErrClosed
	}
	n, err := entropy.Generate(g.sources, g.entry.securityBits, g.entropyBuf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	g.state.Reseed(g.entropyBuf[:n], additionalInput)
	zero(g.entropyBuf[:n])
	return nil
}

// Generate fills out with pseudorandom bytes, with no additional input.
func (g *Generator) Generate(out []byte) (int, error) {
	return g.GenerateWithInput(nil, out)
}

// GenerateWithInput fills out with pseudorandom bytes, mixing in
// additionalInput. Requests larger than the per-call engine maximum are
// served across multiple chunked engine calls; if the engine reports its
// reseed interval has been reached mid-request, GenerateWithInput
// transparently reseeds (fresh entropy only, no additional input) and
// retries the same chunk.
func (g *Generator) GenerateWithInput(additionalInput []byte, out []byte) (int, error) {
	if g.closed {
		return 0, ErrClosed
	}
	if out == nil {
		return 0, ErrParamNull
	}

	cursor := 0
	remaining := len(out)
	for remaining > 0 {
		chunk := remaining
		if chunk > requestChunk {
			chunk = requestChunk
		}

		err := g.state.Generate(additionalInput, out[cursor:cursor+chunk])
		if errors.Is(err, engine.ErrReseedRequired) {
			if serr := g.Seed(nil); serr != nil {
				return cursor, fmt.Errorf("%w: %v", ErrReseedFailed, serr)
			}
			continue
		}
		if err != nil {
			return cursor, err
		}

		cursor += chunk
		remaining -= chunk
	}
	return cursor, nil
}

// Close zeroizes the generator's working state and entropy scratch buffer.
// Close is idempotent; it is safe to call on a Generator whose Init was
// never called.
func (g *Generator) Close() error {
	if g.closed {
		return nil
	}
	g.state.Close()
	zero(g.entropyBuf)
	g.closed = true
	return nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
