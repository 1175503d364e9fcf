// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hashdrbg

import (
	"fmt"
	"io"
	mrand "math/rand/v2"
	"sync"

	"github.com/go90a/hashdrbg/entropy"
)

// Reader is a package-level, cryptographically secure random source backed
// by a pool of independently owned Generators. It is initialized at package
// load time with DefaultReaderConfig and is safe for concurrent use.
//
// Reader relaxes the "exclusively owned by its caller" rule only for this
// shared convenience instance: each Read call still borrows one Generator
// from its shard pool for the duration of the call and never shares it
// concurrently with another caller.
var Reader io.Reader

// ReaderInterface is the contract the package-level Reader and any Reader
// returned by NewReader satisfy.
type ReaderInterface interface {
	io.Reader

	// Variant returns the non-secret metadata shared by every pooled
	// generator backing this Reader.
	Variant() VariantInfo

	// Reseed reseeds every pooled generator with fresh entropy and the
	// given additional input.
	Reseed(additionalInput []byte) error

	// ReadWithAdditionalInput fills b with pseudorandom bytes, mixing in
	// additionalInput for this call only.
	ReadWithAdditionalInput(b []byte, additionalInput []byte) (int, error)
}

type pooledReader struct {
	variant VariantInfo
	pools   []*sync.Pool
}

func init() {
	r, err := NewReader()
	if err != nil {
		panic(fmt.Sprintf("hashdrbg: failed to initialize package-level Reader: %v", err))
	}
	Reader = r
}

// NewReader constructs an independent pooled Reader. Most callers want the
// package-level Reader instead; NewReader exists for callers who need
// distinct personalization, security strength, or shard count from the
// default.
func NewReader(opts ...ReaderOption) (ReaderInterface, error) {
	cfg := DefaultReaderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Shards < 1 {
		cfg.Shards = 1
	}

	if cfg.EnableSelfTests {
		if err := RunSelfTests(); err != nil {
			return nil, err
		}
	}

	entry, ok := selectByStrength(cfg.MinSecurityBits, FlagNone)
	if !ok {
		return nil, ErrNotFound
	}

	pools := make([]*sync.Pool, cfg.Shards)
	for i := range pools {
		i := i
		pools[i] = &sync.Pool{
			New: func() any {
				g, err := NewByID(entropy.Default(), entry.id, FlagNone)
				if err != nil {
					panic(fmt.Sprintf("hashdrbg: pool shard %d: %v", i, err))
				}
				if err := g.Init(cfg.Personalization); err != nil {
					panic(fmt.Sprintf("hashdrbg: pool shard %d init: %v", i, err))
				}
				return g
			},
		}
	}

	return &pooledReader{
		variant: VariantInfo{ID: entry.id, Name: entry.name, SecurityBits: entry.securityBits, SeedLen: entry.seedLen},
		pools:   pools,
	}, nil
}

func (r *pooledReader) shard() int {
	if len(r.pools) == 1 {
		return 0
	}
	return mrand.IntN(len(r.pools))
}

func (r *pooledReader) Variant() VariantInfo { return r.variant }

// Read fills b with pseudorandom bytes, satisfying io.Reader. Read always
// fills b completely (len(b), nil) or returns a non-nil error.
func (r *pooledReader) Read(b []byte) (int, error) {
	return r.ReadWithAdditionalInput(b, nil)
}

// ReadWithAdditionalInput fills b with pseudorandom bytes, mixing in
// additionalInput for this call only.
func (r *pooledReader) ReadWithAdditionalInput(b []byte, additionalInput []byte) (int, error) {
	idx := r.shard()
	pool := r.pools[idx]
	g := pool.Get().(*Generator)
	defer pool.Put(g)
	return g.GenerateWithInput(additionalInput, b)
}

// Reseed reseeds every shard's pooled generator with fresh entropy and
// additionalInput.
func (r *pooledReader) Reseed(additionalInput []byte) error {
	for i, pool := range r.pools {
		g := pool.Get().(*Generator)
		err := g.Seed(additionalInput)
		pool.Put(g)
		if err != nil {
			return fmt.Errorf("hashdrbg: reseed shard %d: %w", i, err)
		}
	}
	return nil
}
