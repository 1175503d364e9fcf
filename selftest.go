// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hashdrbg

import (
	"bytes"
	"errors"
	"sync"

	"github.com/go90a/hashdrbg/engine"
)

var (
	selfTestOnce sync.Once
	selfTestErr  error
)

// ErrSelfTestFailed indicates the power-on self-test did not pass: a
// registered variant's hash binding produced non-deterministic or
// inconsistent output for identical inputs.
var ErrSelfTestFailed = errors.New("hashdrbg: self-test failed")

// fixedSelfTestEntropy and fixedSelfTestPersonalization are not secret; they
// exist only to exercise every registered variant's Hash_df/Generate path
// with a known input at process start, the way a FIPS power-on self-test
// exercises a cipher against a known-answer vector.
var (
	fixedSelfTestEntropy        = bytes.Repeat([]byte{0x5A}, 128)
	fixedSelfTestPersonalization = []byte("hashdrbg-self-test")
)

// RunSelfTests exercises Hash_df and Generate for every registered variant,
// checking that two independently instantiated states given identical
// inputs produce byte-identical output (the determinism every Hash_DRBG
// variant must provide). It is safe for concurrent use and executes only
// once per process via sync.Once; subsequent calls return the cached
// result.
func RunSelfTests() error {
	selfTestOnce.Do(func() {
		selfTestErr = runSelfTests()
	})
	return selfTestErr
}

func runSelfTests() error {
	for _, entry := range registryTable {
		if err := selfTestVariant(entry); err != nil {
			return err
		}
	}
	return nil
}

func selfTestVariant(entry registryEntry) error {
	a, err := engine.New(entry.hash, entry.seedLen)
	if err != nil {
		return ErrSelfTestFailed
	}
	b, err := engine.New(entry.hash, entry.seedLen)
	if err != nil {
		return ErrSelfTestFailed
	}
	defer a.Close()
	defer b.Close()

	a.Instantiate(fixedSelfTestEntropy, fixedSelfTestPersonalization)
	b.Instantiate(fixedSelfTestEntropy, fixedSelfTestPersonalization)

	outA := make([]byte, 64)
	outB := make([]byte, 64)
	if err := a.Generate(nil, outA); err != nil {
		return ErrSelfTestFailed
	}
	if err := b.Generate(nil, outB); err != nil {
		return ErrSelfTestFailed
	}
	if !bytes.Equal(outA, outB) {
		return ErrSelfTestFailed
	}

	// A second call from the same state must diverge from the first: the
	// generator has advanced, so a stuck/no-op Generate would be caught.
	outA2 := make([]byte, 64)
	if err := a.Generate(nil, outA2); err != nil {
		return ErrSelfTestFailed
	}
	if bytes.Equal(outA, outA2) {
		return ErrSelfTestFailed
	}

	return nil
}
