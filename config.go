// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hashdrbg

// ReaderConfig configures the package-level pooled default Reader (see
// reader.go). Individually owned Generators (New/NewByID) take their
// parameters positionally, matching the facade this package implements;
// ReaderConfig exists only for the shared convenience reader layered on top.
type ReaderConfig struct {
	// Personalization is mixed into every pooled generator's Init call for
	// domain separation from any other process using the default Reader.
	Personalization []byte

	// MinSecurityBits selects the variant the pool uses, via
	// selectByStrength. Defaults to 256.
	MinSecurityBits int

	// Shards is the number of independent pooled generators backing the
	// Reader; calls are distributed across shards via math/rand/v2 to
	// reduce contention under concurrent use. Defaults to 8.
	Shards int

	// EnableSelfTests runs RunSelfTests before the Reader becomes usable.
	// Defaults to true.
	EnableSelfTests bool
}

const (
	defaultMinSecurityBits = 256
	defaultShards          = 8
)

// DefaultReaderConfig returns production-safe defaults for the package-level
// pooled Reader.
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		MinSecurityBits: defaultMinSecurityBits,
		Shards:          defaultShards,
		EnableSelfTests: true,
	}
}

// ReaderOption customizes a ReaderConfig passed to NewReader.
type ReaderOption func(*ReaderConfig)

// WithReaderPersonalization sets the personalization string mixed into every
// pooled generator backing a Reader.
func WithReaderPersonalization(p []byte) ReaderOption {
	return func(c *ReaderConfig) { c.Personalization = p }
}

// WithReaderMinSecurityBits selects the minimum security strength the pooled
// generators must provide.
func WithReaderMinSecurityBits(n int) ReaderOption {
	return func(c *ReaderConfig) { c.MinSecurityBits = n }
}

// WithReaderShards sets the number of pooled generator shards.
func WithReaderShards(n int) ReaderOption {
	return func(c *ReaderConfig) { c.Shards = n }
}

// WithReaderSelfTests enables or disables the self-test run performed when
// constructing a Reader.
func WithReaderSelfTests(enable bool) ReaderOption {
	return func(c *ReaderConfig) { c.EnableSelfTests = enable }
}
