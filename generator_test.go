// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hashdrbg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go90a/hashdrbg/entropy"
)

// fixedSources returns a scripted entropy source list that always writes
// the same deterministic byte pattern and reports enough credit to satisfy
// any single draw, standing in for "the orchestrator replaced by a scripted
// source returning fixed bytes" used throughout spec scenario S1-S6.
func fixedSources(bytesPerDraw int) entropy.SourceList {
	return entropy.SourceList{
		{
			Name:         "fixed",
			BytesPerDraw: bytesPerDraw,
			BitsPerDraw:  bytesPerDraw * 8 * 100,
			Draw: func(out []byte) (int, int, bool) {
				for i := range out {
					out[i] = byte(i)
				}
				return len(out), bytesPerDraw * 8 * 100, true
			},
		},
	}
}

func TestNew_SelectsFirstVariantMeetingMinBits(t *testing.T) {
	g, err := New(fixedSources(64), 200, FlagNone)
	require.NoError(t, err)
	defer g.Close()
	require.Equal(t, VariantSHA256, g.Variant().ID)
}

func TestNew_RejectsEmptySourceList(t *testing.T) {
	_, err := New(nil, 128, FlagNone)
	require.ErrorIs(t, err, ErrParamNull)
}

func TestNew_NotFoundWhenNoVariantMeetsStrength(t *testing.T) {
	_, err := New(fixedSources(64), 1000, FlagNone)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNewByID_ReturnsExactVariant(t *testing.T) {
	g, err := NewByID(fixedSources(64), VariantSHA512, FlagNone)
	require.NoError(t, err)
	defer g.Close()
	require.Equal(t, "SHA-512", g.ImplName())
}

func TestGenerator_DeterminismGivenSeedAndPersonalization(t *testing.T) {
	g1, err := NewByID(fixedSources(64), VariantSHA256, FlagNone)
	require.NoError(t, err)
	defer g1.Close()
	g2, err := NewByID(fixedSources(64), VariantSHA256, FlagNone)
	require.NoError(t, err)
	defer g2.Close()

	require.NoError(t, g1.Init([]byte("same personalization")))
	require.NoError(t, g2.Init([]byte("same personalization")))

	out1 := make([]byte, 200)
	out2 := make([]byte, 200)
	_, err = g1.GenerateWithInput([]byte("same additional input"), out1)
	require.NoError(t, err)
	_, err = g2.GenerateWithInput([]byte("same additional input"), out2)
	require.NoError(t, err)

	require.Equal(t, out1, out2)
}

func TestGenerator_PersonalizationSeparation(t *testing.T) {
	g1, err := NewByID(fixedSources(64), VariantSHA256, FlagNone)
	require.NoError(t, err)
	defer g1.Close()
	g2, err := NewByID(fixedSources(64), VariantSHA256, FlagNone)
	require.NoError(t, err)
	defer g2.Close()

	require.NoError(t, g1.Init([]byte("TLS")))
	require.NoError(t, g2.Init([]byte("tls")))

	seedLen := g1.Variant().SeedLen
	out1 := make([]byte, seedLen)
	out2 := make([]byte, seedLen)
	_, err = g1.Generate(out1)
	require.NoError(t, err)
	_, err = g2.Generate(out2)
	require.NoError(t, err)

	require.NotEqual(t, out1, out2)
}

func TestGenerator_ReseedCounterTracksGenerateCalls(t *testing.T) {
	g, err := NewByID(fixedSources(64), VariantSHA256, FlagNone)
	require.NoError(t, err)
	defer g.Close()
	require.NoError(t, g.Init(nil))

	out := make([]byte, 16)
	for i := uint64(2); i <= 4; i++ {
		_, err := g.Generate(out)
		require.NoError(t, err)
		require.Equal(t, i, g.state.ReseedCounter())
	}
}

func TestGenerator_ChunksRequestsAbove64KiB(t *testing.T) {
	g, err := NewByID(fixedSources(64), VariantSHA256, FlagNone)
	require.NoError(t, err)
	defer g.Close()
	require.NoError(t, g.Init(nil))

	const n = 200000
	out := make([]byte, n)
	produced, err := g.Generate(out)
	require.NoError(t, err)
	require.Equal(t, n, produced)

	// The byte at the 65536 boundary should match the first byte a fresh
	// Generate call would produce from the intermediate state: take a
	// second generator forced to the same post-first-chunk state by
	// replaying the first chunk, then compare its next byte.
	replay, err := NewByID(fixedSources(64), VariantSHA256, FlagNone)
	require.NoError(t, err)
	defer replay.Close()
	require.NoError(t, replay.Init(nil))
	discard := make([]byte, requestChunk)
	_, err = replay.Generate(discard)
	require.NoError(t, err)
	next := make([]byte, 1)
	_, err = replay.Generate(next)
	require.NoError(t, err)

	require.Equal(t, next[0], out[requestChunk])
}

func TestGenerator_TransparentReseedOnCounterExhaustion(t *testing.T) {
	g, err := NewByID(fixedSources(64), VariantSHA256, FlagNone)
	require.NoError(t, err)
	defer g.Close()
	require.NoError(t, g.Init(nil))

	g.state.SetReseedCounterForTesting(1 << 48)

	out := make([]byte, 32)
	produced, err := g.GenerateWithInput(nil, out)
	require.NoError(t, err)
	require.Equal(t, 32, produced)
	// The forced reseed resets the counter to 1, then the retried chunk's
	// single Generate call advances it to 2.
	require.EqualValues(t, 2, g.state.ReseedCounter())
}

func TestGenerator_CloseZeroizesStateAndIsIdempotent(t *testing.T) {
	g, err := NewByID(fixedSources(64), VariantSHA256, FlagNone)
	require.NoError(t, err)
	require.NoError(t, g.Init(nil))

	out := make([]byte, 16)
	_, err = g.Generate(out)
	require.NoError(t, err)

	require.NoError(t, g.Close())
	require.NoError(t, g.Close()) // idempotent

	for _, b := range g.entropyBuf {
		require.Zero(t, b)
	}

	_, err = g.Generate(out)
	require.ErrorIs(t, err, ErrClosed)
}
