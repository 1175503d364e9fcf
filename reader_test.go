// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package hashdrbg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackageLevelReader_IsInitializedAndReads(t *testing.T) {
	require.NotNil(t, Reader)

	buf := make([]byte, 64)
	n, err := Reader.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 64, n)
}

func TestNewReader_RespectsShardAndStrengthOptions(t *testing.T) {
	r, err := NewReader(
		WithReaderShards(2),
		WithReaderMinSecurityBits(192),
		WithReaderSelfTests(false),
	)
	require.NoError(t, err)
	require.Equal(t, VariantSHA224, r.Variant().ID)

	buf := make([]byte, 32)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 32, n)
}

func TestNewReader_ReadWithAdditionalInputChangesOutput(t *testing.T) {
	r, err := NewReader(WithReaderShards(1), WithReaderSelfTests(false))
	require.NoError(t, err)

	out1 := make([]byte, 32)
	out2 := make([]byte, 32)
	_, err = r.ReadWithAdditionalInput(out1, []byte("context A"))
	require.NoError(t, err)
	_, err = r.ReadWithAdditionalInput(out2, []byte("context B"))
	require.NoError(t, err)

	require.NotEqual(t, out1, out2)
}

func TestNewReader_ReseedSucceeds(t *testing.T) {
	r, err := NewReader(WithReaderShards(3), WithReaderSelfTests(false))
	require.NoError(t, err)
	require.NoError(t, r.Reseed([]byte("reseed context")))
}

func TestNewReader_NotFoundWhenStrengthUnsatisfiable(t *testing.T) {
	_, err := NewReader(WithReaderMinSecurityBits(1000), WithReaderSelfTests(false))
	require.ErrorIs(t, err, ErrNotFound)
}
