// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCmd_WritesHexEncodedBytesToStdout(t *testing.T) {
	var out bytes.Buffer
	generateCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"generate", "--bytes", "16", "--variant", "sha256"})

	require.NoError(t, RootCmd.Execute())

	decoded, err := hex.DecodeString(string(bytes.TrimSpace(out.Bytes())))
	require.NoError(t, err)
	require.Len(t, decoded, 16)
}

func TestGenerateCmd_RejectsUnknownVariant(t *testing.T) {
	RootCmd.SetArgs([]string{"generate", "--variant", "md5"})
	err := RootCmd.Execute()
	require.Error(t, err)
}

func TestGenerateCmd_RejectsNonPositiveByteCount(t *testing.T) {
	RootCmd.SetArgs([]string{"generate", "--bytes", "0", "--variant", "sha256"})
	err := RootCmd.Execute()
	require.Error(t, err)
}
