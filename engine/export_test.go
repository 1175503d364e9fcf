// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package engine

// This package is parameterized by an abstract hash capability and does not
// itself register any concrete crypto.Hash implementation (callers do, as
// the root package's registry.go does for production use). These blank
// imports register SHA-1/224/256/384/512/512-224/512-256 for this package's
// own tests. crypto.MD4 is not registered by anything the test binary links
// (crypto.MD5 is, via crypto/tls in testify's dependencies), so
// TestNew_RejectsUnavailableHash uses MD4 to exercise a real "not linked in"
// case.
import (
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
)
