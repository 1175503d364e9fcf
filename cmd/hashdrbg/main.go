// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package main

import "github.com/go90a/hashdrbg/cmd/hashdrbg/cmd"

func main() {
	cmd.Execute()
}
