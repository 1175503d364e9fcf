// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import "github.com/spf13/cobra"

// version is set at build time via:
//
//	go build -ldflags="-X github.com/go90a/hashdrbg/cmd/hashdrbg/cmd.version=vX.Y.Z"
var version = "v0.0.0-unset"

func init() {
	RootCmd.Version = version
	RootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Display the hashdrbg CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(RootCmd.Version)
		},
	})
}
