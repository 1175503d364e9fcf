// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "hashdrbg",
	Short: "A command-line tool for generating pseudorandom bytes with a NIST SP 800-90A Hash_DRBG",
	Long: `hashdrbg is a command-line front end over a Hash_DRBG (NIST SP 800-90A Rev. 1)
implementation: instantiate a generator variant, optionally personalize it,
and request pseudorandom output.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to happen
// once to RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing hashdrbg: %v\n", err)
		os.Exit(1)
	}
}
