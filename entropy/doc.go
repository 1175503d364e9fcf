// Copyright (c) 2026 The Hash90A Authors
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package entropy implements the multi-source entropy orchestrator: given an
// ordered list of Sources, each carrying a declared per-draw bit credit and
// ONCE/NO_PREV flags, it accumulates bytes across repeated passes over the
// list until a target bit count is met or every source is exhausted.
//
// The orchestrator performs no statistical validation of what a Source
// returns; the bit credit a Source declares is trusted as configuration, the
// same way a hardware RNG driver's advertised entropy rate is trusted by the
// system that consumes it.
package entropy
