// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package prompt asks the user to settle ambiguous lookups with a terminal
// single-choice list.
package prompt
