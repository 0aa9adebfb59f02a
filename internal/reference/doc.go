// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package reference resolves user input into a canonical issue, project or
// document reference.
//
// Input is tried as, in order:
//
//   - a permalink, https://linear.app/<workspace>/<kind>/<id>[/<slug>]
//   - a direct identifier: ENG-123 for issues, a UUID otherwise. A bare
//     issue number is prefixed with the default team first.
//   - free text, searched remotely. Several hits are settled by a Chooser
//     when interactive, otherwise the first hit wins.
package reference
