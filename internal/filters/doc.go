// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters narrows result sets with --filter expressions.
//
// A specification is a list of key-operator-target expressions separated by
// commas (or LINEAR_FILTER_DELIM). Keys are JSON paths into each row, such
// as "name" or "team.key". A row is kept when it matches every expression.
//
// Operators, each negated by a leading "!":
//
//   - = : exact match, numeric for numbers
//   - ~ : case-insensitive match
//   - ^ : prefix match
//   - < : less than, numeric for numbers
//   - > : greater than, numeric for numbers
//   - @ : substring, array member or object key
//   - / : regular expression match
//
// A key with no operator keeps rows where the value is present, not empty
// and not false.
//
// Examples:
//
//   - "type=started" : workflow states of type started
//   - "name^In" : names starting with "In"
//   - "active" : active users only
//   - "email!@example.com" : users outside example.com
package filters
