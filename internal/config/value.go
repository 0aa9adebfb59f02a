// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidPath is returned when a dot-path is empty or has empty segments.
var ErrInvalidPath = errors.New("invalid config path")

// Value is a node in the configuration document. It is one of String, Bool,
// Int, Float, List or Table.
type Value interface {
	fmt.Stringer
	isValue()
}

type (
	String string
	Bool   bool
	Int    int64
	Float  float64
	List   []Value
	Table  map[string]Value
)

func (String) isValue() {}
func (Bool) isValue()   {}
func (Int) isValue()    {}
func (Float) isValue()  {}
func (List) isValue()   {}
func (Table) isValue()  {}

func (v String) String() string { return string(v) }
func (v Bool) String() string   { return strconv.FormatBool(bool(v)) }
func (v Int) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string  { return strconv.FormatFloat(float64(v), 'f', -1, 64) }

func (v List) String() string {
	b, _ := json.Marshal(Native(v))
	return string(b)
}

func (v Table) String() string {
	b, _ := json.Marshal(Native(v))
	return string(b)
}

// Lookup walks the dot-separated path and returns the value found there.
func (t Table) Lookup(path string) (Value, bool) {
	keys, err := splitPath(path)
	if err != nil {
		return nil, false
	}

	var current Value = t
	for _, key := range keys {
		tbl, ok := current.(Table)
		if !ok {
			return nil, false
		}
		current, ok = tbl[key]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Get is Lookup under the Getter name.
func (t Table) Get(path string) (Value, bool) {
	return t.Lookup(path)
}

// Assign stores v at path, creating intermediate tables as needed. A
// non-table value found along the way is replaced by a new table so that
// previously scalar keys can be deepened.
func (t Table) Assign(path string, v Value) error {
	keys, err := splitPath(path)
	if err != nil {
		return err
	}

	current := t
	for _, key := range keys[:len(keys)-1] {
		next, ok := current[key].(Table)
		if !ok {
			next = Table{}
			current[key] = next
		}
		current = next
	}

	current[keys[len(keys)-1]] = v
	return nil
}

// Delete removes the value at path and reports whether anything was removed.
func (t Table) Delete(path string) bool {
	keys, err := splitPath(path)
	if err != nil {
		return false
	}

	current := t
	for _, key := range keys[:len(keys)-1] {
		next, ok := current[key].(Table)
		if !ok {
			return false
		}
		current = next
	}

	last := keys[len(keys)-1]
	if _, ok := current[last]; !ok {
		return false
	}
	delete(current, last)
	return true
}

// Flatten returns every leaf of the table keyed by its dot-path. Lists are
// leaves.
func (t Table) Flatten() map[string]Value {
	out := map[string]Value{}
	flatten("", t, out)
	return out
}

// Paths returns the leaf paths of the table in sorted order.
func (t Table) Paths() []string {
	flat := t.Flatten()
	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func flatten(prefix string, t Table, out map[string]Value) {
	for k, v := range t {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(Table); ok {
			flatten(key, sub, out)
			continue
		}
		out[key] = v
	}
}

func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}
	keys := strings.Split(path, ".")
	for _, k := range keys {
		if k == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}
	return keys, nil
}

// FromNative converts a decoded TOML (or JSON) value into a Value. Datetimes
// are kept as RFC 3339 strings. Unsupported types report false.
func FromNative(in any) (Value, bool) {
	switch v := in.(type) {
	case Value:
		return v, true
	case string:
		return String(v), true
	case bool:
		return Bool(v), true
	case int:
		return Int(v), true
	case int64:
		return Int(v), true
	case float64:
		return Float(v), true
	case time.Time:
		return String(v.Format(time.RFC3339)), true
	case map[string]any:
		t := Table{}
		for k, item := range v {
			if val, ok := FromNative(item); ok {
				t[k] = val
			}
		}
		return t, true
	case []map[string]any:
		l := make(List, 0, len(v))
		for _, item := range v {
			val, _ := FromNative(item)
			l = append(l, val)
		}
		return l, true
	case []any:
		l := make(List, 0, len(v))
		for _, item := range v {
			if val, ok := FromNative(item); ok {
				l = append(l, val)
			}
		}
		return l, true
	default:
		return nil, false
	}
}

// Native converts a Value back into plain Go types suitable for encoding.
func Native(v Value) any {
	switch v := v.(type) {
	case String:
		return string(v)
	case Bool:
		return bool(v)
	case Int:
		return int64(v)
	case Float:
		return float64(v)
	case List:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Native(item)
		}
		return out
	case Table:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = Native(item)
		}
		return out
	default:
		return nil
	}
}

// ParseValue interprets a command line string: true/false become Bool,
// integers become Int, decimals become Float, everything else is a String.
func ParseValue(raw string) Value {
	switch strings.ToLower(raw) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	// Leading zeros are kept verbatim ("007" is an identifier, not 7).
	if len(raw) > 1 && raw[0] == '0' && raw[1] != '.' {
		return String(raw)
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && strings.Contains(raw, ".") {
		return Float(f)
	}
	return String(raw)
}
