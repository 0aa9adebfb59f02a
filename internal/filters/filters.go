// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/lnctl/lnctl/internal/log"
)

// DelimEnv overrides the delimiter between filter expressions.
const DelimEnv = "LINEAR_FILTER_DELIM"

// filterRegex splits an expression into key, optional negated operator and
// target. Examples: "name" (key only), "name=Todo", "type!=canceled".
var filterRegex = regexp.MustCompile(`^([^!=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// Filter is a single parsed --filter expression.
type Filter struct {
	Key     string `yaml:"key"`
	Negate  bool   `yaml:"negate"`
	Operand string `yaml:"operand"`
	Value   string `yaml:"value"`
}

// BuildFilters parses a filter specification. Expressions with an empty key
// are logged and skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	delim := ","
	if d, ok := os.LookupEnv(DelimEnv); ok && d != "" {
		delim = d
	}

	for _, expr := range strings.Split(spec, delim) {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(expr)
		if parts == nil {
			log.Errorf("invalid filter: %s", expr)
			continue
		}

		key := strings.TrimSpace(parts[1])
		if key == "" {
			log.Errorf("invalid filter: empty key in %s", expr)
			continue
		}

		operand := parts[2]
		negate := strings.HasPrefix(operand, "!")
		operand = strings.TrimPrefix(operand, "!")

		filters = append(filters, Filter{
			Key:     key,
			Negate:  negate,
			Operand: operand,
			Value:   parts[3],
		})
	}

	return filters
}

// Apply returns the elements of the JSON array raw that match every
// expression in spec, re-encoded as a JSON array. Non-arrays and empty specs
// are returned unchanged.
func Apply(raw []byte, spec string) []byte {
	filters := BuildFilters(spec)
	doc := gjson.ParseBytes(raw)
	if len(filters) == 0 || !doc.IsArray() {
		return raw
	}

	var kept []string
	for _, row := range doc.Array() {
		if Match(row, filters) {
			kept = append(kept, row.Raw)
		}
	}
	log.Debugf("filter %q kept %d of %d rows", spec, len(kept), len(doc.Array()))

	return []byte("[" + strings.Join(kept, ",") + "]")
}

// Match reports whether row satisfies every filter. A key alone tests that
// the value is present and not empty.
func Match(row gjson.Result, filters []Filter) bool {
	for _, f := range filters {
		v := row.Get(f.Key)

		if f.Operand == "" {
			present := v.Exists() && v.Type != gjson.Null && v.String() != "" && v.Type != gjson.False
			if present == f.Negate {
				return false
			}
			continue
		}

		if !v.Exists() || v.Type == gjson.Null {
			if !f.Negate {
				return false
			}
			continue
		}

		var ok bool
		switch {
		case f.Operand == "@" && (v.IsArray() || v.IsObject()):
			ok = checkContainsOperand(v, f)
		case v.Type == gjson.Number:
			ok = checkNumericOperand(v.Float(), f)
		default:
			ok = checkStringOperand(v.String(), f)
		}
		if !ok {
			return false
		}
	}
	return true
}

// checkContainsOperand tests membership in an array or key presence in an
// object.
func checkContainsOperand(v gjson.Result, f Filter) bool {
	found := false
	if v.IsObject() {
		found = v.Get(gjson.Escape(f.Value)).Exists()
	} else {
		v.ForEach(func(_, item gjson.Result) bool {
			found = item.String() == f.Value
			return !found
		})
	}
	return found != f.Negate
}

// checkNumericOperand compares numerically. Operands other than =, < and >
// fall back to comparing the string form.
func checkNumericOperand(value float64, f Filter) bool {
	switch f.Operand {
	case "=", "<", ">":
	default:
		return checkStringOperand(strconv.FormatFloat(value, 'f', -1, 64), f)
	}

	tgt, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
	if err != nil {
		log.Errorf("invalid numeric value: %s", f.Value)
		return false
	}

	switch f.Operand {
	case "=":
		return (value == tgt) != f.Negate
	case ">":
		return (value > tgt) != f.Negate
	default:
		return (value < tgt) != f.Negate
	}
}

// checkStringOperand evaluates a string comparison.
func checkStringOperand(value string, f Filter) bool {
	switch f.Operand {
	case "=":
		return (value == f.Value) != f.Negate
	case "~":
		return strings.EqualFold(value, f.Value) != f.Negate
	case "^":
		return strings.HasPrefix(value, f.Value) != f.Negate
	case ">":
		return (value > f.Value) != f.Negate
	case "<":
		return (value < f.Value) != f.Negate
	case "@":
		return strings.Contains(value, f.Value) != f.Negate
	case "/":
		matched, err := regexp.MatchString(f.Value, value)
		if err != nil {
			log.Errorf("invalid regex: %s", f.Value)
			return false
		}
		return matched != f.Negate
	default:
		log.Errorf("unsupported filtering operand: %s", f.Operand)
		return false
	}
}
