// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lnctl/lnctl/internal/config"
)

type state struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Position float64 `json:"position"`
}

var states = []state{
	{ID: "s2", Name: "Done", Position: 2},
	{ID: "s1", Name: "todo", Position: 1},
	{ID: "s3", Name: "Backlog", Position: 0},
}

var stateCols = []Column{{Title: "name", Path: "name"}, {Title: "position", Path: "position"}}

func TestSortDataset(t *testing.T) {
	rows := func() []map[string]any {
		return []map[string]any{
			{"name": "zebra", "count": 3.0},
			{"name": "Alpha", "count": 1.0},
			{"name": "beta", "count": 2.0},
			{"name": "beta", "count": 0.5},
		}
	}

	tests := []struct {
		name string
		spec string
		want []any
	}{
		{"ascending by name", "name", []any{1.0, 2.0, 0.5, 3.0}},
		{"descending by name", "-name", []any{3.0, 2.0, 0.5, 1.0}},
		{"ascending by count", "count", []any{0.5, 1.0, 2.0, 3.0}},
		{"descending by count", "-count", []any{3.0, 2.0, 1.0, 0.5}},
		{"case sensitive", "!name", []any{1.0, 2.0, 0.5, 3.0}},
		{"multiple fields", "name,count", []any{1.0, 0.5, 2.0, 3.0}},
		{"empty spec", "", []any{3.0, 1.0, 2.0, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := rows()
			SortDataset(data, tt.spec)

			var got []any
			for _, r := range data {
				got = append(got, r["count"])
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		emptyVal string
		want     string
	}{
		{name: "string", value: "hello", want: "hello"},
		{name: "int", value: 42, want: "42"},
		{name: "whole float", value: 42.0, want: "42"},
		{name: "fractional float", value: 42.5, want: "42.5"},
		{name: "bool true", value: true, want: "true"},
		{name: "bool false is zero value", value: false, want: ""},
		{name: "nil default", value: nil, want: ""},
		{name: "nil custom", value: nil, emptyVal: "-", want: "-"},
		{name: "slice", value: []string{"a", "b"}, want: `["a","b"]`},
		{name: "map", value: map[string]int{"x": 1}, want: `{"x":1}`},
		{name: "zero value with custom empty", value: 0, emptyVal: "N/A", want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpit_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, states[:1], stateCols, Options{Format: "json"}))

	assert.JSONEq(t, `[{"id":"s2","name":"Done","position":2}]`, buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

// TestSpit_YAML verifies keys keep their JSON names and order.
func TestSpit_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, states[:1], stateCols, Options{Format: "yaml"}))

	assert.Equal(t, "- id: s2\n  name: Done\n  position: 2\n", buf.String())
}

// TestSpit_YAMLQuotesAmbiguousStrings verifies strings that read as other
// types stay strings.
func TestSpit_YAMLQuotesAmbiguousStrings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, map[string]string{"v": "true"}, nil, Options{Format: "yaml"}))

	assert.Equal(t, "v: \"true\"\n", buf.String())
}

func TestSpit_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, states, stateCols, Options{Format: "text", Sort: "position"}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Backlog")
	assert.Contains(t, lines[0], "-", "zero position renders as empty marker")
	assert.Contains(t, lines[1], "todo")
	assert.Contains(t, lines[2], "Done")
}

func TestSpit_TextTitles(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, states[0], stateCols, Options{Titles: true}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, lines[0], "position")
	assert.Contains(t, lines[1], "Done")
}

func TestSpit_TextScalar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, "ENG-123", nil, Options{Format: "text"}))

	assert.Equal(t, "ENG-123\n", buf.String())
}

func TestSpit_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, []state{}, stateCols, Options{Format: "text"}))

	assert.Empty(t, buf.String())
}

// TestGetColors verifies configured colors are honored and defaults fill
// the rest.
func TestGetColors(t *testing.T) {
	doc := config.Table{"colors": config.Table{"title": config.String("#123456")}}

	header, even, odd := getColors(doc)

	assert.Equal(t, lipgloss.Color("#123456"), header)
	assert.NotNil(t, even)
	assert.NotNil(t, odd)

	header, _, _ = getColors(nil)
	assert.NotNil(t, header)
}

// TestSpit_Filter verifies --filter narrows every format.
func TestSpit_Filter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, states, stateCols, Options{Format: "json", Filter: "position>0"}))
	assert.JSONEq(t, `[{"id":"s2","name":"Done","position":2},{"id":"s1","name":"todo","position":1}]`, buf.String())

	buf.Reset()
	require.NoError(t, Spit(&buf, states, stateCols, Options{Format: "text", Filter: "name~TODO"}))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "todo")
}
