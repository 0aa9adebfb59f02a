// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testBuildFiltersCase represents a single test case for TestBuildFilters.
type testBuildFiltersCase struct {
	Name      string   `yaml:"name"`
	Spec      string   `yaml:"spec"`
	Delimiter string   `yaml:"delimiter"`
	Want      []Filter `yaml:"want"`
	WantCount int      `yaml:"wantCount"`
}

// testCheckStringOperandCase represents a single test case for
// TestCheckStringOperand.
type testCheckStringOperandCase struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Filter Filter `yaml:"filter"`
	Want   bool   `yaml:"want"`
}

// testCheckNumericOperandCase represents a single test case for
// TestCheckNumericOperand.
type testCheckNumericOperandCase struct {
	Name   string  `yaml:"name"`
	Value  float64 `yaml:"value"`
	Filter Filter  `yaml:"filter"`
	Want   bool    `yaml:"want"`
}

// testFilterRowsCase represents a single test case for TestApply.
type testFilterRowsCase struct {
	Name      string   `yaml:"name"`
	Spec      string   `yaml:"spec"`
	WantNames []string `yaml:"wantNames"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v any) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestBuildFilters(t *testing.T) {
	var tests []testBuildFiltersCase
	require.NoError(t, loadTestData("build_filters.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			t.Setenv(DelimEnv, tt.Delimiter)

			got := BuildFilters(tt.Spec)
			require.Len(t, got, tt.WantCount)
			for i, filter := range tt.Want {
				assert.Equal(t, filter, got[i])
			}
		})
	}
}

func TestCheckStringOperand(t *testing.T) {
	var tests []testCheckStringOperandCase
	require.NoError(t, loadTestData("check_string_operand.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Want, checkStringOperand(tt.Value, tt.Filter))
		})
	}
}

func TestCheckNumericOperand(t *testing.T) {
	var tests []testCheckNumericOperandCase
	require.NoError(t, loadTestData("check_numeric_operand.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Want, checkNumericOperand(tt.Value, tt.Filter))
		})
	}
}

const rows = `[
	{"name": "Backlog", "type": "backlog", "position": 0, "tags": ["triage"], "team": {"key": "ENG"}},
	{"name": "Todo", "type": "unstarted", "position": 1, "default": true, "team": {"key": "ENG"}},
	{"name": "In Progress", "type": "started", "position": 2, "default": false, "team": {"key": "ENG"}},
	{"name": "Done", "type": "completed", "position": 3, "default": null, "team": {"key": "ENG"}},
	{"name": "Canceled", "type": "canceled", "position": 4, "team": {"key": "ENG"}}
]`

func TestApply(t *testing.T) {
	var tests []testFilterRowsCase
	require.NoError(t, loadTestData("filter_rows.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := Apply([]byte(rows), tt.Spec)
			require.True(t, gjson.ValidBytes(got))

			names := []string{}
			for _, n := range gjson.GetBytes(got, "#.name").Array() {
				names = append(names, n.String())
			}
			assert.Equal(t, tt.WantNames, names)
		})
	}
}

// TestApply_NonArray verifies single objects pass through untouched.
func TestApply_NonArray(t *testing.T) {
	raw := []byte(`{"name":"x"}`)
	assert.Equal(t, raw, Apply(raw, "name=y"))
}
