// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/lnctl/lnctl/internal/config"
	"github.com/lnctl/lnctl/internal/filters"
	"github.com/lnctl/lnctl/internal/log"
)

// Formats lists the accepted --output values.
var Formats = []string{"text", "json", "yaml"}

// Column maps a JSON path in each row to a table column.
type Column struct {
	Title string
	Path  string
}

// Options control how a result set is rendered.
type Options struct {
	Format string
	Titles bool
	Color  bool
	Sort   string
	// Filter is a --filter specification applied to array results.
	Filter string
	// Colors supplies colors.title, colors.even and colors.odd overrides.
	Colors config.Getter
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value any, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(b)
	}
}

// Spit renders data to w. json and yaml emit data as is; text renders cols
// of each row as a table. data is a struct, a map or a slice of either.
// Array results are narrowed by the filter first.
func Spit(w io.Writer, data any, cols []Column, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	raw = filters.Apply(raw, opts.Filter)

	switch opts.Format {
	case "json":
		return writeJSON(w, raw)
	case "yaml":
		return writeYAML(w, raw)
	}

	doc := gjson.ParseBytes(raw)
	if doc.Type == gjson.String {
		_, err := fmt.Fprintln(w, doc.String())
		return err
	}

	var rows []map[string]any
	if doc.IsArray() {
		for _, r := range doc.Array() {
			rows = append(rows, project(r, cols))
		}
	} else {
		rows = append(rows, project(doc, cols))
	}

	if opts.Sort != "" {
		SortDataset(rows, opts.Sort)
	}

	TableWriter(w, rows, cols, opts)
	return nil
}

func project(row gjson.Result, cols []Column) map[string]any {
	out := make(map[string]any, len(cols))
	for _, c := range cols {
		out[c.Title] = row.Get(c.Path).Value()
	}
	return out
}

func writeJSON(w io.Writer, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format json: %w", err)
	}
	buf.WriteByte('\n')
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}
	return nil
}

// writeYAML re-encodes the JSON form so keys keep their JSON names and
// order.
func writeYAML(w io.Writer, raw []byte) error {
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return fmt.Errorf("failed to convert to yaml: %w", err)
	}
	blockStyle(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("failed to write yaml: %w", err)
	}
	return enc.Close()
}

// blockStyle clears the flow and quoting styles JSON input leaves behind.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// TableWriter renders rows as a borderless table honoring the title and
// color options.
func TableWriter(w io.Writer, rows []map[string]any, cols []Column, opts Options) {
	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors(opts.Colors)

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	var cells [][]string
	for _, row := range rows {
		line := make([]string, 0, len(cols))
		for _, c := range cols {
			line = append(line, InterfaceToString(row[c.Title], "-"))
		}
		cells = append(cells, line)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(1)
			}

			return style
		}).
		Rows(cells...)

	if opts.Titles {
		headers := make([]string, 0, len(cols))
		for _, c := range cols {
			headers = append(headers, c.Title)
		}

		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}

	fmt.Fprintln(w, t)
}

// getColors returns the table colors. Explicit colors from the document win;
// otherwise a default is picked for the terminal background.
func getColors(doc config.Getter) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		if doc != nil {
			if v, ok := doc.Get("colors." + key); ok {
				return lipgloss.Color(v.String())
			}
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor("title", "#b08800", "#f6be00")
	even = resolveColor("even", "#333333", "#ffffff")
	odd = resolveColor("odd", "#0088a0", "#00c8f0")

	log.Debugf("table colors: dark=%v", isDark)
	return
}
