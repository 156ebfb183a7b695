// seehuhn.de/go/colorimetry - colour science computations in Go
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package report formats the results of the colorimetry command.
//
// Results are written either as human readable text, or as YAML for
// further processing.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/colorimetry/internal/float"
)

// Number is a numeric value with a fixed number of digits after the
// decimal point and an optional unit.
type Number struct {
	Value  float64
	Digits int
	Unit   string
}

// N is a shorthand for creating a Number.
func N(value float64, digits int, unit string) Number {
	return Number{Value: value, Digits: digits, Unit: unit}
}

// Field is one named value in a Record.
type Field struct {
	Key   string
	Value any
}

// Record is a titled list of fields.
type Record struct {
	Title  string
	Fields []Field
}

// Add appends a field to the record.
func (r *Record) Add(key string, value any) {
	r.Fields = append(r.Fields, Field{Key: key, Value: value})
}

// Table is a titled table of values.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]any
}

// Append adds a row to the table.
func (t *Table) Append(row ...any) {
	t.Rows = append(t.Rows, row)
}

// Writer writes records and tables in one of the supported formats.
type Writer struct {
	out  io.Writer
	yaml bool
	p    *message.Printer
}

// New creates a Writer.  The format must be "text", "yaml" or "auto".  In
// auto mode, text is written if out is a terminal and YAML otherwise.
func New(out io.Writer, format string) (*Writer, error) {
	w := &Writer{
		out: out,
		p:   message.NewPrinter(language.English),
	}
	switch format {
	case "text":
	case "yaml":
		w.yaml = true
	case "auto", "":
		w.yaml = !isTerminal(out)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return w, nil
}

// IsYAML reports whether the writer produces YAML output.
func (w *Writer) IsYAML() bool {
	return w.yaml
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// WriteRecord writes a record.
func (w *Writer) WriteRecord(r *Record) error {
	if w.yaml {
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range r.Fields {
			if err := addPair(node, f.Key, f.Value); err != nil {
				return err
			}
		}
		return w.encode(wrap(r.Title, node))
	}

	tw := tabwriter.NewWriter(w.out, 0, 8, 1, ' ', 0)
	if r.Title != "" {
		fmt.Fprintln(tw, r.Title)
	}
	for _, f := range r.Fields {
		fmt.Fprintf(tw, "  %s:\t%s\n", f.Key, w.text(f.Value))
	}
	return tw.Flush()
}

// WriteTable writes a table.
func (w *Writer) WriteTable(t *Table) error {
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("table %q: row %d has %d entries, want %d",
				t.Title, i, len(row), len(t.Columns))
		}
	}

	if w.yaml {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, row := range t.Rows {
			m := &yaml.Node{Kind: yaml.MappingNode}
			for j, v := range row {
				if err := addPair(m, t.Columns[j], v); err != nil {
					return err
				}
			}
			seq.Content = append(seq.Content, m)
		}
		return w.encode(wrap(t.Title, seq))
	}

	tw := tabwriter.NewWriter(w.out, 0, 8, 2, ' ', tabwriter.AlignRight)
	if t.Title != "" {
		fmt.Fprintln(w.out, t.Title)
	}
	fmt.Fprintln(tw, strings.Join(t.Columns, "\t")+"\t")
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = w.text(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	return tw.Flush()
}

func (w *Writer) encode(node *yaml.Node) error {
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return err
	}
	return enc.Close()
}

// text formats a value for text output.  Numbers use thousands separators.
func (w *Writer) text(v any) string {
	switch v := v.(type) {
	case Number:
		s := w.p.Sprintf(fmt.Sprintf("%%.%df", v.Digits), float.Round(v.Value, v.Digits))
		if v.Unit != "" {
			s += " " + v.Unit
		}
		return s
	case float64:
		return w.p.Sprintf("%g", v)
	case int:
		return w.p.Sprintf("%d", v)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}
	return fmt.Sprint(v)
}

// wrap puts node under the key title.  If title is empty, node is
// returned unchanged.
func wrap(title string, node *yaml.Node) *yaml.Node {
	if title == "" {
		return node
	}
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{scalar(yamlKey(strings.ToLower(title))), node},
	}
}

func addPair(m *yaml.Node, key string, v any) error {
	val := &yaml.Node{}
	switch v := v.(type) {
	case Number:
		if math.IsInf(v.Value, 0) || math.IsNaN(v.Value) {
			if err := val.Encode(v.Value); err != nil {
				return err
			}
		} else {
			val = &yaml.Node{Kind: yaml.ScalarNode, Value: float.Format(v.Value, v.Digits)}
		}
	case fmt.Stringer:
		val = scalar(v.String())
	case error:
		val = scalar(v.Error())
	default:
		if err := val.Encode(v); err != nil {
			return err
		}
	}
	if val.Kind == 0 {
		return errors.New("report: cannot encode " + key)
	}
	m.Content = append(m.Content, scalar(yamlKey(key)), val)
	return nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// yamlKey converts a title or column name into a YAML key.
func yamlKey(s string) string {
	s = strings.TrimSpace(s)
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
