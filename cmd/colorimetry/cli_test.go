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

package main

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvert(t *testing.T) {
	out, err := run(t, "--format", "yaml", "convert", "rgb", "xy", "1", "1", "1")
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]map[string]float64
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if x := got["xy"]["x"]; x < 0.3127 || x > 0.3128 {
		t.Errorf("white x = %g", x)
	}
	if y := got["xy"]["y"]; y < 0.3289 || y > 0.3291 {
		t.Errorf("white y = %g", y)
	}
}

func TestConvertErrors(t *testing.T) {
	testCases := [][]string{
		{"convert", "rgb", "hsv", "1", "1", "1"},
		{"convert", "rgb", "xyz", "1", "1"},
		{"convert", "xy", "xyz", "0.3", "0.3"},
		{"convert", "rgb", "xyz", "2", "0", "0"},
		{"convert", "rgb", "xyz", "a", "b", "c"},
	}
	for _, args := range testCases {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestCCTCommand(t *testing.T) {
	out, err := run(t, "--format", "text", "cct", "0.31271", "0.32902")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "6,5") || !strings.Contains(out, " K") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "valid:") || !strings.Contains(out, "true") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestLocusCommand(t *testing.T) {
	out, err := run(t, "--format", "yaml", "locus", "550")
	if err != nil {
		t.Fatal(err)
	}
	var got map[string][]map[string]float64
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	rows := got["spectrum_locus"]
	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
	if x := rows[0]["x"]; x < 0.3015 || x > 0.3017 {
		t.Errorf("x = %g", x)
	}
}

func TestCopunctalCommand(t *testing.T) {
	out, err := run(t, "--format", "yaml", "copunctal", "short")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "cone: short") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "format: yaml\ndisplays:\n  - name: unit\n    matrix: [[0.5,0.3,0.2],[0.2,0.7,0.1],[0,0.1,0.9]]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "--config", path, "displays")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "name: unit") || !strings.Contains(out, "name: srgb") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := run(t, "--config", path, "--display", "missing", "displays"); err == nil {
		t.Error("expected an error for an unknown display")
	}
}

func TestFilterCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	outPath := filepath.Join(dir, "out.png")

	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			img.SetNRGBA(x, y, color.NRGBA{uint8(30 * x), uint8(30 * y), 100, 255})
		}
	}
	if err := writePNG(in, img); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "--format", "yaml", "filter", "--size", "4", "long", in, outPath)
	if err != nil {
		t.Fatal(err)
	}
	res, err := readPNG(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Bounds(); got != image.Rect(0, 0, 4, 4) {
		t.Errorf("output has bounds %v", got)
	}
	if !strings.Contains(out, "width: 4") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestFieldFlag(t *testing.T) {
	out, err := run(t, "--format", "yaml", "--field", "10", "locus", "550")
	if err != nil {
		t.Fatal(err)
	}
	var got map[string][]map[string]float64
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	rows := got["spectrum_locus"]
	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
	if x := rows[0]["x"]; x < 0.3472 || x > 0.3474 {
		t.Errorf("x = %g", x)
	}

	if _, err := run(t, "--field", "7", "locus", "550"); err == nil {
		t.Error("expected an error for an unknown field size")
	}
}

func TestThumbnail(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 200))
	small := thumbnail(img, 100)
	if got := small.Bounds(); got != image.Rect(0, 0, 100, 50) {
		t.Errorf("got bounds %v", got)
	}
	same := thumbnail(img, 1000)
	if got := same.Bounds(); got != image.Rect(0, 0, 400, 200) {
		t.Errorf("got bounds %v", got)
	}
}
