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

package config

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/colorimetry/cone"
	"seehuhn.de/go/colorimetry/display"
)

func TestLoad(t *testing.T) {
	path := filepath.Join("testdata", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Display.Name() != "crt" {
		t.Errorf("expected display crt, got %q", cfg.Display.Name())
	}
	if cfg.Format != FormatText {
		t.Errorf("expected format text, got %q", cfg.Format)
	}
	if cfg.Field != cone.TenDegree {
		t.Errorf("expected 10° field, got %s", cfg.Field)
	}
	for _, name := range []string{"srgb", "interior", "exterior", "crt", "wide"} {
		if _, err := cfg.Lookup(name); err != nil {
			t.Errorf("display %q: %v", name, err)
		}
	}
	if cfg.Display.HasTransfer() {
		t.Error("crt display should not use the sRGB transfer function")
	}
}

func TestDefault(t *testing.T) {
	cfg, err := Parse("empty.yaml", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display != display.SRGB || cfg.Format != FormatAuto || cfg.Field != cone.TwoDegree {
		t.Errorf("unexpected defaults: %s, %s, %s", cfg.Display, cfg.Format, cfg.Field)
	}
}

func TestSpectra(t *testing.T) {
	data := `
displays:
  - name: bands
    spectra:
      red: [[590, 0], [600, 1], [650, 1], [660, 0]]
      green: [[500, 0], [510, 1], [560, 1], [570, 0]]
      blue: [[420, 0], [430, 1], [470, 1], [480, 0]]
display: bands
`
	cfg, err := Parse("bands.yaml", []byte(data))
	if err != nil {
		t.Fatal(err)
	}
	w := cfg.Display.WhiteXYZ()
	if w.Y < 0.999999 || w.Y > 1.000001 {
		t.Errorf("white luminance %g, want 1", w.Y)
	}
}

func TestInvalid(t *testing.T) {
	type testCase struct {
		name  string
		data  string
		field string
	}
	testCases := []testCase{
		{"unknown display", "display: nope\n", "display"},
		{"bad format", "format: xml\n", "format"},
		{"bad field", "field: 5\n", "field"},
		{"missing name", "displays:\n  - matrix: [[1,0,0],[0,1,0],[0,0,1]]\n", "displays[0].name"},
		{"duplicate", "displays:\n  - name: srgb\n    matrix: [[1,0,0],[0,1,0],[0,0,1]]\n", "displays[0].name"},
		{"no definition", "displays:\n  - name: x\n", "displays[0]"},
		{"short row", "displays:\n  - name: x\n    matrix: [[1,0],[0,1,0],[0,0,1]]\n", "displays[0]"},
		{"singular", "displays:\n  - name: x\n    matrix: [[1,2,3],[2,4,6],[0,0,1]]\n", "displays[0]"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("test.yaml", []byte(tc.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), "field "+tc.field+":") {
				t.Errorf("expected field %s in error, got %v", tc.field, err)
			}
			if !strings.Contains(err.Error(), "test.yaml") {
				t.Errorf("expected path in error, got %v", err)
			}
		})
	}
}

func TestSyntaxError(t *testing.T) {
	_, err := Parse("broken.yaml", []byte("displays: [\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("got %v, want an invalid config error", err)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("expected an error")
	}
	var e *Error
	if !errors.As(err, &e) || e.Op != "config.load" {
		t.Errorf("unexpected error %v", err)
	}
}
