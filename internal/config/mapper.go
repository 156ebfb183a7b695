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
	"fmt"
	"strings"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/cone"
	"seehuhn.de/go/colorimetry/display"
	"seehuhn.de/go/colorimetry/spectrum"
)

// Map converts the decoded file contents into a Config.
func Map(path string, yc YAMLConfig) (*Config, error) {
	cfg := Default()

	for i, yd := range yc.Displays {
		prefix := fmt.Sprintf("displays[%d]", i)
		name := strings.TrimSpace(yd.Name)
		if name == "" {
			return nil, invalidField(path, prefix+".name", "display name is required")
		}
		if _, exists := cfg.Displays[name]; exists {
			return nil, invalidField(path, prefix+".name", fmt.Sprintf("duplicate display %q", name))
		}
		d, err := mapDisplay(name, yd)
		if err != nil {
			return nil, invalidField(path, prefix, err.Error())
		}
		cfg.Displays[name] = d
	}

	if name := strings.TrimSpace(yc.Display); name != "" {
		d, ok := cfg.Displays[name]
		if !ok {
			return nil, invalidField(path, "display", fmt.Sprintf("unknown display %q", name))
		}
		cfg.Display = d
	}

	switch f := strings.ToLower(strings.TrimSpace(yc.Format)); f {
	case "":
		// keep the default
	case FormatAuto, FormatText, FormatYAML:
		cfg.Format = f
	default:
		return nil, invalidField(path, "format", fmt.Sprintf("unknown format %q", yc.Format))
	}

	if s := strings.TrimSpace(yc.Field); s != "" {
		f, err := cone.ParseField(s)
		if err != nil {
			return nil, invalidField(path, "field", err.Error())
		}
		cfg.Field = f
	}

	return cfg, nil
}

func mapDisplay(name string, yd YAMLDisplay) (*display.Display, error) {
	n := 0
	if yd.Matrix != nil {
		n++
	}
	if yd.Primaries != nil {
		n++
	}
	if yd.Spectra != nil {
		n++
	}
	if n != 1 {
		return nil, fmt.Errorf("exactly one of matrix, primaries and spectra is required")
	}

	switch {
	case yd.Matrix != nil:
		if len(yd.Matrix) != 3 {
			return nil, fmt.Errorf("matrix must have 3 rows, not %d", len(yd.Matrix))
		}
		var M [3][3]float64
		for i, row := range yd.Matrix {
			if len(row) != 3 {
				return nil, fmt.Errorf("matrix row %d must have 3 entries, not %d", i, len(row))
			}
			copy(M[i][:], row)
		}
		return display.New(name, M, yd.SRGBTransfer)

	case yd.Primaries != nil:
		var xyz [3]colorimetry.XYZ
		for i, p := range [][]float64{yd.Primaries.Red, yd.Primaries.Green, yd.Primaries.Blue} {
			if len(p) != 3 {
				return nil, fmt.Errorf("primary %d must have 3 tristimulus values, not %d", i, len(p))
			}
			xyz[i] = colorimetry.XYZ{X: p[0], Y: p[1], Z: p[2]}
		}
		return display.FromPrimaries(name, xyz[0], xyz[1], xyz[2])

	default:
		var s [3]spectrum.Spectrum
		for i, pairs := range [][][]float64{yd.Spectra.Red, yd.Spectra.Green, yd.Spectra.Blue} {
			samples := make([]spectrum.Sample, len(pairs))
			for j, p := range pairs {
				if len(p) != 2 {
					return nil, fmt.Errorf("spectrum %d, sample %d: need (wavelength, value)", i, j)
				}
				samples[j] = spectrum.Sample{Wavelength: p[0], Value: p[1]}
			}
			var err error
			s[i], err = spectrum.New(samples)
			if err != nil {
				return nil, fmt.Errorf("spectrum %d: %w", i, err)
			}
		}
		return display.FromSpectra(name, spectrum.CIE1931, s[0], s[1], s[2])
	}
}

func invalidField(path, field, msg string) error {
	return &Error{
		Op:   "config.map",
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, ErrInvalidConfig),
	}
}
