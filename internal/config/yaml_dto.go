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

// YAMLConfig is the on-disk layout of a configuration file.
type YAMLConfig struct {
	Display  string        `yaml:"display"`
	Format   string        `yaml:"format"`
	Field    string        `yaml:"field"`
	Displays []YAMLDisplay `yaml:"displays"`
}

// YAMLDisplay describes an additional display.  Exactly one of Matrix,
// Primaries and Spectra must be given.
type YAMLDisplay struct {
	Name         string         `yaml:"name"`
	SRGBTransfer bool           `yaml:"srgb_transfer"`
	Matrix       [][]float64    `yaml:"matrix"`
	Primaries    *YAMLPrimaries `yaml:"primaries"`
	Spectra      *YAMLSpectra   `yaml:"spectra"`
}

// YAMLPrimaries holds the tristimulus values of the three primaries.
type YAMLPrimaries struct {
	Red   []float64 `yaml:"red"`
	Green []float64 `yaml:"green"`
	Blue  []float64 `yaml:"blue"`
}

// YAMLSpectra holds the emission spectra of the three primaries, as lists
// of (wavelength, value) pairs.
type YAMLSpectra struct {
	Red   [][]float64 `yaml:"red"`
	Green [][]float64 `yaml:"green"`
	Blue  [][]float64 `yaml:"blue"`
}
