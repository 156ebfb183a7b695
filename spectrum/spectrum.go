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

// Package spectrum implements spectral power distributions and the
// computation of tristimulus values from spectra.
//
// An [Observer] holds tabulated colour matching functions.  The
// built-in [CIE1931] observer covers 380 nm to 780 nm in steps of 5 nm;
// further observers can be created using [NewObserver].
//
// Wavelengths are given in nanometres throughout.
package spectrum

import (
	"cmp"
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Sample is a single point of a spectrum.
type Sample struct {
	Wavelength float64 // nm
	Value      float64
}

// Spectrum is a spectral power distribution, sorted by wavelength.
type Spectrum []Sample

// ErrRepeatedWavelength is returned when a spectrum contains the same
// wavelength more than once.
var ErrRepeatedWavelength = errors.New("spectrum: repeated wavelength")

// New creates a spectrum from the given samples.  The samples are copied
// and sorted by wavelength.  Wavelengths must be positive and distinct, and
// all values must be finite and non-negative.
func New(samples []Sample) (Spectrum, error) {
	s := make(Spectrum, len(samples))
	copy(s, samples)
	slices.SortFunc(s, func(a, b Sample) int {
		return cmp.Compare(a.Wavelength, b.Wavelength)
	})
	for i, p := range s {
		if !(p.Wavelength > 0) || math.IsInf(p.Wavelength, 0) {
			return nil, fmt.Errorf("spectrum: invalid wavelength %g", p.Wavelength)
		}
		if !(p.Value >= 0) || math.IsInf(p.Value, 0) {
			return nil, fmt.Errorf("spectrum: invalid value %g at %g nm", p.Value, p.Wavelength)
		}
		if i > 0 && s[i-1].Wavelength == p.Wavelength {
			return nil, fmt.Errorf("%w %g", ErrRepeatedWavelength, p.Wavelength)
		}
	}
	return s, nil
}

// FromWaveNumbers creates a spectrum from samples whose Wavelength field
// holds a wave number in 1/cm.  The wave numbers are converted to
// wavelengths in nm.
func FromWaveNumbers(samples []Sample) (Spectrum, error) {
	converted := make([]Sample, len(samples))
	for i, p := range samples {
		if !(p.Wavelength > 0) {
			return nil, fmt.Errorf("spectrum: invalid wave number %g", p.Wavelength)
		}
		converted[i] = Sample{Wavelength: 1e7 / p.Wavelength, Value: p.Value}
	}
	return New(converted)
}

// Sampled creates a spectrum with the given values at the given wavelengths.
func Sampled(wavelengths, values []float64) (Spectrum, error) {
	if len(wavelengths) != len(values) {
		return nil, fmt.Errorf("spectrum: %d wavelengths but %d values",
			len(wavelengths), len(values))
	}
	samples := make([]Sample, len(values))
	for i := range values {
		samples[i] = Sample{Wavelength: wavelengths[i], Value: values[i]}
	}
	return New(samples)
}

// Wavelengths returns the wavelengths of the samples.
func (s Spectrum) Wavelengths() []float64 {
	res := make([]float64, len(s))
	for i, p := range s {
		res[i] = p.Wavelength
	}
	return res
}

// Values returns the values of the samples.
func (s Spectrum) Values() []float64 {
	res := make([]float64, len(s))
	for i, p := range s {
		res[i] = p.Value
	}
	return res
}

// Clip returns the samples with wavelengths in [lo, hi].
// The result shares storage with s.
func (s Spectrum) Clip(lo, hi float64) Spectrum {
	start, _ := slices.BinarySearchFunc(s, lo, func(p Sample, t float64) int {
		return cmp.Compare(p.Wavelength, t)
	})
	end := start
	for end < len(s) && s[end].Wavelength <= hi {
		end++
	}
	return s[start:end]
}

// Scale multiplies all values by f.
func (s Spectrum) Scale(f float64) Spectrum {
	res := make(Spectrum, len(s))
	for i, p := range s {
		res[i] = Sample{Wavelength: p.Wavelength, Value: p.Value * f}
	}
	return res
}
