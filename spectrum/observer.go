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

package spectrum

import (
	"errors"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"

	"seehuhn.de/go/colorimetry"
)

// CMF is a tabulated value of the three colour matching functions.
type CMF struct {
	Wavelength float64 // nm
	X, Y, Z    float64
}

// LocusPoint is a point of the spectrum locus.
type LocusPoint struct {
	Wavelength float64
	colorimetry.Chromaticity
}

// Observer holds the colour matching functions of a standard observer.
type Observer struct {
	name   string
	table  []CMF
	cutoff float64

	wavelengths []float64
	fx, fy, fz  interp.PiecewiseLinear

	locusOnce sync.Once
	locus     []LocusPoint
}

// NewObserver creates an observer from tabulated colour matching functions.
//
// The table must be sorted by strictly increasing wavelength.  Near the
// long wavelength end of the visible spectrum, the chromaticities of most
// tabulated colour matching functions become unreliable and turn back onto
// themselves.  Only wavelengths up to cutoff are used for the spectrum
// locus.  A cutoff of zero uses all tabulated wavelengths.
func NewObserver(name string, table []CMF, cutoff float64) (*Observer, error) {
	if len(table) < 2 {
		return nil, fmt.Errorf("observer %q: need at least two samples", name)
	}

	n := len(table)
	wl := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i, c := range table {
		if i > 0 && !(c.Wavelength > table[i-1].Wavelength) {
			return nil, fmt.Errorf("observer %q: wavelengths not increasing at %g nm",
				name, c.Wavelength)
		}
		if !(c.X >= 0 && c.Y >= 0 && c.Z >= 0) {
			return nil, fmt.Errorf("observer %q: invalid values at %g nm", name, c.Wavelength)
		}
		wl[i], xs[i], ys[i], zs[i] = c.Wavelength, c.X, c.Y, c.Z
	}
	if cutoff == 0 {
		cutoff = wl[n-1]
	}

	o := &Observer{
		name:        name,
		table:       append([]CMF(nil), table...),
		cutoff:      cutoff,
		wavelengths: wl,
	}
	err := errors.Join(o.fx.Fit(wl, xs), o.fy.Fit(wl, ys), o.fz.Fit(wl, zs))
	if err != nil {
		return nil, fmt.Errorf("observer %q: %w", name, err)
	}
	return o, nil
}

// Name returns the name of the observer.
func (o *Observer) Name() string {
	return o.name
}

// Wavelengths returns the tabulated wavelengths.
func (o *Observer) Wavelengths() []float64 {
	return append([]float64(nil), o.wavelengths...)
}

// Range returns the smallest and largest tabulated wavelength.
func (o *Observer) Range() (float64, float64) {
	return o.wavelengths[0], o.wavelengths[len(o.wavelengths)-1]
}

// Table returns a copy of the tabulated colour matching functions.
func (o *Observer) Table() []CMF {
	return append([]CMF(nil), o.table...)
}

// At returns the values of the colour matching functions at the given
// wavelength, linearly interpolating between tabulated values.  Outside the
// tabulated range, the result is zero.
func (o *Observer) At(wavelength float64) colorimetry.XYZ {
	lo, hi := o.Range()
	if wavelength < lo || wavelength > hi {
		return colorimetry.XYZ{}
	}
	return colorimetry.XYZ{
		X: o.fx.Predict(wavelength),
		Y: o.fy.Predict(wavelength),
		Z: o.fz.Predict(wavelength),
	}
}

// Tristimulus computes the tristimulus values of a spectrum.
//
// Samples outside the tabulated range of the colour matching functions are
// ignored.  The products of the spectrum with the colour matching functions
// are integrated using the trapezoidal rule over the sample wavelengths.
func (o *Observer) Tristimulus(s Spectrum) (colorimetry.XYZ, error) {
	lo, hi := o.Range()
	s = s.Clip(lo, hi)
	if len(s) < 2 {
		return colorimetry.XYZ{}, fmt.Errorf("%s: need at least two samples in [%g, %g] nm",
			o.name, lo, hi)
	}

	n := len(s)
	wl := make([]float64, n)
	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)
	for i, p := range s {
		c := o.At(p.Wavelength)
		wl[i] = p.Wavelength
		px[i] = p.Value * c.X
		py[i] = p.Value * c.Y
		pz[i] = p.Value * c.Z
	}
	return colorimetry.XYZ{
		X: integrate.Trapezoidal(wl, px),
		Y: integrate.Trapezoidal(wl, py),
		Z: integrate.Trapezoidal(wl, pz),
	}, nil
}

// TristimulusOf computes the tristimulus values of a spectrum given by its
// values at the tabulated wavelengths of the observer.
func (o *Observer) TristimulusOf(values []float64) (colorimetry.XYZ, error) {
	if len(values) != len(o.wavelengths) {
		return colorimetry.XYZ{}, fmt.Errorf("%s: got %d values, want %d",
			o.name, len(values), len(o.wavelengths))
	}
	s := make(Spectrum, len(values))
	for i, v := range values {
		s[i] = Sample{Wavelength: o.wavelengths[i], Value: v}
	}
	return o.Tristimulus(s)
}

// Chromaticity computes the tristimulus values and the chromaticity of a
// spectrum.
func (o *Observer) Chromaticity(s Spectrum) (colorimetry.XYZ, colorimetry.Chromaticity, error) {
	xyz, err := o.Tristimulus(s)
	if err != nil {
		return colorimetry.XYZ{}, colorimetry.Chromaticity{}, err
	}
	if !(xyz.Sum() > 0) {
		return xyz, colorimetry.Chromaticity{}, fmt.Errorf("%s: spectrum has no visible energy", o.name)
	}
	return xyz, xyz.Chromaticity(), nil
}

// Locus returns the chromaticities of the monochromatic stimuli at the
// tabulated wavelengths, up to the cutoff wavelength of the observer.
// Wavelengths where all colour matching functions vanish are omitted.
//
// The result is computed on first use and must not be modified.
func (o *Observer) Locus() []LocusPoint {
	o.locusOnce.Do(func() {
		for _, c := range o.table {
			if c.Wavelength > o.cutoff {
				break
			}
			xyz := colorimetry.XYZ{X: c.X, Y: c.Y, Z: c.Z}
			if xyz.Sum() <= 0 {
				continue
			}
			o.locus = append(o.locus, LocusPoint{
				Wavelength:   c.Wavelength,
				Chromaticity: xyz.Chromaticity(),
			})
		}
	})
	return o.locus
}
