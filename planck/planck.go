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

// Package planck computes the Planckian locus and correlated colour
// temperatures.
//
// The chromaticity of a black body at temperature T is found by sampling
// Planck's law at the tabulated wavelengths of an observer.  The
// correlated colour temperature of a chromaticity is the temperature of
// the nearest point of the Planckian locus in the CIE 1960 (u, v) plane.
package planck

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/spectrum"
)

const (
	// MaxDistance is the largest (u, v) distance from the Planckian locus
	// for which a correlated colour temperature is considered meaningful.
	MaxDistance = 0.05

	// MaxTemperature is the temperature above which a correlated colour
	// temperature is considered invalid.
	MaxTemperature = 1e10

	// SeedTemperature is the starting point of the search for the
	// correlated colour temperature.
	SeedTemperature = 6500

	// IsothermOffset is the temperature difference used to estimate the
	// direction of the Planckian locus.
	IsothermOffset = 100

	// IsothermLength is the (u, v) distance of the isotherm endpoints from
	// the Planckian locus.
	IsothermLength = 0.05
)

// Locus is the Planckian locus of an observer.
type Locus struct {
	obs *spectrum.Observer
}

// New returns the Planckian locus for the given observer.
func New(obs *spectrum.Observer) *Locus {
	return &Locus{obs: obs}
}

// CIE1931 is the Planckian locus for the CIE 1931 2° observer.
var CIE1931 = New(spectrum.CIE1931)

// CIE1964 is the Planckian locus for the CIE 1964 10° observer.
var CIE1964 = New(spectrum.CIE1964)

// Observer returns the observer used for computing chromaticities.
func (l *Locus) Observer() *spectrum.Observer {
	return l.obs
}

// Chromaticity returns the chromaticity of a black body at temperature T
// (in K), in (x, y) and (u, v) coordinates.
func (l *Locus) Chromaticity(T float64) (colorimetry.Chromaticity, colorimetry.UV, error) {
	s, err := spectrum.Blackbody(T, l.obs.Wavelengths())
	if err != nil {
		return colorimetry.Chromaticity{}, colorimetry.UV{}, err
	}
	_, c, err := l.obs.Chromaticity(s)
	if err != nil {
		return colorimetry.Chromaticity{}, colorimetry.UV{}, fmt.Errorf("%g K: %w", T, err)
	}
	return c, c.UV(), nil
}

// Isotherm holds the endpoints of an isotherm, i.e. of a line of constant
// correlated colour temperature crossing the Planckian locus.
type Isotherm struct {
	Temperature float64
	UV          [2]colorimetry.UV
	XY          [2]colorimetry.Chromaticity
}

// IsothermEndpoints computes the isotherm for temperature T.
//
// The local direction of the Planckian locus is estimated from the
// chromaticities at T-100 K and T+100 K, where the lower temperature is
// kept at or above 100 K.  The endpoints lie at (u, v) distance 0.05 on
// either side of the locus, perpendicular to this direction.
func (l *Locus) IsothermEndpoints(T float64) (*Isotherm, error) {
	if !(T > 0) {
		return nil, fmt.Errorf("isotherm: invalid temperature %g K", T)
	}

	var uv [3]colorimetry.UV
	for i, offset := range []float64{-IsothermOffset, 0, IsothermOffset} {
		_, c, err := l.Chromaticity(math.Max(IsothermOffset, T+offset))
		if err != nil {
			return nil, err
		}
		uv[i] = c
	}

	angle := math.Atan2(uv[2].V-uv[0].V, uv[2].U-uv[0].U)
	res := &Isotherm{Temperature: T}
	for i, rot := range []float64{-math.Pi / 2, math.Pi / 2} {
		p := colorimetry.UV{
			U: uv[1].U + IsothermLength*math.Cos(angle+rot),
			V: uv[1].V + IsothermLength*math.Sin(angle+rot),
		}
		res.UV[i] = p
		res.XY[i] = p.Chromaticity()
	}
	return res, nil
}

// CCT is the result of a correlated colour temperature computation.
type CCT struct {
	Temperature float64 // K
	Distance    float64 // (u, v) distance from the Planckian locus

	// Valid is set if the distance is at most MaxDistance and the
	// temperature is below MaxTemperature.
	Valid bool
}

// CorrelatedColorTemperature finds the temperature of the point on the
// Planckian locus nearest to c.  Both coordinates of c must lie in [0, 1].
//
// The search uses the Nelder-Mead method, started at 6500 K.  The result
// is returned even if it is not valid.
func (l *Locus) CorrelatedColorTemperature(c colorimetry.UV) (*CCT, error) {
	if err := colorimetry.CheckRange("CorrelatedColorTemperature", "u", c.U, 0, 1); err != nil {
		return nil, err
	}
	if err := colorimetry.CheckRange("CorrelatedColorTemperature", "v", c.V, 0, 1); err != nil {
		return nil, err
	}

	dist := func(x []float64) float64 {
		T := x[0]
		if !(T > 0) {
			// outside the domain of Planck's law
			return 10 - T
		}
		_, uv, err := l.Chromaticity(T)
		d := uv.Dist(c)
		if err != nil || math.IsNaN(d) {
			return 10 + math.Log(T)
		}
		return d
	}

	problem := optimize.Problem{Func: dist}
	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-12,
			Relative:   1e-12,
			Iterations: 50,
		},
		MajorIterations: 5000,
	}
	method := &optimize.NelderMead{SimplexSize: 0.05 * SeedTemperature}
	res, err := optimize.Minimize(problem, []float64{SeedTemperature}, settings, method)
	if res == nil {
		return nil, fmt.Errorf("correlated colour temperature: %w", err)
	}

	T := res.X[0]
	d := res.F
	return &CCT{
		Temperature: T,
		Distance:    d,
		Valid:       d <= MaxDistance && T < MaxTemperature,
	}, nil
}
