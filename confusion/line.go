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

package confusion

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/cone"
	"seehuhn.de/go/colorimetry/display"
	"seehuhn.de/go/colorimetry/internal/mat3"
)

// ActivationStep is the change in the activation of the missing cone used
// to find a second point on a confusion line.
const ActivationStep = 0.05

// Line is a confusion line through a display colour.
type Line struct {
	Cone Cone

	// Start is the chromaticity of the display colour.
	Start colorimetry.Chromaticity

	// Shifted is the chromaticity after increasing the activation of the
	// missing cone by ActivationStep.
	Shifted colorimetry.Chromaticity

	// Gamut holds the intersections of the line with two edges of the
	// display gamut triangle.  The segment between these points is the
	// part of the confusion line which crosses the gamut.
	Gamut [2]colorimetry.Chromaticity
}

// gamutEdges lists the gamut triangle edges crossed by the confusion lines
// of each cone type.
var gamutEdges = [3][2][2]int{
	Long:   {{display.Green, display.Blue}, {display.Red, display.Blue}},
	Medium: {{display.Green, display.Blue}, {display.Red, display.Blue}},
	Short:  {{display.Red, display.Blue}, {display.Red, display.Green}},
}

// NewLine computes the confusion line for cone c through the display colour
// start.  The colour is taken to be linear, i.e. no gamma correction is
// applied.  Cone activations are computed for the given field size.
func NewLine(d *display.Display, f cone.Field, c Cone, start colorimetry.RGB) (*Line, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid cone type %s", c)
	}
	xyz, _, err := d.ToXYZ(start, false)
	if err != nil {
		return nil, err
	}
	if !(xyz.Sum() > 0) {
		return nil, errors.New("confusion line: start colour must not be black")
	}

	lms := cone.ToLMS(f).Apply(mat3.Vec{xyz.X, xyz.Y, xyz.Z})
	lms[c] += ActivationStep
	v := cone.FromLMS(f).Apply(lms)
	shifted := colorimetry.XYZ{X: v[0], Y: v[1], Z: v[2]}

	l := &Line{
		Cone:    c,
		Start:   xyz.Chromaticity(),
		Shifted: shifted.Chromaticity(),
	}
	for i, e := range gamutEdges[c] {
		edge := d.Edge(e[0], e[1])
		p := Intersect(l.Start.Vec(), l.Shifted.Vec(), edge[0].Vec(), edge[1].Vec())
		l.Gamut[i] = colorimetry.FromVec(p)
	}
	return l, nil
}

// Estimate is an estimate of a copunctal point.
type Estimate struct {
	Cone Cone

	// Point is the mean of the individual estimates.
	Point colorimetry.Chromaticity

	// Intersections holds the intersections of consecutive confusion lines.
	Intersections []colorimetry.Chromaticity

	// Lines holds the confusion lines used to compute the estimate.
	Lines []*Line
}

// Named display colours used as starting points for confusion lines.
var (
	Grey   = colorimetry.RGB{R: 0.5, G: 0.5, B: 0.5}
	Yellow = colorimetry.RGB{R: 0.5, G: 0.5, B: 0.125}
	Cyan   = colorimetry.RGB{R: 0.125, G: 0.5, B: 0.5}
	Pink   = colorimetry.RGB{R: 0.5, G: 0.125, B: 0.5}
)

// DefaultStarts returns the starting colours used by [EstimateCopunctal].
func DefaultStarts(c Cone) []colorimetry.RGB {
	if c == Short {
		return []colorimetry.RGB{Cyan, Grey, Pink}
	}
	return []colorimetry.RGB{Yellow, Grey, Pink}
}

// EstimateCopunctal estimates the copunctal point of the cone type, using
// confusion lines through the default starting colours on the sRGB display
// and cone fundamentals for the 2° field.
func EstimateCopunctal(c Cone) (*Estimate, error) {
	return EstimateWith(display.SRGB, cone.TwoDegree, c, DefaultStarts(c))
}

// EstimateWith estimates the copunctal point of the cone type, using
// confusion lines through the given starting colours.  At least three
// starting colours are needed.
//
// Consecutive confusion lines are intersected, and the result is the mean
// of these intersections.
func EstimateWith(d *display.Display, f cone.Field, c Cone, starts []colorimetry.RGB) (*Estimate, error) {
	if len(starts) < 3 {
		return nil, fmt.Errorf("copunctal point: need at least 3 starting colours, got %d", len(starts))
	}

	res := &Estimate{Cone: c}
	for _, start := range starts {
		l, err := NewLine(d, f, c, start)
		if err != nil {
			return nil, fmt.Errorf("copunctal point: %w", err)
		}
		res.Lines = append(res.Lines, l)
	}

	var xs, ys []float64
	for i := 1; i < len(res.Lines); i++ {
		a, b := res.Lines[i], res.Lines[i-1]
		p := colorimetry.FromVec(Intersect(a.Gamut[0].Vec(), a.Gamut[1].Vec(), b.Gamut[0].Vec(), b.Gamut[1].Vec()))
		if !p.IsFinite() {
			// parallel lines give no information
			continue
		}
		res.Intersections = append(res.Intersections, p)
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	if len(res.Intersections) < 2 {
		return nil, errors.New("copunctal point: confusion lines are parallel")
	}

	res.Point = colorimetry.Chromaticity{
		X: stat.Mean(xs, nil),
		Y: stat.Mean(ys, nil),
	}
	return res, nil
}
