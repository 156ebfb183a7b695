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
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/display"
)

const (
	// arcBuffer is the angle by which the arc used by Filter is shortened
	// at both ends.
	arcBuffer = math.Pi / 90

	// luminanceStep is the factor by which the luminance of a filtered
	// colour is reduced until the colour can be shown on the display.
	luminanceStep     = 0.95
	maxLuminanceSteps = 1000
)

// Pixel is an 8-bit RGB colour.
type Pixel struct {
	R, G, B uint8
}

// UniqueColors counts the pixels of each colour in img.  Alpha values are
// ignored.
func UniqueColors(img image.Image) map[Pixel]int {
	res := make(map[Pixel]int)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			res[Pixel{c.R, c.G, c.B}]++
		}
	}
	return res
}

// Filter simulates how an observer lacking the given cone type perceives
// img.
//
// Pixel values are taken to be linear sRGB values.  Every colour is moved
// along its confusion line onto a circular arc around the copunctal point.
// The radius of the arc is the distance of the mean image chromaticity from
// the copunctal point, and the arc ends 2° inside the gamut triangle.  If
// the resulting colour cannot be shown, its luminance is reduced in steps
// of 5% until it can.
func Filter(img image.Image, c Cone) (*image.RGBA, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid cone type %s", c)
	}
	d := display.SRGB
	centre := CopunctalPoint(c)

	counts := UniqueColors(img)
	if len(counts) == 0 {
		return nil, errors.New("filter: empty image")
	}
	xyY := make(map[Pixel]colorimetry.XyY, len(counts))
	var sx, sy, n float64
	for p, count := range counts {
		rgb := colorimetry.RGB{R: float64(p.R) / 255, G: float64(p.G) / 255, B: float64(p.B) / 255}
		v, _, err := d.ToXyY(rgb, false)
		if err != nil {
			return nil, err
		}
		xyY[p] = v
		sx += float64(count) * v.X
		sy += float64(count) * v.Y
		n += float64(count)
	}
	mean := colorimetry.Chromaticity{X: sx / n, Y: sy / n}
	meanAngle, radius := colorimetry.ToPolar(mean, centre)

	lo, hi, err := arcBounds(d, centre, radius, meanAngle)
	if err != nil {
		return nil, err
	}

	mapped := make(map[Pixel]color.RGBA, len(counts))
	for p, v := range xyY {
		angle, _ := colorimetry.ToPolar(v.Chromaticity, centre)
		angle = math.Min(math.Max(angle, lo), hi)
		target := colorimetry.FromPolar(angle, radius, centre)

		rgb, err := fitLuminance(d, target, v.Luminance)
		if err != nil {
			return nil, fmt.Errorf("filter: colour %v: %w", p, err)
		}
		r, g, b := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Clamped().RGB255()
		mapped[p] = color.RGBA{R: r, G: g, B: b, A: 255}
	}

	bounds := img.Bounds()
	res := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			res.SetRGBA(x, y, mapped[Pixel{c.R, c.G, c.B}])
		}
	}
	return res, nil
}

// fitLuminance converts the chromaticity c with luminance Y to linear RGB,
// reducing the luminance until all components lie in [0, 1].
func fitLuminance(d *display.Display, c colorimetry.Chromaticity, Y float64) (colorimetry.RGB, error) {
	for range maxLuminanceSteps {
		rgb, _, err := d.FromXyY(colorimetry.XyY{Chromaticity: c, Luminance: Y}, false)
		if err != nil {
			return colorimetry.RGB{}, err
		}
		if rgb.InUnitCube() {
			return rgb, nil
		}
		Y *= luminanceStep
	}
	return colorimetry.RGB{}, errors.New("chromaticity outside the display gamut")
}

// arcBounds returns the range of polar angles around centre for the arc of
// the circle with the given radius which passes through the given angle
// and lies inside the gamut triangle of d.  The range is shortened by
// arcBuffer at both ends.
//
// The circle may enter and leave the gamut more than once.  Only the arc
// containing angle is used, since the other arcs are separated from it by
// colours outside the gamut.
func arcBounds(d *display.Display, centre colorimetry.Chromaticity, radius, angle float64) (float64, float64, error) {
	edges := [][2]int{
		{display.Red, display.Green},
		{display.Green, display.Blue},
		{display.Blue, display.Red},
	}
	var crossings []float64
	for _, e := range edges {
		edge := d.Edge(e[0], e[1])
		for _, p := range circleSegment(centre, radius, edge[0], edge[1]) {
			a, _ := colorimetry.ToPolar(p, centre)
			crossings = append(crossings, a)
		}
	}
	slices.Sort(crossings)

	lo, hi := math.NaN(), math.NaN()
	for i := 1; i < len(crossings); i++ {
		a, b := crossings[i-1], crossings[i]
		if angle < a || angle > b || b-a <= 2*arcBuffer {
			continue
		}
		if d.Contains(colorimetry.FromPolar((a+b)/2, radius, centre)) {
			lo, hi = a, b
			break
		}
	}
	if math.IsNaN(lo) {
		return 0, 0, fmt.Errorf("filter: arc of radius %.4f misses the gamut", radius)
	}
	lo += arcBuffer
	hi -= arcBuffer
	if !(lo <= hi) {
		return 0, 0, fmt.Errorf("filter: arc of radius %.4f is too short", radius)
	}
	return lo, hi, nil
}

// circleSegment returns the intersections of the circle with the given
// centre and radius with the line segment from p to q.
func circleSegment(centre colorimetry.Chromaticity, radius float64, p, q colorimetry.Chromaticity) []colorimetry.Chromaticity {
	e := q.Vec().Sub(p.Vec())
	f := p.Vec().Sub(centre.Vec())
	a := e.X*e.X + e.Y*e.Y
	b := 2 * (f.X*e.X + f.Y*e.Y)
	c := f.X*f.X + f.Y*f.Y - radius*radius
	disc := b*b - 4*a*c
	if a == 0 || disc < 0 {
		return nil
	}

	var res []colorimetry.Chromaticity
	sq := math.Sqrt(disc)
	for _, t := range []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
		if t >= 0 && t <= 1 {
			res = append(res, colorimetry.FromVec(p.Vec().Add(e.Mul(t))))
		}
	}
	return res
}
