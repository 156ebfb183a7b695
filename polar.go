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

package colorimetry

import "math"

// Angles around a centre point are measured with atan2 and then shifted by
// -2π wherever atan2 would return a value of at least -π/2.  This moves the
// unavoidable jump of 2π to the bottom of the chromaticity diagram, below
// the purple line, so that hue angles along the spectrum locus are monotone.
// All angles then lie in the interval [MinAngle, MaxAngle).
const (
	MinAngle = -5 * math.Pi / 2
	MaxAngle = -math.Pi / 2
)

// ToPolar returns the hue angle and the distance of c from centre.
func ToPolar(c, centre Chromaticity) (angle, radius float64) {
	dx := c.X - centre.X
	dy := c.Y - centre.Y
	angle = math.Atan2(dy, dx)
	if angle >= MaxAngle {
		angle -= 2 * math.Pi
	}
	return angle, math.Hypot(dx, dy)
}

// FromPolar is the inverse of [ToPolar].
func FromPolar(angle, radius float64, centre Chromaticity) Chromaticity {
	return Chromaticity{
		X: centre.X + radius*math.Cos(angle),
		Y: centre.Y + radius*math.Sin(angle),
	}
}

// WrapAngle maps angle into the interval [MinAngle, MaxAngle) by adding a
// multiple of 2π.  The second return value reports whether angle was
// changed.
func WrapAngle(angle float64) (float64, bool) {
	if angle >= MinAngle && angle < MaxAngle {
		return angle, false
	}
	k := math.Floor((angle - MinAngle) / (2 * math.Pi))
	wrapped := angle - 2*math.Pi*k
	if wrapped >= MaxAngle { // rounding
		wrapped -= 2 * math.Pi
	} else if wrapped < MinAngle {
		wrapped += 2 * math.Pi
	}
	return wrapped, true
}
