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

// Thresholds of the sRGB transfer function.  The linear segment of the
// encoding ends at DecodeThreshold/12.92.
const (
	DecodeThreshold = 0.04045
	EncodeThreshold = DecodeThreshold / 12.92
)

// EncodeSRGB applies the sRGB transfer function to a linear component value.
func EncodeSRGB(v float64) float64 {
	if v <= EncodeThreshold {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// DecodeSRGB inverts [EncodeSRGB].
func DecodeSRGB(v float64) float64 {
	if v <= DecodeThreshold {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Encode applies [EncodeSRGB] to all three components.
func (c RGB) Encode() RGB {
	return RGB{R: EncodeSRGB(c.R), G: EncodeSRGB(c.G), B: EncodeSRGB(c.B)}
}

// Decode applies [DecodeSRGB] to all three components.
func (c RGB) Decode() RGB {
	return RGB{R: DecodeSRGB(c.R), G: DecodeSRGB(c.G), B: DecodeSRGB(c.B)}
}
