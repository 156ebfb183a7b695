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

// Package colorimetry provides the basic value types of colour science and
// the conversions between the chromaticity spaces.
//
// The following colour representations are used throughout the module:
//   - [XYZ]: CIE tristimulus values
//   - [XyY]: chromoluminance, i.e. chromaticity (x, y) plus luminance Y
//   - [Chromaticity]: CIE 1931 (x, y) chromaticity coordinates
//   - [UV]: CIE 1960 (u, v) coordinates, as introduced by MacAdam
//   - [RGB]: display (or experimental) primary coordinates
//   - [LMS]: cone activations
//
// The checked conversion functions, like [XYToUV], validate the ranges of
// their arguments and return a [*RangeError] for values outside the
// physically meaningful range.  Methods on the value types, like
// [Chromaticity.UV], perform the same computation without checks; these
// are meant for geometric constructions which can leave the range of
// physical colours.
//
// Some computations in the sub-packages produce valid but dubious results,
// for example a colour outside the gamut of a display.  These are reported
// as a [Warning] alongside the result.
//
// Sub-packages implement the higher level computations:
//   - display: linear RGB displays and gamma correction
//   - cone: cone fundamentals
//   - spectrum: spectra, colour matching functions and Planck's law
//   - locus: interpolation along the spectrum locus
//   - planck: the Planckian locus and correlated colour temperature
//   - confusion: confusion lines and copunctal points
package colorimetry
