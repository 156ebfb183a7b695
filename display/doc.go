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

// Package display implements linear RGB displays.
//
// A display is described by the tristimulus values of its three primaries.
// The matrix which has these tristimulus values as columns maps display
// RGB values to XYZ.  The package provides the sRGB display, two custom
// displays and constructors for further displays:
//   - [New]: from an RGB to XYZ matrix
//   - [FromPrimaries]: from the tristimulus values of the primaries
//   - [FromSpectra]: from measured emission spectra of the primaries, as
//     for the phosphors of a CRT monitor
//
// Only the sRGB display has a known transfer function.  Gamma
// correction requested for any other display is ignored, and
// [colorimetry.WarnGammaIgnored] is reported.
package display
