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

package main

import (
	"github.com/spf13/cobra"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/internal/logger"
	"seehuhn.de/go/colorimetry/internal/report"
)

func (a *app) locusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locus [WAVELENGTH...]",
		Short: "show chromaticities on the spectrum locus",
		Long: "Show the chromaticity and hue angle of monochromatic light.\n" +
			"Without arguments, the tabulated spectrum locus is listed.",
		RunE: func(_ *cobra.Command, args []string) error {
			_, l, _ := a.observer()
			t := &report.Table{
				Title:   "Spectrum Locus",
				Columns: []string{"wavelength", "x", "y", "angle"},
			}

			if len(args) == 0 {
				for _, p := range l.Points() {
					angle, _ := colorimetry.ToPolar(p.Chromaticity, l.White())
					t.Append(report.N(p.Wavelength, 1, "nm"),
						report.N(p.X, outputDigits, ""), report.N(p.Y, outputDigits, ""),
						report.N(angle, outputDigits, ""))
				}
				return a.out.WriteTable(t)
			}

			wavelengths, err := parseFloats(args)
			if err != nil {
				return err
			}
			for _, nm := range wavelengths {
				c, err := l.Chromaticity(nm)
				if err != nil {
					return err
				}
				angle, err := l.HueAngle(nm)
				if err != nil {
					return err
				}
				t.Append(report.N(nm, 1, "nm"),
					report.N(c.X, outputDigits, ""), report.N(c.Y, outputDigits, ""),
					report.N(angle, outputDigits, ""))
			}
			return a.out.WriteTable(t)
		},
	}
}

func (a *app) hueCmd() *cobra.Command {
	var angles bool

	c := &cobra.Command{
		Use:   "hue X Y",
		Short: "find the dominant wavelength of a chromaticity",
		Long: "Find the wavelength on the spectrum locus with the same hue angle\n" +
			"around the display white as the chromaticity (x, y).  With --angle,\n" +
			"the arguments are hue angles instead.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				return err
			}
			_, l, _ := a.observer()
			t := &report.Table{
				Title:   "Hue",
				Columns: []string{"angle", "wavelength"},
			}

			if !angles {
				vals, err = parseN(args, 2)
				if err != nil {
					return err
				}
				c := colorimetry.Chromaticity{X: vals[0], Y: vals[1]}
				angle, _ := colorimetry.ToPolar(c, l.White())
				vals = []float64{angle}
			}
			for _, angle := range vals {
				nm, warn, err := l.Wavelength(angle)
				if err != nil {
					return err
				}
				logger.Warn("hue", warn)
				t.Append(report.N(angle, outputDigits, ""), report.N(nm, 2, "nm"))
			}
			return a.out.WriteTable(t)
		},
	}
	c.Flags().BoolVar(&angles, "angle", false, "arguments are hue angles in radians")
	return c
}
