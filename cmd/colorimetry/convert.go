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
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/cone"
	"seehuhn.de/go/colorimetry/internal/logger"
	"seehuhn.de/go/colorimetry/internal/report"
)

// outputDigits is the number of decimal places used for colour values.
const outputDigits = 6

var spaces = []string{"rgb", "xyz", "xyy", "xy", "uv", "lms", "sb"}

func (a *app) convertCmd() *cobra.Command {
	var gamma, normalized bool

	c := &cobra.Command{
		Use:   "convert FROM TO VALUES...",
		Short: "convert a colour between colour spaces",
		Long: "Convert a colour between colour spaces.  The supported spaces are\n" +
			"rgb (display RGB), xyz, xyy (chromoluminance), xy, uv (CIE 1960),\n" +
			"lms (cone activations) and sb (Stiles & Burch RGB).",
		Args: cobra.MinimumNArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			from, to := strings.ToLower(args[0]), strings.ToLower(args[1])
			vals, err := parseFloats(args[2:])
			if err != nil {
				return err
			}
			r, err := a.convert(from, to, vals, gamma, normalized)
			if err != nil {
				return err
			}
			return a.out.WriteRecord(r)
		},
	}
	c.Flags().BoolVar(&gamma, "gamma", false, "RGB values are gamma encoded")
	c.Flags().BoolVar(&normalized, "normalized", true, "use normalized Stiles & Burch cone fundamentals")
	return c
}

func (a *app) convert(from, to string, vals []float64, gamma, normalized bool) (*report.Record, error) {
	for _, s := range []string{from, to} {
		if !slices.Contains(spaces, s) {
			return nil, fmt.Errorf("unknown colour space %q (use one of %s)", s, strings.Join(spaces, ", "))
		}
	}
	r := &report.Record{Title: to}

	if from == "xy" || from == "uv" {
		if len(vals) != 2 {
			return nil, fmt.Errorf("%s: expected 2 values, got %d", from, len(vals))
		}
		c := colorimetry.Chromaticity{X: vals[0], Y: vals[1]}
		if from == "uv" {
			var err error
			c, err = colorimetry.UVToXY(colorimetry.UV{U: vals[0], V: vals[1]})
			if err != nil {
				return nil, err
			}
		}
		switch to {
		case "xy":
			addValues(r, []string{"x", "y"}, c.X, c.Y)
		case "uv":
			uv, err := colorimetry.XYToUV(c)
			if err != nil {
				return nil, err
			}
			addValues(r, []string{"u", "v"}, uv.U, uv.V)
		default:
			return nil, fmt.Errorf("cannot convert %s to %s without a luminance", from, to)
		}
		return r, nil
	}

	if len(vals) != 3 {
		return nil, fmt.Errorf("%s: expected 3 values, got %d", from, len(vals))
	}
	xyz, err := a.toXYZ(from, vals, gamma, normalized)
	if err != nil {
		return nil, err
	}
	a.log.Debug("convert", "from", from, "to", to, "xyz", xyz)

	switch to {
	case "xyz":
		addValues(r, []string{"X", "Y", "Z"}, xyz.X, xyz.Y, xyz.Z)
	case "rgb":
		rgb, warn, err := a.display.FromXYZ(xyz, gamma)
		if err != nil {
			return nil, err
		}
		logger.Warn("convert", warn)
		addValues(r, []string{"R", "G", "B"}, rgb.R, rgb.G, rgb.B)
		if warn != 0 {
			r.Add("warning", warn)
		}
	case "xyy", "xy", "uv":
		xyY, err := a.display.XYZToXyY(xyz)
		if err != nil {
			return nil, err
		}
		switch to {
		case "xyy":
			addValues(r, []string{"x", "y", "Y"}, xyY.X, xyY.Y, xyY.Luminance)
		case "xy":
			addValues(r, []string{"x", "y"}, xyY.X, xyY.Y)
		default:
			uv, err := colorimetry.XYToUV(xyY.Chromaticity)
			if err != nil {
				return nil, err
			}
			addValues(r, []string{"u", "v"}, uv.U, uv.V)
		}
	case "lms":
		lms, err := cone.XYZToLMS(xyz, a.cfg.Field)
		if err != nil {
			return nil, err
		}
		addValues(r, []string{"L", "M", "S"}, lms.L, lms.M, lms.S)
	case "sb":
		lms, err := cone.XYZToLMS(xyz, cone.TenDegree)
		if err != nil {
			return nil, err
		}
		sb, err := cone.LMSToStilesBurch(lms, normalized)
		if err != nil {
			return nil, err
		}
		addValues(r, []string{"R", "G", "B"}, sb.R, sb.G, sb.B)
	}
	return r, nil
}

func (a *app) toXYZ(from string, v []float64, gamma, normalized bool) (colorimetry.XYZ, error) {
	switch from {
	case "rgb":
		xyz, warn, err := a.display.ToXYZ(colorimetry.RGB{R: v[0], G: v[1], B: v[2]}, gamma)
		logger.Warn("convert", warn)
		return xyz, err
	case "xyz":
		return colorimetry.XYZ{X: v[0], Y: v[1], Z: v[2]}, nil
	case "xyy":
		return colorimetry.XyYToXYZ(colorimetry.XyY{
			Chromaticity: colorimetry.Chromaticity{X: v[0], Y: v[1]},
			Luminance:    v[2],
		})
	case "lms":
		return cone.LMSToXYZ(colorimetry.LMS{L: v[0], M: v[1], S: v[2]}, a.cfg.Field)
	case "sb":
		lms := cone.StilesBurchToLMS(colorimetry.RGB{R: v[0], G: v[1], B: v[2]}, normalized)
		return cone.LMSToXYZ(lms, cone.TenDegree)
	}
	return colorimetry.XYZ{}, fmt.Errorf("unknown colour space %q", from)
}

func addValues(r *report.Record, names []string, values ...float64) {
	for i, name := range names {
		r.Add(name, report.N(values[i], outputDigits, ""))
	}
}
