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

	"github.com/spf13/cobra"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/internal/report"
	"seehuhn.de/go/colorimetry/planck"
	"seehuhn.de/go/colorimetry/spectrum"
)

func (a *app) planckCmd() *cobra.Command {
	var isotherm bool

	c := &cobra.Command{
		Use:   "planck TEMPERATURE...",
		Short: "show black body chromaticities",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			temps, err := parseFloats(args)
			if err != nil {
				return err
			}
			t := &report.Table{
				Title:   "Planckian Locus",
				Columns: []string{"temperature", "x", "y", "u", "v"},
			}
			if isotherm {
				t.Columns = append(t.Columns, "u1", "v1", "u2", "v2")
			}
			_, _, pl := a.observer()
			for _, T := range temps {
				xy, uv, err := pl.Chromaticity(T)
				if err != nil {
					return err
				}
				row := []any{
					report.N(T, 0, "K"),
					report.N(xy.X, outputDigits, ""), report.N(xy.Y, outputDigits, ""),
					report.N(uv.U, outputDigits, ""), report.N(uv.V, outputDigits, ""),
				}
				if isotherm {
					iso, err := pl.IsothermEndpoints(T)
					if err != nil {
						return err
					}
					for _, p := range iso.UV {
						row = append(row, report.N(p.U, outputDigits, ""), report.N(p.V, outputDigits, ""))
					}
				}
				t.Append(row...)
			}
			return a.out.WriteTable(t)
		},
	}
	c.Flags().BoolVar(&isotherm, "isotherm", false, "include the isotherm endpoints")
	return c
}

func (a *app) cctCmd() *cobra.Command {
	var uvInput bool

	c := &cobra.Command{
		Use:   "cct X Y",
		Short: "compute the correlated colour temperature",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			vals, err := parseN(args, 2)
			if err != nil {
				return err
			}
			var uv colorimetry.UV
			if uvInput {
				uv = colorimetry.UV{U: vals[0], V: vals[1]}
			} else {
				uv, err = colorimetry.XYToUV(colorimetry.Chromaticity{X: vals[0], Y: vals[1]})
				if err != nil {
					return err
				}
			}
			_, _, pl := a.observer()
			r, err := cctRecord(pl, uv)
			if err != nil {
				return err
			}
			return a.out.WriteRecord(r)
		},
	}
	c.Flags().BoolVar(&uvInput, "uv", false, "arguments are CIE 1960 (u, v) coordinates")
	return c
}

func cctRecord(pl *planck.Locus, uv colorimetry.UV) (*report.Record, error) {
	cct, err := pl.CorrelatedColorTemperature(uv)
	if err != nil {
		return nil, err
	}
	r := &report.Record{Title: "Correlated Colour Temperature"}
	r.Add("temperature", report.N(cct.Temperature, 0, "K"))
	r.Add("distance", report.N(cct.Distance, outputDigits, ""))
	r.Add("valid", cct.Valid)
	return r, nil
}

func (a *app) seriesCmd() *cobra.Command {
	var lo, hi, step float64

	c := &cobra.Command{
		Use:   "series",
		Short: "list temperatures with evenly spaced chromaticities",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, _, pl := a.observer()
			temps, chroma, err := pl.Series(lo, hi, step)
			if err != nil {
				return err
			}
			a.log.Debug("series", "count", len(temps))
			t := &report.Table{
				Title:   "Temperature Series",
				Columns: []string{"temperature", "x", "y"},
			}
			for i, T := range temps {
				t.Append(report.N(T, 0, "K"),
					report.N(chroma[i].X, outputDigits, ""), report.N(chroma[i].Y, outputDigits, ""))
			}
			return a.out.WriteTable(t)
		},
	}
	c.Flags().Float64Var(&lo, "min", planck.DefaultMinTemperature, "lowest temperature in K")
	c.Flags().Float64Var(&hi, "max", planck.DefaultMaxTemperature, "highest temperature in K")
	c.Flags().Float64Var(&step, "step", planck.DefaultStep, "minimal (x, y) distance between temperatures")
	return c
}

func (a *app) d65Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "d65",
		Short: "compute the chromaticity of illuminant D65",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			obs, _, pl := a.observer()
			xyz, xy, err := obs.Chromaticity(spectrum.IlluminantD65)
			if err != nil {
				return err
			}
			if !(xyz.Y > 0) {
				return fmt.Errorf("d65: zero luminance")
			}
			xyz = xyz.Scale(1 / xyz.Y)
			uv, err := colorimetry.XYToUV(xy)
			if err != nil {
				return err
			}

			r, err := cctRecord(pl, uv)
			if err != nil {
				return err
			}
			r.Title = "Illuminant D65"
			r.Add("observer", obs.Name())
			r.Fields = append([]report.Field{
				{Key: "X", Value: report.N(xyz.X, outputDigits, "")},
				{Key: "Y", Value: report.N(xyz.Y, outputDigits, "")},
				{Key: "Z", Value: report.N(xyz.Z, outputDigits, "")},
				{Key: "x", Value: report.N(xy.X, outputDigits, "")},
				{Key: "y", Value: report.N(xy.Y, outputDigits, "")},
			}, r.Fields...)
			return a.out.WriteRecord(r)
		},
	}
}
