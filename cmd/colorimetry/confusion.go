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
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"seehuhn.de/go/colorimetry"
	"seehuhn.de/go/colorimetry/confusion"
	"seehuhn.de/go/colorimetry/internal/logger"
	"seehuhn.de/go/colorimetry/internal/report"
)

func (a *app) copunctalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copunctal [CONE...]",
		Short: "estimate copunctal points from confusion lines",
		RunE: func(_ *cobra.Command, args []string) error {
			cones, err := parseCones(args)
			if err != nil {
				return err
			}
			t := &report.Table{
				Title:   "Copunctal Points",
				Columns: []string{"cone", "x", "y", "tabulated x", "tabulated y"},
			}
			for _, c := range cones {
				est, err := confusion.EstimateWith(a.display, a.cfg.Field, c, confusion.DefaultStarts(c))
				if err != nil {
					return err
				}
				tab := confusion.CopunctalPoint(c)
				t.Append(c,
					report.N(est.Point.X, 4, ""), report.N(est.Point.Y, 4, ""),
					report.N(tab.X, 3, ""), report.N(tab.Y, 3, ""))
			}
			return a.out.WriteTable(t)
		},
	}
}

func (a *app) activationCmd() *cobra.Command {
	var base []float64
	var multiples []float64

	c := &cobra.Command{
		Use:   "activation CONE",
		Short: "vary the activation of one cone type",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := confusion.ParseCone(args[0])
			if err != nil {
				return err
			}
			if len(base) != 3 {
				return fmt.Errorf("--base needs 3 values, got %d", len(base))
			}
			rgb := colorimetry.RGB{R: base[0], G: base[1], B: base[2]}
			series, err := confusion.ActivationSeries(c, rgb, multiples)
			if err != nil {
				return err
			}

			t := &report.Table{
				Title:   fmt.Sprintf("Cone Activation (%s)", c),
				Columns: []string{"multiple", "L", "M", "S", "X", "Y", "Z", "x", "y", "R", "G", "B", "hex"},
			}
			for _, s := range series {
				logger.Warn("activation", s.Warning)
				t.Append(report.N(s.Multiple, 3, ""),
					report.N(s.LMS.L, 4, ""), report.N(s.LMS.M, 4, ""), report.N(s.LMS.S, 4, ""),
					report.N(s.XYZ.X, 4, ""), report.N(s.XYZ.Y, 4, ""), report.N(s.XYZ.Z, 4, ""),
					report.N(s.Chromaticity.X, 4, ""), report.N(s.Chromaticity.Y, 4, ""),
					report.N(s.RGB.R, 3, ""), report.N(s.RGB.G, 3, ""), report.N(s.RGB.B, 3, ""),
					s.Hex)
			}
			return a.out.WriteTable(t)
		},
	}
	c.Flags().Float64SliceVar(&base, "base", []float64{0.5, 0.5, 0.5}, "gamma encoded sRGB base colour")
	c.Flags().Float64SliceVar(&multiples, "multiples", confusion.DefaultMultiples, "activation factors")
	return c
}

func (a *app) filterCmd() *cobra.Command {
	var size int

	c := &cobra.Command{
		Use:   "filter CONE INPUT.png OUTPUT.png",
		Short: "simulate missing-cone colour blindness for an image",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := confusion.ParseCone(args[0])
			if err != nil {
				return err
			}
			img, err := readPNG(args[1])
			if err != nil {
				return err
			}
			var src image.Image = img
			if size > 0 {
				src = thumbnail(img, size)
			}
			a.log.Debug("filter.input", "path", args[1], "bounds", src.Bounds().String())

			res, err := confusion.Filter(src, c)
			if err != nil {
				return err
			}
			if err := writePNG(args[2], res); err != nil {
				return err
			}

			r := &report.Record{Title: "Filter"}
			r.Add("cone", c)
			r.Add("width", res.Bounds().Dx())
			r.Add("height", res.Bounds().Dy())
			r.Add("colours before", len(confusion.UniqueColors(src)))
			r.Add("colours after", len(confusion.UniqueColors(res)))
			r.Add("output", args[2])
			return a.out.WriteRecord(r)
		},
	}
	c.Flags().IntVar(&size, "size", 256, "scale the image down to at most this many pixels per side (0 keeps the size)")
	return c
}

func parseCones(args []string) ([]confusion.Cone, error) {
	if len(args) == 0 {
		return []confusion.Cone{confusion.Long, confusion.Medium, confusion.Short}, nil
	}
	res := make([]confusion.Cone, len(args))
	for i, arg := range args {
		c, err := confusion.ParseCone(arg)
		if err != nil {
			return nil, err
		}
		res[i] = c
	}
	return res, nil
}

func readPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// thumbnail scales img down so that neither side is longer than size
// pixels.  Smaller images are copied unchanged.
func thumbnail(img image.Image, size int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if m := max(w, h); m > size && size > 0 {
		w = max(1, w*size/m)
		h = max(1, h*size/m)
		res := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(res, res.Bounds(), img, b, draw.Src, nil)
		return res
	}
	res := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Copy(res, image.Point{}, img, b, draw.Src, nil)
	return res
}
