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
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/colorimetry/cone"
	"seehuhn.de/go/colorimetry/display"
	"seehuhn.de/go/colorimetry/internal/config"
	"seehuhn.de/go/colorimetry/internal/logger"
	"seehuhn.de/go/colorimetry/internal/report"
	"seehuhn.de/go/colorimetry/locus"
	"seehuhn.de/go/colorimetry/planck"
	"seehuhn.de/go/colorimetry/spectrum"
)

// app holds the state shared by all subcommands.
type app struct {
	configPath  string
	debug       bool
	format      string
	displayName string
	field       string

	cfg     *config.Config
	display *display.Display
	out     *report.Writer
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "colorimetry",
		Short:        "colour science computations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")
	flags.StringVar(&a.format, "format", "", "output format: text, yaml or auto")
	flags.StringVar(&a.displayName, "display", "", "display used for RGB values")
	flags.StringVar(&a.field, "field", "", "field size of the standard observer: 2 or 10")

	cmd.AddCommand(
		a.convertCmd(),
		a.displaysCmd(),
		a.locusCmd(),
		a.hueCmd(),
		a.planckCmd(),
		a.cctCmd(),
		a.seriesCmd(),
		a.d65Cmd(),
		a.copunctalCmd(),
		a.activationCmd(),
		a.filterCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	a.log = logger.Setup(logger.Config{Output: cmd.ErrOrStderr(), Debug: a.debug})

	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.log.Debug("config.loaded", "path", a.configPath, "displays", len(cfg.Displays))
	}

	a.display = a.cfg.Display
	if a.displayName != "" {
		d, err := a.cfg.Lookup(a.displayName)
		if err != nil {
			return err
		}
		a.display = d
	}

	if a.field != "" {
		f, err := cone.ParseField(a.field)
		if err != nil {
			return err
		}
		a.cfg.Field = f
	}

	format := a.cfg.Format
	if a.format != "" {
		format = a.format
	}
	out, err := report.New(cmd.OutOrStdout(), format)
	if err != nil {
		return err
	}
	a.out = out
	return nil
}

// observer returns the standard observer matching the configured field
// size, together with its spectrum locus and Planckian locus.
func (a *app) observer() (*spectrum.Observer, *locus.Locus, *planck.Locus) {
	if a.cfg.Field == cone.TenDegree {
		return spectrum.CIE1964, locus.CIE1964(), planck.CIE1964
	}
	return spectrum.CIE1931, locus.CIE1931(), planck.CIE1931
}

// parseFloats converts command line arguments to numbers.  Arguments may
// also be separated by commas.
func parseFloats(args []string) ([]float64, error) {
	var res []float64
	for _, arg := range args {
		for _, s := range strings.Split(arg, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			x, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q", s)
			}
			res = append(res, x)
		}
	}
	return res, nil
}

// parseN is like parseFloats, but requires exactly n numbers.
func parseN(args []string, n int) ([]float64, error) {
	xs, err := parseFloats(args)
	if err != nil {
		return nil, err
	}
	if len(xs) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(xs))
	}
	return xs, nil
}
