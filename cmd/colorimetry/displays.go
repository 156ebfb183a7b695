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
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/colorimetry/internal/report"
)

func (a *app) displaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "displays",
		Short: "list the available displays",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			names := maps.Keys(a.cfg.Displays)
			slices.Sort(names)

			t := &report.Table{
				Title:   "Displays",
				Columns: []string{"name", "white x", "white y", "red x", "red y", "green x", "green y", "blue x", "blue y", "realizable"},
			}
			for _, name := range names {
				d := a.cfg.Displays[name]
				w := d.White()
				p := d.Primaries()
				t.Append(name,
					report.N(w.X, 4, ""), report.N(w.Y, 4, ""),
					report.N(p[0].X, 4, ""), report.N(p[0].Y, 4, ""),
					report.N(p[1].X, 4, ""), report.N(p[1].Y, 4, ""),
					report.N(p[2].X, 4, ""), report.N(p[2].Y, 4, ""),
					d.Realizable())
			}
			return a.out.WriteTable(t)
		},
	}
}
