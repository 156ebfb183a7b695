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

package spline

import (
	"errors"
	"math"
	"testing"
)

func TestQuadraticReproduction(t *testing.T) {
	f := func(x float64) float64 { return x*x - 3*x + 2 }
	xs := []float64{0, 0.5, 1.3, 2, 3.1, 4, 5.5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	s, err := NewQuadratic(xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i <= 550; i++ {
		x := float64(i) / 100
		got, err := s.At(x)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-f(x)) > 1e-10 {
			t.Errorf("At(%g) = %g, want %g", x, got, f(x))
		}
	}
}

func TestInterpolation(t *testing.T) {
	xs := []float64{5, 1, 3, 2, 4, 0}
	ys := []float64{1, 7, -2, 0.5, 3, 3}
	s, err := NewQuadratic(xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	for i, x := range xs {
		got, err := s.At(x)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-ys[i]) > 1e-12 {
			t.Errorf("At(%g) = %g, want %g", x, got, ys[i])
		}
	}
	lo, hi := s.Domain()
	if lo != 0 || hi != 5 {
		t.Errorf("domain is [%g, %g], want [0, 5]", lo, hi)
	}
}

func TestThreePoints(t *testing.T) {
	s, err := NewQuadratic([]float64{0, 1, 2}, []float64{1, 0, 3})
	if err != nil {
		t.Fatal(err)
	}
	// the points lie on 2x²-3x+1
	got, err := s.At(1.5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-1) > 1e-12 {
		t.Errorf("At(1.5) = %g, want 1", got)
	}
}

func TestDomainError(t *testing.T) {
	s, err := NewQuadratic([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9})
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []float64{-0.001, 3.001, math.NaN()} {
		_, err := s.At(x)
		if !errors.Is(err, &DomainError{}) {
			t.Errorf("At(%g): got %v, want a domain error", x, err)
		}
	}
}

func TestInvalidInput(t *testing.T) {
	type testCase struct {
		name   string
		xs, ys []float64
	}
	testCases := []testCase{
		{"too few", []float64{0, 1}, []float64{0, 1}},
		{"lengths", []float64{0, 1, 2}, []float64{0, 1}},
		{"repeated", []float64{0, 1, 1, 2}, []float64{0, 1, 2, 3}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewQuadratic(tc.xs, tc.ys); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
