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

// Package spline implements interpolating quadratic splines.
//
// The spline through n points (x_i, y_i) is a piecewise quadratic
// function with continuous first derivative.  It is represented in the
// B-spline basis, with triple knots at both ends of the domain and simple
// knots at the midpoints between consecutive interior abscissae.  Between
// x_0 and x_2, and between x_{n-3} and x_{n-1}, the spline is a single
// quadratic polynomial.
//
// Quadratic polynomials are reproduced exactly.
package spline

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

const degree = 2

// Quadratic is an interpolating quadratic spline.
type Quadratic struct {
	knots  []float64
	coeffs []float64
	lo, hi float64
}

// DomainError is returned when a spline is evaluated outside its domain.
type DomainError struct {
	X, Min, Max float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("spline: %g outside domain [%g, %g]", e.X, e.Min, e.Max)
}

// Is allows to use [errors.Is] to check for domain errors.
func (e *DomainError) Is(target error) bool {
	_, ok := target.(*DomainError)
	return ok
}

var (
	errTooFewPoints = errors.New("spline: need at least 3 points")
	errLengths      = errors.New("spline: x and y have different lengths")
)

// NewQuadratic computes the quadratic spline through the points (xs[i],
// ys[i]).  The points need not be sorted, but the abscissae must be
// distinct.
func NewQuadratic(xs, ys []float64) (*Quadratic, error) {
	if len(xs) != len(ys) {
		return nil, errLengths
	}
	n := len(xs)
	if n < degree+1 {
		return nil, errTooFewPoints
	}

	type point struct{ x, y float64 }
	pts := make([]point, n)
	for i := range pts {
		pts[i] = point{xs[i], ys[i]}
	}
	slices.SortFunc(pts, func(a, b point) int {
		return cmp.Compare(a.x, b.x)
	})
	x := make([]float64, n)
	y := make([]float64, n)
	for i, p := range pts {
		if i > 0 && !(p.x > pts[i-1].x) {
			return nil, fmt.Errorf("spline: repeated abscissa %g", p.x)
		}
		x[i], y[i] = p.x, p.y
	}

	knots := make([]float64, 0, n+degree+1)
	for range degree + 1 {
		knots = append(knots, x[0])
	}
	for i := 1; i < n-2; i++ {
		knots = append(knots, (x[i]+x[i+1])/2)
	}
	for range degree + 1 {
		knots = append(knots, x[n-1])
	}

	s := &Quadratic{knots: knots, lo: x[0], hi: x[n-1]}

	// collocation system A c = y
	A := mat.NewDense(n, n, nil)
	for i, xi := range x {
		span := s.span(xi)
		N := s.basis(span, xi)
		for r, v := range N {
			A.Set(i, span-degree+r, v)
		}
	}
	var c mat.VecDense
	if err := c.SolveVec(A, mat.NewVecDense(n, y)); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 0) {
			return nil, fmt.Errorf("spline: %w", err)
		}
	}
	s.coeffs = make([]float64, n)
	for i := range n {
		s.coeffs[i] = c.AtVec(i)
	}
	return s, nil
}

// Domain returns the interval on which the spline is defined.
func (s *Quadratic) Domain() (float64, float64) {
	return s.lo, s.hi
}

// At evaluates the spline at x.
func (s *Quadratic) At(x float64) (float64, error) {
	if !(x >= s.lo && x <= s.hi) {
		return 0, &DomainError{X: x, Min: s.lo, Max: s.hi}
	}
	span := s.span(x)
	N := s.basis(span, x)
	var res float64
	for r, v := range N {
		res += v * s.coeffs[span-degree+r]
	}
	return res, nil
}

// span returns the index l with knots[l] <= x < knots[l+1], restricted to
// the spans which carry a polynomial piece.
func (s *Quadratic) span(x float64) int {
	n := len(s.knots) - degree - 1
	l := sort.Search(len(s.knots), func(i int) bool { return s.knots[i] > x }) - 1
	if l < degree {
		l = degree
	}
	if l > n-1 {
		l = n - 1
	}
	return l
}

// basis returns the values of the non-zero basis functions
// B_{span-2}, B_{span-1}, B_span at x.
func (s *Quadratic) basis(span int, x float64) [degree + 1]float64 {
	var N [degree + 1]float64
	var left, right [degree + 1]float64
	N[0] = 1
	for j := 1; j <= degree; j++ {
		left[j] = x - s.knots[span+1-j]
		right[j] = s.knots[span+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := N[r] / (right[r+1] + left[j-r])
			N[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		N[j] = saved
	}
	return N
}
