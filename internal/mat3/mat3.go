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

// Package mat3 implements the 3x3 matrices used for linear colour space
// transformations.
package mat3

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when a matrix cannot be inverted.
var ErrSingular = errors.New("singular matrix")

// Vec is a column vector with three components.
type Vec [3]float64

// Matrix is a 3x3 matrix, stored row by row.
//
// A vector v is transformed by M into M·v, so that the columns of M are the
// images of the unit vectors.
type Matrix [3][3]float64

// Identity is the identity matrix.
var Identity = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Apply computes M·v.
func (M Matrix) Apply(v Vec) Vec {
	var res Vec
	for i := range 3 {
		res[i] = M[i][0]*v[0] + M[i][1]*v[1] + M[i][2]*v[2]
	}
	return res
}

// Mul returns the matrix product M·B.
// The result is equivalent to first applying B and then M.
func (M Matrix) Mul(B Matrix) Matrix {
	var res Matrix
	for i := range 3 {
		for j := range 3 {
			res[i][j] = M[i][0]*B[0][j] + M[i][1]*B[1][j] + M[i][2]*B[2][j]
		}
	}
	return res
}

// Transpose returns the transposed matrix.
func (M Matrix) Transpose() Matrix {
	var res Matrix
	for i := range 3 {
		for j := range 3 {
			res[i][j] = M[j][i]
		}
	}
	return res
}

// Column returns column j of M.
func (M Matrix) Column(j int) Vec {
	return Vec{M[0][j], M[1][j], M[2][j]}
}

// RowSum returns the sum of the entries in row i.
// This is the i-th component of M applied to (1, 1, 1).
func (M Matrix) RowSum(i int) float64 {
	return M[i][0] + M[i][1] + M[i][2]
}

// NonNegativeRow reports whether all entries in row i are non-negative.
func (M Matrix) NonNegativeRow(i int) bool {
	return M[i][0] >= 0 && M[i][1] >= 0 && M[i][2] >= 0
}

// NonNegative reports whether all entries of M are non-negative.
func (M Matrix) NonNegative() bool {
	return M.NonNegativeRow(0) && M.NonNegativeRow(1) && M.NonNegativeRow(2)
}

// FromColumns builds a matrix from its three columns.
func FromColumns(a, b, c Vec) Matrix {
	return Matrix{
		{a[0], b[0], c[0]},
		{a[1], b[1], c[1]},
		{a[2], b[2], c[2]},
	}
}

// Inverse computes the inverse of M.
func (M Matrix) Inverse() (Matrix, error) {
	a := mat.NewDense(3, 3, []float64{
		M[0][0], M[0][1], M[0][2],
		M[1][0], M[1][1], M[1][2],
		M[2][0], M[2][1], M[2][2],
	})
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		// gonum reports ill-conditioned but invertible matrices with a
		// mat.Condition error and still returns the result.
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 0) || math.IsNaN(float64(cond)) {
			return Matrix{}, ErrSingular
		}
	}

	var res Matrix
	for i := range 3 {
		for j := range 3 {
			res[i][j] = inv.At(i, j)
		}
	}
	return res, nil
}

// MustInverse is like Inverse, but panics if M is singular.
// This is meant for the inversion of built-in constants.
func (M Matrix) MustInverse() Matrix {
	inv, err := M.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}
