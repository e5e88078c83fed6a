/*
DESCRIPTION
  geom.go provides the point/vector/line/matrix primitives shared by the
  frame, segment and planner packages.

LICENSE
  See LICENSE at the repository root.
*/

// Package geom provides the small geometric types used to describe points,
// directions and rotations on a frame: Point, Vector, Line and a 2x2 Matrix,
// grounded on original_source/code/utils/lin_alg.h (point2_t/vec2_t) and
// original_source/code/planner.c's rotation matrices.
package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Point is an integer pixel coordinate. Both fields are non-negative.
type Point struct {
	X, Y uint16
}

// Vector is a signed integer displacement.
type Vector struct {
	X, Y int16
}

// Line is an origin point and a direction.
type Line struct {
	Orig Point
	Dir  Vector
}

// Add returns p displaced by v, without bounds checking.
func (p Point) Add(v Vector) Point {
	return Point{uint16(int32(p.X) + int32(v.X)), uint16(int32(p.Y) + int32(v.Y))}
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// Normalize returns v scaled to the given target length. If v is the zero
// vector, it returns {0, -1} (straight ahead in frame coordinates) rather
// than dividing by zero, per the planner's numeric policy (spec.md §4.4).
func (v Vector) Normalize(length float64) Vector {
	l := v.Length()
	if l == 0 {
		return Vector{0, int16(-length)}
	}
	scale := length / l
	return Vector{int16(float64(v.X) * scale), int16(float64(v.Y) * scale)}
}

// Matrix is a 2x2 matrix of float64 coefficients, backed by gonum's mat.Dense
// so that rotation is a single matrix-vector multiply rather than hand-rolled
// arithmetic. gonum.org/v1/gonum is a direct dependency of the teacher
// (ausocean-av go.mod) exercised in the pack only via cmd/rv/probe.go's use
// of gonum/stat; this is its new home for the planner's rotation matrices.
type Matrix struct {
	d *mat.Dense
}

// NewRotation builds the 2x2 rotation matrix for the given angle in degrees,
// matching original_source/code/planner.c's precomputed rot_cwNN_matrix
// constants (there generated offline by a "tco_matrix_gen" utility; here
// computed once at package init via gonum instead of hand-transcribed
// constants, since the values are trivially derivable and gonum is already
// wired in for the multiply).
func NewRotation(degrees float64) Matrix {
	r := degrees * math.Pi / 180
	cos, sin := math.Cos(r), math.Sin(r)
	return Matrix{d: mat.NewDense(2, 2, []float64{cos, -sin, sin, cos})}
}

// Rotate applies the matrix to v and returns the rotated vector, using the
// gonum mat-vec multiply rather than hand-written multiplication.
func (m Matrix) Rotate(v Vector) Vector {
	in := mat.NewVecDense(2, []float64{float64(v.X), float64(v.Y)})
	var out mat.VecDense
	out.MulVec(m.d, in)
	return Vector{int16(out.AtVec(0)), int16(out.AtVec(1))}
}

// Precomputed rotation matrices used by the planner's look-ahead fan, per
// spec.md §4.4 step 6 ("2x2 rotation matrices at ±10° and ±20°").
var (
	RotCW10  = NewRotation(10)
	RotCCW10 = NewRotation(-10)
	RotCW20  = NewRotation(20)
	RotCCW20 = NewRotation(-20)
)
