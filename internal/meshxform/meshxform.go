// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package meshxform applies affine transforms to mesh.Mesh values:
// positions directly, normals by the inverse-transpose of the
// upper-left 3x3 (renormalized, falling back to the matrix itself
// when the inverse is degenerate). Shared by the process and router
// packages so the transform rule lives in one place.
package meshxform

import (
	"github.com/archex/ifcgeom/linear"
	"github.com/archex/ifcgeom/mesh"
)

// Apply transforms every position and normal of m in place by mat.
func Apply(m *mesh.Mesh, mat *linear.M4) {
	rot := upperLeft3x3(mat)
	normalMat := normalMatrix(rot)

	for i := 0; i+2 < len(m.Positions); i += 3 {
		p := linear.V4{m.Positions[i], m.Positions[i+1], m.Positions[i+2], 1}
		var out linear.V4
		out.Mul(mat, &p)
		m.Positions[i], m.Positions[i+1], m.Positions[i+2] = out[0], out[1], out[2]

		n := linear.V3{m.Normals[i], m.Normals[i+1], m.Normals[i+2]}
		var outN linear.V3
		outN.Mul(normalMat, &n)
		if outN.Len() > 1e-9 {
			var normalized linear.V3
			normalized.Norm(&outN)
			outN = normalized
		}
		m.Normals[i], m.Normals[i+1], m.Normals[i+2] = outN[0], outN[1], outN[2]
	}
}

// Translate offsets every position of m in place by (dx, dy, dz); it
// does not affect normals.
func Translate(m *mesh.Mesh, dx, dy, dz float32) {
	for i := 0; i+2 < len(m.Positions); i += 3 {
		m.Positions[i] += dx
		m.Positions[i+1] += dy
		m.Positions[i+2] += dz
	}
}

func upperLeft3x3(mat *linear.M4) *linear.M3 {
	return &linear.M3{
		{mat[0][0], mat[0][1], mat[0][2]},
		{mat[1][0], mat[1][1], mat[1][2]},
		{mat[2][0], mat[2][1], mat[2][2]},
	}
}

// normalMatrix returns the inverse-transpose of rot, falling back to
// rot itself when the determinant is too small to invert safely.
func normalMatrix(rot *linear.M3) *linear.M3 {
	if !invertible(rot) {
		return rot
	}
	var inv, out linear.M3
	inv.Invert(rot)
	out.Transpose(&inv)
	return &out
}

func invertible(m *linear.M3) bool {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	return det > 1e-9 || det < -1e-9
}
