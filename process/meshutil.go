// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package process

import (
	"github.com/archex/ifcgeom/internal/meshxform"
	"github.com/archex/ifcgeom/linear"
	"github.com/archex/ifcgeom/mesh"
)

func transformMeshInPlace(m *mesh.Mesh, mat *linear.M4) { meshxform.Apply(m, mat) }

func translateMeshInPlace(m *mesh.Mesh, dx, dy, dz float32) { meshxform.Translate(m, dx, dy, dz) }

// fanTriangulate triangulates ring as a fan from its first vertex,
// the extruded-area-solid cap fallback when ear-clipping fails.
func fanTriangulate(ring []linear.V2) []uint32 {
	if len(ring) < 3 {
		return nil
	}
	out := make([]uint32, 0, 3*(len(ring)-2))
	for i := 1; i+1 < len(ring); i++ {
		out = append(out, 0, uint32(i), uint32(i+1))
	}
	return out
}

// fanTriangulate3 is fanTriangulate for 3D rings, used by the brep
// processor when ear-clipping of a face fails.
func fanTriangulate3(ring []linear.V3) []uint32 {
	if len(ring) < 3 {
		return nil
	}
	out := make([]uint32, 0, 3*(len(ring)-2))
	for i := 1; i+1 < len(ring); i++ {
		out = append(out, 0, uint32(i), uint32(i+1))
	}
	return out
}
