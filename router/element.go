// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package router

import "github.com/archex/ifcgeom/mesh"

// ElementMesh is one building element's fully processed result: its
// merged, placement-transformed mesh and the RGBA color resolved for
// it by a StyleIndex. The pipeline package
// assembles these from ProcessElement and BuildStyleIndex.
type ElementMesh struct {
	ExpressID uint32
	Mesh      mesh.Mesh
	RGBA      [4]float32
}
