// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package process

import (
	"github.com/archex/ifcgeom/internal/geomattr"
	"github.com/archex/ifcgeom/mesh"
	"github.com/archex/ifcgeom/step"
)

// processTriangulatedFaceSet implements TriangulatedFaceSet:
// attributes (Coordinates, Normals?, Closed?, CoordIndex). Normals are
// left empty; the top-level pipeline computes them later if needed.
func processTriangulatedFaceSet(e step.DecodedEntity, dec *step.Decoder) (*mesh.Mesh, error) {
	coordEnt, err := dec.ResolveRef(e.Attr(0))
	if err != nil {
		return nil, err
	}
	if coordEnt == nil {
		return nil, &InvalidGeometryError{Reason: "triangulated face set missing coordinates"}
	}
	points, ok := geomattr.Floats3D(coordEnt.Attr(0))
	if !ok {
		return nil, &InvalidGeometryError{Reason: "triangulated face set coordinates are malformed"}
	}

	m := &mesh.Mesh{}
	for _, p := range points {
		m.AddVertex(p[0], p[1], p[2], 0, 0, 0)
	}

	triples, ok := geomattr.Floats3D(e.Attr(3))
	if !ok {
		return nil, &InvalidGeometryError{Reason: "triangulated face set coord index is malformed"}
	}
	for _, t := range triples {
		a, b, c := int(t[0]), int(t[1]), int(t[2])
		if a < 1 || b < 1 || c < 1 || a > len(points) || b > len(points) || c > len(points) {
			return nil, &InvalidGeometryError{Reason: "triangulated face set coord index out of range"}
		}
		m.AddTriangle(uint32(a-1), uint32(b-1), uint32(c-1))
	}
	return m, nil
}
