// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package process

import (
	"strings"

	"github.com/archex/ifcgeom/internal/geomattr"
	"github.com/archex/ifcgeom/linear"
	"github.com/archex/ifcgeom/mesh"
	"github.com/archex/ifcgeom/step"
	"github.com/archex/ifcgeom/triangulate"
)

// processFacetedBrep implements FacetedBrep: attribute Outer (a
// closed shell). Each face's bounds are triangulated in a planar
// basis derived from its Newell normal, falling back to a fan
// triangulation with holes dropped when ear-clipping fails.
func processFacetedBrep(e step.DecodedEntity, dec *step.Decoder) (*mesh.Mesh, error) {
	shell, err := dec.ResolveRef(e.Attr(0))
	if err != nil {
		return nil, err
	}
	if shell == nil {
		return nil, &InvalidGeometryError{Reason: "faceted brep missing outer shell"}
	}
	faces, err := dec.ResolveRefList(shell.Attr(0))
	if err != nil {
		return nil, err
	}

	m := &mesh.Mesh{}
	for _, face := range faces {
		fm, err := processFace(face, dec)
		if err != nil {
			return nil, err
		}
		m.Merge(fm)
	}
	return m, nil
}

func processFace(face step.DecodedEntity, dec *step.Decoder) (*mesh.Mesh, error) {
	bounds, err := dec.ResolveRefList(face.Attr(0))
	if err != nil {
		return nil, err
	}
	if len(bounds) == 0 {
		return &mesh.Mesh{}, nil
	}

	var outer []linear.V3
	var holes [][]linear.V3
	haveExplicitOuter := false
	for _, b := range bounds {
		if strings.Contains(b.Type.String(), "OUTER") {
			haveExplicitOuter = true
			break
		}
	}

	for i, b := range bounds {
		loop, err := resolveLoopPoints(b, dec)
		if err != nil {
			return nil, err
		}
		if len(loop) < 3 {
			continue
		}
		isOuter := false
		if haveExplicitOuter {
			isOuter = strings.Contains(b.Type.String(), "OUTER")
		} else {
			isOuter = i == 0
		}
		if isOuter {
			outer = loop
		} else {
			holes = append(holes, loop)
		}
	}
	if len(outer) < 3 {
		return &mesh.Mesh{}, nil
	}

	normal := triangulate.CalcNormal(outer)
	pts2d, u, v, origin := triangulate.ProjectTo2D(outer, normal)
	holes2d := make([][]linear.V2, len(holes))
	for i, h := range holes {
		holes2d[i] = triangulate.ProjectWithBasis(h, u, v, origin)
	}

	idx, err := triangulate.TriangulateWithHoles(pts2d, holes2d)
	if err != nil {
		idx = fanTriangulate3(outer)
		holes = nil
	}

	// TriangulateWithHoles indexes into its own concatenation of
	// (outer, holes...) in order, which matches the vertex layout built
	// below, so idx is used as-is.
	m := &mesh.Mesh{}
	for _, p := range outer {
		m.AddVertex(p[0], p[1], p[2], normal[0], normal[1], normal[2])
	}
	for _, h := range holes {
		for _, p := range h {
			m.AddVertex(p[0], p[1], p[2], normal[0], normal[1], normal[2])
		}
	}
	for i := 0; i+3 <= len(idx); i += 3 {
		m.AddTriangle(idx[i], idx[i+1], idx[i+2])
	}
	return m, nil
}

func resolveLoopPoints(bound step.DecodedEntity, dec *step.Decoder) ([]linear.V3, error) {
	loopEnt, err := dec.ResolveRef(bound.Attr(0))
	if err != nil {
		return nil, err
	}
	if loopEnt == nil {
		return nil, nil
	}
	refs, err := dec.ResolveRefList(loopEnt.Attr(0))
	if err != nil {
		return nil, err
	}
	points := make([]linear.V3, 0, len(refs))
	for _, ref := range refs {
		p, ok := geomattr.Point3(ref.Attr(0))
		if !ok {
			continue
		}
		points = append(points, p)
	}
	orientation := bound.Attr(1)
	if orientation.Str == "F" {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}
	return points, nil
}
