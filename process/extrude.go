// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package process

import (
	"github.com/archex/ifcgeom/config"
	"github.com/archex/ifcgeom/internal/geomattr"
	"github.com/archex/ifcgeom/linear"
	"github.com/archex/ifcgeom/mesh"
	"github.com/archex/ifcgeom/profile"
	"github.com/archex/ifcgeom/step"
	"github.com/archex/ifcgeom/triangulate"
)

// processExtrudedAreaSolid implements ExtrudedAreaSolid:
// attributes (SweptArea, Position, ExtrudedDirection, Depth).
func processExtrudedAreaSolid(e step.DecodedEntity, dec *step.Decoder, cfg config.Config) (*mesh.Mesh, error) {
	profEnt, err := dec.ResolveRef(e.Attr(0))
	if err != nil {
		return nil, err
	}
	if profEnt == nil {
		return nil, &InvalidGeometryError{Reason: "extruded area solid missing swept area"}
	}
	prof, err := profile.Process(*profEnt, dec, cfg)
	if err != nil {
		return nil, err
	}
	if prof.IsEmpty() {
		return &mesh.Mesh{}, nil
	}

	dir, err := geomattr.ResolveDirection3(dec, e.Attr(2), linear.V3{0, 0, 1})
	if err != nil {
		return nil, err
	}
	depthF, ok := geomattr.Float(e.Attr(3))
	if !ok || depthF <= 0 {
		return nil, &InvalidGeometryError{Reason: "extruded area solid has non-positive or missing depth"}
	}
	depth := float32(depthF)

	m := extrudeProfile(prof, depth)
	applyExtrusionDirection(m, dir, depth)

	posMat, err := geomattr.ResolveAxis2Placement3D(dec, e.Attr(1))
	if err != nil {
		return nil, err
	}
	transformMeshInPlace(m, posMat)
	return m, nil
}

// extrudeProfile builds the unrotated solid: top cap at z=0 (winding
// reversed, normal -Z), bottom cap at z=depth (normal +Z), and side
// walls as quads with outward normals. Holes are cut
// out of both caps and get their own side walls.
func extrudeProfile(p profile.Profile2D, depth float32) *mesh.Mesh {
	m := &mesh.Mesh{}
	addCap(m, p, 0, true)
	addCap(m, p, depth, false)
	addWalls(m, p.Outer, depth)
	for _, h := range p.Holes {
		addWalls(m, h, depth)
	}
	return m
}

// addCap triangulates the profile (holes cut out) at height z.
// reversed selects the top-cap winding (normal -Z) over the
// bottom-cap winding (normal +Z).
func addCap(m *mesh.Mesh, p profile.Profile2D, z float32, reversed bool) {
	if len(p.Outer) < 3 {
		return
	}
	idx, err := triangulate.TriangulateWithHoles(p.Outer, p.Holes)
	holes := p.Holes
	if err != nil {
		// Fan fallback over the outer ring, holes dropped,
		// mirroring the brep processor's degradation.
		idx = fanTriangulate(p.Outer)
		holes = nil
	}
	nz := float32(1)
	if reversed {
		nz = -1
	}
	base := uint32(m.VertexCount())
	for _, pt := range p.Outer {
		m.AddVertex(pt[0], pt[1], z, 0, 0, nz)
	}
	for _, h := range holes {
		for _, pt := range h {
			m.AddVertex(pt[0], pt[1], z, 0, 0, nz)
		}
	}
	for i := 0; i+3 <= len(idx); i += 3 {
		a, b, c := idx[i], idx[i+1], idx[i+2]
		if reversed {
			m.AddTriangle(base+a, base+c, base+b)
		} else {
			m.AddTriangle(base+a, base+b, base+c)
		}
	}
}

func addWalls(m *mesh.Mesh, ring []linear.V2, depth float32) {
	n := len(ring)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		p0 := ring[i]
		p1 := ring[(i+1)%n]
		ex, ey := p1[0]-p0[0], p1[1]-p0[1]
		if ex*ex+ey*ey < 1e-18 {
			// Zero-length edge, as left by a closed polyline that
			// repeats its first point.
			continue
		}
		var normal linear.V2
		normal.Norm(&linear.V2{-ey, ex})

		base := uint32(m.VertexCount())
		m.AddVertex(p0[0], p0[1], 0, normal[0], normal[1], 0)
		m.AddVertex(p1[0], p1[1], 0, normal[0], normal[1], 0)
		m.AddVertex(p1[0], p1[1], depth, normal[0], normal[1], 0)
		m.AddVertex(p0[0], p0[1], depth, normal[0], normal[1], 0)
		m.AddTriangle(base, base+1, base+2)
		m.AddTriangle(base, base+2, base+3)
	}
}

// applyExtrusionDirection handles the three extrusion-direction cases:
// direction along +Z needs no change; along -Z translates by
// (0,0,-depth); any other direction is rotated into an orthonormal
// frame whose Z matches direction.
func applyExtrusionDirection(m *mesh.Mesh, dir linear.V3, depth float32) {
	const epsilon = 1e-6
	if nearlyEqualV3(dir, linear.V3{0, 0, 1}, epsilon) {
		return
	}
	if nearlyEqualV3(dir, linear.V3{0, 0, -1}, epsilon) {
		translateMeshInPlace(m, 0, 0, -depth)
		return
	}
	up := linear.V3{0, 0, 1}
	if absf(dir[2]) > 0.9 {
		up = linear.V3{0, 1, 0}
	}
	var x, y linear.V3
	var proj linear.V3
	d := up.Dot(&dir)
	proj.Scale(d, &dir)
	var xOrtho linear.V3
	xOrtho.Sub(&up, &proj)
	x.Norm(&xOrtho)
	y.Cross(&dir, &x)

	rot := linear.M4{
		{x[0], x[1], x[2], 0},
		{y[0], y[1], y[2], 0},
		{dir[0], dir[1], dir[2], 0},
		{0, 0, 0, 1},
	}
	transformMeshInPlace(m, &rot)
}

func nearlyEqualV3(a, b linear.V3, eps float32) bool {
	var d linear.V3
	d.Sub(&a, &b)
	return d.Len() < eps
}

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
