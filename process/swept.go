// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package process

import (
	"math"

	"github.com/archex/ifcgeom/config"
	"github.com/archex/ifcgeom/internal/geomattr"
	"github.com/archex/ifcgeom/linear"
	"github.com/archex/ifcgeom/mesh"
	"github.com/archex/ifcgeom/profile"
	"github.com/archex/ifcgeom/step"
)

const sweptDiskRingSegments = 12

// processSweptDiskSolid implements SweptDiskSolid: attributes
// (Directrix, Radius, InnerRadius?, StartParam?, EndParam?).
// InnerRadius is ignored; a full implementation would emit a second
// inverted ring set for a hollow tube.
func processSweptDiskSolid(e step.DecodedEntity, dec *step.Decoder, cfg config.Config) (*mesh.Mesh, error) {
	curveEnt, err := dec.ResolveRef(e.Attr(0))
	if err != nil {
		return nil, err
	}
	if curveEnt == nil {
		return nil, &InvalidGeometryError{Reason: "swept disk solid missing directrix"}
	}
	path, err := profile.ProcessCurve3D(*curveEnt, dec, cfg)
	if err != nil {
		return nil, err
	}
	if len(path) < 2 {
		return &mesh.Mesh{}, nil
	}

	radiusF, ok := geomattr.Float(e.Attr(1))
	if !ok || radiusF <= 0 {
		return nil, &InvalidGeometryError{Reason: "swept disk solid has non-positive or missing radius"}
	}
	radius := float32(radiusF)

	m := &mesh.Mesh{}
	rings := make([][]uint32, len(path))
	for i, p := range path {
		tangent := pathTangent(path, i)
		rings[i] = emitRing(m, p, tangent, radius)
	}
	for i := 0; i+1 < len(rings); i++ {
		connectRings(m, rings[i], rings[i+1])
	}
	addFanCap(m, rings[0], true)
	addFanCap(m, rings[len(rings)-1], false)
	return m, nil
}

func pathTangent(path []linear.V3, i int) linear.V3 {
	var t linear.V3
	switch {
	case i == 0:
		t.Sub(&path[1], &path[0])
	case i == len(path)-1:
		t.Sub(&path[i], &path[i-1])
	default:
		var fwd, back linear.V3
		fwd.Sub(&path[i+1], &path[i])
		back.Sub(&path[i], &path[i-1])
		t.Add(&fwd, &back)
	}
	if t.Len() < 1e-12 {
		return linear.V3{0, 0, 1}
	}
	var out linear.V3
	out.Norm(&t)
	return out
}

// emitRing adds a ring of sweptDiskRingSegments vertices centered at
// center, perpendicular to tangent, with radius radius.
func emitRing(m *mesh.Mesh, center, tangent linear.V3, radius float32) []uint32 {
	up := linear.V3{0, 0, 1}
	if absf(tangent[2]) > 0.9 {
		up = linear.V3{0, 1, 0}
	}
	var proj, xOrtho, x, y linear.V3
	d := up.Dot(&tangent)
	proj.Scale(d, &tangent)
	xOrtho.Sub(&up, &proj)
	x.Norm(&xOrtho)
	y.Cross(&tangent, &x)

	idx := make([]uint32, sweptDiskRingSegments)
	for i := 0; i < sweptDiskRingSegments; i++ {
		theta := 2 * math.Pi * float64(i) / sweptDiskRingSegments
		cx := radius * float32(math.Cos(theta))
		cy := radius * float32(math.Sin(theta))
		var offsetX, offsetY, pos linear.V3
		offsetX.Scale(cx, &x)
		offsetY.Scale(cy, &y)
		pos.Add(&offsetX, &offsetY)
		pos.Add(&pos, &center)

		var normal linear.V3
		normal.Add(&offsetX, &offsetY)
		if normal.Len() > 1e-12 {
			var n linear.V3
			n.Norm(&normal)
			normal = n
		}
		idx[i] = m.AddVertex(pos[0], pos[1], pos[2], normal[0], normal[1], normal[2])
	}
	return idx
}

func connectRings(m *mesh.Mesh, a, b []uint32) {
	n := len(a)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m.AddTriangle(a[i], a[j], b[j])
		m.AddTriangle(a[i], b[j], b[i])
	}
}

func addFanCap(m *mesh.Mesh, ring []uint32, reversed bool) {
	for i := 1; i+1 < len(ring); i++ {
		if reversed {
			m.AddTriangle(ring[0], ring[i+1], ring[i])
		} else {
			m.AddTriangle(ring[0], ring[i], ring[i+1])
		}
	}
}
