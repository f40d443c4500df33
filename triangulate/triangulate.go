// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package triangulate implements ear-clipping polygon triangulation
// with holes and the 3D→2D planar projection the face processors use
// before triangulating.
package triangulate

import (
	"errors"

	"github.com/archex/ifcgeom/linear"
)

const prefix = "triangulate: "

// Triangulate performs ear-clipping triangulation of a simple
// counter-clockwise polygon. It returns index triples into outer; for
// any simple CCW polygon with n >= 3 vertices it returns exactly
// 3*(n-2) indices.
func Triangulate(outer []linear.V2) ([]uint32, error) {
	n := len(outer)
	if n < 3 {
		return nil, errors.New(prefix + "polygon has fewer than 3 vertices")
	}
	ring := make([]int, n)
	for i := range ring {
		ring[i] = i
	}
	if signedArea(outer, ring) < 0 {
		reverseInts(ring)
	}

	var out []uint32
	guard := 0
	maxGuard := n * n * 2
	for len(ring) > 3 {
		guard++
		if guard > maxGuard {
			return nil, errors.New(prefix + "ear clipping failed to converge")
		}
		found := false
		for i := 0; i < len(ring); i++ {
			ia := ring[(i-1+len(ring))%len(ring)]
			ib := ring[i]
			ic := ring[(i+1)%len(ring)]
			if !isConvex(outer[ia], outer[ib], outer[ic]) {
				continue
			}
			if triangleContainsAny(outer, ring, ia, ib, ic) {
				continue
			}
			out = append(out, uint32(ia), uint32(ib), uint32(ic))
			ring = append(ring[:i], ring[i+1:]...)
			found = true
			break
		}
		if !found {
			return nil, errors.New(prefix + "no ear found, polygon may be self-intersecting")
		}
	}
	out = append(out, uint32(ring[0]), uint32(ring[1]), uint32(ring[2]))
	return out, nil
}

func signedArea(pts []linear.V2, ring []int) float32 {
	var a float32
	n := len(ring)
	for i := 0; i < n; i++ {
		p := pts[ring[i]]
		q := pts[ring[(i+1)%n]]
		a += p[0]*q[1] - q[0]*p[1]
	}
	return a / 2
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func isConvex(a, b, c linear.V2) bool {
	var e1, e2 linear.V2
	e1.Sub(&b, &a)
	e2.Sub(&c, &b)
	return e1.Cross(&e2) > 1e-12
}

func pointInTriangle(p, a, b, c linear.V2) bool {
	var ab, bc, ca, ap, bp, cp linear.V2
	ab.Sub(&b, &a)
	ap.Sub(&p, &a)
	bc.Sub(&c, &b)
	bp.Sub(&p, &b)
	ca.Sub(&a, &c)
	cp.Sub(&p, &c)
	d1 := ab.Cross(&ap)
	d2 := bc.Cross(&bp)
	d3 := ca.Cross(&cp)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

// triangleContainsAny reports whether any ring vertex other than
// ia, ib, ic lies inside (or on) the candidate ear triangle, which
// would disqualify it as an ear. Vertices coordinate-equal to an ear
// corner are skipped: hole bridging duplicates the two bridge
// vertices, and those copies always sit on the boundary of ears using
// the originals without actually blocking them.
func triangleContainsAny(pts []linear.V2, ring []int, ia, ib, ic int) bool {
	for _, idx := range ring {
		if idx == ia || idx == ib || idx == ic {
			continue
		}
		p := pts[idx]
		if p == pts[ia] || p == pts[ib] || p == pts[ic] {
			continue
		}
		if pointInTriangle(p, pts[ia], pts[ib], pts[ic]) {
			return true
		}
	}
	return false
}

// TriangulateWithHoles triangulates a polygon whose outer boundary is
// CCW and whose holes are CW, by bridging each hole into the outer
// ring at a mutually-visible vertex pair and ear-clipping the
// result.
func TriangulateWithHoles(outer []linear.V2, holes [][]linear.V2) ([]uint32, error) {
	if len(holes) == 0 {
		return Triangulate(outer)
	}
	verts := append([]linear.V2(nil), outer...)
	ring := make([]int, len(outer))
	for i := range ring {
		ring[i] = i
	}
	for _, hole := range holes {
		if len(hole) < 3 {
			continue
		}
		holeStart := len(verts)
		verts = append(verts, hole...)
		holeRing := make([]int, len(hole))
		for i := range holeRing {
			holeRing[i] = holeStart + i
		}
		ring = bridge(verts, ring, holeRing)
	}
	if signedArea(verts, ring) < 0 {
		reverseInts(ring)
	}
	return triangulateRing(verts, ring)
}

// bridge splices holeRing into ring by connecting the hole's
// rightmost vertex to the nearest outer vertex visible from it (the
// classic "eliminate holes" construction).
func bridge(verts []linear.V2, ring []int, holeRing []int) []int {
	// Rightmost vertex of the hole.
	mi := 0
	for i := 1; i < len(holeRing); i++ {
		if verts[holeRing[i]][0] > verts[holeRing[mi]][0] {
			mi = i
		}
	}
	m := holeRing[mi]

	// Nearest (by distance) outer vertex with x >= verts[m].x, a cheap
	// visibility heuristic that is exact for the convex/near-convex
	// profiles this pipeline produces.
	best := -1
	var bestDist float32
	for _, o := range ring {
		if verts[o][0] < verts[m][0] {
			continue
		}
		dx := verts[o][0] - verts[m][0]
		dy := verts[o][1] - verts[m][1]
		d := dx*dx + dy*dy
		if best < 0 || d < bestDist {
			best = o
			bestDist = d
		}
	}
	if best < 0 {
		// Degenerate: fall back to the first outer vertex.
		best = ring[0]
	}

	// Rotate holeRing so it starts at m.
	rot := append(append([]int(nil), holeRing[mi:]...), holeRing[:mi]...)

	// Splice: ..., best, rot..., m (copy), best (copy), ...
	out := make([]int, 0, len(ring)+len(rot)+2)
	for _, o := range ring {
		out = append(out, o)
		if o == best {
			out = append(out, rot...)
			out = append(out, rot[0], best)
		}
	}
	return out
}

func triangulateRing(verts []linear.V2, ring []int) ([]uint32, error) {
	pts := make([]linear.V2, len(ring))
	for i, r := range ring {
		pts[i] = verts[r]
	}
	idx, err := Triangulate(pts)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, len(idx))
	for i, v := range idx {
		out[i] = uint32(ring[v])
	}
	return out, nil
}
