// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package triangulate

import "github.com/archex/ifcgeom/linear"

// CalcNormal computes a polygon's normal using Newell's method, which
// tolerates mild non-planarity and concavity. It returns (0,0,1) when
// points describes a degenerate (near-zero-area) polygon.
func CalcNormal(points []linear.V3) linear.V3 {
	var n linear.V3
	count := len(points)
	for i := 0; i < count; i++ {
		p := points[i]
		q := points[(i+1)%count]
		n[0] += (p[1] - q[1]) * (p[2] + q[2])
		n[1] += (p[2] - q[2]) * (p[0] + q[0])
		n[2] += (p[0] - q[0]) * (p[1] + q[1])
	}
	if n.Len() < 1e-12 {
		return linear.V3{0, 0, 1}
	}
	var out linear.V3
	out.Norm(&n)
	return out
}

// basisAxes returns an orthonormal (u, v) basis spanning the plane
// with the given normal. The world axis least parallel to normal is
// picked as the reference, then u = normalize(normal × ref) and
// v = normalize(normal × u).
func basisAxes(normal linear.V3) (u, v linear.V3) {
	ref := linear.V3{1, 0, 0}
	ax, ay, az := absf(normal[0]), absf(normal[1]), absf(normal[2])
	if ay < ax && ay <= az {
		ref = linear.V3{0, 1, 0}
	} else if az < ax && az < ay {
		ref = linear.V3{0, 0, 1}
	}
	var rawU linear.V3
	rawU.Cross(&normal, &ref)
	u.Norm(&rawU)
	var rawV linear.V3
	rawV.Cross(&normal, &u)
	v.Norm(&rawV)
	return u, v
}

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// ProjectTo2D projects a planar polygon's 3D points onto a basis
// derived from normal. It returns the projected
// points along with the chosen basis and origin, so callers can
// re-project further point sets with ProjectWithBasis.
func ProjectTo2D(points []linear.V3, normal linear.V3) (pts2d []linear.V2, u, v, origin linear.V3) {
	if len(points) == 0 {
		return nil, u, v, origin
	}
	origin = points[0]
	u, v = basisAxes(normal)
	return ProjectWithBasis(points, u, v, origin), u, v, origin
}

// ProjectWithBasis projects points onto the plane spanned by the
// orthonormal pair (u, v), relative to origin, reusing a
// caller-supplied basis instead of recomputing one.
func ProjectWithBasis(points []linear.V3, u, v, origin linear.V3) []linear.V2 {
	out := make([]linear.V2, len(points))
	for i, p := range points {
		var rel linear.V3
		rel.Sub(&p, &origin)
		out[i] = linear.V2{rel.Dot(&u), rel.Dot(&v)}
	}
	return out
}
