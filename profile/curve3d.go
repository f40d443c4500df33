// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package profile

import (
	"github.com/archex/ifcgeom/config"
	"github.com/archex/ifcgeom/internal/geomattr"
	"github.com/archex/ifcgeom/linear"
	"github.com/archex/ifcgeom/schema"
	"github.com/archex/ifcgeom/step"
)

// ProcessCurve3D samples a directrix curve entity as 3D points, for
// the swept-disk processor. It implements polyline-3d and
// composite-curve-3d with the same join rules as their 2D
// counterparts, and falls back to promoting the 2D curve dispatcher's
// result to z=0 for every other curve type.
func ProcessCurve3D(e step.DecodedEntity, dec *step.Decoder, cfg config.Config) ([]linear.V3, error) {
	switch e.Type.Code {
	case schema.IfcPolyline:
		return polyline3D(e, dec)
	case schema.IfcCompositeCurve:
		return compositeCurve3D(e, dec, cfg)
	default:
		pts, err := processCurve(e, dec, cfg)
		if err != nil {
			return nil, err
		}
		return promoteToZ0(pts), nil
	}
}

func promoteToZ0(pts []linear.V2) []linear.V3 {
	out := make([]linear.V3, len(pts))
	for i, p := range pts {
		out[i] = linear.V3{p[0], p[1], 0}
	}
	return out
}

func polyline3D(e step.DecodedEntity, dec *step.Decoder) ([]linear.V3, error) {
	pts, err := dec.ResolveRefList(e.Attr(0))
	if err != nil {
		return nil, err
	}
	out := make([]linear.V3, 0, len(pts))
	for _, p := range pts {
		v, ok := geomattr.Point3(p.Attr(0))
		if !ok {
			return nil, errShort("cartesian point missing coordinates")
		}
		out = append(out, v)
	}
	return out, nil
}

func compositeCurve3D(e step.DecodedEntity, dec *step.Decoder, cfg config.Config) ([]linear.V3, error) {
	segRefs, err := dec.ResolveRefList(e.Attr(0))
	if err != nil {
		return nil, err
	}
	var out []linear.V3
	for _, seg := range segRefs {
		sameSense := seg.Attr(1).Str != "F"
		parent, err := dec.ResolveRef(seg.Attr(2))
		if err != nil {
			return nil, err
		}
		if parent == nil {
			continue
		}
		pts, err := ProcessCurve3D(*parent, dec, cfg)
		if err != nil {
			return nil, err
		}
		if !sameSense {
			reverse3D(pts)
		}
		if len(out) > 0 && len(pts) > 0 {
			pts = pts[1:]
		}
		out = append(out, pts...)
	}
	return out, nil
}

func reverse3D(pts []linear.V3) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
