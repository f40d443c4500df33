// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package profile

import (
	"math"

	"github.com/archex/ifcgeom/config"
	"github.com/archex/ifcgeom/internal/geomattr"
	"github.com/archex/ifcgeom/linear"
	"github.com/archex/ifcgeom/schema"
	"github.com/archex/ifcgeom/step"
)

// processArbitrary handles IfcArbitraryClosedProfileDef (attributes
// ProfileType, ProfileName, OuterCurve) and
// IfcArbitraryProfileDefWithVoids (same plus InnerCurves, attribute
// 3).
func processArbitrary(e step.DecodedEntity, dec *step.Decoder, cfg config.Config) (Profile2D, error) {
	outerEnt, err := dec.ResolveRef(e.Attr(2))
	if err != nil {
		return Profile2D{}, err
	}
	if outerEnt == nil {
		return Profile2D{}, nil
	}
	outer, err := processCurve(*outerEnt, dec, cfg)
	if err != nil {
		return Profile2D{}, err
	}

	var holes [][]linear.V2
	if e.Type.Code == schema.IfcArbitraryProfileDefWithVoids {
		innerRefs, err := dec.ResolveRefList(e.Attr(3))
		if err != nil {
			return Profile2D{}, err
		}
		for _, inner := range innerRefs {
			h, err := processCurve(inner, dec, cfg)
			if err != nil {
				return Profile2D{}, err
			}
			holes = append(holes, h)
		}
	}
	// IFC curves carry either winding; orient them to the Profile2D
	// convention (outer CCW, holes CW).
	area := func(pts []linear.V2) (s float32) {
		for i := range pts {
			s += pts[i].Cross(&pts[(i+1)%len(pts)])
		}
		return s
	}
	if area(outer) < 0 {
		reverse2D(outer)
	}
	for _, h := range holes {
		if area(h) > 0 {
			reverse2D(h)
		}
	}
	return Profile2D{Outer: outer, Holes: holes}, nil
}

// processCurve dispatches a resolved curve entity to its handler.
func processCurve(e step.DecodedEntity, dec *step.Decoder, cfg config.Config) ([]linear.V2, error) {
	switch e.Type.Code {
	case schema.IfcPolyline:
		return polyline2D(e, dec)
	case schema.IfcIndexedPolyCurve:
		return indexedPolyCurve(e, dec)
	case schema.IfcCompositeCurve:
		return compositeCurve(e, dec, cfg)
	case schema.IfcTrimmedCurve:
		return trimmedCurve(e, dec, cfg)
	case schema.IfcCircle:
		return circleCurve(e, dec)
	case schema.IfcEllipse:
		return ellipseCurve(e, dec)
	default:
		return nil, &UnsupportedError{TypeName: e.Type.String()}
	}
}

// polyline2D reads IfcPolyline's Points (attribute 0, a list of
// IfcCartesianPoint references).
func polyline2D(e step.DecodedEntity, dec *step.Decoder) ([]linear.V2, error) {
	pts, err := dec.ResolveRefList(e.Attr(0))
	if err != nil {
		return nil, err
	}
	out := make([]linear.V2, 0, len(pts))
	for _, p := range pts {
		v, ok := geomattr.Point2(p.Attr(0))
		if !ok {
			return nil, errShort("cartesian point missing coordinates")
		}
		out = append(out, v)
	}
	return out, nil
}

// indexedPolyCurve reads IfcIndexedPolyCurve: Points (attribute 0,
// a reference to an IfcCartesianPointList2D) plus an optional
// Segments list (attribute 1) of LineIndex/ArcIndex typed values.
// With no segment list, the point list is returned as-is.
func indexedPolyCurve(e step.DecodedEntity, dec *step.Decoder) ([]linear.V2, error) {
	listEnt, err := dec.ResolveRef(e.Attr(0))
	if err != nil {
		return nil, err
	}
	if listEnt == nil {
		return nil, errShort("indexed poly curve missing point list")
	}
	points, ok := geomattr.Floats2D(listEnt.Attr(0))
	if !ok {
		return nil, errShort("point list has malformed coordinates")
	}

	segsAttr := e.Attr(1)
	if segsAttr.IsNull() || segsAttr.Kind != step.TList || len(segsAttr.List) == 0 {
		return points, nil
	}

	var out []linear.V2
	appendPoint := func(p linear.V2) {
		if len(out) > 0 && out[len(out)-1] == p {
			return
		}
		out = append(out, p)
	}
	for _, seg := range segsAttr.List {
		name, ok := seg.TypedValueName()
		if !ok || len(seg.List) < 2 {
			continue
		}
		idxList := seg.List[1]
		switch name {
		case "IFCLINEINDEX":
			for _, iv := range idxList.List {
				i := int(iv.Int) - 1
				if i < 0 || i >= len(points) {
					continue
				}
				appendPoint(points[i])
			}
		case "IFCARCINDEX":
			if len(idxList.List) < 3 {
				continue
			}
			a := int(idxList.List[0].Int) - 1
			b := int(idxList.List[1].Int) - 1
			c := int(idxList.List[2].Int) - 1
			if a < 0 || a >= len(points) || b < 0 || b >= len(points) || c < 0 || c >= len(points) {
				continue
			}
			arc := sampleArcThreePoint(points[a], points[b], points[c], 16)
			for _, p := range arc {
				appendPoint(p)
			}
		}
	}
	return out, nil
}

// sampleArcThreePoint approximates the circular arc through a, b, c
// (with b the intermediate point) with n straight segments (n+1
// points).
func sampleArcThreePoint(a, b, c linear.V2, n int) []linear.V2 {
	center, radius, ok := circleThroughThreePoints(a, b, c)
	if !ok {
		return []linear.V2{a, b, c}
	}
	startAngle := math.Atan2(float64(a[1]-center[1]), float64(a[0]-center[0]))
	midAngle := math.Atan2(float64(b[1]-center[1]), float64(b[0]-center[0]))
	endAngle := math.Atan2(float64(c[1]-center[1]), float64(c[0]-center[0]))

	sweep := endAngle - startAngle
	// Choose the sweep direction that passes through b.
	normalize := func(a float64) float64 {
		for a < 0 {
			a += 2 * math.Pi
		}
		for a >= 2*math.Pi {
			a -= 2 * math.Pi
		}
		return a
	}
	fwd := normalize(endAngle - startAngle)
	midFwd := normalize(midAngle - startAngle)
	if midFwd > fwd {
		sweep = fwd - 2*math.Pi
	} else {
		sweep = fwd
	}

	out := make([]linear.V2, n+1)
	for i := 0; i <= n; i++ {
		t := startAngle + sweep*float64(i)/float64(n)
		out[i] = linear.V2{
			center[0] + radius*float32(math.Cos(t)),
			center[1] + radius*float32(math.Sin(t)),
		}
	}
	return out
}

func circleThroughThreePoints(a, b, c linear.V2) (linear.V2, float32, bool) {
	ax, ay := a[0], a[1]
	bx, by := b[0], b[1]
	cx, cy := c[0], c[1]
	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if absf32(d) < 1e-9 {
		return linear.V2{}, 0, false
	}
	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d
	center := linear.V2{ux, uy}
	var r linear.V2
	r.Sub(&a, &center)
	return center, r.Len(), true
}

func absf32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// compositeCurve iterates CompositeCurveSegments (attribute 0),
// resolving each ParentCurve, reversing when SameSense is false, and
// appending while skipping the first point if the growing output is
// non-empty, to avoid duplicating joints.
func compositeCurve(e step.DecodedEntity, dec *step.Decoder, cfg config.Config) ([]linear.V2, error) {
	segRefs, err := dec.ResolveRefList(e.Attr(0))
	if err != nil {
		return nil, err
	}
	var out []linear.V2
	for _, seg := range segRefs {
		sameSense := seg.Attr(1).Str != "F"
		parent, err := dec.ResolveRef(seg.Attr(2))
		if err != nil {
			return nil, err
		}
		if parent == nil {
			continue
		}
		pts, err := processCurve(*parent, dec, cfg)
		if err != nil {
			return nil, err
		}
		if !sameSense {
			reverse2D(pts)
		}
		if len(out) > 0 && len(pts) > 0 {
			pts = pts[1:]
		}
		out = append(out, pts...)
	}
	return out, nil
}

func reverse2D(pts []linear.V2) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// trimmedCurve resolves BasisCurve (attribute 0); for circle/ellipse
// it calls the conic trimmer, otherwise it falls through to the
// generic curve dispatcher and ignores the trim.
func trimmedCurve(e step.DecodedEntity, dec *step.Decoder, cfg config.Config) ([]linear.V2, error) {
	basis, err := dec.ResolveRef(e.Attr(0))
	if err != nil {
		return nil, err
	}
	if basis == nil {
		return nil, errShort("trimmed curve missing basis curve")
	}
	if basis.Type.Code == schema.IfcCircle || basis.Type.Code == schema.IfcEllipse {
		return trimmedConic(*basis, e, dec, cfg)
	}
	return processCurve(*basis, dec, cfg)
}

// trimmedConic extracts trim parameters from IfcParameterValue(a)
// typed-value lists (skipping cartesian-point trims), treats units
// per cfg.AngleUnit, maps SenseAgreement == .T. to a forward sweep
// from trim1 to trim2 (reversed otherwise), and samples 33
// points.
func trimmedConic(basis step.DecodedEntity, trimmed step.DecodedEntity, dec *step.Decoder, cfg config.Config) ([]linear.V2, error) {
	t1, ok1 := parameterTrim(trimmed.Attr(1))
	t2, ok2 := parameterTrim(trimmed.Attr(2))
	if !ok1 || !ok2 {
		return processConicFull(basis, dec)
	}
	forward := trimmed.Attr(3).Str != "F"

	toRad := func(v float64) float64 {
		if cfg.AngleUnit == config.Degrees {
			return v * math.Pi / 180
		}
		return v
	}
	a1, a2 := toRad(t1), toRad(t2)
	if !forward {
		a1, a2 = a2, a1
	}
	sweep := a2 - a1
	for sweep < 0 {
		sweep += 2 * math.Pi
	}

	pl, radius, semi2, err := conicShape(basis, dec)
	if err != nil {
		return nil, err
	}

	const numSegments = 32
	out := make([]linear.V2, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := a1 + sweep*float64(i)/float64(numSegments)
		x := radius * float32(math.Cos(t))
		y := semi2 * float32(math.Sin(t))
		out[i] = pl.Apply(linear.V2{x, y})
	}
	return out, nil
}

func parameterTrim(v step.AttributeValue) (float64, bool) {
	if v.Kind != step.TList {
		return 0, false
	}
	for _, child := range v.List {
		name, ok := child.TypedValueName()
		if !ok || name != "IFCPARAMETERVALUE" || len(child.List) < 2 {
			continue
		}
		if f, ok := geomattr.Float(child.List[1]); ok {
			return f, true
		}
	}
	return 0, false
}

func processConicFull(basis step.DecodedEntity, dec *step.Decoder) ([]linear.V2, error) {
	pl, radius, semi2, err := conicShape(basis, dec)
	if err != nil {
		return nil, err
	}
	out := make([]linear.V2, circleSegments)
	for i := 0; i < circleSegments; i++ {
		t := 2 * math.Pi * float64(i) / float64(circleSegments)
		x := radius * float32(math.Cos(t))
		y := semi2 * float32(math.Sin(t))
		out[i] = pl.Apply(linear.V2{x, y})
	}
	return out, nil
}

func conicShape(basis step.DecodedEntity, dec *step.Decoder) (geomattr.Placement2D, float32, float32, error) {
	pl, err := geomattr.ResolveAxis2Placement2D(dec, basis.Attr(0))
	if err != nil {
		return geomattr.Placement2D{}, 0, 0, err
	}
	r1, ok := geomattr.Float(basis.Attr(1))
	if !ok {
		return geomattr.Placement2D{}, 0, 0, errShort("conic missing radius")
	}
	r2 := r1
	if basis.Type.Code == schema.IfcEllipse {
		if v, ok := geomattr.Float(basis.Attr(2)); ok {
			r2 = v
		}
	}
	return pl, float32(r1), float32(r2), nil
}

// circleCurve samples IfcCircle (Position attr 0, Radius attr 1) with
// 64-segment parametric sampling and placement applied.
func circleCurve(e step.DecodedEntity, dec *step.Decoder) ([]linear.V2, error) {
	pts, err := processConicFull(e, dec)
	return pts, err
}

// ellipseCurve samples IfcEllipse (Position attr 0, SemiAxis1 attr 1,
// SemiAxis2 attr 2).
func ellipseCurve(e step.DecodedEntity, dec *step.Decoder) ([]linear.V2, error) {
	pts, err := processConicFull(e, dec)
	return pts, err
}
