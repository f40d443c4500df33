// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package geomattr converts raw step.AttributeValue trees into the
// small geometric primitives (floats, points, directions and
// placements) that the profile interpreter, geometry processors and
// router all need, so that attribute-shape knowledge lives in one
// place instead of being re-derived by each caller.
package geomattr

import (
	"github.com/archex/ifcgeom/linear"
	"github.com/archex/ifcgeom/step"
)

// Float extracts a float64 from an integer or float attribute.
func Float(v step.AttributeValue) (float64, bool) {
	switch v.Kind {
	case step.TFloat:
		return v.Float, true
	case step.TInteger:
		return float64(v.Int), true
	default:
		return 0, false
	}
}

// Floats reads a flat list of numeric attributes into a []float64.
func Floats(v step.AttributeValue) ([]float64, bool) {
	if v.Kind != step.TList {
		return nil, false
	}
	out := make([]float64, 0, len(v.List))
	for _, e := range v.List {
		f, ok := Float(e)
		if !ok {
			return nil, false
		}
		out = append(out, f)
	}
	return out, true
}

// Floats2D reads a list of 2-component coordinate lists (an
// IfcCartesianPointList2D's Coordinates attribute) into a []V2.
func Floats2D(v step.AttributeValue) ([]linear.V2, bool) {
	if v.Kind != step.TList {
		return nil, false
	}
	out := make([]linear.V2, 0, len(v.List))
	for _, row := range v.List {
		p, ok := Point2(row)
		if !ok {
			return nil, false
		}
		out = append(out, p)
	}
	return out, true
}

// Floats3D reads a list of 3-component coordinate lists (an
// IfcCartesianPointList3D's Coordinates attribute) into a []V3.
func Floats3D(v step.AttributeValue) ([]linear.V3, bool) {
	if v.Kind != step.TList {
		return nil, false
	}
	out := make([]linear.V3, 0, len(v.List))
	for _, row := range v.List {
		p, ok := Point3(row)
		if !ok {
			return nil, false
		}
		out = append(out, p)
	}
	return out, true
}

// Point2 reads a 2-component coordinate list (an IfcCartesianPoint's
// Coordinates attribute) as a V2.
func Point2(v step.AttributeValue) (linear.V2, bool) {
	fs, ok := Floats(v)
	if !ok || len(fs) < 2 {
		return linear.V2{}, false
	}
	return linear.V2{float32(fs[0]), float32(fs[1])}, true
}

// Point3 reads a 3-component coordinate list as a V3. A 2-component
// list is accepted with z=0.
func Point3(v step.AttributeValue) (linear.V3, bool) {
	fs, ok := Floats(v)
	if !ok || len(fs) < 2 {
		return linear.V3{}, false
	}
	var z float32
	if len(fs) >= 3 {
		z = float32(fs[2])
	}
	return linear.V3{float32(fs[0]), float32(fs[1]), z}, true
}

// ResolvePoint2 resolves an entity reference to an IfcCartesianPoint
// and reads its Coordinates (attribute 0) as a V2.
func ResolvePoint2(dec *step.Decoder, ref step.AttributeValue) (linear.V2, bool, error) {
	if ref.IsNull() {
		return linear.V2{}, false, nil
	}
	e, err := dec.ResolveRef(ref)
	if err != nil {
		return linear.V2{}, false, err
	}
	if e == nil {
		return linear.V2{}, false, nil
	}
	p, ok := Point2(e.Attr(0))
	return p, ok, nil
}

// ResolvePoint3 is ResolvePoint2 for IfcCartesianPoint in 3D.
func ResolvePoint3(dec *step.Decoder, ref step.AttributeValue) (linear.V3, bool, error) {
	if ref.IsNull() {
		return linear.V3{}, false, nil
	}
	e, err := dec.ResolveRef(ref)
	if err != nil {
		return linear.V3{}, false, err
	}
	if e == nil {
		return linear.V3{}, false, nil
	}
	p, ok := Point3(e.Attr(0))
	return p, ok, nil
}

// ResolveDirection2 resolves an IfcDirection reference to a normalized
// V2, or returns def when ref is null.
func ResolveDirection2(dec *step.Decoder, ref step.AttributeValue, def linear.V2) (linear.V2, error) {
	if ref.IsNull() {
		return def, nil
	}
	e, err := dec.ResolveRef(ref)
	if err != nil {
		return def, err
	}
	if e == nil {
		return def, nil
	}
	d, ok := Point2(e.Attr(0))
	if !ok {
		return def, nil
	}
	if d.Len() < 1e-12 {
		return def, nil
	}
	var out linear.V2
	out.Norm(&d)
	return out, nil
}

// ResolveDirection3 is ResolveDirection2 for 3D directions.
func ResolveDirection3(dec *step.Decoder, ref step.AttributeValue, def linear.V3) (linear.V3, error) {
	if ref.IsNull() {
		return def, nil
	}
	e, err := dec.ResolveRef(ref)
	if err != nil {
		return def, err
	}
	if e == nil {
		return def, nil
	}
	d, ok := Point3(e.Attr(0))
	if !ok {
		return def, nil
	}
	if d.Len() < 1e-12 {
		return def, nil
	}
	var out linear.V3
	out.Norm(&d)
	return out, nil
}

// Placement2D is a resolved IfcAxis2Placement2D: a translation plus a
// 2x2 rotation expressed as (cos, sin) of the X-axis angle.
type Placement2D struct {
	Translate linear.V2
	Cos, Sin  float32
	Identity  bool
}

// Apply transforms p by the placement.
func (pl Placement2D) Apply(p linear.V2) linear.V2 {
	if pl.Identity {
		return p
	}
	x := pl.Cos*p[0] - pl.Sin*p[1]
	y := pl.Sin*p[0] + pl.Cos*p[1]
	return linear.V2{x + pl.Translate[0], y + pl.Translate[1]}
}

// ApplyAll transforms every point of outer and each hole in holes,
// skipping the transform entirely when it is the identity.
func (pl Placement2D) ApplyAll(outer []linear.V2, holes [][]linear.V2) ([]linear.V2, [][]linear.V2) {
	if pl.Identity {
		return outer, holes
	}
	o := make([]linear.V2, len(outer))
	for i, p := range outer {
		o[i] = pl.Apply(p)
	}
	hs := make([][]linear.V2, len(holes))
	for i, h := range holes {
		hh := make([]linear.V2, len(h))
		for j, p := range h {
			hh[j] = pl.Apply(p)
		}
		hs[i] = hh
	}
	return o, hs
}

// ResolveAxis2Placement2D resolves ref (an IfcAxis2Placement2D
// reference) to a Placement2D. A null ref yields the identity.
// Location is attribute 0, RefDirection is attribute 1 (defaults to
// +X, per the grammar's optional-attribute convention).
func ResolveAxis2Placement2D(dec *step.Decoder, ref step.AttributeValue) (Placement2D, error) {
	if ref.IsNull() {
		return Placement2D{Identity: true}, nil
	}
	e, err := dec.ResolveRef(ref)
	if err != nil {
		return Placement2D{}, err
	}
	if e == nil {
		return Placement2D{Identity: true}, nil
	}
	loc, hasLoc, err := ResolvePoint2(dec, e.Attr(0))
	if err != nil {
		return Placement2D{}, err
	}
	refDir, err := ResolveDirection2(dec, e.Attr(1), linear.V2{1, 0})
	if err != nil {
		return Placement2D{}, err
	}
	identity := (!hasLoc || loc == linear.V2{}) && refDir == (linear.V2{1, 0})
	return Placement2D{Translate: loc, Cos: refDir[0], Sin: refDir[1], Identity: identity}, nil
}

// ResolveAxis2Placement3D resolves ref (an IfcAxis2Placement3D
// reference) to a 4x4 transform: Location (attribute 0) provides
// translation, Axis (attribute 1, default +Z) and RefDirection
// (attribute 2, default +X) form the local Z and X basis vectors,
// Gram-Schmidt corrects X to be orthogonal to Z, and Y = Z x X.
func ResolveAxis2Placement3D(dec *step.Decoder, ref step.AttributeValue) (*linear.M4, error) {
	m := &linear.M4{}
	m.I()
	if ref.IsNull() {
		return m, nil
	}
	e, err := dec.ResolveRef(ref)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return m, nil
	}
	loc, _, err := ResolvePoint3(dec, e.Attr(0))
	if err != nil {
		return nil, err
	}
	z, err := ResolveDirection3(dec, e.Attr(1), linear.V3{0, 0, 1})
	if err != nil {
		return nil, err
	}
	x, err := ResolveDirection3(dec, e.Attr(2), linear.V3{1, 0, 0})
	if err != nil {
		return nil, err
	}

	// Gram-Schmidt: remove the z component from x, renormalize.
	d := z.Dot(&x)
	var proj, xOrtho linear.V3
	proj.Scale(d, &z)
	xOrtho.Sub(&x, &proj)
	if xOrtho.Len() < 1e-9 {
		xOrtho = arbitraryPerp(z)
	}
	var xn linear.V3
	xn.Norm(&xOrtho)

	var y linear.V3
	y.Cross(&z, &xn)

	*m = linear.M4{
		{xn[0], xn[1], xn[2], 0},
		{y[0], y[1], y[2], 0},
		{z[0], z[1], z[2], 0},
		{loc[0], loc[1], loc[2], 1},
	}
	return m, nil
}

func arbitraryPerp(v linear.V3) linear.V3 {
	ref := linear.V3{1, 0, 0}
	if absf(v[0]) > 0.9 {
		ref = linear.V3{0, 1, 0}
	}
	var out linear.V3
	out.Cross(&v, &ref)
	return out
}

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// ProfilePositionAttr is the attribute index of a parametric profile's
// 2D placement, constant across all parametric shapes.
const ProfilePositionAttr = 2
