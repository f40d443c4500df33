// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package profile

import (
	"math"

	"github.com/archex/ifcgeom/internal/geomattr"
	"github.com/archex/ifcgeom/linear"
	"github.com/archex/ifcgeom/step"
)

func f32attr(e step.DecodedEntity, i int) (float32, error) {
	f, ok := geomattr.Float(e.Attr(i))
	if !ok {
		return 0, errShort("missing numeric attribute")
	}
	return float32(f), nil
}

// rectangle builds a 4-vertex centered box from (XDim, YDim) at
// attributes 3 and 4.
func rectangle(e step.DecodedEntity) ([]linear.V2, error) {
	x, err := f32attr(e, 3)
	if err != nil {
		return nil, err
	}
	y, err := f32attr(e, 4)
	if err != nil {
		return nil, err
	}
	hx, hy := x/2, y/2
	return []linear.V2{{-hx, -hy}, {hx, -hy}, {hx, hy}, {-hx, hy}}, nil
}

const circleSegments = 64

func circlePoints(r float32, reverse bool) []linear.V2 {
	out := make([]linear.V2, circleSegments)
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / float64(circleSegments)
		if reverse {
			a = -a
		}
		out[i] = linear.V2{r * float32(math.Cos(a)), r * float32(math.Sin(a))}
	}
	return out
}

// circle builds a 64-segment polygon approximating a circle of
// radius Radius (attribute 3).
func circle(e step.DecodedEntity) ([]linear.V2, error) {
	r, err := f32attr(e, 3)
	if err != nil {
		return nil, err
	}
	return circlePoints(r, false), nil
}

// circleHollow builds a 64-segment outer circle plus a reversed
// 64-segment inner hole at Radius-WallThickness (attributes 3, 4).
func circleHollow(e step.DecodedEntity) ([]linear.V2, [][]linear.V2, error) {
	r, err := f32attr(e, 3)
	if err != nil {
		return nil, nil, err
	}
	t, err := f32attr(e, 4)
	if err != nil {
		return nil, nil, err
	}
	outer := circlePoints(r, false)
	inner := circlePoints(r-t, true)
	return outer, [][]linear.V2{inner}, nil
}

// iShape builds the standard 12-vertex I-beam contour from
// (OverallWidth, OverallDepth, WebThickness, FlangeThickness) at
// attributes 3..6.
func iShape(e step.DecodedEntity) ([]linear.V2, error) {
	b, err := f32attr(e, 3)
	if err != nil {
		return nil, err
	}
	d, err := f32attr(e, 4)
	if err != nil {
		return nil, err
	}
	tw, err := f32attr(e, 5)
	if err != nil {
		return nil, err
	}
	tf, err := f32attr(e, 6)
	if err != nil {
		return nil, err
	}
	bw, hh, tw2 := b/2, d/2, tw/2
	return []linear.V2{
		{bw, -hh}, {bw, -hh + tf}, {tw2, -hh + tf}, {tw2, hh - tf},
		{bw, hh - tf}, {bw, hh}, {-bw, hh}, {-bw, hh - tf},
		{-tw2, hh - tf}, {-tw2, -hh + tf}, {-bw, -hh + tf}, {-bw, -hh},
	}, nil
}

// lShape builds the standard 6-vertex angle contour from (Depth,
// Width, Thickness) at attributes 3..5.
func lShape(e step.DecodedEntity) ([]linear.V2, error) {
	d, err := f32attr(e, 3)
	if err != nil {
		return nil, err
	}
	w, err := f32attr(e, 4)
	if err != nil {
		return nil, err
	}
	t, err := f32attr(e, 5)
	if err != nil {
		return nil, err
	}
	hd, hw := d/2, w/2
	return []linear.V2{
		{-hw, -hd}, {hw, -hd}, {hw, -hd + t},
		{-hw + t, -hd + t}, {-hw + t, hd}, {-hw, hd},
	}, nil
}

// uShape builds the standard 8-vertex channel contour from (Depth,
// FlangeWidth, WebThickness, FlangeThickness) at attributes 3..6: a
// full-depth vertical web on the -X side with both flanges projecting
// toward +X, open to the right.
func uShape(e step.DecodedEntity) ([]linear.V2, error) {
	d, err := f32attr(e, 3)
	if err != nil {
		return nil, err
	}
	b, err := f32attr(e, 4)
	if err != nil {
		return nil, err
	}
	tw, err := f32attr(e, 5)
	if err != nil {
		return nil, err
	}
	tf, err := f32attr(e, 6)
	if err != nil {
		return nil, err
	}
	hd, hw := d/2, b/2
	return []linear.V2{
		{-hw, -hd}, {hw, -hd}, {hw, -hd + tf}, {-hw + tw, -hd + tf},
		{-hw + tw, hd - tf}, {hw, hd - tf}, {hw, hd}, {-hw, hd},
	}, nil
}

// tShape builds the standard 8-vertex T contour, flange on top, web
// hanging down, from (Depth, FlangeWidth, WebThickness,
// FlangeThickness) at attributes 3..6.
func tShape(e step.DecodedEntity) ([]linear.V2, error) {
	d, err := f32attr(e, 3)
	if err != nil {
		return nil, err
	}
	b, err := f32attr(e, 4)
	if err != nil {
		return nil, err
	}
	tw, err := f32attr(e, 5)
	if err != nil {
		return nil, err
	}
	tf, err := f32attr(e, 6)
	if err != nil {
		return nil, err
	}
	hd, hw, tw2 := d/2, b/2, tw/2
	return []linear.V2{
		{-tw2, -hd}, {tw2, -hd}, {tw2, hd - tf}, {hw, hd - tf},
		{hw, hd}, {-hw, hd}, {-hw, hd - tf}, {-tw2, hd - tf},
	}, nil
}

// cShape builds the standard 8-vertex lipped channel contour from
// (Depth, Width, WallThickness, Girth) at attributes 3..6. Girth
// defaults to twice the wall thickness when absent; Width is read for
// validation but the lip cross-section is set by Girth alone.
func cShape(e step.DecodedEntity) ([]linear.V2, error) {
	d, err := f32attr(e, 3)
	if err != nil {
		return nil, err
	}
	if _, err := f32attr(e, 4); err != nil {
		return nil, err
	}
	t, err := f32attr(e, 5)
	if err != nil {
		return nil, err
	}
	g := 2 * t
	if v, ok := geomattr.Float(e.Attr(6)); ok {
		g = float32(v)
	}
	hd, hg := d/2, g/2
	return []linear.V2{
		{hg, -hd}, {hg, -hd + t}, {-hg + t, -hd + t}, {-hg + t, hd - t},
		{hg, hd - t}, {hg, hd}, {-hg, hd}, {-hg, -hd},
	}, nil
}

// zShape builds the standard 12-vertex Z contour from (Depth,
// FlangeWidth, WebThickness, FlangeThickness) at attributes 3..6.
func zShape(e step.DecodedEntity) ([]linear.V2, error) {
	d, err := f32attr(e, 3)
	if err != nil {
		return nil, err
	}
	b, err := f32attr(e, 4)
	if err != nil {
		return nil, err
	}
	tw, err := f32attr(e, 5)
	if err != nil {
		return nil, err
	}
	tf, err := f32attr(e, 6)
	if err != nil {
		return nil, err
	}
	hd, hw, tw2 := d/2, b/2, tw/2
	return []linear.V2{
		{-hw, -hd}, {tw2, -hd}, {tw2, -hd + tf}, {tw2, 0},
		{tw2, hd - tf}, {hw, hd - tf}, {hw, hd}, {-tw2, hd},
		{-tw2, hd - tf}, {-tw2, 0}, {-tw2, -hd + tf}, {-hw, -hd + tf},
	}, nil
}
