// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package profile implements the 2D profile interpreter: parametric
// shapes, arbitrary-curve profiles and composite profiles, dispatched
// by schema.ProfileCategoryOf.
package profile

import (
	"errors"

	"github.com/archex/ifcgeom/config"
	"github.com/archex/ifcgeom/internal/geomattr"
	"github.com/archex/ifcgeom/linear"
	"github.com/archex/ifcgeom/schema"
	"github.com/archex/ifcgeom/step"
)

const prefix = "profile: "

// Profile2D is the interpreter's output: an outer polyline (not
// implicitly closed) wound counter-clockwise, plus zero or more hole
// polylines wound clockwise.
type Profile2D struct {
	Outer []linear.V2
	Holes [][]linear.V2
}

// IsEmpty reports whether the profile has no outer boundary.
func (p Profile2D) IsEmpty() bool { return len(p.Outer) == 0 }

// Process interprets a profile-definition entity into a Profile2D,
// dispatching on its schema.ProfileCategory.
func Process(e step.DecodedEntity, dec *step.Decoder, cfg config.Config) (Profile2D, error) {
	switch schema.ProfileCategoryOf(e.Type) {
	case schema.ProfileParametric:
		return processParametric(e, dec)
	case schema.ProfileArbitrary:
		return processArbitrary(e, dec, cfg)
	case schema.ProfileComposite:
		return processComposite(e, dec, cfg)
	default:
		return Profile2D{}, &UnsupportedError{TypeName: e.Type.String()}
	}
}

// UnsupportedError reports a profile-definition type the interpreter
// does not implement.
type UnsupportedError struct{ TypeName string }

func (err *UnsupportedError) Error() string {
	return prefix + "unsupported profile type " + err.TypeName
}

func processParametric(e step.DecodedEntity, dec *step.Decoder) (Profile2D, error) {
	var outer []linear.V2
	var holes [][]linear.V2
	var err error

	switch e.Type.Code {
	case schema.IfcRectangleProfileDef:
		outer, err = rectangle(e)
	case schema.IfcCircleProfileDef:
		outer, err = circle(e)
	case schema.IfcCircleHollowProfileDef:
		outer, holes, err = circleHollow(e)
	case schema.IfcIShapeProfileDef:
		outer, err = iShape(e)
	case schema.IfcLShapeProfileDef:
		outer, err = lShape(e)
	case schema.IfcUShapeProfileDef:
		outer, err = uShape(e)
	case schema.IfcTShapeProfileDef:
		outer, err = tShape(e)
	case schema.IfcCShapeProfileDef:
		outer, err = cShape(e)
	case schema.IfcZShapeProfileDef:
		outer, err = zShape(e)
	default:
		return Profile2D{}, &UnsupportedError{TypeName: e.Type.String()}
	}
	if err != nil {
		return Profile2D{}, err
	}

	pl, err := geomattr.ResolveAxis2Placement2D(dec, e.Attr(geomattr.ProfilePositionAttr))
	if err != nil {
		return Profile2D{}, err
	}
	outer, holes = pl.ApplyAll(outer, holes)
	return Profile2D{Outer: outer, Holes: holes}, nil
}

func processComposite(e step.DecodedEntity, dec *step.Decoder, cfg config.Config) (Profile2D, error) {
	subs, err := dec.ResolveRefList(e.Attr(2))
	if err != nil {
		return Profile2D{}, err
	}
	if len(subs) == 0 {
		return Profile2D{}, nil
	}
	base, err := Process(subs[0], dec, cfg)
	if err != nil {
		return Profile2D{}, err
	}
	for _, sub := range subs[1:] {
		p, err := Process(sub, dec, cfg)
		if err != nil {
			return Profile2D{}, err
		}
		if !p.IsEmpty() {
			// p.Outer is CCW; a reversed copy joins the base as a CW hole.
			hole := append([]linear.V2(nil), p.Outer...)
			reverse2D(hole)
			base.Holes = append(base.Holes, hole)
		}
	}
	return base, nil
}

func errShort(reason string) error { return errors.New(prefix + reason) }
