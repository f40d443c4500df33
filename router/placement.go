// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package router

import (
	"github.com/archex/ifcgeom/internal/geomattr"
	"github.com/archex/ifcgeom/linear"
	"github.com/archex/ifcgeom/step"
)

// resolveObjectPlacement resolves ref (an IfcLocalPlacement reference)
// to its composed 4x4 world transform: the parent placement
// (attribute 0) recursively resolved, multiplied on the left of the
// local RelativePlacement (attribute 1, an Axis2Placement3D).
func resolveObjectPlacement(dec *step.Decoder, ref step.AttributeValue) (*linear.M4, error) {
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

	local, err := geomattr.ResolveAxis2Placement3D(dec, e.Attr(1))
	if err != nil {
		return nil, err
	}
	parent, err := resolveObjectPlacement(dec, e.Attr(0))
	if err != nil {
		return nil, err
	}

	out := &linear.M4{}
	out.Mul(parent, local)
	return out, nil
}
