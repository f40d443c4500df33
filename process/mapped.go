// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package process

import (
	"github.com/archex/ifcgeom/config"
	"github.com/archex/ifcgeom/internal/geomattr"
	"github.com/archex/ifcgeom/linear"
	"github.com/archex/ifcgeom/mesh"
	"github.com/archex/ifcgeom/step"
)

// processMappedItem implements MappedItem: attributes
// (MappingSource, MappingTarget). MappingSource resolves to a
// representation map whose MappedRepresentation items are processed
// and merged; the MappingTarget transform is then applied to the
// result.
func processMappedItem(e step.DecodedEntity, dec *step.Decoder, cfg config.Config) (*mesh.Mesh, error) {
	repMap, err := dec.ResolveRef(e.Attr(0))
	if err != nil {
		return nil, err
	}
	if repMap == nil {
		return nil, &InvalidGeometryError{Reason: "mapped item missing mapping source"}
	}
	shapeRep, err := dec.ResolveRef(repMap.Attr(1))
	if err != nil {
		return nil, err
	}
	if shapeRep == nil {
		return &mesh.Mesh{}, nil
	}
	items, err := dec.ResolveRefList(shapeRep.Attr(3))
	if err != nil {
		return nil, err
	}

	m := &mesh.Mesh{}
	for _, item := range items {
		im, err := Process(item, dec, cfg)
		if err != nil {
			if isUnsupported(err) {
				continue
			}
			return nil, err
		}
		m.Merge(im)
	}

	mat, err := resolveCartesianTransformOp3D(dec, e.Attr(1))
	if err != nil {
		return nil, err
	}
	transformMeshInPlace(m, mat)
	return m, nil
}

func isUnsupported(err error) bool {
	_, ok := err.(*UnsupportedError)
	return ok
}

// resolveCartesianTransformOp3D resolves an IfcCartesianTransformationOperator3D
// reference (attributes Axis1?, Axis2?, LocalOrigin, Scale?, Axis3?)
// into a 4x4 transform: Axis1/Axis2/Axis3 give the local X/Y/Z basis
// (defaulting to the world axes), uniformly scaled by Scale (default
// 1), with LocalOrigin as translation.
func resolveCartesianTransformOp3D(dec *step.Decoder, ref step.AttributeValue) (*linear.M4, error) {
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
	x, err := geomattr.ResolveDirection3(dec, e.Attr(0), linear.V3{1, 0, 0})
	if err != nil {
		return nil, err
	}
	y, err := geomattr.ResolveDirection3(dec, e.Attr(1), linear.V3{0, 1, 0})
	if err != nil {
		return nil, err
	}
	loc, _, err := geomattr.ResolvePoint3(dec, e.Attr(2))
	if err != nil {
		return nil, err
	}
	scale := float32(1)
	if s, ok := geomattr.Float(e.Attr(3)); ok && s != 0 {
		scale = float32(s)
	}
	z, err := geomattr.ResolveDirection3(dec, e.Attr(4), linear.V3{0, 0, 1})
	if err != nil {
		return nil, err
	}

	*m = linear.M4{
		{x[0] * scale, x[1] * scale, x[2] * scale, 0},
		{y[0] * scale, y[1] * scale, y[2] * scale, 0},
		{z[0] * scale, z[1] * scale, z[2] * scale, 0},
		{loc[0], loc[1], loc[2], 1},
	}
	return m, nil
}
