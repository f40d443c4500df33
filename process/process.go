// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package process implements the geometry-item processors the router
// dispatches to: extruded-area-solid, triangulated-face-set,
// faceted-brep, swept-disk-solid, mapped-item and boolean-clipping
// (first-operand passthrough).
package process

import (
	"github.com/archex/ifcgeom/config"
	"github.com/archex/ifcgeom/mesh"
	"github.com/archex/ifcgeom/schema"
	"github.com/archex/ifcgeom/step"
)

const prefix = "process: "

// UnsupportedError reports a geometry-item type the pipeline does not
// implement a processor for. The router downgrades
// this to an empty mesh for the offending item.
type UnsupportedError struct{ TypeName string }

func (err *UnsupportedError) Error() string {
	return prefix + "unsupported geometry item " + err.TypeName
}

// InvalidGeometryError reports a geometrically malformed item: a
// missing required reference (swept area, outer shell, coordinates,
// directrix, mapping source), a missing or non-positive extrusion
// depth or sweep radius, or a malformed or out-of-range coordinate
// list. An empty profile or a directrix with fewer than two points
// yields an empty mesh, and a failed triangulation falls back to a
// fan; neither returns this error.
type InvalidGeometryError struct{ Reason string }

func (err *InvalidGeometryError) Error() string { return prefix + err.Reason }

// Process dispatches a resolved geometry-item entity to its
// processor, always returning results in the item's own local
// frame. The enclosing element's placement is applied by the router.
func Process(e step.DecodedEntity, dec *step.Decoder, cfg config.Config) (*mesh.Mesh, error) {
	switch e.Type.Code {
	case schema.IfcExtrudedAreaSolid:
		return processExtrudedAreaSolid(e, dec, cfg)
	case schema.IfcTriangulatedFaceSet:
		return processTriangulatedFaceSet(e, dec)
	case schema.IfcFacetedBrep:
		return processFacetedBrep(e, dec)
	case schema.IfcSweptDiskSolid:
		return processSweptDiskSolid(e, dec, cfg)
	case schema.IfcMappedItem:
		return processMappedItem(e, dec, cfg)
	case schema.IfcBooleanClippingResult, schema.IfcBooleanResult:
		return processBooleanClippingResult(e, dec, cfg)
	default:
		return nil, &UnsupportedError{TypeName: e.Type.String()}
	}
}
