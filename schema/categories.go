// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package schema

// GeometryCategory classifies a geometry-item type for the router's
// processor dispatch.
type GeometryCategory uint8

const (
	GeomOther GeometryCategory = iota
	GeomSweptSolid
	GeomBoolean
	GeomExplicitMesh
	GeomMappedItem
)

var geometryCategories = map[KnownType]GeometryCategory{
	IfcExtrudedAreaSolid:     GeomSweptSolid,
	IfcRevolvedAreaSolid:     GeomSweptSolid,
	IfcSweptDiskSolid:        GeomSweptSolid,
	IfcBooleanResult:         GeomBoolean,
	IfcBooleanClippingResult: GeomBoolean,
	IfcFacetedBrep:           GeomExplicitMesh,
	IfcTriangulatedFaceSet:   GeomExplicitMesh,
	IfcPolygonalFaceSet:      GeomExplicitMesh,
	IfcMappedItem:            GeomMappedItem,
}

func (c GeometryCategory) String() string {
	switch c {
	case GeomSweptSolid:
		return "swept_solid"
	case GeomBoolean:
		return "boolean"
	case GeomExplicitMesh:
		return "explicit_mesh"
	case GeomMappedItem:
		return "mapped_item"
	default:
		return "other"
	}
}

// GeometryCategoryOf returns the geometry category for t, or
// GeomOther if t is not a recognized geometry-item type.
func GeometryCategoryOf(t IfcType) GeometryCategory {
	if c, ok := geometryCategories[t.Code]; ok {
		return c
	}
	return GeomOther
}

// ProfileCategory classifies a profile-definition type for the
// profile interpreter's dispatch.
type ProfileCategory uint8

const (
	ProfileOther ProfileCategory = iota
	ProfileParametric
	ProfileArbitrary
	ProfileComposite
)

var profileCategories = map[KnownType]ProfileCategory{
	IfcRectangleProfileDef:          ProfileParametric,
	IfcCircleProfileDef:             ProfileParametric,
	IfcCircleHollowProfileDef:       ProfileParametric,
	IfcIShapeProfileDef:             ProfileParametric,
	IfcLShapeProfileDef:             ProfileParametric,
	IfcUShapeProfileDef:             ProfileParametric,
	IfcTShapeProfileDef:             ProfileParametric,
	IfcCShapeProfileDef:             ProfileParametric,
	IfcZShapeProfileDef:             ProfileParametric,
	IfcArbitraryClosedProfileDef:    ProfileArbitrary,
	IfcArbitraryProfileDefWithVoids: ProfileArbitrary,
	IfcCompositeProfileDef:          ProfileComposite,
}

// ProfileCategoryOf returns the profile category for t, or
// ProfileOther if t is not a recognized profile-definition type.
func ProfileCategoryOf(t IfcType) ProfileCategory {
	if c, ok := profileCategories[t.Code]; ok {
		return c
	}
	return ProfileOther
}
