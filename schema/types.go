// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package schema implements the IFC schema catalog: the closed type
// enum, the spatial/element/relationship predicates, and the
// geometry/profile category tables the router and profile
// interpreter dispatch on.
package schema

import "github.com/cespare/xxhash/v2"

// KnownType is the closed enum of IFC type names this core recognizes
// by name. Unknown is the catch-all for every other type name; its
// identity is preserved by IfcType.Hash rather than by this enum.
type KnownType uint16

const (
	Unknown KnownType = iota

	// Spatial structure.
	IfcProject
	IfcSite
	IfcBuilding
	IfcBuildingStorey
	IfcSpace

	// Building elements.
	IfcWall
	IfcWallStandardCase
	IfcSlab
	IfcSlabStandardCase
	IfcBeam
	IfcBeamStandardCase
	IfcColumn
	IfcColumnStandardCase
	IfcRoof
	IfcStair
	IfcStairFlight
	IfcRailing
	IfcCurtainWall
	IfcPlate
	IfcPlateStandardCase
	IfcMember
	IfcFooting
	IfcPile
	IfcCovering
	IfcBuildingElementProxy
	IfcBuildingElementPart
	IfcElementAssembly
	IfcOpeningElement
	IfcReinforcingBar
	IfcReinforcingMesh
	IfcTendon
	IfcFurnishingElement
	IfcFlowSegment
	IfcFlowFitting
	IfcFlowTerminal
	IfcDoor
	IfcWindow

	// Relationships.
	IfcRelAggregates
	IfcRelContainedInSpatialStructure
	IfcRelDefinesByProperties
	IfcRelAssociatesMaterial
	IfcRelVoidsElement
	IfcRelFillsElement

	// Product/representation graph.
	IfcProductDefinitionShape
	IfcShapeRepresentation
	IfcLocalPlacement
	IfcAxis2Placement2D
	IfcAxis2Placement3D
	IfcCartesianPoint
	IfcCartesianPointList3D
	IfcDirection
	IfcRepresentationMap
	IfcCartesianTransformationOperator3D

	// Geometry items.
	IfcExtrudedAreaSolid
	IfcRevolvedAreaSolid
	IfcBooleanResult
	IfcBooleanClippingResult
	IfcFacetedBrep
	IfcTriangulatedFaceSet
	IfcPolygonalFaceSet
	IfcMappedItem
	IfcSweptDiskSolid
	IfcClosedShell
	IfcFace
	IfcFaceOuterBound
	IfcFaceBound
	IfcPolyLoop

	// Profiles.
	IfcRectangleProfileDef
	IfcCircleProfileDef
	IfcCircleHollowProfileDef
	IfcIShapeProfileDef
	IfcLShapeProfileDef
	IfcUShapeProfileDef
	IfcTShapeProfileDef
	IfcCShapeProfileDef
	IfcZShapeProfileDef
	IfcArbitraryClosedProfileDef
	IfcArbitraryProfileDefWithVoids
	IfcCompositeProfileDef

	// Curves.
	IfcPolyline
	IfcIndexedPolyCurve
	IfcCompositeCurve
	IfcCompositeCurveSegment
	IfcTrimmedCurve
	IfcCircle
	IfcEllipse

	// Styling.
	IfcStyledItem
	IfcPresentationStyleAssignment
	IfcSurfaceStyle
	IfcSurfaceStyleRendering
	IfcSurfaceStyleShading
	IfcColourRgb

	numKnownTypes
)

var knownNames = map[KnownType]string{
	IfcProject:                            "IFCPROJECT",
	IfcSite:                               "IFCSITE",
	IfcBuilding:                           "IFCBUILDING",
	IfcBuildingStorey:                     "IFCBUILDINGSTOREY",
	IfcSpace:                              "IFCSPACE",
	IfcWall:                               "IFCWALL",
	IfcWallStandardCase:                   "IFCWALLSTANDARDCASE",
	IfcSlab:                               "IFCSLAB",
	IfcSlabStandardCase:                   "IFCSLABSTANDARDCASE",
	IfcBeam:                               "IFCBEAM",
	IfcBeamStandardCase:                   "IFCBEAMSTANDARDCASE",
	IfcColumn:                             "IFCCOLUMN",
	IfcColumnStandardCase:                 "IFCCOLUMNSTANDARDCASE",
	IfcRoof:                               "IFCROOF",
	IfcStair:                              "IFCSTAIR",
	IfcStairFlight:                        "IFCSTAIRFLIGHT",
	IfcRailing:                            "IFCRAILING",
	IfcCurtainWall:                        "IFCCURTAINWALL",
	IfcPlate:                              "IFCPLATE",
	IfcPlateStandardCase:                  "IFCPLATESTANDARDCASE",
	IfcMember:                             "IFCMEMBER",
	IfcFooting:                            "IFCFOOTING",
	IfcPile:                               "IFCPILE",
	IfcCovering:                           "IFCCOVERING",
	IfcBuildingElementProxy:               "IFCBUILDINGELEMENTPROXY",
	IfcBuildingElementPart:                "IFCBUILDINGELEMENTPART",
	IfcElementAssembly:                    "IFCELEMENTASSEMBLY",
	IfcOpeningElement:                     "IFCOPENINGELEMENT",
	IfcReinforcingBar:                     "IFCREINFORCINGBAR",
	IfcReinforcingMesh:                    "IFCREINFORCINGMESH",
	IfcTendon:                             "IFCTENDON",
	IfcFurnishingElement:                  "IFCFURNISHINGELEMENT",
	IfcFlowSegment:                        "IFCFLOWSEGMENT",
	IfcFlowFitting:                        "IFCFLOWFITTING",
	IfcFlowTerminal:                       "IFCFLOWTERMINAL",
	IfcDoor:                               "IFCDOOR",
	IfcWindow:                             "IFCWINDOW",
	IfcRelAggregates:                      "IFCRELAGGREGATES",
	IfcRelContainedInSpatialStructure:     "IFCRELCONTAINEDINSPATIALSTRUCTURE",
	IfcRelDefinesByProperties:             "IFCRELDEFINESBYPROPERTIES",
	IfcRelAssociatesMaterial:              "IFCRELASSOCIATESMATERIAL",
	IfcRelVoidsElement:                    "IFCRELVOIDSELEMENT",
	IfcRelFillsElement:                    "IFCRELFILLSELEMENT",
	IfcProductDefinitionShape:             "IFCPRODUCTDEFINITIONSHAPE",
	IfcShapeRepresentation:                "IFCSHAPEREPRESENTATION",
	IfcLocalPlacement:                     "IFCLOCALPLACEMENT",
	IfcAxis2Placement2D:                   "IFCAXIS2PLACEMENT2D",
	IfcAxis2Placement3D:                   "IFCAXIS2PLACEMENT3D",
	IfcCartesianPoint:                     "IFCCARTESIANPOINT",
	IfcCartesianPointList3D:               "IFCCARTESIANPOINTLIST3D",
	IfcDirection:                          "IFCDIRECTION",
	IfcRepresentationMap:                  "IFCREPRESENTATIONMAP",
	IfcCartesianTransformationOperator3D:  "IFCCARTESIANTRANSFORMATIONOPERATOR3D",
	IfcExtrudedAreaSolid:                  "IFCEXTRUDEDAREASOLID",
	IfcRevolvedAreaSolid:                  "IFCREVOLVEDAREASOLID",
	IfcBooleanResult:                      "IFCBOOLEANRESULT",
	IfcBooleanClippingResult:              "IFCBOOLEANCLIPPINGRESULT",
	IfcFacetedBrep:                        "IFCFACETEDBREP",
	IfcTriangulatedFaceSet:                "IFCTRIANGULATEDFACESET",
	IfcPolygonalFaceSet:                   "IFCPOLYGONALFACESET",
	IfcMappedItem:                         "IFCMAPPEDITEM",
	IfcSweptDiskSolid:                     "IFCSWEPTDISKSOLID",
	IfcClosedShell:                        "IFCCLOSEDSHELL",
	IfcFace:                               "IFCFACE",
	IfcFaceOuterBound:                     "IFCFACEOUTERBOUND",
	IfcFaceBound:                          "IFCFACEBOUND",
	IfcPolyLoop:                           "IFCPOLYLOOP",
	IfcRectangleProfileDef:                "IFCRECTANGLEPROFILEDEF",
	IfcCircleProfileDef:                   "IFCCIRCLEPROFILEDEF",
	IfcCircleHollowProfileDef:             "IFCCIRCLEHOLLOWPROFILEDEF",
	IfcIShapeProfileDef:                   "IFCISHAPEPROFILEDEF",
	IfcLShapeProfileDef:                   "IFCLSHAPEPROFILEDEF",
	IfcUShapeProfileDef:                   "IFCUSHAPEPROFILEDEF",
	IfcTShapeProfileDef:                   "IFCTSHAPEPROFILEDEF",
	IfcCShapeProfileDef:                   "IFCCSHAPEPROFILEDEF",
	IfcZShapeProfileDef:                   "IFCZSHAPEPROFILEDEF",
	IfcArbitraryClosedProfileDef:          "IFCARBITRARYCLOSEDPROFILEDEF",
	IfcArbitraryProfileDefWithVoids:       "IFCARBITRARYPROFILEDEFWITHVOIDS",
	IfcCompositeProfileDef:                "IFCCOMPOSITEPROFILEDEF",
	IfcPolyline:                           "IFCPOLYLINE",
	IfcIndexedPolyCurve:                   "IFCINDEXEDPOLYCURVE",
	IfcCompositeCurve:                     "IFCCOMPOSITECURVE",
	IfcCompositeCurveSegment:              "IFCCOMPOSITECURVESEGMENT",
	IfcTrimmedCurve:                       "IFCTRIMMEDCURVE",
	IfcCircle:                             "IFCCIRCLE",
	IfcEllipse:                            "IFCELLIPSE",
	IfcStyledItem:                         "IFCSTYLEDITEM",
	IfcPresentationStyleAssignment:        "IFCPRESENTATIONSTYLEASSIGNMENT",
	IfcSurfaceStyle:                       "IFCSURFACESTYLE",
	IfcSurfaceStyleRendering:              "IFCSURFACESTYLERENDERING",
	IfcSurfaceStyleShading:                "IFCSURFACESTYLESHADING",
	IfcColourRgb:                          "IFCCOLOURRGB",
}

func (k KnownType) String() string {
	if s, ok := knownNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// IfcType identifies the type of a decoded entity. Known names
// dispatch on Code; names the catalog does not enumerate carry
// Code == Unknown and a stable 16-bit hash of the original name in
// Hash, so that two entities sharing an unrecognized type name can
// still be compared for identity.
type IfcType struct {
	Code KnownType
	Hash uint16
	name string // owned copy, only set for Unknown types
}

// String returns the canonical upper-case type name.
func (t IfcType) String() string {
	if t.Code != Unknown {
		return t.Code.String()
	}
	return t.name
}

// IsUnknown reports whether t falls outside the closed enum.
func (t IfcType) IsUnknown() bool { return t.Code == Unknown }

// Catalog is the immutable schema catalog: the name→KnownType table
// plus the category maps used by the router and profile interpreter.
// The zero value is not usable; build one with NewCatalog (or use
// Default, which is constructed once at package init and is safe to
// share read-only across goroutines).
type Catalog struct {
	byName map[string]KnownType
}

// NewCatalog builds a Catalog from the closed enum above. Building it
// is a pure, allocation-only operation: there is no global mutable
// state.
func NewCatalog() *Catalog {
	c := &Catalog{byName: make(map[string]KnownType, len(knownNames))}
	for k, v := range knownNames {
		c.byName[v] = k
	}
	return c
}

var defaultCatalog = NewCatalog()

// Default returns the package's shared Catalog instance.
func Default() *Catalog { return defaultCatalog }

// Lookup resolves a raw, upper-case type-name byte slice (as produced
// by the scanner) to an IfcType. Unknown names get a stable 16-bit
// hash computed with xxhash, which is fast and well distributed for
// short ASCII identifiers.
func (c *Catalog) Lookup(name []byte) IfcType {
	if k, ok := c.byName[string(name)]; ok {
		return IfcType{Code: k}
	}
	h := xxhash.Sum64(name)
	return IfcType{Code: Unknown, Hash: uint16(h), name: string(name)}
}

// LookupString is Lookup for callers that already have a string.
func (c *Catalog) LookupString(name string) IfcType {
	if k, ok := c.byName[name]; ok {
		return IfcType{Code: k}
	}
	h := xxhash.Sum64String(name)
	return IfcType{Code: Unknown, Hash: uint16(h), name: name}
}
