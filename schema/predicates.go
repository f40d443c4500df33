// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package schema

import "strings"

var spatialTypes = map[KnownType]bool{
	IfcProject:        true,
	IfcSite:           true,
	IfcBuilding:       true,
	IfcBuildingStorey: true,
	IfcSpace:          true,
}

var buildingElementTypes = map[KnownType]bool{
	IfcWall:                 true,
	IfcWallStandardCase:     true,
	IfcSlab:                 true,
	IfcSlabStandardCase:     true,
	IfcBeam:                 true,
	IfcBeamStandardCase:     true,
	IfcColumn:               true,
	IfcColumnStandardCase:   true,
	IfcRoof:                 true,
	IfcStair:                true,
	IfcStairFlight:          true,
	IfcRailing:              true,
	IfcCurtainWall:          true,
	IfcPlate:                true,
	IfcPlateStandardCase:    true,
	IfcMember:               true,
	IfcFooting:              true,
	IfcPile:                 true,
	IfcCovering:             true,
	IfcBuildingElementProxy: true,
	IfcBuildingElementPart:  true,
	IfcElementAssembly:      true,
	IfcOpeningElement:       true,
	IfcReinforcingBar:       true,
	IfcReinforcingMesh:      true,
	IfcTendon:               true,
	IfcFurnishingElement:    true,
	IfcFlowSegment:          true,
	IfcFlowFitting:          true,
	IfcFlowTerminal:         true,
	IfcDoor:                 true,
	IfcWindow:               true,
}

var relationshipTypes = map[KnownType]bool{
	IfcRelAggregates:                  true,
	IfcRelContainedInSpatialStructure: true,
	IfcRelDefinesByProperties:         true,
	IfcRelAssociatesMaterial:          true,
	IfcRelVoidsElement:                true,
	IfcRelFillsElement:                true,
}

// IsSpatial reports whether t is a spatial-structure type (project,
// site, building, storey, space).
func IsSpatial(t IfcType) bool { return spatialTypes[t.Code] }

// IsBuildingElement reports whether t is a building-element type
// (walls, slabs, beams, columns, roofs, stairs, railings,
// curtain-walls, plates, members, footings, piles, coverings, generic
// proxies/parts/assemblies, openings, reinforcing elements, MEP
// elements, furnishings, doors and windows).
func IsBuildingElement(t IfcType) bool { return buildingElementTypes[t.Code] }

// IsRelationship reports whether t is a relationship type
// (aggregates, contained-in-spatial-structure, defines-by-properties,
// associates-material, voids-element, fills-element).
func IsRelationship(t IfcType) bool { return relationshipTypes[t.Code] }

// standardCaseSuffix and the template suffix used by HasGeometry.
const (
	standardCaseSuffix = "STANDARDCASE"
	typeSuffix         = "TYPE"
)

// extraGeometryNames lists element subtype names the closed enum does
// not carry but that still have a Representation worth routing: MEP
// distribution elements, furnishing details, civil/infrastructure
// elements and a few commonly seen specializations.
var extraGeometryNames = map[string]bool{
	"IFCDISTRIBUTIONELEMENT":        true,
	"IFCDISTRIBUTIONFLOWELEMENT":    true,
	"IFCDISTRIBUTIONCONTROLELEMENT": true,
	"IFCFLOWCONTROLLER":             true,
	"IFCFLOWMOVINGDEVICE":           true,
	"IFCFLOWSTORAGEDEVICE":          true,
	"IFCFLOWTREATMENTDEVICE":        true,
	"IFCENERGYCONVERSIONDEVICE":     true,
	"IFCPIPESEGMENT":                true,
	"IFCPIPEFITTING":                true,
	"IFCDUCTSEGMENT":                true,
	"IFCDUCTFITTING":                true,
	"IFCCABLECARRIERSEGMENT":        true,
	"IFCCABLESEGMENT":               true,
	"IFCLIGHTFIXTURE":               true,
	"IFCSANITARYTERMINAL":           true,
	"IFCFURNITURE":                  true,
	"IFCSYSTEMFURNITUREELEMENT":     true,
	"IFCTRANSPORTELEMENT":           true,
	"IFCGEOGRAPHICELEMENT":          true,
	"IFCCIVILELEMENT":               true,
	"IFCBEARING":                    true,
	"IFCDEEPFOUNDATION":             true,
	"IFCCAISSONFOUNDATION":          true,
	"IFCKERB":                       true,
	"IFCPAVEMENT":                   true,
	"IFCRAIL":                       true,
	"IFCRAMP":                       true,
	"IFCRAMPFLIGHT":                 true,
	"IFCCHIMNEY":                    true,
	"IFCSHADINGDEVICE":              true,
}

// HasGeometry is the over-broad "has geometry by type name" predicate
// used as the fast filter during scanning. It accepts every
// recognized building-element subtype name (including *STANDARDCASE
// variants), the MEP/furnishing/civil element names above, and
// rejects any name ending in TYPE (those are templates, not
// instances).
func HasGeometry(name string) bool {
	if strings.HasSuffix(name, typeSuffix) {
		return false
	}
	if strings.HasSuffix(name, standardCaseSuffix) {
		return true
	}
	if extraGeometryNames[name] {
		return true
	}
	return IsBuildingElement(Default().LookupString(name))
}
