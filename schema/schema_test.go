// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKnown(t *testing.T) {
	c := Default()
	ty := c.LookupString("IFCWALL")
	require.Equal(t, IfcWall, ty.Code)
	require.False(t, ty.IsUnknown())
	require.Equal(t, "IFCWALL", ty.String())
}

func TestLookupUnknownStable(t *testing.T) {
	c := Default()
	a := c.LookupString("IFCSOMETHINGWEIRD")
	b := c.LookupString("IFCSOMETHINGWEIRD")
	require.True(t, a.IsUnknown())
	require.Equal(t, a.Hash, b.Hash)
}

func TestPredicates(t *testing.T) {
	require.True(t, IsSpatial(Default().LookupString("IFCBUILDING")))
	require.True(t, IsBuildingElement(Default().LookupString("IFCWALL")))
	require.True(t, IsRelationship(Default().LookupString("IFCRELAGGREGATES")))
	require.False(t, IsBuildingElement(Default().LookupString("IFCPROJECT")))
}

func TestHasGeometry(t *testing.T) {
	require.True(t, HasGeometry("IFCWALL"))
	require.True(t, HasGeometry("IFCWALLSTANDARDCASE"))
	require.True(t, HasGeometry("IFCDUCTSEGMENT"))
	require.True(t, HasGeometry("IFCFURNITURE"))
	require.False(t, HasGeometry("IFCWALLTYPE"))
	require.False(t, HasGeometry("IFCDUCTSEGMENTTYPE"))
	require.False(t, HasGeometry("IFCPROJECT"))
}

func TestCategories(t *testing.T) {
	require.Equal(t, GeomSweptSolid, GeometryCategoryOf(Default().LookupString("IFCEXTRUDEDAREASOLID")))
	require.Equal(t, GeomExplicitMesh, GeometryCategoryOf(Default().LookupString("IFCTRIANGULATEDFACESET")))
	require.Equal(t, GeomMappedItem, GeometryCategoryOf(Default().LookupString("IFCMAPPEDITEM")))
	require.Equal(t, ProfileParametric, ProfileCategoryOf(Default().LookupString("IFCRECTANGLEPROFILEDEF")))
	require.Equal(t, ProfileArbitrary, ProfileCategoryOf(Default().LookupString("IFCARBITRARYCLOSEDPROFILEDEF")))
}
