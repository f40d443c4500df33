// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package router

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archex/ifcgeom/config"
	"github.com/archex/ifcgeom/schema"
	"github.com/archex/ifcgeom/step"
)

func newDecoder(t *testing.T, src string) *step.Decoder {
	t.Helper()
	buf := step.NewBuffer([]byte(src))
	ix := step.BuildIndex([]byte(src))
	return step.NewDecoder(buf, ix, schema.Default(), nil)
}

func decodeLast(t *testing.T, d *step.Decoder, id uint32) step.DecodedEntity {
	t.Helper()
	e, err := d.DecodeByID(id)
	require.NoError(t, err)
	return e
}

func TestProcessElementNullRepresentationIsEmpty(t *testing.T) {
	src := "#1=IFCWALL($,$,$,$,$,$,$,$);"
	d := newDecoder(t, src)
	e := decodeLast(t, d, 1)
	m, items, errs := ProcessElement(e, d, config.Default())
	require.Empty(t, errs)
	require.Empty(t, items)
	require.True(t, m.IsEmpty())
}

func TestProcessElementSkipsDisallowedRepresentationType(t *testing.T) {
	src := "#1=IFCCARTESIANPOINT((0.,0.,0.));" +
		"#2=IFCAXIS2PLACEMENT3D(#1,$,$);" +
		"#3=IFCDIRECTION((0.,0.,1.));" +
		"#4=IFCRECTANGLEPROFILEDEF(.AREA.,$,$,10.0,10.0);" +
		"#5=IFCEXTRUDEDAREASOLID(#4,$,#3,5.0);" +
		"#6=IFCSHAPEREPRESENTATION($,$,'Axis',(#5));" +
		"#7=IFCPRODUCTDEFINITIONSHAPE($,$,(#6));" +
		"#8=IFCWALL($,$,$,$,$,$,#7,$);"
	d := newDecoder(t, src)
	e := decodeLast(t, d, 8)
	m, _, errs := ProcessElement(e, d, config.Default())
	require.Empty(t, errs)
	require.True(t, m.IsEmpty())
}

func TestProcessElementAppliesPlacement(t *testing.T) {
	src := "#1=IFCRECTANGLEPROFILEDEF(.AREA.,$,$,10.0,10.0);" +
		"#2=IFCEXTRUDEDAREASOLID(#1,$,$,5.0);" +
		"#3=IFCSHAPEREPRESENTATION($,$,'Body',(#2));" +
		"#4=IFCPRODUCTDEFINITIONSHAPE($,$,(#3));" +
		"#5=IFCCARTESIANPOINT((100.,0.,0.));" +
		"#6=IFCAXIS2PLACEMENT3D(#5,$,$);" +
		"#7=IFCLOCALPLACEMENT($,#6);" +
		"#8=IFCWALL($,$,$,$,$,#7,#4,$);"
	d := newDecoder(t, src)
	e := decodeLast(t, d, 8)
	m, items, errs := ProcessElement(e, d, config.Default())
	require.Empty(t, errs)
	require.Len(t, items, 1)
	require.False(t, m.IsEmpty())

	b := m.Bounds()
	require.InDelta(t, 95, b.Min[0], 1e-3)
	require.InDelta(t, 105, b.Max[0], 1e-3)
}

func TestBuildStyleIndexResolvesSurfaceStyleRendering(t *testing.T) {
	src := "#1=IFCCOLOURRGB($,0.5,0.25,0.1);" +
		"#2=IFCSURFACESTYLERENDERING(#1,$,$,$,$,$,$,$,.NOTDEFINED.);" +
		"#3=IFCSURFACESTYLE($,$,(#2));" +
		"#4=IFCPRESENTATIONSTYLEASSIGNMENT((#3));" +
		"#5=IFCEXTRUDEDAREASOLID($,$,$,$);" +
		"#6=IFCSTYLEDITEM(#5,(#4),$);"
	d := newDecoder(t, src)
	styled := decodeLast(t, d, 6)
	idx, err := BuildStyleIndex([]step.DecodedEntity{styled}, d)
	require.NoError(t, err)

	rgba := idx.ColorForItem(5, "IFCWALL", config.Default())
	require.InDelta(t, 0.5, rgba[0], 1e-6)
	require.InDelta(t, 0.25, rgba[1], 1e-6)
	require.InDelta(t, 0.1, rgba[2], 1e-6)
}

func TestColorForElementFallsBackToConfigDefault(t *testing.T) {
	idx := &StyleIndex{colors: map[uint32][4]float32{}}
	rgba := idx.ColorForElement([]uint32{1, 2, 3}, schema.IfcWall.String(), config.Default())
	require.Equal(t, config.Default().ColorFor(schema.IfcWall.String()), rgba)
}
