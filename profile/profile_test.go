// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package profile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archex/ifcgeom/config"
	"github.com/archex/ifcgeom/linear"
	"github.com/archex/ifcgeom/schema"
	"github.com/archex/ifcgeom/step"
)

func outlineSignedArea(pts []linear.V2) float32 {
	var a float32
	n := len(pts)
	for i := 0; i < n; i++ {
		p, q := pts[i], pts[(i+1)%n]
		a += p[0]*q[1] - q[0]*p[1]
	}
	return a / 2
}

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

func TestRectangleProfileCentered(t *testing.T) {
	src := "#1=IFCRECTANGLEPROFILEDEF(.AREA.,$,$,100.0,200.0);"
	d := newDecoder(t, src)
	e := decodeLast(t, d, 1)
	p, err := Process(e, d, config.Default())
	require.NoError(t, err)
	require.Len(t, p.Outer, 4)
	require.Equal(t, float32(-50), p.Outer[0][0])
	require.Equal(t, float32(-100), p.Outer[0][1])
	require.Equal(t, float32(50), p.Outer[2][0])
	require.Equal(t, float32(100), p.Outer[2][1])
}

func TestCircleProfileSegmentCount(t *testing.T) {
	src := "#1=IFCCIRCLEPROFILEDEF(.AREA.,$,$,10.0);"
	d := newDecoder(t, src)
	e := decodeLast(t, d, 1)
	p, err := Process(e, d, config.Default())
	require.NoError(t, err)
	require.Len(t, p.Outer, circleSegments)
}

func TestCircleHollowHasReversedHole(t *testing.T) {
	src := "#1=IFCCIRCLEHOLLOWPROFILEDEF(.AREA.,$,$,10.0,2.0);"
	d := newDecoder(t, src)
	e := decodeLast(t, d, 1)
	p, err := Process(e, d, config.Default())
	require.NoError(t, err)
	require.Len(t, p.Outer, circleSegments)
	require.Len(t, p.Holes, 1)
	require.Len(t, p.Holes[0], circleSegments)
}

func shapeVertexCount(t *testing.T, src string, want int) {
	t.Helper()
	d := newDecoder(t, src)
	e := decodeLast(t, d, 1)
	p, err := Process(e, d, config.Default())
	require.NoError(t, err)
	require.Len(t, p.Outer, want)
}

func TestParametricShapeVertexCounts(t *testing.T) {
	shapeVertexCount(t, "#1=IFCISHAPEPROFILEDEF(.AREA.,$,$,200.0,400.0,10.0,16.0);", 12)
	shapeVertexCount(t, "#1=IFCLSHAPEPROFILEDEF(.AREA.,$,$,100.0,100.0,10.0);", 6)
	shapeVertexCount(t, "#1=IFCUSHAPEPROFILEDEF(.AREA.,$,$,200.0,100.0,10.0,16.0);", 8)
	shapeVertexCount(t, "#1=IFCTSHAPEPROFILEDEF(.AREA.,$,$,200.0,150.0,10.0,16.0);", 8)
	shapeVertexCount(t, "#1=IFCCSHAPEPROFILEDEF(.AREA.,$,$,200.0,100.0,10.0);", 8)
	shapeVertexCount(t, "#1=IFCZSHAPEPROFILEDEF(.AREA.,$,$,200.0,100.0,10.0,16.0);", 12)
}

func TestUShapeContour(t *testing.T) {
	// Depth 200, FlangeWidth 100, WebThickness 10, FlangeThickness 16:
	// web along x in [-50,-40], flanges reaching x=50, open toward +X.
	src := "#1=IFCUSHAPEPROFILEDEF(.AREA.,$,$,200.0,100.0,10.0,16.0);"
	d := newDecoder(t, src)
	e := decodeLast(t, d, 1)
	p, err := Process(e, d, config.Default())
	require.NoError(t, err)
	require.Equal(t, []linear.V2{
		{-50, -100}, {50, -100}, {50, -84}, {-40, -84},
		{-40, 84}, {50, 84}, {50, 100}, {-50, 100},
	}, p.Outer)
	require.Positive(t, outlineSignedArea(p.Outer))
}

func TestCShapeContour(t *testing.T) {
	// Depth 200, Width 100, WallThickness 10, Girth 30: back wall at
	// x in [-15,-5], flange/lip cross-section spanning the girth.
	src := "#1=IFCCSHAPEPROFILEDEF(.AREA.,$,$,200.0,100.0,10.0,30.0);"
	d := newDecoder(t, src)
	e := decodeLast(t, d, 1)
	p, err := Process(e, d, config.Default())
	require.NoError(t, err)
	require.Equal(t, []linear.V2{
		{15, -100}, {15, -90}, {-5, -90}, {-5, 90},
		{15, 90}, {15, 100}, {-15, 100}, {-15, -100},
	}, p.Outer)
	require.Positive(t, outlineSignedArea(p.Outer))
}

func TestCShapeGirthDefaultsToTwiceWallThickness(t *testing.T) {
	src := "#1=IFCCSHAPEPROFILEDEF(.AREA.,$,$,200.0,100.0,10.0);"
	d := newDecoder(t, src)
	e := decodeLast(t, d, 1)
	p, err := Process(e, d, config.Default())
	require.NoError(t, err)
	require.Equal(t, linear.V2{10, -100}, p.Outer[0])
	require.Equal(t, linear.V2{-10, -100}, p.Outer[7])
}

func TestArbitraryClosedProfilePolyline(t *testing.T) {
	src := "#1=IFCCARTESIANPOINT((0.0,0.0));" +
		"#2=IFCCARTESIANPOINT((100.0,0.0));" +
		"#3=IFCCARTESIANPOINT((100.0,100.0));" +
		"#4=IFCCARTESIANPOINT((0.0,100.0));" +
		"#5=IFCPOLYLINE((#1,#2,#3,#4,#1));" +
		"#6=IFCARBITRARYCLOSEDPROFILEDEF(.AREA.,$,#5);"
	d := newDecoder(t, src)
	e := decodeLast(t, d, 6)
	p, err := Process(e, d, config.Default())
	require.NoError(t, err)
	require.Len(t, p.Outer, 5)
}

func TestIndexedPolyCurveNoSegmentsReturnsAllPoints(t *testing.T) {
	src := "#1=IFCCARTESIANPOINTLIST2D(((0.,0.),(1.,0.),(1.,1.)));" +
		"#2=IFCINDEXEDPOLYCURVE(#1,$);" +
		"#3=IFCARBITRARYCLOSEDPROFILEDEF(.AREA.,$,#2);"
	d := newDecoder(t, src)
	e := decodeLast(t, d, 3)
	p, err := Process(e, d, config.Default())
	require.NoError(t, err)
	require.Len(t, p.Outer, 3)
}

func TestIndexedPolyCurveLineIndexConcatenates(t *testing.T) {
	src := "#1=IFCCARTESIANPOINTLIST2D(((0.,0.),(1.,0.),(1.,1.),(0.,1.)));" +
		"#2=IFCINDEXEDPOLYCURVE(#1,(IFCLINEINDEX((1,2,3,4,1))));" +
		"#3=IFCARBITRARYCLOSEDPROFILEDEF(.AREA.,$,#2);"
	d := newDecoder(t, src)
	e := decodeLast(t, d, 3)
	p, err := Process(e, d, config.Default())
	require.NoError(t, err)
	require.Len(t, p.Outer, 5)
}

func TestCompositeProfileFirstIsBaseRestAreHoles(t *testing.T) {
	src := "#1=IFCRECTANGLEPROFILEDEF(.AREA.,$,$,100.0,100.0);" +
		"#2=IFCRECTANGLEPROFILEDEF(.AREA.,$,$,20.0,20.0);" +
		"#3=IFCCOMPOSITEPROFILEDEF(.AREA.,$,(#1,#2));"
	d := newDecoder(t, src)
	e := decodeLast(t, d, 3)
	p, err := Process(e, d, config.Default())
	require.NoError(t, err)
	require.Len(t, p.Outer, 4)
	require.Len(t, p.Holes, 1)
	require.Len(t, p.Holes[0], 4)
}

func TestUnsupportedProfileType(t *testing.T) {
	src := "#1=IFCDERIVEDPROFILEDEF(.AREA.,$,$,$,$);"
	d := newDecoder(t, src)
	e := decodeLast(t, d, 1)
	_, err := Process(e, d, config.Default())
	require.Error(t, err)
	var uerr *UnsupportedError
	require.ErrorAs(t, err, &uerr)
}
