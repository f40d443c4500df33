// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package geomattr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archex/ifcgeom/linear"
	"github.com/archex/ifcgeom/schema"
	"github.com/archex/ifcgeom/step"
)

func newDecoder(t *testing.T, src string) *step.Decoder {
	t.Helper()
	buf := step.NewBuffer([]byte(src))
	ix := step.BuildIndex([]byte(src))
	return step.NewDecoder(buf, ix, schema.Default(), nil)
}

func TestResolvePoint3FromCartesianPoint(t *testing.T) {
	src := "#1=IFCCARTESIANPOINT((1.0,2.0,3.0));#2=IFCWALL(#1);"
	d := newDecoder(t, src)
	e, err := d.DecodeByID(2)
	require.NoError(t, err)
	p, ok, err := ResolvePoint3(d, e.Attr(0))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, linear.V3{1, 2, 3}, p)
}

func TestResolveDirection3DefaultsWhenNull(t *testing.T) {
	d := newDecoder(t, "#1=IFCWALL($);")
	e, err := d.DecodeByID(1)
	require.NoError(t, err)
	dir, err := ResolveDirection3(d, e.Attr(0), linear.V3{0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, linear.V3{0, 0, 1}, dir)
}

func TestResolveAxis2Placement3DIdentity(t *testing.T) {
	d := newDecoder(t, "#1=IFCWALL($);")
	e, err := d.DecodeByID(1)
	require.NoError(t, err)
	m, err := ResolveAxis2Placement3D(d, e.Attr(0))
	require.NoError(t, err)
	var ident linear.M4
	ident.I()
	require.Equal(t, ident, *m)
}

func TestResolveAxis2Placement3DTranslationOnly(t *testing.T) {
	src := "#1=IFCCARTESIANPOINT((10.0,20.0,30.0));" +
		"#2=IFCAXIS2PLACEMENT3D(#1,$,$);" +
		"#3=IFCWALL(#2);"
	d := newDecoder(t, src)
	e, err := d.DecodeByID(3)
	require.NoError(t, err)
	m, err := ResolveAxis2Placement3D(d, e.Attr(0))
	require.NoError(t, err)
	require.InDelta(t, 10, m[3][0], 1e-6)
	require.InDelta(t, 20, m[3][1], 1e-6)
	require.InDelta(t, 30, m[3][2], 1e-6)
	require.InDelta(t, 1, m[0][0], 1e-6)
	require.InDelta(t, 1, m[1][1], 1e-6)
	require.InDelta(t, 1, m[2][2], 1e-6)
}

func TestResolveAxis2Placement2DRotation(t *testing.T) {
	src := "#1=IFCCARTESIANPOINT((5.0,0.0));" +
		"#2=IFCDIRECTION((0.0,1.0));" +
		"#3=IFCAXIS2PLACEMENT2D(#1,#2);" +
		"#4=IFCWALL(#3);"
	d := newDecoder(t, src)
	e, err := d.DecodeByID(4)
	require.NoError(t, err)
	pl, err := ResolveAxis2Placement2D(d, e.Attr(0))
	require.NoError(t, err)
	require.False(t, pl.Identity)
	got := pl.Apply(linear.V2{1, 0})
	require.InDelta(t, 5, got[0], 1e-6)
	require.InDelta(t, 1, got[1], 1e-6)
}
