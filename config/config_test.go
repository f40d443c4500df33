// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/archex/ifcgeom/schema"
)

func TestDefaultAngleUnitIsDegrees(t *testing.T) {
	require.Equal(t, Degrees, Default().AngleUnit)
}

func TestColorForKnownAndFallback(t *testing.T) {
	c := Default()
	require.Equal(t, c.DefaultColors[schema.IfcWall.String()], c.ColorFor(schema.IfcWall.String()))
	require.Equal(t, c.FallbackColor, c.ColorFor("IFCSOMETHINGELSE"))
}

func TestLoadOverridesAngleUnit(t *testing.T) {
	doc := []byte("angle_unit: 1\n")
	c, err := Load(Default(), doc)
	require.NoError(t, err)
	require.Equal(t, Radians, c.AngleUnit)
}
