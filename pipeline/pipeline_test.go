// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package pipeline

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/archex/ifcgeom/config"
	"github.com/archex/ifcgeom/metrics"
	"github.com/archex/ifcgeom/schema"
	"github.com/archex/ifcgeom/step"
)

func TestProcessElementsAssemblesMeshesAndSkipsFailures(t *testing.T) {
	src := "#1=IFCRECTANGLEPROFILEDEF(.AREA.,$,$,10.0,10.0);" +
		"#2=IFCEXTRUDEDAREASOLID(#1,$,$,5.0);" +
		"#3=IFCSHAPEREPRESENTATION($,$,'Body',(#2));" +
		"#4=IFCPRODUCTDEFINITIONSHAPE($,$,(#3));" +
		"#5=IFCWALL($,$,$,$,$,$,#4,$);" +
		// #10 has an unsupported geometry item; its mesh comes back
		// empty but the element itself still appears in the result.
		"#7=IFCSPHERE($,1.0);" +
		"#8=IFCSHAPEREPRESENTATION($,$,'Body',(#7));" +
		"#9=IFCPRODUCTDEFINITIONSHAPE($,$,(#8));" +
		"#10=IFCWALL($,$,$,$,$,$,#9,$);"

	buf := step.NewBuffer([]byte(src))
	index := step.BuildIndex([]byte(src))
	catalog := schema.Default()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	res, err := ProcessElements(
		context.Background(),
		buf, index, catalog,
		nil,
		[]uint32{5, 10},
		config.Default(),
		Options{Workers: 2, Metrics: m},
	)
	require.NoError(t, err)
	require.Len(t, res.Elements, 2)

	var found5 bool
	for _, em := range res.Elements {
		if em.ExpressID == 5 {
			found5 = true
			require.False(t, em.Mesh.IsEmpty())
		}
	}
	require.True(t, found5)
	require.NotEmpty(t, res.Errors)
}

func TestProcessElementsUnknownIDIsCollectedAsError(t *testing.T) {
	src := "#1=IFCWALL($,$,$,$,$,$,$,$);"
	buf := step.NewBuffer([]byte(src))
	index := step.BuildIndex([]byte(src))

	res, err := ProcessElements(
		context.Background(),
		buf, index, schema.Default(),
		nil,
		[]uint32{999},
		config.Default(),
		Options{},
	)
	require.NoError(t, err)
	require.Empty(t, res.Elements)
	require.Len(t, res.Errors, 1)
}
