// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package step

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScannerCountByType(t *testing.T) {
	src := "#1=IFCPROJECT($,$,$,$,$,$,$,$,$);\n" +
		"#2=IFCWALL($,$,$,$,$,$,$,$);#3=IFCWALL($,$,$,$,$,$,$,$);\n" +
		"#4=IFCDOOR($,$,$,$,$,$,$,$);"
	sc := NewScanner([]byte(src))
	counts := sc.CountByType()
	require.Equal(t, map[string]int{"IFCPROJECT": 1, "IFCWALL": 2, "IFCDOOR": 1}, counts)
}

func TestScannerTruncatedEntity(t *testing.T) {
	src := "#1=IFCWALL($,$);#2=IFCWALL("
	sc := NewScanner([]byte(src))
	e, ok := sc.Next()
	require.True(t, ok)
	require.Equal(t, uint32(1), e.ID)
	_, ok = sc.Next()
	require.False(t, ok, "missing terminating ';' must stop iteration without panicking")
}

func TestScannerMissingEquals(t *testing.T) {
	src := "#1 IFCWALL($,$);"
	sc := NewScanner([]byte(src))
	_, ok := sc.Next()
	require.False(t, ok)
}

func TestEqualTypeName(t *testing.T) {
	require.True(t, EqualTypeName([]byte("IFCWALL"), "IFCWALL"))
	require.True(t, EqualTypeName([]byte("ifcwall"), "IFCWALL"))
	require.False(t, EqualTypeName([]byte("IFCWALLX"), "IFCWALL"))
}
