// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package step

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildIndexLookup(t *testing.T) {
	src := "#1=IFCPROJECT($);#2=IFCWALL($);#3=IFCDOOR($);"
	ix := BuildIndex([]byte(src))
	require.Equal(t, 3, ix.Len())
	span, ok := ix.Lookup(2)
	require.True(t, ok)
	require.Equal(t, "#2=IFCWALL($);", src[span.Start:span.End])
	_, ok = ix.Lookup(99)
	require.False(t, ok)
}

func TestIndexLastWins(t *testing.T) {
	src := "#1=IFCWALL($);#1=IFCDOOR($);"
	ix := BuildIndex([]byte(src))
	require.Equal(t, 1, ix.Len())
	span, ok := ix.Lookup(1)
	require.True(t, ok)
	require.Equal(t, "#1=IFCDOOR($);", src[span.Start:span.End])
}

func TestIndexGrows(t *testing.T) {
	ix := NewIndex(1)
	for i := uint32(0); i < 500; i++ {
		ix.Insert(i, Range{int(i), int(i) + 1})
	}
	require.Equal(t, 500, ix.Len())
	for i := uint32(0); i < 500; i++ {
		span, ok := ix.Lookup(i)
		require.True(t, ok)
		require.Equal(t, int(i), span.Start)
	}
}
