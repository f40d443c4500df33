// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyMesh(t *testing.T) {
	var m Mesh
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.VertexCount())
	require.Equal(t, 0, m.TriangleCount())
}

func TestMergeRebasesIndices(t *testing.T) {
	var a, b Mesh
	a.AddVertex(0, 0, 0, 0, 0, 1)
	a.AddVertex(1, 0, 0, 0, 0, 1)
	a.AddVertex(0, 1, 0, 0, 0, 1)
	a.AddTriangle(0, 1, 2)

	b.AddVertex(2, 0, 0, 0, 0, 1)
	b.AddVertex(3, 0, 0, 0, 0, 1)
	b.AddVertex(2, 1, 0, 0, 0, 1)
	b.AddTriangle(0, 1, 2)

	a.Merge(&b)
	require.Equal(t, 6, a.VertexCount())
	require.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, a.Indices)
	require.NoError(t, a.Validate())
}

func TestMergeAllAssociative(t *testing.T) {
	var a, b, c Mesh
	a.AddVertex(0, 0, 0, 0, 0, 1)
	a.AddTriangle(0, 0, 0)
	b.AddVertex(1, 0, 0, 0, 0, 1)
	b.AddTriangle(0, 0, 0)
	c.AddVertex(2, 0, 0, 0, 0, 1)
	c.AddTriangle(0, 0, 0)

	left := MergeAll(&a, &b, &c)
	right := &Mesh{}
	right.Merge(&a)
	tmp := MergeAll(&b, &c)
	right.Merge(tmp)
	require.Equal(t, left.VertexCount(), right.VertexCount())
	require.Equal(t, left.Positions, right.Positions)
}

func TestBounds(t *testing.T) {
	var m Mesh
	m.AddVertex(-50, -100, 0, 0, 0, 1)
	m.AddVertex(50, 100, 300, 0, 0, 1)
	b := m.Bounds()
	require.InDelta(t, -50, b.Min[0], 1e-6)
	require.InDelta(t, -100, b.Min[1], 1e-6)
	require.InDelta(t, 0, b.Min[2], 1e-6)
	require.InDelta(t, 50, b.Max[0], 1e-6)
	require.InDelta(t, 100, b.Max[1], 1e-6)
	require.InDelta(t, 300, b.Max[2], 1e-6)
}

func TestValidateCatchesOutOfBounds(t *testing.T) {
	var m Mesh
	m.AddVertex(0, 0, 0, 0, 0, 1)
	m.Indices = append(m.Indices, 0, 1, 2)
	require.Error(t, m.Validate())
}
