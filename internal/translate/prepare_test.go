// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/fbsdump/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalar(b schema.BaseType) schema.Type {
	return schema.Type{BaseType: b, Index: schema.NoIndex}
}

func testGraph() *schema.Graph {
	return &schema.Graph{
		FileIdent: "TEST",
		FileExt:   "bin",
		RootTable: "game.Root",
		Objects: []schema.Object{
			{
				Name:     "game.Vec3",
				IsStruct: true,
				Fields: []schema.Field{
					{ID: 3, Name: "c", Type: scalar(schema.Float)},
					{ID: 1, Name: "a", Type: scalar(schema.Float)},
					{ID: 2, Name: "b", Type: scalar(schema.Float)},
				},
			},
			{
				Name: "game.Root",
				Fields: []schema.Field{
					{ID: 0, Name: "kind", Type: schema.Type{BaseType: schema.Int, Index: 0}, Required: true, Deprecated: true},
					{ID: 1, Name: "pos", Type: schema.Type{BaseType: schema.Obj, Index: 0}},
					{ID: 2, Name: "id", Type: scalar(schema.UInt), Key: true, Required: true, Optional: true, Deprecated: true},
				},
			},
		},
		Enums: []schema.Enum{
			{Name: "game.Kind", UnderlyingType: schema.Type{BaseType: schema.Int, Index: 0}, Values: []int64{5, 10, 2}},
			{Name: "game.Empty", UnderlyingType: scalar(schema.Byte)},
		},
	}
}

func TestPrepare_FieldsSortedByID(t *testing.T) {
	g := testGraph()

	data, err := Prepare(g, Settings{Namespace: "ns"})
	require.NoError(t, err)

	vec := data.Defs[1]
	require.Equal(t, "game.Vec3", vec.Name)
	var names []string
	for _, f := range vec.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)

	// storage order of the graph is untouched
	assert.Equal(t, "c", g.Objects[0].Fields[0].Name)
}

func TestPrepare_EnumValuesKeepOrdinalOrder(t *testing.T) {
	data, err := Prepare(testGraph(), Settings{Namespace: "ns"})
	require.NoError(t, err)

	require.Len(t, data.Enums, 2)
	kind := data.Enums[0]
	assert.Equal(t, "game.Kind", kind.Name)
	assert.Equal(t, "int", kind.Underlying, "underlying type never resolves to the enum itself")
	assert.Equal(t, []EnumValue{{0, 5}, {1, 10}, {2, 2}}, kind.Values)
	assert.Empty(t, data.Enums[1].Values)
}

func TestPrepare_FieldAttributes(t *testing.T) {
	data, err := Prepare(testGraph(), Settings{Namespace: "ns"})
	require.NoError(t, err)

	root := data.Defs[0]
	require.Equal(t, "game.Root", root.Name)
	assert.Equal(t, []string{"required", "deprecated"}, root.Fields[0].Attributes)
	assert.Nil(t, root.Fields[1].Attributes)
	assert.Equal(t, []string{"key", "required", "optional", "deprecated"}, root.Fields[2].Attributes)
	assert.Equal(t, "game.Kind", root.Fields[0].Type)
	assert.Equal(t, "game.Vec3", root.Fields[1].Type)
}

func TestPrepare_ObjectOrder(t *testing.T) {
	tests := []struct {
		name  string
		order ObjectOrder
		want  []string
	}{
		{name: "default is reverse", order: "", want: []string{"game.Root", "game.Vec3"}},
		{name: "reverse", order: OrderReverse, want: []string{"game.Root", "game.Vec3"}},
		{name: "declaration", order: OrderDeclaration, want: []string{"game.Vec3", "game.Root"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Prepare(testGraph(), Settings{Namespace: "ns", ObjectOrder: tt.order})
			require.NoError(t, err)

			var got []string
			for _, d := range data.Defs {
				got = append(got, d.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrepare_Root(t *testing.T) {
	data, err := Prepare(testGraph(), Settings{Namespace: "ns"})
	require.NoError(t, err)
	assert.True(t, data.Defs[0].Root)
	assert.False(t, data.Defs[1].Root)
	assert.Equal(t, "game.Root", data.RootType)

	g := testGraph()
	g.RootTable = ""
	data, err = Prepare(g, Settings{Namespace: "ns"})
	require.NoError(t, err)
	assert.Empty(t, data.RootType)
	for _, d := range data.Defs {
		assert.False(t, d.Root)
	}
}

func TestPrepare_Names(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		decl     string
		ref      string
		rootType string
	}{
		{
			name:     "qualified",
			settings: Settings{Namespace: "ns"},
			decl:     "game.Vec3", ref: "game.Vec3", rootType: "game.Root",
		},
		{
			name:     "stripped consistently",
			settings: Settings{Namespace: "ns", StripNamespace: true},
			decl:     "Vec3", ref: "Vec3", rootType: "Root",
		},
		{
			name:     "stripped with qualified refs",
			settings: Settings{Namespace: "ns", StripNamespace: true, QualifiedRefs: true},
			decl:     "Vec3", ref: "game.Vec3", rootType: "game.Root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Prepare(testGraph(), tt.settings)
			require.NoError(t, err)

			assert.Equal(t, tt.decl, data.Defs[1].Name)
			assert.Equal(t, tt.ref, data.Defs[0].Fields[1].Type)
			assert.Equal(t, tt.rootType, data.RootType)
		})
	}
}

func TestPrepare_Header(t *testing.T) {
	data, err := Prepare(testGraph(), Settings{Namespace: "pkNX.Structures.FlatBuffers"})
	require.NoError(t, err)

	assert.Equal(t, "pkNX.Structures.FlatBuffers", data.Namespace)
	assert.Equal(t, "TEST", data.FileIdent)
	assert.Equal(t, "bin", data.FileExt)
	assert.Equal(t, 2, data.ObjectCount)
	assert.Equal(t, 2, data.EnumCount)
}

func TestPrepare_Errors(t *testing.T) {
	t.Run("invalid settings", func(t *testing.T) {
		_, err := Prepare(testGraph(), Settings{})
		assert.ErrorContains(t, err, "namespace is required")

		_, err = Prepare(testGraph(), Settings{Namespace: "ns", ObjectOrder: "random"})
		assert.ErrorContains(t, err, "unknown object order")
	})

	t.Run("invariant violation", func(t *testing.T) {
		g := testGraph()
		g.Objects[1].Fields[1].Type.Index = 42

		data, err := Prepare(g, Settings{Namespace: "ns"})
		require.Error(t, err)
		assert.Nil(t, data)
		assert.True(t, errors.Is(err, ErrInvariantViolation))
		assert.Contains(t, err.Error(), "object game.Root")
		assert.Contains(t, err.Error(), "field pos")
	})
}

func TestRegister(t *testing.T) {
	r := make(Register)
	r.Add(stubTranslator("b"))
	r.Add(stubTranslator("a"))

	assert.Equal(t, []string{"a", "b"}, r.Available())

	got, err := r.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name())

	_, err = r.Get("missing")
	assert.ErrorContains(t, err, "unknown translator: missing")
}
