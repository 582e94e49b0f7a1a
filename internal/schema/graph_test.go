// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseType_KeywordTableIsTotal(t *testing.T) {
	for b := None; b < numBaseTypes; b++ {
		kw, ok := b.Keyword()
		assert.True(t, ok, "tag %d has no keyword", b)
		assert.NotEmpty(t, kw)
	}

	_, ok := BaseType(200).Keyword()
	assert.False(t, ok)
	assert.Equal(t, "BaseType(200)", BaseType(200).String())
	assert.Equal(t, "ubyte", UByte.String())
}

func TestType_Classification(t *testing.T) {
	tests := []struct {
		name      string
		typ       Type
		container bool
		enumRef   bool
	}{
		{name: "plain int", typ: Type{BaseType: Int, Index: NoIndex}},
		{name: "enum int", typ: Type{BaseType: Int, Index: 2}, enumRef: true},
		{name: "object", typ: Type{BaseType: Obj, Index: 0}},
		{name: "vector", typ: Type{BaseType: Vector, Element: Obj, Index: 1}, container: true},
		{name: "vector64", typ: Type{BaseType: Vector64, Element: Int, Index: NoIndex}, container: true},
		{name: "array", typ: Type{BaseType: Array, Element: Float, Index: NoIndex, FixedLength: 3}, container: true},
		{name: "union", typ: Type{BaseType: Union, Index: 0}, enumRef: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.container, tt.typ.IsContainer())
			assert.Equal(t, tt.container, tt.typ.BaseType.IsContainer())
			assert.Equal(t, tt.enumRef, tt.typ.IsEnumRef())
		})
	}
}

func TestGraph_Root(t *testing.T) {
	g := &Graph{
		Objects: []Object{{Name: "ns.A"}, {Name: "ns.B"}},
	}

	_, ok := g.Root()
	assert.False(t, ok)

	g.RootTable = "ns.B"
	root, ok := g.Root()
	assert.True(t, ok)
	assert.Equal(t, "ns.B", root.Name)

	g.RootTable = "ns.Missing"
	_, ok = g.Root()
	assert.False(t, ok)
}
