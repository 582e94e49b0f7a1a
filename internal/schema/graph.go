// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schema holds the in-memory graph decoded from a binary reflection schema.
//
// A Graph is built once by a decoder and is treated as read-only afterwards;
// the emitters never mutate it.
package schema

// NoIndex marks a Type whose Index does not point into Objects or Enums.
const NoIndex int32 = -1

// Graph is a decoded reflection schema.
type Graph struct {
	Objects   []Object // storage order as decoded
	Enums     []Enum   // storage order as decoded
	RootTable string   // name of the root Object, empty if none
	FileIdent string
	FileExt   string
}

// Object is a table or struct declaration.
type Object struct {
	Name     string // dotted, possibly namespaced
	IsStruct bool   // false means table
	Fields   []Field
}

// Field is a single member of an Object.
// Fields carry no ordering guarantee; ID is the declaration-order key.
type Field struct {
	ID         uint16
	Name       string
	Type       Type
	Key        bool
	Required   bool
	Optional   bool
	Deprecated bool
}

// Type describes the type of a field or the underlying type of an enum.
type Type struct {
	BaseType BaseType
	// Element is the contained item's kind for Vector and Array.
	Element BaseType
	// Index points into Graph.Objects for Obj (or Obj elements) and into
	// Graph.Enums for enum-typed scalars. NoIndex otherwise.
	Index       int32
	FixedLength uint16
}

// Enum is an enumeration. Values are kept in ordinal order; a value need not
// equal its ordinal.
type Enum struct {
	Name           string
	UnderlyingType Type
	Values         []int64
}

// IsContainer reports whether the type wraps an element type.
func (t Type) IsContainer() bool {
	return t.BaseType.IsContainer()
}

// IsEnumRef reports whether the type is a scalar that refers to an Enum.
func (t Type) IsEnumRef() bool {
	return !t.IsContainer() && t.BaseType != Obj && t.Index >= 0
}

// Root returns the root Object, if the graph declares one that exists.
func (g *Graph) Root() (Object, bool) {
	if g.RootTable == "" {
		return Object{}, false
	}
	for _, o := range g.Objects {
		if o.Name == g.RootTable {
			return o, true
		}
	}
	return Object{}, false
}
