// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// SchemaData is the complete input passed to a translator template.
type SchemaData struct {
	Namespace   string
	FileIdent   string
	FileExt     string
	ObjectCount int
	EnumCount   int
	Enums       []EnumDef // forward index order
	Defs        []TypeDef // in the configured ObjectOrder
	RootType    string    // empty when the schema has no root table
}

// TypeDef is a table or struct declaration.
type TypeDef struct {
	Name     string
	IsStruct bool
	Root     bool    // carries the root serializer marker
	Fields   []Field // ascending by id
}

// Field is a single resolved member of a TypeDef.
type Field struct {
	ID         uint16
	Name       string
	Type       string   // fully resolved IDL type
	Attributes []string // true flags among key, required, optional, deprecated, in that order
}

// EnumDef is an enumeration with its resolved underlying primitive.
type EnumDef struct {
	Name       string
	Underlying string
	Values     []EnumValue
}

// EnumValue pairs an enumerant's position with its stored constant.
type EnumValue struct {
	Ordinal int
	Value   int64
}
