// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import "strconv"

// BaseType is the type tag stored in a reflection schema.
// Values match the reflection format's BaseType enumeration.
type BaseType uint8

const (
	None BaseType = iota
	UType
	Bool
	Byte
	UByte
	Short
	UShort
	Int
	UInt
	Long
	ULong
	Float
	Double
	String
	Vector
	Obj
	Union
	Array
	Vector64

	numBaseTypes
)

// keywords maps every tag to its IDL keyword.
var keywords = [...]string{
	None:     "none",
	UType:    "utype",
	Bool:     "bool",
	Byte:     "byte",
	UByte:    "ubyte",
	Short:    "short",
	UShort:   "ushort",
	Int:      "int",
	UInt:     "uint",
	Long:     "long",
	ULong:    "ulong",
	Float:    "float",
	Double:   "double",
	String:   "string",
	Vector:   "vector",
	Obj:      "obj",
	Union:    "union",
	Array:    "array",
	Vector64: "vector64",
}

// Adding a tag without a keyword (or the reverse) fails to compile.
var (
	_ [len(keywords) - int(numBaseTypes)]struct{}
	_ [int(numBaseTypes) - len(keywords)]struct{}
)

// IsContainer reports whether b is one of the vector or array tags.
func (b BaseType) IsContainer() bool {
	switch b {
	case Vector, Vector64, Array:
		return true
	}
	return false
}

// Valid reports whether b is a known tag.
func (b BaseType) Valid() bool {
	return b < numBaseTypes
}

// Keyword returns the lowercase IDL keyword for the tag.
func (b BaseType) Keyword() (string, bool) {
	if !b.Valid() || keywords[b] == "" {
		return "", false
	}
	return keywords[b], true
}

func (b BaseType) String() string {
	if kw, ok := b.Keyword(); ok {
		return kw
	}
	return "BaseType(" + strconv.Itoa(int(b)) + ")"
}
