// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package reflectiontest builds binary reflection schemas for tests.
package reflectiontest

import (
	"github.com/dacolabs/fbsdump/internal/schema"
	flatbuffers "github.com/google/flatbuffers/go"
)

// Slot numbers in reflection.fbs declaration order.
const (
	schemaSlots = 5
	objectSlots = 3
	fieldSlots  = 12
	typeSlots   = 4
	enumSlots   = 4
	valSlots    = 2
)

// Encode serializes g the way flatc lays out a .bfbs file, with the "BFBS"
// file identifier.
func Encode(g *schema.Graph) []byte {
	b := flatbuffers.NewBuilder(1024)

	objects := make([]flatbuffers.UOffsetT, len(g.Objects))
	var root flatbuffers.UOffsetT
	for i, o := range g.Objects {
		objects[i] = encodeObject(b, o)
		if o.Name == g.RootTable {
			root = objects[i]
		}
	}
	objectVec := tableVector(b, objects)

	enums := make([]flatbuffers.UOffsetT, len(g.Enums))
	for i, e := range g.Enums {
		enums[i] = encodeEnum(b, e)
	}
	enumVec := tableVector(b, enums)

	var ident, ext flatbuffers.UOffsetT
	if g.FileIdent != "" {
		ident = b.CreateString(g.FileIdent)
	}
	if g.FileExt != "" {
		ext = b.CreateString(g.FileExt)
	}

	b.StartObject(schemaSlots)
	b.PrependUOffsetTSlot(0, objectVec, 0)
	b.PrependUOffsetTSlot(1, enumVec, 0)
	b.PrependUOffsetTSlot(2, ident, 0)
	b.PrependUOffsetTSlot(3, ext, 0)
	b.PrependUOffsetTSlot(4, root, 0)
	b.FinishWithFileIdentifier(b.EndObject(), []byte("BFBS"))
	return b.FinishedBytes()
}

func tableVector(b *flatbuffers.Builder, offsets []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartVector(flatbuffers.SizeUOffsetT, len(offsets), flatbuffers.SizeUOffsetT)
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	return b.EndVector(len(offsets))
}

func encodeType(b *flatbuffers.Builder, t schema.Type) flatbuffers.UOffsetT {
	b.StartObject(typeSlots)
	b.PrependByteSlot(0, byte(t.BaseType), 0)
	b.PrependByteSlot(1, byte(t.Element), 0)
	b.PrependInt32Slot(2, t.Index, schema.NoIndex)
	b.PrependUint16Slot(3, t.FixedLength, 0)
	return b.EndObject()
}

func encodeField(b *flatbuffers.Builder, f schema.Field) flatbuffers.UOffsetT {
	name := b.CreateString(f.Name)
	typ := encodeType(b, f.Type)

	b.StartObject(fieldSlots)
	b.PrependUOffsetTSlot(0, name, 0)
	b.PrependUOffsetTSlot(1, typ, 0)
	b.PrependUint16Slot(2, f.ID, 0)
	b.PrependBoolSlot(6, f.Deprecated, false)
	b.PrependBoolSlot(7, f.Required, false)
	b.PrependBoolSlot(8, f.Key, false)
	b.PrependBoolSlot(11, f.Optional, false)
	return b.EndObject()
}

func encodeObject(b *flatbuffers.Builder, o schema.Object) flatbuffers.UOffsetT {
	fields := make([]flatbuffers.UOffsetT, len(o.Fields))
	for i, f := range o.Fields {
		fields[i] = encodeField(b, f)
	}
	fieldVec := tableVector(b, fields)
	name := b.CreateString(o.Name)

	b.StartObject(objectSlots)
	b.PrependUOffsetTSlot(0, name, 0)
	b.PrependUOffsetTSlot(1, fieldVec, 0)
	b.PrependBoolSlot(2, o.IsStruct, false)
	return b.EndObject()
}

func encodeEnum(b *flatbuffers.Builder, e schema.Enum) flatbuffers.UOffsetT {
	vals := make([]flatbuffers.UOffsetT, len(e.Values))
	for i, v := range e.Values {
		b.StartObject(valSlots)
		b.PrependInt64Slot(1, v, 0)
		vals[i] = b.EndObject()
	}
	valVec := tableVector(b, vals)
	name := b.CreateString(e.Name)
	underlying := encodeType(b, e.UnderlyingType)

	b.StartObject(enumSlots)
	b.PrependUOffsetTSlot(0, name, 0)
	b.PrependUOffsetTSlot(1, valVec, 0)
	b.PrependUOffsetTSlot(3, underlying, 0)
	return b.EndObject()
}
