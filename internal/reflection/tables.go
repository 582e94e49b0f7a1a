// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package reflection

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Vtable slots of the reflection.fbs tables that the decoder reads.
const (
	schemaObjects   = 4
	schemaEnums     = 6
	schemaFileIdent = 8
	schemaFileExt   = 10
	schemaRootTable = 12

	objectName     = 4
	objectFields   = 6
	objectIsStruct = 8

	fieldName       = 4
	fieldType       = 6
	fieldID         = 8
	fieldDeprecated = 16
	fieldRequired   = 18
	fieldKey        = 20
	fieldOptional   = 26

	typeBaseType    = 4
	typeElement     = 6
	typeIndex       = 8
	typeFixedLength = 10

	enumName           = 4
	enumValues         = 6
	enumUnderlyingType = 10

	enumValValue = 6
)

// table is a reflection table positioned inside the schema buffer.
type table struct {
	tab flatbuffers.Table
}

func rootTable(buf []byte) table {
	n := flatbuffers.GetUOffsetT(buf)
	return table{tab: flatbuffers.Table{Bytes: buf, Pos: n}}
}

// has reports whether the field in slot is present.
func (t table) has(slot flatbuffers.VOffsetT) bool {
	return t.tab.Offset(slot) != 0
}

func (t table) str(slot flatbuffers.VOffsetT) (string, bool) {
	o := flatbuffers.UOffsetT(t.tab.Offset(slot))
	if o == 0 {
		return "", false
	}
	return string(t.tab.ByteVector(o + t.tab.Pos)), true
}

func (t table) flag(slot flatbuffers.VOffsetT) bool {
	o := flatbuffers.UOffsetT(t.tab.Offset(slot))
	if o == 0 {
		return false
	}
	return t.tab.GetBool(o + t.tab.Pos)
}

func (t table) u8(slot flatbuffers.VOffsetT) byte {
	o := flatbuffers.UOffsetT(t.tab.Offset(slot))
	if o == 0 {
		return 0
	}
	return t.tab.GetByte(o + t.tab.Pos)
}

func (t table) u16(slot flatbuffers.VOffsetT) uint16 {
	o := flatbuffers.UOffsetT(t.tab.Offset(slot))
	if o == 0 {
		return 0
	}
	return t.tab.GetUint16(o + t.tab.Pos)
}

func (t table) i32(slot flatbuffers.VOffsetT, def int32) int32 {
	o := flatbuffers.UOffsetT(t.tab.Offset(slot))
	if o == 0 {
		return def
	}
	return t.tab.GetInt32(o + t.tab.Pos)
}

func (t table) i64(slot flatbuffers.VOffsetT) int64 {
	o := flatbuffers.UOffsetT(t.tab.Offset(slot))
	if o == 0 {
		return 0
	}
	return t.tab.GetInt64(o + t.tab.Pos)
}

// child returns the sub-table referenced from slot.
func (t table) child(slot flatbuffers.VOffsetT) (table, bool) {
	o := flatbuffers.UOffsetT(t.tab.Offset(slot))
	if o == 0 {
		return table{}, false
	}
	pos := t.tab.Indirect(o + t.tab.Pos)
	return table{tab: flatbuffers.Table{Bytes: t.tab.Bytes, Pos: pos}}, true
}

// vectorLen returns the length of the table vector in slot, zero if absent.
func (t table) vectorLen(slot flatbuffers.VOffsetT) int {
	o := flatbuffers.UOffsetT(t.tab.Offset(slot))
	if o == 0 {
		return 0
	}
	return t.tab.VectorLen(o)
}

// element returns the j-th table of the table vector in slot.
func (t table) element(slot flatbuffers.VOffsetT, j int) table {
	o := flatbuffers.UOffsetT(t.tab.Offset(slot))
	x := t.tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * flatbuffers.SizeUOffsetT
	x = t.tab.Indirect(x)
	return table{tab: flatbuffers.Table{Bytes: t.tab.Bytes, Pos: x}}
}
