// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package reflection decodes FlatBuffers binary reflection schemas (.bfbs)
// into a schema.Graph.
package reflection

import (
	"github.com/cockroachdb/errors"
	"github.com/dacolabs/fbsdump/internal/schema"
	flatbuffers "github.com/google/flatbuffers/go"
)

// ErrDecode marks every error caused by malformed, truncated or
// incompatible input bytes.
var ErrDecode = errors.New("invalid reflection schema")

// minBufferSize is a root offset plus the smallest possible vtable reference.
const minBufferSize = 8

// Decode reads a binary reflection schema. It either returns a complete
// Graph or an error marked with ErrDecode; it never returns a partial Graph.
func Decode(buf []byte) (g *schema.Graph, err error) {
	if len(buf) < minBufferSize {
		return nil, decodeErrorf("buffer too short (%d bytes)", len(buf))
	}

	// The flatbuffers runtime indexes the buffer without bounds checks of its
	// own; a bad offset surfaces as a runtime panic.
	defer func() {
		if r := recover(); r != nil {
			g = nil
			err = decodeErrorf("truncated or corrupt buffer: %v", r)
		}
	}()

	d := &decoder{size: len(buf)}
	return d.schema(rootTable(buf))
}

func decodeErrorf(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), ErrDecode)
}

type decoder struct {
	size int
}

// vector validates the length of a table vector against the buffer size.
func (d *decoder) vector(t table, slot flatbuffers.VOffsetT, what string) (int, error) {
	n := t.vectorLen(slot)
	if n < 0 || n*flatbuffers.SizeUOffsetT > d.size {
		return 0, decodeErrorf("%s: impossible vector length %d", what, n)
	}
	return n, nil
}

func (d *decoder) schema(t table) (*schema.Graph, error) {
	// objects and enums are required by every reflection schema version.
	if !t.has(schemaObjects) || !t.has(schemaEnums) {
		return nil, decodeErrorf("schema: missing objects or enums table (incompatible version?)")
	}

	g := &schema.Graph{}
	g.FileIdent, _ = t.str(schemaFileIdent)
	g.FileExt, _ = t.str(schemaFileExt)

	n, err := d.vector(t, schemaObjects, "schema.objects")
	if err != nil {
		return nil, err
	}
	g.Objects = make([]schema.Object, 0, n)
	for i := range n {
		obj, err := d.object(t.element(schemaObjects, i))
		if err != nil {
			return nil, errors.Wrapf(err, "object %d", i)
		}
		g.Objects = append(g.Objects, obj)
	}

	n, err = d.vector(t, schemaEnums, "schema.enums")
	if err != nil {
		return nil, err
	}
	g.Enums = make([]schema.Enum, 0, n)
	for i := range n {
		e, err := d.enum(t.element(schemaEnums, i))
		if err != nil {
			return nil, errors.Wrapf(err, "enum %d", i)
		}
		g.Enums = append(g.Enums, e)
	}

	if root, ok := t.child(schemaRootTable); ok {
		name, ok := root.str(objectName)
		if !ok {
			return nil, decodeErrorf("schema.root_table: missing name")
		}
		g.RootTable = name
	}

	return g, nil
}

func (d *decoder) object(t table) (schema.Object, error) {
	name, ok := t.str(objectName)
	if !ok {
		return schema.Object{}, decodeErrorf("missing name")
	}
	obj := schema.Object{
		Name:     name,
		IsStruct: t.flag(objectIsStruct),
	}

	n, err := d.vector(t, objectFields, name+".fields")
	if err != nil {
		return schema.Object{}, err
	}
	obj.Fields = make([]schema.Field, 0, n)
	seen := make(map[uint16]string, n)
	for i := range n {
		f, err := d.field(t.element(objectFields, i))
		if err != nil {
			return schema.Object{}, errors.Wrapf(err, "%s field %d", name, i)
		}
		if prev, dup := seen[f.ID]; dup {
			return schema.Object{}, decodeErrorf("%s: fields %q and %q share id %d", name, prev, f.Name, f.ID)
		}
		seen[f.ID] = f.Name
		obj.Fields = append(obj.Fields, f)
	}
	return obj, nil
}

func (d *decoder) field(t table) (schema.Field, error) {
	name, ok := t.str(fieldName)
	if !ok {
		return schema.Field{}, decodeErrorf("missing name")
	}
	tt, ok := t.child(fieldType)
	if !ok {
		return schema.Field{}, decodeErrorf("field %q: missing type", name)
	}
	typ, err := d.typ(tt)
	if err != nil {
		return schema.Field{}, errors.Wrapf(err, "field %q", name)
	}
	return schema.Field{
		ID:         t.u16(fieldID),
		Name:       name,
		Type:       typ,
		Key:        t.flag(fieldKey),
		Required:   t.flag(fieldRequired),
		Optional:   t.flag(fieldOptional),
		Deprecated: t.flag(fieldDeprecated),
	}, nil
}

func (d *decoder) typ(t table) (schema.Type, error) {
	typ := schema.Type{
		BaseType:    schema.BaseType(t.u8(typeBaseType)),
		Element:     schema.BaseType(t.u8(typeElement)),
		Index:       t.i32(typeIndex, schema.NoIndex),
		FixedLength: t.u16(typeFixedLength),
	}
	if !typ.BaseType.Valid() {
		return schema.Type{}, decodeErrorf("unknown base type %d", uint8(typ.BaseType))
	}
	if !typ.Element.Valid() {
		return schema.Type{}, decodeErrorf("unknown element type %d", uint8(typ.Element))
	}
	return typ, nil
}

func (d *decoder) enum(t table) (schema.Enum, error) {
	name, ok := t.str(enumName)
	if !ok {
		return schema.Enum{}, decodeErrorf("missing name")
	}
	ut, ok := t.child(enumUnderlyingType)
	if !ok {
		return schema.Enum{}, decodeErrorf("enum %q: missing underlying type", name)
	}
	underlying, err := d.typ(ut)
	if err != nil {
		return schema.Enum{}, errors.Wrapf(err, "enum %q", name)
	}

	n, err := d.vector(t, enumValues, name+".values")
	if err != nil {
		return schema.Enum{}, err
	}
	e := schema.Enum{
		Name:           name,
		UnderlyingType: underlying,
		Values:         make([]int64, 0, n),
	}
	for i := range n {
		e.Values = append(e.Values, t.element(enumValues, i).i64(enumValValue))
	}
	return e, nil
}
