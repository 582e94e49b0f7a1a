// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/fbsdump/internal/schema"
)

// Prepare converts a Graph into SchemaData ready for template execution.
// It resolves every type up front, so an invariant violation is reported
// before any translator writes output. The Graph is not modified.
func Prepare(g *schema.Graph, s Settings) (*SchemaData, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	r := &Resolver{Graph: g, Name: s.refName}

	data := &SchemaData{
		Namespace:   s.Namespace,
		FileIdent:   g.FileIdent,
		FileExt:     g.FileExt,
		ObjectCount: len(g.Objects),
		EnumCount:   len(g.Enums),
		Enums:       make([]EnumDef, 0, len(g.Enums)),
		Defs:        make([]TypeDef, 0, len(g.Objects)),
	}

	for _, e := range g.Enums {
		def, err := prepareEnum(r, s, e)
		if err != nil {
			return nil, errors.Wrapf(err, "enum %s", e.Name)
		}
		data.Enums = append(data.Enums, def)
	}

	for _, i := range objectOrder(len(g.Objects), s.ObjectOrder) {
		obj := g.Objects[i]
		def, err := prepareObject(r, s, obj)
		if err != nil {
			return nil, errors.Wrapf(err, "object %s", obj.Name)
		}
		def.Root = g.RootTable != "" && obj.Name == g.RootTable
		data.Defs = append(data.Defs, def)
	}

	if g.RootTable != "" {
		data.RootType = s.refName(g.RootTable)
	}

	return data, nil
}

func prepareEnum(r *Resolver, s Settings, e schema.Enum) (EnumDef, error) {
	underlying, err := r.Type(e.UnderlyingType, false)
	if err != nil {
		return EnumDef{}, err
	}

	values := make([]EnumValue, len(e.Values))
	for j, v := range e.Values {
		values[j] = EnumValue{Ordinal: j, Value: v}
	}

	return EnumDef{
		Name:       s.declName(e.Name),
		Underlying: underlying,
		Values:     values,
	}, nil
}

func prepareObject(r *Resolver, s Settings, obj schema.Object) (TypeDef, error) {
	sorted := slices.Clone(obj.Fields)
	slices.SortStableFunc(sorted, func(a, b schema.Field) int {
		return cmp.Compare(a.ID, b.ID)
	})

	fields := make([]Field, 0, len(sorted))
	for _, f := range sorted {
		typ, err := r.Type(f.Type, true)
		if err != nil {
			return TypeDef{}, errors.Wrapf(err, "field %s", f.Name)
		}
		fields = append(fields, Field{
			ID:         f.ID,
			Name:       f.Name,
			Type:       typ,
			Attributes: fieldAttributes(f),
		})
	}

	return TypeDef{
		Name:     s.declName(obj.Name),
		IsStruct: obj.IsStruct,
		Fields:   fields,
	}, nil
}

// fieldAttributes lists the true flags in declaration-syntax order.
func fieldAttributes(f schema.Field) []string {
	var attrs []string
	if f.Key {
		attrs = append(attrs, "key")
	}
	if f.Required {
		attrs = append(attrs, "required")
	}
	if f.Optional {
		attrs = append(attrs, "optional")
	}
	if f.Deprecated {
		attrs = append(attrs, "deprecated")
	}
	return attrs
}

// objectOrder returns the storage indices of n objects in emission order.
func objectOrder(n int, order ObjectOrder) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if order != OrderDeclaration {
		slices.Reverse(idx)
	}
	return idx
}
