// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dacolabs/fbsdump/internal/schema"
)

// ErrInvariantViolation marks a type descriptor that has no mapping to IDL
// syntax. Emission is total over a well-formed Graph, so this is always a
// programming defect upstream (decoder or graph construction).
var ErrInvariantViolation = errors.New("schema invariant violation")

func invariantf(format string, args ...any) error {
	return errors.Mark(errors.AssertionFailedf(format, args...), ErrInvariantViolation)
}

// Resolver maps type descriptors to IDL type syntax.
type Resolver struct {
	Graph *schema.Graph
	// Name formats the names of referenced objects and enums.
	Name func(string) string
}

// Type resolves t. With symbolic unset, enum-typed scalars resolve to their
// primitive keyword instead of the enum name; this is how an enum's own
// underlying type is printed.
func (r *Resolver) Type(t schema.Type, symbolic bool) (string, error) {
	switch {
	case t.IsContainer():
		if t.Element.IsContainer() || t.Element == schema.None {
			return "", invariantf("%s with element type %s", t.BaseType, t.Element)
		}
		elem, err := r.Type(schema.Type{BaseType: t.Element, Index: t.Index}, symbolic)
		if err != nil {
			return "", err
		}
		if t.FixedLength > 0 {
			return "[" + elem + ":" + strconv.Itoa(int(t.FixedLength)) + "]", nil
		}
		return "[" + elem + "]", nil

	case t.BaseType == schema.Obj:
		if t.Index < 0 || int(t.Index) >= len(r.Graph.Objects) {
			return "", invariantf("object index %d out of range [0,%d)", t.Index, len(r.Graph.Objects))
		}
		return r.name(r.Graph.Objects[t.Index].Name), nil

	case symbolic && t.IsEnumRef():
		if int(t.Index) >= len(r.Graph.Enums) {
			return "", invariantf("enum index %d out of range [0,%d)", t.Index, len(r.Graph.Enums))
		}
		return r.name(r.Graph.Enums[t.Index].Name), nil
	}

	kw, ok := t.BaseType.Keyword()
	if !ok {
		return "", invariantf("no keyword for base type %s", t.BaseType)
	}
	return kw, nil
}

func (r *Resolver) name(n string) string {
	if r.Name == nil {
		return n
	}
	return r.Name(n)
}
