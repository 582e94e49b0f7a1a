// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"github.com/cockroachdb/errors"
	"github.com/dacolabs/fbsdump/internal/schema"
)

// ObjectOrder selects the order in which objects are declared.
type ObjectOrder string

const (
	// OrderReverse declares the last decoded object first. Output matches
	// existing FlatSharp schema dumps.
	OrderReverse ObjectOrder = "reverse"
	// OrderDeclaration keeps the decoded storage order.
	OrderDeclaration ObjectOrder = "declaration"
)

// Settings controls how a Graph is rendered.
type Settings struct {
	// Namespace is written as the namespace of both artifacts. Required.
	Namespace string
	// StripNamespace drops the dotted prefix of declared type names.
	StripNamespace bool
	// QualifiedRefs keeps field type references and root_type fully
	// qualified even when StripNamespace is set. This is the legacy-compatible
	// mode: existing FlatSharp schema dumps strip only declared names.
	QualifiedRefs bool
	// ObjectOrder defaults to OrderReverse.
	ObjectOrder ObjectOrder
}

// Validate checks the settings for required fields and valid values.
func (s Settings) Validate() error {
	if s.Namespace == "" {
		return errors.New("namespace is required")
	}
	switch s.ObjectOrder {
	case "", OrderReverse, OrderDeclaration:
	default:
		return errors.Newf("unknown object order %q (want %q or %q)", s.ObjectOrder, OrderReverse, OrderDeclaration)
	}
	return nil
}

// declName formats a declared type name.
func (s Settings) declName(name string) string {
	return schema.ResolveName(name, s.StripNamespace)
}

// refName formats a reference to a declared type.
func (s Settings) refName(name string) string {
	if s.QualifiedRefs {
		return name
	}
	return s.declName(name)
}
