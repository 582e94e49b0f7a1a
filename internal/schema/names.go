// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schema

import "strings"

// ResolveName returns name unchanged, or with its namespace removed when
// strip is set: everything up to and including the last '.'.
func ResolveName(name string, strip bool) string {
	if !strip {
		return name
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}
