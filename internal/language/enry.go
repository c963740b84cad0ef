// Copyright (C) 2026 SCANOSS.COM
// SPDX-License-Identifier: GPL-2.0-only
//
// This program is free software; you can redistribute it and/or
// modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301, USA.

// Package language filters vendor, generated, documentation, and binary
// files out of a repository's file enumeration using go-enry.
package language

import (
	"github.com/go-enry/go-enry/v2"
)

// VendorFilter decides whether a file should be excluded from scanning
// because it is vendored, generated, documentation, or binary rather
// than first-party source a developer wrote.
type VendorFilter struct{}

// NewVendorFilter creates a new VendorFilter.
func NewVendorFilter() *VendorFilter {
	return &VendorFilter{}
}

// Exclude reports whether path should be skipped during file enumeration.
// content may be nil; when present it sharpens the IsGenerated heuristic
// (which inspects file contents for generator markers).
func (f *VendorFilter) Exclude(path string, content []byte) bool {
	if enry.IsVendor(path) {
		return true
	}
	if enry.IsDocumentation(path) {
		return true
	}
	if enry.IsGenerated(path, content) {
		return true
	}
	if content != nil && enry.IsBinary(content) {
		return true
	}
	return false
}
