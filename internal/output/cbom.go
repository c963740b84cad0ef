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

package output

import (
	"encoding/json"
	"fmt"

	"github.com/scanoss/cbom-scanner/pkg/schema"
)

// CBOMWriter implements Writer for the CBOM native JSON format: a direct
// serialization of schema.Report. Unlike CycloneDX (see cyclonedx.go) there
// is no standard schema library for this shape to reach for.
type CBOMWriter struct {
	// PrettyPrint enables indented formatting. Default: true.
	PrettyPrint bool

	// Indent specifies the indentation string. Default: "  " (2 spaces).
	Indent string
}

// NewCBOMWriter creates a new CBOM native writer with default settings.
func NewCBOMWriter() *CBOMWriter {
	return &CBOMWriter{
		PrettyPrint: true,
		Indent:      "  ",
	}
}

// Write writes the report in the CBOM native JSON shape.
func (w *CBOMWriter) Write(report *schema.Report, destination string) error {
	if report == nil {
		return fmt.Errorf("report cannot be nil")
	}

	// Round-trip through a generic value so every object's keys are
	// emitted in sorted order (encoding/json sorts map keys).
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}
	var sorted any
	if err := json.Unmarshal(raw, &sorted); err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	var data []byte
	if w.PrettyPrint {
		data, err = json.MarshalIndent(sorted, "", w.Indent)
	} else {
		data, err = json.Marshal(sorted)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	return writeBytes(data, destination)
}
