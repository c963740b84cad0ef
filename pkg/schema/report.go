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

// Package schema defines the CBOM-native wire format produced by a scan:
// the sorted, deduplicated list of canonical findings plus tool metadata.
package schema

import "github.com/scanoss/cbom-scanner/internal/model"

// Report is the top-level output of a scan, in the CBOM native shape.
type Report struct {
	// Version of the report schema.
	Version string `json:"version"`

	// Tool contains information about the scanner that generated this report.
	Tool model.ToolInfo `json:"tool"`

	// Findings is the sorted, deduplicated list of canonical findings.
	Findings []model.CanonicalFinding `json:"findings"`
}

// ReportVersion is the current CBOM native report schema version.
const ReportVersion = "1.0"

// NewReport builds a Report from a tool identity and a findings list.
func NewReport(tool model.ToolInfo, findings []model.CanonicalFinding) *Report {
	if findings == nil {
		findings = []model.CanonicalFinding{}
	}
	return &Report{
		Version:  ReportVersion,
		Tool:     tool,
		Findings: findings,
	}
}
