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

package engine

import (
	"sort"

	"github.com/scanoss/cbom-scanner/internal/deduplicator"
	"github.com/scanoss/cbom-scanner/internal/model"
	"github.com/scanoss/cbom-scanner/internal/normalizer"
	"github.com/scanoss/cbom-scanner/pkg/schema"
)

// Processor normalizes, sorts, and deduplicates the raw findings
// gathered from every language scanner into the final report.
type Processor struct{}

// NewProcessor creates a new result processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// Process normalizes every raw finding to its canonical form, stable-sorts
// the result by id, and deduplicates consecutive equal ids (spec.md §4.6).
func (p *Processor) Process(tool model.ToolInfo, raw []model.RawFinding) *schema.Report {
	canonical := make([]model.CanonicalFinding, 0, len(raw))
	for _, r := range raw {
		canonical = append(canonical, normalizer.Normalize(r))
	}

	sort.SliceStable(canonical, func(i, j int) bool {
		return canonical[i].ID < canonical[j].ID
	})

	canonical = deduplicator.Deduplicate(canonical)

	return schema.NewReport(tool, canonical)
}
