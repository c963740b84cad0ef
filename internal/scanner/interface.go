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

// Package scanner provides the generic rule-matching scanner and the
// per-language table that parameterizes it (file predicate, grammar, and
// optional hooks).
package scanner

import (
	"context"
	"time"

	"github.com/scanoss/cbom-scanner/internal/model"
)

// Scanner defines the contract every language scanner implements, whether
// it runs the AST path, the regex fallback, or both.
//
// Example usage:
//
//	s := scanner.NewGeneric(scanner.Node())
//	if err := s.Initialize(scanner.Config{IncludeTypeScript: true}); err != nil {
//	    log.Fatal(err)
//	}
//	findings, err := s.Scan(ctx, files, ruleSet, toolInfo)
type Scanner interface {
	// Initialize applies the scan configuration to the scanner.
	// Called once before any Scan call.
	Initialize(config Config) error

	// Scan walks the given files and returns every raw finding the
	// scanner's rule set matches, in no particular order (the orchestrator
	// sorts and dedupes after normalization).
	Scan(ctx context.Context, files []string, ruleSet model.RuleSet, toolInfo model.ToolInfo) ([]model.RawFinding, error)

	// GetInfo returns metadata about this scanner implementation.
	GetInfo() Info
}

// Config holds the configuration parameters for initializing a scanner.
type Config struct {
	// Timeout specifies the maximum duration for a scan operation.
	Timeout time.Duration

	// IncludeTypeScript enables the TypeScript grammar for the Node scanner
	// in addition to JavaScript (the --include-ts flag).
	IncludeTypeScript bool
}

// Info contains metadata about a scanner implementation.
type Info struct {
	// Name is the language this scanner handles, e.g. "node", "go", "python".
	Name string

	// Version is the version of the scanner implementation.
	Version string

	// Description provides a brief explanation of what the scanner detects.
	Description string
}
