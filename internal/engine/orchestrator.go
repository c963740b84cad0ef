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

// Package engine coordinates the scanning workflow: file enumeration,
// rule catalogue loading, the fixed per-language scanner fan-out, and
// normalization of the combined findings into a final report.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/scanoss/cbom-scanner/internal/language"
	"github.com/scanoss/cbom-scanner/internal/model"
	"github.com/scanoss/cbom-scanner/internal/rules"
	"github.com/scanoss/cbom-scanner/internal/scanner"
	"github.com/scanoss/cbom-scanner/internal/skip"
	"github.com/scanoss/cbom-scanner/internal/version"
	"github.com/scanoss/cbom-scanner/pkg/schema"
)

// Orchestrator coordinates the entire scanning workflow: it enumerates
// candidate files once, loads the rule catalogue, and fans out over the
// registered language scanners in scanner.Order, merging and
// normalizing their findings into a single report.
type Orchestrator struct {
	rulesManager *rules.Manager
	scannerReg   *scanner.Registry
	skipMatcher  skip.SkipMatcher
	vendorFilter *language.VendorFilter
	processor    *Processor
}

// NewOrchestrator creates a new orchestrator with the required dependencies.
func NewOrchestrator(
	rulesManager *rules.Manager,
	scannerReg *scanner.Registry,
	skipMatcher skip.SkipMatcher,
) *Orchestrator {
	return &Orchestrator{
		rulesManager: rulesManager,
		scannerReg:   scannerReg,
		skipMatcher:  skipMatcher,
		vendorFilter: language.NewVendorFilter(),
		processor:    NewProcessor(),
	}
}

// ScanOptions contains all configuration options for a scan operation.
type ScanOptions struct {
	// Target is the directory or file to scan.
	Target string

	// IncludeTypeScript additionally scans .ts/.tsx files under the
	// node language scanner (off by default: TypeScript call-site
	// matching has a higher false-positive rate against plain JS rules).
	IncludeTypeScript bool

	// Languages restricts the scan to this subset of scanner.Order,
	// when non-empty.
	Languages []string

	// Timeout bounds each scanner's Scan call, passed through to
	// scanner.Config.
	Timeout time.Duration
}

// Scan orchestrates the complete scanning workflow.
//
// Workflow:
//  1. Enumerate candidate files (skip patterns + vendor/generated/binary filtering)
//  2. Load and merge the rule catalogue
//  3. Fan out over the registered language scanners in fixed order
//  4. Normalize, sort, and deduplicate the combined findings
func (o *Orchestrator) Scan(ctx context.Context, opts ScanOptions) (*schema.Report, error) {
	files, err := enumerateFiles(opts.Target, o.skipMatcher, o.vendorFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate files: %w", err)
	}
	log.Info().Int("files", len(files)).Str("target", opts.Target).Msg("file enumeration complete")

	ruleSets, err := o.rulesManager.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load rule catalogue: %w", err)
	}

	langs := scanner.Order
	if len(opts.Languages) > 0 {
		langs = opts.Languages
	}

	toolInfo := model.ToolInfo{Name: version.ToolName, Version: version.Version}
	scanCfg := scanner.Config{Timeout: opts.Timeout, IncludeTypeScript: opts.IncludeTypeScript}

	var raw []model.RawFinding
	for _, langName := range langs {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		ruleSet, ok := ruleSets[langName]
		if !ok {
			continue
		}

		sc, err := o.scannerReg.Get(langName)
		if err != nil {
			log.Debug().Str("language", langName).Msg("no scanner registered for this language, skipping")
			continue
		}

		if err := sc.Initialize(scanCfg); err != nil {
			return nil, fmt.Errorf("failed to initialize scanner %q: %w", langName, err)
		}

		findings, err := sc.Scan(ctx, files, ruleSet, toolInfo)
		if err != nil {
			return nil, fmt.Errorf("scan failed for language %q: %w", langName, err)
		}
		log.Debug().Str("language", langName).Int("findings", len(findings)).Msg("language scan complete")
		raw = append(raw, findings...)
	}

	return o.processor.Process(toolInfo, raw), nil
}
