// Copyright 2025 SCANOSS
//
// SPDX-License-Identifier: Apache-2.0

// Package deduplicator collapses consecutive canonical findings that
// share the same stable id after the orchestrator's sort-by-id step.
package deduplicator

import "github.com/scanoss/cbom-scanner/internal/model"

// Deduplicate removes consecutive findings with equal IDs from a slice
// already sorted by ID. A finding's ID hashes its file, line, API,
// algorithm, and mode (internal/normalizer), so two findings sharing an
// ID are indistinguishable call-site matches - e.g. the same call site
// matched by more than one rule. Keeping the first is sufficient; there
// is nothing additional to merge.
func Deduplicate(findings []model.CanonicalFinding) []model.CanonicalFinding {
	if len(findings) == 0 {
		return findings
	}

	deduped := make([]model.CanonicalFinding, 0, len(findings))
	deduped = append(deduped, findings[0])

	for i := 1; i < len(findings); i++ {
		if findings[i].ID == findings[i-1].ID {
			continue
		}
		deduped = append(deduped, findings[i])
	}

	return deduped
}
