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

package rules

import (
	"fmt"

	"github.com/scanoss/cbom-scanner/internal/model"
)

// RuleSource loads a collection of RuleSets from some backing store:
// a local directory, a remote registry, etc.
type RuleSource interface {
	// Load returns the rule sets contributed by this source.
	Load() ([]model.RuleSet, error)

	// Name returns a human-readable identifier for this source.
	// Used for logging and debugging purposes.
	Name() string
}

// MultiSource merges rule sets from several sources, keyed by language.
// A source later in the list overrides an earlier one for the same language,
// so local rules can override a remote catalogue.
type MultiSource struct {
	sources []RuleSource
}

// NewMultiSource creates a new MultiSource that aggregates rules from multiple sources.
// Sources are merged in the order provided; a later source's language entry
// replaces an earlier one.
func NewMultiSource(sources ...RuleSource) *MultiSource {
	return &MultiSource{
		sources: sources,
	}
}

// Load retrieves and merges rule sets from all configured sources.
// If any source fails to load, the error is returned immediately.
func (m *MultiSource) Load() ([]model.RuleSet, error) {
	byLanguage := make(map[string]model.RuleSet)
	order := make([]string, 0)

	for _, source := range m.sources {
		sets, err := source.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load rules from %s: %w", source.Name(), err)
		}
		for _, set := range sets {
			if _, exists := byLanguage[set.Language]; !exists {
				order = append(order, set.Language)
			}
			byLanguage[set.Language] = set
		}
	}

	merged := make([]model.RuleSet, 0, len(order))
	for _, lang := range order {
		merged = append(merged, byLanguage[lang])
	}
	return merged, nil
}

// Name returns a descriptive name for this multi-source.
func (m *MultiSource) Name() string {
	if len(m.sources) == 0 {
		return "MultiSource(empty)"
	}
	if len(m.sources) == 1 {
		return m.sources[0].Name()
	}
	return fmt.Sprintf("MultiSource(%d sources)", len(m.sources))
}
