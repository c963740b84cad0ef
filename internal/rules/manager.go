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

// Manager orchestrates rule loading from multiple sources and exposes the
// merged catalogue indexed by language.
type Manager struct {
	sources []RuleSource
}

// NewManager creates a new rules manager with the specified sources.
// Sources are loaded and merged when Load() is called; later sources win
// on a language collision.
func NewManager(sources ...RuleSource) *Manager {
	return &Manager{
		sources: sources,
	}
}

// Load aggregates rule sets from all configured sources and returns them
// indexed by language.
func (m *Manager) Load() (map[string]model.RuleSet, error) {
	if len(m.sources) == 0 {
		return nil, fmt.Errorf("no rule sources configured")
	}

	multiSource := NewMultiSource(m.sources...)
	sets, err := multiSource.Load()
	if err != nil {
		return nil, err
	}

	byLanguage := make(map[string]model.RuleSet, len(sets))
	for _, set := range sets {
		byLanguage[set.Language] = set
	}
	return byLanguage, nil
}
