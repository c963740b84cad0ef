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
	"embed"
	"fmt"
	"sort"

	"github.com/scanoss/cbom-scanner/internal/model"
)

//go:embed catalogue/*.yaml
var embeddedCatalogue embed.FS

// EmbeddedSource serves the rule catalogue compiled into the binary via
// go:embed, so a scan has a usable default without any filesystem or
// network dependency. It is always the lowest-priority source in
// cli.runScan's source list: local and remote catalogues, when
// configured, override it per language.
type EmbeddedSource struct {
	fs  embed.FS
	dir string
}

// NewEmbeddedSource creates a rule source backed by the compiled-in
// catalogue directory.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{fs: embeddedCatalogue, dir: "catalogue"}
}

// Load parses every YAML file bundled under catalogue/.
func (e *EmbeddedSource) Load() ([]model.RuleSet, error) {
	entries, err := e.fs.ReadDir(e.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded rule catalogue: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	sets := make([]model.RuleSet, 0, len(names))
	for _, name := range names {
		path := e.dir + "/" + name
		data, err := e.fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded rule file %s: %w", path, err)
		}
		set, err := parseRuleSet(data, path)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// Name returns a descriptive name for this rule source.
func (e *EmbeddedSource) Name() string {
	return "embedded"
}
