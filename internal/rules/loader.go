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

// Package rules loads declarative per-language crypto call-site catalogues and
// aggregates them from local directories and an optional remote registry.
package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scanoss/cbom-scanner/internal/model"
)

// ConfigError marks a rule-catalogue load failure that should abort the scan.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rule catalogue error in %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

type yamlRuleSet struct {
	Language string         `yaml:"language"`
	Imports  []string       `yaml:"imports"`
	Calls    []yamlCallRule `yaml:"calls"`
}

type yamlCallRule struct {
	ID          string         `yaml:"id"`
	Call        string         `yaml:"call"`
	API         string         `yaml:"api"`
	Library     string         `yaml:"library"`
	AssetType   string         `yaml:"asset_type"`
	Confidence  string         `yaml:"confidence"`
	Algorithm   string         `yaml:"algorithm"`
	Mode        string         `yaml:"mode"`
	KeySizeBits string         `yaml:"key_size_bits"`
	ArgIndexes  map[string]any `yaml:"arg_indexes"`
}

// LoadFile parses a single YAML rule-catalogue file into a RuleSet.
// Unknown YAML fields are ignored. A missing api defaults to call, a missing
// confidence defaults to LOW. arg_indexes entries that do not coerce to a
// non-negative integer are dropped silently rather than failing the rule.
func LoadFile(path string) (model.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.RuleSet{}, &ConfigError{Path: path, Err: err}
	}
	return parseRuleSet(data, path)
}

// parseRuleSet parses YAML rule-catalogue bytes into a RuleSet. path is
// only used to annotate a ConfigError; it need not be a real filesystem
// path (the embedded catalogue source passes its embed.FS entry name).
func parseRuleSet(data []byte, path string) (model.RuleSet, error) {
	var raw yamlRuleSet
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return model.RuleSet{}, &ConfigError{Path: path, Err: fmt.Errorf("invalid YAML: %w", err)}
	}

	if raw.Language == "" {
		return model.RuleSet{}, &ConfigError{Path: path, Err: fmt.Errorf("missing required field: language")}
	}

	set := model.RuleSet{
		Language: strings.ToLower(strings.TrimSpace(raw.Language)),
		Imports:  raw.Imports,
		Calls:    make([]model.Rule, 0, len(raw.Calls)),
	}

	for _, c := range raw.Calls {
		rule := model.Rule{
			ID:          c.ID,
			Call:        c.Call,
			API:         c.API,
			Library:     c.Library,
			AssetType:   c.AssetType,
			Confidence:  c.Confidence,
			Algorithm:   c.Algorithm,
			Mode:        c.Mode,
			KeySizeBits: c.KeySizeBits,
		}
		if rule.API == "" {
			rule.API = rule.Call
		}
		if rule.Confidence == "" {
			rule.Confidence = "LOW"
		}
		rule.ArgIndexes = coerceArgIndexes(c.ArgIndexes)
		set.Calls = append(set.Calls, rule)
	}

	return set, nil
}

// coerceArgIndexes keeps only the entries whose value coerces to a non-negative int.
func coerceArgIndexes(raw map[string]any) map[string]int {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]int, len(raw))
	for key, value := range raw {
		n, ok := asNonNegativeInt(value)
		if !ok {
			continue
		}
		out[key] = n
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func asNonNegativeInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, v >= 0
	case int64:
		return int(v), v >= 0
	case float64:
		n := int(v)
		return n, v >= 0 && float64(n) == v
	default:
		return 0, false
	}
}

// LoadDir walks a directory non-recursively for <language>.yaml / <language>.yml
// files and parses each one into a RuleSet.
func LoadDir(dir string) ([]model.RuleSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ConfigError{Path: dir, Err: err}
	}

	sets := make([]model.RuleSet, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		set, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}
