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
	"os"
	"path/filepath"
	"strings"

	"github.com/scanoss/cbom-scanner/internal/model"
)

// LocalSource loads and parses rule catalogue files from individual paths
// and/or whole directories.
type LocalSource struct {
	rulePaths []string
	ruleDirs  []string
}

// NewLocalSource creates a new local rule source.
//
// Parameters:
//   - rulePaths: Individual rule file paths (from --rules flags)
//   - ruleDirs: Rule directory paths (from --rules-dir flags)
func NewLocalSource(rulePaths, ruleDirs []string) *LocalSource {
	return &LocalSource{
		rulePaths: rulePaths,
		ruleDirs:  ruleDirs,
	}
}

// Load validates and parses rule files from individual paths and directories.
func (l *LocalSource) Load() ([]model.RuleSet, error) {
	sets := make([]model.RuleSet, 0)

	for _, rulePath := range l.rulePaths {
		absPath, err := l.validateRuleFile(rulePath)
		if err != nil {
			return nil, fmt.Errorf("invalid rule file '%s': %w", rulePath, err)
		}
		set, err := LoadFile(absPath)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}

	for _, ruleDir := range l.ruleDirs {
		absPath, err := l.validateRuleDir(ruleDir)
		if err != nil {
			return nil, fmt.Errorf("invalid rule directory '%s': %w", ruleDir, err)
		}
		dirSets, err := LoadDir(absPath)
		if err != nil {
			return nil, err
		}
		if len(dirSets) == 0 {
			return nil, fmt.Errorf("rule directory '%s' contains no rule files (.yaml or .yml)", ruleDir)
		}
		sets = append(sets, dirSets...)
	}

	if len(sets) == 0 {
		return nil, fmt.Errorf("no rules specified: use --rules <file> or --rules-dir <directory>")
	}

	return sets, nil
}

// Name returns a descriptive name for this rule source.
func (l *LocalSource) Name() string {
	totalFiles := len(l.rulePaths)
	totalDirs := len(l.ruleDirs)

	switch {
	case totalFiles > 0 && totalDirs > 0:
		return fmt.Sprintf("local(%d files, %d dirs)", totalFiles, totalDirs)
	case totalFiles > 0:
		return fmt.Sprintf("local(%d files)", totalFiles)
	case totalDirs > 0:
		return fmt.Sprintf("local(%d dirs)", totalDirs)
	default:
		return "local(empty)"
	}
}

func (l *LocalSource) validateRuleFile(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file does not exist")
		}
		return "", fmt.Errorf("cannot access file: %w", err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file (use --rules-dir for directories)")
	}

	if !isValidRuleExtension(absPath) {
		return "", fmt.Errorf("invalid file extension (expected .yaml or .yml)")
	}

	return absPath, nil
}

func (l *LocalSource) validateRuleDir(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("directory does not exist")
		}
		return "", fmt.Errorf("cannot access directory: %w", err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory")
	}

	return absPath, nil
}

func isValidRuleExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
