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

// Package output serializes a scan report to the CBOM native or CycloneDX
// 1.5 JSON shapes and writes it to stdout or a file.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/scanoss/cbom-scanner/pkg/schema"
)

// Writer defines the interface for formatting and writing a scan report to
// a destination.
//
// Implementations exist for:
//   - cbom: CBOM native JSON
//   - cyclonedx: CycloneDX 1.5 JSON (the scan command's default format)
type Writer interface {
	// Write formats and writes the report to the specified destination.
	//
	// The destination parameter determines where output is written:
	//   - "" (empty string) or "-": stdout
	//   - file path: written to that file
	Write(report *schema.Report, destination string) error
}

// writeBytes writes serialized output to stdout ("" or "-") or to a file,
// shared by every Writer implementation.
func writeBytes(data []byte, destination string) error {
	if destination == "" || destination == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		if _, err := os.Stdout.WriteString("\n"); err != nil {
			return fmt.Errorf("failed to write newline to stdout: %w", err)
		}
		return nil
	}

	absPath, err := filepath.Abs(destination)
	if err != nil {
		return fmt.Errorf("failed to resolve destination path: %w", err)
	}

	parentDir := filepath.Dir(absPath)
	if _, err := os.Stat(parentDir); os.IsNotExist(err) {
		return fmt.Errorf("parent directory does not exist: %s", parentDir)
	}

	if err := os.WriteFile(absPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
