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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/scanoss/cbom-scanner/internal/language"
	"github.com/scanoss/cbom-scanner/internal/skip"
)

// sampleSize bounds how many bytes of a file are read for the vendor/
// generated/binary heuristics.
const sampleSize = 512 * 1024

// enumerateFiles walks target and returns every regular file that is
// not skipped by matcher and not excluded as vendor/generated/doc/binary
// by filter. A single file target is returned as a one-element slice.
func enumerateFiles(target string, matcher skip.SkipMatcher, filter *language.VendorFilter) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("failed to access target path: %w", err)
	}

	if !info.IsDir() {
		if filter.Exclude(target, readSample(target)) {
			return []string{}, nil
		}
		return []string{target}, nil
	}

	var files []string
	err = filepath.WalkDir(target, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			log.Warn().Err(walkErr).Str("path", path).Msg("permission denied or error accessing path")
			return nil
		}

		if entry.IsDir() {
			if matcher.ShouldSkip(path, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if !entry.Type().IsRegular() || matcher.ShouldSkip(path, false) {
			return nil
		}

		if filter.Exclude(path, readSample(path)) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk target path: %w", err)
	}

	return files, nil
}

// readSample reads up to sampleSize bytes of path for content-based
// filtering, returning nil (not an error) when the file cannot be read.
func readSample(path string) []byte {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() {
		_ = file.Close()
	}()

	buf := make([]byte, sampleSize)
	n, err := file.Read(buf)
	if err != nil && n == 0 {
		return nil
	}
	return buf[:n]
}
