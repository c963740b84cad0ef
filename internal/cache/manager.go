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

// Package cache manages the local on-disk cache of downloaded rule catalogue bundles.
package cache

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	api "github.com/scanoss/cbom-scanner/internal/api"
	"github.com/scanoss/cbom-scanner/internal/config"
	"github.com/scanoss/cbom-scanner/internal/utils"
)

const (
	metadataFileName = ".cache-meta.json"
	manifestFileName = "manifest.json"
	tempSuffix       = ".tmp"
)

// Manager manages the local cache of downloaded rule catalogue bundles.
type Manager struct {
	apiClient   *api.Client
	cacheDir    string
	noCache     bool
	maxStaleAge time.Duration
}

// NewManager creates a new cache manager.
func NewManager(apiClient *api.Client) (*Manager, error) {
	cacheDir, err := config.GetRulesetsDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache directory: %w", err)
	}

	return &Manager{
		apiClient:   apiClient,
		cacheDir:    cacheDir,
		maxStaleAge: config.DefaultMaxStaleCacheAge,
	}, nil
}

// SetNoCache forces every GetCataloguePath call to bypass a fresh cache hit
// and re-download, while still tolerating a stale cache on network failure.
func (m *Manager) SetNoCache(noCache bool) {
	m.noCache = noCache
}

// SetMaxStaleCacheAge overrides how old a cached bundle may be before it is
// refused as a fallback when a download fails. Clamped to config.MaxStaleCacheAge.
func (m *Manager) SetMaxStaleCacheAge(age time.Duration) {
	if age > config.MaxStaleCacheAge {
		age = config.MaxStaleCacheAge
	}
	m.maxStaleAge = age
}

// GetCataloguePath returns the path to a cached rule catalogue bundle directory.
// If the bundle is not cached, expired, or noCache is set, it is downloaded and
// checksum-verified first. A download failure falls back to a stale cache if one
// exists and is not older than the configured maximum stale age.
func (m *Manager) GetCataloguePath(ctx context.Context, name, version string) (string, error) {
	cataloguePath := m.getCataloguesCachePath(name, version)
	metadataPath := filepath.Join(cataloguePath, metadataFileName)

	if !m.noCache && m.isCacheValid(cataloguePath, metadataPath) {
		log.Debug().
			Str("catalogue", name).
			Str("version", version).
			Str("path", cataloguePath).
			Msg("Using cached rule catalogue")

		if err := m.updateLastAccessed(metadataPath); err != nil {
			log.Warn().Err(err).Msg("Failed to update last accessed time")
		}

		return cataloguePath, nil
	}

	log.Info().
		Str("catalogue", name).
		Str("version", version).
		Msg("Downloading rule catalogue")

	if err := m.downloadAndCache(ctx, name, version, cataloguePath); err != nil {
		if fallbackErr := m.staleFallback(cataloguePath, metadataPath); fallbackErr == nil {
			log.Warn().
				Err(err).
				Str("catalogue", name).
				Str("version", version).
				Msg("Download failed, falling back to stale cache")
			return cataloguePath, nil
		}
		return "", fmt.Errorf("failed to download rule catalogue: %w", err)
	}

	return cataloguePath, nil
}

// staleFallback returns nil if a cached bundle exists, contains at least one
// rule file, and is not older than the configured maximum stale age,
// regardless of TTL expiry. On success it updates the bundle's last-accessed
// time.
func (m *Manager) staleFallback(cataloguePath, metadataPath string) error {
	if _, err := os.Stat(cataloguePath); err != nil {
		return err
	}
	metadata, err := LoadMetadata(metadataPath)
	if err != nil {
		return err
	}
	if metadata.IsTooStale(m.maxStaleAge) {
		return fmt.Errorf("cached bundle is older than max stale age %s", m.maxStaleAge)
	}
	if err := utils.ValidateRuleDirNotEmpty(cataloguePath); err != nil {
		return err
	}
	if err := m.updateLastAccessed(metadataPath); err != nil {
		log.Warn().Err(err).Msg("Failed to update last accessed time")
	}
	return nil
}

// getCataloguesCachePath returns the cache path for a specific rule catalogue.
func (m *Manager) getCataloguesCachePath(name, version string) string {
	return filepath.Join(m.cacheDir, name, version)
}

// isCacheValid checks if the cached bundle is valid (exists, not expired, checksum matches).
func (m *Manager) isCacheValid(cataloguePath, metadataPath string) bool {
	if _, err := os.Stat(cataloguePath); os.IsNotExist(err) {
		return false
	}

	metadata, err := LoadMetadata(metadataPath)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to load cache metadata")
		return false
	}

	if metadata.IsExpired() {
		log.Debug().
			Str("catalogue", metadata.CatalogueName).
			Str("version", metadata.Version).
			Time("downloaded_at", metadata.DownloadedAt).
			Msg("Cache expired")
		return false
	}

	return true
}

// updateLastAccessed updates the last accessed timestamp in the metadata.
func (m *Manager) updateLastAccessed(metadataPath string) error {
	metadata, err := LoadMetadata(metadataPath)
	if err != nil {
		return err
	}

	metadata.UpdateLastAccessed()
	return metadata.Save(metadataPath)
}

// downloadAndCache downloads a rule catalogue bundle and caches it.
func (m *Manager) downloadAndCache(ctx context.Context, name, version, targetPath string) error {
	bundle, manifest, err := m.apiClient.DownloadCatalogue(ctx, name, version)
	if err != nil {
		return err
	}

	if err := VerifyChecksum(bundle, manifest.ChecksumSHA256); err != nil {
		log.Error().
			Err(err).
			Str("catalogue", name).
			Str("version", version).
			Msg("Checksum verification failed")
		return fmt.Errorf("%w: %s", api.ErrInvalidChecksum, err.Error())
	}

	log.Debug().
		Str("catalogue", name).
		Str("version", version).
		Str("checksum", manifest.ChecksumSHA256).
		Msg("Checksum verified successfully")

	tempPath := targetPath + tempSuffix
	if err := m.extractTarball(bundle, tempPath); err != nil {
		if removeErr := os.RemoveAll(tempPath); removeErr != nil {
			log.Error().Err(removeErr).Str("catalogue", name).Msg("Failed to clean up temporary directory")
		}
		return fmt.Errorf("failed to extract bundle: %w", err)
	}

	ttl := m.getTTL(version)
	metadata := NewMetadata(name, version, manifest.ChecksumSHA256, int64(ttl.Seconds()))
	metadataPath := filepath.Join(tempPath, metadataFileName)
	if err := metadata.Save(metadataPath); err != nil {
		if removeErr := os.RemoveAll(tempPath); removeErr != nil {
			log.Error().Err(removeErr).Str("catalogue", name).Msg("Failed to clean up temporary directory")
		}
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	manifestPath := filepath.Join(tempPath, manifestFileName)
	if err := m.saveManifest(manifest, manifestPath); err != nil {
		if removeErr := os.RemoveAll(tempPath); removeErr != nil {
			log.Error().Err(removeErr).Str("catalogue", name).Msg("Failed to clean up temporary directory")
		}
		return fmt.Errorf("failed to save manifest: %w", err)
	}

	if _, err := os.Stat(targetPath); err == nil {
		if err := os.RemoveAll(targetPath); err != nil {
			log.Warn().Err(err).Str("path", targetPath).Msg("Failed to remove old cache")
		}
	}

	if err := os.Rename(tempPath, targetPath); err != nil {
		if removeErr := os.RemoveAll(tempPath); removeErr != nil {
			log.Error().Err(removeErr).Str("catalogue", name).Msg("Failed to clean up temporary directory")
		}
		return fmt.Errorf("failed to move cache to final location: %w", err)
	}

	log.Info().
		Str("catalogue", name).
		Str("version", version).
		Str("path", targetPath).
		Msg("Rule catalogue cached successfully")

	return nil
}

// extractTarball extracts a .tar.gz bundle to the specified directory.
//
//nolint:gocognit,gocyclo // Ignore complexity
func (m *Manager) extractTarball(bundle []byte, targetDir string) error {
	if err := os.MkdirAll(targetDir, 0o750); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	gzr, err := gzip.NewReader(newBytesReader(bundle))
	if err != nil {
		return fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzr.Close()

	tr := tar.NewReader(gzr)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read tar header: %w", err)
		}

		cleanName := filepath.Clean(header.Name)
		if strings.HasPrefix(cleanName, "..") {
			log.Warn().Str("file", header.Name).Msg("Skipping file with invalid path")
			continue
		}

		baseName := filepath.Base(cleanName)
		if strings.HasPrefix(baseName, "._") || baseName == ".DS_Store" {
			log.Debug().Str("file", header.Name).Msg("Skipping macOS metadata file")
			continue
		}

		target := filepath.Join(targetDir, cleanName)

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, os.FileMode(header.Mode)); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}

		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
				return fmt.Errorf("failed to create parent directory for %s: %w", target, err)
			}

			outFile, err := os.Create(target)
			if err != nil {
				return fmt.Errorf("failed to create file %s: %w", target, err)
			}

			if _, err := io.Copy(outFile, tr); err != nil {
				outFile.Close()
				return fmt.Errorf("failed to write file %s: %w", target, err)
			}

			outFile.Close()

			if err := os.Chmod(target, os.FileMode(header.Mode)); err != nil {
				log.Warn().Err(err).Str("file", target).Msg("Failed to set file permissions")
			}
		}
	}

	return nil
}

// saveManifest saves the manifest to a JSON file.
func (m *Manager) saveManifest(manifest *api.Manifest, path string) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest file: %w", err)
	}

	log.Debug().Str("path", path).Msg("Manifest saved successfully")

	return nil
}

// getTTL returns the appropriate TTL for a version.
// "latest" gets a short TTL, pinned versions get a long one.
func (m *Manager) getTTL(version string) time.Duration {
	if version == "latest" {
		return config.DefaultLatestCacheTTL
	}
	return config.DefaultCacheTTL
}

// newBytesReader creates an io.Reader from a byte slice.
func newBytesReader(data []byte) io.Reader {
	return &bytesReader{data: data, pos: 0}
}

type bytesReader struct {
	data []byte
	pos  int
}

func (r *bytesReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
