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
	"context"
	"fmt"

	"github.com/scanoss/cbom-scanner/internal/cache"
	"github.com/scanoss/cbom-scanner/internal/model"
)

// RemoteSource fetches a versioned rule catalogue bundle via the cache manager
// (downloading and checksum-verifying it through the API client on a cache miss)
// and parses every YAML file found in the cached bundle directory.
type RemoteSource struct {
	catalogueName string
	version       string
	cacheManager  *cache.Manager
	ctx           context.Context
}

// NewRemoteSource creates a new remote rule source.
//
// Parameters:
//   - ctx: Context for API requests and cancellation
//   - catalogueName: Name of the rule catalogue to fetch (e.g., "core")
//   - version: Version of the catalogue (e.g., "latest", "v1.0.0")
//   - cacheManager: Cache manager for downloading and caching the bundle
func NewRemoteSource(
	ctx context.Context,
	catalogueName string,
	version string,
	cacheManager *cache.Manager,
) *RemoteSource {
	return &RemoteSource{
		catalogueName: catalogueName,
		version:       version,
		cacheManager:  cacheManager,
		ctx:           ctx,
	}
}

// Load retrieves the cached bundle directory (downloading it first if necessary)
// and parses every rule file it contains.
func (r *RemoteSource) Load() ([]model.RuleSet, error) {
	bundlePath, err := r.cacheManager.GetCataloguePath(r.ctx, r.catalogueName, r.version)
	if err != nil {
		return nil, fmt.Errorf("failed to get rule catalogue '%s@%s': %w", r.catalogueName, r.version, err)
	}

	sets, err := LoadDir(bundlePath)
	if err != nil {
		return nil, err
	}
	return sets, nil
}

// Name returns a human-readable identifier for this source.
func (r *RemoteSource) Name() string {
	return fmt.Sprintf("remote:%s@%s", r.catalogueName, r.version)
}
