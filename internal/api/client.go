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

// Package apiclient provides an HTTP client for the remote rule catalogue registry.
package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-version"
	"github.com/rs/zerolog/log"

	"github.com/scanoss/cbom-scanner/internal/config"
)

const (
	// API endpoints.
	cataloguesEndpointFmt = "/v2/cbom/catalogues/%s/%s/download"

	// MinimumSchemaVersion is the oldest catalogue schema this client understands.
	MinimumSchemaVersion = "1.0.0"

	// HTTP headers - Request.
	headerAPIKey    = "x-api-key"
	headerUserAgent = "user-agent"
	userAgentValue  = "cbom-scanner"

	// HTTP headers - Response.
	headerCatalogueName      = "cbom-catalogue-name"
	headerCatalogueVersion   = "cbom-catalogue-version"
	headerSchemaVersion      = "cbom-schema-version"
	headerChecksumSHA256     = "x-checksum-sha256"
	headerCatalogueCreatedAt = "cbom-catalogue-created-at"
)

// Manifest represents the manifest.json file reconstructed from HTTP headers.
type Manifest struct {
	Name           string    `json:"name"`
	Version        string    `json:"version"`
	SchemaVersion  string    `json:"schema_version"`
	ChecksumSHA256 string    `json:"checksum_sha256"`
	CreatedAt      time.Time `json:"created_at"`
}

// Client is an HTTP client for the remote rule catalogue registry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new API client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: config.DefaultTimeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// DownloadCatalogue downloads a rule catalogue bundle (.tar.gz of YAML rule
// files) from the API. Returns the bundle bytes and the parsed manifest.
func (c *Client) DownloadCatalogue(ctx context.Context, name, version string) ([]byte, *Manifest, error) {
	endpoint := fmt.Sprintf(cataloguesEndpointFmt, name, version)
	url := c.baseURL + endpoint

	log.Debug().
		Str("catalogue", name).
		Str("version", version).
		Str("url", url).
		Msg("Downloading rule catalogue")

	var lastErr error
	delay := config.DefaultRetryDelay

	for attempt := 0; attempt <= config.DefaultMaxRetries; attempt++ {
		if attempt > 0 {
			log.Debug().
				Int("attempt", attempt).
				Dur("delay", delay).
				Msg("Retrying download")

			select {
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			case <-time.After(delay):
			}

			delay *= 2
		}

		bundle, manifest, err := c.doDownload(ctx, url)
		if err == nil {
			if err := c.checkSchemaVersion(manifest); err != nil {
				return nil, nil, err
			}
			return bundle, manifest, nil
		}

		lastErr = err

		if !IsRetryable(err) {
			log.Debug().
				Err(err).
				Msg("Non-retryable error, stopping retries")
			break
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt+1).
			Int("max_retries", config.DefaultMaxRetries).
			Msg("Download failed, will retry")
	}

	return nil, nil, fmt.Errorf("download failed after %d retries: %w", config.DefaultMaxRetries, lastErr)
}

// checkSchemaVersion rejects catalogues whose schema predates what this
// client understands.
func (c *Client) checkSchemaVersion(manifest *Manifest) error {
	minVer, err := version.NewVersion(MinimumSchemaVersion)
	if err != nil {
		return fmt.Errorf("invalid minimum schema version constant: %w", err)
	}

	schemaVer, err := version.NewVersion(manifest.SchemaVersion)
	if err != nil {
		return fmt.Errorf("%w: invalid schema version %q", ErrUnsupportedSchema, manifest.SchemaVersion)
	}

	if schemaVer.LessThan(minVer) {
		return fmt.Errorf("%w: catalogue schema %s is older than minimum supported %s",
			ErrUnsupportedSchema, schemaVer, minVer)
	}

	return nil
}

// doDownload performs a single download attempt.
func (c *Client) doDownload(ctx context.Context, url string) ([]byte, *Manifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerUserAgent, userAgentValue)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, nil, ErrTimeout
		}
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil, c.handleHTTPError(resp, url)
	}

	manifest, err := c.manifestFromHeaders(resp.Header)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reconstruct manifest from headers: %w", err)
	}

	bundle, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	log.Info().
		Str("catalogue", manifest.Name).
		Str("version", manifest.Version).
		Int("size_bytes", len(bundle)).
		Msg("Rule catalogue downloaded successfully")

	if err := resp.Body.Close(); err != nil {
		return nil, nil, fmt.Errorf("failed to close response body: %w", err)
	}

	return bundle, manifest, nil
}

// manifestFromHeaders reconstructs a Manifest from HTTP response headers.
func (c *Client) manifestFromHeaders(headers http.Header) (*Manifest, error) {
	name := c.getHeaderValue(headers, headerCatalogueName)
	if name == "" {
		return nil, fmt.Errorf("missing required header: %s", headerCatalogueName)
	}

	ver := c.getHeaderValue(headers, headerCatalogueVersion)
	if ver == "" {
		return nil, fmt.Errorf("missing required header: %s", headerCatalogueVersion)
	}

	schemaVer := c.getHeaderValue(headers, headerSchemaVersion)
	if schemaVer == "" {
		return nil, fmt.Errorf("missing required header: %s", headerSchemaVersion)
	}

	checksum := c.getHeaderValue(headers, headerChecksumSHA256)
	if checksum == "" {
		return nil, fmt.Errorf("missing required header: %s", headerChecksumSHA256)
	}

	createdAtStr := c.getHeaderValue(headers, headerCatalogueCreatedAt)
	if createdAtStr == "" {
		return nil, fmt.Errorf("missing required header: %s", headerCatalogueCreatedAt)
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s header format (expected RFC3339): %w", headerCatalogueCreatedAt, err)
	}

	return &Manifest{
		Name:           name,
		Version:        ver,
		SchemaVersion:  schemaVer,
		ChecksumSHA256: checksum,
		CreatedAt:      createdAt,
	}, nil
}

// getHeaderValue retrieves a header value, trying both direct and gRPC-prefixed versions.
func (c *Client) getHeaderValue(headers http.Header, headerName string) string {
	if value := headers.Get(headerName); value != "" {
		return value
	}

	grpcHeaderName := "Grpc-Metadata-" + headerName
	return headers.Get(grpcHeaderName)
}

// handleHTTPError converts HTTP status codes to appropriate errors.
func (c *Client) handleHTTPError(resp *http.Response, url string) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	message := string(body)
	if message == "" {
		message = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServerError, message)
	default:
		return NewHTTPError(resp.StatusCode, message, url)
	}
}
