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

package normalizer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/scanoss/cbom-scanner/internal/model"
)

// unknown is the sentinel standing in for any absent canonical field.
const unknown = "UNKNOWN"

// combinedSignature captures the digest size N from the sha<N> token of a
// combined signature-algorithm spelling such as "rsa-sha256" or
// "SHA256withRSA"; the RSA or ECDSA token is found by signatureAlgorithm.
var combinedSignature = regexp.MustCompile(`sha(\d+)`)

// algoResolution is the result of the ordered algorithm discrimination:
// the canonical algorithm, and any mode/asset-type it implies.
type algoResolution struct {
	Algorithm   string
	Mode        string
	KeySizeBits string
	AssetType   string
}

// Normalize folds a RawFinding into its canonical form: the ordered
// algorithm discrimination, mode/key-size canonicalization, and the
// stable SHA-256 id over file|line|api|algorithm|mode.
func Normalize(raw model.RawFinding) model.CanonicalFinding {
	resolution := resolveAlgorithm(raw)
	mode := resolveMode(raw, resolution)
	keySize := resolveKeySize(raw, resolution)
	assetType := resolveAssetType(raw, resolution)

	if mode == "" {
		mode = unknown
	}
	if keySize == "" {
		keySize = unknown
	}

	finding := model.CanonicalFinding{
		AssetType:   assetType,
		Algorithm:   resolution.Algorithm,
		Mode:        mode,
		KeySizeBits: keySize,
		Library:     raw.Library,
		API:         raw.API,
		Confidence:  confidenceOrDefault(raw.Confidence),
		Evidence: model.Evidence{
			File:     raw.File,
			Line:     raw.Line,
			Column:   raw.Column,
			Function: raw.Function,
			Snippet:  strings.TrimRight(raw.Snippet, " \t"),
		},
		Notes: raw.Notes,
	}
	finding.ID = stableID(finding.Evidence.File, finding.Evidence.Line, finding.API, finding.Algorithm, finding.Mode)
	return finding
}

// resolveAlgorithm applies spec's nine-step ordered discrimination to the
// raw algorithm literal:
//
//  1. absent -> UNKNOWN
//  2. aes-/aes_/aes/ prefix -> AES parser, asset type SYMMETRIC
//  3. evp_ prefix -> strip prefix/trailing (), recurse on the remainder
//  4. compact form (dash/underscore stripped) is a taxonomy key -> map it
//  5. starts with "sha", contains no dash, is a taxonomy key -> map it
//  6. lowered form is a taxonomy key -> map it (chacha20-poly1305 sets
//     mode to POLY1305)
//  7. starts with chacha20 and contains poly1305 -> CHACHA20/POLY1305/AEAD
//  8. combined signature spelling (rsa/ecdsa + sha<N>) -> split
//  9. fallback: uppercase the literal as-is
func resolveAlgorithm(raw model.RawFinding) algoResolution {
	literal := stringValue(raw.Algorithm)
	if literal == "" {
		return algoResolution{Algorithm: unknown}
	}
	return discriminate(literal)
}

func discriminate(literal string) algoResolution {
	lower := strings.ToLower(strings.TrimSpace(literal))

	if hasAESPrefix(lower) {
		alg, mode, keySize := parseAES(lower)
		return algoResolution{Algorithm: alg, Mode: mode, KeySizeBits: keySize, AssetType: "SYMMETRIC"}
	}

	if strings.HasPrefix(lower, "evp_") {
		rest := strings.TrimSuffix(strings.TrimPrefix(lower, "evp_"), "()")
		if strings.HasPrefix(rest, "aes_") {
			alg, mode, keySize := parseAES(rest)
			return algoResolution{Algorithm: alg, Mode: mode, KeySizeBits: keySize, AssetType: "SYMMETRIC"}
		}
		if entry, ok := lookupAlgorithm(rest); ok {
			return algoResolution{Algorithm: entry.Algorithm, AssetType: entry.AssetType}
		}
		return algoResolution{Algorithm: strings.ToUpper(rest)}
	}

	if entry, ok := lookupAlgorithm(compactForm(lower)); ok {
		return algoResolution{Algorithm: entry.Algorithm, AssetType: entry.AssetType}
	}

	if strings.HasPrefix(lower, "sha") && !strings.Contains(lower, "-") {
		if entry, ok := lookupAlgorithm(lower); ok {
			return algoResolution{Algorithm: entry.Algorithm, AssetType: entry.AssetType}
		}
	}

	if entry, ok := lookupAlgorithm(lower); ok {
		mode := ""
		if lower == "chacha20-poly1305" {
			mode = "POLY1305"
		}
		return algoResolution{Algorithm: entry.Algorithm, Mode: mode, AssetType: entry.AssetType}
	}

	if strings.HasPrefix(lower, "chacha20") && strings.Contains(lower, "poly1305") {
		return algoResolution{Algorithm: "CHACHA20", Mode: "POLY1305", AssetType: "AEAD"}
	}

	if alg, ok := signatureAlgorithm(lower); ok {
		if m := combinedSignature.FindStringSubmatch(lower); m != nil {
			return algoResolution{Algorithm: alg, Mode: "SHA-" + m[1], AssetType: "SIGNATURE"}
		}
	}

	return algoResolution{Algorithm: strings.ToUpper(strings.TrimSpace(literal))}
}

// signatureAlgorithm identifies the RSA/ECDSA token in a combined
// signature-algorithm spelling such as "rsa-sha256" or "SHA256withRSA".
func signatureAlgorithm(lower string) (string, bool) {
	switch {
	case strings.Contains(lower, "rsa"):
		return "RSA", true
	case strings.Contains(lower, "ecdsa"):
		return "ECDSA", true
	default:
		return "", false
	}
}

// hasAESPrefix reports whether a lowered literal begins with one of the
// three AES-family separators spec step 2 requires.
func hasAESPrefix(lower string) bool {
	return strings.HasPrefix(lower, "aes-") || strings.HasPrefix(lower, "aes_") || strings.HasPrefix(lower, "aes/")
}

// parseAES implements spec's AES parser: lowercase, fold "_" and "/" to
// "-", split on "-"; the second token (if all digits) is the key size,
// the third (if present) is the mode.
func parseAES(literal string) (algorithm, mode, keySize string) {
	lower := strings.ToLower(strings.TrimSpace(literal))
	folded := strings.NewReplacer("_", "-", "/", "-").Replace(lower)
	parts := strings.Split(folded, "-")

	if len(parts) >= 2 && isAllDigits(parts[1]) {
		keySize = parts[1]
	}
	if len(parts) >= 3 {
		mode = strings.ToUpper(parts[2])
	}
	return "AES", mode, keySize
}

// resolveMode determines the canonical mode-of-operation: a mode the
// algorithm discrimination itself derived (AES parser, chacha20-poly1305,
// signature split) takes priority, since it was read from the same
// literal the algorithm came from; otherwise an explicit raw.Mode literal
// is used, normalized via modeAliases or folded "_"/"/" -> "-" and
// uppercased.
func resolveMode(raw model.RawFinding, resolution algoResolution) string {
	if resolution.Mode != "" {
		return resolution.Mode
	}

	if literal := stringValue(raw.Mode); literal != "" {
		if mode, ok := lookupMode(literal); ok {
			return mode
		}
		folded := strings.NewReplacer("_", "-", "/", "-").Replace(strings.TrimSpace(literal))
		return strings.ToUpper(folded)
	}

	return ""
}

// resolveKeySize determines the canonical key size in bits: a size the
// AES parser already extracted from the algorithm literal takes
// priority, otherwise an explicit raw.KeySizeBits literal is used (curve
// token containment check, then numeric, then lowered/folded
// passthrough).
func resolveKeySize(raw model.RawFinding, resolution algoResolution) string {
	if resolution.KeySizeBits != "" {
		return resolution.KeySizeBits
	}

	if literal := stringValue(raw.KeySizeBits); literal != "" {
		if size, ok := lookupCurveKeySize(literal); ok {
			return size
		}
		trimmed := strings.TrimSpace(literal)
		if n, err := strconv.Atoi(trimmed); err == nil {
			return strconv.Itoa(n)
		}
		return strings.ReplaceAll(strings.ToLower(trimmed), "_", "-")
	}

	return ""
}

// resolveAssetType determines the canonical asset type: the rule's
// declared asset_type takes priority when present, otherwise the asset
// type implied by the algorithm discrimination, otherwise UNKNOWN.
func resolveAssetType(raw model.RawFinding, resolution algoResolution) string {
	if raw.AssetType != "" {
		return raw.AssetType
	}
	if resolution.AssetType != "" {
		return resolution.AssetType
	}
	return unknown
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func confidenceOrDefault(confidence string) string {
	switch strings.ToUpper(strings.TrimSpace(confidence)) {
	case "LOW", "MEDIUM", "HIGH":
		return strings.ToUpper(confidence)
	default:
		return "LOW"
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// stableID computes the SHA-256 stable id over file|line|api|algorithm|mode,
// per the scanner's finding-identity invariant.
func stableID(file string, line int, api, algorithm, mode string) string {
	key := fmt.Sprintf("%s|%d|%s|%s|%s", file, line, api, algorithm, mode)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
