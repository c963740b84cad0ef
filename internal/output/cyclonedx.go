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

package output

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/scanoss/cbom-scanner/internal/model"
	"github.com/scanoss/cbom-scanner/pkg/schema"
)

// cycloneDXSpecVersion is the CycloneDX schema version this writer targets.
const cycloneDXSpecVersion = cdx.SpecVersion1_5

// CycloneDXWriter implements Writer for the CycloneDX 1.5 cryptographic-asset
// CBOM format, using github.com/CycloneDX/cyclonedx-go's typed structs.
type CycloneDXWriter struct {
	// PrettyPrint enables indented formatting. Default: true.
	PrettyPrint bool

	// Indent specifies the indentation string. Default: "  " (2 spaces).
	Indent string
}

// NewCycloneDXWriter creates a new CycloneDX writer with default settings.
func NewCycloneDXWriter() *CycloneDXWriter {
	return &CycloneDXWriter{
		PrettyPrint: true,
		Indent:      "  ",
	}
}

// Write converts the report to a CycloneDX 1.5 BOM and writes it as JSON.
func (w *CycloneDXWriter) Write(report *schema.Report, destination string) error {
	if report == nil {
		return fmt.Errorf("report cannot be nil")
	}

	bom := toBOM(report)

	log.Info().
		Int("components", len(*bom.Components)).
		Msg("CycloneDX BOM generated successfully")

	var data []byte
	var err error
	if w.PrettyPrint {
		data, err = json.MarshalIndent(bom, "", w.Indent)
	} else {
		data, err = json.Marshal(bom)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal BOM to JSON: %w", err)
	}

	return writeBytes(data, destination)
}

// toBOM converts a Report into a CycloneDX BOM, one cryptographic-asset
// component per canonical finding.
func toBOM(report *schema.Report) *cdx.BOM {
	bom := cdx.NewBOM()
	bom.SerialNumber = "urn:uuid:" + uuid.New().String()
	bom.SpecVersion = cycloneDXSpecVersion

	bom.Metadata = &cdx.Metadata{
		Tools: &cdx.ToolsChoice{
			Components: &[]cdx.Component{
				{
					Type:    cdx.ComponentTypeApplication,
					Name:    report.Tool.Name,
					Version: report.Tool.Version,
				},
			},
		},
	}

	components := make([]cdx.Component, 0, len(report.Findings))
	for _, finding := range report.Findings {
		components = append(components, toComponent(finding))
	}
	bom.Components = &components

	return bom
}

// toComponent converts one canonical finding into a CycloneDX
// cryptographic-asset component, with evidence properties carrying the
// source location.
func toComponent(finding model.CanonicalFinding) cdx.Component {
	props := []cdx.Property{
		{Name: "cbom:evidence:file", Value: finding.Evidence.File},
		{Name: "cbom:evidence:line", Value: strconv.Itoa(finding.Evidence.Line)},
		{Name: "cbom:evidence:column", Value: strconv.Itoa(finding.Evidence.Column)},
		{Name: "cbom:evidence:snippet", Value: finding.Evidence.Snippet},
		{Name: "cbom:confidence", Value: finding.Confidence},
	}
	if finding.Evidence.Function != nil {
		props = append(props, cdx.Property{Name: "cbom:evidence:function", Value: *finding.Evidence.Function})
	}
	if finding.Notes != nil {
		props = append(props, cdx.Property{Name: "cbom:notes", Value: *finding.Notes})
	}

	algoProps := &cdx.CryptoAlgorithmProperties{
		Primitive: toCryptoPrimitive(finding.AssetType),
	}
	if finding.Mode != "" {
		algoProps.Mode = cdx.CryptoAlgorithmMode(strings.ToLower(finding.Mode))
	}
	if finding.KeySizeBits != "" {
		algoProps.ParameterSetIdentifier = finding.KeySizeBits
	}

	return cdx.Component{
		Type:       cdx.ComponentTypeCryptographicAsset,
		BOMRef:     finding.ID,
		Name:       componentName(finding),
		Version:    finding.Mode,
		Group:      finding.Library,
		Properties: &props,
		CryptoProperties: &cdx.CryptoProperties{
			AssetType:           cdx.CryptoAssetTypeAlgorithm,
			AlgorithmProperties: algoProps,
		},
	}
}

// componentName derives a human-readable component name from the
// finding's API surface, falling back to its algorithm.
func componentName(finding model.CanonicalFinding) string {
	if finding.API != "" {
		return finding.API
	}
	return finding.Algorithm
}

// assetTypeToPrimitive maps the normalizer's closed asset_type enum
// (taxonomy.go) to CycloneDX's cryptoFunction primitive vocabulary.
// SYMMETRIC defaults to block-cipher, the common case (AES); stream
// ciphers have no separate asset_type in the closed enum. ASYMMETRIC
// defaults to pke, since RSA/DH/ECDH key-management use is the common
// case. PROTOCOL and CERTIFICATE have no corresponding primitive and
// fall through to the "other" default.
var assetTypeToPrimitive = map[string]cdx.CryptoPrimitive{
	"HASH":       cdx.CryptoPrimitiveHash,
	"MAC":        cdx.CryptoPrimitiveMAC,
	"KDF":        cdx.CryptoPrimitiveKDF,
	"SYMMETRIC":  cdx.CryptoPrimitiveBlockCipher,
	"ASYMMETRIC": cdx.CryptoPrimitivePKE,
	"SIGNATURE":  cdx.CryptoPrimitiveSignature,
	"AEAD":       cdx.CryptoPrimitiveAE,
}

// toCryptoPrimitive resolves a CycloneDX primitive for an asset type,
// defaulting to "other" when the taxonomy has no corresponding primitive
// (e.g. PROTOCOL and CERTIFICATE asset types).
func toCryptoPrimitive(assetType string) cdx.CryptoPrimitive {
	if primitive, ok := assetTypeToPrimitive[assetType]; ok {
		return primitive
	}
	return cdx.CryptoPrimitiveOther
}
