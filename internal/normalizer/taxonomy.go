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

// Package normalizer folds vendor-spelled algorithm/asset-type literals
// into the canonical taxonomy and assigns the stable finding id.
package normalizer

import "strings"

// taxonomyEntry is the canonical (algorithm, asset type) pair a vendor
// spelling is folded into. AssetType is always one of the closed enum
// values: HASH, MAC, KDF, SYMMETRIC, ASYMMETRIC, SIGNATURE, AEAD,
// PROTOCOL, CERTIFICATE.
type taxonomyEntry struct {
	Algorithm string
	AssetType string
}

// taxonomy maps lowercased vendor algorithm spellings — both dash-form
// and compact (no dash/underscore) form, where they differ — to their
// canonical form. Unknown spellings fall through to the uppercase
// fallback in resolveAlgorithm's final discrimination step.
var taxonomy = map[string]taxonomyEntry{
	"aes":            {"AES", "SYMMETRIC"},
	"des":            {"DES", "SYMMETRIC"},
	"3des":           {"TRIPLE_DES", "SYMMETRIC"},
	"triple-des":     {"TRIPLE_DES", "SYMMETRIC"},
	"des3":           {"TRIPLE_DES", "SYMMETRIC"},
	"rc4":            {"RC4", "SYMMETRIC"},
	"arcfour":        {"RC4", "SYMMETRIC"},
	"rsa":            {"RSA", "ASYMMETRIC"},
	"dsa":            {"DSA", "SIGNATURE"},
	"ecdsa":          {"ECDSA", "SIGNATURE"},
	"ed25519":        {"ED25519", "SIGNATURE"},
	"ecdh":           {"ECDH", "ASYMMETRIC"},
	"dh":             {"DH", "ASYMMETRIC"},
	"diffie-hellman": {"DH", "ASYMMETRIC"},
	"md5":            {"MD5", "HASH"},
	"sha1":           {"SHA-1", "HASH"},
	"sha-1":          {"SHA-1", "HASH"},
	"sha224":         {"SHA-224", "HASH"},
	"sha-224":        {"SHA-224", "HASH"},
	"sha256":         {"SHA-256", "HASH"},
	"sha-256":        {"SHA-256", "HASH"},
	"sha384":         {"SHA-384", "HASH"},
	"sha-384":        {"SHA-384", "HASH"},
	"sha512":         {"SHA-512", "HASH"},
	"sha-512":        {"SHA-512", "HASH"},
	"sha3256":        {"SHA3-256", "HASH"},
	"sha3-256":       {"SHA3-256", "HASH"},
	"sha3384":        {"SHA3-384", "HASH"},
	"sha3-384":       {"SHA3-384", "HASH"},
	"sha3512":        {"SHA3-512", "HASH"},
	"sha3-512":       {"SHA3-512", "HASH"},
	"blake2b":        {"BLAKE2B", "HASH"},
	"blake2s":        {"BLAKE2S", "HASH"},
	"hmac":           {"HMAC", "MAC"},
	"cmac":           {"CMAC", "MAC"},
	"pbkdf2":         {"PBKDF2", "KDF"},
	"scrypt":         {"SCRYPT", "KDF"},
	"bcrypt":         {"BCRYPT", "KDF"},
	"argon2":         {"ARGON2", "KDF"},
	"hkdf":           {"HKDF", "KDF"},
	"chacha20":       {"CHACHA20", "AEAD"},
	"chacha20-poly1305": {"CHACHA20", "AEAD"},
	"tls":            {"TLS", "PROTOCOL"},
	"ssh":            {"SSH", "PROTOCOL"},
	"x.509":          {"X.509", "CERTIFICATE"},
}

// modeAliases folds vendor mode-of-operation spellings to canonical ones.
var modeAliases = map[string]string{
	"cbc":      "CBC",
	"ecb":      "ECB",
	"cfb":      "CFB",
	"ofb":      "OFB",
	"ctr":      "CTR",
	"gcm":      "GCM",
	"ccm":      "CCM",
	"xts":      "XTS",
	"poly1305": "POLY1305",
}

// curveKeySizes maps named-curve tokens that may appear anywhere within a
// key-size literal to their canonical bit size, per spec's key-size
// normalization rule (the literal need only *contain* the token).
var curveKeySizes = map[string]string{
	"p256":                    "256",
	"p-256":                   "256",
	"prime256v1":              "256",
	"secp256r1":               "256",
	"secp256k1":               "256",
	"nid-x9-62-prime256v1":    "256",
	"p384":                    "384",
	"p-384":                   "384",
	"secp384r1":               "384",
	"nid-secp384r1":           "384",
	"p521":                    "521",
	"p-521":                   "521",
	"secp521r1":               "521",
	"nid-secp521r1":           "521",
}

// compactForm strips "-" and "_" from a lowercased literal, per spec
// step 4's "compact form" discrimination rule.
func compactForm(lower string) string {
	return strings.NewReplacer("-", "", "_", "").Replace(lower)
}

// lookupAlgorithm canonicalizes an algorithm literal, returning the
// canonical algorithm name and the asset type it implies, when known.
// The literal is looked up as given (the caller decides whether to pass
// the raw, lowered, or compact form, per the ordered discrimination in
// normalizer.go).
func lookupAlgorithm(literal string) (taxonomyEntry, bool) {
	entry, ok := taxonomy[strings.TrimSpace(literal)]
	return entry, ok
}

// lookupMode canonicalizes a mode-of-operation literal.
func lookupMode(literal string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(literal))
	mode, ok := modeAliases[key]
	return mode, ok
}

// lookupCurveKeySize resolves a curve name to its canonical bit size. The
// literal need only contain one of the known curve tokens.
func lookupCurveKeySize(literal string) (string, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(literal)), "_", "-")
	for token, size := range curveKeySizes {
		if strings.Contains(key, token) {
			return size, true
		}
	}
	return "", false
}
