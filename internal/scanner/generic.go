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

package scanner

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/scanoss/cbom-scanner/internal/extractor"
	"github.com/scanoss/cbom-scanner/internal/model"
)

// FilePredicate decides whether a file belongs to this scanner's language,
// based on its extension and the scanner's current configuration.
type FilePredicate func(path string, cfg Config) bool

// ResolveConstantsFunc pre-scans a source file for simple top-level
// constant assignments (Node's `const X = "literal"`), so call arguments
// that reference a constant can still be resolved to their literal value.
type ResolveConstantsFunc func(source []byte) map[string]string

// GrammarForPathFunc selects a grammar based on file extension, for
// languages that compile more than one dialect (C vs C++).
type GrammarForPathFunc func(path string) (extractor.Grammar, bool)

// LanguageSpec is the table-driven definition of one language scanner:
// which files it claims, which grammar(s) it parses them with, and the
// two optional hooks spec.md §4.4/§8 describe.
type LanguageSpec struct {
	Name              string
	Description       string
	MatchesFile       FilePredicate
	Grammar           *extractor.Grammar
	ResolveConstants  ResolveConstantsFunc
	GrammarForPath    GrammarForPathFunc
}

// Generic is the single Scanner implementation every language in
// languages.go instantiates. It has no language-specific logic beyond
// what its LanguageSpec supplies.
type Generic struct {
	spec LanguageSpec
	cfg  Config
}

// NewGeneric creates a scanner for the given language spec.
func NewGeneric(spec LanguageSpec) *Generic {
	return &Generic{spec: spec}
}

// Initialize stores the scan configuration (timeout, --include-ts).
func (g *Generic) Initialize(cfg Config) error {
	g.cfg = cfg
	return nil
}

// GetInfo returns this scanner's language identity.
func (g *Generic) GetInfo() Info {
	return Info{Name: g.spec.Name, Version: "1", Description: g.spec.Description}
}

// Scan filters files by the language's predicate, then matches each
// selected file's call sites (AST when a grammar is available, regex
// fallback otherwise) against the rule set.
func (g *Generic) Scan(ctx context.Context, files []string, ruleSet model.RuleSet, toolInfo model.ToolInfo) ([]model.RawFinding, error) {
	var findings []model.RawFinding
	warnedNoGrammar := false

	for _, path := range files {
		if ctx.Err() != nil {
			return findings, ctx.Err()
		}
		if !g.spec.MatchesFile(path, g.cfg) {
			continue
		}

		if _, ok := g.grammarFor(path); !ok && !warnedNoGrammar {
			log.Warn().Str("language", g.spec.Name).
				Msg("No parser available for language, using regex fallback")
			warnedNoGrammar = true
		}

		fileFindings, err := g.scanFile(path, ruleSet)
		if err != nil {
			log.Warn().Err(err).Str("file", path).Str("language", g.spec.Name).
				Msg("AST parse failed, falling back to regex scan for this file")
			fileFindings = g.scanFileFallback(path, ruleSet)
		}
		findings = append(findings, fileFindings...)
	}

	return findings, nil
}

// scanFile runs the AST path for one file, or the fallback directly if no
// grammar is configured for this language.
func (g *Generic) scanFile(path string, ruleSet model.RuleSet) ([]model.RawFinding, error) {
	grammar, ok := g.grammarFor(path)
	if !ok {
		return g.scanFileFallback(path, ruleSet), nil
	}

	source, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("Could not read file, skipping")
		return nil, nil
	}

	constants := map[string]string{}
	if g.spec.ResolveConstants != nil {
		constants = g.spec.ResolveConstants(source)
	}

	sites, err := extractor.ExtractCallSites(source, grammar)
	if err != nil {
		return nil, err
	}

	var findings []model.RawFinding
	for _, site := range sites {
		findings = append(findings, matchCallSite(path, site, ruleSet, constants)...)
	}
	return findings, nil
}

// scanFileFallback runs the regex fallback for one file.
func (g *Generic) scanFileFallback(path string, ruleSet model.RuleSet) []model.RawFinding {
	source, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("Could not read file, skipping")
		return nil
	}

	var findings []model.RawFinding
	for _, rule := range ruleSet.Calls {
		for _, match := range extractor.ScanLines(source, rule.Call) {
			findings = append(findings, buildFallbackFinding(path, match, rule))
		}
	}
	return findings
}

// grammarFor resolves the grammar to use for a file: the per-extension
// hook when the language has one, else the language's single grammar.
func (g *Generic) grammarFor(path string) (extractor.Grammar, bool) {
	if g.spec.GrammarForPath != nil {
		return g.spec.GrammarForPath(path)
	}
	if g.spec.Grammar != nil {
		return *g.spec.Grammar, true
	}
	return extractor.Grammar{}, false
}

// matchCallSite matches one extracted call site against every rule in the
// rule set, fanning out a RawFinding per matching rule.
func matchCallSite(file string, site extractor.CallSite, ruleSet model.RuleSet, constants map[string]string) []model.RawFinding {
	var findings []model.RawFinding
	for _, rule := range ruleSet.Calls {
		if !calleeMatches(site.Callee, rule.Call) {
			continue
		}
		findings = append(findings, buildASTFinding(file, site, rule, constants))
	}
	return findings
}

// calleeMatches implements spec.md §4.4's match condition: exact equality,
// or the rule's Call as a dot-free suffix of the callee (e.g. "md5" matches
// "hashlib.md5").
func calleeMatches(callee, ruleCall string) bool {
	if callee == ruleCall {
		return true
	}
	if strings.Contains(ruleCall, ".") {
		return false
	}
	return strings.HasSuffix(callee, "."+ruleCall)
}

// buildASTFinding constructs a RawFinding from a matched AST call site,
// resolving algorithm/mode/key-size in the order: rule literal, then
// arg_indexes lookup (substituting constants when the argument is a bare
// identifier), else left unset.
func buildASTFinding(file string, site extractor.CallSite, rule model.Rule, constants map[string]string) model.RawFinding {
	finding := model.RawFinding{
		File:       file,
		Line:       site.Line,
		Column:     site.Column,
		Snippet:    site.Snippet,
		Function:   site.Function,
		API:        apiOrDefault(rule),
		Library:    rule.Library,
		Confidence: rule.Confidence,
		AssetType:  rule.AssetType,
	}

	finding.Algorithm = resolveAttribute(rule.Algorithm, "algorithm", rule, site.Args, constants)
	finding.Mode = resolveAttribute(rule.Mode, "mode", rule, site.Args, constants)
	finding.KeySizeBits = resolveAttribute(rule.KeySizeBits, "key_size_bits", rule, site.Args, constants)

	return finding
}

// resolveAttribute applies spec.md §4.4's attribute-extraction order:
// literal value, else an arg_indexes-positioned argument, else nil (when
// the index is out of range the attribute is simply absent).
func resolveAttribute(literal, attrKey string, rule model.Rule, args []string, constants map[string]string) *string {
	if literal != "" {
		return &literal
	}

	idx, ok := rule.ArgIndexes[attrKey]
	if !ok || idx < 0 || idx >= len(args) {
		return nil
	}

	value := args[idx]
	if resolved, isConst := constants[value]; isConst {
		value = resolved
	}
	return &value
}

// buildFallbackFinding constructs a RawFinding from a regex fallback
// match, per spec.md §4.3: algorithm from the rule literal or the first
// quoted literal on the line; mode/key-size/function never populated.
func buildFallbackFinding(file string, match extractor.FallbackMatch, rule model.Rule) model.RawFinding {
	notes := "heuristic"
	finding := model.RawFinding{
		File:       file,
		Line:       match.Line,
		Column:     1,
		Snippet:    match.Snippet,
		API:        apiOrDefault(rule),
		Library:    rule.Library,
		Confidence: rule.Confidence,
		AssetType:  rule.AssetType,
		Notes:      &notes,
	}

	if rule.Algorithm != "" {
		finding.Algorithm = &rule.Algorithm
	} else if match.Algorithm != "" {
		finding.Algorithm = &match.Algorithm
	}

	return finding
}

// apiOrDefault returns the rule's API, defaulting to its Call name when unset.
func apiOrDefault(rule model.Rule) string {
	if rule.API != "" {
		return rule.API
	}
	return rule.Call
}
