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
	"path/filepath"
	"regexp"
	"strings"

	"github.com/scanoss/cbom-scanner/internal/extractor"
)

// Order is the fixed language fan-out order the orchestrator scans in.
var Order = []string{"node", "go", "rust", "c", "python", "java", "csharp"}

// extMatch returns a FilePredicate matching any of the given extensions.
func extMatch(exts ...string) FilePredicate {
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		set[e] = true
	}
	return func(path string, _ Config) bool {
		return set[strings.ToLower(filepath.Ext(path))]
	}
}

var topLevelConst = regexp.MustCompile(`(?m)^\s*const\s+(\w+)\s*=\s*['"]([^'"]*)['"]`)

// resolveNodeConstants pre-scans a JS/TS file for top-level
// `const X = "literal"` assignments (spec.md §4.4 item 3).
func resolveNodeConstants(source []byte) map[string]string {
	constants := map[string]string{}
	for _, m := range topLevelConst.FindAllStringSubmatch(string(source), -1) {
		constants[m[1]] = m[2]
	}
	return constants
}

// Node returns the Node.js language spec: JavaScript always, TypeScript
// additionally when --include-ts is set, plus top-level constant folding.
func Node() LanguageSpec {
	jsGrammar := extractor.JavaScriptGrammar()
	tsGrammar := extractor.TypeScriptGrammar()

	return LanguageSpec{
		Name:        "node",
		Description: "Detects cryptographic call sites in JavaScript/TypeScript source",
		MatchesFile: func(path string, cfg Config) bool {
			ext := strings.ToLower(filepath.Ext(path))
			if ext == ".js" || ext == ".mjs" || ext == ".cjs" {
				return true
			}
			return cfg.IncludeTypeScript && (ext == ".ts" || ext == ".tsx")
		},
		GrammarForPath: func(path string) (extractor.Grammar, bool) {
			ext := strings.ToLower(filepath.Ext(path))
			if ext == ".ts" || ext == ".tsx" {
				return tsGrammar, true
			}
			return jsGrammar, true
		},
		ResolveConstants: resolveNodeConstants,
	}
}

// Go returns the Go language spec: plain tree-sitter path, no extra hooks.
func Go() LanguageSpec {
	grammar := extractor.GoGrammar()
	return LanguageSpec{
		Name:        "go",
		Description: "Detects cryptographic call sites in Go source",
		MatchesFile: extMatch(".go"),
		Grammar:     &grammar,
	}
}

// Rust returns the Rust language spec: plain tree-sitter path, no extra hooks.
func Rust() LanguageSpec {
	grammar := extractor.RustGrammar()
	return LanguageSpec{
		Name:        "rust",
		Description: "Detects cryptographic call sites in Rust source",
		MatchesFile: extMatch(".rs"),
		Grammar:     &grammar,
	}
}

// C returns the C/C++ language spec: per-extension grammar switch between
// the C and C++ tree-sitter grammars.
func C() LanguageSpec {
	cGrammar := extractor.CGrammar()
	cppGrammar := extractor.CppGrammar()

	return LanguageSpec{
		Name:        "c",
		Description: "Detects cryptographic call sites in C/C++ source",
		MatchesFile: extMatch(".c", ".h", ".cpp", ".hpp", ".cc", ".cxx"),
		GrammarForPath: func(path string) (extractor.Grammar, bool) {
			switch strings.ToLower(filepath.Ext(path)) {
			case ".c", ".h":
				return cGrammar, true
			case ".cpp", ".hpp", ".cc", ".cxx":
				return cppGrammar, true
			default:
				return extractor.Grammar{}, false
			}
		},
	}
}

// Python returns the Python language spec: plain tree-sitter path (using
// Python's "call" node type rather than "call_expression"), no extra hooks.
func Python() LanguageSpec {
	grammar := extractor.PythonGrammar()
	return LanguageSpec{
		Name:        "python",
		Description: "Detects cryptographic call sites in Python source",
		MatchesFile: extMatch(".py"),
		Grammar:     &grammar,
	}
}

// Java returns the Java language spec: plain tree-sitter path, no extra hooks.
func Java() LanguageSpec {
	grammar := extractor.JavaGrammar()
	return LanguageSpec{
		Name:        "java",
		Description: "Detects cryptographic call sites in Java source",
		MatchesFile: extMatch(".java"),
		Grammar:     &grammar,
	}
}

// CSharp returns the C# language spec. No C# tree-sitter grammar is wired
// into this scanner, so C# always runs the regex fallback path — matching
// the Python reference, which also has no C# AST scanner.
func CSharp() LanguageSpec {
	return LanguageSpec{
		Name:        "csharp",
		Description: "Detects cryptographic call sites in C# source via heuristic line scan (no AST grammar available)",
		MatchesFile: extMatch(".cs"),
	}
}
