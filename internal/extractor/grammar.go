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

// Package extractor walks tree-sitter syntax trees (or, when no grammar is
// available, raw source lines) to yield call sites for the rule matcher.
package extractor

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Grammar pairs a tree-sitter language with the AST node type name that
// represents a function call in that grammar. Most grammars call this node
// "call_expression"; Python calls it "call".
type Grammar struct {
	Language     *sitter.Language
	CallNodeType string
}

// CallNodeTypeDefault is the node type name used by the majority of
// tree-sitter grammars wired into this scanner.
const CallNodeTypeDefault = "call_expression"

// callNodeTypePython is Python's tree-sitter call-expression node name.
const callNodeTypePython = "call"

// JavaScriptGrammar is the grammar used for the Node scanner.
func JavaScriptGrammar() Grammar {
	return Grammar{Language: javascript.GetLanguage(), CallNodeType: CallNodeTypeDefault}
}

// TypeScriptGrammar is the grammar used for the Node scanner when
// --include-ts is set.
func TypeScriptGrammar() Grammar {
	return Grammar{Language: typescript.GetLanguage(), CallNodeType: CallNodeTypeDefault}
}

// GoGrammar is the grammar used for the Go scanner.
func GoGrammar() Grammar {
	return Grammar{Language: golang.GetLanguage(), CallNodeType: CallNodeTypeDefault}
}

// RustGrammar is the grammar used for the Rust scanner.
func RustGrammar() Grammar {
	return Grammar{Language: rust.GetLanguage(), CallNodeType: CallNodeTypeDefault}
}

// CGrammar is the grammar used for .c/.h files.
func CGrammar() Grammar {
	return Grammar{Language: c.GetLanguage(), CallNodeType: CallNodeTypeDefault}
}

// CppGrammar is the grammar used for .cpp/.hpp/.cc files.
func CppGrammar() Grammar {
	return Grammar{Language: cpp.GetLanguage(), CallNodeType: CallNodeTypeDefault}
}

// PythonGrammar is the grammar used for the Python scanner.
func PythonGrammar() Grammar {
	return Grammar{Language: python.GetLanguage(), CallNodeType: callNodeTypePython}
}

// JavaGrammar is the grammar used for the Java scanner.
func JavaGrammar() Grammar {
	return Grammar{Language: java.GetLanguage(), CallNodeType: CallNodeTypeDefault}
}
