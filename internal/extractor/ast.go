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

package extractor

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// CallSite is one function/method call site found in a syntax tree, with
// its callee text, unwrapped argument texts, and 1-based source location.
type CallSite struct {
	Callee    string
	Args      []string
	Line      int
	Column    int
	Function  *string
	Snippet   string
}

// functionLikeTypes are the node types treated as the nearest named
// enclosing function/method when resolving CallSite.Function.
var functionLikeTypes = map[string]bool{
	"function_declaration":     true,
	"function_definition":      true,
	"method_declaration":       true,
	"method_definition":        true,
	"func_literal":             true,
	"arrow_function":           true,
}

// ExtractCallSites parses source with the given grammar and returns every
// call site found, in pre-order. Nodes with no callee or no arguments
// subtree are skipped but their children are still walked.
func ExtractCallSites(source []byte, grammar Grammar) ([]CallSite, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(grammar.Language)

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var sites []CallSite
	walk(tree.RootNode(), source, grammar.CallNodeType, nil, &sites)
	return sites, nil
}

// walk performs a recursive pre-order traversal, visiting children
// left-to-right (deterministic).
func walk(node *sitter.Node, source []byte, callNodeType string, enclosing *string, sites *[]CallSite) {
	if node == nil {
		return
	}

	nextEnclosing := enclosing
	if functionLikeTypes[node.Type()] {
		if name := functionName(node, source); name != "" {
			nextEnclosing = &name
		}
	}

	if node.Type() == callNodeType {
		if site, ok := buildCallSite(node, source, nextEnclosing); ok {
			*sites = append(*sites, site)
		}
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		walk(node.Child(i), source, callNodeType, nextEnclosing, sites)
	}
}

// functionName extracts the identifier child of a function-like node, if any.
func functionName(node *sitter.Node, source []byte) string {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return ""
	}
	return nameNode.Content(source)
}

// buildCallSite extracts callee text and unwrapped argument texts from a
// call node. Returns ok=false if the node has no function or no arguments
// subtree.
func buildCallSite(node *sitter.Node, source []byte, enclosing *string) (CallSite, bool) {
	calleeNode := node.ChildByFieldName("function")
	argsNode := node.ChildByFieldName("arguments")
	if calleeNode == nil || argsNode == nil {
		return CallSite{}, false
	}

	callee := calleeNode.Content(source)
	args := unwrapArguments(argsNode, source)

	line := int(node.StartPoint().Row) + 1
	column := int(node.StartPoint().Column) + 1
	snippet := lineAt(source, line)

	return CallSite{
		Callee:   callee,
		Args:     args,
		Line:     line,
		Column:   column,
		Function: enclosing,
		Snippet:  snippet,
	}, true
}

// unwrapArguments extracts each argument's text, stripping surrounding
// quotes from string literals and dropping empty arguments.
func unwrapArguments(argsNode *sitter.Node, source []byte) []string {
	var args []string
	for i := 0; i < int(argsNode.ChildCount()); i++ {
		child := argsNode.Child(i)
		text := strings.TrimSpace(child.Content(source))
		if text == "" || text == "(" || text == ")" || text == "," {
			continue
		}
		args = append(args, unwrapStringLiteral(text))
	}
	return args
}

// unwrapStringLiteral strips a single layer of matching quotes from a
// string-literal token; non-string text passes through unchanged.
func unwrapStringLiteral(text string) string {
	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') || (first == '`' && last == '`') {
			return text[1 : len(text)-1]
		}
	}
	return text
}

// lineAt returns the 1-indexed source line, right-trimmed.
func lineAt(source []byte, line int) string {
	lines := strings.Split(string(source), "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line-1], "\r")
}
