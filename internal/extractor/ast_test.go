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

import "testing"

const goSample = `package main

import "crypto/md5"

func hashPassword(password string) [16]byte {
	return md5.Sum([]byte(password))
}

func main() {
	h := md5.New()
	_ = h
}
`

func TestExtractCallSites_FindsCallsAndEnclosingFunction(t *testing.T) {
	sites, err := ExtractCallSites([]byte(goSample), GoGrammar())
	if err != nil {
		t.Fatalf("ExtractCallSites() error = %v", err)
	}

	var sumCall, newCall *CallSite
	for i := range sites {
		switch sites[i].Callee {
		case "md5.Sum":
			sumCall = &sites[i]
		case "md5.New":
			newCall = &sites[i]
		}
	}

	if sumCall == nil {
		t.Fatal("expected a md5.Sum call site")
	}
	if sumCall.Function == nil || *sumCall.Function != "hashPassword" {
		t.Errorf("md5.Sum enclosing function = %v, want hashPassword", sumCall.Function)
	}

	if newCall == nil {
		t.Fatal("expected a md5.New call site")
	}
	if newCall.Function == nil || *newCall.Function != "main" {
		t.Errorf("md5.New enclosing function = %v, want main", newCall.Function)
	}
	if newCall.Line <= sumCall.Line {
		t.Errorf("expected md5.New (line %d) after md5.Sum (line %d)", newCall.Line, sumCall.Line)
	}
}

func TestExtractCallSites_UnwrapsStringArguments(t *testing.T) {
	src := []byte(`package main

func main() {
	lookup("md5")
}
`)
	sites, err := ExtractCallSites(src, GoGrammar())
	if err != nil {
		t.Fatalf("ExtractCallSites() error = %v", err)
	}

	var lookupCall *CallSite
	for i := range sites {
		if sites[i].Callee == "lookup" {
			lookupCall = &sites[i]
		}
	}
	if lookupCall == nil {
		t.Fatal("expected a lookup call site")
	}
	if len(lookupCall.Args) != 1 || lookupCall.Args[0] != "md5" {
		t.Errorf("Args = %v, want [md5] (unquoted)", lookupCall.Args)
	}
}

func TestExtractCallSites_NoCallsReturnsEmpty(t *testing.T) {
	src := []byte("package main\n\nvar x = 1\n")
	sites, err := ExtractCallSites(src, GoGrammar())
	if err != nil {
		t.Fatalf("ExtractCallSites() error = %v", err)
	}
	if len(sites) != 0 {
		t.Errorf("expected no call sites, got %d", len(sites))
	}
}
