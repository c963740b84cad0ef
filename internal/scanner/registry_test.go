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

import "testing"

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	reg.Register("go", NewGeneric(Go()))

	sc, err := reg.Get("go")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if sc.GetInfo().Name != "go" {
		t.Errorf("GetInfo().Name = %q, want go", sc.GetInfo().Name)
	}
}

func TestRegistry_GetUnknownFails(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Get("cobol"); err == nil {
		t.Error("expected error for unregistered scanner")
	}
}

func TestRegistry_Has(t *testing.T) {
	reg := NewRegistry()
	reg.Register("go", NewGeneric(Go()))

	if !reg.Has("go") {
		t.Error("expected Has(go) to be true")
	}
	if reg.Has("rust") {
		t.Error("expected Has(rust) to be false")
	}
}

func TestRegistry_Available_Sorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register("rust", NewGeneric(Rust()))
	reg.Register("go", NewGeneric(Go()))
	reg.Register("c", NewGeneric(C()))

	got := reg.Available()
	want := []string{"c", "go", "rust"}
	if len(got) != len(want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Available()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistry_RegisterReplacesExisting(t *testing.T) {
	reg := NewRegistry()
	reg.Register("go", NewGeneric(Go()))
	reg.Register("go", NewGeneric(Rust()))

	sc, err := reg.Get("go")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if sc.GetInfo().Name != "rust" {
		t.Errorf("expected second registration to replace the first, got %q", sc.GetInfo().Name)
	}
}
