// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateIdentity(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateIdentity()
		if err != nil {
			t.Fatalf("GenerateIdentity() error: %v", err)
		}
		if id == "" {
			t.Fatal("expected non-empty identity")
		}
		if strings.ContainsAny(id, "+/=") {
			t.Errorf("identity not URL-safe: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate identity generated: %q", id)
		}
		seen[id] = true
	}
}

func TestIdentityProofRoundtrip(t *testing.T) {
	identity, err := GenerateIdentity()
	if err != nil {
		t.Fatalf("GenerateIdentity() error: %v", err)
	}

	proof := IdentityProof(identity, "salt-1")
	if err := VerifyIdentity(identity, proof, "salt-1"); err != nil {
		t.Errorf("valid proof rejected: %v", err)
	}

	if err := VerifyIdentity(identity, proof+"x", "salt-1"); err != ErrInvalidProof {
		t.Errorf("tampered proof accepted: %v", err)
	}
	if err := VerifyIdentity(identity, proof, "salt-2"); err != ErrInvalidProof {
		t.Errorf("proof under wrong salt accepted: %v", err)
	}
	if err := VerifyIdentity(identity+"x", proof, "salt-1"); err != ErrInvalidProof {
		t.Errorf("proof for different identity accepted: %v", err)
	}
}

func TestDeriveAddress(t *testing.T) {
	a := DeriveAddress("poll", "alice", "Best Language")
	b := DeriveAddress("poll", "alice", "Best Language")
	if a != b {
		t.Errorf("derivation not deterministic: %q vs %q", a, b)
	}
	if len(a) != 32 {
		t.Errorf("expected 32 hex chars, got %d (%q)", len(a), a)
	}

	if DeriveAddress("poll", "alice", "x") == DeriveAddress("poll", "bob", "x") {
		t.Error("different authorities must derive different addresses")
	}
	if DeriveAddress("poll", "alice", "x") == DeriveAddress("ballot", "alice", "x") {
		t.Error("different kinds must derive different addresses")
	}
	// Length prefixes keep part boundaries unambiguous.
	if DeriveAddress("poll", "ab", "c") == DeriveAddress("poll", "a", "bc") {
		t.Error("shifted part boundaries must derive different addresses")
	}
}

func TestHashIP(t *testing.T) {
	a := HashIP("192.168.1.1", "salt")
	if a != HashIP("192.168.1.1", "salt") {
		t.Error("hash not deterministic")
	}
	if len(a) != 16 {
		t.Errorf("expected 16 hex chars, got %d", len(a))
	}
	if a == HashIP("192.168.1.2", "salt") {
		t.Error("different IPs must hash differently")
	}
	if a == HashIP("192.168.1.1", "other-salt") {
		t.Error("different salts must hash differently")
	}
}
