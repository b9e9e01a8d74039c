// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidProof = errors.New("invalid identity proof")

// GenerateIdentity creates a random identity token for a caller (poll
// authority or voter wallet).
func GenerateIdentity() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate identity: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// IdentityProof creates an HMAC-based proof for an identity token.
// Deterministic and verifiable without any server-side state.
func IdentityProof(identity, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(identity))
	sum := h.Sum(nil)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// VerifyIdentity checks the proof presented for an identity token.
func VerifyIdentity(identity, proof, salt string) error {
	expected := IdentityProof(identity, salt)
	if !hmac.Equal([]byte(proof), []byte(expected)) {
		return ErrInvalidProof
	}
	return nil
}

// DeriveAddress computes the deterministic storage address of a record
// from its stable key, e.g. ("poll", authority, title) or ("ballot",
// pollID, wallet). Parts are length-prefixed so distinct keys can never
// produce the same byte stream.
func DeriveAddress(kind string, parts ...string) string {
	h := sha256.New()
	h.Write([]byte(kind))
	for _, part := range parts {
		var n [4]byte
		binary.BigEndian.PutUint32(n[:], uint32(len(part)))
		h.Write(n[:])
		h.Write([]byte(part))
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:16])
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
