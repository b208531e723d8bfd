package hdwallet

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

const (
	// standardHexLength is r, s and v hex-encoded: 64 + 64 + 2 characters.
	standardHexLength = 130

	// compactLength is r and s hex-encoded plus a single decimal recovery
	// digit: 64 + 64 + 1 characters.
	compactLength = 129
)

// Signature is a recoverable ECDSA signature with V in {27, 28}.
type Signature struct {
	R [32]byte
	S [32]byte
	V byte
}

// Standard returns the 0x-prefixed hex encoding r || s || v with v in
// {0x1b, 0x1c}.
func (s *Signature) Standard() string {
	raw := make([]byte, 0, 65)
	raw = append(raw, s.R[:]...)
	raw = append(raw, s.S[:]...)
	raw = append(raw, s.V)
	return "0x" + hex.EncodeToString(raw)
}

// Compact returns the wallet wire encoding: unprefixed hex r || s followed by
// the recovery id as one decimal digit (27 -> 0, 28 -> 1).
func (s *Signature) Compact() (string, error) {
	return ToCompact(s.Standard())
}

// ParseSignature decodes a standard-format hex signature (optional 0x
// prefix, v in {27, 28}) into its struct form.
func ParseSignature(standard string) (*Signature, error) {
	body := strings.TrimPrefix(standard, "0x")
	if len(body) != standardHexLength {
		return nil, errors.Wrapf(ErrInvalidSignature, "got %d hex chars, want %d", len(body), standardHexLength)
	}
	raw, err := hex.DecodeString(body)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSignature, err.Error())
	}
	v := raw[64]
	if v != 27 && v != 28 {
		return nil, errors.Wrapf(ErrInvalidSignature, "recovery id %d", v)
	}

	sig := &Signature{V: v}
	copy(sig.R[:], raw[:32])
	copy(sig.S[:], raw[32:64])
	return sig, nil
}

// ToCompact converts a standard-format signature (optional 0x prefix, v in
// {27, 28}) to the compact wallet format: the same r and s hex with no
// prefix, and v remapped to a single decimal digit, 27 -> '0' and 28 -> '1'.
func ToCompact(standard string) (string, error) {
	sig, err := ParseSignature(standard)
	if err != nil {
		return "", err
	}

	body := strings.TrimPrefix(standard, "0x")
	digit := "0"
	if sig.V == 28 {
		digit = "1"
	}
	return strings.ToLower(body[:128]) + digit, nil
}

// FromCompact is the inverse of ToCompact. The recovery digit '0' restores
// v = 27; any other trailing character restores v = 28, not only '1'. That
// equality-vs-inequality asymmetry is part of the wire contract and is
// preserved exactly.
func FromCompact(compact string) (string, error) {
	if len(compact) != compactLength {
		return "", errors.Wrapf(ErrInvalidSignature, "got %d chars, want %d", len(compact), compactLength)
	}
	if _, err := hex.DecodeString(compact[:128]); err != nil {
		return "", errors.Wrap(ErrInvalidSignature, err.Error())
	}

	v := byte(28)
	if compact[128] == '0' {
		v = 27
	}
	return "0x" + strings.ToLower(compact[:128]) + hex.EncodeToString([]byte{v}), nil
}
