package hdwallet

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors returned by the key engine. All of them are detected before
// any key material is written, so a failed call never leaves a partially
// derived node or signature behind. Match with errors.Is.
var (
	// ErrInvalidSeedLength is returned when a seed is shorter than 16 or
	// longer than 64 bytes.
	ErrInvalidSeedLength = errors.New("seed must be between 16 and 64 bytes")

	// ErrInvalidKeyLength is returned when a private key buffer is not
	// exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("private key must be exactly 32 bytes")

	// ErrInvalidDigestLength is returned when a digest to sign or verify is
	// not exactly 32 bytes.
	ErrInvalidDigestLength = errors.New("digest must be exactly 32 bytes")

	// ErrInvalidPath is returned when a derivation path re-anchors at the
	// master ("m/...") on a node that is not the root.
	ErrInvalidPath = errors.New("invalid derivation path")

	// ErrInvalidPathComponent is the class behind PathComponentError.
	ErrInvalidPathComponent = errors.New("invalid derivation path component")

	// ErrInvalidIndex is returned when a path segment parses to a value that
	// does not fit a 32-bit child index.
	ErrInvalidIndex = errors.New("derivation index out of range")

	// ErrUnsupportedOperation is returned when hardened derivation is
	// requested on a neutered (public-only) node.
	ErrUnsupportedOperation = errors.New("hardened derivation requires a private key")

	// ErrDisposedKey is returned when a key or node is used after Dispose.
	ErrDisposedKey = errors.New("key material has been disposed")

	// ErrInvalidDerivedKey is returned on the (astronomically unlikely)
	// derivation outcomes BIP-32 marks invalid, such as a zero child scalar.
	ErrInvalidDerivedKey = errors.New("derived key is outside the valid scalar range")

	// ErrInvalidSignature is returned when a signature string or recovery id
	// cannot be decoded.
	ErrInvalidSignature = errors.New("malformed signature")
)

// PathComponentError reports a derivation path segment that is not a valid
// child index, along with its zero-based position within the path.
type PathComponentError struct {
	Component string
	Position  int
}

func (e *PathComponentError) Error() string {
	return fmt.Sprintf("invalid path component %q at position %d", e.Component, e.Position)
}

func (e *PathComponentError) Unwrap() error {
	return ErrInvalidPathComponent
}
