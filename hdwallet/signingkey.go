package hdwallet

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

const (
	// PrivateKeyLength is the size of a secp256k1 scalar in bytes.
	PrivateKeyLength = 32

	// DigestLength is the size of a signable digest in bytes.
	DigestLength = 32

	// CompressedPubKeyLength is the size of a compressed public key.
	CompressedPubKeyLength = 33

	// UncompressedPubKeyLength is the size of an uncompressed public key.
	UncompressedPubKeyLength = 65
)

// SigningKey owns a single secp256k1 private key and signs 32-byte digests
// with deterministic (RFC 6979) low-S ECDSA.
//
// The key takes exclusive ownership of the buffer passed to NewSigningKey:
// the scalar lives in that one buffer until Dispose zeroes it in place.
// Short-lived scalar copies made by the curve library during public key
// computation and signing are zeroed before the call returns. A SigningKey
// is not safe for concurrent use with Dispose; callers own the key on a
// single goroutine or guard it externally.
type SigningKey struct {
	priv            []byte
	pubCompressed   [CompressedPubKeyLength]byte
	pubUncompressed [UncompressedPubKeyLength]byte
	disposed        bool
}

// NewSigningKey constructs a key from a 32-byte private key buffer, taking
// ownership of it. The compressed and uncompressed public keys are computed
// once here; the private scalar never changes afterwards.
func NewSigningKey(priv []byte) (*SigningKey, error) {
	if len(priv) != PrivateKeyLength {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "got %d bytes", len(priv))
	}

	sk := secp256k1.PrivKeyFromBytes(priv)
	defer sk.Zero()

	key := &SigningKey{priv: priv}
	pub := sk.PubKey()
	copy(key.pubCompressed[:], pub.SerializeCompressed())
	copy(key.pubUncompressed[:], pub.SerializeUncompressed())

	return key, nil
}

// Sign produces a recoverable ECDSA signature over a 32-byte digest.
// Signatures are deterministic (RFC 6979 nonce), low-S normalized, and carry
// V in {27, 28}.
func (k *SigningKey) Sign(digest []byte) (*Signature, error) {
	if k.disposed {
		return nil, errors.Wrap(ErrDisposedKey, "sign")
	}
	if len(digest) != DigestLength {
		return nil, errors.Wrapf(ErrInvalidDigestLength, "got %d bytes", len(digest))
	}

	sk := secp256k1.PrivKeyFromBytes(k.priv)
	defer sk.Zero()

	// Compact format is [v, r, s] with v = 27 + recovery id for an
	// uncompressed public key.
	compact := secpecdsa.SignCompact(sk, digest, false)

	sig := &Signature{V: compact[0]}
	copy(sig.R[:], compact[1:33])
	copy(sig.S[:], compact[33:65])
	return sig, nil
}

// CompressedPublicKey returns a copy of the 33-byte compressed public key.
func (k *SigningKey) CompressedPublicKey() []byte {
	out := make([]byte, CompressedPubKeyLength)
	copy(out, k.pubCompressed[:])
	return out
}

// UncompressedPublicKey returns a copy of the 65-byte uncompressed public key.
func (k *SigningKey) UncompressedPublicKey() []byte {
	out := make([]byte, UncompressedPubKeyLength)
	copy(out, k.pubUncompressed[:])
	return out
}

// Address returns the EVM address for this key: the last 20 bytes of
// Keccak-256 over the uncompressed public key without its 0x04 prefix.
func (k *SigningKey) Address() common.Address {
	return common.BytesToAddress(crypto.Keccak256(k.pubUncompressed[1:])[12:])
}

// PrivateKeyBytes returns a copy of the private key. The caller assumes
// ownership of the copy and must zero it after use.
func (k *SigningKey) PrivateKeyBytes() ([]byte, error) {
	if k.disposed {
		return nil, errors.Wrap(ErrDisposedKey, "private key read")
	}
	out := make([]byte, PrivateKeyLength)
	copy(out, k.priv)
	return out, nil
}

// Disposed reports whether the key has been disposed.
func (k *SigningKey) Disposed() bool {
	return k.disposed
}

// Dispose zeroes the private key buffer in place and marks the key unusable.
// Safe to call more than once.
func (k *SigningKey) Dispose() {
	zeroBytes(k.priv)
	k.disposed = true
}
