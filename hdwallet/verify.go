package hdwallet

import (
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// RecoverAddress recovers the EVM address that produced sig over a 32-byte
// digest.
func RecoverAddress(digest []byte, sig *Signature) (common.Address, error) {
	if len(digest) != DigestLength {
		return common.Address{}, errors.Wrapf(ErrInvalidDigestLength, "got %d bytes", len(digest))
	}
	if sig.V != 27 && sig.V != 28 {
		return common.Address{}, errors.Wrapf(ErrInvalidSignature, "recovery id %d", sig.V)
	}

	compact := make([]byte, 65)
	compact[0] = sig.V
	copy(compact[1:33], sig.R[:])
	copy(compact[33:65], sig.S[:])

	pub, _, err := secpecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "recover public key")
	}
	return common.BytesToAddress(crypto.Keccak256(pub.SerializeUncompressed()[1:])[12:]), nil
}

// VerifyDigest reports whether sig over digest was produced by the key
// behind the expected address.
func VerifyDigest(digest []byte, sig *Signature, expected common.Address) (bool, error) {
	recovered, err := RecoverAddress(digest, sig)
	if err != nil {
		return false, err
	}
	return recovered == expected, nil
}
