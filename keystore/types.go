// Package keystore encodes wallet secrets to and from the Ethereum keystore
// v3 envelope: scrypt key derivation, AES-128-CTR encryption and a Keccak-256
// MAC. The package is pure encode/decode; reading and writing keystore files
// is left to the caller.
package keystore

import "github.com/pkg/errors"

// ErrMACMismatch is returned by Decrypt when the MAC check fails, which in
// practice means a wrong password or a corrupted envelope.
var ErrMACMismatch = errors.New("invalid password: MAC mismatch")

// EncryptedKey is the Ethereum keystore v3 JSON structure
type EncryptedKey struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	Crypto  struct {
		Ciphertext   string `json:"ciphertext"`
		CipherParams struct {
			IV string `json:"iv"`
		} `json:"cipherparams"`
		Cipher    string `json:"cipher"`
		KDF       string `json:"kdf"`
		KDFParams struct {
			DKLen int    `json:"dklen"`
			Salt  string `json:"salt"`
			N     int    `json:"n"`
			R     int    `json:"r"`
			P     int    `json:"p"`
		} `json:"kdfparams"`
		MAC string `json:"mac"`
	} `json:"crypto"`
}

// ScryptParams defines scrypt KDF parameters
type ScryptParams struct {
	DKLen int // Derived key length (32 bytes)
	Salt  []byte
	N     int // CPU/memory cost parameter
	R     int // Block size parameter
	P     int // Parallelization parameter
}

// DefaultScryptParams returns the standard Ethereum keystore v3 parameters
func DefaultScryptParams() *ScryptParams {
	const (
		scryptDKLen = 32     // Derived key length (32 bytes)
		scryptN     = 262144 // CPU/memory cost parameter (2^18)
		scryptR     = 8      // Block size parameter
		scryptP     = 1      // Parallelization parameter
	)

	return &ScryptParams{
		DKLen: scryptDKLen,
		N:     scryptN,
		R:     scryptR,
		P:     scryptP,
	}
}

// LightScryptParams returns reduced-cost parameters suitable for tests and
// throwaway keys.
func LightScryptParams() *ScryptParams {
	const (
		scryptDKLen = 32
		scryptN     = 4096 // 2^12
		scryptR     = 8
		scryptP     = 1
	)

	return &ScryptParams{
		DKLen: scryptDKLen,
		N:     scryptN,
		R:     scryptR,
		P:     scryptP,
	}
}
