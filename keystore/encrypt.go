package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"
)

// Encrypt seals a secret (a wallet seed or any other key material) into an
// Ethereum keystore v3 envelope. params may be nil, in which case
// DefaultScryptParams is used. The secret is read-only input; the caller
// keeps ownership and is responsible for zeroing it.
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func Encrypt(secret []byte, password string, params *ScryptParams) (*EncryptedKey, error) {
	if params == nil {
		params = DefaultScryptParams()
	}

	//nolint:mnd // 32 is the standard salt size for scrypt
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	//nolint:mnd // 16 is the standard IV size for AES-128-CTR
	iv := make([]byte, 16)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}

	derivedKey, err := scrypt.Key([]byte(password), salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	// Encrypt using AES-128-CTR with the first half of the derived key
	ciphertext, err := encryptAES128CTR(derivedKey[:16], iv, secret)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt secret: %w", err)
	}

	// MAC = Keccak-256(derivedKey[16:32] || ciphertext), per keystore v3
	mac := calculateMAC(derivedKey[16:32], ciphertext)

	encrypted := &EncryptedKey{
		//nolint:mnd // 3 is the Ethereum keystore v3 version number
		Version: 3,
		ID:      uuid.New().String(),
	}

	encrypted.Crypto.Ciphertext = hex.EncodeToString(ciphertext)
	encrypted.Crypto.CipherParams.IV = hex.EncodeToString(iv)
	encrypted.Crypto.Cipher = "aes-128-ctr"
	encrypted.Crypto.KDF = "scrypt"
	encrypted.Crypto.KDFParams.DKLen = params.DKLen
	encrypted.Crypto.KDFParams.Salt = hex.EncodeToString(salt)
	encrypted.Crypto.KDFParams.N = params.N
	encrypted.Crypto.KDFParams.R = params.R
	encrypted.Crypto.KDFParams.P = params.P
	encrypted.Crypto.MAC = hex.EncodeToString(mac)

	return encrypted, nil
}

// encryptAES128CTR encrypts data using AES-128-CTR mode
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func encryptAES128CTR(key []byte, iv []byte, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	ciphertext := make([]byte, len(plaintext))
	stream := cipher.NewCTR(block, iv)
	stream.XORKeyStream(ciphertext, plaintext)

	return ciphertext, nil
}

// calculateMAC computes Keccak-256(key || ciphertext)
func calculateMAC(key []byte, ciphertext []byte) []byte {
	return ethcrypto.Keccak256(key, ciphertext)
}
