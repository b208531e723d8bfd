package keystore_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/wallet-sdk/keystore"
)

const testPassword = "correct horse battery staple"

func testSecret() []byte {
	secret := make([]byte, 64)
	for i := range secret {
		secret[i] = byte(i)
	}
	return secret
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	secret := testSecret()

	encrypted, err := keystore.Encrypt(secret, testPassword, keystore.LightScryptParams())
	require.NoError(t, err)

	assert.Equal(t, 3, encrypted.Version)
	assert.Equal(t, "aes-128-ctr", encrypted.Crypto.Cipher)
	assert.Equal(t, "scrypt", encrypted.Crypto.KDF)
	assert.Equal(t, 4096, encrypted.Crypto.KDFParams.N)

	_, err = uuid.Parse(encrypted.ID)
	require.NoError(t, err)

	decrypted, err := keystore.Decrypt(encrypted, testPassword)
	require.NoError(t, err)
	assert.Equal(t, secret, decrypted)
}

func TestDecryptWrongPassword(t *testing.T) {
	encrypted, err := keystore.Encrypt(testSecret(), testPassword, keystore.LightScryptParams())
	require.NoError(t, err)

	_, err = keystore.Decrypt(encrypted, "wrong password")
	require.ErrorIs(t, err, keystore.ErrMACMismatch)
}

func TestDecryptTamperedCiphertext(t *testing.T) {
	encrypted, err := keystore.Encrypt(testSecret(), testPassword, keystore.LightScryptParams())
	require.NoError(t, err)

	body := []byte(encrypted.Crypto.Ciphertext)
	if body[0] == 'f' {
		body[0] = '0'
	} else {
		body[0] = 'f'
	}
	encrypted.Crypto.Ciphertext = string(body)

	_, err = keystore.Decrypt(encrypted, testPassword)
	require.ErrorIs(t, err, keystore.ErrMACMismatch)
}

func TestEncryptNilParamsUsesDefaults(t *testing.T) {
	// keep the secret tiny, default scrypt cost is the expensive part
	encrypted, err := keystore.Encrypt([]byte{0x01}, testPassword, nil)
	require.NoError(t, err)

	assert.Equal(t, 262144, encrypted.Crypto.KDFParams.N)
	assert.Equal(t, 8, encrypted.Crypto.KDFParams.R)
	assert.Equal(t, 1, encrypted.Crypto.KDFParams.P)
	assert.Equal(t, 32, encrypted.Crypto.KDFParams.DKLen)

	decrypted, err := keystore.Decrypt(encrypted, testPassword)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01}, decrypted)
}

func TestEncryptFreshSaltAndIVPerCall(t *testing.T) {
	secret := testSecret()

	first, err := keystore.Encrypt(secret, testPassword, keystore.LightScryptParams())
	require.NoError(t, err)
	second, err := keystore.Encrypt(secret, testPassword, keystore.LightScryptParams())
	require.NoError(t, err)

	assert.NotEqual(t, first.Crypto.KDFParams.Salt, second.Crypto.KDFParams.Salt)
	assert.NotEqual(t, first.Crypto.CipherParams.IV, second.Crypto.CipherParams.IV)
	assert.NotEqual(t, first.Crypto.Ciphertext, second.Crypto.Ciphertext)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestEncryptedKeySurvivesJSON(t *testing.T) {
	secret := testSecret()

	encrypted, err := keystore.Encrypt(secret, testPassword, keystore.LightScryptParams())
	require.NoError(t, err)

	encoded, err := json.Marshal(encrypted)
	require.NoError(t, err)

	var decoded keystore.EncryptedKey
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	decrypted, err := keystore.Decrypt(&decoded, testPassword)
	require.NoError(t, err)
	assert.Equal(t, secret, decrypted)
}
