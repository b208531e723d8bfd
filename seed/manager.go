package seed

import (
	"crypto/sha512"
	"sync"

	bip39 "github.com/cosmos/go-bip39"
	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// BIP39 standard PBKDF2 parameters
	pbkdf2Iterations = 2048
	pbkdf2KeyLength  = 64
)

// manager implements seed management with thread-safe access
type manager struct {
	seed        []byte
	mu          sync.RWMutex
	initialized bool
}

// NewManager creates a new seed Manager
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewManager() Manager {
	return &manager{
		seed:        nil,
		initialized: false,
	}
}

// ExpandMnemonic converts a mnemonic to a 64-byte seed per BIP-39:
// PBKDF2-HMAC-SHA512(mnemonic, "mnemonic"+passphrase, 2048 iterations).
// The mnemonic is not checksum-validated here; callers that want to reject
// typos use Validate first.
func ExpandMnemonic(mnemonic string, passphrase string) []byte {
	return pbkdf2.Key(
		[]byte(mnemonic),
		[]byte("mnemonic"+passphrase),
		pbkdf2Iterations,
		pbkdf2KeyLength,
		sha512.New,
	)
}

// Validate checks a mnemonic's word list membership and checksum.
func Validate(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// NewMnemonic generates a fresh BIP-39 mnemonic from bits of entropy
// (128-256, multiple of 32; 128 -> 12 words, 256 -> 24 words).
func NewMnemonic(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate entropy")
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode mnemonic")
	}
	return mnemonic, nil
}

// Initialize initializes the seed manager with mnemonic and passphrase
func (m *manager) Initialize(mnemonic string, passphrase string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clearLocked()
	m.seed = ExpandMnemonic(mnemonic, passphrase)
	m.initialized = true

	return nil
}

// InitializeFromSeed installs an already expanded seed (copied, caller keeps
// ownership of the input)
func (m *manager) InitializeFromSeed(seed []byte) error {
	if len(seed) == 0 {
		return errors.New("seed must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.clearLocked()
	m.seed = make([]byte, len(seed))
	copy(m.seed, seed)
	m.initialized = true

	return nil
}

// GetSeed gets the seed (returns a copy to prevent external modification)
func (m *manager) GetSeed() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.initialized || m.seed == nil {
		return nil
	}

	seedCopy := make([]byte, len(m.seed))
	copy(seedCopy, m.seed)
	return seedCopy
}

// IsInitialized checks if seed is initialized
func (m *manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.initialized
}

// Clear clears the seed from memory
func (m *manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clearLocked()
}

func (m *manager) clearLocked() {
	if m.seed != nil {
		for i := range m.seed {
			m.seed[i] = 0
		}
		m.seed = nil
	}
	m.initialized = false
}
