package seed

// Manager holds the wallet seed in memory behind thread-safe access
type Manager interface {
	// Initialize expands a mnemonic into the seed (called once at startup)
	Initialize(mnemonic string, passphrase string) error

	// InitializeFromSeed installs an already expanded seed
	InitializeFromSeed(seed []byte) error

	// GetSeed gets the seed (from memory)
	GetSeed() []byte

	// IsInitialized checks if seed is initialized
	IsInitialized() bool

	// Clear clears the seed from memory
	Clear()
}
