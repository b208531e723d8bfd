package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/wallet-sdk/hdwallet"
	"github/chapool/wallet-sdk/internal/cli"
	"github/chapool/wallet-sdk/internal/config"
)

const testMnemonic = "cook voyage document eight skate token alien guide drink uncle term abuse"

func TestResolveMnemonicFromFlag(t *testing.T) {
	mnemonic, err := cli.ResolveMnemonic(testMnemonic)
	require.NoError(t, err)
	assert.Equal(t, testMnemonic, mnemonic)
}

func TestResolvePath(t *testing.T) {
	cfg := config.Config{DefaultPathPrefix: "m/44'/60'/0'/0"}

	assert.Equal(t, "m/44'/60'/0'/0/0", cli.ResolvePath(cfg, "", 0))
	assert.Equal(t, "m/44'/60'/0'/0/7", cli.ResolvePath(cfg, "", 7))
	assert.Equal(t, "m/0'/1", cli.ResolvePath(cfg, "m/0'/1", 7))
}

func TestResolvePassphraseWithoutPrompt(t *testing.T) {
	passphrase, err := cli.ResolvePassphrase(false)
	require.NoError(t, err)
	assert.Equal(t, "", passphrase)
}

func TestDeriveLeaf(t *testing.T) {
	leaf, cleanup, err := cli.DeriveLeaf(testMnemonic, "", "m/44'/60'/0'/0/0")
	require.NoError(t, err)

	assert.Equal(t, "0x405005C7c4422390F4B334F64Cf20E0b767131d0", leaf.Address().Hex())
	assert.Equal(t, "m/44'/60'/0'/0/0", leaf.Path())

	cleanup()
	_, err = leaf.DeriveChild(0)
	assert.ErrorIs(t, err, hdwallet.ErrDisposedKey)
}

func TestDeriveLeafInvalidPath(t *testing.T) {
	_, _, err := cli.DeriveLeaf(testMnemonic, "", "m/oops")
	require.ErrorIs(t, err, hdwallet.ErrInvalidPathComponent)
}
