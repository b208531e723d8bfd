package hdwallet

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests live inside the package because they verify properties of the
// owned buffers themselves: that Dispose clears the exact memory region the
// key was constructed with, and that derivation never writes to a parent's
// buffer.

func TestDisposeZeroesBufferInPlace(t *testing.T) {
	priv, err := hex.DecodeString("260905feebf1ec684f36f1599128b85f3a26c2b817f2065a2fc278398449c41f")
	require.NoError(t, err)

	key, err := NewSigningKey(priv)
	require.NoError(t, err)

	key.Dispose()

	// the original backing array is cleared, not swapped out
	assert.Equal(t, make([]byte, 32), priv)
	assert.True(t, key.Disposed())

	// disposing again is harmless
	key.Dispose()
	assert.Equal(t, make([]byte, 32), priv)
}

func TestDeriveChildLeavesParentBufferIntact(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	master, err := FromSeed(seed)
	require.NoError(t, err)
	defer master.Dispose()

	snapshot := append([]byte(nil), master.key.priv...)

	normal, err := master.DeriveChild(0)
	require.NoError(t, err)
	defer normal.Dispose()

	hardened, err := master.DeriveChild(HardenedKeyStart)
	require.NoError(t, err)
	defer hardened.Dispose()

	assert.Equal(t, snapshot, master.key.priv)

	// children own freshly allocated buffers
	assert.NotSame(t, &master.key.priv[0], &normal.key.priv[0])
	assert.NotSame(t, &master.key.priv[0], &hardened.key.priv[0])
}

func TestNodeDisposeCascadesToKey(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	master, err := FromSeed(seed)
	require.NoError(t, err)

	buffer := master.key.priv
	master.Dispose()

	assert.Equal(t, make([]byte, 32), buffer)
	assert.True(t, master.key.Disposed())

	_, err = master.DeriveChild(0)
	assert.ErrorIs(t, err, ErrDisposedKey)
}
