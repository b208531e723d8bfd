package hdwallet

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestAddScalars(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want string
	}{
		{
			name: "small values",
			a:    "0000000000000000000000000000000000000000000000000000000000000002",
			b:    "0000000000000000000000000000000000000000000000000000000000000003",
			want: "0000000000000000000000000000000000000000000000000000000000000005",
		},
		{
			name: "byte carry propagation",
			a:    "00000000000000000000000000000000000000000000000000000000ffffffff",
			b:    "0000000000000000000000000000000000000000000000000000000000000001",
			want: "0000000000000000000000000000000000000000000000000000000100000000",
		},
		{
			name: "sum equals order reduces to zero",
			a:    "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140", // n-1
			b:    "0000000000000000000000000000000000000000000000000000000000000001",
			want: "0000000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name: "sum above order without 256-bit overflow",
			a:    "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd036413e", // n-3
			b:    "000000000000000000000000000000000000000000000000000000000000000a",
			want: "0000000000000000000000000000000000000000000000000000000000000007",
		},
		{
			name: "256-bit overflow",
			a:    "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
			b:    "0000000000000000000000000000000000000000000000000000000000000005",
			want: "000000000000000000000000000000014551231950b75fc4402da1732fc9bec3",
		},
		{
			name: "overflow needing two order subtractions",
			a:    "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
			b:    "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140", // n-1
			want: "000000000000000000000000000000014551231950b75fc4402da1732fc9bebd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := fromHex(t, tt.a)
			b := fromHex(t, tt.b)
			got := addScalars(a, b)
			assert.Equal(t, tt.want, hex.EncodeToString(got))

			// inputs are read-only
			assert.Equal(t, fromHex(t, tt.a), a)
			assert.Equal(t, fromHex(t, tt.b), b)
		})
	}
}

func TestScalarIsZero(t *testing.T) {
	zero := make([]byte, 32)
	assert.True(t, scalarIsZero(zero))

	almost := make([]byte, 32)
	almost[31] = 1
	assert.False(t, scalarIsZero(almost))

	almost[31] = 0
	almost[0] = 0x80
	assert.False(t, scalarIsZero(almost))
}

func TestScalarBelowOrder(t *testing.T) {
	assert.True(t, scalarBelowOrder(fromHex(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140"))) // n-1
	assert.False(t, scalarBelowOrder(curveOrder[:]))
	assert.False(t, scalarBelowOrder(fromHex(t, "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")))
	assert.True(t, scalarBelowOrder(make([]byte, 32)))
}

func TestZeroBytes(t *testing.T) {
	b := fromHex(t, "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	zeroBytes(b)
	assert.Equal(t, make([]byte, 32), b)
}
