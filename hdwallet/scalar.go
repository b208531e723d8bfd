package hdwallet

import "bytes"

// curveOrder is the secp256k1 group order n, big-endian.
var curveOrder = [32]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
	0xba, 0xae, 0xdc, 0xe6, 0xaf, 0x48, 0xa0, 0x3b,
	0xbf, 0xd2, 0x5e, 0x8c, 0xd0, 0x36, 0x41, 0x41,
}

// addScalars returns (a + b) mod n in a freshly allocated 32-byte buffer.
// Both inputs are read-only; the arithmetic runs byte-by-byte on fixed-size
// buffers so no unreachable copies of key material are left behind, which is
// the reason math/big is not used here.
func addScalars(a, b []byte) []byte {
	sum := make([]byte, 32)
	var carry uint16
	for i := 31; i >= 0; i-- {
		v := uint16(a[i]) + uint16(b[i]) + carry
		sum[i] = byte(v)
		carry = v >> 8
	}

	// Reduce the 257-bit value (carry, sum) below n. The sum of two 256-bit
	// values can exceed 2n, so up to two subtractions are needed.
	for carry != 0 || bytes.Compare(sum, curveOrder[:]) >= 0 {
		carry -= uint16(subOrderInPlace(sum))
	}

	return sum
}

// subOrderInPlace subtracts n from s in place and returns the borrow out of
// the most significant byte.
func subOrderInPlace(s []byte) byte {
	var borrow uint16
	for i := 31; i >= 0; i-- {
		v := uint16(s[i]) - uint16(curveOrder[i]) - borrow
		s[i] = byte(v)
		borrow = (v >> 8) & 1
	}
	return byte(borrow)
}

func scalarIsZero(s []byte) bool {
	var acc byte
	for _, b := range s {
		acc |= b
	}
	return acc == 0
}

// zeroBytes overwrites b in place. Used everywhere secret material goes out
// of scope.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
