package hdwallet

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required by BIP-32 fingerprints
)

const (
	// HardenedKeyStart is the first hardened child index (the top bit of the
	// 32-bit index).
	HardenedKeyStart uint32 = 0x80000000

	// MinSeedLength and MaxSeedLength bound the accepted seed size in bytes.
	MinSeedLength = 16
	MaxSeedLength = 64

	// ChainCodeLength is the size of a BIP-32 chain code in bytes.
	ChainCodeLength = 32
)

// masterHMACKey is the HMAC-SHA512 key fixed by BIP-32 for master key
// generation.
var masterHMACKey = []byte("Bitcoin seed")

// HDNode is one position in a BIP-32 key tree: a signing key plus the chain
// metadata needed to derive children. Nodes are immutable once constructed;
// the only state transition is the zero-on-Dispose of the key buffer.
//
// A node created by Neuter carries no private key and can only derive
// non-hardened children.
type HDNode struct {
	key               *SigningKey // nil for neutered nodes
	pubCompressed     [CompressedPubKeyLength]byte
	pubUncompressed   [UncompressedPubKeyLength]byte
	chainCode         [ChainCodeLength]byte
	depth             uint8
	index             uint32
	parentFingerprint [4]byte
	path              string
	transport         Transport
}

// FromSeed computes the master node of a key tree from a 16-64 byte seed per
// BIP-32: I = HMAC-SHA512("Bitcoin seed", seed), with I[:32] the master
// private key and I[32:] the master chain code. The seed itself is not
// retained.
func FromSeed(seed []byte) (*HDNode, error) {
	if len(seed) < MinSeedLength || len(seed) > MaxSeedLength {
		return nil, errors.Wrapf(ErrInvalidSeedLength, "got %d bytes", len(seed))
	}

	mac := hmac.New(sha512.New, masterHMACKey)
	mac.Write(seed)
	intermediate := mac.Sum(nil)
	defer zeroBytes(intermediate)

	il := make([]byte, PrivateKeyLength)
	copy(il, intermediate[:PrivateKeyLength])
	if scalarIsZero(il) || !scalarBelowOrder(il) {
		zeroBytes(il)
		return nil, errors.Wrap(ErrInvalidDerivedKey, "master key")
	}

	key, err := NewSigningKey(il)
	if err != nil {
		zeroBytes(il)
		return nil, err
	}

	node := &HDNode{
		key:  key,
		path: "m",
	}
	copy(node.chainCode[:], intermediate[PrivateKeyLength:])
	node.pubCompressed = key.pubCompressed
	node.pubUncompressed = key.pubUncompressed
	return node, nil
}

// DeriveChild derives the child node at index. The hardened range (index >=
// HardenedKeyStart) feeds the parent private key into the HMAC; the normal
// range feeds the compressed public key. The parent's buffers are read-only
// inputs here: the child scalar is computed into its own freshly allocated
// buffer via (parent + IL) mod n.
func (n *HDNode) DeriveChild(index uint32) (*HDNode, error) {
	hardened := index >= HardenedKeyStart
	if n.key == nil && hardened {
		return nil, errors.Wrapf(ErrUnsupportedOperation, "child index %d", index)
	}
	if n.key != nil && n.key.disposed {
		return nil, errors.Wrap(ErrDisposedKey, "derive child")
	}

	var data [37]byte
	if hardened {
		// data = 0x00 || parent private key || index
		copy(data[1:33], n.key.priv)
	} else {
		// data = parent compressed public key || index
		copy(data[0:33], n.pubCompressed[:])
	}
	binary.BigEndian.PutUint32(data[33:37], index)

	mac := hmac.New(sha512.New, n.chainCode[:])
	mac.Write(data[:])
	intermediate := mac.Sum(nil)
	zeroBytes(data[:])
	defer zeroBytes(intermediate)

	child := &HDNode{
		depth:             n.depth + 1,
		index:             index,
		parentFingerprint: n.fingerprint(),
		transport:         n.transport,
	}
	copy(child.chainCode[:], intermediate[PrivateKeyLength:])

	if n.key != nil {
		priv := addScalars(n.key.priv, intermediate[:PrivateKeyLength])
		if scalarIsZero(priv) {
			return nil, errors.Wrapf(ErrInvalidDerivedKey, "child index %d", index)
		}
		key, err := NewSigningKey(priv)
		if err != nil {
			zeroBytes(priv)
			return nil, err
		}
		child.key = key
		child.pubCompressed = key.pubCompressed
		child.pubUncompressed = key.pubUncompressed
	} else {
		pub, err := childPublicKey(n.pubCompressed[:], intermediate[:PrivateKeyLength])
		if err != nil {
			return nil, errors.Wrapf(err, "child index %d", index)
		}
		copy(child.pubCompressed[:], pub.SerializeCompressed())
		copy(child.pubUncompressed[:], pub.SerializeUncompressed())
	}

	if n.path != "" {
		child.path = childPath(n.path, index)
	}
	return child, nil
}

// Neuter returns a public-only view of the node: same chain code, depth and
// path, but no private key. Neutered nodes can derive non-hardened children
// and never carry secret-bearing fields, so watch-only consumers compose
// with them instead of with the full node.
func (n *HDNode) Neuter() *HDNode {
	if n.key == nil {
		return n
	}
	return &HDNode{
		pubCompressed:     n.pubCompressed,
		pubUncompressed:   n.pubUncompressed,
		chainCode:         n.chainCode,
		depth:             n.depth,
		index:             n.index,
		parentFingerprint: n.parentFingerprint,
		path:              n.path,
		transport:         n.transport,
	}
}

// SigningKey returns the node's signing key, or nil for a neutered node. The
// key remains owned by the node; disposing either disposes both.
func (n *HDNode) SigningKey() *SigningKey {
	return n.key
}

// IsNeutered reports whether the node carries no private key.
func (n *HDNode) IsNeutered() bool {
	return n.key == nil
}

// Address returns the EVM address of the node's public key.
func (n *HDNode) Address() common.Address {
	return common.BytesToAddress(crypto.Keccak256(n.pubUncompressed[1:])[12:])
}

// ChainCode returns a copy of the 32-byte chain code.
func (n *HDNode) ChainCode() []byte {
	out := make([]byte, ChainCodeLength)
	copy(out, n.chainCode[:])
	return out
}

// CompressedPublicKey returns a copy of the compressed public key.
func (n *HDNode) CompressedPublicKey() []byte {
	out := make([]byte, CompressedPubKeyLength)
	copy(out, n.pubCompressed[:])
	return out
}

// Depth returns the number of derivation steps from the master node.
func (n *HDNode) Depth() uint8 {
	return n.depth
}

// Index returns the child index this node was derived at (0 for the master).
func (n *HDNode) Index() uint32 {
	return n.index
}

// ParentFingerprint returns the 4-byte identifier of the parent public key
// (all zeros for the master).
func (n *HDNode) ParentFingerprint() []byte {
	out := make([]byte, 4)
	copy(out, n.parentFingerprint[:])
	return out
}

// Path returns the accumulated derivation path, e.g. "m/44'/60'/0'/0/1", or
// "" for a bare node.
func (n *HDNode) Path() string {
	return n.path
}

// Fingerprint returns RIPEMD160(SHA256(compressed public key))[:4], the
// identifier recorded as the parent fingerprint on this node's children.
func (n *HDNode) Fingerprint() []byte {
	fp := n.fingerprint()
	return fp[:]
}

// Dispose zeroes the node's private key buffer in place. Neutered nodes have
// nothing to erase. Safe to call more than once.
func (n *HDNode) Dispose() {
	if n.key != nil {
		n.key.Dispose()
	}
}

func (n *HDNode) fingerprint() [4]byte {
	sha := sha256.Sum256(n.pubCompressed[:])
	rip := ripemd160.New()
	rip.Write(sha[:])
	var fp [4]byte
	copy(fp[:], rip.Sum(nil))
	return fp
}

// childPublicKey computes parentPub + IL*G, the non-hardened public child
// derivation of BIP-32.
func childPublicKey(parentPub, il []byte) (*secp256k1.PublicKey, error) {
	var tweak secp256k1.ModNScalar
	if overflow := tweak.SetByteSlice(il); overflow {
		return nil, ErrInvalidDerivedKey
	}
	defer tweak.Zero()

	parent, err := secp256k1.ParsePubKey(parentPub)
	if err != nil {
		return nil, errors.Wrap(err, "parse parent public key")
	}

	var parentJ, tweakJ, childJ secp256k1.JacobianPoint
	parent.AsJacobian(&parentJ)
	secp256k1.ScalarBaseMultNonConst(&tweak, &tweakJ)
	secp256k1.AddNonConst(&parentJ, &tweakJ, &childJ)
	if (childJ.X.IsZero() && childJ.Y.IsZero()) || childJ.Z.IsZero() {
		return nil, ErrInvalidDerivedKey
	}
	childJ.ToAffine()
	return secp256k1.NewPublicKey(&childJ.X, &childJ.Y), nil
}

func childPath(parent string, index uint32) string {
	if index >= HardenedKeyStart {
		return fmt.Sprintf("%s/%d'", parent, index-HardenedKeyStart)
	}
	return fmt.Sprintf("%s/%d", parent, index)
}

func scalarBelowOrder(s []byte) bool {
	for i := range s {
		switch {
		case s[i] < curveOrder[i]:
			return true
		case s[i] > curveOrder[i]:
			return false
		}
	}
	return false
}
