package hdwallet

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Transport is the seam to the provider layer that talks to a node endpoint.
// The key engine never calls it; Connect only composes a node with a handle
// so higher layers can route balance queries and submission through it.
type Transport interface {
	// ChainID returns the chain the transport is connected to.
	ChainID(ctx context.Context) (*big.Int, error)

	// BalanceAt returns the latest balance of an address in wei.
	BalanceAt(ctx context.Context, address common.Address) (*big.Int, error)

	// SendRawTransaction submits an RLP-encoded signed transaction and
	// returns its hash.
	SendRawTransaction(ctx context.Context, raw []byte) (common.Hash, error)
}

// Connect returns a node bound to the given transport. The returned node
// shares this node's signing key, chain code and path metadata; it is a
// composition, not a derivation, so no new key material is created and
// disposing either node erases the shared key.
func (n *HDNode) Connect(transport Transport) *HDNode {
	bound := *n
	bound.transport = transport
	return &bound
}

// Transport returns the transport the node is bound to, or nil.
func (n *HDNode) Transport() Transport {
	return n.transport
}
