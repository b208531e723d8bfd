package hdwallet

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// pathComponentPattern matches a single derivation path segment: decimal
// digits with an optional trailing apostrophe for hardened derivation.
var pathComponentPattern = regexp.MustCompile(`^[0-9]+'?$`)

// DerivePath walks a BIP-44 style path string ("m/44'/60'/0'/0/1" or a
// relative "0/1") by applying DeriveChild left to right.
//
// A leading "m" anchors the path at the master and is only valid when the
// receiver is the root (depth 0); on any other node it fails with
// ErrInvalidPath. Each remaining segment must be a decimal index below 2^31,
// optionally suffixed with ' for hardened derivation; offending segments fail
// with a PathComponentError naming the segment and its position.
//
// Intermediate nodes created along the walk are disposed before returning,
// on success and on every error path, so the only live key buffers afterward
// are the receiver's and the returned leaf's. "m" on the root resolves to
// the receiver itself.
func (n *HDNode) DerivePath(path string) (*HDNode, error) {
	components := strings.Split(path, "/")
	if components[0] == "m" {
		if n.depth != 0 {
			return nil, errors.Wrapf(ErrInvalidPath, "path %q re-anchors at the master but node depth is %d", path, n.depth)
		}
		components = components[1:]
	}

	node := n
	for position, component := range components {
		index, err := parsePathComponent(component, position)
		if err != nil {
			if node != n {
				node.Dispose()
			}
			return nil, err
		}

		child, err := node.DeriveChild(index)
		if node != n {
			node.Dispose()
		}
		if err != nil {
			return nil, errors.Wrapf(err, "path %q", path)
		}
		node = child
	}
	return node, nil
}

func parsePathComponent(component string, position int) (uint32, error) {
	if !pathComponentPattern.MatchString(component) {
		return 0, &PathComponentError{Component: component, Position: position}
	}

	numeric := strings.TrimSuffix(component, "'")
	hardened := len(numeric) != len(component)

	value, err := strconv.ParseUint(numeric, 10, 64)
	if err != nil {
		// Matched the digit pattern but overflows uint64.
		return 0, errors.Wrapf(ErrInvalidIndex, "component %q at position %d", component, position)
	}
	if value > math.MaxUint32 {
		return 0, errors.Wrapf(ErrInvalidIndex, "component %q at position %d", component, position)
	}
	if value >= uint64(HardenedKeyStart) {
		return 0, &PathComponentError{Component: component, Position: position}
	}

	index := uint32(value)
	if hardened {
		index += HardenedKeyStart
	}
	return index, nil
}
