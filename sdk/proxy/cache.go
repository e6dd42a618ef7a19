// Package proxy presents stable provider and signer handles over the wallet's per-chain objects,
// rebinding to the object for the active chain whenever the shared chain id changes.
package proxy

import (
	"context"
	"sync"

	"github.com/smartcontractkit/connector/chainstate"
	"github.com/smartcontractkit/connector/sdk"
	"github.com/smartcontractkit/connector/types"
)

// binding records the chain a cached delegate was minted for.
type binding[T any] struct {
	chainID  types.ChainID
	delegate T
	ok       bool
}

// stale reports whether the binding must be replaced before use on chain current.
func (b binding[T]) stale(current types.ChainID) bool {
	return !b.ok || b.chainID != current
}

// chainScoped is a single-entry cache keyed by chain id.
type chainScoped[T any] struct {
	wallet sdk.Wallet
	shared *chainstate.SharedChainID
	mint   func(ctx context.Context, chainID types.ChainID) (T, error)

	// onSwap runs with the new binding after every successful mint, while the cache is locked.
	onSwap func(prev, next binding[T])

	mu    sync.Mutex
	bound binding[T]
}

// current returns the shared chain id, falling back to the wallet's default chain until a
// connector has switched.
func (c *chainScoped[T]) current() types.ChainID {
	if id, ok := c.shared.Get(); ok {
		return id
	}

	return c.wallet.ChainID()
}

// resolve returns the delegate for the current chain, minting a new one if the cached binding is
// stale. Mint errors are returned as is.
func (c *chainScoped[T]) resolve(ctx context.Context) (T, error) {
	id := c.current()

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.bound.stale(id) {
		return c.bound.delegate, nil
	}

	next, err := c.mint(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}

	prev := c.bound
	c.bound = binding[T]{chainID: id, delegate: next, ok: true}
	if c.onSwap != nil {
		c.onSwap(prev, c.bound)
	}

	return next, nil
}
