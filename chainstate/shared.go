// Package chainstate holds the chain selection shared by every connector instance that drives
// the same wallet handle.
package chainstate

import (
	"sync"

	"github.com/smartcontractkit/connector/types"
)

// SharedChainID is a single-value cell holding the active chain id, with change notification.
//
// The wallet handle behind the connectors supports one active chain at a time, so all connector
// instances created over it must be given the same SharedChainID.
type SharedChainID struct {
	mu        sync.RWMutex
	current   types.ChainID
	set       bool
	callbacks []func(types.ChainID)
}

// New creates an unset SharedChainID.
func New() *SharedChainID {
	return &SharedChainID{}
}

// Set stores chainID and then invokes every registered callback with it, in registration order,
// before returning. Setting the current value again still fires the callbacks.
//
// Callbacks run outside the lock and may call Get. They must not call Set.
func (s *SharedChainID) Set(chainID types.ChainID) {
	s.mu.Lock()
	s.current = chainID
	s.set = true
	callbacks := make([]func(types.ChainID), len(s.callbacks))
	copy(callbacks, s.callbacks)
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb(chainID)
	}
}

// Get returns the active chain id, or false if Set was never called.
func (s *SharedChainID) Get() (types.ChainID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current, s.set
}

// OnChange registers fn for future changes. It is not invoked for the current value.
// Callbacks cannot be removed; they live as long as the cell.
func (s *SharedChainID) OnChange(fn func(types.ChainID)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.callbacks = append(s.callbacks, fn)
}
