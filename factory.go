package connector

import (
	"slices"

	"github.com/smartcontractkit/connector/chainstate"
)

// Factory creates connectors that share one wallet loader, one emitter and one active chain.
// Hosts that instantiate the connector several times should create them through one Factory.
type Factory struct {
	cfg    Config
	shared *chainstate.SharedChainID
	opts   []Option
}

// NewFactory validates cfg and returns a Factory. opts are applied to every connector it creates.
func NewFactory(cfg Config, opts ...Option) (*Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	shared := chainstate.New()

	return &Factory{
		cfg:    cfg,
		shared: shared,
		opts:   append([]Option{WithSharedChainID(shared)}, opts...),
	}, nil
}

// New creates a connector bound to the factory's shared chain. opts are applied after the
// factory's own.
func (f *Factory) New(opts ...Option) (*Connector, error) {
	return New(f.cfg, append(slices.Clone(f.opts), opts...)...)
}

// SharedChainID returns the chain cell shared by the factory's connectors.
func (f *Factory) SharedChainID() *chainstate.SharedChainID {
	return f.shared
}
