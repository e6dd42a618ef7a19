package testutils

import (
	"context"
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
)

// DefaultBalance is the balance every account reports on an RPCChain.
var DefaultBalance = big.NewInt(1e18)

// RPCChain is an in-process JSON-RPC server answering the eth namespace calls the wallet uses.
type RPCChain struct {
	ChainID uint64
	Server  *rpc.Server

	service *ethService
}

// NewRPCChain starts an in-process server that reports chainID from eth_chainId.
func NewRPCChain(t *testing.T, chainID uint64) *RPCChain {
	t.Helper()

	service := &ethService{chainID: chainID, block: 1}
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("eth", service))
	t.Cleanup(server.Stop)

	return &RPCChain{ChainID: chainID, Server: server, service: service}
}

// URL is the fake endpoint used to address this chain through a Dialer.
func (c *RPCChain) URL() string {
	return "http://chain-" + hexutil.EncodeUint64(c.ChainID) + ".test"
}

// Calls returns the eth methods served so far, in order.
func (c *RPCChain) Calls() []string {
	c.service.mu.Lock()
	defer c.service.mu.Unlock()

	return append([]string(nil), c.service.calls...)
}

// Dialer routes dials of chain URLs to their in-process servers and counts them.
type Dialer struct {
	mu     sync.Mutex
	chains map[string]*RPCChain
	dials  map[string]int
}

// NewDialer creates a Dialer for chains.
func NewDialer(chains ...*RPCChain) *Dialer {
	d := &Dialer{chains: map[string]*RPCChain{}, dials: map[string]int{}}
	for _, c := range chains {
		d.chains[c.URL()] = c
	}

	return d
}

// Dial returns an in-process client for the chain registered under rawURL.
func (d *Dialer) Dial(_ context.Context, rawURL string) (*rpc.Client, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	chain, ok := d.chains[rawURL]
	if !ok {
		return nil, &UnknownEndpointError{URL: rawURL}
	}
	d.dials[rawURL]++

	return rpc.DialInProc(chain.Server), nil
}

// Dials returns how many times rawURL was dialed.
func (d *Dialer) Dials(rawURL string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.dials[rawURL]
}

// UnknownEndpointError is returned by Dialer for URLs without a chain.
type UnknownEndpointError struct {
	URL string
}

func (e *UnknownEndpointError) Error() string {
	return "no test chain registered for " + e.URL
}

type ethService struct {
	chainID uint64
	block   uint64

	mu    sync.Mutex
	calls []string
}

func (s *ethService) record(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, method)
}

func (s *ethService) ChainId() hexutil.Uint64 { //nolint:revive,stylecheck // rpc method name
	s.record("eth_chainId")
	return hexutil.Uint64(s.chainID)
}

func (s *ethService) BlockNumber() hexutil.Uint64 {
	s.record("eth_blockNumber")
	return hexutil.Uint64(s.block)
}

func (s *ethService) GetBalance(_ common.Address, block string) (*hexutil.Big, error) {
	s.record("eth_getBalance")
	if !strings.EqualFold(block, "latest") {
		return nil, &UnknownBlockError{Block: block}
	}

	return (*hexutil.Big)(DefaultBalance), nil
}

// UnknownBlockError is returned for block tags other than latest.
type UnknownBlockError struct {
	Block string
}

func (e *UnknownBlockError) Error() string {
	return "unknown block " + e.Block
}
