package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"github.com/ethereum/go-ethereum/common"
)

// EventName is the name of a notification emitted to the host framework.
type EventName string

const (
	// EventChange carries an updated chain descriptor or account list.
	EventChange EventName = "change"
	// EventConnect is emitted once a wallet session is established.
	EventConnect EventName = "connect"
	// EventDisconnect is emitted when the wallet session ends.
	EventDisconnect EventName = "disconnect"
	// EventMessage carries a lifecycle phase such as MessageConnecting.
	EventMessage EventName = "message"
)

// MessageConnecting is the lifecycle phase emitted before a wallet connection attempt.
const MessageConnecting = "connecting"

// Event is a notification sent to the host framework.
type Event struct {
	Name     EventName        `json:"name"`
	Chain    *Chain           `json:"chain,omitempty"`
	ChainID  ChainID          `json:"chainId,omitempty"`
	Accounts []common.Address `json:"accounts,omitempty"`
	Message  string           `json:"type,omitempty"`
}

// ConnectInfo is the payload of a wallet connect notification.
type ConnectInfo struct {
	ChainID  ChainID          `json:"chainId"`
	Accounts []common.Address `json:"accounts"`
}
