package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cast"

	"github.com/smartcontractkit/connector/internal/utils/safecast"
)

// ChainID is the numeric identifier of an EVM network. The zero value means unset.
type ChainID uint64

// String returns the decimal representation of the chain id.
func (id ChainID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Hex returns the 0x-prefixed hexadecimal representation used on the wire.
func (id ChainID) Hex() string {
	return hexutil.EncodeUint64(uint64(id))
}

// Big returns the chain id as a big.Int, as expected by go-ethereum signers.
func (id ChainID) Big() *big.Int {
	return new(big.Int).SetUint64(uint64(id))
}

// ChainIDCarrier is implemented by values that wrap a chain id, such as the parameter object of a
// wallet_switchEthereumChain request.
type ChainIDCarrier interface {
	ChainIDValue() any
}

const chainIDField = "chainId"

// ParseChainIDError is returned when a value cannot be normalized into a ChainID.
type ParseChainIDError struct {
	Value any
	Err   error
}

func (e *ParseChainIDError) Error() string {
	return fmt.Sprintf("invalid chain id %v: %v", e.Value, e.Err)
}

func (e *ParseChainIDError) Unwrap() error {
	return e.Err
}

// NewParseChainIDError creates a new ParseChainIDError.
func NewParseChainIDError(value any, err error) *ParseChainIDError {
	return &ParseChainIDError{Value: value, Err: err}
}

// NormalizeChainID coerces the chain id representations used by hosts, wallets and JSON-RPC
// requests into a ChainID.
//
// Objects carrying a chainId field are unwrapped recursively. Strings are trimmed and parsed as
// base 16 when prefixed with 0x (case-insensitive), otherwise as base 10. Big and sized integers
// are converted with range checks.
func NormalizeChainID(v any) (ChainID, error) {
	switch val := v.(type) {
	case ChainID:
		return val, nil
	case string:
		return parseChainIDString(val)
	case json.Number:
		return parseChainIDString(val.String())
	case json.RawMessage:
		return normalizeRawChainID(val)
	case map[string]any:
		field, ok := val[chainIDField]
		if !ok {
			return 0, NewParseChainIDError(v, fmt.Errorf("missing %s field", chainIDField))
		}

		return NormalizeChainID(field)
	case ChainIDCarrier:
		return NormalizeChainID(val.ChainIDValue())
	case *big.Int:
		return fromBig(v, val)
	case big.Int:
		return fromBig(v, &val)
	case *hexutil.Big:
		return fromBig(v, (*big.Int)(val))
	case hexutil.Big:
		return fromBig(v, (*big.Int)(&val))
	case hexutil.Uint64:
		return ChainID(val), nil
	case uint, uint8, uint16, uint32, uint64:
		u, err := cast.ToUint64E(val)
		if err != nil {
			return 0, NewParseChainIDError(v, err)
		}

		return ChainID(u), nil
	case int, int8, int16, int32, int64:
		i, err := cast.ToInt64E(val)
		if err != nil {
			return 0, NewParseChainIDError(v, err)
		}
		u, err := safecast.Int64ToUint64(i)
		if err != nil {
			return 0, NewParseChainIDError(v, err)
		}

		return ChainID(u), nil
	case float32, float64:
		// encoding/json decodes numbers into float64 when the target is any
		u, err := safecast.Float64ToUint64(cast.ToFloat64(val))
		if err != nil {
			return 0, NewParseChainIDError(v, err)
		}

		return ChainID(u), nil
	case nil:
		return 0, NewParseChainIDError(v, errors.New("chain id is nil"))
	default:
		return 0, NewParseChainIDError(v, fmt.Errorf("unsupported chain id type %T", v))
	}
}

// MustNormalizeChainID is like NormalizeChainID but panics on error.
func MustNormalizeChainID(v any) ChainID {
	id, err := NormalizeChainID(v)
	if err != nil {
		panic(err)
	}

	return id
}

func parseChainIDString(s string) (ChainID, error) {
	trimmed := strings.TrimSpace(s)

	base, digits := 10, trimmed
	if len(trimmed) >= 2 && strings.EqualFold(trimmed[:2], "0x") {
		base, digits = 16, trimmed[2:]
	}

	u, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, NewParseChainIDError(s, err)
	}

	return ChainID(u), nil
}

func normalizeRawChainID(raw json.RawMessage) (ChainID, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0, NewParseChainIDError(string(raw), errors.New("empty value"))
	}

	switch trimmed[0] {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return 0, NewParseChainIDError(string(raw), err)
		}
		field, ok := obj[chainIDField]
		if !ok {
			return 0, NewParseChainIDError(string(raw), fmt.Errorf("missing %s field", chainIDField))
		}

		return normalizeRawChainID(field)
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return 0, NewParseChainIDError(string(raw), err)
		}

		return parseChainIDString(s)
	default:
		return parseChainIDString(string(trimmed))
	}
}

func fromBig(orig any, b *big.Int) (ChainID, error) {
	u, err := safecast.BigIntToUint64(b)
	if err != nil {
		return 0, NewParseChainIDError(orig, err)
	}

	return ChainID(u), nil
}
