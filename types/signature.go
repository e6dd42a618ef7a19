package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// SignatureBytesLength is the length of an R || S || V signature.
	SignatureBytesLength = 65

	// SignatureComponentSize is the size of R and S in bytes.
	SignatureComponentSize = 32

	// SignatureVOffset is added to the recovery id in wallet signatures, giving V values of 27
	// or 28.
	SignatureVOffset = 27
)

// Signature is a wallet signature as returned by personal_sign and eth_signTypedData_v4.
type Signature struct {
	R common.Hash
	S common.Hash
	V uint8
}

// NewSignatureFromBytes splits a 65 byte R || S || V signature.
func NewSignatureFromBytes(sig []byte) (Signature, error) {
	if len(sig) != SignatureBytesLength {
		return Signature{}, fmt.Errorf("invalid signature length: %d", len(sig))
	}

	return Signature{
		R: common.BytesToHash(sig[:SignatureComponentSize]),
		S: common.BytesToHash(sig[SignatureComponentSize:(SignatureBytesLength - 1)]),
		V: sig[SignatureBytesLength-1],
	}, nil
}

// ToBytes returns the R || S || V encoding.
func (s Signature) ToBytes() []byte {
	return slices.Concat(
		s.R.Bytes(),
		s.S.Bytes(),
		[]byte{s.V},
	)
}

func (s Signature) Hex() string {
	return hexutil.Encode(s.ToBytes())
}

// Recover returns the address that signed hash. Both raw (0, 1) and wallet (27, 28) recovery ids
// are accepted.
func (s Signature) Recover(hash []byte) (common.Address, error) {
	sig := s.ToBytes()
	if sig[SignatureBytesLength-1] >= SignatureVOffset {
		sig[SignatureBytesLength-1] -= SignatureVOffset
	}

	pubKey, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}

	return crypto.PubkeyToAddress(*pubKey), nil
}

// RecoverMessage returns the address that signed message with the EIP-191 personal message
// prefix.
func (s Signature) RecoverMessage(message []byte) (common.Address, error) {
	return s.Recover(accounts.TextHash(message))
}
