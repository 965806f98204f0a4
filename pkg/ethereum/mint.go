// Package ethereum builds unsigned contract-call transactions for the NFT
// contract. Nothing here signs or broadcasts; the caller's wallet does that.
package ethereum

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/nft-mint-action/pkg/ethereum/contracts"
)

const safeMintMethod = "safeMint"

var (
	// ErrInvalidAddress is returned for a recipient that is not a 0x-prefixed 20-byte hex address.
	ErrInvalidAddress = errors.New("invalid recipient address")
	// ErrEmptyTokenURI is returned when safeMint is requested without a token URI.
	ErrEmptyTokenURI = errors.New("token uri is required")
)

// Transaction is an unsigned contract call.
type Transaction struct {
	To      common.Address
	Data    []byte
	Value   *big.Int
	ChainID uint64
}

// Minter encodes safeMint calls against a single deployed contract.
type Minter struct {
	contract common.Address
	chainID  uint64
	abi      *abi.ABI
}

// NewMinter returns a Minter for the contract at contractAddr on chainID.
func NewMinter(contractAddr string, chainID uint64) (*Minter, error) {
	if !common.IsHexAddress(contractAddr) {
		return nil, fmt.Errorf("invalid contract address %q", contractAddr)
	}
	if chainID == 0 {
		return nil, fmt.Errorf("chain id is required")
	}

	parsed, err := contracts.ParseImageNFTABI()
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}
	if _, ok := parsed.Methods[safeMintMethod]; !ok {
		return nil, fmt.Errorf("contract ABI has no %s method", safeMintMethod)
	}

	return &Minter{
		contract: common.HexToAddress(contractAddr),
		chainID:  chainID,
		abi:      parsed,
	}, nil
}

// Contract returns the contract address transactions are sent to.
func (m *Minter) Contract() common.Address {
	return m.contract
}

// ChainID returns the chain the transactions target.
func (m *Minter) ChainID() uint64 {
	return m.chainID
}

// BuildSafeMint encodes safeMint(recipient, tokenURI) into a zero-value transaction.
func (m *Minter) BuildSafeMint(recipient, tokenURI string) (*Transaction, error) {
	to, err := ParseAddress(recipient)
	if err != nil {
		return nil, err
	}
	if tokenURI == "" {
		return nil, ErrEmptyTokenURI
	}

	data, err := m.abi.Pack(safeMintMethod, to, tokenURI)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", safeMintMethod, err)
	}

	return &Transaction{
		To:      m.contract,
		Data:    data,
		Value:   new(big.Int),
		ChainID: m.chainID,
	}, nil
}

// ParseAddress validates a 0x-prefixed hex address. Mixed-case input must carry
// a valid EIP-55 checksum; all-lower and all-upper input is accepted as is.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	addr := common.HexToAddress(s)
	body := s[2:]
	if body != strings.ToLower(body) && body != strings.ToUpper(body) && addr.Hex() != s {
		return common.Address{}, fmt.Errorf("%w: bad checksum %q", ErrInvalidAddress, s)
	}
	return addr, nil
}
