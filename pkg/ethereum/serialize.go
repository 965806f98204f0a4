package ethereum

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// bigintPrefix marks a big integer serialized as a string so that wallet
// clients can restore it without losing precision.
const bigintPrefix = "#bigint."

// BigInt is a *big.Int encoded as "#bigint.<decimal>".
type BigInt struct {
	*big.Int
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	v := b.Int
	if v == nil {
		v = new(big.Int)
	}
	return json.Marshal(bigintPrefix + v.String())
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("bigint must be a string: %w", err)
	}
	if !strings.HasPrefix(s, bigintPrefix) {
		return fmt.Errorf("bigint %q missing %q prefix", s, bigintPrefix)
	}
	v, ok := new(big.Int).SetString(strings.TrimPrefix(s, bigintPrefix), 10)
	if !ok {
		return fmt.Errorf("invalid bigint %q", s)
	}
	b.Int = v
	return nil
}

// wireTransaction fixes the field order of the serialized form. The address
// is kept in its checksummed form.
type wireTransaction struct {
	To      string        `json:"to"`
	Data    hexutil.Bytes `json:"data"`
	Value   BigInt        `json:"value"`
	ChainID uint64        `json:"chainId"`
}

// SerializeTransaction renders tx as the JSON string wallets deserialize:
// {"to":"0x..","data":"0x..","value":"#bigint.0","chainId":43113}.
func SerializeTransaction(tx *Transaction) (string, error) {
	if tx == nil {
		return "", fmt.Errorf("nil transaction")
	}
	raw, err := json.Marshal(wireTransaction{
		To:      tx.To.Hex(),
		Data:    tx.Data,
		Value:   BigInt{tx.Value},
		ChainID: tx.ChainID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to serialize transaction: %w", err)
	}
	return string(raw), nil
}

// DeserializeTransaction is the inverse of SerializeTransaction.
func DeserializeTransaction(s string) (*Transaction, error) {
	var w wireTransaction
	if err := json.Unmarshal([]byte(s), &w); err != nil {
		return nil, fmt.Errorf("failed to deserialize transaction: %w", err)
	}
	if !common.IsHexAddress(w.To) {
		return nil, fmt.Errorf("invalid transaction recipient %q", w.To)
	}
	return &Transaction{
		To:      common.HexToAddress(w.To),
		Data:    w.Data,
		Value:   w.Value.Int,
		ChainID: w.ChainID,
	}, nil
}
