package rpc

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Block tags accepted wherever a BlockReference is expected.
const (
	BlockLatest    = "latest"
	BlockEarliest  = "earliest"
	BlockPending   = "pending"
	BlockFinalized = "finalized"
)

var blockTags = map[string]bool{
	BlockLatest:    true,
	BlockEarliest:  true,
	BlockPending:   true,
	BlockFinalized: true,
}

// IsBlockTag reports whether s is one of the named block tags.
func IsBlockTag(s string) bool {
	return blockTags[s]
}

// NormalizeBlockRef rewrites an integer block number into its hex quantity
// form ("0x" prefix, lowercase, no leading zeros). Tags, hashes and hex
// strings are returned unchanged, so normalizing twice is a no-op.
//
// Examples:
//   - 5 -> "0x5"
//   - uint64(0) -> "0x0"
//   - big.NewInt(255) -> "0xff"
//   - "latest" -> "latest"
//   - "0x5" -> "0x5"
func NormalizeBlockRef(v interface{}) interface{} {
	n, ok := toBigInt(v)
	if !ok || n.Sign() < 0 {
		return v
	}
	return hexutil.EncodeBig(n)
}

// isQuantityString reports whether s is a canonical hex quantity such as "0x1b4".
func isQuantityString(s string) bool {
	_, err := hexutil.DecodeBig(s)
	return err == nil
}

// toBigInt converts any Go integer kind, or *big.Int, into a *big.Int.
// The second result is false for every other type.
func toBigInt(v interface{}) (*big.Int, bool) {
	switch n := v.(type) {
	case int:
		return big.NewInt(int64(n)), true
	case int8:
		return big.NewInt(int64(n)), true
	case int16:
		return big.NewInt(int64(n)), true
	case int32:
		return big.NewInt(int64(n)), true
	case int64:
		return big.NewInt(n), true
	case uint:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	case *big.Int:
		if n == nil {
			return nil, false
		}
		return new(big.Int).Set(n), true
	default:
		return nil, false
	}
}

// isNonNegativeInteger reports whether v is a Go integer (or *big.Int) >= 0.
func isNonNegativeInteger(v interface{}) bool {
	n, ok := toBigInt(v)
	return ok && n.Sign() >= 0
}

// ParseHexUint64 converts a hex-encoded string (with or without "0x" prefix) to uint64.
//
// Examples:
//   - "0x172721e" -> 24277534
//   - "0x0" -> 0
//   - "" -> 0 (empty string treated as zero)
func ParseHexUint64(hex string) (uint64, error) {
	val, err := ParseHexBigInt(hex)
	if err != nil {
		return 0, err
	}
	if !val.IsUint64() {
		return 0, fmt.Errorf("value overflows uint64: %s", hex)
	}
	return val.Uint64(), nil
}

// ParseHexBigInt converts a hex-encoded string to *big.Int for values that may
// exceed uint64 range (balances, 32-byte quantities).
func ParseHexBigInt(hex string) (*big.Int, error) {
	hex = strings.TrimPrefix(hex, "0x")
	if hex == "" {
		return big.NewInt(0), nil
	}

	val := new(big.Int)
	if _, ok := val.SetString(hex, 16); !ok {
		return nil, fmt.Errorf("invalid hex: %s", hex)
	}
	return val, nil
}

// FormatNumber adds thousand separators to a decimal string, e.g. "24277510" -> "24,277,510".
func FormatNumber(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result []byte
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}
