package rpc

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DefaultWildcard is the sentinel HexChecker treats as "leave unspecified".
const DefaultWildcard = "*"

// Byte lengths of the fixed-size values the builder checks.
const (
	AddressLength = 20
	HashLength    = 32
)

// Checker holds the shape predicates the Builder validates against.
// Implementations must be safe to call with any value, including nil.
type Checker interface {
	// IsHexString reports whether v is a 0x-prefixed hex string with an
	// even number of digits.
	IsHexString(v interface{}) bool
	// IsHexStringOfLength reports whether v is a hex string encoding exactly
	// n bytes.
	IsHexStringOfLength(v interface{}, n int) bool
	// IsWildcard reports whether v is the "match any" sentinel. Wildcards
	// bypass every other shape check.
	IsWildcard(v interface{}) bool
}

// HexChecker is the default Checker. Hex strings are decoded with
// go-ethereum's hexutil, so a 0x prefix and an even digit count are required.
type HexChecker struct {
	wildcard string
}

// NewHexChecker returns a HexChecker that recognizes wildcard as the
// sentinel. An empty wildcard selects DefaultWildcard.
func NewHexChecker(wildcard string) *HexChecker {
	if wildcard == "" {
		wildcard = DefaultWildcard
	}
	return &HexChecker{wildcard: wildcard}
}

// Wildcard returns the sentinel this checker recognizes.
func (c *HexChecker) Wildcard() string { return c.wildcard }

// IsHexString reports whether v is a string hexutil.Decode accepts.
func (c *HexChecker) IsHexString(v interface{}) bool {
	_, ok := decodeHex(v)
	return ok
}

// IsHexStringOfLength reports whether v decodes to exactly n bytes.
func (c *HexChecker) IsHexStringOfLength(v interface{}, n int) bool {
	b, ok := decodeHex(v)
	return ok && len(b) == n
}

// IsWildcard reports whether v is a string equal to the configured sentinel.
func (c *HexChecker) IsWildcard(v interface{}) bool {
	s, ok := v.(string)
	return ok && s == c.wildcard
}

func decodeHex(v interface{}) ([]byte, bool) {
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, false
	}
	return b, true
}
