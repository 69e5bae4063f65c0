package rpc

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBlockRef(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want interface{}
	}{
		{"zero", 0, "0x0"},
		{"small", 5, "0x5"},
		{"uint64", uint64(24277534), "0x172721e"},
		{"int32", int32(255), "0xff"},
		{"big", new(big.Int).Lsh(big.NewInt(1), 64), "0x10000000000000000"},
		{"tag", "latest", "latest"},
		{"hex", "0x172721e", "0x172721e"},
		{"nil", nil, nil},
		{"negative untouched", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBlockRef(tt.in))
		})
	}
}

func TestNormalizeBlockRefIdempotent(t *testing.T) {
	for _, in := range []interface{}{0, 7, uint64(1 << 40), "pending", "0xabc", "0x" + strings.Repeat("ab", 32)} {
		once := NormalizeBlockRef(in)
		assert.Equal(t, once, NormalizeBlockRef(once), "input %v", in)
	}
}

func TestIsBlockTag(t *testing.T) {
	for _, tag := range []string{"latest", "earliest", "pending", "finalized"} {
		assert.True(t, IsBlockTag(tag), tag)
	}
	for _, s := range []string{"", "Latest", "safe", "0x1"} {
		assert.False(t, IsBlockTag(s), s)
	}
}

func TestParseHexUint64(t *testing.T) {
	tests := []struct {
		hex     string
		want    uint64
		wantErr bool
	}{
		{"0x172721e", 24277534, false},
		{"172721e", 24277534, false},
		{"0x0", 0, false},
		{"", 0, false},
		{"0xzz", 0, true},
		{"0x10000000000000000", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := ParseHexUint64(tt.hex)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1", "1"},
		{"123", "123"},
		{"1234", "1,234"},
		{"123456", "123,456"},
		{"24277510", "24,277,510"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.input))
		})
	}
}

func TestHexChecker(t *testing.T) {
	c := NewHexChecker("")
	assert.Equal(t, DefaultWildcard, c.Wildcard())

	assert.True(t, c.IsHexString("0x"))
	assert.True(t, c.IsHexString("0xabCD"))
	assert.False(t, c.IsHexString("0xabc"))
	assert.False(t, c.IsHexString("abcd"))
	assert.False(t, c.IsHexString(1234))
	assert.False(t, c.IsHexString(nil))

	assert.True(t, c.IsHexStringOfLength("0x"+strings.Repeat("00", 20), 20))
	assert.False(t, c.IsHexStringOfLength("0x"+strings.Repeat("00", 20), 32))

	assert.True(t, c.IsWildcard("*"))
	assert.False(t, c.IsWildcard("any"))
	assert.False(t, c.IsWildcard(nil))

	custom := NewHexChecker("any")
	assert.True(t, custom.IsWildcard("any"))
	assert.False(t, custom.IsWildcard("*"))
}
