package main

import (
	"bytes"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmagro/eth-rpc-builder/internal/rpc"
)

var (
	testAddr = "0x" + strings.Repeat("11", 20)
	testHash = "0x" + strings.Repeat("ab", 32)
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append(args, "--config", quietConfig(t)))
	err := cmd.Execute()
	return buf.String(), err
}

// quietConfig keeps the stderr logger out of test output.
func quietConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ethreq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0o600))
	return path
}

func decode(t *testing.T, out string) rpc.Request {
	t.Helper()
	var req rpc.Request
	require.NoError(t, json.Unmarshal([]byte(out), &req), out)
	return req
}

func TestPositionalCommands(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantMethod string
		wantParams []interface{}
	}{
		{"block number", []string{"block-number"}, "eth_blockNumber", []interface{}{}},
		{"balance", []string{"get-balance", testAddr, "5"}, "eth_getBalance", []interface{}{testAddr, "0x5"}},
		{"balance tag", []string{"get-balance", testAddr, "latest"}, "eth_getBalance", []interface{}{testAddr, "latest"}},
		{"raw tx", []string{"send-raw-transaction", "0xabcd"}, "eth_sendRawTransaction", []interface{}{"0xabcd"}},
		{"block full", []string{"get-block-by-number", "16", "--full"}, "eth_getBlockByNumber", []interface{}{"0x10", true}},
		{"tx by hash and index", []string{"get-transaction-by-block-hash-and-index", testHash, "3"},
			"eth_getTransactionByBlockHashAndIndex", []interface{}{testHash, float64(3)}},
		{"wildcard", []string{"get-code", "*"}, "eth_getCode", []interface{}{"*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err, out)

			req := decode(t, out)
			assert.Equal(t, tt.wantMethod, req.Method)
			assert.Equal(t, tt.wantParams, req.Params)
			assert.Equal(t, 1, req.ID)
		})
	}
}

func TestRequestIDFlag(t *testing.T) {
	out, err := run(t, "gas-price", "--id", "9")
	require.NoError(t, err)
	assert.Equal(t, 9, decode(t, out).ID)
}

func TestValidationFailure(t *testing.T) {
	out, err := run(t, "get-balance", "0x1234")
	require.Error(t, err)
	assert.ErrorIs(t, err, rpc.ErrValidation)

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "address", body["error"]["field"])
}

func TestCallCommand(t *testing.T) {
	out, err := run(t, "call", "--to", testAddr, "--data", "0x70a08231", "--gas", "21000")
	require.NoError(t, err, out)

	req := decode(t, out)
	assert.Equal(t, "eth_call", req.Method)
	require.Len(t, req.Params, 1)
	tx := req.Params[0].(map[string]interface{})
	assert.Equal(t, testAddr, tx["to"])
	assert.Equal(t, "0x70a08231", tx["data"])
	assert.Equal(t, float64(21000), tx["gas"])
	assert.NotContains(t, tx, "from")

	_, err = run(t, "estimate-gas", "--to", testAddr, "--data", "0xabc")
	assert.ErrorIs(t, err, rpc.ErrValidation)

	out, err = run(t, "call", "--data", "0x")
	assert.ErrorIs(t, err, rpc.ErrValidation)
	assert.Contains(t, out, `"field": "to"`)
}

func TestCallCommandSignature(t *testing.T) {
	out, err := run(t, "call", "--to", testAddr, "--sig", "balanceOf(address)", "--arg", testAddr)
	require.NoError(t, err, out)

	tx := decode(t, out).Params[0].(map[string]interface{})
	assert.Equal(t, "0x70a08231000000000000000000000000"+strings.Repeat("11", 20), tx["data"])

	_, err = run(t, "call", "--to", testAddr, "--sig", "balanceOf(address)", "--data", "0x")
	assert.Error(t, err)

	_, err = run(t, "call", "--to", testAddr, "--sig", "balanceOf(address)")
	assert.Error(t, err)
}

func TestLogsCommand(t *testing.T) {
	out, err := run(t, "get-logs", "--from-block", "5", "--address", testAddr, "--topic", testHash)
	require.NoError(t, err, out)

	req := decode(t, out)
	assert.Equal(t, "eth_getLogs", req.Method)
	filter := req.Params[0].(map[string]interface{})
	assert.Equal(t, "0x5", filter["fromBlock"])
	assert.Equal(t, testAddr, filter["address"])
	assert.Equal(t, []interface{}{testHash}, filter["topics"])

	_, err = run(t, "get-logs", "--block-hash", testHash, "--from-block", "1")
	assert.ErrorIs(t, err, rpc.ErrValidation)
}

func TestTerminalFormat(t *testing.T) {
	out, err := run(t, "get-balance", testAddr, "255", "--format", "terminal")
	require.NoError(t, err)
	assert.Contains(t, out, "eth_getBalance")
	assert.Contains(t, out, "0xff")
}

func TestMethodsCommand(t *testing.T) {
	out, err := run(t, "methods")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), len(rpc.Methods()))
}

func TestParseArg(t *testing.T) {
	huge, _ := new(big.Int).SetString("18446744073709551616", 10)

	tests := []struct {
		in   string
		want interface{}
	}{
		{"5", uint64(5)},
		{"0", uint64(0)},
		{"18446744073709551616", huge},
		{"0x5", "0x5"},
		{"latest", "latest"},
		{"-1", "-1"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseArg(tt.in))
		})
	}

	assert.Nil(t, optionalArg(""))
}
