// Package rpc builds validated Ethereum JSON-RPC request descriptors.
//
// Every supported remote method has one Builder method. It checks each
// argument against the shape the node expects (20-byte addresses, 32-byte
// hashes, block tags, integer-or-hex quantities), rewrites integer block
// references into hex, and returns a Descriptor holding the method name and
// the ordered parameter list. Nothing in this package touches the network.
package rpc

import (
	"encoding/json"
	"math/big"
)

// JSONRPCVersion is the protocol version carried by every envelope.
const JSONRPCVersion = "2.0"

// Request is the JSON-RPC 2.0 envelope a transport sends to a node:
//
//	{"jsonrpc": "2.0", "method": "eth_blockNumber", "params": [], "id": 1}
type Request struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

// Descriptor is a validated method call: the remote method identifier and
// its ordered parameters. It is immutable once built: params are copied in,
// down to nested slices and *big.Int values, and copied again on the way out.
type Descriptor struct {
	method string
	params []interface{}
}

func newDescriptor(method string, params ...interface{}) Descriptor {
	return Descriptor{method: method, params: cloneParams(params)}
}

// Method returns the remote method identifier, e.g. "eth_getBalance".
func (d Descriptor) Method() string { return d.method }

// Params returns a deep copy of the ordered parameter list.
func (d Descriptor) Params() []interface{} {
	return cloneParams(d.params)
}

// Request wraps the descriptor in a JSON-RPC 2.0 envelope with the given id.
func (d Descriptor) Request(id int) Request {
	return Request{
		JSONRPC: JSONRPCVersion,
		Method:  d.method,
		Params:  d.Params(),
		ID:      id,
	}
}

// MarshalJSON encodes the descriptor as {"method": ..., "params": [...]}.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Method string        `json:"method"`
		Params []interface{} `json:"params"`
	}{d.method, d.Params()})
}

// CallMsg is the transaction object taken by eth_call and eth_estimateGas.
//
// Each field holds a loosely typed value: addresses and data are hex strings,
// quantities may be Go integers or 32-byte hex strings, and any field may
// carry the wildcard sentinel. To is passed through without validation.
type CallMsg struct {
	From     interface{} `json:"from,omitempty"`
	To       interface{} `json:"to"`
	Gas      interface{} `json:"gas,omitempty"`
	GasPrice interface{} `json:"gasPrice,omitempty"`
	Value    interface{} `json:"value,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

// LogFilter is the filter object taken by eth_getLogs.
//
// Address holds either a single address or a []interface{} / []string of
// addresses. BlockHash cannot be combined with FromBlock or ToBlock.
type LogFilter struct {
	FromBlock interface{}   `json:"fromBlock,omitempty"`
	ToBlock   interface{}   `json:"toBlock,omitempty"`
	Address   interface{}   `json:"address,omitempty"`
	Topics    []interface{} `json:"topics,omitempty"`
	BlockHash interface{}   `json:"blockHash,omitempty"`
}

// cloneParams copies params so that nothing reachable from the result is
// shared with the input. A nil list becomes an empty one.
func cloneParams(params []interface{}) []interface{} {
	out := make([]interface{}, len(params))
	for i, p := range params {
		out[i] = cloneParam(p)
	}
	return out
}

func cloneParam(v interface{}) interface{} {
	switch p := v.(type) {
	case *big.Int:
		if p == nil {
			return p
		}
		return new(big.Int).Set(p)
	case []interface{}:
		if p == nil {
			return p
		}
		return cloneParams(p)
	case []string:
		if p == nil {
			return p
		}
		return append([]string{}, p...)
	case CallMsg:
		return CallMsg{
			From:     cloneParam(p.From),
			To:       cloneParam(p.To),
			Gas:      cloneParam(p.Gas),
			GasPrice: cloneParam(p.GasPrice),
			Value:    cloneParam(p.Value),
			Data:     cloneParam(p.Data),
		}
	case LogFilter:
		out := LogFilter{
			FromBlock: cloneParam(p.FromBlock),
			ToBlock:   cloneParam(p.ToBlock),
			Address:   cloneParam(p.Address),
			BlockHash: cloneParam(p.BlockHash),
		}
		if p.Topics != nil {
			out.Topics = cloneParams(p.Topics)
		}
		return out
	default:
		return v
	}
}
