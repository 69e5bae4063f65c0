package rpc

import "fmt"

// Remote method identifiers.
const (
	MethodBlockNumber                         = "eth_blockNumber"
	MethodChainID                             = "eth_chainId"
	MethodCall                                = "eth_call"
	MethodEstimateGas                         = "eth_estimateGas"
	MethodGasPrice                            = "eth_gasPrice"
	MethodGetBalance                          = "eth_getBalance"
	MethodGetBlockByHash                      = "eth_getBlockByHash"
	MethodGetBlockByNumber                    = "eth_getBlockByNumber"
	MethodGetCode                             = "eth_getCode"
	MethodGetLogs                             = "eth_getLogs"
	MethodGetStorageAt                        = "eth_getStorageAt"
	MethodGetTransactionByBlockHashAndIndex   = "eth_getTransactionByBlockHashAndIndex"
	MethodGetTransactionByBlockNumberAndIndex = "eth_getTransactionByBlockNumberAndIndex"
	MethodGetTransactionByHash                = "eth_getTransactionByHash"
	MethodGetTransactionCount                 = "eth_getTransactionCount"
	MethodGetTransactionReceipt               = "eth_getTransactionReceipt"
	MethodSendRawTransaction                  = "eth_sendRawTransaction"
)

// Builder validates arguments and produces request descriptors. It holds no
// mutable state and may be shared across goroutines.
type Builder struct {
	check Checker
}

// NewBuilder returns a Builder validating with c. A nil c selects a
// HexChecker with the default wildcard.
func NewBuilder(c Checker) *Builder {
	if c == nil {
		c = NewHexChecker("")
	}
	return &Builder{check: c}
}

// Field checks. Each one accepts the wildcard before looking at the shape.

func (b *Builder) address(method, field string, v interface{}) error {
	if b.check.IsWildcard(v) || b.check.IsHexStringOfLength(v, AddressLength) {
		return nil
	}
	return invalid(method, field, fmt.Sprintf("want %d-byte hex address, got %v", AddressLength, v))
}

func (b *Builder) hash32(method, field string, v interface{}) error {
	if b.check.IsWildcard(v) || b.check.IsHexStringOfLength(v, HashLength) {
		return nil
	}
	return invalid(method, field, fmt.Sprintf("want %d-byte hex hash, got %v", HashLength, v))
}

func (b *Builder) quantity(method, field string, v interface{}) error {
	if b.check.IsWildcard(v) || isNonNegativeInteger(v) || b.check.IsHexStringOfLength(v, HashLength) {
		return nil
	}
	return invalid(method, field, fmt.Sprintf("want non-negative integer or %d-byte hex, got %v", HashLength, v))
}

func (b *Builder) hexBytes(method, field string, v interface{}) error {
	if b.check.IsWildcard(v) || b.check.IsHexString(v) {
		return nil
	}
	return invalid(method, field, fmt.Sprintf("want even-length 0x hex data, got %v", v))
}

func (b *Builder) blockRef(method, field string, v interface{}) error {
	if b.check.IsWildcard(v) || isNonNegativeInteger(v) || b.check.IsHexStringOfLength(v, HashLength) {
		return nil
	}
	if s, ok := v.(string); ok && (IsBlockTag(s) || isQuantityString(s)) {
		return nil
	}
	return invalid(method, field, fmt.Sprintf("want block tag, number or %d-byte hash, got %v", HashLength, v))
}

// optional skips check when v is nil.
func optional(v interface{}, check func() error) error {
	if v == nil {
		return nil
	}
	return check()
}

// BlockNumber builds eth_blockNumber.
func (b *Builder) BlockNumber() Descriptor {
	return newDescriptor(MethodBlockNumber)
}

// ChainID builds eth_chainId.
func (b *Builder) ChainID() Descriptor {
	return newDescriptor(MethodChainID)
}

// GasPrice builds eth_gasPrice.
func (b *Builder) GasPrice() Descriptor {
	return newDescriptor(MethodGasPrice)
}

// Call builds eth_call for tx.
func (b *Builder) Call(tx CallMsg) (Descriptor, error) {
	return b.callLike(MethodCall, tx)
}

// EstimateGas builds eth_estimateGas for tx.
func (b *Builder) EstimateGas(tx CallMsg) (Descriptor, error) {
	return b.callLike(MethodEstimateGas, tx)
}

func (b *Builder) callLike(method string, tx CallMsg) (Descriptor, error) {
	// To must be present but its shape is left to the node.
	if tx.To == nil {
		return Descriptor{}, invalid(method, "to", "required")
	}
	checks := []struct {
		v  interface{}
		fn func() error
	}{
		{tx.From, func() error { return b.address(method, "from", tx.From) }},
		{tx.Gas, func() error { return b.quantity(method, "gas", tx.Gas) }},
		{tx.GasPrice, func() error { return b.quantity(method, "gasPrice", tx.GasPrice) }},
		{tx.Value, func() error { return b.quantity(method, "value", tx.Value) }},
		{tx.Data, func() error { return b.hexBytes(method, "data", tx.Data) }},
	}
	for _, c := range checks {
		if err := optional(c.v, c.fn); err != nil {
			return Descriptor{}, err
		}
	}
	return newDescriptor(method, tx), nil
}

// GetBalance builds eth_getBalance. block may be nil; an integer block is
// sent as a hex quantity.
func (b *Builder) GetBalance(address, block interface{}) (Descriptor, error) {
	const method = MethodGetBalance
	if err := b.address(method, "address", address); err != nil {
		return Descriptor{}, err
	}
	if err := optional(block, func() error { return b.blockRef(method, "block", block) }); err != nil {
		return Descriptor{}, err
	}
	return newDescriptor(method, address, NormalizeBlockRef(block)), nil
}

// GetCode builds eth_getCode.
func (b *Builder) GetCode(address interface{}) (Descriptor, error) {
	if err := b.address(MethodGetCode, "address", address); err != nil {
		return Descriptor{}, err
	}
	return newDescriptor(MethodGetCode, address), nil
}

// GetStorageAt builds eth_getStorageAt for the 32-byte slot offset.
func (b *Builder) GetStorageAt(address, offset interface{}) (Descriptor, error) {
	const method = MethodGetStorageAt
	if err := b.address(method, "address", address); err != nil {
		return Descriptor{}, err
	}
	if err := b.hash32(method, "offset", offset); err != nil {
		return Descriptor{}, err
	}
	return newDescriptor(method, address, offset), nil
}

// GetTransactionByBlockHashAndIndex builds eth_getTransactionByBlockHashAndIndex.
func (b *Builder) GetTransactionByBlockHashAndIndex(blockHash, index interface{}) (Descriptor, error) {
	const method = MethodGetTransactionByBlockHashAndIndex
	if err := b.hash32(method, "blockHash", blockHash); err != nil {
		return Descriptor{}, err
	}
	if err := b.quantity(method, "txIndex", index); err != nil {
		return Descriptor{}, err
	}
	return newDescriptor(method, blockHash, index), nil
}

// GetTransactionByBlockNumberAndIndex builds
// eth_getTransactionByBlockNumberAndIndex. Some client libraries send the
// ByBlockHash method id for this call; nodes reject a block number there, so
// the by-number id is used.
func (b *Builder) GetTransactionByBlockNumberAndIndex(block, index interface{}) (Descriptor, error) {
	const method = MethodGetTransactionByBlockNumberAndIndex
	if err := b.blockRef(method, "blockNumber", block); err != nil {
		return Descriptor{}, err
	}
	if err := b.quantity(method, "txIndex", index); err != nil {
		return Descriptor{}, err
	}
	return newDescriptor(method, NormalizeBlockRef(block), index), nil
}

// GetTransactionByHash builds eth_getTransactionByHash.
func (b *Builder) GetTransactionByHash(txHash interface{}) (Descriptor, error) {
	if err := b.hash32(MethodGetTransactionByHash, "txHash", txHash); err != nil {
		return Descriptor{}, err
	}
	return newDescriptor(MethodGetTransactionByHash, txHash), nil
}

// GetTransactionCount builds eth_getTransactionCount.
func (b *Builder) GetTransactionCount(address interface{}) (Descriptor, error) {
	if err := b.address(MethodGetTransactionCount, "address", address); err != nil {
		return Descriptor{}, err
	}
	return newDescriptor(MethodGetTransactionCount, address), nil
}

// GetTransactionReceipt builds eth_getTransactionReceipt.
func (b *Builder) GetTransactionReceipt(txHash interface{}) (Descriptor, error) {
	if err := b.hash32(MethodGetTransactionReceipt, "txHash", txHash); err != nil {
		return Descriptor{}, err
	}
	return newDescriptor(MethodGetTransactionReceipt, txHash), nil
}

// SendRawTransaction builds eth_sendRawTransaction for a signed payload.
func (b *Builder) SendRawTransaction(data interface{}) (Descriptor, error) {
	if err := b.hexBytes(MethodSendRawTransaction, "data", data); err != nil {
		return Descriptor{}, err
	}
	return newDescriptor(MethodSendRawTransaction, data), nil
}

// GetBlockByNumber builds eth_getBlockByNumber. With fullTx false the node
// returns transaction hashes only.
func (b *Builder) GetBlockByNumber(block interface{}, fullTx bool) (Descriptor, error) {
	if err := b.blockRef(MethodGetBlockByNumber, "block", block); err != nil {
		return Descriptor{}, err
	}
	return newDescriptor(MethodGetBlockByNumber, NormalizeBlockRef(block), fullTx), nil
}

// GetBlockByHash builds eth_getBlockByHash.
func (b *Builder) GetBlockByHash(blockHash interface{}, fullTx bool) (Descriptor, error) {
	if err := b.hash32(MethodGetBlockByHash, "blockHash", blockHash); err != nil {
		return Descriptor{}, err
	}
	return newDescriptor(MethodGetBlockByHash, blockHash, fullTx), nil
}
