package rpc

import "fmt"

// GetLogs builds eth_getLogs. The descriptor carries a normalized copy of
// filter; the caller's value, including its Topics and Address slices, is
// left untouched.
func (b *Builder) GetLogs(filter LogFilter) (Descriptor, error) {
	const method = MethodGetLogs

	if filter.BlockHash != nil && (filter.FromBlock != nil || filter.ToBlock != nil) {
		return Descriptor{}, invalid(method, "blockHash", "cannot be combined with fromBlock/toBlock")
	}

	if err := optional(filter.FromBlock, func() error { return b.blockRef(method, "fromBlock", filter.FromBlock) }); err != nil {
		return Descriptor{}, err
	}
	if err := optional(filter.ToBlock, func() error { return b.blockRef(method, "toBlock", filter.ToBlock) }); err != nil {
		return Descriptor{}, err
	}
	if err := b.filterAddress(method, filter.Address); err != nil {
		return Descriptor{}, err
	}
	if err := optional(filter.BlockHash, func() error { return b.hash32(method, "blockHash", filter.BlockHash) }); err != nil {
		return Descriptor{}, err
	}
	for i, topic := range filter.Topics {
		if err := b.hash32(method, fmt.Sprintf("topics[%d]", i), topic); err != nil {
			return Descriptor{}, err
		}
	}

	out := filter
	out.FromBlock = NormalizeBlockRef(filter.FromBlock)
	out.ToBlock = NormalizeBlockRef(filter.ToBlock)
	return newDescriptor(method, out), nil
}

// filterAddress accepts nil, a single address, or a list of addresses.
func (b *Builder) filterAddress(method string, v interface{}) error {
	switch list := v.(type) {
	case nil:
		return nil
	case []string:
		for i, a := range list {
			if err := b.address(method, fmt.Sprintf("address[%d]", i), a); err != nil {
				return err
			}
		}
		return nil
	case []interface{}:
		for i, a := range list {
			if err := b.address(method, fmt.Sprintf("address[%d]", i), a); err != nil {
				return err
			}
		}
		return nil
	default:
		return b.address(method, "address", v)
	}
}
