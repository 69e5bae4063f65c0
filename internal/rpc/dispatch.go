package rpc

import (
	"fmt"
	"sort"
)

type buildFunc func(b *Builder, args []interface{}) (Descriptor, error)

// methods maps each method id to its arity (minimum, maximum) and builder.
var methods = map[string]struct {
	min, max int
	build    buildFunc
}{
	MethodBlockNumber: {0, 0, func(b *Builder, _ []interface{}) (Descriptor, error) { return b.BlockNumber(), nil }},
	MethodChainID:     {0, 0, func(b *Builder, _ []interface{}) (Descriptor, error) { return b.ChainID(), nil }},
	MethodGasPrice:    {0, 0, func(b *Builder, _ []interface{}) (Descriptor, error) { return b.GasPrice(), nil }},
	MethodCall: {1, 1, func(b *Builder, a []interface{}) (Descriptor, error) {
		tx, err := callMsgArg(MethodCall, a[0])
		if err != nil {
			return Descriptor{}, err
		}
		return b.Call(tx)
	}},
	MethodEstimateGas: {1, 1, func(b *Builder, a []interface{}) (Descriptor, error) {
		tx, err := callMsgArg(MethodEstimateGas, a[0])
		if err != nil {
			return Descriptor{}, err
		}
		return b.EstimateGas(tx)
	}},
	MethodGetBalance: {1, 2, func(b *Builder, a []interface{}) (Descriptor, error) {
		return b.GetBalance(a[0], argAt(a, 1))
	}},
	MethodGetCode: {1, 1, func(b *Builder, a []interface{}) (Descriptor, error) { return b.GetCode(a[0]) }},
	MethodGetLogs: {1, 1, func(b *Builder, a []interface{}) (Descriptor, error) {
		f, err := logFilterArg(a[0])
		if err != nil {
			return Descriptor{}, err
		}
		return b.GetLogs(f)
	}},
	MethodGetStorageAt: {2, 2, func(b *Builder, a []interface{}) (Descriptor, error) { return b.GetStorageAt(a[0], a[1]) }},
	MethodGetTransactionByBlockHashAndIndex: {2, 2, func(b *Builder, a []interface{}) (Descriptor, error) {
		return b.GetTransactionByBlockHashAndIndex(a[0], a[1])
	}},
	MethodGetTransactionByBlockNumberAndIndex: {2, 2, func(b *Builder, a []interface{}) (Descriptor, error) {
		return b.GetTransactionByBlockNumberAndIndex(a[0], a[1])
	}},
	MethodGetTransactionByHash:  {1, 1, func(b *Builder, a []interface{}) (Descriptor, error) { return b.GetTransactionByHash(a[0]) }},
	MethodGetTransactionCount:   {1, 1, func(b *Builder, a []interface{}) (Descriptor, error) { return b.GetTransactionCount(a[0]) }},
	MethodGetTransactionReceipt: {1, 1, func(b *Builder, a []interface{}) (Descriptor, error) { return b.GetTransactionReceipt(a[0]) }},
	MethodSendRawTransaction:    {1, 1, func(b *Builder, a []interface{}) (Descriptor, error) { return b.SendRawTransaction(a[0]) }},
	MethodGetBlockByNumber: {1, 2, func(b *Builder, a []interface{}) (Descriptor, error) {
		full, err := fullTxArg(MethodGetBlockByNumber, argAt(a, 1))
		if err != nil {
			return Descriptor{}, err
		}
		return b.GetBlockByNumber(a[0], full)
	}},
	MethodGetBlockByHash: {1, 2, func(b *Builder, a []interface{}) (Descriptor, error) {
		full, err := fullTxArg(MethodGetBlockByHash, argAt(a, 1))
		if err != nil {
			return Descriptor{}, err
		}
		return b.GetBlockByHash(a[0], full)
	}},
}

// Build dispatches on a method id chosen at runtime, e.g. from a command line.
// args are the method's positional arguments in wire order; call and
// estimateGas take a CallMsg, getLogs a LogFilter.
func (b *Builder) Build(method string, args ...interface{}) (Descriptor, error) {
	m, ok := methods[method]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
	if len(args) < m.min || len(args) > m.max {
		want := fmt.Sprintf("%d", m.min)
		if m.max != m.min {
			want = fmt.Sprintf("%d to %d", m.min, m.max)
		}
		return Descriptor{}, invalid(method, "params", fmt.Sprintf("want %s arguments, got %d", want, len(args)))
	}
	return m.build(b, args)
}

// Methods returns every method id Build understands, sorted.
func Methods() []string {
	out := make([]string, 0, len(methods))
	for name := range methods {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func argAt(args []interface{}, i int) interface{} {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func callMsgArg(method string, v interface{}) (CallMsg, error) {
	switch tx := v.(type) {
	case CallMsg:
		return tx, nil
	case *CallMsg:
		if tx != nil {
			return *tx, nil
		}
	}
	return CallMsg{}, invalid(method, "tx", fmt.Sprintf("want transaction object, got %T", v))
}

func logFilterArg(v interface{}) (LogFilter, error) {
	switch f := v.(type) {
	case LogFilter:
		return f, nil
	case *LogFilter:
		if f != nil {
			return *f, nil
		}
	}
	return LogFilter{}, invalid(MethodGetLogs, "filter", fmt.Sprintf("want filter object, got %T", v))
}

func fullTxArg(method string, v interface{}) (bool, error) {
	switch full := v.(type) {
	case nil:
		return false, nil
	case bool:
		return full, nil
	default:
		return false, invalid(method, "fullTx", fmt.Sprintf("want bool, got %T", v))
	}
}
