package main

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmagro/eth-rpc-builder/internal/rpc"
)

// positional describes a subcommand whose arguments map one-to-one onto the
// method's params.
type positional struct {
	use    string
	short  string
	method string
	args   cobra.PositionalArgs
	full   bool // adds --full for the fullTx param
}

var positionalCmdTable = []positional{
	{"block-number", "eth_blockNumber", rpc.MethodBlockNumber, cobra.NoArgs, false},
	{"chain-id", "eth_chainId", rpc.MethodChainID, cobra.NoArgs, false},
	{"gas-price", "eth_gasPrice", rpc.MethodGasPrice, cobra.NoArgs, false},
	{"get-balance <address> [block]", "eth_getBalance", rpc.MethodGetBalance, cobra.RangeArgs(1, 2), false},
	{"get-code <address>", "eth_getCode", rpc.MethodGetCode, cobra.ExactArgs(1), false},
	{"get-storage-at <address> <slot>", "eth_getStorageAt", rpc.MethodGetStorageAt, cobra.ExactArgs(2), false},
	{"get-transaction-by-block-hash-and-index <blockHash> <index>", "eth_getTransactionByBlockHashAndIndex",
		rpc.MethodGetTransactionByBlockHashAndIndex, cobra.ExactArgs(2), false},
	{"get-transaction-by-block-number-and-index <block> <index>", "eth_getTransactionByBlockNumberAndIndex",
		rpc.MethodGetTransactionByBlockNumberAndIndex, cobra.ExactArgs(2), false},
	{"get-transaction-by-hash <txHash>", "eth_getTransactionByHash", rpc.MethodGetTransactionByHash, cobra.ExactArgs(1), false},
	{"get-transaction-count <address>", "eth_getTransactionCount", rpc.MethodGetTransactionCount, cobra.ExactArgs(1), false},
	{"get-transaction-receipt <txHash>", "eth_getTransactionReceipt", rpc.MethodGetTransactionReceipt, cobra.ExactArgs(1), false},
	{"send-raw-transaction <signedTx>", "eth_sendRawTransaction", rpc.MethodSendRawTransaction, cobra.ExactArgs(1), false},
	{"get-block-by-number <block>", "eth_getBlockByNumber", rpc.MethodGetBlockByNumber, cobra.ExactArgs(1), true},
	{"get-block-by-hash <blockHash>", "eth_getBlockByHash", rpc.MethodGetBlockByHash, cobra.ExactArgs(1), true},
}

func positionalCmds(a *app) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(positionalCmdTable))
	for _, pc := range positionalCmdTable {
		var full bool

		cmd := &cobra.Command{
			Use:   pc.use,
			Short: "Build " + pc.short,
			Args:  pc.args,
			RunE: func(cmd *cobra.Command, args []string) error {
				params := parseArgs(args)
				if pc.full {
					params = append(params, full)
				}
				return a.emit(a.builder.Build(pc.method, params...))
			},
		}
		if pc.full {
			cmd.Flags().BoolVar(&full, "full", false, "Return full transaction objects instead of hashes")
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func methodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the JSON-RPC methods ethreq can build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(rpc.Methods(), "\n"))
			return err
		},
	}
}

func parseArgs(args []string) []interface{} {
	out := make([]interface{}, len(args))
	for i, s := range args {
		out[i] = parseArg(s)
	}
	return out
}

// parseArg turns a decimal string into an integer (uint64, or *big.Int when
// it overflows) and leaves everything else as a string, so "5" is a block
// number while "0x5", "latest" and the wildcard reach the builder unchanged.
func parseArg(s string) interface{} {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return s
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n
	}
	if n, ok := new(big.Int).SetString(s, 10); ok {
		return n
	}
	return s
}

// optionalArg is parseArg for flags, where an empty value means "omitted".
func optionalArg(s string) interface{} {
	if s == "" {
		return nil
	}
	return parseArg(s)
}
