package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmagro/eth-rpc-builder/internal/rpc"
)

// callCmd builds eth_call or eth_estimateGas from flags. Unset flags are
// left out of the transaction object.
func callCmd(a *app, use, method string) *cobra.Command {
	var (
		from, to, gas, gasPrice, value, data, sig string
		sigArgs                                   []string
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: "Build " + method,
		Long: `Build a ` + method + ` request from a transaction object.

Quantities (--gas, --gas-price, --value) accept a decimal integer or a
32-byte hex string. Decimal quantities are emitted as JSON numbers, which
most nodes reject; pass 32-byte hex to get a body that can be sent as-is.
--to is required and passed through as given. Instead of --data,
--sig with one --arg per parameter encodes calls that take static arguments
(address, bool, bytes32, uint<N>).

Example:
  ethreq ` + use + ` --to 0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48 \
    --sig 'balanceOf(address)' --arg 0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sig != "" {
				if data != "" {
					return fmt.Errorf("--sig and --data are mutually exclusive")
				}
				encoded, err := rpc.EncodeCalldata(sig, sigArgs...)
				if err != nil {
					return fmt.Errorf("failed to encode %s: %w", sig, err)
				}
				data = encoded
			}
			tx := rpc.CallMsg{
				From:     optionalArg(from),
				To:       optionalArg(to),
				Gas:      optionalArg(gas),
				GasPrice: optionalArg(gasPrice),
				Value:    optionalArg(value),
				Data:     optionalArg(data),
			}
			return a.emit(a.builder.Build(method, tx))
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Sender address")
	cmd.Flags().StringVar(&to, "to", "", "Recipient or contract address")
	cmd.Flags().StringVar(&gas, "gas", "", "Gas limit")
	cmd.Flags().StringVar(&gasPrice, "gas-price", "", "Gas price in wei")
	cmd.Flags().StringVar(&value, "value", "", "Value in wei")
	cmd.Flags().StringVar(&data, "data", "", "Call data as 0x hex")
	cmd.Flags().StringVar(&sig, "sig", "", "Function signature to encode, e.g. balanceOf(address)")
	cmd.Flags().StringArrayVar(&sigArgs, "arg", nil, "Argument for --sig (repeatable, in order)")

	return cmd
}

// logsCmd builds eth_getLogs from flags.
func logsCmd(a *app) *cobra.Command {
	var (
		fromBlock, toBlock, blockHash string
		addresses, topics             []string
	)

	cmd := &cobra.Command{
		Use:   "get-logs",
		Short: "Build eth_getLogs",
		Long: `Build an eth_getLogs request.

--block-hash cannot be combined with --from-block or --to-block. Decimal
block numbers are sent as hex quantities. --address and --topic may be
repeated; topics keep their order.

Example:
  ethreq get-logs --from-block 19000000 --to-block latest \
    --topic 0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := rpc.LogFilter{
				FromBlock: optionalArg(fromBlock),
				ToBlock:   optionalArg(toBlock),
				BlockHash: optionalArg(blockHash),
			}
			switch len(addresses) {
			case 0:
			case 1:
				filter.Address = addresses[0]
			default:
				filter.Address = addresses
			}
			for _, t := range topics {
				filter.Topics = append(filter.Topics, t)
			}
			return a.emit(a.builder.GetLogs(filter))
		},
	}

	cmd.Flags().StringVar(&fromBlock, "from-block", "", "First block (tag, number or hash)")
	cmd.Flags().StringVar(&toBlock, "to-block", "", "Last block (tag, number or hash)")
	cmd.Flags().StringVar(&blockHash, "block-hash", "", "Restrict to a single block by hash")
	cmd.Flags().StringSliceVar(&addresses, "address", nil, "Contract address (repeatable)")
	cmd.Flags().StringArrayVar(&topics, "topic", nil, "Topic hash in position order (repeatable)")

	return cmd
}
