// Command ethreq builds validated Ethereum JSON-RPC requests from the command
// line and prints them as JSON-RPC 2.0 envelopes, ready to pipe into curl or
// any other transport. Transaction quantities given in decimal stay JSON
// numbers (see "ethreq call --help").
//
// Usage examples:
//
//	ethreq block-number
//	ethreq get-balance 0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045 latest
//	ethreq get-logs --from-block 19000000 --to-block latest --topic 0xddf2...
//	ethreq call --to 0xA0b8... --data 0x70a08231... --format terminal
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmagro/eth-rpc-builder/internal/config"
	"github.com/dmagro/eth-rpc-builder/internal/env"
	applog "github.com/dmagro/eth-rpc-builder/internal/log"
	"github.com/dmagro/eth-rpc-builder/internal/output"
	"github.com/dmagro/eth-rpc-builder/internal/rpc"
)

// app is the state shared by every subcommand once the config is loaded.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	builder *rpc.Builder
	out     io.Writer
}

func rootCmd() *cobra.Command {
	var (
		cfgPath string
		format  string
		id      int
		a       = &app{}
	)

	cmd := &cobra.Command{
		Use:           "ethreq",
		Short:         "Build validated Ethereum JSON-RPC requests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("format") {
				cfg.Output.Format = format
			}
			if cmd.Flags().Changed("id") {
				cfg.Output.RequestID = id
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = applog.NewLogger(cfg.Log)
			a.builder = rpc.NewBuilder(rpc.NewHexChecker(cfg.Wildcard))
			a.out = cmd.OutOrStdout()
			if cfg.Output.Format == config.FormatJSON {
				output.DisableColors()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (defaults apply when empty)")
	cmd.PersistentFlags().StringVar(&format, "format", config.FormatJSON, "Output format: json|terminal")
	cmd.PersistentFlags().IntVar(&id, "id", 1, "JSON-RPC request id")

	for _, sub := range positionalCmds(a) {
		cmd.AddCommand(sub)
	}
	cmd.AddCommand(callCmd(a, "call", rpc.MethodCall))
	cmd.AddCommand(callCmd(a, "estimate-gas", rpc.MethodEstimateGas))
	cmd.AddCommand(logsCmd(a))
	cmd.AddCommand(methodsCmd())

	return cmd
}

// emit renders a built descriptor, or the validation failure that stopped it.
func (a *app) emit(d rpc.Descriptor, err error) error {
	if err != nil {
		a.logger.Warn("request rejected", "error", err)
		if a.cfg.Output.Format == config.FormatJSON {
			if rerr := output.RenderErrorJSON(a.out, err); rerr != nil {
				return rerr
			}
		} else {
			output.RenderErrorTerminal(a.out, err)
		}
		return err
	}

	a.logger.Debug("request built", "method", d.Method(), "params", len(d.Params()))
	if a.cfg.Output.Format == config.FormatJSON {
		return output.RenderJSON(a.out, d, a.cfg.Output.RequestID)
	}
	output.RenderTerminal(a.out, d, a.cfg.Output.RequestID, a.cfg.Wildcard)
	return nil
}

func main() {
	if err := env.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load .env: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
