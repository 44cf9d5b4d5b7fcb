// Package main provides the CLI entry point for minawallet.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/minaweb/mina-wallet/internal/render"
	"github.com/minaweb/mina-wallet/internal/tui"
	"github.com/minaweb/mina-wallet/internal/wallet"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// Global flags
	verbose bool

	// Root command
	rootCmd = &cobra.Command{
		Use:     "minawallet",
		Short:   "Mina wallet CLI tool",
		Version: version,
		Long: `minawallet creates and imports Mina protocol wallets.

Start the interactive TUI:
  minawallet

Or use CLI commands:
  minawallet generate --network testnet --format json
  minawallet import <secret-key>
  minawallet validate <address>
  minawallet address <secret-key>`,
		Run: func(cmd *cobra.Command, args []string) {
			// Default: launch TUI
			if err := tui.Run(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		},
	}

	// Generate command
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a new random wallet",
		Args:  cobra.NoArgs,
		Run:   runGenerate,
	}

	// Import command
	importCmd = &cobra.Command{
		Use:   "import <secret-key>",
		Short: "Import a wallet from a secret key (hex or base58)",
		Args:  cobra.ExactArgs(1),
		Run:   runImport,
	}

	// Validate command
	validateCmd = &cobra.Command{
		Use:   "validate <address>",
		Short: "Validate a Mina address",
		Args:  cobra.ExactArgs(1),
		Run:   runValidate,
	}

	// Address command
	addressCmd = &cobra.Command{
		Use:   "address <secret-key>",
		Short: "Derive the address from a secret key (never prints the secret)",
		Args:  cobra.ExactArgs(1),
		Run:   runAddress,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	generateCmd.Flags().StringP("network", "n", "mainnet", "Network: mainnet or testnet")
	generateCmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	rootCmd.AddCommand(generateCmd)

	importCmd.Flags().StringP("network", "n", "mainnet", "Network: mainnet or testnet")
	importCmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	rootCmd.AddCommand(importCmd)

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(addressCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the stderr logger honoring --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// parseNetworkFlag reads and parses the --network flag, exiting on bad input.
func parseNetworkFlag(cmd *cobra.Command) wallet.NetworkID {
	networkStr, _ := cmd.Flags().GetString("network")
	network, err := wallet.ParseNetworkID(networkStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return network
}

// printWallet renders the wallet per --format. Unrecognized formats render
// as text.
func printWallet(cmd *cobra.Command, w *wallet.Wallet) {
	format, _ := cmd.Flags().GetString("format")
	out, err := render.Render(w, render.Format(format))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

func runGenerate(cmd *cobra.Command, args []string) {
	network := parseNetworkFlag(cmd)

	logger := newLogger()
	logger.Debug("generating wallet", "network", network.Label())

	w, err := wallet.New(network)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating wallet: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("wallet generated", "wallet", w)
	printWallet(cmd, w)
}

func runImport(cmd *cobra.Command, args []string) {
	network := parseNetworkFlag(cmd)

	w, err := wallet.Import(args[0], network)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printWallet(cmd, w)
}

func runValidate(cmd *cobra.Command, args []string) {
	address := args[0]
	if err := wallet.ValidateAddress(address); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid address: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Address is valid: %s\n", address)
}

func runAddress(cmd *cobra.Command, args []string) {
	// Address derivation is network-independent; default to mainnet context.
	w, err := wallet.Import(args[0], wallet.Mainnet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(w.Address())
}
