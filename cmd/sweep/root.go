package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"delete-on-check/config"
	"delete-on-check/internal/editor"
	"delete-on-check/internal/vault"
	"delete-on-check/pkg/log"
)

var (
	dir        string
	configFile string
	dryRun     bool
	verbose    bool
	rootCmd    *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "sweep",
		Short: "Remove checked tasks from every opted-in note of a vault",
		Long: `sweep rewrites every note carrying the #deleteoncheck marker without its
checked task lines ("- [x] ..."), then exits. One line is printed per document.`,
		Args:          cobra.NoArgs,
		RunE:          runSweep,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&dir, "dir", "d", "", "Vault directory (default: vault.root from config)")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Config file (default: config.yaml search path)")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report documents without writing them")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if dir != "" {
		cfg.Vault.Root = dir
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return sweep(ctx, cmd.OutOrStdout(), cfg.Vault, dryRun, logger)
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.LoadFile(configFile)
	}
	return config.Load()
}

// sweep prints "<path>: removed N" per rewritten document, or "would remove" on
// a dry run. Documents that fail are reported by the returned error.
func sweep(ctx context.Context, out io.Writer, vc config.VaultConfig, dry bool, l log.Logger) error {
	store, err := vault.NewFS(vc.Root, vc.Extension)
	if err != nil {
		return err
	}
	m := vault.NewMutator(store, editor.NewMutator(l), l)

	results, err := m.Sweep(ctx, vault.SweepOptions{DryRun: dry})
	verb := "removed"
	if dry {
		verb = "would remove"
	}
	for _, r := range results {
		fmt.Fprintf(out, "%s: %s %d checked task(s)\n", r.Path, verb, r.Removed)
	}
	return err
}
