package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Zachdehooge/volcano-map/internal/config"
	"github.com/Zachdehooge/volcano-map/internal/report"
	"github.com/Zachdehooge/volcano-map/internal/watch"
)

var (
	configFile string
	verbose    bool
	watchMode  bool
	cfg        *config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "volcano-map",
		Short: "Generate an interactive volcano and population map",
		Long: `volcano-map reads a volcano point table and a country boundary file
and writes a standalone Leaflet HTML map with elevation-colored markers
and population-colored countries.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if verbose {
				c.Log.Level = "debug"
			}
			if err := config.InitLogger(c.Log); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			cfg = c
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if watchMode {
				return runWatchMode(cmd)
			}
			return generateMap(cmd)
		},
	}

	// Flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ./config.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&watchMode, "watch", false, "Regenerate the map whenever an input file changes")

	// Additional commands
	addListCmd(rootCmd)
	addConfigCmd(rootCmd)

	return rootCmd
}

// generateMap builds and saves the map once.
func generateMap(cmd *cobra.Command) error {
	if err := report.AssembleAndSave(cfg, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to generate map: %w", err)
	}
	return nil
}

// runWatchMode regenerates the map whenever an input changes
func runWatchMode(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.Println(fmt.Sprintf("Watch mode activated. Watching %s and %s. Press Ctrl+C to stop.",
		cfg.Volcanoes.Path, cfg.Boundaries.Path))

	return watch.Run(ctx, []string{cfg.Volcanoes.Path, cfg.Boundaries.Path}, watch.DefaultDebounce, func() error {
		return generateMap(cmd)
	})
}

// addListCmd adds a 'list' subcommand to show volcano details without generating HTML
func addListCmd(rootCmd *cobra.Command) {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List volcanoes with their elevation tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := report.ListPoints(cfg, cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("failed to list volcanoes: %w", err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(listCmd)
}

// addConfigCmd adds a 'config' subcommand that prints the effective configuration
func addConfigCmd(rootCmd *cobra.Command) {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}

	rootCmd.AddCommand(configCmd)
}
