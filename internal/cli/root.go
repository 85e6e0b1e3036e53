package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/russellbanks/package-family-name/internal/batch"
	"github.com/russellbanks/package-family-name/internal/config"
	"github.com/russellbanks/package-family-name/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "pfn",
	Short: "Compute MSIX package family names",
	Long: `Compute MSIX package family names from an identity name and publisher.

A package family name is the identity name, an underscore and a 13-character
publisher ID derived from the SHA-256 hash of the publisher.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/pfn/config.toml or ~/.pfn.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every pipeline stage to stderr")

	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(idCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.SetHelpFunc(colorizedHelpFunc())
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), Error("error: "+err.Error()))
	}
	return err
}

// runEnv is the resolved configuration a command runs with.
type runEnv struct {
	cfg    *config.Config
	log    zerolog.Logger
	output batch.Format
}

// loadEnv merges the config file, environment and command flags.
func loadEnv(cmd *cobra.Command) (*runEnv, error) {
	path, _ := cmd.Flags().GetString("config")
	homeDir, _ := os.UserHomeDir()

	cfg, err := config.Load(path, homeDir)
	if err != nil {
		return nil, err
	}
	return envFromConfig(cmd, cfg)
}

func envFromConfig(cmd *cobra.Command, cfg *config.Config) (*runEnv, error) {
	if f := cmd.Flags().Lookup("verbose"); f != nil && f.Changed {
		cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	}
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		cfg.Output = f.Value.String()
	}

	output, err := batch.ParseOutputFormat(cfg.Output)
	if err != nil {
		return nil, err
	}

	log := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
	if cfg.Source != "" {
		log.Debug().Str("path", cfg.Source).Msg("loaded config")
	}
	return &runEnv{cfg: cfg, log: log, output: output}, nil
}

// outputFlag is shared by every command with structured output.
var outputFlag = StringFlag{Name: "output", Usage: "output format (text, json, yaml)"}
