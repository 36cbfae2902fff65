// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docgen CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docgen/internal/generate"
	"github.com/pdiddy/docgen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd generates the documentation file.
var rootCmd = &cobra.Command{
	Use:   "docgen",
	Short: "Generate documentation JSON from TypeDoc reflection output",
	Long: `docgen converts the reflection tree TypeDoc produces for a TypeScript
project into the documentation schema read by the documentation site, and
merges in hand-written pages listed in a custom docs definition file.

The reflection tree comes either from an existing TypeDoc JSON file
(--existing-output) or from running TypeDoc over --source directories.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
		if cfg.ConfigFile != "" {
			logger.Info("Using config file", "path", cfg.ConfigFile)
		}
		_, err = generate.New(version, logger).Run(cmd.Context(), cfg)
		return err
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./docgen.yaml)")
	flags.StringSliceP("source", "s", nil, "source directories to run TypeDoc over")
	flags.StringP("existing-output", "i", "", "existing TypeDoc JSON output to parse instead of running TypeDoc")
	flags.StringP("custom", "c", "", "custom docs definition file (.json, .yml, .yaml)")
	flags.StringP("root", "r", ".", "project root that custom docs paths are recorded relative to")
	flags.StringP("output", "o", "", "path to write the documentation JSON to")
	flags.IntP("spaces", "S", 0, "indentation width of the output JSON (0 writes compact JSON)")
	flags.String("tsconfig", "", "tsconfig file passed to TypeDoc")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	bindFlags()
}

// bindFlags maps the config keys onto their command-line flags.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	for key, flag := range map[string]string{
		"source":         "source",
		"existingOutput": "existing-output",
		"custom":         "custom",
		"root":           "root",
		"output":         "output",
		"spaces":         "spaces",
		"tsconfig":       "tsconfig",
		"verbose":        "verbose",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig() {
	configErr = nil
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("DOCGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		configErr = fmt.Errorf("reading config file %s: %w", cfgFile, err)
	}
}

// configErr records a failure to read an explicitly named config file.
var configErr error

// loadConfig decodes the merged flag, environment and file settings.
func loadConfig() (types.Config, error) {
	if configErr != nil {
		return types.Config{}, configErr
	}
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.ConfigFile = viper.ConfigFileUsed()
	return cfg, nil
}

// run executes the CLI with args and returns the process exit status.
// Logs and errors go to stderr.
func run(args []string, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd.SetArgs(args)
	rootCmd.SetErr(stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.New(newHandler(stderr, false)).Error("docgen failed", "err", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
