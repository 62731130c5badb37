// File: cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/axi/internal/config"
	"github.com/xkilldash9x/axi/internal/observability"
)

type contextKey string

// configKey stores the validated *config.Config in the command context.
const configKey contextKey = "config"

// defaultUserConfig is tried before ./config.yaml when --config is not given.
const defaultUserConfig = "~/.axi.yaml"

// NewRootCommand builds a fresh command tree. Every call returns independent
// commands and flags, so tests and embedders never share state.
func NewRootCommand() *cobra.Command {
	var (
		cfgFile   string
		docFormat string
	)

	rootCmd := &cobra.Command{
		Use:           "axi",
		Short:         "axi resolves, reads and animates properties of HTML and SVG documents.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			config.SetDefaults(v)

			if err := initializeConfig(v, cfgFile); err != nil {
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "axi"})
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "axi"})
				return fmt.Errorf("failed to load or validate config: %w", err)
			}
			if docFormat != "" {
				cfg.SetDocumentFormat(docFormat)
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			observability.InitializeLogger(cfg.Logger())
			observability.GetLogger().Debug("Starting axi", zap.String("version", Version), zap.String("command", cmd.Name()))

			cmd.SetContext(context.WithValue(cmd.Context(), configKey, cfg))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ~/.axi.yaml, then ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&docFormat, "doc-format", "", "input document format: auto, html or svg (overrides config/env)")
	rootCmd.SetVersionTemplate(`{{printf "axi version %s\n" .Version}}`)

	rootCmd.AddCommand(
		newColorCmd(),
		newUnitCmd(),
		newInspectCmd(),
		newPathLenCmd(),
		newFramesCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command tree with ctx and logs the failure, if any.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			observability.GetLogger().Error("Command execution failed", zap.Error(err))
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return err
	}
	return nil
}

// initializeConfig points v at the config file and enables AXI_* overrides.
// A missing default file is not an error; a missing explicit one is.
func initializeConfig(v *viper.Viper, cfgFile string) error {
	switch {
	case cfgFile != "":
		path, err := homedir.Expand(cfgFile)
		if err != nil {
			return fmt.Errorf("error expanding config path %q: %w", cfgFile, err)
		}
		v.SetConfigFile(path)
	default:
		if path, err := homedir.Expand(defaultUserConfig); err == nil && fileExists(path) {
			v.SetConfigFile(path)
		} else {
			v.AddConfigPath(".")
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	config.BindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// getConfigFromContext returns the configuration stored by PersistentPreRunE.
func getConfigFromContext(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(configKey).(*config.Config)
	if !ok || cfg == nil {
		return nil, errors.New("configuration not found in command context")
	}
	return cfg, nil
}
