// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/multilog/src/config"
	"github.com/H0llyW00dzZ/multilog/src/internal/helper/diag"
	"github.com/H0llyW00dzZ/multilog/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/multilog/src/registry"
	"github.com/spf13/cobra"
)

var (
	// ErrConfigRequired is returned when neither --config nor MULTILOG_CONFIG_FILE is set.
	ErrConfigRequired = errors.New("config file is required (use --config or MULTILOG_CONFIG_FILE)")
	// ErrUnknownLogger is returned when --logger names a logger the registry lacks.
	ErrUnknownLogger = errors.New("unknown logger")
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	configPath string
}

// Execute runs the root command with os.Args.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}
	exe := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:   exe,
		Short: "Multi-transport structured logger",
		Long: `Build a logger registry from a JSON or YAML file and write through it.

Every logger fans records out to its file, JSON and console transports,
and ERROR records are concentrated into the error logger.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: fmt.Sprintf(`  %[1]s emit -c multilog.yaml "service started"
  %[1]s emit -c multilog.yaml -l coreLogger --level error "disk full"
  tail -f app.out | %[1]s emit -c multilog.yaml --stdin
  %[1]s inspect -c multilog.yaml`, exe),
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "registry configuration file (default: $MULTILOG_CONFIG_FILE)")

	rootCmd.AddCommand(newEmitCommand(opts), newInspectCommand(opts))
	return rootCmd
}

// openRegistry loads the configuration and builds the registry.
func (o *rootOptions) openRegistry(opts ...registry.Option) (*registry.Registry, error) {
	if o.configPath == "" && os.Getenv(config.FileEnvKey) == "" {
		return nil, ErrConfigRequired
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	opts = append([]registry.Option{registry.WithReporter(diag.Default())}, opts...)
	return registry.New(*cfg, opts...)
}
