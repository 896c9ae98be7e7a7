// Package cli provides the command-line interface for tablekit.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tablekit/tablekit/pkg/registry"
)

var (
	cfgFile string
	verbose bool
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tablekit",
		Short: "Tablekit - declarative table configuration and SQL generation",
		Long: `Tablekit resolves declarative table configuration into dialect-aware
SQL statements. Tables, columns, indexes, and per-dialect method
configuration are described once in YAML; tablekit validates the
document and renders DDL/DML for the configured dialect.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}}
Build date: %s
Git commit: %s
`, BuildDate, GitCommit))

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "tables.yaml", "path to the table configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newTablesCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newMethodsCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// openRegistry loads the configured document and builds a registry over
// it, with debug logging when --verbose is set.
func openRegistry() (*registry.TableRegistry, error) {
	var opts []registry.Option
	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, registry.WithLogger(logger))
	}
	return registry.NewFromFile(cfgFile, opts...)
}
