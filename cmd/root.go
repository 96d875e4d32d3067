package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"lpcr-compare/core/document"
	"lpcr-compare/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "lpcr-compare",
	Short: "LPCR environment comparison tools",
	Long: `lpcr-compare submits report requests to LPCR environments and compares
the captured responses, reporting every structural difference to CSV.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps input-shape and file I/O failures to exit code 2; all
// other failures exit 1. Finding discrepancies is not a failure.
func exitCode(err error) int {
	var parseErr *document.ParseError
	if errors.As(err, &parseErr) {
		return 2
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return 2
	}
	return 1
}
