package cmd

import (
	"fmt"

	"lpcr-compare/core/compare"
	"lpcr-compare/core/config"
	"lpcr-compare/core/document"
	"lpcr-compare/core/logger"
	"lpcr-compare/core/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the compare command
	compareEnvA  string
	compareEnvB  string
	compareOut   string
	compareScope string
)

// compareCmd diffs two capture files and writes the discrepancy CSV.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare captured responses across two environments",
	Long: `Compare the JSON response captures of two environments, matching
applicants by name and business records (tradelines, collections, model
factors) by their key field. Ordering differences are ignored.

Every structural difference is written as one CSV row. A run that finds
differences still exits 0; only unreadable or malformed inputs fail.

Examples:
  # Compare the report objects (default scope)
  lpcr-compare compare --env-a az1.json --env-b stg.json --out diff.csv

  # Compare whole entries including request payloads and headers
  lpcr-compare compare --env-a az1.json --env-b stg.json --out diff.csv --scope full`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareEnvA, "env-a", "", "Path to environment A capture JSON")
	compareCmd.Flags().StringVar(&compareEnvB, "env-b", "", "Path to environment B capture JSON")
	compareCmd.Flags().StringVar(&compareOut, "out", "", "Path to output CSV")
	compareCmd.Flags().StringVar(&compareScope, "scope", string(document.ScopeReport), "Comparison scope: report or full")
	_ = compareCmd.MarkFlagRequired("env-a")
	_ = compareCmd.MarkFlagRequired("env-b")
	_ = compareCmd.MarkFlagRequired("out")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	scope := document.Scope(compareScope)
	if !scope.Valid() {
		return fmt.Errorf("invalid scope %q (valid options: report, full)", compareScope)
	}

	entriesA, err := document.Load(compareEnvA)
	if err != nil {
		return err
	}
	entriesB, err := document.Load(compareEnvB)
	if err != nil {
		return err
	}

	idxA := document.BuildIndex(entriesA, scope)
	idxB := document.BuildIndex(entriesB, scope)

	l.Info("comparing captures",
		zap.String("env_a", compareEnvA),
		zap.String("env_b", compareEnvB),
		zap.String("scope", string(scope)),
		zap.Int("applicants_env_a", idxA.Len()),
		zap.Int("applicants_env_b", idxB.Len()),
	)

	diffs := compare.Documents(idxA, idxB, compare.Options{
		SummaryMaxLen: cfg.Compare.SummaryMaxLen,
	})

	if err := report.WriteFile(compareOut, diffs); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	l.Info("comparison complete",
		zap.Int("discrepancies", len(diffs)),
		zap.String("out", compareOut),
	)
	return nil
}
