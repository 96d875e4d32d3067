package cmd

import (
	"context"
	"fmt"
	"strings"

	"lpcr-compare/core/config"
	"lpcr-compare/core/logger"
	"lpcr-compare/feature/submit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the submit command
	submitInput    string
	submitOutput   string
	submitToken    string
	submitEnv      string
	submitURL      string
	submitHost     string
	submitBureau   string
	submitRetries  int
	submitBackoff  float64
	submitTimeout  int
	submitInsecure bool
)

// submitCmd posts report requests for every applicant in the input file and
// captures the responses for later comparison.
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit report requests and capture responses",
	Long: `Submit a report request per applicant to the selected LPCR environment,
sequentially, and write the collected responses as a capture document.

The bearer token comes from --token or the LPCR_TOKEN environment variable;
the bureau subscriber password comes from LPCR_PASSWORD.

Examples:
  # Capture staging responses with Equifax settings
  lpcr-compare submit -i applicants.json -o stg.json --env staging

  # TransUnion against test4 with longer timeouts
  lpcr-compare submit -i applicants.json -o test4.json --env test4 --bureau TU --timeout 60`,
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVarP(&submitInput, "input", "i", "", "Path to input JSON (array of applicant objects)")
	submitCmd.Flags().StringVarP(&submitOutput, "output", "o", "", "Path to write the capture JSON")
	submitCmd.Flags().StringVarP(&submitToken, "token", "t", "", "Bearer token (defaults to LPCR_TOKEN)")
	submitCmd.Flags().StringVar(&submitEnv, "env", "", fmt.Sprintf("Target environment (%s)", strings.Join(submit.Environments(), ", ")))
	submitCmd.Flags().StringVar(&submitURL, "url", "", "Override the environment URL")
	submitCmd.Flags().StringVar(&submitHost, "host", "", "Override the Host header")
	submitCmd.Flags().StringVar(&submitBureau, "bureau", "", fmt.Sprintf("Credit bureau (%s)", strings.Join(submit.Bureaus(), ", ")))
	submitCmd.Flags().IntVar(&submitRetries, "retries", 0, "Retry attempts per request")
	submitCmd.Flags().Float64Var(&submitBackoff, "backoff", 0, "Initial retry backoff in seconds (doubles per attempt)")
	submitCmd.Flags().IntVar(&submitTimeout, "timeout", 0, "Request timeout in seconds")
	submitCmd.Flags().BoolVar(&submitInsecure, "insecure", false, "Disable TLS verification (test environments only)")
	_ = submitCmd.MarkFlagRequired("input")
	_ = submitCmd.MarkFlagRequired("output")

	RootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Flags override configured/env values only when set.
	sc := cfg.Submit
	flags := cmd.Flags()
	if flags.Changed("token") {
		sc.Token = submitToken
	}
	if flags.Changed("env") {
		sc.Env = submitEnv
	}
	if flags.Changed("url") {
		sc.URL = submitURL
	}
	if flags.Changed("host") {
		sc.Host = submitHost
	}
	if flags.Changed("bureau") {
		sc.Bureau = submitBureau
	}
	if flags.Changed("retries") {
		sc.Retries = submitRetries
	}
	if flags.Changed("backoff") {
		sc.BackoffSeconds = submitBackoff
	}
	if flags.Changed("timeout") {
		sc.TimeoutSeconds = submitTimeout
	}
	if flags.Changed("insecure") {
		sc.Insecure = submitInsecure
	}

	if sc.Token == "" {
		return fmt.Errorf("missing bearer token: provide --token or set LPCR_TOKEN")
	}

	settings, err := submit.SettingsFor(sc.Bureau, sc.Password)
	if err != nil {
		return err
	}

	target, err := submit.ResolveTarget(sc.Env, sc.URL, sc.Host)
	if err != nil {
		return err
	}

	applicants, err := submit.LoadApplicants(submitInput)
	if err != nil {
		return err
	}

	client := submit.NewClient(&sc, target, l)

	l.Info("starting submission run",
		zap.String("env", sc.Env),
		zap.String("url", target.URL),
		zap.String("host", target.Host),
		zap.String("bureau", sc.Bureau),
		zap.String("run_id", client.RunID()),
		zap.Int("applicants", len(applicants)),
	)

	results := submit.Run(context.Background(), client, applicants, sc.Bureau, settings, l)

	if err := submit.WriteResults(submitOutput, results); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	l.Info("submission run complete",
		zap.Int("results", len(results)),
		zap.String("output", submitOutput),
	)
	return nil
}
