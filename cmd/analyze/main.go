// Package main implements the CLI entry point for onboarding analysis.
// It reads a JSON question/answer pair from a file argument or stdin,
// runs the same concurrent analysis as the server, and prints the merged
// result as indented JSON on stdout.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emberdate/onboarding-api/internal/analysis"
	"github.com/emberdate/onboarding-api/internal/api/shared"
	"github.com/emberdate/onboarding-api/internal/config"
	"github.com/emberdate/onboarding-api/internal/domain"
	"github.com/emberdate/onboarding-api/internal/platform/gemini"
)

// analyzeInput mirrors the HTTP request payload so file and API inputs
// stay interchangeable.
type analyzeInput struct {
	UserID   string `json:"user_id"  validate:"required,min=1"`
	Question string `json:"question" validate:"required,min=1"`
	Answer   string `json:"answer"   validate:"required,min=1"`
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "analyze [input-file]",
		Short: "Analyze an onboarding Q&A response",
		Long: `Analyze a single onboarding question/answer pair by running the
insight and trait agents concurrently against the configured LLM backend.

The input is a JSON object {"user_id", "question", "answer"}, read from
the given file or from stdin when no file is named.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, verbose bool) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Logs go to stderr so stdout carries only the result JSON.
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := config.Load()
	if err != nil {
		return failf(cmd, "Configuration error: %v", err)
	}

	input, err := readInput(args)
	if err != nil {
		return failf(cmd, "%v", err)
	}

	backend, err := gemini.NewBackend(ctx, log, cfg.LLM)
	if err != nil {
		return failf(cmd, "Backend error: %v", err)
	}

	analyzer, err := analysis.NewAnalyzer(backend, log)
	if err != nil {
		return failf(cmd, "Setup error: %v", err)
	}

	result, err := analyzer.Analyze(ctx, input)
	if err != nil {
		return failf(cmd, "Analysis failed: %v", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return failf(cmd, "Failed to encode result: %v", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// readInput decodes and validates the JSON input from the file named in
// args, or from stdin when args is empty.
func readInput(args []string) (domain.AnalysisInput, error) {
	var reader io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return domain.AnalysisInput{}, fmt.Errorf("cannot open input file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	}

	var in analyzeInput
	if err := shared.DecodeJSON(reader, &in); err != nil {
		return domain.AnalysisInput{}, fmt.Errorf("invalid JSON input: %w", err)
	}

	if err := shared.ValidateRequest(in); err != nil {
		return domain.AnalysisInput{}, fmt.Errorf("invalid input: %w", err)
	}

	return domain.NewAnalysisInput(in.UserID, in.Question, in.Answer)
}

// failf prints the message to stderr and returns it as an error so the
// process exits non-zero.
func failf(cmd *cobra.Command, format string, a ...any) error {
	err := fmt.Errorf(format, a...)
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return err
}
