package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"trip-agent/internal/planner"

	"github.com/spf13/cobra"
)

// Dependencies wires runtime services.
type Dependencies struct {
	Planner planner.Service
	Timeout time.Duration // per query; zero means no limit
	Version string
}

// exitError carries a non-zero exit code for an outcome that was already reported.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

var errVersionShown = errors.New("version shown")

// Execute runs the CLI with injected dependencies and returns the process exit code.
func Execute(ctx context.Context, args []string, deps Dependencies, stdout io.Writer, stderr io.Writer) int {
	cmd := NewRootCommand(deps)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil || errors.Is(err, errVersionShown) {
		return 0
	}
	var controlled *exitError
	if errors.As(err, &controlled) {
		return controlled.code
	}
	if msg := err.Error(); msg != "" {
		_, _ = fmt.Fprintln(stderr, msg)
	}
	return 1
}

// NewRootCommand builds the command tree.
func NewRootCommand(deps Dependencies) *cobra.Command {
	version := strings.TrimSpace(deps.Version)
	if version == "" {
		version = "dev"
	}

	root := &cobra.Command{
		Use:           "tripctl",
		Short:         "Ask about the weather and sights of a place.",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			showVersion, _ := cmd.Flags().GetBool("version")
			if showVersion {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
				return errVersionShown
			}
			return cmd.Help()
		},
	}
	root.Flags().BoolP("version", "v", false, "Show CLI version and exit.")
	root.PersistentFlags().StringP("output", "o", string(FormatText), "Output format: text, json or yaml.")

	root.AddCommand(newAskCommand(deps))

	return root
}

func newAskCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:     "ask <query>",
		Short:   "Answer a travel query, e.g. tripctl ask \"what to see in Lisbon\".",
		Example: "  tripctl ask \"I'm going to Bangalore, what is the weather there?\"\n  tripctl ask -o json \"places to visit in Kyoto\"",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawFormat, _ := cmd.Flags().GetString("output")
			format, err := ParseFormat(rawFormat)
			if err != nil {
				return err
			}
			if deps.Planner == nil {
				return errors.New("planner is not configured")
			}

			ctx := cmd.Context()
			if deps.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, deps.Timeout)
				defer cancel()
			}

			query := strings.Join(args, " ")
			resp := deps.Planner.Handle(ctx, query)

			rendered, err := Render(resp, format)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			if resp.FatalError != nil {
				return &exitError{code: 1}
			}
			return nil
		},
	}
}
