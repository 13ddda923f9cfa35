package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/michael-freling/claude-code-guards/internal/hooks"
	"github.com/michael-freling/claude-code-guards/internal/logger"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "claude-hooks",
		Short: "Claude Code hooks that block lint bypasses and test mocks",
		Long: `A CLI tool that provides PreToolUse hooks for Claude Code. It inspects Write, Edit and MultiEdit
tool calls and denies changes that bypass ESLint or TypeScript checks, or that mock with Jest in tests.`,
	}

	rootCmd.AddCommand(newPreToolUseCmd())
	rootCmd.AddCommand(newRulesCmd())

	return rootCmd
}

func newPreToolUseCmd() *cobra.Command {
	var (
		policyNames []string
		logFile     string
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:   "pre-tool-use",
		Short: "Evaluate file changes before tool execution",
		Long: `Reads a tool call from stdin as JSON and writes a permission decision to stdout as JSON.
Violations are also listed on stderr. The exit code is 0 for every input, including malformed JSON;
the decision is carried only in the JSON output.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			policies, err := hooks.LookupPolicies(policyNames...)
			if err != nil {
				return err
			}

			log, closeLog, err := newLogger(logFile, logLevel)
			if err != nil {
				return err
			}
			defer closeLog()

			gate := hooks.NewPolicyGate(log, policies...)
			if _, err := gate.Run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
				log.Error("failed to write decision", "error", err)
				return err
			}

			return nil
		},
	}

	addPolicyFlag(cmd, &policyNames)
	cmd.Flags().StringVar(&logFile, "log-file", "", "append diagnostic logs to this file")
	cmd.Flags().StringVar(&logLevel, "log-level", string(logger.LevelError), "log level: debug, info or error")

	return cmd
}

func newRulesCmd() *cobra.Command {
	var policyNames []string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules enforced by each policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policies, err := hooks.LookupPolicies(policyNames...)
			if err != nil {
				return err
			}

			return renderRules(cmd.OutOrStdout(), policies)
		},
	}

	addPolicyFlag(cmd, &policyNames)

	return cmd
}

func addPolicyFlag(cmd *cobra.Command, names *[]string) {
	cmd.Flags().StringSliceVar(names, "policy", nil,
		fmt.Sprintf("policies to apply (%s); defaults to all", strings.Join(hooks.PolicyNames(), ", ")))
}

// newLogger returns a no-op logger unless a log file is configured.
func newLogger(path, level string) (logger.Logger, func(), error) {
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	if path == "" {
		return logger.NewNop(), func() {}, nil
	}

	log, w, err := logger.NewFile(path, lvl)
	if err != nil {
		return nil, nil, err
	}

	return log, func() { _ = w.Close() }, nil
}

func renderRules(w io.Writer, policies []*hooks.Policy) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
	)

	table.Header([]string{"Policy", "Rule", "Message", "Guidance"})

	for _, policy := range policies {
		for _, rule := range policy.Rules {
			if err := table.Append([]string{policy.Name, rule.ID, rule.Message, rule.Guidance}); err != nil {
				return err
			}
		}
	}

	return table.Render()
}
