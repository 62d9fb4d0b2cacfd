package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/assembly-tolly/assembly-language-server/analysis"
	"github.com/assembly-tolly/assembly-language-server/config"
	"github.com/assembly-tolly/assembly-language-server/linter"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	hintColor    = color.New(color.Faint)
	pathColor    = color.New(color.Bold)
)

var lintCmd = &cobra.Command{
	Use:   "lint <file>",
	Short: "Lint a file once and print what the editor would show",
	Args:  cobra.ExactArgs(1),
	RunE:  runLint,
}

var hoverCmd = &cobra.Command{
	Use:   "hover <file> <line> <column>",
	Short: "Print the hover text for a position, both counted from 1",
	Args:  cobra.ExactArgs(3),
	RunE:  runHover,
}

func init() {
	lintCmd.Flags().Bool("unassembled", false, "also list lines that are not assembled")
}

func runLint(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cwd, err := os.Getwd(); err == nil {
		if err := config.LoadWorkspaceFile(filepath.Join(cwd, config.WorkspaceSettingsPath), &s); err != nil {
			return err
		}
	}
	opts := s.LinterOptions()

	report, err := linter.Lint(ctx, linter.ExecRunner{}, opts, path)
	if err != nil {
		return err
	}
	showUnassembled, _ := cmd.Flags().GetBool("unassembled")
	byPath := report.Diagnostics(ctx, opts.LintedPath(path), path, readLines)

	paths := make([]string, 0, len(byPath))
	for p := range byPath {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	errorCount := 0
	out := cmd.OutOrStdout()
	for _, p := range paths {
		diagnostics := byPath[p]
		sort.SliceStable(diagnostics, func(i, j int) bool {
			return diagnostics[i].Range.Start.Line < diagnostics[j].Range.Start.Line
		})
		for _, d := range diagnostics {
			if d.Severity == linter.Hint && !showUnassembled {
				continue
			}
			if d.Severity == linter.Error {
				errorCount++
			}
			fmt.Fprintf(out, "%s:%d: %s\n", pathColor.Sprint(p), d.Range.Start.Line+1, severityColor(d.Severity).Sprint(d.Message))
		}
	}
	if errorCount > 0 {
		return fmt.Errorf("%d errors", errorCount)
	}
	return nil
}

func runHover(cmd *cobra.Command, args []string) error {
	lines, err := readLines(args[0])
	if err != nil {
		return err
	}
	line, err := strconv.Atoi(args[1])
	if err != nil || line < 1 || line > len(lines) {
		return fmt.Errorf("line must be between 1 and %d", len(lines))
	}
	column, err := strconv.Atoi(args[2])
	if err != nil || column < 1 {
		return fmt.Errorf("column must be a positive number")
	}

	result, ok := analysis.Hover(lines[line-1], column-1, nil)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing to show")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Markdown)
	return nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return analysis.SplitLines(string(data)), nil
}

func severityColor(s linter.DiagnosticSeverity) *color.Color {
	switch s {
	case linter.Error:
		return errorColor
	case linter.Warning:
		return warningColor
	case linter.Hint:
		return hintColor
	}
	return infoColor
}
