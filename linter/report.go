package linter

import (
	"context"
	"errors"
	"strings"
	"sync"
	"unicode/utf16"

	"golang.org/x/sync/errgroup"

	"github.com/assembly-tolly/assembly-language-server/analysis"
	"github.com/assembly-tolly/assembly-language-server/util"
)

// maximum number of files read at once while building diagnostics
const maxConcurrentReads = 8

// LineSource returns the lines of a file, taken from the editor when the
// file is open there.
type LineSource func(path string) ([]string, error)

// Lint runs the linter for the document at documentPath and decodes its
// output.
func Lint(ctx context.Context, runner Runner, opts Options, documentPath string) (*Report, error) {
	path := opts.LintedPath(documentPath)
	args := Args(path, opts)
	util.LogF("AssEmbly linter: running %s %s", opts.LinterPath, strings.Join(args, " "))

	stdout, runErr := runner.Run(ctx, opts.LinterPath, args)
	util.LogF("AssEmbly linter: attempting to decode %q", strings.TrimSpace(string(stdout)))
	report, err := Decode(stdout)
	if errors.Is(err, ErrLinterFailed) {
		return nil, err
	}
	if runErr != nil {
		return nil, runErr
	}
	return report, err
}

// Diagnostics groups the report's findings by file path. Warnings without a
// file belong to lintedPath. When the report lists assembled lines, every
// other line of activePath gets a hint.
func (r *Report) Diagnostics(ctx context.Context, lintedPath, activePath string, source LineSource) map[string][]Diagnostic {
	paths := make(map[string]bool)
	for _, w := range r.Warnings {
		paths[warningPath(w, lintedPath)] = true
	}
	if r.HasAssembledLines {
		paths[activePath] = true
	}
	lines := loadLines(ctx, paths, source)

	out := make(map[string][]Diagnostic)
	for _, w := range r.Warnings {
		path := warningPath(w, lintedPath)
		out[path] = append(out[path], Reported.Warning(w, lineRange(lines[path], w.Position.Line-1)))
	}

	if r.HasAssembledLines {
		assembled := make(map[int]bool)
		for _, l := range r.AssembledLines {
			if strings.EqualFold(l.File, activePath) {
				assembled[l.Line-1] = true
			}
		}
		diagnostics := out[activePath]
		if diagnostics == nil {
			diagnostics = []Diagnostic{}
		}
		activeLines := lines[activePath]
		for i := range activeLines {
			if !assembled[i] {
				diagnostics = append(diagnostics, Reported.NotAssembled(lineRange(activeLines, i)))
			}
		}
		out[activePath] = diagnostics
	}
	return out
}

// Snapshot returns the symbol state after this report. Fields the report
// does not carry keep their previous value, and a fatal report changes
// nothing.
func (r *Report) Snapshot(prev *analysis.Snapshot) *analysis.Snapshot {
	if r.Fatal {
		return prev
	}
	next := &analysis.Snapshot{}
	if prev != nil {
		*next = *prev
	}
	if r.HasLabels {
		next.Labels = r.Labels
	}
	if r.HasVariables {
		next.Variables = r.Variables
	}
	if r.HasMacros {
		next.Macros = r.Macros
	}
	return next
}

func warningPath(w LintWarning, lintedPath string) string {
	if w.Position.File == "" {
		return lintedPath
	}
	return w.Position.File
}

// loadLines reads every path concurrently. A file that cannot be read maps
// to no lines.
func loadLines(ctx context.Context, paths map[string]bool, source LineSource) map[string][]string {
	var mu sync.Mutex
	lines := make(map[string][]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for path := range paths {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			text, err := source(path)
			if err != nil {
				util.LogF("AssEmbly linter: could not read %s: %v", path, err)
				return nil
			}
			mu.Lock()
			lines[path] = text
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return lines
}

// lineRange spans the whole of line index, clamped to the document.
func lineRange(lines []string, index int) TextRange {
	if index < 0 {
		index = 0
	}
	end := 0
	if index < len(lines) {
		end = utf16Len(lines[index])
	}
	return TextRange{
		Start: TextPosition{Line: index, Char: 0},
		End:   TextPosition{Line: index, Char: end},
	}
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
