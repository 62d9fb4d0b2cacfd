package linter

import (
	"sort"
	"strconv"
	"strings"
)

const (
	DefaultLinterPath       = "AssEmbly"
	DefaultMacroLimit       = 10000
	DefaultWhileRepeatLimit = 10000
)

// Options control one linter invocation.
type Options struct {
	LinterPath string
	// when set, this file is linted instead of the active document
	BaseFileOverride string
	MacroLimit       int
	WhileRepeatLimit int
	VariableDefines  map[string]string

	EnableObsoleteDirectives bool
	DisableVariableExpansion bool
	DisableEscapeSequences   bool
	DisableFileMacros        bool
}

// LintedPath is the file handed to the linter when documentPath is active.
func (o Options) LintedPath(documentPath string) string {
	if o.BaseFileOverride != "" {
		return o.BaseFileOverride
	}
	return documentPath
}

// Args builds the linter arguments for path. Defines are sorted by name so
// the command line is stable.
func Args(path string, opts Options) []string {
	names := make([]string, 0, len(opts.VariableDefines))
	for name := range opts.VariableDefines {
		names = append(names, name)
	}
	sort.Strings(names)
	defines := make([]string, len(names))
	for i, name := range names {
		defines[i] = name + ":" + opts.VariableDefines[name]
	}

	args := []string{
		"lint", path,
		"--no-header",
		"--macro-limit=" + strconv.Itoa(opts.MacroLimit),
		"--while-limit=" + strconv.Itoa(opts.WhileRepeatLimit),
		"--define=" + strings.Join(defines, ","),
	}
	if opts.EnableObsoleteDirectives {
		args = append(args, "--allow-old-directives")
	}
	if opts.DisableVariableExpansion {
		args = append(args, "--disable-variables")
	}
	if opts.DisableEscapeSequences {
		args = append(args, "--disable-escapes")
	}
	if opts.DisableFileMacros {
		args = append(args, "--disable-file-macros")
	}
	return args
}
