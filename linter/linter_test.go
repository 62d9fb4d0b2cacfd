package linter_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/assembly-tolly/assembly-language-server/analysis"
	"github.com/assembly-tolly/assembly-language-server/linter"
)

type fakeRunner struct {
	stdout []byte
	err    error

	name string
	args []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args []string) ([]byte, error) {
	f.name = name
	f.args = args
	return f.stdout, f.err
}

func linesOf(files map[string][]string) linter.LineSource {
	return func(path string) ([]string, error) {
		lines, ok := files[path]
		if !ok {
			return nil, os.ErrNotExist
		}
		return lines, nil
	}
}

func TestArgs(t *testing.T) {
	opts := linter.Options{
		LinterPath:               "AssEmbly",
		MacroLimit:               100,
		WhileRepeatLimit:         50,
		VariableDefines:          map[string]string{"b": "2", "a": "1"},
		EnableObsoleteDirectives: true,
		DisableFileMacros:        true,
	}
	expected := []string{
		"lint", "/src/main.asm",
		"--no-header",
		"--macro-limit=100",
		"--while-limit=50",
		"--define=a:1,b:2",
		"--allow-old-directives",
		"--disable-file-macros",
	}
	if args := linter.Args("/src/main.asm", opts); !reflect.DeepEqual(args, expected) {
		t.Errorf("Expected %v, got %v", expected, args)
	}

	args := linter.Args(`C:\my "files"\a.asm`, linter.Options{})
	if args[1] != `C:\my "files"\a.asm` || args[5] != "--define=" {
		t.Errorf("Unexpected arguments %v", args)
	}
}

func TestLintedPath(t *testing.T) {
	if p := (linter.Options{}).LintedPath("/a.asm"); p != "/a.asm" {
		t.Errorf("Expected document path, got %s", p)
	}
	if p := (linter.Options{BaseFileOverride: "/base.asm"}).LintedPath("/a.asm"); p != "/base.asm" {
		t.Errorf("Expected override, got %s", p)
	}
}

func TestDecodeResult(t *testing.T) {
	stdout := `{"Warnings":[{"Position":{"File":"","Line":3},"Severity":1,"Code":12,"Message":"bad op","MacroName":""}],` +
		`"AssembledLines":[{"File":"/a.asm","Line":1}],"Labels":{"start":0,"end":16},"AllVariables":["v"],"AllMacros":["m"]}`
	report, err := linter.Decode([]byte(stdout))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if report.Fatal {
		t.Errorf("Did not expect a fatal report")
	}
	if len(report.Warnings) != 1 || report.Warnings[0].Code != 12 || report.Warnings[0].Position.Line != 3 {
		t.Errorf("Unexpected warnings %+v", report.Warnings)
	}
	if !report.HasAssembledLines || len(report.AssembledLines) != 1 {
		t.Errorf("Unexpected assembled lines %+v", report.AssembledLines)
	}
	if !report.HasLabels || report.Labels["end"] != 16 {
		t.Errorf("Unexpected labels %v", report.Labels)
	}
	if !report.HasVariables || !report.HasMacros || report.Macros[0] != "m" {
		t.Errorf("Unexpected symbols %v %v", report.Variables, report.Macros)
	}
}

func TestDecodeFatalArray(t *testing.T) {
	stdout := `[{"Position":{"File":"/a.asm","Line":1},"Severity":0,"Code":0,"Message":"Unexpected end","MacroName":""}]`
	report, err := linter.Decode([]byte(stdout))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !report.Fatal || len(report.Warnings) != 1 {
		t.Fatalf("Expected a fatal report with one warning, got %+v", report)
	}
	diagnostics := report.Diagnostics(context.Background(), "/a.asm", "/a.asm", linesOf(map[string][]string{"/a.asm": {"MVQ"}}))
	if d := diagnostics["/a.asm"]; len(d) != 1 || d[0].Message != "Fatal Error: Unexpected end" || d[0].Severity != linter.Error {
		t.Errorf("Unexpected fatal diagnostics %+v", d)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		stdout   string
		expected error
	}{
		{"", linter.ErrMalformedOutput},
		{"not json", linter.ErrMalformedOutput},
		{`{"Labels":{}}`, linter.ErrMalformedOutput},
		{`{"Warnings":null}`, linter.ErrMalformedOutput},
		{`{"Warnings":[{"Position":"x"}]}`, linter.ErrMalformedOutput},
		{`{"error":"file not found"}`, linter.ErrLinterFailed},
	}
	for _, test := range tests {
		report, err := linter.Decode([]byte(test.stdout))
		if !errors.Is(err, test.expected) {
			t.Errorf("%q: expected %v, got %v", test.stdout, test.expected, err)
		}
		if report != nil {
			t.Errorf("%q: expected no report", test.stdout)
		}
	}
}

func TestDiagnosticsMessages(t *testing.T) {
	stdout := `{"Warnings":[` +
		`{"Position":{"File":"","Line":2},"Severity":1,"Code":12,"Message":"bad op","MacroName":""},` +
		`{"Position":{"File":"/inc.asm","Line":1},"Severity":2,"Code":3,"Message":"unused","MacroName":"m"},` +
		`{"Position":{"File":"/inc.asm","Line":9},"Severity":3,"Code":1,"Message":"style","MacroName":""}]}`
	report, err := linter.Decode([]byte(stdout))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	files := map[string][]string{
		"/a.asm":   {"HLT", "MVQ rg0, rg1 ; é"},
		"/inc.asm": {"  ADD rg0, 1"},
	}
	diagnostics := report.Diagnostics(context.Background(), "/a.asm", "/a.asm", linesOf(files))

	expected := map[string][]linter.Diagnostic{
		"/a.asm": {{
			Range:    linter.TextRange{Start: linter.TextPosition{Line: 1}, End: linter.TextPosition{Line: 1, Char: 16}},
			Message:  "Error 0012: bad op",
			Source:   "AssEmbly",
			Severity: linter.Error,
		}},
		"/inc.asm": {{
			Range:    linter.TextRange{Start: linter.TextPosition{Line: 0}, End: linter.TextPosition{Line: 0, Char: 12}},
			Message:  "Warning 0003 (in macro \"m\"): unused",
			Source:   "AssEmbly",
			Severity: linter.Warning,
		}, {
			Range:    linter.TextRange{Start: linter.TextPosition{Line: 8}, End: linter.TextPosition{Line: 8}},
			Message:  "Suggestion 0001: style",
			Source:   "AssEmbly",
			Severity: linter.Information,
		}},
	}
	if !reflect.DeepEqual(diagnostics, expected) {
		t.Errorf("Expected %+v, got %+v", expected, diagnostics)
	}
}

func TestDiagnosticsUnreadableFile(t *testing.T) {
	report := &linter.Report{Warnings: []linter.LintWarning{{
		Position: linter.FilePosition{File: "/gone.asm", Line: 0},
		Severity: linter.SeverityError,
		Message:  "x",
	}}}
	diagnostics := report.Diagnostics(context.Background(), "/a.asm", "/a.asm", linesOf(nil))
	d := diagnostics["/gone.asm"]
	if len(d) != 1 || d[0].Range != (linter.TextRange{}) {
		t.Errorf("Expected one zero-length diagnostic at line 0, got %+v", d)
	}
}

func TestDiagnosticsNotAssembled(t *testing.T) {
	report := &linter.Report{
		AssembledLines: []linter.AssembledLine{
			{File: "/SRC/A.ASM", Line: 1},
			{File: "/src/a.asm", Line: 3},
			{File: "/src/other.asm", Line: 2},
		},
		HasAssembledLines: true,
	}
	files := map[string][]string{"/src/a.asm": {"MVQ rg0, 1", "%IF DEF, x", "HLT", "%ENDIF"}}
	diagnostics := report.Diagnostics(context.Background(), "/src/base.asm", "/src/a.asm", linesOf(files))

	d := diagnostics["/src/a.asm"]
	if len(d) != 2 {
		t.Fatalf("Expected two hints, got %+v", d)
	}
	for i, line := range []int{1, 3} {
		if d[i].Range.Start.Line != line || d[i].Message != "Line is not assembled" || d[i].Severity != linter.Hint {
			t.Errorf("Unexpected hint %+v", d[i])
		}
		if !reflect.DeepEqual(d[i].Tags, []linter.DiagnosticTag{linter.Unnecessary}) {
			t.Errorf("Expected the unnecessary tag, got %v", d[i].Tags)
		}
	}
	if _, ok := diagnostics["/src/base.asm"]; ok {
		t.Errorf("Did not expect diagnostics for the linted file")
	}
}

func TestDiagnosticsEmptyAssembledLines(t *testing.T) {
	stdout := `{"Warnings":[{"Position":{"File":"","Line":3},"Severity":1,"Code":12,"Message":"bad op","MacroName":""}],` +
		`"AssembledLines":[],"Labels":{},"AllVariables":[],"AllMacros":[]}`
	report, err := linter.Decode([]byte(stdout))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	files := map[string][]string{"/src/a.asm": {"MVQ rg0, 1", "", "BAD rg0", "HLT"}}
	d := report.Diagnostics(context.Background(), "/src/a.asm", "/src/a.asm", linesOf(files))["/src/a.asm"]

	// an empty list still means nothing was assembled, so every line is hinted
	if len(d) != 5 {
		t.Fatalf("Expected one error and four hints, got %+v", d)
	}
	errorRange := linter.TextRange{
		Start: linter.TextPosition{Line: 2, Char: 0},
		End:   linter.TextPosition{Line: 2, Char: 7},
	}
	if d[0].Message != "Error 0012: bad op" || d[0].Severity != linter.Error || d[0].Range != errorRange {
		t.Errorf("Unexpected error diagnostic %+v", d[0])
	}
	for i, hint := range d[1:] {
		if hint.Severity != linter.Hint || hint.Range.Start.Line != i {
			t.Errorf("Unexpected hint %+v", hint)
		}
	}
}

func TestLint(t *testing.T) {
	runner := &fakeRunner{stdout: []byte(`{"Warnings":[]}`)}
	opts := linter.Options{LinterPath: "/bin/AssEmbly", BaseFileOverride: "/base.asm"}
	report, err := linter.Lint(context.Background(), runner, opts, "/doc.asm")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("Expected no warnings")
	}
	if runner.name != "/bin/AssEmbly" || runner.args[1] != "/base.asm" {
		t.Errorf("Unexpected invocation %s %v", runner.name, runner.args)
	}

	launchErr := errors.New("exit status 1")
	runner = &fakeRunner{stdout: []byte(`{"Warnings":[]}`), err: launchErr}
	if _, err := linter.Lint(context.Background(), runner, opts, "/doc.asm"); !errors.Is(err, launchErr) {
		t.Errorf("Expected launch error, got %v", err)
	}

	runner = &fakeRunner{stdout: []byte(`{"error":"boom"}`), err: launchErr}
	if _, err := linter.Lint(context.Background(), runner, opts, "/doc.asm"); !errors.Is(err, linter.ErrLinterFailed) {
		t.Errorf("Expected linter failure, got %v", err)
	}
}

func TestSnapshot(t *testing.T) {
	prev := &analysis.Snapshot{
		Labels:    map[string]uint64{"old": 1},
		Variables: []string{"v"},
		Macros:    []string{"m"},
	}

	report := &linter.Report{Labels: map[string]uint64{"new": 2}, HasLabels: true}
	next := report.Snapshot(prev)
	if _, ok := next.Label("old"); ok {
		t.Errorf("Expected labels to be replaced")
	}
	if addr, ok := next.Label("new"); !ok || addr != 2 {
		t.Errorf("Expected label new at 2")
	}
	if !reflect.DeepEqual(next.Macros, []string{"m"}) || !reflect.DeepEqual(next.Variables, []string{"v"}) {
		t.Errorf("Expected missing fields to carry over, got %+v", next)
	}
	if _, ok := prev.Label("new"); ok {
		t.Errorf("Previous snapshot was modified")
	}

	fatal := &linter.Report{Fatal: true, Warnings: []linter.LintWarning{{}}}
	if fatal.Snapshot(prev) != prev {
		t.Errorf("Expected fatal report to keep the previous snapshot")
	}

	if s := (&linter.Report{}).Snapshot(nil); s == nil || s.Labels != nil {
		t.Errorf("Expected an empty snapshot, got %+v", s)
	}
}

func TestExecRunner(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-linter")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho '{\"Warnings\":[]}'\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	stdout, err := linter.ExecRunner{}.Run(context.Background(), script, []string{"lint", "x.asm"})
	if err != nil {
		t.Skipf("cannot run shell scripts here: %v", err)
	}
	if _, err := linter.Decode(stdout); err != nil {
		t.Errorf("Unexpected decode error: %v", err)
	}

	if _, err := (linter.ExecRunner{}).Run(context.Background(), filepath.Join(dir, "missing"), nil); err == nil {
		t.Errorf("Expected an error for a missing executable")
	}
}
