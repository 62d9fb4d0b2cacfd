package linter

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedOutput means stdout was not a response the linter produces.
	ErrMalformedOutput = errors.New("malformed linter output")
	// ErrLinterFailed means the linter reported that it could not lint at all.
	ErrLinterFailed = errors.New("linter failed")
)

const diagnosticSource = "AssEmbly"

type reportedDiagnostic struct{}

// Reported builds the diagnostics published for a lint report.
var Reported reportedDiagnostic

func (reportedDiagnostic) Warning(w LintWarning, r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  warningMessage(w),
		Source:   diagnosticSource,
		Severity: severityFor(w.Severity),
	}
}

func (reportedDiagnostic) NotAssembled(r TextRange) Diagnostic {
	return Diagnostic{
		Range:    r,
		Message:  "Line is not assembled",
		Source:   diagnosticSource,
		Severity: Hint,
		Tags:     []DiagnosticTag{Unnecessary},
	}
}

func severityFor(code int) DiagnosticSeverity {
	switch code {
	case SeverityFatal, SeverityError:
		return Error
	case SeverityWarning:
		return Warning
	}
	return Information
}

func warningMessage(w LintWarning) string {
	var prefix string
	switch w.Severity {
	case SeverityFatal:
		prefix = "Fatal Error"
	case SeverityError:
		prefix = fmt.Sprintf("Error %04d", w.Code)
	case SeverityWarning:
		prefix = fmt.Sprintf("Warning %04d", w.Code)
	default:
		prefix = fmt.Sprintf("Suggestion %04d", w.Code)
	}
	if w.MacroName != "" {
		prefix += fmt.Sprintf(" (in macro \"%s\")", w.MacroName)
	}
	return prefix + ": " + w.Message
}
