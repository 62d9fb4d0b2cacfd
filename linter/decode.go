package linter

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Decode parses linter stdout. Three shapes are accepted: the full result
// object, a bare array holding the warning of a fatal error, and an object
// with an "error" key, which gives ErrLinterFailed.
func Decode(stdout []byte) (*Report, error) {
	trimmed := bytes.TrimSpace(stdout)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty output", ErrMalformedOutput)
	}

	if trimmed[0] == '[' {
		var warnings []LintWarning
		if err := json.Unmarshal(trimmed, &warnings); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
		}
		return &Report{Warnings: warnings, Fatal: true}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	if raw, ok := fields["error"]; ok {
		var message string
		if json.Unmarshal(raw, &message) != nil {
			message = string(raw)
		}
		return nil, fmt.Errorf("%w: %s", ErrLinterFailed, message)
	}

	report := &Report{}
	raw, ok := fields["Warnings"]
	if !ok || !isArray(raw) {
		return nil, fmt.Errorf("%w: no Warnings array", ErrMalformedOutput)
	}
	if err := json.Unmarshal(raw, &report.Warnings); err != nil {
		return nil, fmt.Errorf("%w: Warnings: %v", ErrMalformedOutput, err)
	}

	if raw, ok := fields["AssembledLines"]; ok && isArray(raw) {
		if err := json.Unmarshal(raw, &report.AssembledLines); err != nil {
			return nil, fmt.Errorf("%w: AssembledLines: %v", ErrMalformedOutput, err)
		}
		report.HasAssembledLines = true
	}
	if raw, ok := fields["Labels"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &report.Labels); err != nil {
			return nil, fmt.Errorf("%w: Labels: %v", ErrMalformedOutput, err)
		}
		report.HasLabels = true
	}
	if raw, ok := fields["AllVariables"]; ok && isArray(raw) {
		if err := json.Unmarshal(raw, &report.Variables); err != nil {
			return nil, fmt.Errorf("%w: AllVariables: %v", ErrMalformedOutput, err)
		}
		report.HasVariables = true
	}
	if raw, ok := fields["AllMacros"]; ok && isArray(raw) {
		if err := json.Unmarshal(raw, &report.Macros); err != nil {
			return nil, fmt.Errorf("%w: AllMacros: %v", ErrMalformedOutput, err)
		}
		report.HasMacros = true
	}
	return report, nil
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
