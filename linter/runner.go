package linter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Runner starts the linter and returns what it wrote to stdout.
type Runner interface {
	Run(ctx context.Context, name string, args []string) ([]byte, error)
}

type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), fmt.Errorf("running %s: %w (stdout: %q, stderr: %q)", name, err, stdout.String(), stderr.String())
	}
	return stdout.Bytes(), nil
}
