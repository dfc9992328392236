package adapters

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"

	"grml-changelog/internal/ports"
)

type ExecCommandRunnerAdapter struct {
	// Env is appended to the inherited environment of every command.
	Env []string
}

func NewExecCommandRunnerAdapter() ExecCommandRunnerAdapter {
	return ExecCommandRunnerAdapter{Env: []string{"GIT_TERMINAL_PROMPT=0"}}
}

func (a ExecCommandRunnerAdapter) Run(ctx context.Context, command ports.Command) (ports.CommandResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.CommandResult{}, err
	}
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = command.Dir
	if len(a.Env) > 0 {
		cmd.Env = append(os.Environ(), a.Env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := ports.CommandResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	return result, err
}

var _ ports.CommandRunnerPort = ExecCommandRunnerAdapter{}
