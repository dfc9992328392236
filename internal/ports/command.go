package ports

import "context"

type Command struct {
	Name string
	Args []string
	Dir  string
}

// CommandResult holds the outcome of a command that ran to completion,
// whatever its exit status.
type CommandResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// CommandRunnerPort runs external programs. It returns an error only when
// the program could not be started or did not finish (for example because
// the context expired); a non-zero exit is reported through the result.
type CommandRunnerPort interface {
	Run(ctx context.Context, cmd Command) (CommandResult, error)
}
