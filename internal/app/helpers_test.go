package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"grml-changelog/internal/ports"
)

func writeFile(t *testing.T, dir string, rel string, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// dpkgList renders rows in `dpkg -l` layout; each row is name, version.
func dpkgList(rows ...[2]string) string {
	var b strings.Builder
	b.WriteString("||/ Name Version Architecture Description\n")
	b.WriteString("+++-====-=======-============-===========\n")
	for _, row := range rows {
		b.WriteString("ii  " + row[0] + "  " + row[1] + "  all  test package\n")
	}
	return b.String()
}

// errorMessage returns the message of an errbuilder error, or Error()
// for anything else.
func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}

// fakeRunner is a scripted ports.CommandRunnerPort. Results and Errors are
// keyed by the space-joined argument list, e.g. "log --oneline v1..v2".
// Unscripted commands succeed with empty output.
type fakeRunner struct {
	Results map[string]ports.CommandResult
	Errors  map[string]error
	// CreateOnClone makes "clone" create its target directory, the way a
	// successful git clone would.
	CreateOnClone bool

	mu    sync.Mutex
	calls []ports.Command
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		Results:       map[string]ports.CommandResult{},
		Errors:        map[string]error{},
		CreateOnClone: true,
	}
}

func (f *fakeRunner) Run(ctx context.Context, cmd ports.Command) (ports.CommandResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return ports.CommandResult{}, err
	}
	key := strings.Join(cmd.Args, " ")
	if err, ok := f.Errors[key]; ok {
		return ports.CommandResult{}, err
	}
	result, ok := f.Results[key]
	if f.CreateOnClone && len(cmd.Args) > 0 && cmd.Args[0] == "clone" && result.ExitCode == 0 {
		target := filepath.Join(cmd.Dir, cmd.Args[len(cmd.Args)-1])
		if err := os.MkdirAll(target, 0o755); err != nil {
			return ports.CommandResult{}, err
		}
	}
	if ok {
		return result, nil
	}
	return ports.CommandResult{}, nil
}

// Calls returns the recorded invocations as "<dir>: <args>" relative to base.
func (f *fakeRunner) Calls(base string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, call := range f.calls {
		dir, err := filepath.Rel(base, call.Dir)
		if err != nil {
			dir = call.Dir
		}
		out = append(out, dir+": "+call.Name+" "+strings.Join(call.Args, " "))
	}
	return out
}
