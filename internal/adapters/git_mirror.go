package adapters

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"grml-changelog/internal/ports"
	"grml-changelog/internal/shared"
)

// GitMirrorAdapter maintains bare mirrors of per-package git repositories
// under Dir, named <package>.git and cloned from <URLBase>/<package>.
// Mirrors are kept between runs and refreshed in place.
type GitMirrorAdapter struct {
	Runner  ports.CommandRunnerPort
	URLBase string
	Dir     string
	Timeout time.Duration

	locks *mirrorLocks
}

func NewGitMirrorAdapter(runner ports.CommandRunnerPort, urlBase string, dir string, timeout time.Duration) GitMirrorAdapter {
	return GitMirrorAdapter{
		Runner:  runner,
		URLBase: strings.TrimSuffix(urlBase, "/"),
		Dir:     dir,
		Timeout: timeout,
		locks:   newMirrorLocks(),
	}
}

func (a GitMirrorAdapter) MirrorPath(packageName string) string {
	return filepath.Join(a.Dir, packageName+".git")
}

func (a GitMirrorAdapter) RemoteURL(packageName string) string {
	return a.URLBase + "/" + packageName
}

func (a GitMirrorAdapter) Sync(ctx context.Context, packageName string) error {
	assert.NotEmpty(ctx, packageName, "package name must be set")
	gitDir := a.MirrorPath(packageName)
	unlock := a.locks.lock(gitDir)
	defer unlock()

	gitURL := a.RemoteURL(packageName)
	logger := log.Ctx(ctx).With().Str("package", packageName).Str("url", gitURL).Logger()

	exists, err := dirExists(gitDir)
	if err != nil {
		return err
	}
	if !exists {
		logger.Info().Str("dir", gitDir).Msg("cloning git mirror")
		if _, err := a.runGit(ctx, a.Dir, "clone", "--mirror", "--", gitURL, filepath.Base(gitDir)); err != nil {
			return err
		}
		exists, err = dirExists(gitDir)
		if err != nil {
			return err
		}
		if !exists {
			return errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("cloning from %s into %s failed: output directory not found", gitURL, gitDir))
		}
	}

	logger.Info().Msg("updating git mirror")
	if _, err := a.runGit(ctx, gitDir, "remote", "set-url", "origin", gitURL); err != nil {
		return err
	}
	if _, err := a.runGit(ctx, gitDir, "remote", "update", "--prune"); err != nil {
		return err
	}
	return nil
}

func (a GitMirrorAdapter) Log(ctx context.Context, packageName string, revisionRange string) (string, error) {
	gitDir := a.MirrorPath(packageName)
	unlock := a.locks.lock(gitDir)
	defer unlock()

	output, err := a.runGit(ctx, gitDir, "log", "--oneline", revisionRange)
	if err != nil {
		return "", err
	}
	return string(output), nil
}

func (a GitMirrorAdapter) runGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	runCtx := ctx
	if a.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}
	command := ports.Command{Name: "git", Args: args, Dir: dir}
	line := shared.CommandLine(command.Name, command.Args)
	log.Ctx(ctx).Debug().Str("command", line).Str("dir", dir).Msg("running command")

	result, err := a.Runner.Run(runCtx, command)
	if err != nil {
		msg := fmt.Sprintf("command %q failed to run", line)
		if ctx.Err() == nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			msg = fmt.Sprintf("command %q timed out after %s", line, a.Timeout)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(msg).
			WithCause(err)
	}
	if result.ExitCode != 0 {
		log.Ctx(ctx).Error().
			Str("command", line).
			Int("exit_code", result.ExitCode).
			Str("stderr", strings.TrimSpace(string(result.Stderr))).
			Msg("command failed")
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("command %q exited with code %d", line, result.ExitCode)).
			WithCause(shared.CommandError(result.Stderr, fmt.Errorf("exit status %d", result.ExitCode)))
	}
	if stderr := strings.TrimSpace(string(result.Stderr)); stderr != "" {
		log.Ctx(ctx).Debug().Str("command", line).Str("stderr", stderr).Msg("command output")
	}
	return result.Stdout, nil
}

func dirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("failed to stat %s", path)).
		WithCause(err)
}

// mirrorLocks serialises git invocations per mirror directory so that
// parallel syncs never interleave remote updates on one repository.
type mirrorLocks struct {
	mu    sync.Mutex
	paths map[string]*sync.Mutex
}

func newMirrorLocks() *mirrorLocks {
	return &mirrorLocks{paths: map[string]*sync.Mutex{}}
}

func (l *mirrorLocks) lock(path string) func() {
	if l == nil {
		return func() {}
	}
	l.mu.Lock()
	m, ok := l.paths[path]
	if !ok {
		m = &sync.Mutex{}
		l.paths[path] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m.Unlock
}

var _ ports.MirrorPort = GitMirrorAdapter{}
