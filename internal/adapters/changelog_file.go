package adapters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"grml-changelog/internal/ports"
)

type ChangelogFileAdapter struct{}

func NewChangelogFileAdapter() ChangelogFileAdapter {
	return ChangelogFileAdapter{}
}

// WriteChangelog stages the changelog and the optional summary in temporary
// files next to their targets before renaming either into place. The
// changelog is renamed last, so a failed run never touches it.
func (a ChangelogFileAdapter) WriteChangelog(output ports.ChangelogOutput) error {
	changelog, err := stageFile(output.ChangelogPath, []byte(output.Changelog))
	if err != nil {
		return err
	}
	defer changelog.discard()

	if output.SummaryPath != "" {
		data, err := MarshalSummary(output.Summary)
		if err != nil {
			return err
		}
		summary, err := stageFile(output.SummaryPath, data)
		if err != nil {
			return err
		}
		defer summary.discard()
		if err := summary.commit(); err != nil {
			return err
		}
	}
	return changelog.commit()
}

// stagedFile is a fully written temporary file waiting to replace path.
type stagedFile struct {
	path      string
	tmpPath   string
	committed bool
}

func stageFile(path string, data []byte) (*stagedFile, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to create directory for %s", path)).
			WithCause(err)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("output path is a directory: %s", path))
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to stage %s", path)).
			WithCause(err)
	}
	staged := &stagedFile{path: path, tmpPath: tmp.Name()}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		staged.discard()
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write %s", path)).
			WithCause(err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		staged.discard()
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to set permissions on %s", path)).
			WithCause(err)
	}
	if err := tmp.Close(); err != nil {
		staged.discard()
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write %s", path)).
			WithCause(err)
	}
	return staged, nil
}

func (f *stagedFile) commit() error {
	if err := os.Rename(f.tmpPath, f.path); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to replace %s", f.path)).
			WithCause(err)
	}
	f.committed = true
	return nil
}

// discard removes the temporary file unless it was committed.
func (f *stagedFile) discard() {
	if !f.committed {
		_ = os.Remove(f.tmpPath)
	}
}

var _ ports.ChangelogWriterPort = ChangelogFileAdapter{}
