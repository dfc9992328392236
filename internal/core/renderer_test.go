package core

import (
	"context"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grml-changelog/internal/types"
)

type fakeSource struct {
	logs  map[string]string
	err   error
	calls []string
}

func (f *fakeSource) Changelog(_ context.Context, packageName string, revisionRange string) (string, error) {
	f.calls = append(f.calls, packageName+" "+revisionRange)
	if f.err != nil {
		return "", f.err
	}
	return f.logs[packageName+" "+revisionRange], nil
}

func TestRenderChangelogLayout(t *testing.T) {
	old := types.NewPackageSnapshot(map[string]string{"grml-foo": "1", "grml-old": "3", "bar": "1"})
	current := types.NewPackageSnapshot(map[string]string{"grml-foo": "2", "baz": "1"})
	classification := Classify(old, current, "grml-")
	source := &fakeSource{logs: map[string]string{
		"grml-foo v1..v2": "abc1234 Fix boot menu\ndef5678 Release 2\n",
	}}

	got, err := RenderChangelog(t.Context(), types.JobIdentity{Name: "JOB", BuildID: "42"}, classification, source)
	require.NoError(t, err)

	want := Separator +
		"Generated by grml-changelog for job\n" +
		"JOB 42\n" +
		Separator +
		"\n" +
		"grml-old\n" +
		"Removed.\n" +
		Separator +
		"\n" +
		"grml-foo v1..v2\n" +
		"Changes:\n" +
		"abc1234 Fix boot menu\n" +
		"def5678 Release 2\n" +
		Separator +
		"\n" +
		"Changes to Debian package list:\n" +
		"  Added:\n     baz\n" +
		"  Changed:\n     \n" +
		"  Removed:\n     bar\n" +
		Separator
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected changelog (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"grml-foo v1..v2"}, source.calls)
}

func TestRenderChangelogSectionOrder(t *testing.T) {
	old := types.NewPackageSnapshot(map[string]string{"grml-foo": "1", "bar": "1"})
	current := types.NewPackageSnapshot(map[string]string{"grml-foo": "2", "baz": "5"})
	classification := Classify(old, current, "grml-")

	got, err := RenderChangelog(t.Context(), types.JobIdentity{Name: "JOB", BuildID: "42"}, classification, &fakeSource{})
	require.NoError(t, err)

	header := strings.Index(got, "JOB 42")
	tracked := strings.Index(got, "grml-foo v1..v2\nChanges:\n")
	trailer := strings.Index(got, "Changes to Debian package list:")
	added := strings.Index(got, "  Added:\n     baz\n")
	removed := strings.Index(got, "  Removed:\n     bar\n")
	for _, idx := range []int{header, tracked, trailer, added, removed} {
		require.GreaterOrEqual(t, idx, 0)
	}
	assert.Less(t, header, tracked)
	assert.Less(t, tracked, trailer)
	assert.Less(t, trailer, added)
	assert.Less(t, added, removed)
	assert.Equal(t, 1, strings.Count(got, "     bar\n"))
	assert.Equal(t, 1, strings.Count(got, "     baz\n"))
	assert.True(t, strings.HasSuffix(got, Separator))
}

func TestRenderChangelogEmptyLogAndMissingNewline(t *testing.T) {
	classification := types.Classification{
		TrackedChanges: []types.TrackedChange{
			{Package: "grml-a", OldVersion: "1", HasOld: true, NewVersion: "1.1"},
			{Package: "grml-b", NewVersion: "2"},
		},
	}
	source := &fakeSource{logs: map[string]string{
		"grml-b v2": "0000001 Initial import",
	}}

	got, err := RenderChangelog(t.Context(), types.JobIdentity{}, classification, source)
	require.NoError(t, err)
	assert.Contains(t, got, "grml-a v1..v1.1\nChanges:\n"+Separator)
	assert.Contains(t, got, "grml-b v2\nChanges:\n0000001 Initial import\n"+Separator)
	assert.Contains(t, got, Separator+"Generated by grml-changelog for job\n \n")
}

func TestRenderChangelogMultiLineGenericListings(t *testing.T) {
	classification := types.Classification{
		GenericAdded: []string{"a", "b"},
		GenericChanged: []types.VersionChange{
			{Package: "c", OldVersion: "1", NewVersion: "2"},
			{Package: "d", OldVersion: "1:0.1", NewVersion: "1:0.2"},
		},
	}
	got, err := RenderChangelog(t.Context(), types.JobIdentity{Name: "j", BuildID: "1"}, classification, &fakeSource{})
	require.NoError(t, err)
	assert.Contains(t, got, "  Added:\n     a\n     b\n")
	assert.Contains(t, got, "  Changed:\n     c 1 -> 2\n     d 1:0.1 -> 1:0.2\n")
	assert.Contains(t, got, "  Removed:\n     \n")
}

func TestRenderChangelogSourceFailureAborts(t *testing.T) {
	classification := types.Classification{
		TrackedChanges: []types.TrackedChange{
			{Package: "grml-a", NewVersion: "1"},
			{Package: "grml-b", NewVersion: "1"},
		},
	}
	failure := errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(`command "git remote update --prune" exited with code 1`)
	source := &fakeSource{err: failure}

	got, err := RenderChangelog(t.Context(), types.JobIdentity{}, classification, source)
	require.Error(t, err)
	assert.Empty(t, got)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Equal(t, []string{"grml-a v1"}, source.calls)
}

func TestRenderChangelogCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	classification := types.Classification{
		TrackedChanges: []types.TrackedChange{{Package: "grml-a", NewVersion: "1"}},
	}
	source := &fakeSource{}
	_, err := RenderChangelog(ctx, types.JobIdentity{}, classification, source)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, source.calls)
}
