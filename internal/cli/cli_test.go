// internal/cli/cli_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Temp directories, fake paginator
// PURPOSE: Test the render, preview, genconfig and version commands end to end

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanlgirgis/folio/pkg/build"
	"github.com/seanlgirgis/folio/pkg/errors"
	"github.com/seanlgirgis/folio/pkg/render/pdf"
)

type fakePaginator struct{ err error }

func (f fakePaginator) Paginate(_ context.Context, _ []byte, _ pdf.Options, out string) error {
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(out, []byte("%PDF"), 0644)
}

const project = `targets:
  resume:
    docx: resume.yaml
    pdf: resume.yaml
    web: resume.yaml
`

const layout = `- type: header_block
  config:
    title: Jane Doe
    subtitle: Platform Engineer
- type: section_title_block
  config:
    title: Summary
`

func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "folio.yaml"), []byte(project), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resume.yaml"), []byte(layout), 0644))
	return dir
}

func execute(t *testing.T, p pdf.Paginator, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(build.WithPaginator(p))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCmd(t *testing.T) {
	dir := setupProject(t)

	out, err := execute(t, fakePaginator{}, "-C", dir, "render", "-o", "json")
	require.NoError(t, err)

	var result struct {
		Targets []struct {
			Name    string `json:"name"`
			Status  string `json:"status"`
			Results []struct {
				Format string `json:"format"`
				Status string `json:"status"`
			} `json:"results"`
		} `json:"targets"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Targets, 1)
	assert.Equal(t, "success", result.Targets[0].Status)
	assert.Len(t, result.Targets[0].Results, 4)

	for _, name := range []string{"output/resume.docx", "output/resume.md", "output/resume.pdf", "output/components/resume.html"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestRenderCmd_Selection(t *testing.T) {
	dir := setupProject(t)

	out, err := execute(t, fakePaginator{}, "-C", dir, "render",
		"--target", "all", "--format", "md", "--output-dir", "dist", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "resume: success (1 written, 0 skipped, 0 failed)")
	assert.FileExists(t, filepath.Join(dir, "dist/resume.md"))
	assert.NoFileExists(t, filepath.Join(dir, "dist/resume.docx"))
}

func TestRenderCmd_Failures(t *testing.T) {
	t.Run("failed output exits with error", func(t *testing.T) {
		dir := setupProject(t)
		out, err := execute(t, fakePaginator{err: errors.New(errors.ErrPaginatorFailed, "boom")},
			"-C", dir, "render", "-o", "text")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
		assert.Contains(t, out, "resume: partial")
		assert.FileExists(t, filepath.Join(dir, "output/resume.docx"))
	})

	t.Run("unknown target", func(t *testing.T) {
		dir := setupProject(t)
		_, err := execute(t, fakePaginator{}, "-C", dir, "render", "--target", "cv")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("no project", func(t *testing.T) {
		_, err := execute(t, fakePaginator{}, "-C", t.TempDir(), "render")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("bad output format", func(t *testing.T) {
		dir := setupProject(t)
		_, err := execute(t, fakePaginator{}, "-C", dir, "render", "-o", "yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})
}

func TestPreviewCmd(t *testing.T) {
	t.Run("inside a project", func(t *testing.T) {
		dir := setupProject(t)
		out, err := execute(t, fakePaginator{}, "-C", dir, "preview", "resume.yaml", "--width", "60")
		require.NoError(t, err)
		assert.Contains(t, out, "Jane Doe")
		assert.Contains(t, out, "Summary")
		assert.NotContains(t, out, "\x1b[", "buffers get plain output")
	})

	t.Run("markdown outside a project", func(t *testing.T) {
		dir := setupProject(t)
		require.NoError(t, os.Remove(filepath.Join(dir, "folio.yaml")))
		out, err := execute(t, fakePaginator{}, "-C", dir, "preview", filepath.Join(dir, "resume.yaml"), "--markdown")
		require.NoError(t, err)
		assert.Contains(t, out, "Jane Doe")
	})

	t.Run("missing layout", func(t *testing.T) {
		_, err := execute(t, fakePaginator{}, "-C", t.TempDir(), "preview", "nope.yaml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})
}

func TestGenConfigCmd(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, fakePaginator{}, "genconfig", dir, "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+filepath.Join(dir, "folio.yaml"))
	assert.FileExists(t, filepath.Join(dir, "style.yaml"))

	_, err = execute(t, fakePaginator{}, "genconfig", dir)
	require.Error(t, err, "existing files are kept")

	_, err = execute(t, fakePaginator{}, "genconfig", dir, "--force", "--style-format", "toml")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "style.toml"))

	out, err = execute(t, fakePaginator{}, "genconfig", "--stdout")
	require.NoError(t, err)
	assert.Contains(t, out, "targets:")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, fakePaginator{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "folio version dev")
}

func TestCompletionCmd(t *testing.T) {
	out, err := execute(t, fakePaginator{}, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "folio")
}
