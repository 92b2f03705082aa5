package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdspan/internal/cli"
	"github.com/yaklabco/mdspan/pkg/config"
	"github.com/yaklabco/mdspan/pkg/reporter"
)

const sampleMarkdown = "# Title\n\nSee [docs](https://example.com) and **bold**.\n\n- one\n- two\n"

// execute runs the root command against an isolated config file.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), ".mdspan.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("color: never\n"), 0o644))

	cmd := cli.NewRootCommand(testInfo())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--config", cfgFile))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeMarkdown(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIntegration_RenderText(t *testing.T) {
	t.Parallel()

	path := writeMarkdown(t, t.TempDir(), "doc.md", sampleMarkdown)

	stdout, _, err := execute(t, "", "render", path, "--width", "-1")
	require.NoError(t, err)
	assert.Equal(t, "Title\nSee docs and bold.\n• one\n• two\n", stdout)
}

func TestIntegration_RenderStdin(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "*hi* there", "render", "-", "--width", "-1")
	require.NoError(t, err)
	assert.Equal(t, "hi there\n", stdout)
}

func TestIntegration_RenderStdinWithOtherPaths(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "render", "-", "other.md")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestIntegration_RenderRanges(t *testing.T) {
	t.Parallel()

	path := writeMarkdown(t, t.TempDir(), "doc.md", sampleMarkdown)

	stdout, _, err := execute(t, "", "render", path, "--format", "ranges")
	require.NoError(t, err)
	for _, want := range []string{"heading", "link", "https://example.com", "strong", "list_prefix"} {
		assert.Contains(t, stdout, want)
	}
}

func TestIntegration_RenderJSONDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeMarkdown(t, dir, "b.md", "second")
	writeMarkdown(t, dir, "a.md", sampleMarkdown)
	writeMarkdown(t, dir, "skip.md", "ignored")

	stdout, stderr, err := execute(t, "", "render", dir, "--format", "json", "--ignore", "skip.md", "--jobs", "2", "--summary")
	require.NoError(t, err)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out.Files, 2)
	assert.Equal(t, "a.md", filepath.Base(out.Files[0].Path))
	assert.Equal(t, "second", out.Files[1].Text)
	assert.Equal(t, 1, out.Summary.Links)
	assert.Contains(t, stderr, "2 files rendered")
}

func TestIntegration_RenderInvalidFormat(t *testing.T) {
	t.Parallel()

	path := writeMarkdown(t, t.TempDir(), "doc.md", "x")

	_, _, err := execute(t, "", "render", path, "--format", "sarif")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestIntegration_RenderMissingPath(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "render", filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
}

func TestIntegration_Export(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeMarkdown(t, dir, "doc.md", "```\npackage main\n```\n")
	outPath := filepath.Join(dir, "doc.json")

	_, stderr, err := execute(t, "", "export", path, "-o", outPath, "--detect-language")
	require.NoError(t, err)
	assert.Contains(t, stderr, "exported")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var file reporter.JSONFile
	require.NoError(t, json.Unmarshal(data, &file))
	assert.Equal(t, "package main", file.Text)

	var languages []string
	for _, r := range file.Ranges {
		if r.Language != "" {
			languages = append(languages, r.Language)
		}
	}
	assert.Equal(t, []string{"go"}, languages)
}

func TestIntegration_ExportStdout(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "[a](b)", "export", "-", "--compact")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"links":[{"kind":"link","uri":"b","start":0,"end":1}]`)
}

func TestIntegration_ExportMissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "export", filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), ".mdspan.yml")

	_, _, err := execute(t, "", "init", "--output", out, "--full")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, config.ColorAuto, cfg.Color)

	_, _, err = execute(t, "", "init", "--output", out)
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))

	_, _, err = execute(t, "", "init", "--output", out, "--force")
	require.NoError(t, err)
}

func TestIntegration_Config(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# loaded from ")
	assert.Contains(t, stdout, "color: never")

	stdout, _, err = execute(t, "", "config", "--env")
	require.NoError(t, err)
	assert.Contains(t, stdout, "MDSPAN_BASE_COLOR")
	assert.Contains(t, stdout, "MDSPAN_JOBS")
}

func TestIntegration_Version(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "test-version")
	assert.Contains(t, stdout, "test-commit")
}

func TestIntegration_Help(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "render", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage:")
	assert.Contains(t, stdout, "--format")
	assert.Contains(t, stdout, "Global Flags:")
}
