package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badele/readability/internal/config"
	"github.com/badele/readability/internal/types"
)

// emptyConfig keeps tests independent of any .readability.yml above the
// working directory.
func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".readability.yml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))
	return path
}

func runCLI(t *testing.T, stdin string, pipe bool, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), pipe, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunSampleText(t *testing.T) {
	code, out, _ := runCLI(t, "", false, "--config", emptyConfig(t), "--sample")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Text Analysis Results:")
	assert.Contains(t, out, "Sentence Count: 4\n")
	assert.Contains(t, out, "Readability Scores:")
}

func TestRunFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cat.txt")
	require.NoError(t, os.WriteFile(path, []byte("The cat sat on the mat."), 0o644))

	code, out, errOut := runCLI(t, "", false, "--config", emptyConfig(t), "-j", path)
	require.Equal(t, 0, code, errOut)

	var res types.SourceMetrics
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, path, res.Source)
	assert.Equal(t, 6, res.Metrics.WordCount)
	assert.Equal(t, 1, res.Metrics.SentenceCount)
}

func TestRunMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	code, out, errOut := runCLI(t, "", false, "--config", emptyConfig(t), missing)

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "file not found")
}

func TestRunStdin(t *testing.T) {
	code, out, _ := runCLI(t, "Hello world. How are you?", true, "--config", emptyConfig(t), "--table")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "stdin")
	assert.Contains(t, out, "Sentence Count")
}

func TestRunNoInputPrintsUsage(t *testing.T) {
	code, out, _ := runCLI(t, "", false, "--config", emptyConfig(t))

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Usage: readability")
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(doc, []byte("# Title\n\nThe **cat** sat.\n"), 0o644))

	cfgPath := filepath.Join(dir, ".readability.yml")
	cfg := "markdown: true\nformat: json\ninclude:\n  - " + filepath.Join(dir, "*.md") + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	code, out, errOut := runCLI(t, "", false, "--config", cfgPath)
	require.Equal(t, 0, code, errOut)

	var res types.SourceMetrics
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 4, res.Metrics.WordCount)
}

func TestRunInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), ".readability.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: html\n"), 0o644))

	code, _, errOut := runCLI(t, "", false, "--config", cfgPath, "--sample")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "format must be one of")
}

func TestRunUnsupportedEncodingFlag(t *testing.T) {
	code, _, errOut := runCLI(t, "", false, "--config", emptyConfig(t), "-e", "ebcdic", "--sample")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unsupported encoding")
}

func TestRunCorrectedSyllables(t *testing.T) {
	_, literal, _ := runCLI(t, "beautiful", true, "--config", emptyConfig(t), "-j")
	_, corrected, _ := runCLI(t, "beautiful", true, "--config", emptyConfig(t), "-j", "--corrected-syllables")

	var l, c types.SourceMetrics
	require.NoError(t, json.Unmarshal([]byte(literal), &l))
	require.NoError(t, json.Unmarshal([]byte(corrected), &c))
	assert.Equal(t, 2, l.Metrics.SyllableCount)
	assert.Equal(t, 3, c.Metrics.SyllableCount)
}

func TestApplyFlagsPrecedence(t *testing.T) {
	cfg := config.Defaults()
	applyFlags(&CLI{Panel: true, Width: 90, Encoding: "cp437"}, cfg)

	assert.Equal(t, "panel", cfg.Format)
	assert.Equal(t, 90, cfg.Panel.Width)
	assert.Equal(t, "cp437", cfg.Encoding)
	assert.Equal(t, "literal", cfg.Syllables)
}
