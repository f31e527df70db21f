package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `[2026-01-06 10:22:50.306] [info] [Global]  tid: 17916, start: 0x7ff93b051b70
[2026-01-06 10:29:09.814] [info] [ModelServer]  generateAllGltfModel called
[2026-01-06 10:29:10.765] [info] [Global]  cpu usage: 5.83%, memory usage: 0.35%
[2026-01-06 10:29:10.765] [error] [Global]  exception callback: ERRCODE_MSOPTIMEOUT
[2026-01-06 10:29:10.792] [info] [Global]  pid: 12992, total threads: 59
`

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheckFileCountsKeywordLines(t *testing.T) {
	path := writeSample(t, "sample.log", sampleLog)

	res, err := CheckFile(path, DefaultFilters)
	require.NoError(t, err)
	assert.Equal(t, path, res.Path)
	assert.Equal(t, 3, res.Matches)

	// the file must not be modified
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleLog, string(data))
}

func TestCheckFileMissingFile(t *testing.T) {
	_, err := CheckFile(filepath.Join(t.TempDir(), "nope.log"), DefaultFilters)
	assert.Error(t, err)
}

func TestFilterFileRemovesMatchingLines(t *testing.T) {
	path := writeSample(t, "sample.log", sampleLog)

	res, err := FilterFile(path, DefaultFilters, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "sample_filtered.log"), res.OutputPath)
	assert.Equal(t, 2, res.Kept)
	assert.Equal(t, 3, res.Removed)

	data, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	want := "[2026-01-06 10:29:09.814] [info] [ModelServer]  generateAllGltfModel called\n" +
		"[2026-01-06 10:29:10.765] [error] [Global]  exception callback: ERRCODE_MSOPTIMEOUT\n"
	assert.Equal(t, want, string(data))
}

func TestFilterFileKeepAndRemoveArePartition(t *testing.T) {
	path := writeSample(t, "sample.log", sampleLog)

	removed, err := FilterFile(path, DefaultFilters, false)
	require.NoError(t, err)

	// rerun in keep mode over the same input
	kept, err := FilterFile(path, DefaultFilters, true)
	require.NoError(t, err)

	assert.Equal(t, 5, removed.Kept+kept.Kept, "every line lands on exactly one side")
	assert.Equal(t, removed.Kept, kept.Removed)
	assert.Equal(t, removed.Removed, kept.Kept)
}

func TestFilterFileAddsTrailingNewline(t *testing.T) {
	// input without a trailing newline still gets one per written line
	path := writeSample(t, "nonewline.log", "keep me\ntid: 1")

	res, err := FilterFile(path, DefaultFilters, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Kept)

	data, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, "keep me\n", string(data))
}

func TestFilterFileEmptyInput(t *testing.T) {
	path := writeSample(t, "empty.log", "")

	res, err := FilterFile(path, DefaultFilters, false)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Kept)
	assert.Equal(t, 0, res.Removed)

	data, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFilterFileNoExtension(t *testing.T) {
	path := writeSample(t, "b", "tid: 1\nplain\n")

	res, err := FilterFile(path, DefaultFilters, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "b_filtered"), res.OutputPath)
}

func TestFilterFileEmptyKeywordSetKeepsEverything(t *testing.T) {
	path := writeSample(t, "sample.log", sampleLog)

	res, err := FilterFile(path, nil, false)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Kept)
	assert.Equal(t, 0, res.Removed)
}

func TestSplitLinesHandlesCRLF(t *testing.T) {
	path := writeSample(t, "crlf.log", "tid: 1\r\nplain\r\n")

	res, err := FilterFile(path, DefaultFilters, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Kept)
	assert.Equal(t, 1, res.Removed)
}
