package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atikulmunna/logclean/internal/model"
)

const sampleSummaryJSON = `{
  "total_lines": 6,
  "valid_lines": 4,
  "invalid_lines": 2,
  "levels": {
    "INFO": 1,
    "WARN": 1,
    "ERROR": 2
  },
  "top_services": [
    {
      "service": "auth",
      "count": 3
    },
    {
      "service": "billing",
      "count": 1
    }
  ],
  "top_errors": [
    {
      "message": "token expired",
      "count": 2
    }
  ]
}
`

func TestEncodeSummaryKeyOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeSummary(&buf, sampleSummary()))
	assert.Equal(t, sampleSummaryJSON, buf.String())
}

func TestEncodeSummaryEmptyRankings(t *testing.T) {
	var buf bytes.Buffer
	sum := model.Summary{TopServices: []model.ServiceCount{}, TopErrors: []model.ErrorCount{}}
	require.NoError(t, EncodeSummary(&buf, sum))

	assert.Contains(t, buf.String(), `"top_services": []`)
	assert.Contains(t, buf.String(), `"top_errors": []`)
	assert.Contains(t, buf.String(), `"ERROR": 0`)
}

func TestEncodeSummaryNoHTMLEscaping(t *testing.T) {
	var buf bytes.Buffer
	sum := model.Summary{
		TopServices: []model.ServiceCount{},
		TopErrors:   []model.ErrorCount{{Message: "a < b && c > d", Count: 1}},
	}
	require.NoError(t, EncodeSummary(&buf, sum))
	assert.Contains(t, buf.String(), `"a < b && c > d"`)
}

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")

	require.NoError(t, WriteSummary(path, sampleSummary()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleSummaryJSON, string(raw))
}

func TestWriteCleanLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clean_logs.txt")

	lines := []string{
		"2024-01-01T00:00:00 | INFO | auth | login ok",
		"2024-01-01T00:00:01 | ERROR | auth | token expired",
	}
	require.NoError(t, WriteCleanLines(path, lines))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n", string(raw))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteCleanLinesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean_logs.txt")

	require.NoError(t, WriteCleanLines(path, nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestWriteCleanLinesOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean_logs.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0644))

	require.NoError(t, WriteCleanLines(path, []string{"t | WARN | svc | msg"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "t | WARN | svc | msg\n", string(raw))
}

func TestWriteFailsForMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "summary.json")
	assert.Error(t, WriteSummary(path, sampleSummary()))
}
