package report

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.paramcheck/pkg/runner"
)

func TestSave_WritesReportsAndHistory(t *testing.T) {
	cfg := runner.DefaultConfig()
	cfg.ReportDir = filepath.Join(t.TempDir(), "out")
	s := makeTestSummary()

	paths, err := Save(cfg, s)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t,
		filepath.Join(cfg.ReportDir, "paramcheck-"+s.RunID+".json"),
		paths[0],
	)
	assert.Equal(t,
		filepath.Join(cfg.ReportDir, "paramcheck-"+s.RunID+".md"),
		paths[1],
	)
	for _, p := range paths {
		assert.FileExists(t, p)
	}

	f, err := os.Open(filepath.Join(cfg.ReportDir, HistoryFile))
	require.NoError(t, err)
	defer f.Close()
	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())
	var e HistoricalEntry
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
	assert.Equal(t, s.RunID, e.RunID)
	assert.Equal(t, paths[0], e.ReportPath)
}

func TestSave_EmptyReportDir(t *testing.T) {
	cfg := runner.DefaultConfig()
	cfg.ReportDir = ""

	paths, err := Save(cfg, makeTestSummary())
	assert.NoError(t, err)
	assert.Nil(t, paths)

	paths, err = Save(nil, makeTestSummary())
	assert.NoError(t, err)
	assert.Nil(t, paths)
}

func TestSave_UnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	cfg := runner.DefaultConfig()
	cfg.ReportDir = filepath.Join(file, "reports")
	_, err := Save(cfg, makeTestSummary())
	assert.Error(t, err)
}
