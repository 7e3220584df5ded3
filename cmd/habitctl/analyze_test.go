package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/habitd/internal/habit"
)

func TestLoadExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	blob := `{
	  "tracker_id": "tracker-1",
	  "records": [
	    {"date": "2026-06-01T00:00:00Z", "tracker_id": "tracker-1", "status": "done", "category": "Health"}
	  ],
	  "notes": [
	    {"date": "2026-06-01T00:00:00Z", "tracker_id": "tracker-1", "content": "great start"}
	  ]
	}`
	require.NoError(t, os.WriteFile(path, []byte(blob), 0o600))

	export, err := loadExport(path)
	require.NoError(t, err)
	assert.Equal(t, "tracker-1", export.TrackerID)
	require.Len(t, export.Records, 1)
	assert.Equal(t, habit.StatusDone, export.Records[0].Status)
	require.Len(t, export.Notes, 1)
}

func TestLoadExportErrors(t *testing.T) {
	_, err := loadExport("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--data is required")

	_, err = loadExport(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = loadExport(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse export")
}

func TestAnalysisWindow(t *testing.T) {
	day := func(n int) time.Time {
		return time.Date(2026, 6, n, 0, 0, 0, 0, time.UTC)
	}
	export := &habit.Export{
		Records: []habit.TaskCompletionRecord{
			{Date: day(3)},
			{Date: day(10)},
			{Date: day(7)},
		},
	}

	from, to := analysisWindow(export, 7)
	assert.Equal(t, day(10), to, "window ends at the newest record")
	assert.Equal(t, day(4), from)

	from, to = analysisWindow(export, 0)
	assert.True(t, from.IsZero())
	assert.True(t, to.IsZero())

	from, to = analysisWindow(&habit.Export{}, 7)
	assert.True(t, from.IsZero())
	assert.True(t, to.IsZero())
}
