package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"commitgate/internal/domain"
	"commitgate/internal/export"
)

func sampleRuns() []domain.ValidationRun {
	created := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	return []domain.ValidationRun{
		{
			ID:           uuid.MustParse("11111111-2222-3333-4444-555555555555"),
			Project:      "platform/core",
			Branch:       "main",
			CommitSHA:    "deadbeef",
			Template:     "standard",
			Accepted:     false,
			FailureCount: 2,
			Report:       "rejection text",
			DurationMS:   12,
			CreatedAt:    created,
		},
		{
			ID:        uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"),
			Project:   "tools/ci",
			Branch:    "release",
			CommitSHA: "cafebabe",
			Template:  "release",
			Accepted:  true,
			CreatedAt: created,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	w := export.NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRuns(sampleRuns()))
	require.NoError(t, w.Flush())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Run ID", records[0][0])
	assert.Equal(t, "Report", records[0][9])

	assert.Equal(t, "11111111-2222-3333-4444-555555555555", records[1][0])
	assert.Equal(t, "platform/core", records[1][1])
	assert.Equal(t, "false", records[1][5])
	assert.Equal(t, "2", records[1][6])
	assert.Equal(t, "2026-03-14 09:26:53", records[1][8])
	assert.Equal(t, "rejection text", records[1][9])

	assert.Equal(t, "true", records[2][5])
	assert.Equal(t, "0", records[2][6])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, sampleRuns()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Validation Runs")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Run ID", rows[0][0])
	assert.Equal(t, "platform/core", rows[1][1])
	assert.Equal(t, "cafebabe", rows[2][3])
}
