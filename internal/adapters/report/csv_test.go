package report_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alejandrodnm/campsim/internal/adapters/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVFile_Report_Schema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	err := report.NewCSVFile(path).Report(context.Background(), defaultResults())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5, "header + 4 escenarios")
	assert.Equal(t, "Scenario,Budget,Days,Views,Clicks,Conversions,Revenue,Profit,ROI", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Small,100,5,"))
}

func TestCSVFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	written := defaultResults()

	err := report.NewCSVFile(path).Report(context.Background(), written)
	require.NoError(t, err)

	read, err := report.ReadResults(path)
	require.NoError(t, err)
	require.Len(t, read, len(written))

	for i, w := range written {
		r := read[i]
		assert.Equal(t, w.Scenario.Name, r.Scenario.Name)
		assert.Equal(t, w.Scenario.Days, r.Scenario.Days)
		assert.InDelta(t, w.Scenario.Budget, r.Scenario.Budget, 1e-9)
		assert.InDelta(t, w.Views, r.Views, 1e-9)
		assert.InDelta(t, w.Clicks, r.Clicks, 1e-9)
		assert.InDelta(t, w.Conversions, r.Conversions, 1e-9)
		assert.InDelta(t, w.Revenue, r.Revenue, 1e-9)
		assert.InDelta(t, w.Profit, r.Profit, 1e-9)
		assert.InDelta(t, w.ROI, r.ROI, 1e-9)
	}
}

func TestCSVFile_Report_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "results.csv")

	err := report.NewCSVFile(path).Report(context.Background(), defaultResults())
	assert.Error(t, err)
}

func TestReadResults_MissingFile(t *testing.T) {
	_, err := report.ReadResults(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestReadResults_UnexpectedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0o644))

	_, err := report.ReadResults(path)
	assert.Error(t, err)
}

func TestReadResults_BadNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	content := "Scenario,Budget,Days,Views,Clicks,Conversions,Revenue,Profit,ROI\n" +
		"Small,oops,5,1,1,1,1,1,1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := report.ReadResults(path)
	assert.Error(t, err)
}
