package report_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alejandrodnm/campsim/internal/adapters/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestChart_Report_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")

	err := report.NewChart(path).Report(context.Background(), defaultResults())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic), "el archivo debe ser un PNG")
	assert.Greater(t, len(data), len(pngMagic))
}

func TestChart_Report_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")

	err := report.NewChart(path).Report(context.Background(), nil)
	assert.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no debe crear archivo sin resultados")
}

func TestChart_Report_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "chart.png")

	err := report.NewChart(path).Report(context.Background(), defaultResults())
	assert.Error(t, err)
}
