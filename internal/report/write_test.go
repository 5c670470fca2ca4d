package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		base, name, want string
	}{
		{base: "out/relatorio.xlsx", name: "Ana Silva", want: "out/relatorio_Ana Silva_report.xlsx"},
		{base: "relatorio.pdf", name: "Rui", want: "relatorio_Rui_report.pdf"},
		{base: "relatorio", name: "Rui", want: "relatorio_Rui_report"},
		{base: "relatorio.xlsx", name: "A/B", want: "relatorio_A_B_report.xlsx"},
		{base: "relatorio.xlsx", name: `Ana: "R" <x>?*|`, want: "relatorio_Ana_ _R_ _x_____report.xlsx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitPath(tt.base, tt.name))
	}
}

func TestSplitPathsDisambiguatesCollisions(t *testing.T) {
	paths := SplitPaths("out/r.xlsx", []string{"Ana/Rui", "Ana_Rui", "ana_rui", "Zé"})

	assert.Equal(t, []string{
		"out/r_Ana_Rui_report.xlsx",
		"out/r_Ana_Rui_2_report.xlsx",
		"out/r_ana_rui_3_report.xlsx",
		"out/r_Zé_report.xlsx",
	}, paths)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatPDF, FormatFor("report.PDF"))
	assert.Equal(t, FormatXLSX, FormatFor("report.xlsx"))
	assert.Equal(t, FormatXLSX, FormatFor("report"))
}

func TestWriteFileXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relatorio.xlsx")
	require.NoError(t, WriteFile(path, sampleSummaries(), fullConfig()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	value, err := f.GetCellValue(DefaultSheetName, "B5")
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", value)
}

func TestWriteFilePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relatorio.pdf")
	require.NoError(t, WriteFile(path, sampleSummaries(), fullConfig()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "relatorio.xlsx")
	assert.Error(t, WriteFile(path, sampleSummaries(), fullConfig()))
}
