package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phillip-england/ponto/internal/timesheet"
)

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleSummaries(), fullConfig()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRenderPDFFitsPageWidth(t *testing.T) {
	summaries := sampleSummaries()
	summaries[0].Name = strings.Repeat("Maria da Conceição ", 8)

	pdf := renderPDF(summaries, fullConfig())
	require.NoError(t, pdf.Error())

	r := &pdfRenderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), layout: KindFull.Layout()}
	widths := r.columnWidths(summaries)
	total := 0.0
	for _, w := range widths {
		total += w
	}
	pageWidth, _ := pdf.GetPageSize()
	assert.InDelta(t, pageWidth-2*pdfMargin, total, 0.001)
}

func TestRenderPDFPaginates(t *testing.T) {
	var summaries []timesheet.Summary
	for i := 0; i < 120; i++ {
		summaries = append(summaries, timesheet.Summary{
			PersonID: fmt.Sprint(i),
			Name:     fmt.Sprintf("Colaborador %d", i),
			Date:     time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
		})
	}

	pdf := renderPDF(summaries, fullConfig())
	require.NoError(t, pdf.Error())
	assert.Greater(t, pdf.PageCount(), 1)
}
