package report

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/phillip-england/ponto/internal/timesheet"
)

const (
	pdfMargin      = 10.0
	pdfRowHeight   = 5.0
	pdfTitleHeight = 7.0
	pdfCellPadding = 1.5
	pdfFont        = "Helvetica"
)

type pdfRenderer struct {
	pdf       *gofpdf.Fpdf
	tr        func(string) string
	cfg       Config
	layout    Layout
	widths    []float64
	pageLimit float64
}

// WritePDF renders the print-oriented version of the report: A4 portrait,
// scaled to the page width, with the header row repeated on every page.
func WritePDF(w io.Writer, summaries []timesheet.Summary, cfg Config) error {
	pdf := renderPDF(summaries, cfg)
	return pdf.Output(w)
}

func renderPDF(summaries []timesheet.Summary, cfg Config) *gofpdf.Fpdf {
	cfg = cfg.withDefaults()
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.SetCreationDate(cfg.GeneratedAt)
	pdf.SetTitle(cfg.Title, true)

	_, pageHeight := pdf.GetPageSize()
	r := &pdfRenderer{
		pdf:       pdf,
		tr:        pdf.UnicodeTranslatorFromDescriptor(""),
		cfg:       cfg,
		layout:    cfg.Kind.Layout(),
		pageLimit: pageHeight - pdfMargin,
	}
	r.widths = r.columnWidths(summaries)

	pdf.AddPage()
	r.drawTitle()
	r.drawMetadata()
	r.drawHeader()
	for _, summary := range summaries {
		if pdf.GetY()+pdfRowHeight > r.pageLimit {
			pdf.AddPage()
			r.drawHeader()
		}
		r.drawRow(summary)
	}
	return pdf
}

// columnWidths measures the longest header or value per column and shrinks
// the table to the printable width when it does not fit.
func (r *pdfRenderer) columnWidths(summaries []timesheet.Summary) []float64 {
	widths := make([]float64, len(r.layout.Columns))
	measure := func(i int, text string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		r.pdf.SetFont(pdfFont, style, bodyFontSize)
		if w := r.pdf.GetStringWidth(r.tr(text)) + 2*pdfCellPadding; w > widths[i] {
			widths[i] = w
		}
	}
	for i, header := range r.layout.Headers() {
		measure(i, header, true)
	}
	for _, summary := range summaries {
		for i, value := range r.layout.Row(summary) {
			measure(i, Text(value), false)
		}
	}

	pageWidth, _ := r.pdf.GetPageSize()
	printable := pageWidth - 2*pdfMargin
	total := 0.0
	for _, w := range widths {
		total += w
	}
	if total > printable {
		scale := printable / total
		for i := range widths {
			widths[i] *= scale
		}
	}
	return widths
}

func (r *pdfRenderer) tableWidth() float64 {
	total := 0.0
	for _, w := range r.widths {
		total += w
	}
	return total
}

func (r *pdfRenderer) drawTitle() {
	r.pdf.SetFont(pdfFont, "B", titleFontSize)
	r.pdf.CellFormat(r.tableWidth(), pdfTitleHeight, r.tr(r.cfg.Title), "1", 1, "C", false, 0, "")
}

func (r *pdfRenderer) drawMetadata() {
	for _, band := range metadataBands(r.cfg) {
		starts := map[int]metaCell{}
		for _, meta := range band {
			starts[meta.Col] = meta
		}
		for col := 1; col <= len(r.widths); {
			meta, ok := starts[col]
			if !ok {
				meta = metaCell{Col: col, Span: 1}
			}
			span := meta.Span
			if span < 1 {
				span = 1
			}
			width := 0.0
			for i := col; i < col+span && i <= len(r.widths); i++ {
				width += r.widths[i-1]
			}
			style := ""
			if meta.Label {
				style = "B"
			}
			r.pdf.SetFont(pdfFont, style, bodyFontSize)
			r.pdf.CellFormat(width, pdfRowHeight, r.tr(Text(meta.Value)), "1", 0, "C", false, 0, "")
			col += span
		}
		r.pdf.Ln(pdfRowHeight)
	}
}

func (r *pdfRenderer) drawHeader() {
	r.pdf.SetFont(pdfFont, "B", bodyFontSize)
	for i, header := range r.layout.Headers() {
		r.pdf.CellFormat(r.widths[i], pdfRowHeight, r.tr(header), "1", 0, "C", false, 0, "")
	}
	r.pdf.Ln(pdfRowHeight)
}

func (r *pdfRenderer) drawRow(summary timesheet.Summary) {
	r.pdf.SetFont(pdfFont, "", bodyFontSize)
	for i, value := range r.layout.Row(summary) {
		fill := false
		if r.layout.Columns[i].Field == FieldDelta && summary.DeltaMinutes != nil {
			band := Classify(*summary.DeltaMinutes, r.cfg.TargetMinutes, r.cfg.ToleranceMinutes)
			if color, ok := bandColors[band]; ok {
				r.pdf.SetFillColor(color.r, color.g, color.b)
				fill = true
			}
		}
		r.pdf.CellFormat(r.widths[i], pdfRowHeight, r.tr(Text(value)), "1", 0, "C", fill, 0, "")
	}
	r.pdf.Ln(pdfRowHeight)
}
