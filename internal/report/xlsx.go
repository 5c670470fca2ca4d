package report

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/phillip-england/ponto/internal/timesheet"
)

const (
	bodyFontSize  = 8
	titleFontSize = 11
	columnPadding = 2
	paperA4       = 9
	secondsPerDay = 24 * 60 * 60
)

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

type sheetStyles struct {
	base   int
	header int
	title  int
	label  int
	bands  map[Band]int
	// formats holds the bordered body style carrying each number format.
	formats map[string]int
}

type xlsxRenderer struct {
	file   *excelize.File
	sheet  string
	cfg    Config
	layout Layout
	styles sheetStyles
}

// Render lays summaries out on a single worksheet. The caller owns the
// returned file and must Close it.
func Render(summaries []timesheet.Summary, cfg Config) (*excelize.File, error) {
	r, err := newXLSXRenderer(cfg)
	if err != nil {
		return nil, err
	}
	if err := r.render(summaries); err != nil {
		_ = r.file.Close()
		return nil, err
	}
	return r.file, nil
}

func newXLSXRenderer(cfg Config) (*xlsxRenderer, error) {
	cfg = cfg.withDefaults()
	f := excelize.NewFile()
	r := &xlsxRenderer{file: f, sheet: cfg.SheetName, cfg: cfg, layout: cfg.Kind.Layout()}

	if err := f.SetSheetName(f.GetSheetName(0), r.sheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("name worksheet: %w", err)
	}
	styles, err := r.newStyles()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create styles: %w", err)
	}
	r.styles = styles
	return r, nil
}

func (r *xlsxRenderer) newStyles() (sheetStyles, error) {
	styles := sheetStyles{bands: map[Band]int{}, formats: map[string]int{}}
	var err error
	if styles.base, err = r.newStyle(false, bodyFontSize, "", ""); err != nil {
		return styles, err
	}
	if styles.header, err = r.newStyle(true, bodyFontSize, "", ""); err != nil {
		return styles, err
	}
	if styles.label, err = r.newStyle(true, bodyFontSize, "", ""); err != nil {
		return styles, err
	}
	if styles.title, err = r.newStyle(true, titleFontSize, "", ""); err != nil {
		return styles, err
	}
	for band, color := range bandColors {
		id, err := r.newStyle(false, bodyFontSize, color.hex, "")
		if err != nil {
			return styles, err
		}
		styles.bands[band] = id
	}
	for _, column := range r.layout.Columns {
		format := column.Field.numFmt()
		if format == "" || styles.formats[format] != 0 {
			continue
		}
		id, err := r.newStyle(false, bodyFontSize, "", format)
		if err != nil {
			return styles, err
		}
		styles.formats[format] = id
	}
	return styles, nil
}

func (r *xlsxRenderer) newStyle(bold bool, size float64, fill, numFmt string) (int, error) {
	style := &excelize.Style{
		Border:    thinBorder,
		Font:      &excelize.Font{Bold: bold, Size: size},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}
	if fill != "" {
		style.Fill = excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1}
	}
	if numFmt != "" {
		style.CustomNumFmt = &numFmt
	}
	return r.file.NewStyle(style)
}

func (r *xlsxRenderer) render(summaries []timesheet.Summary) error {
	lastCol := len(r.layout.Columns)
	lastRow := headerRow + len(summaries)

	if err := r.writeTable(summaries); err != nil {
		return err
	}
	if err := r.file.SetCellStyle(r.sheet, cellName(1, titleRow), cellName(lastCol, lastRow), r.styles.base); err != nil {
		return err
	}
	if err := r.file.SetCellStyle(r.sheet, cellName(1, headerRow), cellName(lastCol, headerRow), r.styles.header); err != nil {
		return err
	}
	if err := r.formatColumns(lastRow); err != nil {
		return err
	}
	if err := r.colorDeltas(summaries); err != nil {
		return err
	}
	if err := r.clearUnusedColumns(lastRow); err != nil {
		return err
	}
	if err := r.fitColumns(summaries); err != nil {
		return err
	}
	if err := r.writeTitle(lastCol); err != nil {
		return err
	}
	if err := r.writeMetadata(); err != nil {
		return err
	}
	return r.setupPrint()
}

func (r *xlsxRenderer) writeTable(summaries []timesheet.Summary) error {
	headers := make([]any, 0, len(r.layout.Columns))
	for _, header := range r.layout.Headers() {
		headers = append(headers, header)
	}
	if err := r.file.SetSheetRow(r.sheet, cellName(1, headerRow), &headers); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for i, summary := range summaries {
		row := firstDataRow + i
		for col, value := range r.layout.Row(summary) {
			if err := r.writeCell(cellName(col+1, row), value); err != nil {
				return fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}
	return nil
}

// writeCell stores clock values as the fraction of a day Excel uses for times.
func (r *xlsxRenderer) writeCell(cell string, value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Duration:
		return r.file.SetCellFloat(r.sheet, cell, v.Seconds()/secondsPerDay, -1, 64)
	default:
		return r.file.SetCellValue(r.sheet, cell, v)
	}
}

// formatColumns gives date and clock columns their number format.
func (r *xlsxRenderer) formatColumns(lastRow int) error {
	if lastRow < firstDataRow {
		return nil
	}
	for i, column := range r.layout.Columns {
		style, ok := r.styles.formats[column.Field.numFmt()]
		if !ok {
			continue
		}
		if err := r.file.SetCellStyle(r.sheet, cellName(i+1, firstDataRow), cellName(i+1, lastRow), style); err != nil {
			return err
		}
	}
	return nil
}

func (r *xlsxRenderer) colorDeltas(summaries []timesheet.Summary) error {
	col := r.layout.Index(FieldDelta)
	if col == 0 {
		return nil
	}
	for i, summary := range summaries {
		if summary.DeltaMinutes == nil {
			continue
		}
		band := Classify(*summary.DeltaMinutes, r.cfg.TargetMinutes, r.cfg.ToleranceMinutes)
		style, ok := r.styles.bands[band]
		if !ok {
			continue
		}
		cell := cellName(col, firstDataRow+i)
		if err := r.file.SetCellStyle(r.sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

// clearUnusedColumns resets the Full-only columns of a Simple report to the
// default, borderless style.
func (r *xlsxRenderer) clearUnusedColumns(lastRow int) error {
	used := len(r.layout.Columns)
	full := len(fullLayout.Columns)
	if used >= full {
		return nil
	}
	return r.file.SetCellStyle(r.sheet, cellName(used+1, titleRow), cellName(full, lastRow), 0)
}

// fitColumns sizes each column to its longest header or data value, counted
// in characters.
func (r *xlsxRenderer) fitColumns(summaries []timesheet.Summary) error {
	widths := columnWidths(r.layout, summaries)
	for i, width := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := r.file.SetColWidth(r.sheet, name, name, float64(width+columnPadding)); err != nil {
			return err
		}
	}
	return nil
}

func columnWidths(layout Layout, summaries []timesheet.Summary) []int {
	widths := make([]int, len(layout.Columns))
	for i, header := range layout.Headers() {
		widths[i] = utf8.RuneCountInString(header)
	}
	for _, summary := range summaries {
		for i, value := range layout.Row(summary) {
			if n := utf8.RuneCountInString(Text(value)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func (r *xlsxRenderer) writeTitle(lastCol int) error {
	start, end := cellName(1, titleRow), cellName(lastCol, titleRow)
	if err := r.file.SetCellValue(r.sheet, start, r.cfg.Title); err != nil {
		return err
	}
	if err := r.file.SetCellStyle(r.sheet, start, end, r.styles.title); err != nil {
		return err
	}
	return r.file.MergeCell(r.sheet, start, end)
}

func (r *xlsxRenderer) writeMetadata() error {
	for i, band := range metadataBands(r.cfg) {
		row := metaRow + i
		for _, meta := range band {
			start := cellName(meta.Col, row)
			if meta.Value != nil {
				if err := r.file.SetCellValue(r.sheet, start, meta.Value); err != nil {
					return err
				}
			}
			if meta.Label {
				if err := r.file.SetCellStyle(r.sheet, start, start, r.styles.label); err != nil {
					return err
				}
			}
			if meta.Span > 1 {
				if err := r.file.MergeCell(r.sheet, start, cellName(meta.Col+meta.Span-1, row)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (r *xlsxRenderer) setupPrint() error {
	size := paperA4
	orientation := "portrait"
	fitToWidth := 1
	fitToHeight := 0
	if err := r.file.SetPageLayout(r.sheet, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
		FitToWidth:  &fitToWidth,
		FitToHeight: &fitToHeight,
	}); err != nil {
		return fmt.Errorf("page layout: %w", err)
	}

	fitToPage := true
	if err := r.file.SetSheetProps(r.sheet, &excelize.SheetPropsOptions{FitToPage: &fitToPage}); err != nil {
		return fmt.Errorf("sheet properties: %w", err)
	}

	return r.file.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Titles",
		RefersTo: fmt.Sprintf("'%s'!$%d:$%d", r.sheet, headerRow, headerRow),
		Scope:    r.sheet,
	})
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
