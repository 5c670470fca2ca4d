package attendance

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

const maxXLSRows = 100000

const (
	columnPersonID = "person id"
	columnName     = "name"
	columnTime     = "time"
	columnStatus   = "attendance status"
)

var ErrMissingColumn = errors.New("missing required column")

func ReadFile(path string, layouts []string) ([]Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file, filepath.Base(path), layouts)
}

// Read parses an attendance export. The filename extension selects the
// decoder: .xls, .xlsx/.xlsm, anything else is treated as CSV.
func Read(reader io.Reader, filename string, layouts []string) ([]Event, error) {
	rows, err := readRows(reader, filename)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("export is empty")
	}

	headerIndex := map[string]int{}
	for i, header := range rows[0] {
		key := normalizeHeader(header)
		if _, exists := headerIndex[key]; !exists {
			headerIndex[key] = i
		}
	}

	indexes := make(map[string]int, 4)
	for _, column := range []string{columnPersonID, columnName, columnTime, columnStatus} {
		idx, ok := headerIndex[column]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, column)
		}
		indexes[column] = idx
	}

	events := make([]Event, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		status, _ := ParseStatus(cellValue(row, indexes[columnStatus]))
		events = append(events, Event{
			PersonID: cellValue(row, indexes[columnPersonID]),
			Name:     cellValue(row, indexes[columnName]),
			Time:     ParseTimestamp(cellValue(row, indexes[columnTime]), layouts),
			Status:   status,
		})
	}
	return events, nil
}

func readRows(reader io.Reader, filename string) ([][]string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xls":
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, err
		}
		if workbook.NumSheets() == 0 {
			return nil, fmt.Errorf("no worksheet found")
		}
		if workbook.NumSheets() > 1 {
			return nil, fmt.Errorf("multiple worksheets found; export a single sheet")
		}
		return workbook.ReadAllCells(maxXLSRows), nil
	case ".xlsx", ".xlsm":
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("no worksheet found")
		}
		// Raw values keep timestamps as serials instead of locale formatted text.
		return file.GetRows(sheetName, excelize.Options{RawCellValue: true})
	default:
		return readCSV(data)
	}
}

func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

func sniffDelimiter(data []byte) rune {
	firstLine := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		firstLine = data[:idx]
	}
	if bytes.Count(firstLine, []byte(";")) > bytes.Count(firstLine, []byte(",")) {
		return ';'
	}
	return ','
}

func normalizeHeader(header string) string {
	header = strings.TrimPrefix(header, "\ufeff")
	return strings.ToLower(strings.Join(strings.Fields(header), " "))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
