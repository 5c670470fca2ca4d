package attendance

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// DefaultTimeLayouts covers the ISO forms written by most terminals and the
// day-first forms produced by Portuguese locale exports.
var DefaultTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"02-01-2006 15:04:05",
	"02-01-2006 15:04",
}

// ParseTimestamp returns the zero time when value matches none of the
// layouts and is not an Excel date serial.
func ParseTimestamp(value string, layouts []string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}

	// Excel date serial, as stored by XLSX/XLS exports.
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial < 1 {
			return time.Time{}
		}
		parsed, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}
		}
		return parsed.Round(time.Second)
	}

	if len(layouts) == 0 {
		layouts = DefaultTimeLayouts
	}
	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
