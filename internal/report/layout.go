package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/phillip-england/ponto/internal/timesheet"
)

// Kind selects one of the two fixed report schemas.
type Kind int

const (
	KindFull Kind = iota
	KindSimple
)

func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "full", "completo", "relatório completo":
		return KindFull, nil
	case "simple", "simples", "relatório simples":
		return KindSimple, nil
	default:
		return KindFull, fmt.Errorf("unknown report kind %q", value)
	}
}

func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	default:
		return "full"
	}
}

// Label is the name shown to users when picking a report.
func (k Kind) Label() string {
	switch k {
	case KindSimple:
		return "Relatório Simples"
	default:
		return "Relatório Completo"
	}
}

func (k Kind) Layout() Layout {
	switch k {
	case KindSimple:
		return simpleLayout
	default:
		return fullLayout
	}
}

type Field int

const (
	FieldDate Field = iota
	FieldName
	FieldCheckIn
	FieldLunchOut
	FieldLunchIn
	FieldCheckOut
	FieldWorked
	FieldDelta
)

type Column struct {
	Field  Field
	Header string
}

type Layout struct {
	Columns []Column
}

var simpleLayout = Layout{Columns: []Column{
	{Field: FieldDate, Header: "Data"},
	{Field: FieldName, Header: "Nome"},
	{Field: FieldCheckIn, Header: "Entrada"},
	{Field: FieldLunchOut, Header: "Saída Almoço"},
	{Field: FieldLunchIn, Header: "Entrada Almoço"},
	{Field: FieldCheckOut, Header: "Saída"},
}}

var fullLayout = Layout{Columns: []Column{
	{Field: FieldDate, Header: "Data"},
	{Field: FieldName, Header: "Nome"},
	{Field: FieldCheckIn, Header: "Entrada"},
	{Field: FieldLunchOut, Header: "Saída Alm."},
	{Field: FieldLunchIn, Header: "Entrada Alm."},
	{Field: FieldCheckOut, Header: "Saída"},
	{Field: FieldWorked, Header: "Trabalho (min)"},
	{Field: FieldDelta, Header: "Extra/Falta"},
}}

// Index returns the 1-based position of field, or 0 when the layout does not
// carry it.
func (l Layout) Index(field Field) int {
	for i, column := range l.Columns {
		if column.Field == field {
			return i + 1
		}
	}
	return 0
}

func (l Layout) Headers() []string {
	headers := make([]string, len(l.Columns))
	for i, column := range l.Columns {
		headers[i] = column.Header
	}
	return headers
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Value is what a cell holds for summary: the date as a time.Time, clock
// fields as the time.Duration since midnight, names as strings, minutes as
// ints, or nil when the field is absent.
func (f Field) Value(summary timesheet.Summary) any {
	switch f {
	case FieldDate:
		y, m, d := summary.Date.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	case FieldName:
		return summary.Name
	case FieldCheckIn:
		return clock(summary.CheckIn)
	case FieldLunchOut:
		return clock(summary.LunchOut)
	case FieldLunchIn:
		return clock(summary.LunchIn)
	case FieldCheckOut:
		return clock(summary.CheckOut)
	case FieldWorked:
		return minutes(summary.WorkedMinutes)
	case FieldDelta:
		return minutes(summary.DeltaMinutes)
	default:
		return nil
	}
}

// Text renders a cell value the way it reads in the finished report.
func Text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case time.Time:
		return v.Format(dateLayout)
	case time.Duration:
		return time.Time{}.Add(v).Format(timeLayout)
	default:
		return fmt.Sprint(v)
	}
}

// Row renders summary through the layout, one value per column.
func (l Layout) Row(summary timesheet.Summary) []any {
	values := make([]any, len(l.Columns))
	for i, column := range l.Columns {
		values[i] = column.Field.Value(summary)
	}
	return values
}

func clock(t *time.Time) any {
	if t == nil {
		return nil
	}
	h, m, sec := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second
}

// numFmt is the Excel number format for the field's cells, or "" for plain
// values.
func (f Field) numFmt() string {
	switch f {
	case FieldDate:
		return "yyyy-mm-dd"
	case FieldCheckIn, FieldLunchOut, FieldLunchIn, FieldCheckOut:
		return "hh:mm:ss"
	default:
		return ""
	}
}

func minutes(m *int) any {
	if m == nil {
		return nil
	}
	return *m
}
