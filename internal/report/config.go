package report

import "time"

const (
	DefaultSheetName      = "Relatório Ponto"
	DefaultTitle          = "Relatório de Ponto"
	DefaultOrganization   = "Friártico"
	DefaultMorningLabel   = "Turno Manhã"
	DefaultAfternoonLabel = "Turno Tarde"
)

type Config struct {
	Kind             Kind
	TargetMinutes    int
	ToleranceMinutes int
	Organization     string
	SheetName        string
	Title            string
	MorningLabel     string
	AfternoonLabel   string
	GeneratedAt      time.Time
}

func (c Config) withDefaults() Config {
	if c.SheetName == "" {
		c.SheetName = DefaultSheetName
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Organization == "" {
		c.Organization = DefaultOrganization
	}
	if c.MorningLabel == "" {
		c.MorningLabel = DefaultMorningLabel
	}
	if c.AfternoonLabel == "" {
		c.AfternoonLabel = DefaultAfternoonLabel
	}
	if c.GeneratedAt.IsZero() {
		c.GeneratedAt = time.Now()
	}
	return c
}

const (
	titleRow     = 1
	metaRow      = 2
	shiftRow     = 3
	headerRow    = 4
	firstDataRow = 5
)

// metaCell is a cell of the metadata band. Span is the number of columns it
// covers starting at Col (1-based).
type metaCell struct {
	Col   int
	Span  int
	Value any
	Label bool
}

// metadataBands lays out rows 2 and 3 for both output formats.
func metadataBands(cfg Config) [2][]metaCell {
	bands := [2][]metaCell{
		{
			{Col: 1, Span: 2, Value: "Data do Relatório", Label: true},
			{Col: 3, Span: 1, Value: cfg.GeneratedAt.Format(dateLayout)},
			{Col: 5, Span: 1, Value: "Empresa", Label: true},
			{Col: 6, Span: 1, Value: cfg.Organization},
		},
		{
			{Col: 1, Span: 2},
			{Col: 3, Span: 2, Value: cfg.MorningLabel, Label: true},
			{Col: 5, Span: 2, Value: cfg.AfternoonLabel, Label: true},
		},
	}
	if cfg.Kind == KindFull {
		bands[0] = append(bands[0],
			metaCell{Col: 7, Span: 1, Value: "Trabalho (min)", Label: true},
			metaCell{Col: 8, Span: 1, Value: cfg.TargetMinutes},
		)
		bands[1] = append(bands[1],
			metaCell{Col: 7, Span: 1, Value: "Tolerância (min)", Label: true},
			metaCell{Col: 8, Span: 1, Value: cfg.ToleranceMinutes},
		)
	}
	return bands
}
