package pontoapp

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/phillip-england/ponto/internal/report"
)

const defaultExtension = ".xlsx"

// Input is the run configuration as typed by the user.
type Input struct {
	SourcePath       string
	OutputPath       string
	Kind             string
	TargetMinutes    string
	ToleranceMinutes string
	SplitByEmployee  bool
	Open             bool
}

type Job struct {
	SourcePath       string
	OutputPath       string
	Kind             report.Kind
	TargetMinutes    int
	ToleranceMinutes int
	SplitByEmployee  bool
	Open             bool
}

// ParseJob validates in before any file is touched. Number fields are
// checked first, then the paths.
func ParseJob(in Input) (Job, error) {
	target, err := strconv.Atoi(strings.TrimSpace(in.TargetMinutes))
	if err != nil {
		return Job{}, validationError("Por favor introduza números inteiros.")
	}
	tolerance, err := strconv.Atoi(strings.TrimSpace(in.ToleranceMinutes))
	if err != nil {
		return Job{}, validationError("Por favor introduza números inteiros.")
	}
	if target <= 0 {
		return Job{}, validationError("O tempo de trabalho tem de ser superior a zero.")
	}
	if tolerance < 0 {
		return Job{}, validationError("O limite de tolerância não pode ser negativo.")
	}
	kind, err := report.ParseKind(in.Kind)
	if err != nil {
		return Job{}, validationError(fmt.Sprintf("Tipo de relatório desconhecido: %q.", in.Kind))
	}

	source := strings.TrimSpace(in.SourcePath)
	output := strings.TrimSpace(in.OutputPath)
	if source == "" || output == "" {
		return Job{}, &Error{Kind: ErrMissingInput, Message: "Por favor selecione primeiro o ficheiro e o local para guardar."}
	}
	if filepath.Ext(output) == "" {
		output += defaultExtension
	}

	return Job{
		SourcePath:       source,
		OutputPath:       output,
		Kind:             kind,
		TargetMinutes:    target,
		ToleranceMinutes: tolerance,
		SplitByEmployee:  in.SplitByEmployee,
		Open:             in.Open,
	}, nil
}
