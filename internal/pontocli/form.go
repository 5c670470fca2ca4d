package pontocli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/phillip-england/ponto/internal/pontoapp"
	"github.com/phillip-england/ponto/internal/report"
)

type FormCmd struct {
	Source string `arg:"" optional:"" help:"Attendance export to preselect." type:"path"`
}

func (c *FormCmd) Run(app *Context) error {
	in := app.defaultInput()
	in.SourcePath = c.Source

	form := newReportForm(&in).WithInput(app.Stdin).WithOutput(app.Stderr)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	job, err := pontoapp.ParseJob(in)
	if err != nil {
		return err
	}

	final := runWithProgress(app, app.runner().Start(app.Ctx, job))
	if final.Err != nil {
		return final.Err
	}
	app.report(final.Result)
	return nil
}

func newReportForm(in *pontoapp.Input) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ficheiro exportado").
				Placeholder("export.csv").
				Value(&in.SourcePath).
				Validate(requireText),
			huh.NewInput().
				Title("Nome do ficheiro e local para guardar").
				Description(".xlsx para folha de cálculo, .pdf para impressão").
				Placeholder("relatorio.xlsx").
				Value(&in.OutputPath).
				Validate(requireText),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Selecione o tipo de relatório").
				Options(
					huh.NewOption(report.KindFull.Label(), report.KindFull.String()),
					huh.NewOption(report.KindSimple.Label(), report.KindSimple.String()),
				).
				Value(&in.Kind),
			huh.NewInput().
				Title("Tempo de trabalho (minutos)").
				Value(&in.TargetMinutes).
				Validate(requireInteger),
			huh.NewInput().
				Title("Limite de tolerância (minutos)").
				Value(&in.ToleranceMinutes).
				Validate(requireInteger),
			huh.NewConfirm().
				Title("Criar relatórios por nome de colaborador").
				Value(&in.SplitByEmployee),
		),
	)
}

func requireText(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("campo obrigatório")
	}
	return nil
}

func requireInteger(value string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("por favor introduza números inteiros")
	}
	return nil
}
