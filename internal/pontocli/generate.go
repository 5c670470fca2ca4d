package pontocli

import (
	"fmt"

	"github.com/phillip-england/ponto/internal/pontoapp"
)

type GenerateCmd struct {
	Source    string `arg:"" help:"Attendance export (.csv, .xlsx or .xls)." type:"path"`
	Output    string `short:"o" help:"Report file; a .pdf extension writes a print-ready PDF." required:"" type:"path"`
	Kind      string `short:"k" help:"Report kind: full or simple."`
	Target    string `short:"t" help:"Target minutes of work per day." placeholder:"MIN"`
	Tolerance string `help:"Tolerance in minutes around the target." placeholder:"MIN"`
	Split     bool   `help:"Write one report per employee."`
	NoOpen    bool   `help:"Do not open the report when it is done."`
}

func (c *GenerateCmd) Run(app *Context) error {
	in := app.defaultInput()
	in.SourcePath = c.Source
	in.OutputPath = c.Output
	if c.Kind != "" {
		in.Kind = c.Kind
	}
	if c.Target != "" {
		in.TargetMinutes = c.Target
	}
	if c.Tolerance != "" {
		in.ToleranceMinutes = c.Tolerance
	}
	if c.Split {
		in.SplitByEmployee = true
	}
	if c.NoOpen {
		in.Open = false
	}

	job, err := pontoapp.ParseJob(in)
	if err != nil {
		return err
	}
	result, err := app.runner().Run(app.Ctx, job, func(status string) {
		fmt.Fprintln(app.Stderr, statusStyle.Render(status))
	})
	if err != nil {
		return err
	}
	app.report(result)
	return nil
}
