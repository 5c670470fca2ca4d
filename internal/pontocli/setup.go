package pontocli

import (
	"fmt"

	"github.com/phillip-england/ponto/internal/envutil"
)

type SetupCmd struct {
	Force bool `help:"Overwrite an existing env file."`
}

func (c *SetupCmd) Run(app *Context) error {
	if err := envutil.WriteDotEnv(app.EnvFile, app.Settings.DotEnv(), c.Force); err != nil {
		return err
	}
	fmt.Fprintf(app.Stdout, "wrote %s\n", app.EnvFile)
	return nil
}
