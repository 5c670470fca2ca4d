package pontocli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/phillip-england/ponto/internal/config"
	"github.com/phillip-england/ponto/internal/envutil"
	"github.com/phillip-england/ponto/internal/launch"
	"github.com/phillip-england/ponto/internal/logger"
	"github.com/phillip-england/ponto/internal/pontoapp"
)

var ErrUsage = errors.New("usage")

type CLI struct {
	Config  string `help:"Settings file (YAML)." default:"ponto.yaml" type:"path"`
	EnvFile string `help:"Dotenv file loaded before the settings." default:".env" type:"path"`
	Debug   bool   `help:"Write debug logs to stderr."`

	Generate GenerateCmd `cmd:"" help:"Generate a timesheet report from an attendance export."`
	Form     FormCmd     `cmd:"" help:"Fill in the report options interactively, then generate it."`
	Setup    SetupCmd    `cmd:"" help:"Write a .env file with the current settings."`
}

// Context is bound to every command's Run method.
type Context struct {
	Ctx      context.Context
	Settings config.Settings
	Logger   *log.Logger
	Opener   launch.Opener
	EnvFile  string
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	opener launch.Opener
}

func Execute(args []string) error {
	return execute(args, environment{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		opener: launch.System{},
	})
}

func newParser(cli *CLI, env environment) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("ponto"),
		kong.Description("Timesheet reports from time-and-attendance exports."),
		kong.Writers(env.stdout, env.stderr),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true, NoExpandSubcommands: true}),
	)
}

func execute(args []string, env environment) error {
	var cli CLI
	parser, err := newParser(&cli, env)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if err := envutil.LoadDotEnv(cli.EnvFile); err != nil {
		return fmt.Errorf("load %s: %w", cli.EnvFile, err)
	}
	settings, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	l, err := logger.New(logger.Config{
		Debug:  cli.Debug,
		Level:  settings.Log.Level,
		File:   settings.Log.File,
		Stderr: env.stderr,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return kctx.Run(&Context{
		Ctx:      ctx,
		Settings: settings,
		Logger:   l,
		Opener:   env.opener,
		EnvFile:  cli.EnvFile,
		Stdin:    env.stdin,
		Stdout:   env.stdout,
		Stderr:   env.stderr,
	})
}

// PrintUsage writes the command summary to w.
func PrintUsage(w io.Writer) {
	var cli CLI
	parser, err := newParser(&cli, environment{stdout: w, stderr: w})
	if err != nil {
		return
	}
	kctx, err := kong.Trace(parser, nil)
	if err != nil {
		return
	}
	_ = kctx.PrintUsage(false)
}

// ErrorLine is the single line reported for a failed run.
func ErrorLine(err error) string {
	return errorStyle.Render(pontoapp.Message(err))
}

func (app *Context) defaultInput() pontoapp.Input {
	s := app.Settings
	return pontoapp.Input{
		Kind:             s.Report.Kind,
		TargetMinutes:    strconv.Itoa(s.Report.Target),
		ToleranceMinutes: strconv.Itoa(s.Report.Tolerance),
		SplitByEmployee:  s.Report.Split,
		Open:             s.Open,
	}
}

func (app *Context) runner() *pontoapp.Runner {
	return pontoapp.NewRunner(app.Settings, app.Opener, app.Logger)
}

// report prints the outcome of a successful run.
func (app *Context) report(result pontoapp.Result) {
	fmt.Fprintln(app.Stdout, successStyle.Render(result.Summary()))
	if result.Split {
		for _, path := range result.Files {
			fmt.Fprintln(app.Stdout, "  "+path)
		}
	}
	if result.LaunchErr != nil {
		fmt.Fprintln(app.Stderr, warnStyle.Render(pontoapp.Message(result.LaunchErr)))
	}
}
