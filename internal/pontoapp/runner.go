package pontoapp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/phillip-england/ponto/internal/attendance"
	"github.com/phillip-england/ponto/internal/config"
	"github.com/phillip-england/ponto/internal/launch"
	"github.com/phillip-england/ponto/internal/logger"
	"github.com/phillip-england/ponto/internal/report"
	"github.com/phillip-england/ponto/internal/timesheet"
)

const (
	statusReading    = "A ler o ficheiro exportado..."
	statusGenerating = "A gerar o relatório... Por favor aguarde."
	statusOpening    = "A abrir o relatório..."
)

type Runner struct {
	Settings config.Settings
	Opener   launch.Opener
	Logger   *log.Logger
	Now      func() time.Time
}

func NewRunner(settings config.Settings, opener launch.Opener, l *log.Logger) *Runner {
	return &Runner{Settings: settings, Opener: opener, Logger: l, Now: time.Now}
}

type Result struct {
	Split     bool
	Files     []string
	Rows      int
	Opened    bool
	LaunchErr error
}

// Summary is the success line shown to the user.
func (r Result) Summary() string {
	if r.Split {
		return "Relatórios gerados para cada colaborador."
	}
	if len(r.Files) == 0 {
		return ""
	}
	return fmt.Sprintf("Relatório gerado com sucesso: %s", r.Files[0])
}

// Progress receives status texts while a run advances.
type Progress func(status string)

// Run reads the export, aggregates it and writes the report(s). Output
// written before a failure is left on disk. A failure to open the finished
// report is returned in Result.LaunchErr and does not fail the run.
func (r *Runner) Run(ctx context.Context, job Job, progress Progress) (Result, error) {
	if progress == nil {
		progress = func(string) {}
	}
	l := r.logger().With("run", uuid.NewString())
	started := r.now()

	progress(statusReading)
	l.Info("reading export", "path", job.SourcePath)
	events, err := attendance.ReadFile(job.SourcePath, r.Settings.Input.Layouts)
	if err != nil {
		l.Error("read export", "err", err)
		return Result{}, processingError(err)
	}
	if missing := countMissingTimes(events); missing > 0 {
		l.Debug("rows without a usable timestamp", "count", missing)
	}

	summaries := timesheet.Aggregate(events, job.TargetMinutes)
	l.Debug("aggregated", "events", len(events), "days", len(summaries))

	if err := ensureParentDirs(job.OutputPath); err != nil {
		return Result{}, processingError(err)
	}

	progress(statusGenerating)
	cfg := r.reportConfig(job)
	result := Result{Split: job.SplitByEmployee, Rows: len(summaries)}
	if job.SplitByEmployee {
		names, groups := timesheet.GroupByName(summaries)
		paths := report.SplitPaths(job.OutputPath, names)
		for i, name := range names {
			path := paths[i]
			progress(fmt.Sprintf("A gerar o relatório de %s...", name))
			if err := report.WriteFile(path, groups[name], cfg); err != nil {
				l.Error("write report", "path", path, "err", err)
				return result, processingError(err)
			}
			result.Files = append(result.Files, path)
		}
	} else {
		if err := report.WriteFile(job.OutputPath, summaries, cfg); err != nil {
			l.Error("write report", "path", job.OutputPath, "err", err)
			return result, processingError(err)
		}
		result.Files = append(result.Files, job.OutputPath)
	}
	l.Info("report written", "files", len(result.Files), "rows", result.Rows, "elapsed", r.now().Sub(started))

	if !job.SplitByEmployee && job.Open && r.Opener != nil {
		progress(statusOpening)
		if err := r.Opener.Open(ctx, job.OutputPath); err != nil {
			l.Warn("open report", "path", job.OutputPath, "err", err)
			result.LaunchErr = launchError(err)
		} else {
			result.Opened = true
		}
	}
	return result, nil
}

func (r *Runner) reportConfig(job Job) report.Config {
	s := r.Settings.Report
	return report.Config{
		Kind:             job.Kind,
		TargetMinutes:    job.TargetMinutes,
		ToleranceMinutes: job.ToleranceMinutes,
		Organization:     s.Organization,
		SheetName:        s.Sheet,
		Title:            s.Title,
		MorningLabel:     s.MorningLabel,
		AfternoonLabel:   s.AfternoonLabel,
		GeneratedAt:      r.now(),
	}
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return logger.Discard()
	}
	return r.Logger
}

func (r *Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func countMissingTimes(events []attendance.Event) int {
	missing := 0
	for _, event := range events {
		if !event.HasTime() {
			missing++
		}
	}
	return missing
}

func ensureParentDirs(paths ...string) error {
	for _, p := range paths {
		dir := filepath.Dir(p)
		if dir == "." || dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
