package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/phillip-england/ponto/internal/attendance"
	"github.com/phillip-england/ponto/internal/report"
)

const EnvPrefix = "PONTO_"

type Settings struct {
	Report Report `koanf:"report"`
	Input  Input  `koanf:"input"`
	Open   bool   `koanf:"open"`
	Log    Log    `koanf:"log"`
}

type Report struct {
	Kind           string `koanf:"kind"`
	Target         int    `koanf:"target"`
	Tolerance      int    `koanf:"tolerance"`
	Split          bool   `koanf:"split"`
	Organization   string `koanf:"organization"`
	Sheet          string `koanf:"sheet"`
	Title          string `koanf:"title"`
	MorningLabel   string `koanf:"morning"`
	AfternoonLabel string `koanf:"afternoon"`
}

type Input struct {
	Layouts []string `koanf:"layouts"`
}

type Log struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

func Default() Settings {
	return Settings{
		Report: Report{
			Kind:           report.KindFull.String(),
			Target:         510,
			Tolerance:      15,
			Organization:   report.DefaultOrganization,
			Sheet:          report.DefaultSheetName,
			Title:          report.DefaultTitle,
			MorningLabel:   report.DefaultMorningLabel,
			AfternoonLabel: report.DefaultAfternoonLabel,
		},
		Input: Input{
			Layouts: append([]string(nil), attendance.DefaultTimeLayouts...),
		},
		Open: true,
		Log: Log{
			Level: "warn",
			File:  defaultLogFile(),
		},
	}
}

func defaultLogFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ponto", "ponto.log")
}

// Load layers the defaults, the YAML file at path (optional) and PONTO_*
// environment variables, in that order.
func Load(path string) (Settings, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Settings{}, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, err
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, EnvPrefix)), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		return Settings{}, err
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// DotEnv lists the settings as PONTO_* variables, the form written by
// `ponto setup`.
func (s Settings) DotEnv() map[string]string {
	return map[string]string{
		EnvPrefix + "REPORT_KIND":         s.Report.Kind,
		EnvPrefix + "REPORT_TARGET":       strconv.Itoa(s.Report.Target),
		EnvPrefix + "REPORT_TOLERANCE":    strconv.Itoa(s.Report.Tolerance),
		EnvPrefix + "REPORT_SPLIT":        strconv.FormatBool(s.Report.Split),
		EnvPrefix + "REPORT_ORGANIZATION": s.Report.Organization,
		EnvPrefix + "OPEN":                strconv.FormatBool(s.Open),
		EnvPrefix + "LOG_LEVEL":           s.Log.Level,
	}
}
