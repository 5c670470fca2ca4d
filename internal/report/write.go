package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/phillip-england/ponto/internal/timesheet"
)

type Format int

const (
	FormatXLSX Format = iota
	FormatPDF
)

// FormatFor picks the output format from the file extension.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return FormatPDF
	}
	return FormatXLSX
}

func WriteFile(path string, summaries []timesheet.Summary, cfg Config) error {
	switch FormatFor(path) {
	case FormatPDF:
		return writePDFFile(path, summaries, cfg)
	default:
		return writeXLSXFile(path, summaries, cfg)
	}
}

func writeXLSXFile(path string, summaries []timesheet.Summary, cfg Config) error {
	f, err := Render(summaries, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writePDFFile(path string, summaries []timesheet.Summary, cfg Config) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePDF(file, summaries, cfg); err != nil {
		_ = file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}

// SplitPath derives the per-employee output path by inserting
// "_<name>_report" before the extension of base.
func SplitPath(base, name string) string {
	return splitPath(base, fileSafe(name))
}

// SplitPaths returns one SplitPath per name, in order. Names that sanitize to
// the same file (compared case-insensitively) get a numeric suffix so that no
// report overwrites another.
func SplitPaths(base string, names []string) []string {
	paths := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		safe := fileSafe(name)
		path := splitPath(base, safe)
		for n := 2; seen[strings.ToLower(path)]; n++ {
			path = splitPath(base, fmt.Sprintf("%s_%d", safe, n))
		}
		seen[strings.ToLower(path)] = true
		paths = append(paths, path)
	}
	return paths
}

func splitPath(base, safeName string) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return stem + "_" + safeName + "_report" + ext
}

func fileSafe(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == os.PathSeparator || strings.ContainsRune(`<>:"/\|?*`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
}
