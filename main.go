package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/phillip-england/ponto/internal/pontocli"
)

func main() {
	if err := pontocli.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, pontocli.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprintln(os.Stderr, "usage: ponto generate <export> -o <report.xlsx|report.pdf> [--kind full|simple] [--target MIN] [--tolerance MIN] [--split] [--no-open]")
			fmt.Fprintln(os.Stderr, "       ponto form [export]")
			fmt.Fprintln(os.Stderr, "       ponto setup [--force]")
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, pontocli.ErrorLine(err))
		os.Exit(1)
	}
}
