package launch

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Opener hands a file to the desktop's default application.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// System opens files with the host operating system's launcher. GOOS
// defaults to runtime.GOOS.
type System struct {
	GOOS string
}

func (s System) Open(ctx context.Context, path string) error {
	goos := s.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	name, args, err := command(goos, path)
	if err != nil {
		return err
	}
	if output, err := exec.CommandContext(ctx, name, args...).CombinedOutput(); err != nil {
		return fmt.Errorf("%s %s: %w: %s", name, path, err, output)
	}
	return nil
}

func command(goos, path string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{path}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return "xdg-open", []string{path}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform for opening files: %s", goos)
	}
}

// Nop is an Opener that does nothing.
type Nop struct{}

func (Nop) Open(context.Context, string) error {
	return nil
}
