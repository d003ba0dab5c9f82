package cli

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/335g/clidoc/pkg/errors"
)

// openBrowser opens rawURL with the platform's default handler.
func openBrowser(rawURL string) error {
	if err := errors.ValidateURL(rawURL); err != nil {
		return err
	}
	name, args, err := browserCommand(runtime.GOOS, rawURL)
	if err != nil {
		return err
	}
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

// browserCommand returns the opener invocation for goos.
func browserCommand(goos, rawURL string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{rawURL}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{rawURL}, nil
	case "windows":
		return "cmd", []string{"/c", "start", "", rawURL}, nil
	default:
		return "", nil, errors.New(errors.ErrCodeUnsupported, "unsupported platform: %s", goos)
	}
}
