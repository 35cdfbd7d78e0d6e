package action

import (
	"fmt"
	"os/exec"
	"runtime"
)

// ExecOpener opens hrefs through the platform launcher in a detached
// process. The launched context receives no handle back to this process,
// the terminal analogue of noopener/noreferrer.
type ExecOpener struct{}

// OpenExternal starts the platform opener for href and releases the child
// immediately; completion of the navigation is never observed.
func (ExecOpener) OpenExternal(href string) error {
	name, args := openCommand(href)
	if name == "" {
		return fmt.Errorf("no opener available on %s", runtime.GOOS)
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", href, err)
	}
	return cmd.Process.Release()
}

func openCommand(href string) (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{href}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", href}
	default:
		return "xdg-open", []string{href}
	}
}
