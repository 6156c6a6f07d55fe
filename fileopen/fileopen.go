// Package fileopen launches a file or directory with the host's default
// application, the register's "show me the receipt" escape hatch.
package fileopen

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open asks the operating system to open path with its default handler.
// The viewer runs detached; Open only fails when the launcher itself
// cannot be started.
func Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	// Reap the launcher so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}
