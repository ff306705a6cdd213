// Package open launches URLs and files with the system's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/liberta-cli/liberta/constant"
)

// Run opens the input with the default system handler and waits for completion.
func Run(input string) error {
	cmd, ok := command(input)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Run()
}

// Start opens the input with the default system handler asynchronously.
func Start(input string) error {
	cmd, ok := command(input)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

func command(input string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}
