package version

import (
	"fmt"

	"github.com/liberta-cli/liberta/color"
	"github.com/liberta-cli/liberta/constant"
	"github.com/liberta-cli/liberta/icon"
	"github.com/liberta-cli/liberta/key"
	"github.com/liberta-cli/liberta/style"
	"github.com/liberta-cli/liberta/util"
	"github.com/spf13/viper"
)

// Notify prints a terminal alert when a newer stable release is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if err == nil {
		comp, err := Compare(version, constant.Version)
		if err == nil && comp <= 0 {
			return
		}
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/liberta-cli/liberta/releases/tag/v"+version),
	)
}
