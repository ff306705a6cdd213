package cmd

import (
	"fmt"

	"github.com/liberta-cli/liberta/filesystem"
	"github.com/liberta-cli/liberta/icon"
	"github.com/liberta-cli/liberta/util"
	"github.com/liberta-cli/liberta/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for automated cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"history file", "history", mo.Some("s"), where.History},
	{"queries history", "queries", mo.Some("q"), where.Queries},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd manages the cleanup of temporary and cached application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear temporary and cached application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if lo.Must(cmd.Flags().GetBool(target.argLong)) {
				anyCleared = true
				e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), util.Capitalize(target.name)))
				handleErr(filesystem.API().RemoveAll(target.location()))
				e()
				fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
			}
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
