package cmd

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/liberta-cli/liberta/color"
	"github.com/liberta-cli/liberta/history"
	"github.com/liberta-cli/liberta/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	historyCmd.SetOut(os.Stdout)
}

// historyCmd lists the viewed content history, most recent first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display the viewed content history",
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := history.Get()
		handleErr(err)

		views := lo.Values(saved)
		sort.Slice(views, func(i, j int) bool {
			return views[i].ViewedAt.After(views[j].ViewedAt)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(views))
			return
		}

		for _, view := range views {
			cmd.Printf("%s %s\n", style.Bold(view.String()), style.Faint(view.ViewedAt.Format("2006-01-02 15:04")))
			cmd.Println(style.Fg(color.Yellow)(view.URL))
			cmd.Println()
		}
	},
}
