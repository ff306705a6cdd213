package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/liberta-cli/liberta/color"
	"github.com/liberta-cli/liberta/style"
	"github.com/liberta-cli/liberta/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(homeCmd)

	homeCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	homeCmd.SetOut(os.Stdout)
}

// homeCmd prints the member home feed.
var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Display the member home feed",
	Run: func(cmd *cobra.Command, args []string) {
		src := enabledSource()

		pager, err := src.Home()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(pager))
			return
		}

		width := 80
		if w, _, err := util.TerminalSize(); err == nil {
			width = w
		}

		for _, item := range pager.Items {
			cmd.Printf("%s\n%s\n\n", style.Bold(style.Truncate(width)(item.Title)), style.Fg(color.Yellow)(item.URL))
		}

		if len(pager.Items) == 0 {
			fmt.Println(style.Faint("home feed is empty"))
		}
	},
}
