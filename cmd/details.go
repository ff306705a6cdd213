package cmd

import (
	"encoding/json"
	"os"

	"github.com/liberta-cli/liberta/color"
	"github.com/liberta-cli/liberta/history"
	"github.com/liberta-cli/liberta/key"
	"github.com/liberta-cli/liberta/style"
	"github.com/liberta-cli/liberta/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(detailsCmd)

	detailsCmd.Flags().StringP("url", "u", "", "The content URL to resolve")
	lo.Must0(detailsCmd.MarkFlagRequired("url"))
	detailsCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	detailsCmd.SetOut(os.Stdout)
}

// detailsCmd resolves a single content URL into full details.
var detailsCmd = &cobra.Command{
	Use:   "details",
	Short: "Resolve a content URL into full details",
	Run: func(cmd *cobra.Command, args []string) {
		url := lo.Must(cmd.Flags().GetString("url"))
		src := enabledSource()

		if !src.IsContentDetailsURL(url) {
			cmd.PrintErrf("%s is not a known content URL, trying anyway\n", url)
		}

		details, err := src.ContentDetails(url)
		handleErr(err)

		if viper.GetBool(key.HistorySaveOnView) {
			_ = history.Save(details)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(details))
			return
		}

		cmd.Println(style.Title(details.Title))

		if details.Description != "" {
			cmd.Println(details.Description)
		}

		if details.IsSeries() {
			cmd.Printf("\n%s\n", style.Bold(util.Quantify(len(details.Episodes), "aula", "aulas")))
			for _, episode := range details.Episodes {
				cmd.Printf("  %s %s\n", style.Fg(color.Green)("•"), episode.Title)
				cmd.Printf("    %s\n", style.Faint(episode.URL))
			}
			return
		}

		cmd.Printf("\n%s\n", style.Bold("Fontes"))
		for _, s := range details.Sources {
			cmd.Printf("  %s %s %s\n", style.Fg(color.Green)("•"), s.Label(), style.Faint(s.URL()))
		}
	},
}
