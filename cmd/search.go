package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/liberta-cli/liberta/filesystem"
	"github.com/liberta-cli/liberta/inline"
	"github.com/liberta-cli/liberta/query"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("item", "i", "", "Criteria for selecting a single item from the results (first, last, exact, index)")
	searchCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	searchCmd.Flags().BoolP("include-details", "d", false, "Resolve full details for the selected items")
	searchCmd.Flags().BoolP("include-downloads", "D", false, "Resolve download file URLs for the selected items")
	searchCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	_ = searchCmd.RegisterFlagCompletionFunc("item", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"first", "last", "exact", "index"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// searchCmd searches member content in scriptable mode.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search member content and print the results",
	Long: `Search the member site and print the matching content.

Item selectors:
  first - first item in the list
  last - last item in the list
  exact:[title] - item whose title matches exactly
  index:[number] - item at index (starting from 0)`,
	Args: cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		q := strings.Join(args, " ")
		_ = query.Remember(q, 1)

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			writer = f
		}

		itemPicker := mo.None[inline.ItemPicker]()
		if itemFlag := lo.Must(cmd.Flags().GetString("item")); itemFlag != "" {
			kind, value, _ := strings.Cut(itemFlag, ":")
			fn, err := inline.ParseItemPicker(kind, value)
			handleErr(err)
			itemPicker = mo.Some(fn)
		}

		options := &inline.Options{
			Out:              writer,
			Source:           enabledSource(),
			Query:            q,
			Json:             lo.Must(cmd.Flags().GetBool("json")),
			ItemPicker:       itemPicker,
			IncludeDetails:   lo.Must(cmd.Flags().GetBool("include-details")),
			IncludeDownloads: lo.Must(cmd.Flags().GetBool("include-downloads")),
		}

		handleErr(inline.Run(options))
	},
}
