package cmd

import (
	"encoding/json"
	"os"

	"github.com/liberta-cli/liberta/color"
	"github.com/liberta-cli/liberta/provider"
	"github.com/liberta-cli/liberta/provider/icl"
	"github.com/liberta-cli/liberta/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd provides a parent command for inspecting content providers.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Inspect the compiled-in content providers",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd displays a summary of all registered providers.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display the registered content providers",
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("raw")) {
			cmd.Println(style.New().Foreground(color.HiBlue).Bold(true).Render("Builtin:"))
		}

		for _, p := range provider.Builtins() {
			cmd.Println(p.Name)
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesDescribeCmd)
	sourcesDescribeCmd.SetOut(os.Stdout)
}

// sourcesDescribeCmd prints the full provider descriptor as JSON.
var sourcesDescribeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the provider descriptor as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(icl.Descriptor()))
	},
}
