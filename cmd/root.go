// Package cmd implements the command-line interface for liberta.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/liberta-cli/liberta/color"
	"github.com/liberta-cli/liberta/constant"
	"github.com/liberta-cli/liberta/icon"
	"github.com/liberta-cli/liberta/key"
	"github.com/liberta-cli/liberta/log"
	"github.com/liberta-cli/liberta/style"
	"github.com/liberta-cli/liberta/tui"
	"github.com/liberta-cli/liberta/util"
	"github.com/liberta-cli/liberta/version"
	"github.com/liberta-cli/liberta/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().Bool("home", false, "Start on the home feed instead of the search prompt")
	rootCmd.Flags().StringP("query", "q", "", "Pre-fill and run a search query")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Persist viewed content to the local history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnView, rootCmd.PersistentFlags().Lookup("write-history")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Clean up leftover temporary files from previous runs.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the liberta application.
var rootCmd = &cobra.Command{
	Use:   constant.Liberta,
	Short: "A command-line browser for ICL member content",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A command-line browser for Instituto Conhecimento Liberta"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Query: lo.Must(cmd.Flags().GetString("query")),
			Home:  lo.Must(cmd.Flags().GetBool("home")),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
