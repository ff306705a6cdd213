package cmd

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/liberta-cli/liberta/color"
	"github.com/liberta-cli/liberta/constant"
	"github.com/liberta-cli/liberta/filesystem"
	"github.com/liberta-cli/liberta/icon"
	"github.com/liberta-cli/liberta/key"
	"github.com/liberta-cli/liberta/network"
	"github.com/liberta-cli/liberta/provider/icl"
	"github.com/liberta-cli/liberta/source"
	"github.com/liberta-cli/liberta/style"
	"github.com/liberta-cli/liberta/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().StringP("url", "u", "", "The content URL to download")
	lo.Must0(downloadCmd.MarkFlagRequired("url"))

	downloadCmd.Flags().StringP("quality", "Q", "", "Preferred download quality label")
	_ = downloadCmd.RegisterFlagCompletionFunc("quality", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icl.QualityLabels(), cobra.ShellCompDirectiveNoFileComp
	})
	lo.Must0(viper.BindPFlag(key.DownloadPreferredQuality, downloadCmd.Flags().Lookup("quality")))

	downloadCmd.Flags().BoolP("interactive", "i", false, "Pick the download quality interactively")
	lo.Must0(viper.BindPFlag(key.DownloadInteractive, downloadCmd.Flags().Lookup("interactive")))

	downloadCmd.Flags().BoolP("print-only", "p", false, "Print the resolved file URL instead of downloading")
	downloadCmd.Flags().StringP("dir", "d", ".", "Directory to place the downloaded file in")
}

// downloadCmd resolves a content URL into a file and downloads it.
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download a content item from the member site",
	Run: func(cmd *cobra.Command, args []string) {
		url := lo.Must(cmd.Flags().GetString("url"))
		src := enabledSource()

		files, err := src.VideoDownload(url)
		handleErr(err)

		file := pickFile(files)

		if lo.Must(cmd.Flags().GetBool("print-only")) {
			fmt.Println(file.URL)
			return
		}

		dir := lo.Must(cmd.Flags().GetString("dir"))

		// Renditions share the play_{label}.mp4 basename, so prefix the
		// CDN video id to keep downloads of different lessons apart.
		name := fmt.Sprintf(
			"%s_%s%s",
			path.Base(path.Dir(file.URL)),
			util.FileStem(path.Base(file.URL)),
			path.Ext(file.URL),
		)
		dest := filepath.Join(dir, util.SanitizeFilename(name))

		erase := util.PrintErasable(fmt.Sprintf("%s Downloading %s...", icon.Get(icon.Download), file.Label))
		err = downloadFile(file.URL, dest)
		erase()
		handleErr(err)

		fmt.Printf(
			"%s downloaded %s to %s\n",
			icon.Get(icon.Success),
			style.Fg(color.Yellow)(file.Label),
			style.Bold(dest),
		)
	},
}

// pickFile selects the file to download: interactively when requested,
// otherwise by the preferred quality label with the first file as fallback.
func pickFile(files []source.FileSource) source.FileSource {
	if len(files) == 1 {
		return files[0]
	}

	labels := lo.Map(files, func(f source.FileSource, _ int) string {
		return f.Label
	})

	if viper.GetBool(key.DownloadInteractive) {
		var label string
		prompt := &survey.Select{
			Message: "Download quality",
			Options: labels,
		}

		if err := survey.AskOne(prompt, &label); err == nil {
			if file, ok := lo.Find(files, func(f source.FileSource) bool {
				return f.Label == label
			}); ok {
				return file
			}
		}
	}

	preferred := viper.GetString(key.DownloadPreferredQuality)
	if file, ok := lo.Find(files, func(f source.FileSource) bool {
		return f.Label == preferred
	}); ok {
		return file
	}

	return files[0]
}

func downloadFile(url, dest string) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		return err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: status %s", url, resp.Status)
	}

	out, err := filesystem.API().Create(dest)
	if err != nil {
		return err
	}
	defer util.Ignore(out.Close)

	_, err = io.Copy(out, resp.Body)
	return err
}
