package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/liberta-cli/liberta/auth"
	"github.com/liberta-cli/liberta/color"
	"github.com/liberta-cli/liberta/icon"
	"github.com/liberta-cli/liberta/open"
	"github.com/liberta-cli/liberta/provider/icl"
	"github.com/liberta-cli/liberta/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd groups the member-site session commands.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the member-site login session",
}

func init() {
	authCmd.AddCommand(authLoginCmd)
}

// authLoginCmd opens the login page and stores the resulting session cookie.
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log into the member site and store the session cookie",
	Long: `Open the member login page in the browser. After logging in, copy the
wordpress_logged_in cookie from the browser and paste it at the prompt.`,
	Run: func(cmd *cobra.Command, args []string) {
		descriptor := icl.Descriptor()
		loginURL := descriptor.Authentication.LoginURL

		fmt.Printf("Opening %s\n", style.Fg(color.Yellow)(loginURL))
		if err := open.Start(loginURL); err != nil {
			fmt.Println(style.Faint("could not open the browser, visit the URL manually"))
		}

		var cookie string
		prompt := &survey.Password{
			Message: "Paste the wordpress_logged_in cookie (name=value)",
		}
		handleErr(survey.AskOne(prompt, &cookie, survey.WithValidator(survey.Required)))

		handleErr(storeCookie(cookie))
		fmt.Printf("%s session stored\n", icon.Get(icon.Success))
	},
}

func init() {
	authCmd.AddCommand(authSetCookieCmd)

	authSetCookieCmd.Flags().StringP("cookie", "c", "", "The full name=value pair of the session cookie")
	lo.Must0(authSetCookieCmd.MarkFlagRequired("cookie"))
}

// authSetCookieCmd stores a session cookie non-interactively.
var authSetCookieCmd = &cobra.Command{
	Use:   "set-cookie",
	Short: "Store a member session cookie non-interactively",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(storeCookie(lo.Must(cmd.Flags().GetString("cookie"))))
		fmt.Printf("%s session stored\n", icon.Get(icon.Success))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}

// authStatusCmd reports whether a session is stored.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether a member session is stored",
	Run: func(cmd *cobra.Command, args []string) {
		if auth.IsLoggedIn() {
			fmt.Printf("%s logged in\n", icon.Get(icon.Success))
			return
		}

		fmt.Printf("%s not logged in, run %s\n", icon.Get(icon.Lock), style.Bold("liberta auth login"))
	},
}

func init() {
	authCmd.AddCommand(authLogoutCmd)
}

// authLogoutCmd removes the stored session.
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored member session",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteSessionCookie())
		fmt.Printf("%s session removed\n", icon.Get(icon.Success))
	},
}

// storeCookie validates the pasted cookie shape before persisting it.
func storeCookie(cookie string) error {
	cookie = strings.TrimSpace(cookie)

	if cookie == "" {
		return errors.New("cookie is empty")
	}

	if !strings.Contains(cookie, "=") {
		return errors.New("cookie must be the full name=value pair")
	}

	if !strings.HasPrefix(cookie, "wordpress_logged_in") {
		return fmt.Errorf("expected a wordpress_logged_in cookie, got %q", strings.SplitN(cookie, "=", 2)[0])
	}

	return auth.SetSessionCookie(cookie)
}
