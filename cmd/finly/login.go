package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/tdeshpande/finly/internal/api"
	"github.com/tdeshpande/finly/internal/cli"
	"github.com/tdeshpande/finly/internal/session"
)

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to your finance backend",
		Long: `Exchange your username and password for an access token.

The token is stored locally and attached to every subsequent request.`,
		RunE: runLogin,
	}

	cmd.Flags().StringP("username", "u", "", "Account username")
	_ = viper.BindPFlag("login.username", cmd.Flags().Lookup("username"))

	return cmd
}

func runLogin(cmd *cobra.Command, _ []string) error {
	return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
		reader := bufio.NewReader(os.Stdin)

		username := viper.GetString("login.username")
		if username == "" {
			fmt.Print("Username: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read username: %w", err)
			}
			username = strings.TrimSpace(line)
		}
		if username == "" {
			return fmt.Errorf("username is required")
		}

		password, err := readPassword(reader)
		if err != nil {
			return err
		}
		if password == "" {
			return fmt.Errorf("password is required")
		}

		if err := client.Login(ctx, username, password); err != nil {
			return err
		}

		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Signed in as %s", username)))
		return nil
	})
}

// readPassword prompts without echoing when stdin is a terminal. Piped
// input (scripts, tests) falls back to a plain line read.
func readPassword(reader *bufio.Reader) (string, error) {
	fmt.Print("Password: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the stored credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd, func(_ context.Context, client *api.Client, _ *session.Store) error {
				if err := client.Logout(); err != nil {
					return err
				}
				fmt.Println(cli.FormatSuccess("Signed out"))
				return nil
			})
		},
	}
}
