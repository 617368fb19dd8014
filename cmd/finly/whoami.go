package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tdeshpande/finly/internal/api"
	"github.com/tdeshpande/finly/internal/cli"
	"github.com/tdeshpande/finly/internal/session"
)

func whoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show or update the signed-in account",
		RunE:  runWhoami,
	}

	cmd.Flags().String("first-name", "", "Update first name")
	cmd.Flags().String("last-name", "", "Update last name")
	cmd.Flags().String("email", "", "Update email address")

	return cmd
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	var update api.ProfileUpdate
	if cmd.Flags().Changed("first-name") {
		v, _ := cmd.Flags().GetString("first-name")
		update.FirstName = &v
	}
	if cmd.Flags().Changed("last-name") {
		v, _ := cmd.Flags().GetString("last-name")
		update.LastName = &v
	}
	if cmd.Flags().Changed("email") {
		v, _ := cmd.Flags().GetString("email")
		update.Email = &v
	}

	return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
		if update.FirstName != nil || update.LastName != nil || update.Email != nil {
			user, err := client.UpdateProfile(ctx, update)
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Profile updated for %s", user.DisplayName())))
			return nil
		}

		user, err := client.User(ctx)
		if err != nil {
			return err
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Username: %s\n", cli.BoldStyle.Render(user.Username))
		name := strings.TrimSpace(user.FirstName + " " + user.LastName)
		if name != "" {
			fmt.Fprintf(&b, "Name:     %s\n", name)
		}
		if user.Email != "" {
			fmt.Fprintf(&b, "Email:    %s\n", user.Email)
		}

		fmt.Println(cli.RenderBox("Account", strings.TrimRight(b.String(), "\n")))
		return nil
	})
}
