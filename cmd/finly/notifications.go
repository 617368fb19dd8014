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

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Show budget alerts and other notifications",
		RunE:  runNotificationsList,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "seen",
		Short: "Mark all notifications as seen",
		RunE:  runNotificationsSeen,
	})

	return cmd
}

func runNotificationsList(cmd *cobra.Command, _ []string) error {
	return withClient(cmd, func(ctx context.Context, client *api.Client, store *session.Store) error {
		notifications, err := client.Notifications(ctx)
		if err != nil {
			return err
		}

		if len(notifications) == 0 {
			fmt.Println(cli.FormatInfo("No notifications."))
			return nil
		}

		lastSeen, err := store.LastSeenNotification()
		if err != nil {
			return err
		}

		var unseen int
		var b strings.Builder
		for _, n := range notifications {
			marker := " "
			if n.ID > lastSeen {
				marker = cli.WarningStyle.Render("●")
				unseen++
			}

			fmt.Fprintf(&b, "%s %-48s %s\n", marker, n.Title,
				cli.SubtleStyle.Render(n.CreatedAt.Local().Format("02 Jan 15:04")))
			if n.Message != "" {
				fmt.Fprintf(&b, "  %s\n", cli.SubtleStyle.Render(n.Message))
			}
		}

		title := "Notifications"
		if unseen > 0 {
			title = fmt.Sprintf("Notifications (%d new)", unseen)
		}
		fmt.Println(cli.RenderBox(title, strings.TrimRight(b.String(), "\n")))
		return nil
	})
}

func runNotificationsSeen(cmd *cobra.Command, _ []string) error {
	return withClient(cmd, func(ctx context.Context, client *api.Client, store *session.Store) error {
		notifications, err := client.Notifications(ctx)
		if err != nil {
			return err
		}

		var highest int64
		for _, n := range notifications {
			if n.ID > highest {
				highest = n.ID
			}
			if !n.IsRead {
				if err := client.MarkNotificationRead(ctx, n.ID); err != nil {
					return err
				}
			}
		}

		if highest > 0 {
			if err := store.SetLastSeenNotification(highest); err != nil {
				return err
			}
		}

		fmt.Println(cli.FormatSuccess("All notifications marked as seen"))
		return nil
	})
}
