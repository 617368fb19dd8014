package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tdeshpande/finly/internal/api"
	"github.com/tdeshpande/finly/internal/cli"
	"github.com/tdeshpande/finly/internal/icons"
	"github.com/tdeshpande/finly/internal/model"
	"github.com/tdeshpande/finly/internal/session"
)

func paymethodsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paymethods",
		Short: "Manage payment methods",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List payment methods",
		RunE:  runPaymethodsList,
	})
	cmd.AddCommand(paymethodsAddCmd())
	cmd.AddCommand(paymethodsDeleteCmd())

	return cmd
}

func runPaymethodsList(cmd *cobra.Command, _ []string) error {
	return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
		methods, err := client.PaymentMethods(ctx)
		if err != nil {
			return err
		}

		if len(methods) == 0 {
			fmt.Println(cli.FormatInfo("No payment methods yet. Add one with 'finly paymethods add'."))
			return nil
		}

		var b strings.Builder
		for _, m := range methods {
			fmt.Fprintf(&b, "%4d  %s %s\n", m.ID, icons.Glyph(m.Icon), m.Name)
		}

		fmt.Println(cli.RenderBox("Payment Methods", strings.TrimRight(b.String(), "\n")))
		return nil
	})
}

func paymethodsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a payment method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			icon, _ := cmd.Flags().GetString("icon")

			return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
				created, err := client.CreatePaymentMethod(ctx, model.PaymentMethod{
					Name: args[0],
					Icon: icon,
				})
				if err != nil {
					return err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added payment method %q (id %d)",
					created.Name, created.ID)))
				return nil
			})
		},
	}

	cmd.Flags().String("icon", "", "Icon name")

	return cmd
}

func paymethodsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a payment method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid payment method id %q: %w", args[0], err)
			}

			return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
				if err := client.DeletePaymentMethod(ctx, id); err != nil {
					return err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted payment method %d", id)))
				return nil
			})
		},
	}
}
