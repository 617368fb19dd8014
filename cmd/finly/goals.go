package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tdeshpande/finly/internal/api"
	"github.com/tdeshpande/finly/internal/cli"
	"github.com/tdeshpande/finly/internal/common"
	"github.com/tdeshpande/finly/internal/icons"
	"github.com/tdeshpande/finly/internal/model"
	"github.com/tdeshpande/finly/internal/session"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Track savings goals",
	}

	cmd.AddCommand(goalsListCmd())
	cmd.AddCommand(goalsAddCmd())
	cmd.AddCommand(goalsAddAmountCmd())
	cmd.AddCommand(goalsEditCmd())
	cmd.AddCommand(goalsDeleteCmd())

	return cmd
}

func goalsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
				goals, err := client.SavingsGoals(ctx)
				if err != nil {
					return err
				}

				if len(goals) == 0 {
					fmt.Println(cli.FormatInfo("No savings goals yet. Create one with 'finly goals add'."))
					return nil
				}

				var b strings.Builder
				for _, g := range goals {
					percent := g.ProgressPercent()
					style := cli.SuccessStyle
					if percent < 100 {
						style = cli.InfoStyle
					}

					fmt.Fprintf(&b, "%4d  %s %-20s %s %s\n", g.ID, icons.Glyph(g.Icon), g.Name,
						style.Render(cli.ProgressBar(g.FillPercent(), 20)),
						style.Render(fmt.Sprintf("%d%%", percent)))
					fmt.Fprintf(&b, "      %s\n",
						cli.SubtleStyle.Render(fmt.Sprintf("%s of %s",
							cli.FormatAmount(g.SavedAmount.Float()),
							cli.FormatAmount(g.TargetAmount.Float()))))
				}

				fmt.Println(cli.RenderBox("Savings Goals", strings.TrimRight(b.String(), "\n")))
				return nil
			})
		},
	}
}

func goalsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a savings goal",
		RunE:  runGoalsAdd,
	}

	cmd.Flags().StringP("name", "t", "", "Goal name (required)")
	cmd.Flags().Float64P("target", "a", 0, "Target amount (required, positive)")
	cmd.Flags().String("icon", "", "Goal icon name")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runGoalsAdd(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("name")
	target, _ := cmd.Flags().GetFloat64("target")
	icon, _ := cmd.Flags().GetString("icon")

	if target <= 0 {
		return common.ErrInvalidAmount
	}

	return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
		created, err := client.CreateSavingsGoal(ctx, model.SavingsGoal{
			Name:         name,
			Icon:         icon,
			TargetAmount: model.Amount(target),
		})
		if err != nil {
			return err
		}

		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created goal %q with target %s",
			created.Name, cli.FormatAmount(created.TargetAmount.Float()))))
		return nil
	})
}

func goalsAddAmountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-amount <id> <amount>",
		Short: "Add savings to a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid goal id %q: %w", args[0], err)
			}
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			if amount <= 0 {
				return common.ErrInvalidAmount
			}

			return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
				if err := client.AddToSavingsGoal(ctx, id, amount); err != nil {
					return err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s to goal %d",
					cli.FormatAmount(amount), id)))
				return nil
			})
		},
	}
}

func goalsEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a goal's name or target",
		Args:  cobra.ExactArgs(1),
		RunE:  runGoalsEdit,
	}

	cmd.Flags().StringP("name", "t", "", "New goal name")
	cmd.Flags().Float64P("target", "a", 0, "New target amount")

	return cmd
}

func runGoalsEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid goal id %q: %w", args[0], err)
	}

	name, _ := cmd.Flags().GetString("name")
	target, _ := cmd.Flags().GetFloat64("target")
	if name == "" && target == 0 {
		return fmt.Errorf("nothing to update: pass --name or --target")
	}
	if cmd.Flags().Changed("target") && target <= 0 {
		return common.ErrInvalidAmount
	}

	return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
		updated, err := client.UpdateSavingsGoal(ctx, id, model.SavingsGoal{
			Name:         name,
			TargetAmount: model.Amount(target),
		})
		if err != nil {
			return err
		}

		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated goal %q", updated.Name)))
		return nil
	})
}

func goalsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid goal id %q: %w", args[0], err)
			}

			return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
				if err := client.DeleteSavingsGoal(ctx, id); err != nil {
					return err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted goal %d", id)))
				return nil
			})
		},
	}
}
