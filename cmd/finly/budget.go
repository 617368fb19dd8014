package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tdeshpande/finly/internal/api"
	"github.com/tdeshpande/finly/internal/cli"
	"github.com/tdeshpande/finly/internal/common"
	"github.com/tdeshpande/finly/internal/metrics"
	"github.com/tdeshpande/finly/internal/model"
	"github.com/tdeshpande/finly/internal/session"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show or set the monthly budget",
		RunE:  runBudgetShow,
	}

	cmd.AddCommand(budgetShowCmd())
	cmd.AddCommand(budgetSetCmd())

	return cmd
}

func budgetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show budget usage per category and today's spending",
		RunE:  runBudgetShow,
	}
}

func runBudgetShow(cmd *cobra.Command, _ []string) error {
	return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
		budget, err := client.MonthlyBudget(ctx)
		if err != nil {
			return err
		}

		stats, err := client.CategoryBudgetStats(ctx)
		if err != nil {
			return err
		}

		txns, err := client.Transactions(ctx)
		if err != nil {
			return err
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Monthly budget: %s\n\n", cli.BoldStyle.Render(cli.FormatAmount(budget.Amount.Float())))

		if len(stats) > 0 {
			b.WriteString("Per-category usage:\n")
			for _, s := range stats {
				status := metrics.Utilization(s.Amount.Float(), s.Budget.Float())
				fmt.Fprintf(&b, "  %-14s %s %s of %s\n",
					s.Category,
					bandStyle(status.Band).Render(cli.ProgressBar(status.FillPercent, 20)),
					cli.FormatAmount(s.Amount.Float()),
					cli.FormatAmount(s.Budget.Float()))
			}
			b.WriteString("\n")
		}

		today := metrics.TodayTransactions(txns, time.Now(), metrics.TodayActivityLimit)
		if len(today) == 0 {
			b.WriteString(cli.SubtleStyle.Render("No spending recorded today."))
		} else {
			b.WriteString("Today:\n")
			for _, tx := range today {
				sign := "-"
				if tx.Type == model.TransactionTypeIncome {
					sign = "+"
				}
				fmt.Fprintf(&b, "  %-24s %s\n", tx.Title, sign+cli.FormatAmount(tx.Amount.Float()))
			}
		}

		fmt.Println(cli.RenderBox("Budget", strings.TrimRight(b.String(), "\n")))
		return nil
	})
}

func bandStyle(band metrics.Band) lipgloss.Style {
	switch band {
	case metrics.BandExceeded:
		return cli.ErrorStyle
	case metrics.BandWarning, metrics.BandAlert:
		return cli.WarningStyle
	default:
		return cli.SuccessStyle
	}
}

func budgetSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the monthly budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			if amount <= 0 {
				return common.ErrInvalidAmount
			}

			return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
				budget, err := client.SetMonthlyBudget(ctx, amount)
				if err != nil {
					return err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Monthly budget set to %s",
					cli.FormatAmount(budget.Amount.Float()))))
				return nil
			})
		},
	}
}
