package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tdeshpande/finly/internal/api"
	"github.com/tdeshpande/finly/internal/cli"
	"github.com/tdeshpande/finly/internal/metrics"
	"github.com/tdeshpande/finly/internal/model"
	"github.com/tdeshpande/finly/internal/session"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"home"},
		Short:   "Show your balance, budget, and weekly spending",
		RunE:    runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
		stats, err := client.DashboardStats(ctx)
		if err != nil {
			return err
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Balance:  %s\n", cli.BoldStyle.Render(cli.FormatAmount(stats.Balance.Float())))
		fmt.Fprintf(&b, "Income:   %s\n", cli.SuccessStyle.Render(cli.FormatAmount(stats.Income.Float())))
		fmt.Fprintf(&b, "Expense:  %s\n", cli.ErrorStyle.Render(cli.FormatAmount(stats.Expense.Float())))

		change := stats.MonthChange.Float()
		if change >= 0 {
			fmt.Fprintf(&b, "This month: %s\n", cli.SuccessStyle.Render(fmt.Sprintf("+%s", cli.FormatAmount(change))))
		} else {
			fmt.Fprintf(&b, "This month: %s\n", cli.ErrorStyle.Render(cli.FormatAmount(change)))
		}

		b.WriteString("\n" + renderBudgetBanner(stats.Expense.Float(), stats.TotalBudget.Float()))
		b.WriteString("\n\n" + renderWeeklyChart(stats.WeeklySpending, time.Now()))

		if len(stats.RecentTransactions) > 0 {
			b.WriteString("\n\nRecent activity:\n")
			for _, tx := range stats.RecentTransactions {
				sign := "-"
				style := cli.ErrorStyle
				if tx.Type == model.TransactionTypeIncome {
					sign = "+"
					style = cli.SuccessStyle
				}
				fmt.Fprintf(&b, "  %-24s %-12s %s\n",
					tx.Title,
					cli.SubtleStyle.Render(tx.CategoryName()),
					style.Render(sign+cli.FormatAmount(tx.Amount.Float())))
			}
		}

		fmt.Println(cli.RenderBox(cli.WalletIcon+" Dashboard", b.String()))
		return nil
	})
}

// renderBudgetBanner renders the monthly budget bar with its severity band.
func renderBudgetBanner(expense, totalBudget float64) string {
	status := metrics.Utilization(expense, totalBudget)

	var style = cli.SubtleStyle
	var label string
	switch status.Band {
	case metrics.BandExceeded:
		style = cli.ErrorStyle
		label = "Budget exceeded!"
	case metrics.BandWarning:
		style = cli.WarningStyle
		label = "Approaching your limit"
	case metrics.BandAlert:
		style = cli.WarningStyle
		label = "Halfway through your budget"
	default:
		label = "Monthly budget"
	}

	bar := cli.ProgressBar(status.FillPercent, 30)
	return fmt.Sprintf("%s\n%s %s",
		style.Render(label),
		style.Render(bar),
		style.Render(fmt.Sprintf("%d%% used", status.DisplayPercent())))
}

// renderWeeklyChart renders the last seven days as horizontal bars, with
// today's bucket highlighted.
func renderWeeklyChart(days []model.DaySpend, now time.Time) string {
	if len(days) == 0 {
		return cli.SubtleStyle.Render("No spending recorded this week.")
	}

	bars, _ := metrics.WeeklySeries(days, now)

	var b strings.Builder
	b.WriteString("Last 7 days:\n")
	for _, bar := range bars {
		style := cli.SubtleStyle
		if bar.IsToday {
			style = cli.BoldStyle.Foreground(cli.PrimaryColor)
		}

		rendered := cli.ProgressBar(bar.HeightPercent, 20)
		fmt.Fprintf(&b, "  %s %s %s\n",
			style.Render(fmt.Sprintf("%-3s", bar.Day)),
			style.Render(rendered),
			style.Render(cli.FormatAmount(bar.Amount)))
	}
	return strings.TrimRight(b.String(), "\n")
}
