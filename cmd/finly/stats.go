package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tdeshpande/finly/internal/api"
	"github.com/tdeshpande/finly/internal/cli"
	"github.com/tdeshpande/finly/internal/metrics"
	"github.com/tdeshpande/finly/internal/model"
	"github.com/tdeshpande/finly/internal/session"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show spending analytics",
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, _ []string) error {
	return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
		stats, err := client.AnalyticsStats(ctx)
		if err != nil {
			return err
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Total spent:  %s\n", cli.BoldStyle.Render(cli.FormatAmount(stats.Summary.TotalSpent.Float())))
		fmt.Fprintf(&b, "Daily average: %s\n", cli.FormatAmount(stats.Summary.AvgDaily.Float()))
		fmt.Fprintf(&b, "Transactions:  %d\n", stats.Summary.TransactionCount)

		if len(stats.CategoryDistribution) > 0 {
			b.WriteString("\nTop categories:\n")
			b.WriteString(renderCategoryDistribution(stats.CategoryDistribution))
		}

		if len(stats.MonthlyTrend) > 0 {
			b.WriteString("\nMonthly trend:\n")
			b.WriteString(renderMonthlyTrend(stats.MonthlyTrend))
		}

		fmt.Println(cli.RenderBox("Statistics", strings.TrimRight(b.String(), "\n")))
		return nil
	})
}

func renderCategoryDistribution(shares []model.CategoryShare) string {
	var total float64
	for _, s := range shares {
		total += s.Value.Float()
	}

	if len(shares) > metrics.TopCategoryLimit {
		shares = shares[:metrics.TopCategoryLimit]
	}

	var b strings.Builder
	for _, s := range shares {
		percent := 0.0
		if total > 0 {
			percent = s.Value.Float() / total * 100
		}
		fmt.Fprintf(&b, "  %-14s %s %5.1f%%  %s\n",
			s.Name,
			cli.ProgressBar(percent, 20),
			percent,
			cli.SubtleStyle.Render(cli.FormatAmount(s.Value.Float())))
	}
	return b.String()
}

func renderMonthlyTrend(trend []model.TrendPoint) string {
	var max float64
	for _, p := range trend {
		if p.Amount.Float() > max {
			max = p.Amount.Float()
		}
	}
	if max < 1 {
		max = 1
	}

	var b strings.Builder
	for _, p := range trend {
		fmt.Fprintf(&b, "  %-8s %s %s\n",
			p.Month,
			cli.ProgressBar(p.Amount.Float()/max*100, 20),
			cli.SubtleStyle.Render(cli.FormatAmount(p.Amount.Float())))
	}
	return b.String()
}
