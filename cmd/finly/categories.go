package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tdeshpande/finly/internal/api"
	"github.com/tdeshpande/finly/internal/cli"
	"github.com/tdeshpande/finly/internal/icons"
	"github.com/tdeshpande/finly/internal/metrics"
	"github.com/tdeshpande/finly/internal/session"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List spending categories",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE:  runCategoriesList,
	})

	return cmd
}

func runCategoriesList(cmd *cobra.Command, _ []string) error {
	return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
		categories, err := client.Categories(ctx)
		if err != nil {
			return err
		}

		if len(categories) == 0 {
			fmt.Println(cli.FormatInfo("No categories found."))
			return nil
		}

		var b strings.Builder
		for _, c := range categories {
			kind := "expense"
			if c.IsIncome {
				kind = "income"
			}

			swatch := lipgloss.NewStyle().
				Foreground(lipgloss.Color(metrics.CategoryColor(c.Name))).
				Render("●")

			fmt.Fprintf(&b, "%4d  %s %s %-20s %-8s", c.ID, swatch, icons.Glyph(c.Icon), c.Name,
				cli.SubtleStyle.Render(kind))
			if c.BudgetLimit > 0 {
				fmt.Fprintf(&b, " budget %s", cli.FormatAmount(c.BudgetLimit.Float()))
			}
			b.WriteString("\n")
		}

		fmt.Println(cli.RenderBox("Categories", strings.TrimRight(b.String(), "\n")))
		return nil
	})
}
