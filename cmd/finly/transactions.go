package main

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tdeshpande/finly/internal/api"
	"github.com/tdeshpande/finly/internal/cli"
	"github.com/tdeshpande/finly/internal/common"
	"github.com/tdeshpande/finly/internal/icons"
	"github.com/tdeshpande/finly/internal/metrics"
	"github.com/tdeshpande/finly/internal/model"
	"github.com/tdeshpande/finly/internal/session"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "List and manage transactions",
	}

	cmd.AddCommand(transactionsListCmd())
	cmd.AddCommand(transactionsAddCmd())
	cmd.AddCommand(transactionsDeleteCmd())

	return cmd
}

func transactionsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions with a spending breakdown",
		RunE:  runTransactionsList,
	}

	cmd.Flags().Bool("today", false, "Only show today's transactions")
	cmd.Flags().String("search", "", "Filter transactions by title")
	cmd.Flags().IntP("limit", "n", 0, "Maximum number of transactions to show")

	_ = viper.BindPFlag("transactions.today", cmd.Flags().Lookup("today"))
	_ = viper.BindPFlag("transactions.search", cmd.Flags().Lookup("search"))
	_ = viper.BindPFlag("transactions.limit", cmd.Flags().Lookup("limit"))

	return cmd
}

func runTransactionsList(cmd *cobra.Command, _ []string) error {
	return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
		var txns []model.Transaction
		var err error

		if search := viper.GetString("transactions.search"); search != "" {
			query := url.Values{}
			query.Set("search", search)
			txns, err = client.TransactionsWithQuery(ctx, query)
		} else {
			txns, err = client.Transactions(ctx)
		}
		if err != nil {
			return err
		}

		if viper.GetBool("transactions.today") {
			txns = metrics.TodayTransactions(txns, time.Now(), metrics.TodayActivityLimit)
		}
		if limit := viper.GetInt("transactions.limit"); limit > 0 && len(txns) > limit {
			txns = txns[:limit]
		}

		if len(txns) == 0 {
			fmt.Println(cli.FormatInfo("No transactions found."))
			return nil
		}

		var b strings.Builder
		for _, tx := range txns {
			sign := "-"
			style := cli.ErrorStyle
			if tx.Type == model.TransactionTypeIncome {
				sign = "+"
				style = cli.SuccessStyle
			}

			icon := icons.Glyph("")
			if tx.Category != nil {
				icon = icons.Glyph(tx.Category.Icon)
			}

			fmt.Fprintf(&b, "%4d  %s %-24s %-12s %-10s %s\n",
				tx.ID,
				icon,
				tx.Title,
				cli.SubtleStyle.Render(tx.CategoryName()),
				cli.SubtleStyle.Render(tx.Date.Local().Format("02 Jan")),
				style.Render(sign+cli.FormatAmount(tx.Amount.Float())))
		}

		b.WriteString("\n" + renderSpendingSummary(txns))
		fmt.Println(cli.RenderBox("Transactions", b.String()))
		return nil
	})
}

// renderSpendingSummary shows total spend, the top category, and the
// top-four category breakdown.
func renderSpendingSummary(txns []model.Transaction) string {
	totalSpent := metrics.TotalByType(txns, model.TransactionTypeExpense)
	slices := metrics.CategoryBreakdown(txns, metrics.TopCategoryLimit)

	var b strings.Builder
	fmt.Fprintf(&b, "Total spent: %s", cli.BoldStyle.Render(cli.FormatAmount(totalSpent)))
	fmt.Fprintf(&b, "   Top category: %s\n", cli.BoldStyle.Render(metrics.TopCategory(slices)))

	for _, s := range slices {
		fmt.Fprintf(&b, "  %-14s %s %5.1f%%\n",
			s.Name,
			cli.ProgressBar(s.Percentage, 20),
			s.Percentage)
	}
	return strings.TrimRight(b.String(), "\n")
}

func transactionsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record an income or expense transaction.

Amounts must be positive; the transaction type determines the direction.`,
		RunE: runTransactionsAdd,
	}

	cmd.Flags().StringP("title", "t", "", "Transaction title (required)")
	cmd.Flags().Float64P("amount", "a", 0, "Amount (required, positive)")
	cmd.Flags().String("type", "expense", "Transaction type (income, expense)")
	cmd.Flags().Int64("category", 0, "Category id")
	cmd.Flags().Int64("payment-method", 0, "Payment method id")
	cmd.Flags().String("date", "", "Transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringP("description", "d", "", "Optional description")

	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runTransactionsAdd(cmd *cobra.Command, _ []string) error {
	title, _ := cmd.Flags().GetString("title")
	amount, _ := cmd.Flags().GetFloat64("amount")
	txType, _ := cmd.Flags().GetString("type")
	categoryID, _ := cmd.Flags().GetInt64("category")
	paymentMethodID, _ := cmd.Flags().GetInt64("payment-method")
	dateStr, _ := cmd.Flags().GetString("date")
	description, _ := cmd.Flags().GetString("description")

	// Validate before any network call
	if amount <= 0 {
		return common.ErrInvalidAmount
	}
	typ := model.TransactionType(txType)
	if !typ.Valid() {
		return common.ErrInvalidType
	}

	date := time.Now()
	if dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", dateStr, err)
		}
		date = parsed
	}

	tx := model.NewTransaction{
		Title:       title,
		Amount:      amount,
		Type:        typ,
		Date:        date,
		Description: description,
	}
	if categoryID > 0 {
		tx.CategoryID = &categoryID
	}
	if paymentMethodID > 0 {
		tx.PaymentMethodID = &paymentMethodID
	}

	return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
		created, err := client.CreateTransaction(ctx, tx)
		if err != nil {
			return err
		}

		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s of %s (id %d)",
			created.Type, cli.FormatAmount(created.Amount.Float()), created.ID)))
		return nil
	})
}

func transactionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q: %w", args[0], err)
			}

			return withClient(cmd, func(ctx context.Context, client *api.Client, _ *session.Store) error {
				if err := client.DeleteTransaction(ctx, id); err != nil {
					return err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted transaction %d", id)))
				return nil
			})
		},
	}
}
