package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tdeshpande/finly/internal/model"
)

func tx(title string, amount float64, typ model.TransactionType, category string) model.Transaction {
	t := model.Transaction{
		Title:  title,
		Amount: model.Amount(amount),
		Type:   typ,
	}
	if category != "" {
		t.Category = &model.Category{Name: category}
	}
	return t
}

func TestTotalByType(t *testing.T) {
	txns := []model.Transaction{
		tx("Salary", 50000, model.TransactionTypeIncome, ""),
		tx("Groceries", 1200, model.TransactionTypeExpense, "Food"),
		tx("Dinner", 800, model.TransactionTypeExpense, "Food"),
		tx("Freelance", 5000, model.TransactionTypeIncome, ""),
	}

	assert.InDelta(t, 55000, TotalByType(txns, model.TransactionTypeIncome), 0.0001)
	assert.InDelta(t, 2000, TotalByType(txns, model.TransactionTypeExpense), 0.0001)
}

func TestTotalByTypeEmpty(t *testing.T) {
	assert.Zero(t, TotalByType(nil, model.TransactionTypeExpense))
}

func TestTotalByTypePartitionsAllAmounts(t *testing.T) {
	// Every transaction is counted exactly once: income + expense = grand total.
	txns := []model.Transaction{
		tx("a", 100, model.TransactionTypeIncome, ""),
		tx("b", 250.25, model.TransactionTypeExpense, "Food"),
		tx("c", 0, model.TransactionTypeExpense, ""),
		tx("d", 999.75, model.TransactionTypeIncome, ""),
	}

	var grand float64
	for _, txn := range txns {
		grand += txn.Amount.Float()
	}

	sum := TotalByType(txns, model.TransactionTypeIncome) + TotalByType(txns, model.TransactionTypeExpense)
	assert.InDelta(t, grand, sum, 0.0001)
}

func TestCategoryBreakdown(t *testing.T) {
	txns := []model.Transaction{
		tx("Groceries", 3000, model.TransactionTypeExpense, "Food"),
		tx("Flight", 6000, model.TransactionTypeExpense, "Travel"),
		tx("Snacks", 1000, model.TransactionTypeExpense, "Food"),
		tx("Salary", 50000, model.TransactionTypeIncome, ""),
	}

	slices := CategoryBreakdown(txns, 0)
	assert.Len(t, slices, 2)

	// Sorted descending by amount.
	assert.Equal(t, "Travel", slices[0].Name)
	assert.InDelta(t, 6000, slices[0].Amount, 0.0001)
	assert.InDelta(t, 60, slices[0].Percentage, 0.0001)
	assert.Equal(t, "Food", slices[1].Name)
	assert.InDelta(t, 40, slices[1].Percentage, 0.0001)
}

func TestCategoryBreakdownPercentagesSumTo100(t *testing.T) {
	txns := []model.Transaction{
		tx("a", 33.33, model.TransactionTypeExpense, "Food"),
		tx("b", 123.45, model.TransactionTypeExpense, "Travel"),
		tx("c", 0.01, model.TransactionTypeExpense, "Bills"),
		tx("d", 7, model.TransactionTypeExpense, ""),
	}

	var sum float64
	for _, s := range CategoryBreakdown(txns, 0) {
		sum += s.Percentage
	}
	assert.InDelta(t, 100, sum, 0.0001)
}

func TestCategoryBreakdownZeroTotal(t *testing.T) {
	txns := []model.Transaction{
		tx("freebie", 0, model.TransactionTypeExpense, "Food"),
		tx("another", 0, model.TransactionTypeExpense, "Travel"),
	}

	for _, s := range CategoryBreakdown(txns, 0) {
		assert.Zero(t, s.Percentage)
	}
}

func TestCategoryBreakdownUncategorizedFallsBackToGeneral(t *testing.T) {
	txns := []model.Transaction{
		tx("mystery", 500, model.TransactionTypeExpense, ""),
	}

	slices := CategoryBreakdown(txns, 0)
	assert.Len(t, slices, 1)
	assert.Equal(t, "General", slices[0].Name)
}

func TestCategoryBreakdownTopN(t *testing.T) {
	txns := []model.Transaction{
		tx("a", 500, model.TransactionTypeExpense, "Food"),
		tx("b", 400, model.TransactionTypeExpense, "Travel"),
		tx("c", 300, model.TransactionTypeExpense, "Bills"),
		tx("d", 200, model.TransactionTypeExpense, "Fun"),
		tx("e", 100, model.TransactionTypeExpense, "Misc"),
	}

	slices := CategoryBreakdown(txns, TopCategoryLimit)
	assert.Len(t, slices, 4)
	assert.Equal(t, "Food", slices[0].Name)
	assert.Equal(t, "Fun", slices[3].Name)
}

func TestTopCategory(t *testing.T) {
	assert.Equal(t, "N/A", TopCategory(nil))

	slices := CategoryBreakdown([]model.Transaction{
		tx("a", 10, model.TransactionTypeExpense, "Food"),
		tx("b", 90, model.TransactionTypeExpense, "Travel"),
	}, 0)
	assert.Equal(t, "Travel", TopCategory(slices))
}
