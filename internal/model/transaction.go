// Package model defines the domain records exchanged with the finance backend.
package model

import "time"

// TransactionType indicates whether a transaction is income or expense.
type TransactionType string

const (
	// TransactionTypeIncome represents money coming in.
	TransactionTypeIncome TransactionType = "income"
	// TransactionTypeExpense represents money going out.
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the two known values.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single financial transaction.
type Transaction struct {
	Date          time.Time       `json:"date"`
	Category      *Category       `json:"category"`
	PaymentMethod *PaymentMethod  `json:"payment_method"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Type          TransactionType `json:"transaction_type"`
	ID            int64           `json:"id"`
	Amount        Amount          `json:"amount"`
}

// CategoryName returns the category name, falling back to "General"
// for uncategorized transactions.
func (t Transaction) CategoryName() string {
	if t.Category == nil || t.Category.Name == "" {
		return "General"
	}
	return t.Category.Name
}

// NewTransaction is the payload for creating a transaction. Category and
// payment method are sent by id; the backend echoes back expanded records.
type NewTransaction struct {
	Date            time.Time       `json:"date"`
	CategoryID      *int64          `json:"category_id,omitempty"`
	PaymentMethodID *int64          `json:"payment_method_id,omitempty"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	Type            TransactionType `json:"transaction_type"`
	Amount          float64         `json:"amount"`
}
