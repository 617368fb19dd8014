package model

// PaymentMethod represents a stored payment method (card, UPI, cash, ...).
type PaymentMethod struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	ID    int64  `json:"id"`
}
