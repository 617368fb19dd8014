package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"

	"github.com/tdeshpande/finly/internal/common"
	"github.com/tdeshpande/finly/internal/model"
)

// Login exchanges username/password for a token pair and saves it. A 401
// here means bad credentials, not an expired session, so it does not go
// through the central auth-failure handling.
func (c *Client) Login(ctx context.Context, username, password string) error {
	payload := map[string]string{
		"username": username,
		"password": password,
	}

	body, err := c.do(ctx, http.MethodPost, "/token/", nil, payload, false)
	if err != nil {
		return common.NewUserError("login failed", err)
	}

	var tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := json.Unmarshal(body, &tokens); err != nil {
		return fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokens.Access == "" {
		return fmt.Errorf("token response missing access token")
	}

	if c.creds == nil {
		return fmt.Errorf("no credential store configured")
	}
	if err := c.creds.SaveToken(&oauth2.Token{
		AccessToken:  tokens.Access,
		RefreshToken: tokens.Refresh,
		TokenType:    "Bearer",
	}); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	// A fresh identity must not observe the previous session's reads.
	c.cache.invalidateAll()
	return nil
}

// Logout discards the stored credential and cached state.
func (c *Client) Logout() error {
	c.cache.invalidateAll()
	if c.creds == nil {
		return nil
	}
	return c.creds.ClearToken()
}

// Transactions lists all transactions, newest first per the backend.
func (c *Client) Transactions(ctx context.Context) ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := c.get(ctx, "/transactions/", nil, &txns); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return txns, nil
}

// CreateTransaction records a new transaction.
func (c *Client) CreateTransaction(ctx context.Context, tx model.NewTransaction) (model.Transaction, error) {
	var created model.Transaction
	if err := c.mutate(ctx, http.MethodPost, "/transactions/", tx, &created); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return created, nil
}

// UpdateTransaction applies a partial update to a transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, tx model.NewTransaction) (model.Transaction, error) {
	var updated model.Transaction
	path := fmt.Sprintf("/transactions/%d/", id)
	if err := c.mutate(ctx, http.MethodPatch, path, tx, &updated); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to update transaction %d: %w", id, err)
	}
	return updated, nil
}

// DeleteTransaction removes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/transactions/%d/", id)
	if err := c.mutate(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	return nil
}

// DashboardStats fetches the pre-aggregated home screen summary.
func (c *Client) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.get(ctx, "/transactions/dashboard_stats/", nil, &stats); err != nil {
		return model.DashboardStats{}, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}
	return stats, nil
}

// AnalyticsStats fetches the pre-aggregated statistics screen payload.
func (c *Client) AnalyticsStats(ctx context.Context) (model.AnalyticsStats, error) {
	var stats model.AnalyticsStats
	if err := c.get(ctx, "/transactions/analytics_stats/", nil, &stats); err != nil {
		return model.AnalyticsStats{}, fmt.Errorf("failed to fetch analytics stats: %w", err)
	}
	return stats, nil
}

// Categories lists all categories.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.get(ctx, "/categories/", nil, &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// CategoryBudgetStats fetches per-category spending for the current month.
func (c *Client) CategoryBudgetStats(ctx context.Context) ([]model.CategoryBudgetStat, error) {
	var stats []model.CategoryBudgetStat
	if err := c.get(ctx, "/categories/budget_stats/", nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch budget stats: %w", err)
	}
	return stats, nil
}

// MonthlyBudget fetches the monthly spending limit. The endpoint returns
// either a bare object or a list; both are normalized here so callers only
// ever see the canonical shape.
func (c *Client) MonthlyBudget(ctx context.Context) (model.MonthlyBudget, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/monthly-budget/", nil, &raw); err != nil {
		return model.MonthlyBudget{}, fmt.Errorf("failed to fetch monthly budget: %w", err)
	}
	return model.NormalizeMonthlyBudget(raw)
}

// SetMonthlyBudget updates the monthly spending limit and returns the saved
// value, normalized the same way as the getter.
func (c *Client) SetMonthlyBudget(ctx context.Context, amount float64) (model.MonthlyBudget, error) {
	payload := map[string]float64{"amount": amount}
	var raw json.RawMessage
	if err := c.mutate(ctx, http.MethodPost, "/monthly-budget/", payload, &raw); err != nil {
		return model.MonthlyBudget{}, fmt.Errorf("failed to set monthly budget: %w", err)
	}
	return model.NormalizeMonthlyBudget(raw)
}

// SavingsGoals lists all savings goals.
func (c *Client) SavingsGoals(ctx context.Context) ([]model.SavingsGoal, error) {
	var goals []model.SavingsGoal
	if err := c.get(ctx, "/savings-goals/", nil, &goals); err != nil {
		return nil, fmt.Errorf("failed to fetch savings goals: %w", err)
	}
	return goals, nil
}

// CreateSavingsGoal creates a savings goal.
func (c *Client) CreateSavingsGoal(ctx context.Context, goal model.SavingsGoal) (model.SavingsGoal, error) {
	var created model.SavingsGoal
	if err := c.mutate(ctx, http.MethodPost, "/savings-goals/", goal, &created); err != nil {
		return model.SavingsGoal{}, fmt.Errorf("failed to create savings goal: %w", err)
	}
	return created, nil
}

// UpdateSavingsGoal applies a partial update to a savings goal.
func (c *Client) UpdateSavingsGoal(ctx context.Context, id int64, goal model.SavingsGoal) (model.SavingsGoal, error) {
	var updated model.SavingsGoal
	path := fmt.Sprintf("/savings-goals/%d/", id)
	if err := c.mutate(ctx, http.MethodPatch, path, goal, &updated); err != nil {
		return model.SavingsGoal{}, fmt.Errorf("failed to update savings goal %d: %w", id, err)
	}
	return updated, nil
}

// DeleteSavingsGoal removes a savings goal.
func (c *Client) DeleteSavingsGoal(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/savings-goals/%d/", id)
	if err := c.mutate(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete savings goal %d: %w", id, err)
	}
	return nil
}

// AddToSavingsGoal adds an amount to a goal's saved total.
func (c *Client) AddToSavingsGoal(ctx context.Context, id int64, amount float64) error {
	path := fmt.Sprintf("/savings-goals/%d/add_amount/", id)
	payload := map[string]float64{"amount": amount}
	if err := c.mutate(ctx, http.MethodPost, path, payload, nil); err != nil {
		return fmt.Errorf("failed to add to savings goal %d: %w", id, err)
	}
	return nil
}

// PaymentMethods lists all payment methods.
func (c *Client) PaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	var methods []model.PaymentMethod
	if err := c.get(ctx, "/payment-methods/", nil, &methods); err != nil {
		return nil, fmt.Errorf("failed to fetch payment methods: %w", err)
	}
	return methods, nil
}

// CreatePaymentMethod adds a payment method.
func (c *Client) CreatePaymentMethod(ctx context.Context, pm model.PaymentMethod) (model.PaymentMethod, error) {
	var created model.PaymentMethod
	if err := c.mutate(ctx, http.MethodPost, "/payment-methods/", pm, &created); err != nil {
		return model.PaymentMethod{}, fmt.Errorf("failed to create payment method: %w", err)
	}
	return created, nil
}

// DeletePaymentMethod removes a payment method.
func (c *Client) DeletePaymentMethod(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/payment-methods/%d/", id)
	if err := c.mutate(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete payment method %d: %w", id, err)
	}
	return nil
}

// Notifications lists notifications, newest first.
func (c *Client) Notifications(ctx context.Context) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := c.get(ctx, "/notifications/", nil, &notifications); err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead marks a single notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/notifications/%d/", id)
	payload := map[string]bool{"is_read": true}
	if err := c.mutate(ctx, http.MethodPatch, path, payload, nil); err != nil {
		return fmt.Errorf("failed to mark notification %d read: %w", id, err)
	}
	return nil
}

// User fetches the authenticated account.
func (c *Client) User(ctx context.Context) (model.User, error) {
	var user model.User
	if err := c.get(ctx, "/user/", nil, &user); err != nil {
		return model.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

// ProfileUpdate carries partial account edits. Nil fields are left alone.
type ProfileUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// UpdateProfile applies a partial update to the authenticated account.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (model.User, error) {
	var user model.User
	if err := c.mutate(ctx, http.MethodPatch, "/update-profile/", update, &user); err != nil {
		return model.User{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// TransactionsWithQuery lists transactions filtered by query parameters
// (e.g. search). Distinct queries cache independently.
func (c *Client) TransactionsWithQuery(ctx context.Context, query url.Values) ([]model.Transaction, error) {
	var txns []model.Transaction
	if err := c.get(ctx, "/transactions/", query, &txns); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return txns, nil
}
