package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tdeshpande/finly/internal/model"
)

func TestRenderBudgetBanner(t *testing.T) {
	tests := []struct {
		name    string
		expense float64
		budget  float64
		want    string
	}{
		{name: "under budget", expense: 2000, budget: 10000, want: "Monthly budget"},
		{name: "alert band", expense: 5500, budget: 10000, want: "Halfway through your budget"},
		{name: "warning band", expense: 7000, budget: 10000, want: "Approaching your limit"},
		{name: "exceeded", expense: 12000, budget: 10000, want: "Budget exceeded!"},
		{name: "fallback limit when unset", expense: 12001, budget: 0, want: "Budget exceeded!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			banner := renderBudgetBanner(tt.expense, tt.budget)
			assert.Contains(t, banner, tt.want)
			assert.Contains(t, banner, "% used")
		})
	}
}

func TestRenderWeeklyChart(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	days := []model.DaySpend{
		{Day: "Fri", FullDate: "2026-03-13", Amount: 250},
		{Day: "Sat", FullDate: "2026-03-14", Amount: 500},
	}

	chart := renderWeeklyChart(days, now)
	assert.Contains(t, chart, "Fri")
	assert.Contains(t, chart, "Sat")
	assert.Equal(t, 2, strings.Count(chart, "\n"), "header plus one line per day")
}

func TestRenderWeeklyChartEmpty(t *testing.T) {
	chart := renderWeeklyChart(nil, time.Now())
	assert.Contains(t, chart, "No spending recorded")
}

func TestTransactionsCmdSubcommands(t *testing.T) {
	cmd := transactionsCmd()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["list"], "list subcommand should exist")
	assert.True(t, names["add"], "add subcommand should exist")
	assert.True(t, names["delete"], "delete subcommand should exist")
}
