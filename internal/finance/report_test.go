package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Transactions: []Transaction{
			tx("1000.00", TransactionIncome, day(2024, 3, 5)),
			tx("300.00", TransactionExpense, day(2024, 3, 10)),
		},
		Invoices: []Invoice{
			{Total: decimal.RequireFromString("1200.00"), Status: InvoicePaid},
			{Total: decimal.RequireFromString("800.00"), Status: InvoiceSent},
		},
		Contracts: []Contract{
			{Status: "active", Value: decimal.RequireFromString("5000")},
			{Status: "expired", Value: decimal.RequireFromString("2000")},
		},
		Products: []Product{
			{Stock: 2, MinStock: 5, UnitPrice: decimal.RequireFromString("40.00")},
		},
		Documents: []DocumentInfo{
			{Status: "completed"},
			{Status: "processing"},
		},
		Statements: []StatementInfo{
			{TransactionCount: 7},
		},
	}
}

func TestAssembleReport_ComposesAllSections(t *testing.T) {
	now := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	period := Period{Start: day(2024, 3, 1), End: day(2024, 4, 1)}

	got := AssembleReport(testSnapshot(), period, "monthly", now)

	assert.Equal(t, "monthly", got.Period.Type)
	assert.True(t, got.Financial.NetProfit.Equal(decimal.RequireFromString("700.00")))
	assert.Equal(t, 2, got.Invoices.Total)
	assert.True(t, got.Invoices.CollectionRate.Equal(decimal.RequireFromString("60")))
	assert.Equal(t, 1, got.Contracts.Active)
	assert.True(t, got.Contracts.TotalValue.Equal(decimal.RequireFromString("7000")))
	assert.True(t, got.Inventory.TotalValue.Equal(decimal.RequireFromString("80.00")))
	assert.Equal(t, 1, got.Inventory.LowStock)
	assert.Equal(t, 1, got.Banking.Statements)
	assert.Equal(t, 7, got.Banking.TotalTransactions)
	assert.Equal(t, now, got.GeneratedAt)
}

func TestAssembleReport_Idempotent(t *testing.T) {
	now := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	period := Period{Start: day(2024, 3, 1), End: day(2024, 4, 1)}
	snapshot := testSnapshot()

	first := AssembleReport(snapshot, period, "monthly", now)
	second := AssembleReport(snapshot, period, "monthly", now)

	assert.Equal(t, first, second)
}

func TestAssembleReport_EmptySnapshotHasNoNaN(t *testing.T) {
	now := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

	got := AssembleReport(Snapshot{}, Period{}, "monthly", now)

	assert.True(t, got.Financial.ProfitMargin.IsZero())
	assert.True(t, got.Invoices.CollectionRate.IsZero())
	assert.Zero(t, got.Inventory.LowStock)
}

func TestSummarizeDashboard_Counts(t *testing.T) {
	got := SummarizeDashboard(testSnapshot())

	assert.Equal(t, 2, got.TotalDocuments)
	assert.Equal(t, 1, got.CompletedDocuments)
	assert.Equal(t, 2, got.TotalContracts)
	assert.Equal(t, 1, got.ActiveContracts)
	assert.Equal(t, 2, got.TotalInvoices)
	assert.Equal(t, 1, got.PaidInvoices)
	assert.Equal(t, 1, got.TotalProducts)
	assert.Equal(t, 1, got.LowStockProducts)
}
