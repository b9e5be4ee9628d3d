package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.New(100, 0)

// Period is a date range with inclusive start and exclusive end. A zero bound
// leaves that side unbounded.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	if !p.Start.IsZero() && t.Before(p.Start) {
		return false
	}
	if !p.End.IsZero() && !t.Before(p.End) {
		return false
	}
	return true
}

// FinancialSummary holds the income/expense totals for a period. All sums are
// exact decimals; no float accumulation.
type FinancialSummary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
	ProfitMargin  decimal.Decimal
}

// SummarizeTransactions sums transactions by type within the period.
// Expenses contribute by absolute value regardless of stored sign.
// ProfitMargin is defined as 0 when there is no income.
func SummarizeTransactions(txs []Transaction, period Period) FinancialSummary {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range txs {
		if !period.Contains(tx.Date) {
			continue
		}
		if tx.Type == TransactionIncome {
			income = income.Add(tx.Amount)
		} else {
			expenses = expenses.Add(tx.Amount.Abs())
		}
	}

	net := income.Sub(expenses)
	margin := decimal.Zero
	if income.IsPositive() {
		margin = net.Div(income).Mul(hundred)
	}
	return FinancialSummary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetProfit:     net,
		ProfitMargin:  margin,
	}
}

// InvoiceSummary holds invoice counts and the collection rate.
type InvoiceSummary struct {
	Total          int
	TotalValue     decimal.Decimal
	Paid           int
	Overdue        int
	CollectionRate decimal.Decimal
}

// SummarizeInvoices computes invoice metrics over the whole collection.
// CollectionRate is paid value over total value as a percentage, 0 when
// there is no invoice value.
func SummarizeInvoices(invoices []Invoice) InvoiceSummary {
	totalValue := decimal.Zero
	paidValue := decimal.Zero
	paid := 0
	overdue := 0
	for _, inv := range invoices {
		totalValue = totalValue.Add(inv.Total)
		switch inv.Status {
		case InvoicePaid:
			paid++
			paidValue = paidValue.Add(inv.Total)
		case InvoiceOverdue:
			overdue++
		}
	}

	rate := decimal.Zero
	if totalValue.IsPositive() {
		rate = paidValue.Div(totalValue).Mul(hundred)
	}
	return InvoiceSummary{
		Total:          len(invoices),
		TotalValue:     totalValue,
		Paid:           paid,
		Overdue:        overdue,
		CollectionRate: rate,
	}
}

// ContractSummary holds contract counts and value.
type ContractSummary struct {
	Total      int
	Active     int
	TotalValue decimal.Decimal
}

// SummarizeContracts counts active contracts but sums value across ALL
// statuses. The asymmetry is a deliberate reporting choice inherited from
// the product, not a bug.
func SummarizeContracts(contracts []Contract) ContractSummary {
	total := decimal.Zero
	active := 0
	for _, c := range contracts {
		total = total.Add(c.Value)
		if c.Status == "active" {
			active++
		}
	}
	return ContractSummary{
		Total:      len(contracts),
		Active:     active,
		TotalValue: total,
	}
}

// InventorySummary holds stock metrics.
type InventorySummary struct {
	TotalProducts int
	TotalValue    decimal.Decimal
	LowStock      int
}

// SummarizeInventory values stock at unit price and counts products at or
// below their minimum stock level.
func SummarizeInventory(products []Product) InventorySummary {
	value := decimal.Zero
	lowStock := 0
	for _, p := range products {
		value = value.Add(p.UnitPrice.Mul(decimal.NewFromInt(p.Stock)))
		if p.Stock <= p.MinStock {
			lowStock++
		}
	}
	return InventorySummary{
		TotalProducts: len(products),
		TotalValue:    value,
		LowStock:      lowStock,
	}
}

// BankingSummary holds statement counts.
type BankingSummary struct {
	Statements        int
	TotalTransactions int
}

// SummarizeBanking counts statements and their nested transactions.
func SummarizeBanking(statements []StatementInfo) BankingSummary {
	total := 0
	for _, s := range statements {
		total += s.TransactionCount
	}
	return BankingSummary{
		Statements:        len(statements),
		TotalTransactions: total,
	}
}
