package report

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/finance"
)

// reportService is the service surface the report handlers need.
type reportService interface {
	ComputeReport(ctx context.Context, companyID uuid.UUID, start, end *time.Time, periodType string) (*finance.Report, error)
	Dashboard(ctx context.Context, companyID uuid.UUID) (*finance.DashboardSummary, error)
	ExportReport(ctx context.Context, companyID uuid.UUID, start, end *time.Time, periodType string) ([]byte, error)
}

// Report is the API response model for the financial report.
type Report struct {
	Period      ReportPeriod     `json:"period"`
	Financial   FinancialSummary `json:"financial"`
	Invoices    InvoiceSummary   `json:"invoices"`
	Contracts   ContractSummary  `json:"contracts"`
	Inventory   InventorySummary `json:"inventory"`
	Banking     BankingSummary   `json:"banking"`
	GeneratedAt string           `json:"generatedAt" doc:"RFC3339 generation time"`
}

// ReportPeriod echoes the requested range back to the caller.
type ReportPeriod struct {
	Start string `json:"startDate,omitempty" doc:"RFC3339 inclusive lower bound"`
	End   string `json:"endDate,omitempty" doc:"RFC3339 exclusive upper bound"`
	Type  string `json:"type"`
}

// FinancialSummary holds the income and expense totals as decimal strings.
type FinancialSummary struct {
	TotalIncome   string `json:"totalIncome"`
	TotalExpenses string `json:"totalExpenses"`
	NetProfit     string `json:"netProfit"`
	ProfitMargin  string `json:"profitMargin" doc:"Percentage"`
}

// InvoiceSummary holds the invoice metrics.
type InvoiceSummary struct {
	Total          int    `json:"total"`
	TotalValue     string `json:"totalValue"`
	Paid           int    `json:"paid"`
	Overdue        int    `json:"overdue"`
	CollectionRate string `json:"collectionRate" doc:"Percentage"`
}

// ContractSummary holds the contract metrics.
type ContractSummary struct {
	Total      int    `json:"total"`
	Active     int    `json:"active"`
	TotalValue string `json:"totalValue"`
}

// InventorySummary holds the inventory metrics.
type InventorySummary struct {
	TotalProducts int    `json:"totalProducts"`
	TotalValue    string `json:"totalValue"`
	LowStock      int    `json:"lowStock"`
}

// BankingSummary holds the statement counts.
type BankingSummary struct {
	Statements        int `json:"statements"`
	TotalTransactions int `json:"totalTransactions"`
}

// Dashboard is the API response model for the dashboard rollup.
type Dashboard struct {
	TotalDocuments     int `json:"totalDocuments"`
	CompletedDocuments int `json:"completedDocuments"`
	TotalContracts     int `json:"totalContracts"`
	ActiveContracts    int `json:"activeContracts"`
	TotalInvoices      int `json:"totalInvoices"`
	PaidInvoices       int `json:"paidInvoices"`
	TotalProducts      int `json:"totalProducts"`
	LowStockProducts   int `json:"lowStockProducts"`
}

func reportFromFinance(r *finance.Report) Report {
	out := Report{
		Period: ReportPeriod{Type: r.Period.Type},
		Financial: FinancialSummary{
			TotalIncome:   r.Financial.TotalIncome.StringFixed(2),
			TotalExpenses: r.Financial.TotalExpenses.StringFixed(2),
			NetProfit:     r.Financial.NetProfit.StringFixed(2),
			ProfitMargin:  r.Financial.ProfitMargin.StringFixed(2),
		},
		Invoices: InvoiceSummary{
			Total:          r.Invoices.Total,
			TotalValue:     r.Invoices.TotalValue.StringFixed(2),
			Paid:           r.Invoices.Paid,
			Overdue:        r.Invoices.Overdue,
			CollectionRate: r.Invoices.CollectionRate.StringFixed(2),
		},
		Contracts: ContractSummary{
			Total:      r.Contracts.Total,
			Active:     r.Contracts.Active,
			TotalValue: r.Contracts.TotalValue.StringFixed(2),
		},
		Inventory: InventorySummary{
			TotalProducts: r.Inventory.TotalProducts,
			TotalValue:    r.Inventory.TotalValue.StringFixed(2),
			LowStock:      r.Inventory.LowStock,
		},
		Banking: BankingSummary{
			Statements:        r.Banking.Statements,
			TotalTransactions: r.Banking.TotalTransactions,
		},
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
	}
	if !r.Period.Start.IsZero() {
		out.Period.Start = r.Period.Start.Format(time.RFC3339)
	}
	if !r.Period.End.IsZero() {
		out.Period.End = r.Period.End.Format(time.RFC3339)
	}
	return out
}

// parseBound parses an optional RFC3339 query bound.
func parseBound(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid "+name, err)
	}
	return &parsed, nil
}
