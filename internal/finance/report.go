package finance

import "time"

// Report is an ephemeral, derived aggregate. It is never persisted as a
// source of truth and is always recomputable from the base entities for a
// given company and period.
type Report struct {
	Period      ReportPeriod
	Financial   FinancialSummary
	Invoices    InvoiceSummary
	Contracts   ContractSummary
	Inventory   InventorySummary
	Banking     BankingSummary
	GeneratedAt time.Time
}

// ReportPeriod echoes the requested range back to the caller.
type ReportPeriod struct {
	Start time.Time
	End   time.Time
	Type  string
}

// AssembleReport composes the aggregator outputs into one payload. It is a
// pure function of its inputs: two calls with the same snapshot, period and
// generatedAt produce identical reports, and it is safe to call concurrently
// for different companies.
func AssembleReport(snapshot Snapshot, period Period, periodType string, generatedAt time.Time) Report {
	return Report{
		Period: ReportPeriod{
			Start: period.Start,
			End:   period.End,
			Type:  periodType,
		},
		Financial:   SummarizeTransactions(snapshot.Transactions, period),
		Invoices:    SummarizeInvoices(snapshot.Invoices),
		Contracts:   SummarizeContracts(snapshot.Contracts),
		Inventory:   SummarizeInventory(snapshot.Products),
		Banking:     SummarizeBanking(snapshot.Statements),
		GeneratedAt: generatedAt,
	}
}

// DashboardSummary is the entity-count rollup shown on the dashboard.
type DashboardSummary struct {
	TotalDocuments     int
	CompletedDocuments int
	TotalContracts     int
	ActiveContracts    int
	TotalInvoices      int
	PaidInvoices       int
	TotalProducts      int
	LowStockProducts   int
}

// SummarizeDashboard counts entities by their headline status.
func SummarizeDashboard(snapshot Snapshot) DashboardSummary {
	s := DashboardSummary{
		TotalDocuments: len(snapshot.Documents),
		TotalContracts: len(snapshot.Contracts),
		TotalInvoices:  len(snapshot.Invoices),
		TotalProducts:  len(snapshot.Products),
	}
	for _, d := range snapshot.Documents {
		if d.Status == "completed" {
			s.CompletedDocuments++
		}
	}
	for _, c := range snapshot.Contracts {
		if c.Status == "active" {
			s.ActiveContracts++
		}
	}
	for _, inv := range snapshot.Invoices {
		if inv.Status == InvoicePaid {
			s.PaidInvoices++
		}
	}
	for _, p := range snapshot.Products {
		if p.Stock <= p.MinStock {
			s.LowStockProducts++
		}
	}
	return s
}
