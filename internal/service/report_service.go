package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/xuri/excelize/v2"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// ReportService computes financial reports. It only reads; reports are
// derived values, recomputable at any time, and never persisted.
type ReportService struct {
	storage *storage.Storage
}

// NewReportService creates a new ReportService.
func NewReportService(store *storage.Storage) *ReportService {
	return &ReportService{storage: store}
}

// ComputeReport loads a snapshot of the company's records and aggregates it
// over the requested period. A nil bound leaves that side unbounded.
func (s *ReportService) ComputeReport(ctx context.Context, companyID uuid.UUID, start, end *time.Time, periodType string) (*finance.Report, error) {
	snapshot, err := s.loadSnapshot(ctx, companyID)
	if err != nil {
		return nil, err
	}

	period := finance.Period{}
	if start != nil {
		period.Start = *start
	}
	if end != nil {
		period.End = *end
	}
	if periodType == "" {
		periodType = "custom"
	}

	report := finance.AssembleReport(*snapshot, period, periodType, time.Now().UTC())
	return &report, nil
}

// Dashboard returns the entity-count rollup.
func (s *ReportService) Dashboard(ctx context.Context, companyID uuid.UUID) (*finance.DashboardSummary, error) {
	snapshot, err := s.loadSnapshot(ctx, companyID)
	if err != nil {
		return nil, err
	}
	summary := finance.SummarizeDashboard(*snapshot)
	return &summary, nil
}

// ExportReport renders the financial report as an xlsx workbook.
func (s *ReportService) ExportReport(ctx context.Context, companyID uuid.UUID, start, end *time.Time, periodType string) ([]byte, error) {
	report, err := s.ComputeReport(ctx, companyID, start, end, periodType)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Financial Report"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total income", report.Financial.TotalIncome.StringFixed(2)},
		{"Total expenses", report.Financial.TotalExpenses.StringFixed(2)},
		{"Net profit", report.Financial.NetProfit.StringFixed(2)},
		{"Profit margin %", report.Financial.ProfitMargin.StringFixed(2)},
		{"Invoices", report.Invoices.Total},
		{"Invoice value", report.Invoices.TotalValue.StringFixed(2)},
		{"Invoices paid", report.Invoices.Paid},
		{"Invoices overdue", report.Invoices.Overdue},
		{"Collection rate %", report.Invoices.CollectionRate.StringFixed(2)},
		{"Contracts", report.Contracts.Total},
		{"Active contracts", report.Contracts.Active},
		{"Contract value", report.Contracts.TotalValue.StringFixed(2)},
		{"Products", report.Inventory.TotalProducts},
		{"Inventory value", report.Inventory.TotalValue.StringFixed(2)},
		{"Low stock products", report.Inventory.LowStock},
		{"Bank statements", report.Banking.Statements},
		{"Bank transactions", report.Banking.TotalTransactions},
		{"Generated at", report.GeneratedAt.Format(time.RFC3339)},
	}
	for i, row := range rows {
		for j, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+j, i+1)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}
	_ = f.SetColWidth(sheetName, "A", "A", 24)
	_ = f.SetColWidth(sheetName, "B", "B", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// loadSnapshot fetches a bounded view of the company's records. The engine
// itself never touches storage.
func (s *ReportService) loadSnapshot(ctx context.Context, companyID uuid.UUID) (*finance.Snapshot, error) {
	if companyID == uuid.Nil {
		return nil, &finance.ValidationError{Field: "companyId", Reason: "required"}
	}
	company, err := s.storage.Companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, &finance.NotFoundError{Entity: "company", ID: companyID.String()}
	}

	docTxs, err := s.storage.Documents.ListTransactions(ctx, companyID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.storage.Invoices.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	contracts, err := s.storage.Contracts.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	products, err := s.storage.Products.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	documents, err := s.storage.Documents.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	statements, err := s.storage.Statements.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	snapshot := &finance.Snapshot{}
	for _, tx := range docTxs {
		snapshot.Transactions = append(snapshot.Transactions, finance.Transaction{
			ID:          tx.ID.String(),
			Description: tx.Description,
			Amount:      tx.Amount,
			Type:        finance.TransactionType(tx.Type),
			Category:    tx.Category,
			Date:        tx.Date,
			SourceID:    tx.DocumentID.String(),
		})
	}
	for _, invoice := range invoices {
		snapshot.Invoices = append(snapshot.Invoices, finance.Invoice{
			ID:        invoice.ID.String(),
			Number:    invoice.Number,
			ClientID:  invoice.ClientID,
			Total:     invoice.Total,
			Status:    finance.InvoiceStatus(invoice.Status),
			IssueDate: invoice.IssueDate,
			DueDate:   invoice.DueDate,
		})
	}
	for _, contract := range contracts {
		snapshot.Contracts = append(snapshot.Contracts, finance.Contract{
			ID:     contract.ID.String(),
			Status: contract.Status,
			Value:  contract.Value,
		})
	}
	for _, product := range products {
		snapshot.Products = append(snapshot.Products, finance.Product{
			ID:        product.ID.String(),
			Stock:     product.Stock,
			MinStock:  product.MinStock,
			UnitPrice: product.UnitPrice,
		})
	}
	for _, doc := range documents {
		snapshot.Documents = append(snapshot.Documents, finance.DocumentInfo{
			ID:     doc.ID.String(),
			Status: doc.Status,
		})
	}
	for _, statement := range statements {
		snapshot.Statements = append(snapshot.Statements, finance.StatementInfo{
			ID:               statement.ID.String(),
			TransactionCount: statement.TotalTransactions,
		})
	}
	return snapshot, nil
}
