package report

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) ComputeReport(ctx context.Context, companyID uuid.UUID, start, end *time.Time, periodType string) (*finance.Report, error) {
	args := m.Called(ctx, companyID, start, end, periodType)
	report, _ := args.Get(0).(*finance.Report)
	return report, args.Error(1)
}

func (m *mockReportService) Dashboard(ctx context.Context, companyID uuid.UUID) (*finance.DashboardSummary, error) {
	args := m.Called(ctx, companyID)
	summary, _ := args.Get(0).(*finance.DashboardSummary)
	return summary, args.Error(1)
}

func (m *mockReportService) ExportReport(ctx context.Context, companyID uuid.UUID, start, end *time.Time, periodType string) ([]byte, error) {
	args := m.Called(ctx, companyID, start, end, periodType)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func newTestAPI(t *testing.T, svc reportService, companyID uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, middleware.WithIdentity(ctx.Context(), uuid.Must(uuid.NewV4()), companyID)))
	})
	NewFinancialReportHandler(svc).Register(api)
	NewDashboardHandler(svc).Register(api)
	NewExportReportHandler(svc).Register(api)
	return api
}

func sampleReport(generatedAt time.Time) *finance.Report {
	return &finance.Report{
		Period: finance.ReportPeriod{Type: "custom"},
		Financial: finance.FinancialSummary{
			TotalIncome:   decimal.RequireFromString("1000"),
			TotalExpenses: decimal.RequireFromString("400"),
			NetProfit:     decimal.RequireFromString("600"),
			ProfitMargin:  decimal.RequireFromString("60"),
		},
		Invoices: finance.InvoiceSummary{
			Total:          4,
			TotalValue:     decimal.RequireFromString("4000"),
			Paid:           1,
			Overdue:        1,
			CollectionRate: decimal.RequireFromString("25"),
		},
		Contracts: finance.ContractSummary{Total: 3, Active: 1, TotalValue: decimal.RequireFromString("5000")},
		Inventory: finance.InventorySummary{TotalProducts: 2, TotalValue: decimal.RequireFromString("750"), LowStock: 1},
		Banking:   finance.BankingSummary{Statements: 2, TotalTransactions: 7},
		GeneratedAt: generatedAt,
	}
}

func TestHTTP_FinancialReport_Success(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockReportService)
	mockSvc.On("ComputeReport", mock.Anything, companyID,
		mock.MatchedBy(func(tm *time.Time) bool { return tm != nil && tm.Equal(start) }),
		mock.MatchedBy(func(tm *time.Time) bool { return tm != nil && tm.Equal(end) }),
		"").Return(sampleReport(time.Now().UTC()), nil)

	resp := newTestAPI(t, mockSvc, companyID).Get(
		"/v1/reports/financial?startDate=" + start.Format(time.RFC3339) + "&endDate=" + end.Format(time.RFC3339),
	)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Report
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "1000.00", body.Financial.TotalIncome)
	assert.Equal(t, "600.00", body.Financial.NetProfit)
	assert.Equal(t, "25.00", body.Invoices.CollectionRate)
	assert.Equal(t, 7, body.Banking.TotalTransactions)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_FinancialReport_InvalidStartDate(t *testing.T) {
	mockSvc := new(mockReportService)

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Get("/v1/reports/financial?startDate=not-a-date")

	// Huma rejects the malformed date-time before the handler runs.
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ComputeReport")
}

func TestHTTP_FinancialReport_NoCompany(t *testing.T) {
	mockSvc := new(mockReportService)

	resp := newTestAPI(t, mockSvc, uuid.Nil).Get("/v1/reports/financial")

	assert.Equal(t, http.StatusForbidden, resp.Code)
	mockSvc.AssertNotCalled(t, "ComputeReport")
}

func TestHTTP_Dashboard_Success(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockReportService)
	mockSvc.On("Dashboard", mock.Anything, companyID).Return(&finance.DashboardSummary{
		TotalDocuments:     5,
		CompletedDocuments: 4,
		TotalContracts:     3,
		ActiveContracts:    1,
		TotalInvoices:      4,
		PaidInvoices:       1,
		TotalProducts:      2,
		LowStockProducts:   1,
	}, nil)

	resp := newTestAPI(t, mockSvc, companyID).Get("/v1/reports/dashboard")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Dashboard
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 5, body.TotalDocuments)
	assert.Equal(t, 4, body.CompletedDocuments)
	assert.Equal(t, 1, body.LowStockProducts)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ExportReport_Success(t *testing.T) {
	companyID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockReportService)
	mockSvc.On("ExportReport", mock.Anything, companyID, (*time.Time)(nil), (*time.Time)(nil), "").
		Return([]byte("PK workbook bytes"), nil)

	resp := newTestAPI(t, mockSvc, companyID).Get("/v1/reports/financial/export")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "financial-report.xlsx")
	mockSvc.AssertExpectations(t)
}
