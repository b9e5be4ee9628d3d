package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// FinancialReportInput is the Huma input for the financial report.
type FinancialReportInput struct {
	StartDate  string `query:"startDate" format:"date-time" doc:"RFC3339 inclusive lower bound"`
	EndDate    string `query:"endDate" format:"date-time" doc:"RFC3339 exclusive upper bound"`
	PeriodType string `query:"periodType" doc:"Label echoed back in the report, defaults to custom"`
}

// FinancialReportOutput is the Huma output for the financial report.
type FinancialReportOutput struct {
	Body Report
}

// FinancialReportHandler handles GET /v1/reports/financial.
type FinancialReportHandler struct {
	svc reportService
}

// NewFinancialReportHandler creates a new FinancialReportHandler.
func NewFinancialReportHandler(svc reportService) *FinancialReportHandler {
	return &FinancialReportHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *FinancialReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "financial-report",
		Method:      http.MethodGet,
		Path:        "/v1/reports/financial",
		Summary:     "Financial report",
		Description: "Aggregates the company's records over the requested period.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *FinancialReportHandler) handle(ctx context.Context, input *FinancialReportInput) (*FinancialReportOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	start, err := parseBound("startDate", input.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseBound("endDate", input.EndDate)
	if err != nil {
		return nil, err
	}

	report, err := h.svc.ComputeReport(ctx, companyID, start, end, input.PeriodType)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &FinancialReportOutput{Body: reportFromFinance(report)}, nil
}
