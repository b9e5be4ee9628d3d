package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// DashboardInput is the Huma input for the dashboard rollup.
type DashboardInput struct{}

// DashboardOutput is the Huma output for the dashboard rollup.
type DashboardOutput struct {
	Body Dashboard
}

// DashboardHandler handles GET /v1/reports/dashboard.
type DashboardHandler struct {
	svc reportService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc reportService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/reports/dashboard",
		Summary:     "Dashboard",
		Description: "Counts entities by their headline status.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *DashboardHandler) handle(ctx context.Context, _ *DashboardInput) (*DashboardOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	summary, err := h.svc.Dashboard(ctx, companyID)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &DashboardOutput{Body: Dashboard{
		TotalDocuments:     summary.TotalDocuments,
		CompletedDocuments: summary.CompletedDocuments,
		TotalContracts:     summary.TotalContracts,
		ActiveContracts:    summary.ActiveContracts,
		TotalInvoices:      summary.TotalInvoices,
		PaidInvoices:       summary.PaidInvoices,
		TotalProducts:      summary.TotalProducts,
		LowStockProducts:   summary.LowStockProducts,
	}}, nil
}
