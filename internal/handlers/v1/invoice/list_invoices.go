package invoice

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// ListInvoicesInput is the Huma input for listing invoices.
type ListInvoicesInput struct{}

// ListInvoicesOutput is the Huma output for listing invoices.
type ListInvoicesOutput struct {
	Body struct {
		Invoices []Invoice `json:"invoices"`
	}
}

// ListInvoicesHandler handles GET /v1/invoices.
type ListInvoicesHandler struct {
	svc invoiceService
}

// NewListInvoicesHandler creates a new ListInvoicesHandler.
func NewListInvoicesHandler(svc invoiceService) *ListInvoicesHandler {
	return &ListInvoicesHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListInvoicesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-invoices",
		Method:      http.MethodGet,
		Path:        "/v1/invoices",
		Summary:     "List invoices",
		Description: "Lists the company's invoices, newest first.",
		Tags:        []string{"Invoices"},
	}, h.handle)
}

func (h *ListInvoicesHandler) handle(ctx context.Context, _ *ListInvoicesInput) (*ListInvoicesOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	invoices, err := h.svc.List(ctx, companyID)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	out := &ListInvoicesOutput{}
	out.Body.Invoices = make([]Invoice, len(invoices))
	for i, inv := range invoices {
		out.Body.Invoices[i] = invoiceFromService(inv)
	}
	return out, nil
}
