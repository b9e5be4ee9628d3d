package invoice

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// UpdateInvoiceStatusInput is the Huma input for the status transition.
type UpdateInvoiceStatusInput struct {
	ID   string `path:"id" format:"uuid" doc:"Invoice UUID"`
	Body struct {
		Status string `json:"status" required:"true" enum:"draft,sent,paid,overdue" doc:"New status"`
	}
}

// UpdateInvoiceStatusOutput is the Huma output for the status transition.
type UpdateInvoiceStatusOutput struct {
	Body Invoice
}

// UpdateInvoiceStatusHandler handles PUT /v1/invoices/{id}/status.
type UpdateInvoiceStatusHandler struct {
	svc invoiceService
}

// NewUpdateInvoiceStatusHandler creates a new UpdateInvoiceStatusHandler.
func NewUpdateInvoiceStatusHandler(svc invoiceService) *UpdateInvoiceStatusHandler {
	return &UpdateInvoiceStatusHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateInvoiceStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-invoice-status",
		Method:      http.MethodPut,
		Path:        "/v1/invoices/{id}/status",
		Summary:     "Update invoice status",
		Description: "Moves an invoice through its lifecycle.",
		Tags:        []string{"Invoices"},
	}, h.handle)
}

func (h *UpdateInvoiceStatusHandler) handle(ctx context.Context, input *UpdateInvoiceStatusInput) (*UpdateInvoiceStatusOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	if err := h.svc.SetStatus(ctx, companyID, id, input.Body.Status); err != nil {
		return nil, httperr.FromService(err)
	}

	invoice, err := h.svc.Get(ctx, companyID, id)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &UpdateInvoiceStatusOutput{Body: invoiceFromService(*invoice)}, nil
}
