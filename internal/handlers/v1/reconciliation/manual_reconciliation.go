package reconciliation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// ManualReconciliationInput is the Huma input for a manual override.
type ManualReconciliationInput struct {
	Body struct {
		BankTransactionID string `json:"bankTransactionID" required:"true" format:"uuid" doc:"Bank transaction UUID"`
		EntityID          string `json:"entityID" required:"true" format:"uuid" doc:"Invoice or transaction UUID"`
	}
}

// ManualReconciliationOutput is the Huma output for a manual override.
type ManualReconciliationOutput struct {
	Status int
	Body   Reconciliation
}

// ManualReconciliationHandler handles POST /v1/reconciliation/manual.
type ManualReconciliationHandler struct {
	svc reconcileService
}

// NewManualReconciliationHandler creates a new ManualReconciliationHandler.
func NewManualReconciliationHandler(svc reconcileService) *ManualReconciliationHandler {
	return &ManualReconciliationHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ManualReconciliationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "manual-reconciliation",
		Method:        http.MethodPost,
		Path:          "/v1/reconciliation/manual",
		Summary:       "Manual reconciliation",
		Description:   "Pins a bank transaction to an entity chosen by the user.",
		Tags:          []string{"Reconciliation"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *ManualReconciliationHandler) handle(ctx context.Context, input *ManualReconciliationInput) (*ManualReconciliationOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	bankTransactionID, err := uuid.FromString(input.Body.BankTransactionID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid bankTransactionID", err)
	}
	entityID, err := uuid.FromString(input.Body.EntityID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid entityID", err)
	}

	view, err := h.svc.Manual(ctx, companyID, bankTransactionID, entityID)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &ManualReconciliationOutput{
		Status: http.StatusCreated,
		Body:   reconciliationFromService(*view),
	}, nil
}
