package contract

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// UpdateContractStatusInput is the Huma input for the status transition.
type UpdateContractStatusInput struct {
	ID   string `path:"id" format:"uuid" doc:"Contract UUID"`
	Body struct {
		Status string `json:"status" required:"true" enum:"draft,active,completed,terminated" doc:"New status"`
	}
}

// UpdateContractStatusOutput is the Huma output for the status transition.
type UpdateContractStatusOutput struct {
	Status int
}

// UpdateContractStatusHandler handles PATCH /v1/contracts/{id}/status.
type UpdateContractStatusHandler struct {
	svc contractService
}

// NewUpdateContractStatusHandler creates a new UpdateContractStatusHandler.
func NewUpdateContractStatusHandler(svc contractService) *UpdateContractStatusHandler {
	return &UpdateContractStatusHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateContractStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-contract-status",
		Method:        http.MethodPatch,
		Path:          "/v1/contracts/{id}/status",
		Summary:       "Update contract status",
		Description:   "Moves a contract through its lifecycle.",
		Tags:          []string{"Contracts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *UpdateContractStatusHandler) handle(ctx context.Context, input *UpdateContractStatusInput) (*UpdateContractStatusOutput, error) {
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

	return &UpdateContractStatusOutput{Status: http.StatusNoContent}, nil
}
