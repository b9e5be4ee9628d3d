package reconciliation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// ListReconciliationsInput is the Huma input for listing active links.
type ListReconciliationsInput struct {
	StatementID string `query:"statementID" format:"uuid" doc:"Scope to one statement"`
}

// ListReconciliationsOutput is the Huma output for listing active links.
type ListReconciliationsOutput struct {
	Body struct {
		Reconciliations []Reconciliation `json:"reconciliations"`
	}
}

// ListReconciliationsHandler handles GET /v1/reconciliation.
type ListReconciliationsHandler struct {
	svc reconcileService
}

// NewListReconciliationsHandler creates a new ListReconciliationsHandler.
func NewListReconciliationsHandler(svc reconcileService) *ListReconciliationsHandler {
	return &ListReconciliationsHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListReconciliationsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-reconciliations",
		Method:      http.MethodGet,
		Path:        "/v1/reconciliation",
		Summary:     "List reconciliations",
		Description: "Lists active reconciliation links, optionally scoped to one statement.",
		Tags:        []string{"Reconciliation"},
	}, h.handle)
}

func (h *ListReconciliationsHandler) handle(ctx context.Context, input *ListReconciliationsInput) (*ListReconciliationsOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	var statementID *uuid.UUID
	if input.StatementID != "" {
		id, err := uuid.FromString(input.StatementID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid statementID", err)
		}
		statementID = &id
	}

	views, err := h.svc.List(ctx, companyID, statementID)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	out := &ListReconciliationsOutput{}
	out.Body.Reconciliations = make([]Reconciliation, len(views))
	for i, view := range views {
		out.Body.Reconciliations[i] = reconciliationFromService(view)
	}
	return out, nil
}
