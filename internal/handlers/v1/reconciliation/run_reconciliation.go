package reconciliation

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// RunReconciliationInput is the Huma input for a reconciliation run.
type RunReconciliationInput struct {
	Body struct {
		StatementID string `json:"statementID" required:"true" format:"uuid" doc:"Statement UUID"`
	}
}

// RunReconciliationOutput is the Huma output for a reconciliation run.
type RunReconciliationOutput struct {
	Body struct {
		Reconciliations []Reconciliation `json:"reconciliations"`
	}
}

// RunReconciliationHandler handles POST /v1/reconciliation/run.
type RunReconciliationHandler struct {
	svc reconcileService
}

// NewRunReconciliationHandler creates a new RunReconciliationHandler.
func NewRunReconciliationHandler(svc reconcileService) *RunReconciliationHandler {
	return &RunReconciliationHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *RunReconciliationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "run-reconciliation",
		Method:      http.MethodPost,
		Path:        "/v1/reconciliation/run",
		Summary:     "Run reconciliation",
		Description: "Reruns the automatic matcher over one statement. Manual links are preserved.",
		Tags:        []string{"Reconciliation"},
	}, h.handle)
}

func (h *RunReconciliationHandler) handle(ctx context.Context, input *RunReconciliationInput) (*RunReconciliationOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	statementID, err := uuid.FromString(input.Body.StatementID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid statementID", err)
	}

	views, err := h.svc.Run(ctx, companyID, statementID)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	out := &RunReconciliationOutput{}
	out.Body.Reconciliations = make([]Reconciliation, len(views))
	for i, view := range views {
		out.Body.Reconciliations[i] = reconciliationFromService(view)
	}
	return out, nil
}
