package banking

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// ListStatementsInput is the Huma input for listing statements.
type ListStatementsInput struct{}

// ListStatementsOutput is the Huma output for listing statements.
type ListStatementsOutput struct {
	Body struct {
		Statements []Statement `json:"statements"`
	}
}

// ListStatementsHandler handles GET /v1/banking/statements.
type ListStatementsHandler struct {
	svc bankingService
}

// NewListStatementsHandler creates a new ListStatementsHandler.
func NewListStatementsHandler(svc bankingService) *ListStatementsHandler {
	return &ListStatementsHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListStatementsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-statements",
		Method:      http.MethodGet,
		Path:        "/v1/banking/statements",
		Summary:     "List statements",
		Description: "Lists the company's bank statements, newest first.",
		Tags:        []string{"Banking"},
	}, h.handle)
}

func (h *ListStatementsHandler) handle(ctx context.Context, _ *ListStatementsInput) (*ListStatementsOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	statements, err := h.svc.ListStatements(ctx, companyID)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	out := &ListStatementsOutput{}
	out.Body.Statements = make([]Statement, len(statements))
	for i, st := range statements {
		out.Body.Statements[i] = statementFromService(st)
	}
	return out, nil
}
