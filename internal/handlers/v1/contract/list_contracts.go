package contract

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// ListContractsInput is the Huma input for listing contracts.
type ListContractsInput struct{}

// ListContractsOutput is the Huma output for listing contracts.
type ListContractsOutput struct {
	Body struct {
		Contracts []Contract `json:"contracts"`
	}
}

// ListContractsHandler handles GET /v1/contracts.
type ListContractsHandler struct {
	svc contractService
}

// NewListContractsHandler creates a new ListContractsHandler.
func NewListContractsHandler(svc contractService) *ListContractsHandler {
	return &ListContractsHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListContractsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-contracts",
		Method:      http.MethodGet,
		Path:        "/v1/contracts",
		Summary:     "List contracts",
		Description: "Lists the company's contracts, newest first.",
		Tags:        []string{"Contracts"},
	}, h.handle)
}

func (h *ListContractsHandler) handle(ctx context.Context, _ *ListContractsInput) (*ListContractsOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	contracts, err := h.svc.List(ctx, companyID)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	out := &ListContractsOutput{}
	out.Body.Contracts = make([]Contract, len(contracts))
	for i, c := range contracts {
		out.Body.Contracts[i] = contractFromService(c)
	}
	return out, nil
}
