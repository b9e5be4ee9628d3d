package document

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// ListTransactionsInput is the Huma input for listing generated transactions.
type ListTransactionsInput struct{}

// ListTransactionsOutput is the Huma output for listing generated transactions.
type ListTransactionsOutput struct {
	Body struct {
		Transactions []Transaction `json:"transactions"`
	}
}

// ListTransactionsHandler handles GET /v1/documents/transactions.
type ListTransactionsHandler struct {
	svc documentService
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc documentService) *ListTransactionsHandler {
	return &ListTransactionsHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/documents/transactions",
		Summary:     "List transactions",
		Description: "Lists transactions generated from analyzed documents.",
		Tags:        []string{"Documents"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, _ *ListTransactionsInput) (*ListTransactionsOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	txs, err := h.svc.Transactions(ctx, companyID)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	out := &ListTransactionsOutput{}
	out.Body.Transactions = make([]Transaction, len(txs))
	for i, tx := range txs {
		out.Body.Transactions[i] = transactionFromService(tx)
	}
	return out, nil
}
