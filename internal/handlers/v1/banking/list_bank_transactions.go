package banking

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// ListBankTransactionsInput is the Huma input for listing statement lines.
type ListBankTransactionsInput struct {
	StatementID string `query:"statementID" format:"uuid" doc:"Scope to one statement"`
}

// ListBankTransactionsOutput is the Huma output for listing statement lines.
type ListBankTransactionsOutput struct {
	Body struct {
		Transactions []BankTransaction `json:"transactions"`
	}
}

// ListBankTransactionsHandler handles GET /v1/banking/transactions.
type ListBankTransactionsHandler struct {
	svc bankingService
}

// NewListBankTransactionsHandler creates a new ListBankTransactionsHandler.
func NewListBankTransactionsHandler(svc bankingService) *ListBankTransactionsHandler {
	return &ListBankTransactionsHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListBankTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-bank-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/banking/transactions",
		Summary:     "List bank transactions",
		Description: "Lists statement lines, optionally scoped to one statement.",
		Tags:        []string{"Banking"},
	}, h.handle)
}

func (h *ListBankTransactionsHandler) handle(ctx context.Context, input *ListBankTransactionsInput) (*ListBankTransactionsOutput, error) {
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

	txs, err := h.svc.ListTransactions(ctx, companyID, statementID)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	out := &ListBankTransactionsOutput{}
	out.Body.Transactions = make([]BankTransaction, len(txs))
	for i, tx := range txs {
		out.Body.Transactions[i] = bankTransactionFromService(tx)
	}
	return out, nil
}
