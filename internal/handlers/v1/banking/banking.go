package banking

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/service"
)

// bankingService is the service surface the banking handlers need.
type bankingService interface {
	Upload(ctx context.Context, companyID, userID uuid.UUID, input service.StatementUpload) (*service.StatementUploadResult, error)
	ListStatements(ctx context.Context, companyID uuid.UUID) ([]service.Statement, error)
	ListTransactions(ctx context.Context, companyID uuid.UUID, statementID *uuid.UUID) ([]service.BankTransactionView, error)
}

// Statement is the API response model for a bank statement.
type Statement struct {
	ID                string `json:"id" doc:"Statement UUID"`
	FileName          string `json:"fileName"`
	BankName          string `json:"bankName,omitempty"`
	AccountNumber     string `json:"accountNumber,omitempty"`
	Status            string `json:"status"`
	TotalTransactions int    `json:"totalTransactions"`
	CreatedAt         string `json:"createdAt" doc:"RFC3339 upload time"`
}

// BankTransaction is the API response model for one statement line.
type BankTransaction struct {
	ID           string `json:"id" doc:"Transaction UUID"`
	StatementID  string `json:"statementID" doc:"Statement UUID"`
	Date         string `json:"date" doc:"RFC3339 transaction date"`
	Description  string `json:"description"`
	Amount       string `json:"amount" doc:"Decimal amount"`
	Balance      string `json:"balance" doc:"Decimal balance after the transaction"`
	Type         string `json:"type" enum:"income,expense"`
	Counterparty string `json:"counterparty,omitempty"`
	IBAN         string `json:"iban,omitempty"`
}

// Warning is a data-quality flag raised while normalizing a statement line.
type Warning struct {
	Field  string `json:"field"`
	Value  string `json:"value,omitempty"`
	Reason string `json:"reason"`
}

func statementFromService(st service.Statement) Statement {
	return Statement{
		ID:                st.ID.String(),
		FileName:          st.FileName,
		BankName:          st.BankName,
		AccountNumber:     st.AccountNumber,
		Status:            st.Status,
		TotalTransactions: st.TotalTransactions,
		CreatedAt:         st.CreatedAt.Format(time.RFC3339),
	}
}

func bankTransactionFromService(tx service.BankTransactionView) BankTransaction {
	return BankTransaction{
		ID:           tx.ID.String(),
		StatementID:  tx.StatementID.String(),
		Date:         tx.Date.Format(time.RFC3339),
		Description:  tx.Description,
		Amount:       tx.Amount.String(),
		Balance:      tx.Balance.String(),
		Type:         tx.Type,
		Counterparty: tx.Counterparty,
		IBAN:         tx.IBAN,
	}
}
