package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// Statement represents a bank statement in the service layer.
type Statement struct {
	ID                uuid.UUID
	FileName          string
	BankName          string
	AccountNumber     string
	Status            string
	TotalTransactions int
	CreatedAt         time.Time
}

// StatementUpload carries a statement and its raw lines. Line fields arrive
// as free text and are normalized on ingestion.
type StatementUpload struct {
	FileName      string
	FileSize      string
	BankName      string
	AccountNumber string
	Lines         []finance.StatementLine
}

// StatementUploadResult is the stored statement id plus the data-quality
// warnings collected while normalizing its lines.
type StatementUploadResult struct {
	ID       uuid.UUID
	Warnings []finance.DataQualityWarning
}

// BankTransactionView is one statement line in the service layer.
type BankTransactionView struct {
	ID           uuid.UUID
	StatementID  uuid.UUID
	Date         time.Time
	Description  string
	Amount       decimal.Decimal
	Balance      decimal.Decimal
	Type         string
	Counterparty string
	IBAN         string
}

func statementFromStorage(row *storage.BankStatement) Statement {
	return Statement{
		ID:                row.ID,
		FileName:          row.FileName,
		BankName:          row.BankName,
		AccountNumber:     row.AccountNumber,
		Status:            row.Status,
		TotalTransactions: row.TotalTransactions,
		CreatedAt:         row.CreatedAt,
	}
}

func bankTransactionFromStorage(row *storage.BankTransaction) BankTransactionView {
	return BankTransactionView{
		ID:           row.ID,
		StatementID:  row.StatementID,
		Date:         row.Date,
		Description:  row.Description,
		Amount:       row.Amount,
		Balance:      row.Balance,
		Type:         row.Type,
		Counterparty: row.Counterparty,
		IBAN:         row.IBAN,
	}
}
