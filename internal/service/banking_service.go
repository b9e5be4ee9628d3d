package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/operator/actions"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// BankingService handles statement ingestion and queries.
type BankingService struct {
	storage *storage.Storage
	op      Processor
}

// NewBankingService creates a new BankingService.
func NewBankingService(store *storage.Storage, op Processor) *BankingService {
	return &BankingService{storage: store, op: op}
}

// Upload normalizes the raw lines and stores the statement with them in one
// write. Lines with defaulted fields are kept and their warnings reported.
func (s *BankingService) Upload(ctx context.Context, companyID, userID uuid.UUID, input StatementUpload) (*StatementUploadResult, error) {
	if input.FileName == "" {
		return nil, &finance.ValidationError{Field: "fileName", Reason: "required"}
	}
	if len(input.Lines) == 0 {
		return nil, &finance.ValidationError{Field: "transactions", Reason: "statement has no transactions"}
	}

	now := time.Now().UTC()
	var warnings []finance.DataQualityWarning
	lines := make([]storage.BankTransaction, 0, len(input.Lines))
	for _, raw := range input.Lines {
		normalized, lineWarnings := finance.BankTransactionFromLine(raw, "", now)
		warnings = append(warnings, lineWarnings...)
		lines = append(lines, storage.BankTransaction{
			Date:         normalized.Date,
			Description:  normalized.Description,
			Amount:       normalized.Amount,
			Balance:      normalized.Balance,
			Type:         string(normalized.Type),
			Counterparty: normalized.Counterparty,
			IBAN:         normalized.IBAN,
		})
	}

	action := &actions.CreateStatement{
		Company: companyID,
		Statement: &storage.BankStatement{
			UserID:        userID,
			FileName:      input.FileName,
			FileSize:      input.FileSize,
			BankName:      input.BankName,
			AccountNumber: input.AccountNumber,
			Status:        "completed",
		},
		Lines: lines,
	}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	return &StatementUploadResult{ID: action.ID, Warnings: warnings}, nil
}

// ListStatements returns the company's statements, newest first.
func (s *BankingService) ListStatements(ctx context.Context, companyID uuid.UUID) ([]Statement, error) {
	rows, err := s.storage.Statements.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	statements := make([]Statement, len(rows))
	for i, row := range rows {
		statements[i] = statementFromStorage(row)
	}
	return statements, nil
}

// ListTransactions returns statement lines, optionally scoped to one
// statement, oldest first.
func (s *BankingService) ListTransactions(ctx context.Context, companyID uuid.UUID, statementID *uuid.UUID) ([]BankTransactionView, error) {
	var rows []*storage.BankTransaction
	var err error
	if statementID != nil {
		rows, err = s.storage.Statements.Transactions(ctx, companyID, *statementID)
	} else {
		rows, err = s.storage.Statements.AllTransactions(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}

	lines := make([]BankTransactionView, len(rows))
	for i, row := range rows {
		lines[i] = bankTransactionFromStorage(row)
	}
	return lines, nil
}
