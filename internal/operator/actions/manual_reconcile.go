package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// ManualReconcile pins a bank transaction to an entity chosen by the user.
// Any active row for that bank transaction, manual included, is superseded
// first. Automatic reruns never revise the resulting row.
type ManualReconcile struct {
	Company           uuid.UUID
	BankTransactionID uuid.UUID
	EntityID          uuid.UUID

	Result *storage.Reconciliation

	IAction
}

func (m *ManualReconcile) CompanyID() uuid.UUID { return m.Company }

func (m *ManualReconcile) Perform(ctx context.Context, writer *storage.Writer) error {
	line, err := writer.Statements.FindTransaction(ctx, m.Company, m.BankTransactionID)
	if err != nil {
		return err
	}
	if line == nil {
		return &finance.NotFoundError{Entity: "bank transaction", ID: m.BankTransactionID.String()}
	}

	kind := finance.CandidateInvoice
	invoice, err := writer.Invoices.FindByID(ctx, m.Company, m.EntityID)
	if err != nil {
		return err
	}
	if invoice == nil {
		docTx, err := writer.Documents.FindTransaction(ctx, m.Company, m.EntityID)
		if err != nil {
			return err
		}
		if docTx == nil {
			return &finance.NotFoundError{Entity: "entity", ID: m.EntityID.String()}
		}
		kind = finance.CandidateTransaction
	}

	if err := writer.Reconciliations.SupersedeForBankTransaction(ctx, m.Company, m.BankTransactionID); err != nil {
		return err
	}

	row := &storage.Reconciliation{
		CompanyID:         m.Company,
		StatementID:       line.StatementID,
		BankTransactionID: m.BankTransactionID,
		MatchedEntityID:   m.EntityID.String(),
		MatchedEntityKind: string(kind),
		MatchType:         string(finance.MatchManual),
		Confidence:        1.0,
		Status:            string(finance.StatusMatched),
	}
	if _, err := writer.Reconciliations.Insert(ctx, row); err != nil {
		return err
	}

	m.Result = row
	return nil
}
