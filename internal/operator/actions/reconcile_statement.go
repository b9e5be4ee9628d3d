package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// ReconcileStatement reruns the matcher over one statement. Previous automatic
// rows are superseded in the same transaction that stores the new run, so the
// one-active-row-per-bank-transaction invariant holds at every commit point.
type ReconcileStatement struct {
	Company     uuid.UUID
	StatementID uuid.UUID
	Config      finance.MatchConfig

	// Results holds the active rows after the run: the freshly stored
	// automatic rows plus the untouched manual ones.
	Results []*storage.Reconciliation

	IAction
}

func (r *ReconcileStatement) CompanyID() uuid.UUID { return r.Company }

func (r *ReconcileStatement) Perform(ctx context.Context, writer *storage.Writer) error {
	statement, err := writer.Statements.FindByID(ctx, r.Company, r.StatementID)
	if err != nil {
		return err
	}
	if statement == nil {
		return &finance.NotFoundError{Entity: "statement", ID: r.StatementID.String()}
	}

	lines, err := writer.Statements.Transactions(ctx, r.Company, r.StatementID)
	if err != nil {
		return err
	}
	invoices, err := writer.Invoices.ListOpen(ctx, r.Company)
	if err != nil {
		return err
	}
	docTxs, err := writer.Documents.ListTransactions(ctx, r.Company)
	if err != nil {
		return err
	}
	existing, err := writer.Reconciliations.ListActiveForStatement(ctx, r.Company, r.StatementID)
	if err != nil {
		return err
	}

	bankTxs := make([]finance.BankTransaction, 0, len(lines))
	for _, line := range lines {
		bankTxs = append(bankTxs, finance.BankTransaction{
			ID:           line.ID.String(),
			Date:         line.Date,
			Description:  line.Description,
			Amount:       line.Amount,
			Balance:      line.Balance,
			Type:         finance.BankTransactionType(line.Type),
			Counterparty: line.Counterparty,
			IBAN:         line.IBAN,
			StatementID:  line.StatementID.String(),
		})
	}

	kinds := make(map[string]finance.CandidateKind)
	candidates := make([]finance.Candidate, 0, len(invoices)+len(docTxs))
	for _, invoice := range invoices {
		id := invoice.ID.String()
		kinds[id] = finance.CandidateInvoice
		candidates = append(candidates, finance.Candidate{
			ID:           id,
			Kind:         finance.CandidateInvoice,
			Amount:       invoice.Total,
			Date:         invoice.IssueDate,
			Counterparty: invoice.ClientName,
			Reference:    invoice.Number,
		})
	}
	for _, tx := range docTxs {
		id := tx.ID.String()
		kinds[id] = finance.CandidateTransaction
		candidates = append(candidates, finance.Candidate{
			ID:     id,
			Kind:   finance.CandidateTransaction,
			Amount: tx.Amount,
			Date:   tx.Date,
		})
	}

	var manual []finance.Reconciliation
	for _, rec := range existing {
		if rec.MatchType == string(finance.MatchManual) {
			manual = append(manual, finance.Reconciliation{
				BankTransactionID: rec.BankTransactionID.String(),
				MatchedEntityID:   rec.MatchedEntityID,
				MatchType:         finance.MatchManual,
				Confidence:        rec.Confidence,
				Status:            finance.MatchStatus(rec.Status),
			})
		}
	}

	matched := finance.Match(bankTxs, candidates, manual, r.Config)

	if err := writer.Reconciliations.SupersedeAutomatic(ctx, r.Company, r.StatementID); err != nil {
		return err
	}

	results := make([]*storage.Reconciliation, 0, len(matched)+len(manual))
	for _, m := range matched {
		bankTxID, err := uuid.FromString(m.BankTransactionID)
		if err != nil {
			return err
		}
		row := &storage.Reconciliation{
			CompanyID:         r.Company,
			StatementID:       r.StatementID,
			BankTransactionID: bankTxID,
			MatchedEntityID:   m.MatchedEntityID,
			MatchedEntityKind: string(kinds[m.MatchedEntityID]),
			MatchType:         string(m.MatchType),
			Confidence:        m.Confidence,
			Status:            string(m.Status),
		}
		if _, err := writer.Reconciliations.Insert(ctx, row); err != nil {
			return err
		}
		results = append(results, row)
	}
	for _, rec := range existing {
		if rec.MatchType == string(finance.MatchManual) {
			results = append(results, rec)
		}
	}

	r.Results = results
	return nil
}
