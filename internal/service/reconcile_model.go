package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/storage"
)

// ReconciliationView is a reconciliation link in the service layer. Only
// non-superseded rows are ever exposed.
type ReconciliationView struct {
	ID                uuid.UUID
	StatementID       uuid.UUID
	BankTransactionID uuid.UUID
	MatchedEntityID   string
	MatchedEntityKind string
	MatchType         string
	Confidence        float64
	Status            string
	CreatedAt         time.Time
}

func reconciliationFromStorage(row *storage.Reconciliation) ReconciliationView {
	return ReconciliationView{
		ID:                row.ID,
		StatementID:       row.StatementID,
		BankTransactionID: row.BankTransactionID,
		MatchedEntityID:   row.MatchedEntityID,
		MatchedEntityKind: row.MatchedEntityKind,
		MatchType:         row.MatchType,
		Confidence:        row.Confidence,
		Status:            row.Status,
		CreatedAt:         row.CreatedAt,
	}
}
