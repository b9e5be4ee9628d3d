package reconciliation

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/service"
)

// reconcileService is the service surface the reconciliation handlers need.
type reconcileService interface {
	Run(ctx context.Context, companyID, statementID uuid.UUID) ([]service.ReconciliationView, error)
	Manual(ctx context.Context, companyID, bankTransactionID, entityID uuid.UUID) (*service.ReconciliationView, error)
	List(ctx context.Context, companyID uuid.UUID, statementID *uuid.UUID) ([]service.ReconciliationView, error)
}

// Reconciliation is the API response model for one active link.
type Reconciliation struct {
	ID                string  `json:"id" doc:"Reconciliation UUID"`
	StatementID       string  `json:"statementID" doc:"Statement UUID"`
	BankTransactionID string  `json:"bankTransactionID" doc:"Bank transaction UUID"`
	MatchedEntityID   string  `json:"matchedEntityID,omitempty" doc:"Matched invoice or transaction"`
	MatchedEntityKind string  `json:"matchedEntityKind,omitempty" enum:"invoice,transaction"`
	MatchType         string  `json:"matchType" enum:"exact,fuzzy,manual,unmatched"`
	Confidence        float64 `json:"confidence" minimum:"0" maximum:"1"`
	Status            string  `json:"status" enum:"matched,unmatched"`
	CreatedAt         string  `json:"createdAt" doc:"RFC3339 creation time"`
}

func reconciliationFromService(view service.ReconciliationView) Reconciliation {
	return Reconciliation{
		ID:                view.ID.String(),
		StatementID:       view.StatementID.String(),
		BankTransactionID: view.BankTransactionID.String(),
		MatchedEntityID:   view.MatchedEntityID,
		MatchedEntityKind: view.MatchedEntityKind,
		MatchType:         view.MatchType,
		Confidence:        view.Confidence,
		Status:            view.Status,
		CreatedAt:         view.CreatedAt.Format(time.RFC3339),
	}
}
