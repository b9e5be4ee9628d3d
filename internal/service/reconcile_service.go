package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/operator/actions"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// ReconcileService drives the matcher. All mutations go through the
// operator so each company's runs are serialized.
type ReconcileService struct {
	storage *storage.Storage
	op      Processor
}

// NewReconcileService creates a new ReconcileService.
func NewReconcileService(store *storage.Storage, op Processor) *ReconcileService {
	return &ReconcileService{storage: store, op: op}
}

// Run reruns the automatic matcher over one statement and returns the active
// links, manual ones included.
func (s *ReconcileService) Run(ctx context.Context, companyID, statementID uuid.UUID) ([]ReconciliationView, error) {
	if companyID == uuid.Nil {
		return nil, &finance.ValidationError{Field: "companyId", Reason: "required"}
	}

	action := &actions.ReconcileStatement{
		Company:     companyID,
		StatementID: statementID,
		Config:      finance.DefaultMatchConfig(),
	}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	views := make([]ReconciliationView, len(action.Results))
	for i, row := range action.Results {
		views[i] = reconciliationFromStorage(row)
	}
	return views, nil
}

// Manual pins a bank transaction to an entity chosen by the user.
func (s *ReconcileService) Manual(ctx context.Context, companyID, bankTransactionID, entityID uuid.UUID) (*ReconciliationView, error) {
	action := &actions.ManualReconcile{
		Company:           companyID,
		BankTransactionID: bankTransactionID,
		EntityID:          entityID,
	}
	if err := s.op.Process(ctx, action); err != nil {
		return nil, err
	}

	view := reconciliationFromStorage(action.Result)
	return &view, nil
}

// List returns the active links, optionally scoped to one statement.
func (s *ReconcileService) List(ctx context.Context, companyID uuid.UUID, statementID *uuid.UUID) ([]ReconciliationView, error) {
	var rows []*storage.Reconciliation
	var err error
	if statementID != nil {
		rows, err = s.storage.Reconciliations.ListActiveForStatement(ctx, companyID, *statementID)
	} else {
		rows, err = s.storage.Reconciliations.ListActiveForCompany(ctx, companyID)
	}
	if err != nil {
		return nil, err
	}

	views := make([]ReconciliationView, len(rows))
	for i, row := range rows {
		views[i] = reconciliationFromStorage(row)
	}
	return views, nil
}
