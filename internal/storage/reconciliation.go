package storage

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"gorm.io/gorm"
)

// Reconciliation links a bank transaction to the entity it settles. At most
// one non-superseded row exists per bank transaction; automatic reruns
// supersede previous automatic rows, manual rows are only superseded by a
// new manual override.
type Reconciliation struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID         uuid.UUID `gorm:"type:uuid;index;not null"`
	StatementID       uuid.UUID `gorm:"type:uuid;index;not null"`
	BankTransactionID uuid.UUID `gorm:"type:uuid;index;not null"`
	MatchedEntityID   string
	MatchedEntityKind string `gorm:"size:16"`
	MatchType         string `gorm:"size:8"`
	Confidence        float64
	Status            string `gorm:"size:16"`
	Superseded        bool   `gorm:"default:false;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type IReconciliationTable interface {
	Insert(ctx context.Context, rec *Reconciliation) (uuid.UUID, error)
	ListActiveForStatement(ctx context.Context, companyID, statementID uuid.UUID) ([]*Reconciliation, error)
	ListActiveForCompany(ctx context.Context, companyID uuid.UUID) ([]*Reconciliation, error)
	// SupersedeAutomatic marks all non-manual active rows of a statement as
	// superseded so a rerun can replace them. Manual rows are untouched.
	SupersedeAutomatic(ctx context.Context, companyID, statementID uuid.UUID) error
	// SupersedeForBankTransaction retires any active row for one bank
	// transaction, manual included; used by explicit manual overrides.
	SupersedeForBankTransaction(ctx context.Context, companyID, bankTransactionID uuid.UUID) error
}

var _ IReconciliationTable = (*ReconciliationsTable)(nil)

type ReconciliationsTable struct {
	db *gorm.DB
}

func (t *ReconciliationsTable) Insert(ctx context.Context, rec *Reconciliation) (uuid.UUID, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.Must(uuid.NewV4())
	}
	if err := t.db.WithContext(ctx).Create(rec).Error; err != nil {
		return uuid.Nil, err
	}
	return rec.ID, nil
}

func (t *ReconciliationsTable) ListActiveForStatement(ctx context.Context, companyID, statementID uuid.UUID) ([]*Reconciliation, error) {
	var recs []*Reconciliation
	err := t.db.WithContext(ctx).
		Where("company_id = ? AND statement_id = ? AND superseded = ?", companyID, statementID, false).
		Order("created_at ASC").
		Find(&recs).Error
	return recs, err
}

func (t *ReconciliationsTable) ListActiveForCompany(ctx context.Context, companyID uuid.UUID) ([]*Reconciliation, error) {
	var recs []*Reconciliation
	err := t.db.WithContext(ctx).
		Where("company_id = ? AND superseded = ?", companyID, false).
		Order("created_at ASC").
		Find(&recs).Error
	return recs, err
}

func (t *ReconciliationsTable) SupersedeAutomatic(ctx context.Context, companyID, statementID uuid.UUID) error {
	return t.db.WithContext(ctx).Model(&Reconciliation{}).
		Where("company_id = ? AND statement_id = ? AND superseded = ? AND match_type <> ?",
			companyID, statementID, false, "manual").
		Update("superseded", true).Error
}

func (t *ReconciliationsTable) SupersedeForBankTransaction(ctx context.Context, companyID, bankTransactionID uuid.UUID) error {
	return t.db.WithContext(ctx).Model(&Reconciliation{}).
		Where("company_id = ? AND bank_transaction_id = ? AND superseded = ?",
			companyID, bankTransactionID, false).
		Update("superseded", true).Error
}
