package storage

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BankStatement struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID         uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID            uuid.UUID `gorm:"type:uuid"`
	FileName          string    `gorm:"not null"`
	FileSize          string
	BankName          string
	AccountNumber     string
	PeriodStart       *time.Time
	PeriodEnd         *time.Time
	Status            string `gorm:"size:16;default:processing"`
	TotalTransactions int    `gorm:"default:0"`
	OpeningBalance    decimal.Decimal `gorm:"type:decimal(20,4)"`
	ClosingBalance    decimal.Decimal `gorm:"type:decimal(20,4)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// BankTransaction is one statement line. The statement exclusively owns its
// lines; they are inserted with the statement and deleted with it.
type BankTransaction struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	StatementID  uuid.UUID `gorm:"type:uuid;index;not null"`
	CompanyID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Date         time.Time
	Description  string
	Amount       decimal.Decimal `gorm:"type:decimal(20,4)"`
	Balance      decimal.Decimal `gorm:"type:decimal(20,4)"`
	Type         string          `gorm:"size:8"`
	Counterparty string
	IBAN         string
	CreatedAt    time.Time
}

type IStatementTable interface {
	// Insert stores the statement together with its transaction lines.
	Insert(ctx context.Context, statement *BankStatement, lines []BankTransaction) (uuid.UUID, error)
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*BankStatement, error)
	List(ctx context.Context, companyID uuid.UUID) ([]*BankStatement, error)
	Transactions(ctx context.Context, companyID, statementID uuid.UUID) ([]*BankTransaction, error)
	AllTransactions(ctx context.Context, companyID uuid.UUID) ([]*BankTransaction, error)
	FindTransaction(ctx context.Context, companyID, id uuid.UUID) (*BankTransaction, error)
}

var _ IStatementTable = (*StatementsTable)(nil)

type StatementsTable struct {
	db *gorm.DB
}

func (t *StatementsTable) Insert(ctx context.Context, statement *BankStatement, lines []BankTransaction) (uuid.UUID, error) {
	if statement.ID == uuid.Nil {
		statement.ID = uuid.Must(uuid.NewV4())
	}
	statement.TotalTransactions = len(lines)
	if err := t.db.WithContext(ctx).Create(statement).Error; err != nil {
		return uuid.Nil, err
	}
	for i := range lines {
		line := &lines[i]
		line.StatementID = statement.ID
		line.CompanyID = statement.CompanyID
		if line.ID == uuid.Nil {
			line.ID = uuid.Must(uuid.NewV4())
		}
		if err := t.db.WithContext(ctx).Create(line).Error; err != nil {
			return uuid.Nil, err
		}
	}
	return statement.ID, nil
}

func (t *StatementsTable) FindByID(ctx context.Context, companyID, id uuid.UUID) (*BankStatement, error) {
	var statement BankStatement
	err := t.db.WithContext(ctx).
		First(&statement, "id = ? AND company_id = ?", id, companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &statement, nil
}

func (t *StatementsTable) List(ctx context.Context, companyID uuid.UUID) ([]*BankStatement, error) {
	var statements []*BankStatement
	err := t.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&statements).Error
	return statements, err
}

func (t *StatementsTable) Transactions(ctx context.Context, companyID, statementID uuid.UUID) ([]*BankTransaction, error) {
	var lines []*BankTransaction
	err := t.db.WithContext(ctx).
		Where("company_id = ? AND statement_id = ?", companyID, statementID).
		Order("date ASC").
		Find(&lines).Error
	return lines, err
}

func (t *StatementsTable) AllTransactions(ctx context.Context, companyID uuid.UUID) ([]*BankTransaction, error) {
	var lines []*BankTransaction
	err := t.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("date ASC").
		Find(&lines).Error
	return lines, err
}

func (t *StatementsTable) FindTransaction(ctx context.Context, companyID, id uuid.UUID) (*BankTransaction, error) {
	var line BankTransaction
	err := t.db.WithContext(ctx).
		First(&line, "id = ? AND company_id = ?", id, companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}
