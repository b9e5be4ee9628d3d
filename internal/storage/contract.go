package storage

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Contract struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Number      string    `gorm:"not null"`
	Title       string
	ClientName  string
	Type        string          `gorm:"size:16;default:other"`
	Status      string          `gorm:"size:16;default:draft"`
	Value       decimal.Decimal `gorm:"type:decimal(20,4)"`
	Currency    string          `gorm:"size:8;default:RON"`
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type IContractTable interface {
	Insert(ctx context.Context, contract *Contract) (uuid.UUID, error)
	List(ctx context.Context, companyID uuid.UUID) ([]*Contract, error)
	SetStatus(ctx context.Context, companyID, id uuid.UUID, status string) error
}

var _ IContractTable = (*ContractsTable)(nil)

type ContractsTable struct {
	db *gorm.DB
}

func (t *ContractsTable) Insert(ctx context.Context, contract *Contract) (uuid.UUID, error) {
	if contract.ID == uuid.Nil {
		contract.ID = uuid.Must(uuid.NewV4())
	}
	if err := t.db.WithContext(ctx).Create(contract).Error; err != nil {
		return uuid.Nil, err
	}
	return contract.ID, nil
}

func (t *ContractsTable) List(ctx context.Context, companyID uuid.UUID) ([]*Contract, error) {
	var contracts []*Contract
	err := t.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&contracts).Error
	return contracts, err
}

func (t *ContractsTable) SetStatus(ctx context.Context, companyID, id uuid.UUID, status string) error {
	return t.db.WithContext(ctx).Model(&Contract{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Update("status", status).Error
}
