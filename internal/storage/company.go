package storage

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"gorm.io/gorm"
)

// Company is the tenant. Every other record is scoped to a company id.
type Company struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"not null"`
	CUI            string    `gorm:"uniqueIndex;not null"`
	RegCom         string
	Address        string
	Phone          string
	Email          string
	VATRate        int    `gorm:"default:19"`
	Currency       string `gorm:"size:8;default:RON"`
	FiscalYear     string
	InvoicePrefix  string `gorm:"size:16;default:INV"`
	InvoiceCounter int    `gorm:"default:1"`
	OwnerID        uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CompanyUpdate carries the editable settings fields; nil means unchanged.
type CompanyUpdate struct {
	Name          *string
	RegCom        *string
	Address       *string
	Phone         *string
	Email         *string
	VATRate       *int
	Currency      *string
	InvoicePrefix *string
}

type ICompanyTable interface {
	Insert(ctx context.Context, company *Company) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	Update(ctx context.Context, id uuid.UUID, update *CompanyUpdate) error
	// IncrementInvoiceCounter bumps the counter and returns the value in
	// effect before the bump. Must run inside a per-company serialized write.
	IncrementInvoiceCounter(ctx context.Context, id uuid.UUID) (int, error)
}

var _ ICompanyTable = (*CompaniesTable)(nil)

type CompaniesTable struct {
	db *gorm.DB
}

func (t *CompaniesTable) Insert(ctx context.Context, company *Company) (uuid.UUID, error) {
	if company.ID == uuid.Nil {
		company.ID = uuid.Must(uuid.NewV4())
	}
	if err := t.db.WithContext(ctx).Create(company).Error; err != nil {
		return uuid.Nil, err
	}
	return company.ID, nil
}

func (t *CompaniesTable) FindByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	var company Company
	err := t.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (t *CompaniesTable) Update(ctx context.Context, id uuid.UUID, update *CompanyUpdate) error {
	values := map[string]interface{}{}
	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.RegCom != nil {
		values["reg_com"] = *update.RegCom
	}
	if update.Address != nil {
		values["address"] = *update.Address
	}
	if update.Phone != nil {
		values["phone"] = *update.Phone
	}
	if update.Email != nil {
		values["email"] = *update.Email
	}
	if update.VATRate != nil {
		values["vat_rate"] = *update.VATRate
	}
	if update.Currency != nil {
		values["currency"] = *update.Currency
	}
	if update.InvoicePrefix != nil {
		values["invoice_prefix"] = *update.InvoicePrefix
	}
	if len(values) == 0 {
		return nil
	}
	return t.db.WithContext(ctx).Model(&Company{}).Where("id = ?", id).Updates(values).Error
}

func (t *CompaniesTable) IncrementInvoiceCounter(ctx context.Context, id uuid.UUID) (int, error) {
	var company Company
	if err := t.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return 0, err
	}
	current := company.InvoiceCounter
	err := t.db.WithContext(ctx).Model(&Company{}).Where("id = ?", id).
		Update("invoice_counter", gorm.Expr("invoice_counter + 1")).Error
	if err != nil {
		return 0, err
	}
	return current, nil
}
