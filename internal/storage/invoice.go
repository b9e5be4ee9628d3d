package storage

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_company_number,priority:1;index"`
	Number     string    `gorm:"not null;uniqueIndex:idx_invoices_company_number,priority:2"`
	ClientID   string
	ClientName string
	Total      decimal.Decimal `gorm:"type:decimal(20,4)"`
	Status     string          `gorm:"size:16;default:draft"`
	IssueDate  time.Time
	DueDate    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type IInvoiceTable interface {
	Insert(ctx context.Context, invoice *Invoice) (uuid.UUID, error)
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Invoice, error)
	List(ctx context.Context, companyID uuid.UUID) ([]*Invoice, error)
	// ListOpen returns invoices still awaiting payment (sent or overdue),
	// the matcher's candidate pool.
	ListOpen(ctx context.Context, companyID uuid.UUID) ([]*Invoice, error)
	SetStatus(ctx context.Context, companyID, id uuid.UUID, status string) error
}

var _ IInvoiceTable = (*InvoicesTable)(nil)

type InvoicesTable struct {
	db *gorm.DB
}

func (t *InvoicesTable) Insert(ctx context.Context, invoice *Invoice) (uuid.UUID, error) {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.Must(uuid.NewV4())
	}
	if err := t.db.WithContext(ctx).Create(invoice).Error; err != nil {
		return uuid.Nil, err
	}
	return invoice.ID, nil
}

func (t *InvoicesTable) FindByID(ctx context.Context, companyID, id uuid.UUID) (*Invoice, error) {
	var invoice Invoice
	err := t.db.WithContext(ctx).
		First(&invoice, "id = ? AND company_id = ?", id, companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (t *InvoicesTable) List(ctx context.Context, companyID uuid.UUID) ([]*Invoice, error) {
	var invoices []*Invoice
	err := t.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

func (t *InvoicesTable) ListOpen(ctx context.Context, companyID uuid.UUID) ([]*Invoice, error) {
	var invoices []*Invoice
	err := t.db.WithContext(ctx).
		Where("company_id = ? AND status IN ?", companyID, []string{"sent", "overdue"}).
		Order("issue_date ASC").
		Find(&invoices).Error
	return invoices, err
}

func (t *InvoicesTable) SetStatus(ctx context.Context, companyID, id uuid.UUID, status string) error {
	return t.db.WithContext(ctx).Model(&Invoice{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Update("status", status).Error
}
