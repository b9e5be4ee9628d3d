package storage

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_products_company_sku,priority:1;index"`
	SKU       string    `gorm:"not null;uniqueIndex:idx_products_company_sku,priority:2"`
	Name      string    `gorm:"not null"`
	Category  string
	UnitPrice decimal.Decimal `gorm:"type:decimal(20,4)"`
	VATRate   int             `gorm:"default:19"`
	Stock     int64           `gorm:"default:0"`
	MinStock  int64           `gorm:"default:5"`
	Unit      string          `gorm:"size:16;default:buc"`
	Supplier  string
	Status    string `gorm:"size:16;default:active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductUpdate carries the mutable stock fields; nil means unchanged.
type ProductUpdate struct {
	Name      *string
	Category  *string
	UnitPrice *decimal.Decimal
	Stock     *int64
	MinStock  *int64
	Status    *string
}

type IProductTable interface {
	Insert(ctx context.Context, product *Product) (uuid.UUID, error)
	List(ctx context.Context, companyID uuid.UUID) ([]*Product, error)
	Update(ctx context.Context, companyID, id uuid.UUID, update *ProductUpdate) error
}

var _ IProductTable = (*ProductsTable)(nil)

type ProductsTable struct {
	db *gorm.DB
}

func (t *ProductsTable) Insert(ctx context.Context, product *Product) (uuid.UUID, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.Must(uuid.NewV4())
	}
	if err := t.db.WithContext(ctx).Create(product).Error; err != nil {
		return uuid.Nil, err
	}
	return product.ID, nil
}

func (t *ProductsTable) List(ctx context.Context, companyID uuid.UUID) ([]*Product, error) {
	var products []*Product
	err := t.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

func (t *ProductsTable) Update(ctx context.Context, companyID, id uuid.UUID, update *ProductUpdate) error {
	values := map[string]interface{}{}
	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.Category != nil {
		values["category"] = *update.Category
	}
	if update.UnitPrice != nil {
		values["unit_price"] = *update.UnitPrice
	}
	if update.Stock != nil {
		values["stock"] = *update.Stock
	}
	if update.MinStock != nil {
		values["min_stock"] = *update.MinStock
	}
	if update.Status != nil {
		values["status"] = *update.Status
	}
	if len(values) == 0 {
		return nil
	}
	return t.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Updates(values).Error
}
