package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/operator/actions"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// Product represents an inventory item in the service layer. LowStock is
// derived, never stored.
type Product struct {
	ID        uuid.UUID
	SKU       string
	Name      string
	Category  string
	UnitPrice decimal.Decimal
	VATRate   int
	Stock     int64
	MinStock  int64
	Unit      string
	Supplier  string
	Status    string
	LowStock  bool
	CreatedAt time.Time
}

// ProductCreate carries the fields for a new product.
type ProductCreate struct {
	SKU       string
	Name      string
	Category  string
	UnitPrice decimal.Decimal
	VATRate   int
	Stock     int64
	MinStock  int64
	Unit      string
	Supplier  string
}

// ProductUpdate mirrors the storage update; nil means unchanged.
type ProductUpdate = storage.ProductUpdate

// ProductService handles inventory business logic.
type ProductService struct {
	storage *storage.Storage
	op      Processor
}

// NewProductService creates a new ProductService.
func NewProductService(store *storage.Storage, op Processor) *ProductService {
	return &ProductService{storage: store, op: op}
}

// Create stores a new product.
func (s *ProductService) Create(ctx context.Context, companyID uuid.UUID, input ProductCreate) (uuid.UUID, error) {
	if strings.TrimSpace(input.SKU) == "" {
		return uuid.Nil, &finance.ValidationError{Field: "sku", Reason: "required"}
	}
	if strings.TrimSpace(input.Name) == "" {
		return uuid.Nil, &finance.ValidationError{Field: "name", Reason: "required"}
	}
	if input.UnitPrice.IsNegative() {
		return uuid.Nil, &finance.ValidationError{Field: "unitPrice", Reason: "must not be negative"}
	}

	product := &storage.Product{
		SKU:       input.SKU,
		Name:      input.Name,
		Category:  input.Category,
		UnitPrice: input.UnitPrice,
		Stock:     input.Stock,
		MinStock:  input.MinStock,
		Unit:      input.Unit,
		Supplier:  input.Supplier,
	}
	if input.VATRate > 0 {
		product.VATRate = input.VATRate
	}

	action := &actions.CreateProduct{Company: companyID, Product: product}
	if err := s.op.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.ID, nil
}

// List returns the company's products with the low-stock flag computed.
func (s *ProductService) List(ctx context.Context, companyID uuid.UUID) ([]Product, error) {
	rows, err := s.storage.Products.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	products := make([]Product, len(rows))
	for i, row := range rows {
		products[i] = Product{
			ID:        row.ID,
			SKU:       row.SKU,
			Name:      row.Name,
			Category:  row.Category,
			UnitPrice: row.UnitPrice,
			VATRate:   row.VATRate,
			Stock:     row.Stock,
			MinStock:  row.MinStock,
			Unit:      row.Unit,
			Supplier:  row.Supplier,
			Status:    row.Status,
			LowStock:  row.Stock <= row.MinStock,
			CreatedAt: row.CreatedAt,
		}
	}
	return products, nil
}

// Update applies a partial update to a product.
func (s *ProductService) Update(ctx context.Context, companyID, id uuid.UUID, update *ProductUpdate) error {
	return s.op.Process(ctx, &actions.UpdateProduct{
		Company:   companyID,
		ProductID: id,
		Update:    update,
	})
}
