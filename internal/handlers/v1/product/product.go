package product

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/service"
)

// productService is the service surface the product handlers need.
type productService interface {
	Create(ctx context.Context, companyID uuid.UUID, input service.ProductCreate) (uuid.UUID, error)
	List(ctx context.Context, companyID uuid.UUID) ([]service.Product, error)
	Update(ctx context.Context, companyID, id uuid.UUID, update *service.ProductUpdate) error
}

// Product is the API response model for an inventory item.
type Product struct {
	ID        string `json:"id" doc:"Product UUID"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	UnitPrice string `json:"unitPrice" doc:"Decimal amount"`
	VATRate   int    `json:"vatRate"`
	Stock     int64  `json:"stock"`
	MinStock  int64  `json:"minStock"`
	Unit      string `json:"unit,omitempty"`
	Supplier  string `json:"supplier,omitempty"`
	Status    string `json:"status,omitempty"`
	LowStock  bool   `json:"lowStock" doc:"True when stock is at or below the minimum"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func productFromService(p service.Product) Product {
	return Product{
		ID:        p.ID.String(),
		SKU:       p.SKU,
		Name:      p.Name,
		Category:  p.Category,
		UnitPrice: p.UnitPrice.String(),
		VATRate:   p.VATRate,
		Stock:     p.Stock,
		MinStock:  p.MinStock,
		Unit:      p.Unit,
		Supplier:  p.Supplier,
		Status:    p.Status,
		LowStock:  p.LowStock,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
