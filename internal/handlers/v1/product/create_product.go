package product

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
	"github.com/ecks6/ContaAI2/internal/service"
)

// CreateProductBody is the request body for creating a product.
type CreateProductBody struct {
	SKU       string `json:"sku" required:"true" minLength:"1" doc:"Stock keeping unit"`
	Name      string `json:"name" required:"true" minLength:"1" doc:"Product name"`
	Category  string `json:"category" doc:"Product category"`
	UnitPrice string `json:"unitPrice" required:"true" doc:"Decimal amount"`
	VATRate   int    `json:"vatRate" doc:"VAT percentage, defaults to 19"`
	Stock     int64  `json:"stock" doc:"Initial stock level"`
	MinStock  int64  `json:"minStock" doc:"Low stock threshold"`
	Unit      string `json:"unit" doc:"Unit of measure"`
	Supplier  string `json:"supplier" doc:"Supplier name"`
}

// CreateProductInput is the Huma input for creating a product.
type CreateProductInput struct {
	Body CreateProductBody
}

// CreateProductOutput is the Huma output for creating a product.
type CreateProductOutput struct {
	Status int
	Body   struct {
		ID string `json:"id" doc:"Product UUID"`
	}
}

// CreateProductHandler handles POST /v1/products.
type CreateProductHandler struct {
	svc productService
}

// NewCreateProductHandler creates a new CreateProductHandler.
func NewCreateProductHandler(svc productService) *CreateProductHandler {
	return &CreateProductHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *CreateProductHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-product",
		Method:        http.MethodPost,
		Path:          "/v1/products",
		Summary:       "Create product",
		Description:   "Adds an inventory item.",
		Tags:          []string{"Inventory"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateProductHandler) handle(ctx context.Context, input *CreateProductInput) (*CreateProductOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	unitPrice, err := decimal.NewFromString(input.Body.UnitPrice)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid unitPrice", err)
	}

	id, err := h.svc.Create(ctx, companyID, service.ProductCreate{
		SKU:       input.Body.SKU,
		Name:      input.Body.Name,
		Category:  input.Body.Category,
		UnitPrice: unitPrice,
		VATRate:   input.Body.VATRate,
		Stock:     input.Body.Stock,
		MinStock:  input.Body.MinStock,
		Unit:      input.Body.Unit,
		Supplier:  input.Body.Supplier,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	out := &CreateProductOutput{Status: http.StatusCreated}
	out.Body.ID = id.String()
	return out, nil
}
