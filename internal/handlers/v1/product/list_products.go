package product

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
)

// ListProductsInput is the Huma input for listing products.
type ListProductsInput struct{}

// ListProductsOutput is the Huma output for listing products.
type ListProductsOutput struct {
	Body struct {
		Products []Product `json:"products"`
	}
}

// ListProductsHandler handles GET /v1/products.
type ListProductsHandler struct {
	svc productService
}

// NewListProductsHandler creates a new ListProductsHandler.
func NewListProductsHandler(svc productService) *ListProductsHandler {
	return &ListProductsHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListProductsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/v1/products",
		Summary:     "List products",
		Description: "Lists inventory items with the low stock flag computed.",
		Tags:        []string{"Inventory"},
	}, h.handle)
}

func (h *ListProductsHandler) handle(ctx context.Context, _ *ListProductsInput) (*ListProductsOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	products, err := h.svc.List(ctx, companyID)
	if err != nil {
		return nil, httperr.FromService(err)
	}

	out := &ListProductsOutput{}
	out.Body.Products = make([]Product, len(products))
	for i, p := range products {
		out.Body.Products[i] = productFromService(p)
	}
	return out, nil
}
