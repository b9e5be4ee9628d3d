package product

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ecks6/ContaAI2/internal/handlers/v1/httperr"
	"github.com/ecks6/ContaAI2/internal/handlers/v1/middleware"
	"github.com/ecks6/ContaAI2/internal/service"
)

// UpdateProductBody carries a partial product update. Absent fields stay
// unchanged.
type UpdateProductBody struct {
	Name      *string `json:"name,omitempty" doc:"Product name"`
	Category  *string `json:"category,omitempty" doc:"Product category"`
	UnitPrice *string `json:"unitPrice,omitempty" doc:"Decimal amount"`
	Stock     *int64  `json:"stock,omitempty" doc:"Stock level"`
	MinStock  *int64  `json:"minStock,omitempty" doc:"Low stock threshold"`
	Status    *string `json:"status,omitempty" doc:"Product status"`
}

// UpdateProductInput is the Huma input for updating a product.
type UpdateProductInput struct {
	ID   string `path:"id" format:"uuid" doc:"Product UUID"`
	Body UpdateProductBody
}

// UpdateProductOutput is the Huma output for updating a product.
type UpdateProductOutput struct {
	Status int
}

// UpdateProductHandler handles PATCH /v1/products/{id}.
type UpdateProductHandler struct {
	svc productService
}

// NewUpdateProductHandler creates a new UpdateProductHandler.
func NewUpdateProductHandler(svc productService) *UpdateProductHandler {
	return &UpdateProductHandler{svc: svc}
}

// Register registers the endpoint with the Huma API.
func (h *UpdateProductHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-product",
		Method:        http.MethodPatch,
		Path:          "/v1/products/{id}",
		Summary:       "Update product",
		Description:   "Applies a partial update to an inventory item.",
		Tags:          []string{"Inventory"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *UpdateProductHandler) handle(ctx context.Context, input *UpdateProductInput) (*UpdateProductOutput, error) {
	companyID := middleware.CompanyID(ctx)
	if err := httperr.RequireCompany(companyID); err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	update := &service.ProductUpdate{
		Name:     input.Body.Name,
		Category: input.Body.Category,
		Stock:    input.Body.Stock,
		MinStock: input.Body.MinStock,
		Status:   input.Body.Status,
	}
	if input.Body.UnitPrice != nil {
		unitPrice, err := decimal.NewFromString(*input.Body.UnitPrice)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid unitPrice", err)
		}
		update.UnitPrice = &unitPrice
	}

	if err := h.svc.Update(ctx, companyID, id, update); err != nil {
		return nil, httperr.FromService(err)
	}

	return &UpdateProductOutput{Status: http.StatusNoContent}, nil
}
