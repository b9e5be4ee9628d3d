package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/storage"
)

type UpdateProduct struct {
	Company   uuid.UUID
	ProductID uuid.UUID
	Update    *storage.ProductUpdate

	IAction
}

func (u *UpdateProduct) CompanyID() uuid.UUID { return u.Company }

func (u *UpdateProduct) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Products.Update(ctx, u.Company, u.ProductID, u.Update)
}
