package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/storage"
)

type CreateProduct struct {
	Company uuid.UUID
	Product *storage.Product

	ID uuid.UUID

	IAction
}

func (c *CreateProduct) CompanyID() uuid.UUID { return c.Company }

func (c *CreateProduct) Perform(ctx context.Context, writer *storage.Writer) error {
	c.Product.CompanyID = c.Company
	id, err := writer.Products.Insert(ctx, c.Product)
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}
