package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/storage"
)

type CreateContract struct {
	Company  uuid.UUID
	Contract *storage.Contract

	ID uuid.UUID

	IAction
}

func (c *CreateContract) CompanyID() uuid.UUID { return c.Company }

func (c *CreateContract) Perform(ctx context.Context, writer *storage.Writer) error {
	c.Contract.CompanyID = c.Company
	id, err := writer.Contracts.Insert(ctx, c.Contract)
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}
