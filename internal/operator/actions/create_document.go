package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/storage"
)

type CreateDocument struct {
	Company  uuid.UUID
	Document *storage.Document

	ID uuid.UUID

	IAction
}

func (c *CreateDocument) CompanyID() uuid.UUID { return c.Company }

func (c *CreateDocument) Perform(ctx context.Context, writer *storage.Writer) error {
	c.Document.CompanyID = c.Company
	id, err := writer.Documents.Insert(ctx, c.Document)
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}
