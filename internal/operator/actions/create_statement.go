package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/storage"
)

// CreateStatement stores a bank statement together with its normalized lines
// in one transaction. Lines are prepared by the caller; the statement never
// exists without them.
type CreateStatement struct {
	Company   uuid.UUID
	Statement *storage.BankStatement
	Lines     []storage.BankTransaction

	ID uuid.UUID

	IAction
}

func (c *CreateStatement) CompanyID() uuid.UUID { return c.Company }

func (c *CreateStatement) Perform(ctx context.Context, writer *storage.Writer) error {
	c.Statement.CompanyID = c.Company
	id, err := writer.Statements.Insert(ctx, c.Statement, c.Lines)
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}
