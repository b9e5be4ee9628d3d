package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/storage"
)

// IAction is one unit of write work. CompanyID drives the worker routing:
// actions with the same company id execute serially, in submission order.
// Actions that exist before a company does return uuid.Nil.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
	CompanyID() uuid.UUID
}
