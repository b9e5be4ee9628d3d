package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/storage"
)

type SetContractStatus struct {
	Company    uuid.UUID
	ContractID uuid.UUID
	Status     string

	IAction
}

func (s *SetContractStatus) CompanyID() uuid.UUID { return s.Company }

func (s *SetContractStatus) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Contracts.SetStatus(ctx, s.Company, s.ContractID, s.Status)
}
