package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ecks6/ContaAI2/internal/finance"
	"github.com/ecks6/ContaAI2/internal/operator/actions"
	"github.com/ecks6/ContaAI2/internal/storage"
)

// Contract represents a contract in the service layer.
type Contract struct {
	ID          uuid.UUID
	Number      string
	Title       string
	ClientName  string
	Type        string
	Status      string
	Value       decimal.Decimal
	Currency    string
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
}

// ContractCreate carries the fields for a new contract.
type ContractCreate struct {
	Number      string
	Title       string
	ClientName  string
	Type        string
	Status      string
	Value       decimal.Decimal
	Currency    string
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
}

var contractStatuses = map[string]bool{
	"draft":      true,
	"active":     true,
	"completed":  true,
	"terminated": true,
}

// ContractService handles contract business logic.
type ContractService struct {
	storage *storage.Storage
	op      Processor
}

// NewContractService creates a new ContractService.
func NewContractService(store *storage.Storage, op Processor) *ContractService {
	return &ContractService{storage: store, op: op}
}

// Create stores a new contract.
func (s *ContractService) Create(ctx context.Context, companyID uuid.UUID, input ContractCreate) (uuid.UUID, error) {
	if strings.TrimSpace(input.Number) == "" {
		return uuid.Nil, &finance.ValidationError{Field: "number", Reason: "required"}
	}
	if input.Status != "" && !contractStatuses[input.Status] {
		return uuid.Nil, &finance.ValidationError{Field: "status", Reason: "unknown status"}
	}

	action := &actions.CreateContract{
		Company: companyID,
		Contract: &storage.Contract{
			Number:      input.Number,
			Title:       input.Title,
			ClientName:  input.ClientName,
			Type:        input.Type,
			Status:      input.Status,
			Value:       input.Value,
			Currency:    input.Currency,
			StartDate:   input.StartDate,
			EndDate:     input.EndDate,
			Description: input.Description,
		},
	}
	if err := s.op.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.ID, nil
}

// List returns the company's contracts, newest first.
func (s *ContractService) List(ctx context.Context, companyID uuid.UUID) ([]Contract, error) {
	rows, err := s.storage.Contracts.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	contracts := make([]Contract, len(rows))
	for i, row := range rows {
		contracts[i] = Contract{
			ID:          row.ID,
			Number:      row.Number,
			Title:       row.Title,
			ClientName:  row.ClientName,
			Type:        row.Type,
			Status:      row.Status,
			Value:       row.Value,
			Currency:    row.Currency,
			StartDate:   row.StartDate,
			EndDate:     row.EndDate,
			Description: row.Description,
		}
	}
	return contracts, nil
}

// SetStatus moves a contract through its lifecycle.
func (s *ContractService) SetStatus(ctx context.Context, companyID, id uuid.UUID, status string) error {
	if !contractStatuses[status] {
		return &finance.ValidationError{Field: "status", Reason: "unknown status"}
	}
	return s.op.Process(ctx, &actions.SetContractStatus{
		Company:    companyID,
		ContractID: id,
		Status:     status,
	})
}
