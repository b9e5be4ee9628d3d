package contract

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ecks6/ContaAI2/internal/service"
)

// contractService is the service surface the contract handlers need.
type contractService interface {
	Create(ctx context.Context, companyID uuid.UUID, input service.ContractCreate) (uuid.UUID, error)
	List(ctx context.Context, companyID uuid.UUID) ([]service.Contract, error)
	SetStatus(ctx context.Context, companyID, id uuid.UUID, status string) error
}

// Contract is the API response model for a contract.
type Contract struct {
	ID          string `json:"id" doc:"Contract UUID"`
	Number      string `json:"number"`
	Title       string `json:"title,omitempty"`
	ClientName  string `json:"clientName,omitempty"`
	Type        string `json:"type,omitempty"`
	Status      string `json:"status" enum:"draft,active,completed,terminated"`
	Value       string `json:"value" doc:"Decimal amount"`
	Currency    string `json:"currency,omitempty"`
	StartDate   string `json:"startDate,omitempty" doc:"RFC3339 start date"`
	EndDate     string `json:"endDate,omitempty" doc:"RFC3339 end date"`
	Description string `json:"description,omitempty"`
}

func contractFromService(c service.Contract) Contract {
	out := Contract{
		ID:          c.ID.String(),
		Number:      c.Number,
		Title:       c.Title,
		ClientName:  c.ClientName,
		Type:        c.Type,
		Status:      c.Status,
		Value:       c.Value.String(),
		Currency:    c.Currency,
		Description: c.Description,
	}
	if c.StartDate != nil {
		out.StartDate = c.StartDate.Format(time.RFC3339)
	}
	if c.EndDate != nil {
		out.EndDate = c.EndDate.Format(time.RFC3339)
	}
	return out
}
