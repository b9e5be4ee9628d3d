package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ecks6/ContaAI2/internal/analysis"
	"github.com/ecks6/ContaAI2/internal/operator/actions"
)

type MockProcessor struct {
	mock.Mock
}

var _ Processor = (*MockProcessor)(nil)

func (m *MockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type MockAnalyzer struct {
	mock.Mock
}

var _ analysis.Analyzer = (*MockAnalyzer)(nil)

func (m *MockAnalyzer) AnalyzeDocument(ctx context.Context, mimeType string, data []byte) (*analysis.Result, error) {
	args := m.Called(ctx, mimeType, data)
	result, _ := args.Get(0).(*analysis.Result)
	return result, args.Error(1)
}
