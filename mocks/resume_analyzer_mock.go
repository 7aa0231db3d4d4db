package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/resume-insight/internal/models"
)

type MockResumeAnalyzer struct {
	mock.Mock
}

func (m *MockResumeAnalyzer) Analyze(ctx context.Context, req models.AnalysisRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
