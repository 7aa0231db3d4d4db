package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/resume-insight/internal/models"
)

type MockCareerAdvisor struct {
	mock.Mock
}

func (m *MockCareerAdvisor) Suggest(ctx context.Context, req models.CareerRequest) (models.CareerResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.CareerResponse), args.Error(1)
}
