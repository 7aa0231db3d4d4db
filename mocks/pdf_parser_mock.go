package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/resume-insight/internal/services"
)

type MockPDFParser struct {
	mock.Mock
}

func (m *MockPDFParser) ExtractText(r io.Reader) (string, error) {
	args := m.Called(r)
	return args.String(0), args.Error(1)
}

func (m *MockPDFParser) ExtractTextWithMetaData(r io.Reader) (*services.PDFContent, error) {
	args := m.Called(r)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*services.PDFContent), args.Error(1)
}

func (m *MockPDFParser) ExtractFile(filePath string) (*services.PDFContent, error) {
	args := m.Called(filePath)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*services.PDFContent), args.Error(1)
}
