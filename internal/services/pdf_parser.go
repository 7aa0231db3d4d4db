package services

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"alfredoptarigan/resume-insight/internal/apperrors"
)

type PDFParserService interface {
	ExtractText(r io.Reader) (string, error)
	ExtractTextWithMetaData(r io.Reader) (*PDFContent, error)
	ExtractFile(filePath string) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
}

type pdfParserService struct {
	logger *zap.Logger
}

func NewPDFParserService(logger *zap.Logger) PDFParserService {
	return &pdfParserService{logger: logger}
}

// ExtractText returns the text of every page joined by a single space, in
// page order.
func (p *pdfParserService) ExtractText(r io.Reader) (string, error) {
	content, err := p.ExtractTextWithMetaData(r)
	if err != nil {
		return "", err
	}
	return content.Text, nil
}

func (p *pdfParserService) ExtractTextWithMetaData(r io.Reader) (*PDFContent, error) {
	if r == nil {
		return nil, fmt.Errorf("no document uploaded: %w", apperrors.ErrMissingInput)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty document: %w", apperrors.ErrMissingInput)
	}

	pages, err := readPages(data)
	if err != nil {
		p.logger.Warn("PDF parsing failed", zap.Int("bytes", len(data)), zap.Error(err))
		return nil, err
	}

	p.logger.Debug("PDF parsed", zap.Int("pages", len(pages)), zap.Int("bytes", len(data)))

	return &PDFContent{
		Text:      strings.Join(pages, " "),
		PageCount: len(pages),
	}, nil
}

func (p *pdfParserService) ExtractFile(filePath string) (*PDFContent, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s: %w", filePath, apperrors.ErrMissingInput)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return p.ExtractTextWithMetaData(f)
}

// readPages returns one entry per page. The pdf package panics on some
// malformed inputs, so panics are reported as format errors.
func readPages(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = apperrors.Wrap(apperrors.ErrDocumentFormat, "failed to parse PDF", fmt.Errorf("%v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDocumentFormat, "failed to open PDF", err)
	}

	totalPage := reader.NumPage()
	pages = make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrDocumentFormat, fmt.Sprintf("failed to read page %d", pageIndex), err)
		}
		pages = append(pages, text)
	}

	return pages, nil
}

// CleanText trims every line and drops blank ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}

// Preview returns at most n runes of cleaned text, for log lines.
func Preview(text string, n int) string {
	runes := []rune(strings.Join(strings.Fields(text), " "))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n]) + "..."
}
