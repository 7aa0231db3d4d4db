package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-insight/internal/apperrors"
	"alfredoptarigan/resume-insight/internal/models"
	"alfredoptarigan/resume-insight/internal/services"
)

type ResumeHandler struct {
	uploads  services.UploadService
	parser   services.PDFParserService
	analyzer services.ResumeAnalyzer
	prompts  *services.PromptBuilder
	logger   *zap.Logger
}

func NewResumeHandler(
	uploads services.UploadService,
	parser services.PDFParserService,
	analyzer services.ResumeAnalyzer,
	logger *zap.Logger,
) *ResumeHandler {
	return &ResumeHandler{
		uploads:  uploads,
		parser:   parser,
		analyzer: analyzer,
		prompts:  services.NewPromptBuilder(),
		logger:   logger,
	}
}

// HandleExtract handles POST /resume/extract
func (h *ResumeHandler) HandleExtract(c *fiber.Ctx) error {
	content, err := h.extractUpload(c)
	if err != nil {
		return err
	}

	return c.JSON(models.ExtractResponse{
		Text:      content.Text,
		PageCount: content.PageCount,
	})
}

// HandleAnalyze handles POST /resume/analyze
func (h *ResumeHandler) HandleAnalyze(c *fiber.Ctx) error {
	analysisID := uuid.New().String()
	logger := h.logger.With(zap.String("analysis_id", analysisID))

	content, err := h.extractUpload(c)
	if err != nil {
		return err
	}

	req, err := h.prompts.BuildAnalysisRequest(
		c.FormValue("input"),
		content.Text,
		c.FormValue("prompt"),
		c.FormValue("preset"),
	)
	if err != nil {
		return err
	}

	logger.Info("Analyzing resume",
		zap.Int("pages", content.PageCount),
		zap.String("preview", services.Preview(content.Text, 80)))

	analysis, err := h.analyzer.Analyze(c.UserContext(), req)
	if err != nil {
		logger.Error("Resume analysis failed", zap.Error(err))
		return err
	}

	return c.JSON(models.AnalysisResponse{
		ID:        analysisID,
		Analysis:  analysis,
		PageCount: content.PageCount,
	})
}

func (h *ResumeHandler) extractUpload(c *fiber.Ctx) (*services.PDFContent, error) {
	file, err := c.FormFile("resume")
	if err != nil {
		return nil, fmt.Errorf("form field 'resume' is required: %w", apperrors.ErrMissingInput)
	}

	doc, err := h.uploads.Open(file)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	content, err := h.parser.ExtractTextWithMetaData(doc.Reader)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(content.Text) == "" {
		h.logger.Warn("Uploaded PDF has no extractable text", zap.String("file", doc.OriginalName))
	}

	return content, nil
}
