package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"alfredoptarigan/resume-insight/internal/apperrors"
	"alfredoptarigan/resume-insight/internal/config"
	"alfredoptarigan/resume-insight/internal/models"
)

// ResumeAnalyzer sends an instruction, the resume text and a prompt to a
// hosted generative model and returns its completion.
type ResumeAnalyzer interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (string, error)
}

type GeminiOption func(*geminiOptions)

type geminiOptions struct {
	baseURL string
	policy  FailurePolicy
}

// WithGeminiBaseURL points the client at a different API host.
func WithGeminiBaseURL(baseURL string) GeminiOption {
	return func(o *geminiOptions) {
		o.baseURL = baseURL
	}
}

func WithAnalysisPolicy(policy FailurePolicy) GeminiOption {
	return func(o *geminiOptions) {
		o.policy = policy
	}
}

type geminiService struct {
	client    *genai.Client
	modelName string
	policy    FailurePolicy
	limiter   *rate.Limiter
	logger    *zap.Logger
}

// NewGeminiService fails with apperrors.ErrConfiguration when no API key is
// configured, so a missing credential surfaces at startup.
func NewGeminiService(cfg config.GeminiConfig, logger *zap.Logger, opts ...GeminiOption) (ResumeAnalyzer, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is not set: %w", apperrors.ErrConfiguration)
	}

	options := geminiOptions{policy: PropagatePolicy()}
	for _, opt := range opts {
		opt(&options)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if options.baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: options.baseURL}
	}

	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, "failed to create gemini client", err)
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
		policy:    options.policy,
		limiter:   newRateLimiter(cfg.RateLimit),
		logger:    logger.With(zap.String("model", modelName)),
	}, nil
}

// Analyze implements ResumeAnalyzer.
func (g *geminiService) Analyze(ctx context.Context, req models.AnalysisRequest) (string, error) {
	text, err := g.generate(ctx, req)
	if err != nil {
		g.logger.Error("Gemini analysis failed",
			zap.String("policy", g.policy.Mode.String()),
			zap.Error(err))
	}

	result, usedFallback, err := g.policy.Apply(text, err)
	if usedFallback {
		g.logger.Warn("Using fallback analysis text")
	}
	return result, err
}

func (g *geminiService) generate(ctx context.Context, req models.AnalysisRequest) (string, error) {
	if err := waitForSlot(ctx, g.limiter, "wait for gemini slot"); err != nil {
		return "", err
	}

	parts := []*genai.Part{
		genai.NewPartFromText(req.Instruction),
		genai.NewPartFromText(req.ResumeText),
		genai.NewPartFromText(req.Prompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	g.logger.Debug("Sending resume for analysis",
		zap.Int("instruction_chars", len(req.Instruction)),
		zap.Int("resume_chars", len(req.ResumeText)),
		zap.Int("prompt_chars", len(req.Prompt)))

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, nil)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrUpstreamService, "gemini generate content", err)
	}
	if resp == nil {
		return "", fmt.Errorf("gemini returned nil response: %w", apperrors.ErrUpstreamService)
	}

	text := resp.Text()
	g.logger.Info("Gemini response received", zap.Int("chars", len(text)))

	return text, nil
}
