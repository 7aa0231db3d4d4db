package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"alfredoptarigan/resume-insight/internal/apperrors"
	"alfredoptarigan/resume-insight/internal/config"
	"alfredoptarigan/resume-insight/internal/models"
)

const CareerFallbackMessage = "Unable to fetch career suggestions at this time."

// CareerAdvisor turns skills and interests into free-text career suggestions.
type CareerAdvisor interface {
	Suggest(ctx context.Context, req models.CareerRequest) (models.CareerResponse, error)
}

type CareerOption func(*careerService)

func WithCareerPolicy(policy FailurePolicy) CareerOption {
	return func(c *careerService) {
		c.policy = policy
	}
}

type careerService struct {
	cfg     config.GroqConfig
	prompts *PromptBuilder
	policy  FailurePolicy
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewCareerService builds a chat-completion backed advisor. The default
// policy replaces any upstream failure with CareerFallbackMessage.
func NewCareerService(cfg config.GroqConfig, logger *zap.Logger, opts ...CareerOption) (CareerAdvisor, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("groq api key is not set: %w", apperrors.ErrConfiguration)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("groq model is not set: %w", apperrors.ErrConfiguration)
	}

	c := &careerService{
		cfg:     cfg,
		prompts: NewPromptBuilder(),
		policy:  FallbackPolicy(CareerFallbackMessage),
		limiter: newRateLimiter(cfg.RateLimit),
		logger:  logger.With(zap.String("model", cfg.Model)),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Suggest implements CareerAdvisor. It makes exactly one upstream attempt.
func (c *careerService) Suggest(ctx context.Context, req models.CareerRequest) (models.CareerResponse, error) {
	prompt := c.prompts.BuildCareerPrompt(req.Skills, req.Interests)

	text, err := c.complete(ctx, prompt)
	if err != nil {
		c.logger.Error("Error fetching career suggestions",
			zap.String("policy", c.policy.Mode.String()),
			zap.Error(err))
	}

	suggestions, usedFallback, err := c.policy.Apply(text, err)
	if err != nil {
		return models.CareerResponse{}, err
	}

	return models.CareerResponse{
		Suggestions: suggestions,
		Fallback:    usedFallback,
	}, nil
}

// complete creates a fresh client for every call so no state is shared
// between requests.
func (c *careerService) complete(ctx context.Context, prompt string) (string, error) {
	if err := waitForSlot(ctx, c.limiter, "wait for chat completion slot"); err != nil {
		return "", err
	}

	opts := []openai.Option{
		openai.WithToken(c.cfg.APIKey),
		openai.WithModel(c.cfg.Model),
	}
	if c.cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(c.cfg.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrUpstreamService, "create chat client", err)
	}

	completion, err := llms.GenerateFromSinglePrompt(ctx, llm, prompt)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrUpstreamService, "chat completion", err)
	}

	suggestions := strings.TrimSpace(completion)
	if suggestions == "" {
		return "", fmt.Errorf("chat completion returned no content: %w", apperrors.ErrUpstreamService)
	}

	c.logger.Info("Career suggestions received", zap.Int("chars", len(suggestions)))
	return suggestions, nil
}
