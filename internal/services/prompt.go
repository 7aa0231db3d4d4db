package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"alfredoptarigan/resume-insight/internal/models"
)

const (
	PresetReview = "review"
	PresetMatch  = "match"

	DefaultPreset = PresetReview
)

var ErrUnknownPreset = errors.New("unknown prompt preset")

var resumePresets = map[string]string{
	PresetReview: `You are an experienced Technical Human Resource Manager. Your task is to review the provided resume against the job description.
Please share your professional evaluation on whether the candidate's profile aligns with the role.
Highlight the strengths and weaknesses of the applicant in relation to the specified job requirements.`,

	PresetMatch: `You are a skilled ATS (Applicant Tracking System) scanner with a deep understanding of data science, software engineering and ATS functionality.
Your task is to evaluate the resume against the provided job description.
Give me the percentage of match if the resume matches the job description.
First the output should come as percentage, then keywords missing, and last final thoughts.`,
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCareerPrompt creates the single user message for career suggestions
func (pb *PromptBuilder) BuildCareerPrompt(skills, interests string) string {
	return fmt.Sprintf(
		"Based on the following skills: %s and interests: %s, "+
			"suggest possible career options that align with industry trends. "+
			"Also, recommend relevant courses, certifications, and projects to achieve the predicted job.",
		skills, interests)
}

// ResumePreset returns the prompt registered under name.
func (pb *PromptBuilder) ResumePreset(name string) (string, error) {
	prompt, ok := resumePresets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownPreset, name, strings.Join(pb.PresetNames(), ", "))
	}
	return prompt, nil
}

func (pb *PromptBuilder) PresetNames() []string {
	names := make([]string, 0, len(resumePresets))
	for name := range resumePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildAnalysisRequest resolves the prompt for one analysis call. An explicit
// prompt wins over a preset; with neither, DefaultPreset is used.
func (pb *PromptBuilder) BuildAnalysisRequest(instruction, resumeText, prompt, preset string) (models.AnalysisRequest, error) {
	if strings.TrimSpace(prompt) == "" {
		if strings.TrimSpace(preset) == "" {
			preset = DefaultPreset
		}

		resolved, err := pb.ResumePreset(preset)
		if err != nil {
			return models.AnalysisRequest{}, err
		}
		prompt = resolved
	}

	return models.AnalysisRequest{
		Instruction: instruction,
		ResumeText:  resumeText,
		Prompt:      prompt,
	}, nil
}
