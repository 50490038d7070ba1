package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"autoapply/autoapply-uae/internal/models"
)

// IntroGenerator produces a personalized opening paragraph for one
// application email. It is optional: the dispatcher falls back to the
// static template when no generator is configured or generation fails.
type IntroGenerator interface {
	Generate(ctx context.Context, profile models.CandidateProfile, job models.JobListing) (string, error)
}

type geminiIntroGenerator struct {
	client    *genai.Client
	modelName string
}

func NewGeminiIntroGenerator(ctx context.Context, apiKey string) (IntroGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiIntroGenerator{
		client:    client,
		modelName: "gemini-2.5-flash",
	}, nil
}

// Generate implements IntroGenerator.
func (g *geminiIntroGenerator) Generate(ctx context.Context, profile models.CandidateProfile, job models.JobListing) (string, error) {
	temperature := float32(0.7)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 256,
	}

	prompt := buildIntroPrompt(profile, job)

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate intro: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

func buildIntroPrompt(profile models.CandidateProfile, job models.JobListing) string {
	return fmt.Sprintf(`You are writing the opening paragraph of a job application email on behalf of a candidate.

CANDIDATE:
Name: %s
Current role: %s
Experience: %s
Skills: %s

VACANCY:
Title: %s
Employer: %s

Write 2-3 professional sentences expressing interest in the vacancy and connecting the candidate's background to it. Mention that the CV is attached. Return plain text only, no salutation, no signature, no markdown.`,
		profile.Name,
		profile.JobTitle,
		profile.Experience,
		strings.Join(profile.Skills, ", "),
		job.JobTitle,
		job.EmployerName,
	)
}
