package services

import (
	"strings"
	"testing"

	"autoapply/autoapply-uae/internal/models"
)

func TestBuildIntroPrompt(t *testing.T) {
	profile := models.CandidateProfile{
		Name:       "Jane Doe",
		JobTitle:   "Backend Developer",
		Experience: "5 years",
		Skills:     []string{"Go", "PostgreSQL"},
	}
	job := models.JobListing{JobTitle: "Platform Engineer", EmployerName: "Acme"}

	prompt := buildIntroPrompt(profile, job)

	for _, want := range []string{"Jane Doe", "Backend Developer", "5 years", "Go, PostgreSQL", "Platform Engineer", "Acme"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
