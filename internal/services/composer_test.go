package services

import (
	"strings"
	"testing"

	"autoapply/autoapply-uae/internal/models"
)

func TestDeriveEmployerEmail(t *testing.T) {
	tests := []struct {
		name     string
		employer string
		website  string
		want     string
	}{
		{"website with scheme and www", "Acme", "https://www.Acme.com", "careers@acme.com"},
		{"website without scheme", "Acme", "jobs.acme.ae", "careers@jobs.acme.ae"},
		{"bare www website", "Acme", "www.Foo.com", "careers@foo.com"},
		{"name fallback strips punctuation", "Acme Corp!", "", "careers@acmecorp.com"},
		{"name fallback lowercases", "Gulf Systems LLC", "", "careers@gulfsystemsllc.com"},
		{"too short after cleaning", "!!", "", ""},
		{"two clean chars", "A B", "", ""},
		{"empty everything", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewComposerService().DeriveEmployerEmail(tt.employer, tt.website)
			if got != tt.want {
				t.Errorf("DeriveEmployerEmail(%q, %q) = %q, want %q", tt.employer, tt.website, got, tt.want)
			}
		})
	}
}

func TestSubject(t *testing.T) {
	got := NewComposerService().Subject("Backend Developer", "Jane Doe")
	want := "Job Application: Backend Developer - Jane Doe"
	if got != want {
		t.Errorf("Subject = %q, want %q", got, want)
	}
}

func TestBuildHTML(t *testing.T) {
	profile := models.CandidateProfile{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Phone:      "+971 50 123 4567",
		Skills:     []string{"Go", "Docker"},
		JobTitle:   "Backend Developer",
		Experience: "5 years",
		Summary:    "Builds reliable services.",
	}

	html := NewComposerService().BuildHTML(profile, "Backend Developer", "Acme", "")

	for _, want := range []string{
		"Dear Hiring Team at <strong>Acme</strong>",
		"Jane Doe",
		"jane@example.com",
		"+971 50 123 4567",
		"5 years",
		"Builds reliable services.",
		">Go</span>",
		">Docker</span>",
		"express my strong interest", // default intro
		"via AutoApply UAE",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("BuildHTML output missing %q", want)
		}
	}
}

func TestBuildHTMLCustomIntro(t *testing.T) {
	profile := models.CandidateProfile{Name: "Jane", Email: "jane@example.com"}

	html := NewComposerService().BuildHTML(profile, "QA Engineer", "Acme", "My tailored opening paragraph.")

	if !strings.Contains(html, "My tailored opening paragraph.") {
		t.Errorf("custom intro not rendered")
	}
	if strings.Contains(html, "express my strong interest") {
		t.Errorf("default intro rendered alongside custom intro")
	}
}

func TestBuildHTMLOmitsEmptyFields(t *testing.T) {
	profile := models.CandidateProfile{Name: "Jane", Email: "jane@example.com"}

	html := NewComposerService().BuildHTML(profile, "QA Engineer", "Acme", "")

	if strings.Contains(html, ">Phone<") {
		t.Errorf("phone row rendered for empty phone")
	}
	if strings.Contains(html, ">Experience<") {
		t.Errorf("experience row rendered for empty experience")
	}
	if strings.Contains(html, "Professional Summary") {
		t.Errorf("summary block rendered for empty summary")
	}
	if strings.Contains(html, "Key Skills") {
		t.Errorf("skills block rendered for empty skills")
	}
}
