package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"autoapply/autoapply-uae/internal/models"
)

// ComposerService derives employer contact addresses and renders the
// application email.
type ComposerService interface {
	DeriveEmployerEmail(employerName, employerWebsite string) string
	Subject(jobTitle, applicantName string) string
	BuildHTML(profile models.CandidateProfile, jobTitle, employerName, intro string) string
}

var (
	nonAlnumSpaceRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	spaceRegex         = regexp.MustCompile(`\s+`)
)

type composerService struct{}

func NewComposerService() ComposerService {
	return &composerService{}
}

// DeriveEmployerEmail guesses an HR mailbox from employer info. This is
// a best-effort guess, not a verified address: the caller falls back to
// the applicant's own address when it returns empty.
func (c *composerService) DeriveEmployerEmail(employerName, employerWebsite string) string {
	if employerWebsite != "" {
		raw := employerWebsite
		if !strings.HasPrefix(raw, "http") {
			raw = "https://" + raw
		}
		if u, err := url.Parse(raw); err == nil {
			host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
			if host != "" {
				return "careers@" + host
			}
		}
		// Fall through
	}

	cleanName := strings.ToLower(employerName)
	cleanName = nonAlnumSpaceRegex.ReplaceAllString(cleanName, "")
	cleanName = spaceRegex.ReplaceAllString(cleanName, "")
	if len(cleanName) > 2 {
		return "careers@" + cleanName + ".com"
	}

	return ""
}

func (c *composerService) Subject(jobTitle, applicantName string) string {
	return fmt.Sprintf("Job Application: %s - %s", jobTitle, applicantName)
}

// BuildHTML renders the application body: intro paragraph, optional
// professional summary, a key-value table of applicant details, and
// skill tags. The intro defaults to a static template when empty.
func (c *composerService) BuildHTML(profile models.CandidateProfile, jobTitle, employerName, intro string) string {
	if intro == "" {
		intro = fmt.Sprintf(
			"I am writing to express my strong interest in the <strong>%s</strong> position. Please find my CV attached for your review.",
			jobTitle,
		)
	}

	var b strings.Builder

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; color: #1a1a2e;">`)
	fmt.Fprintf(&b, `<h2 style="color: #3b6cf5; margin-bottom: 4px;">Job Application: %s</h2>`, jobTitle)
	b.WriteString(`<p style="color: #666; margin-top: 0;">via AutoApply UAE</p>`)
	b.WriteString(`<hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;" />`)

	fmt.Fprintf(&b, `<p>Dear Hiring Team at <strong>%s</strong>,</p>`, employerName)
	fmt.Fprintf(&b, `<p>%s</p>`, intro)

	if profile.Summary != "" {
		fmt.Fprintf(&b, `<p><strong>Professional Summary:</strong><br/>%s</p>`, profile.Summary)
	}

	b.WriteString(`<table style="width: 100%; border-collapse: collapse; margin: 16px 0;">`)
	writeTableRow(&b, "Full Name", profile.Name)
	writeTableRow(&b, "Email", profile.Email)
	if profile.Phone != "" {
		writeTableRow(&b, "Phone", profile.Phone)
	}
	if profile.Experience != "" {
		writeTableRow(&b, "Experience", profile.Experience)
	}
	writeTableRow(&b, "Target Role", profile.JobTitle)
	b.WriteString(`</table>`)

	if len(profile.Skills) > 0 {
		b.WriteString(`<p><strong>Key Skills:</strong></p><p>`)
		for _, skill := range profile.Skills {
			fmt.Fprintf(&b, `<span style="display: inline-block; background: #eef2ff; color: #3b6cf5; padding: 4px 10px; border-radius: 12px; margin: 2px 4px 2px 0; font-size: 13px;">%s</span>`, skill)
		}
		b.WriteString(`</p>`)
	}

	b.WriteString(`<p>I look forward to hearing from you regarding this opportunity. I am available for an interview at your earliest convenience.</p>`)

	fmt.Fprintf(&b, `<p>Best regards,<br/><strong>%s</strong><br/>%s`, profile.Name, profile.Email)
	if profile.Phone != "" {
		fmt.Fprintf(&b, `<br/>%s`, profile.Phone)
	}
	b.WriteString(`</p>`)

	b.WriteString(`<hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;" />`)
	b.WriteString(`<p style="font-size: 11px; color: #999;">This application was sent via AutoApply UAE - Automated Job Application Platform</p>`)
	b.WriteString(`</div>`)

	return b.String()
}

func writeTableRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b,
		`<tr><td style="padding: 8px 12px; background: #f8f9fa; border: 1px solid #e5e7eb; font-weight: bold; width: 140px;">%s</td><td style="padding: 8px 12px; border: 1px solid #e5e7eb;">%s</td></tr>`,
		label, value,
	)
}
