package services

import (
	"regexp"
	"strconv"
	"strings"

	"autoapply/autoapply-uae/internal/models"
)

const (
	maxSkills        = 20
	maxSummaryLength = 300
	nameLineScan     = 5
	titleLineScan    = 10
)

// ExtractorService infers CandidateProfile fields from plain CV text.
// Every extractor is a pure function over the text: a miss yields an
// empty value, never an error, so a barely-readable CV still produces
// a usable (if sparse) profile.
type ExtractorService interface {
	ParseCV(text string) models.CandidateProfile
	ExtractEmail(text string) string
	ExtractPhone(text string) string
	ExtractName(text string) string
	ExtractSkills(text string) []string
	ExtractJobTitle(text string) string
	ExtractExperience(text string) string
	ExtractSummary(text string) string
}

var (
	emailRegex      = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRegex      = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?\(?\d{2,4}\)?[\s.-]?\d{3,4}[\s.-]?\d{3,4}`)
	nameLineRegex   = regexp.MustCompile(`^[A-Za-z\s'-]{2,30}$`)
	digitRunRegex   = regexp.MustCompile(`\d{5,}`)
	nonDigitRegex   = regexp.MustCompile(`\D`)
	yearsRegex      = regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`)
	employmentRegex = regexp.MustCompile(`(?is)employment\s*history(.*?)(?:education|certif|project|$)`)
	summaryRegex    = regexp.MustCompile(`(?is)(?:summary|profile|about|objective)\s*\n+(.*?)(?:\n\s*\n|employment|experience|education|skills)`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

type extractorService struct {
	vocab     Vocabulary
	roleRegex *regexp.Regexp
}

func NewExtractorService(vocab Vocabulary) ExtractorService {
	return &extractorService{
		vocab:     vocab,
		roleRegex: regexp.MustCompile(`(?i)(?:` + strings.Join(vocab.RoleKeywords, "|") + `)`),
	}
}

// ParseCV runs every extractor and assembles the profile. Fields are
// independent; one miss never affects another.
func (e *extractorService) ParseCV(text string) models.CandidateProfile {
	return models.CandidateProfile{
		Name:       e.ExtractName(text),
		Email:      e.ExtractEmail(text),
		Phone:      e.ExtractPhone(text),
		Skills:     e.ExtractSkills(text),
		JobTitle:   e.ExtractJobTitle(text),
		Experience: e.ExtractExperience(text),
		Summary:    e.ExtractSummary(text),
	}
}

// ExtractEmail returns the first well-formed address in the text.
func (e *extractorService) ExtractEmail(text string) string {
	return emailRegex.FindString(text)
}

// ExtractPhone accepts the first digit-grouped candidate whose stripped
// digit count lands in [7,15]. Tolerates +, spacing, dots, dashes and
// parentheses, which covers UAE formats like +971 50 123 4567.
func (e *extractorService) ExtractPhone(text string) string {
	for _, match := range phoneRegex.FindAllString(text, -1) {
		digits := nonDigitRegex.ReplaceAllString(match, "")
		if len(digits) >= 7 && len(digits) <= 15 {
			return strings.TrimSpace(match)
		}
	}
	return ""
}

// ExtractName inspects the first few non-empty lines. Lines with an @,
// a long digit run, or over 40 characters are skipped; short name-like
// lines are concatenated until at least two words are collected.
func (e *extractorService) ExtractName(text string) string {
	lines := nonEmptyLines(text)

	var nameParts []string
	for i := 0; i < len(lines) && i < nameLineScan; i++ {
		line := lines[i]
		if strings.Contains(line, "@") || digitRunRegex.MatchString(line) || len(line) > 40 {
			continue
		}
		if nameLineRegex.MatchString(line) && len(strings.Fields(line)) <= 4 {
			nameParts = append(nameParts, line)
			if len(strings.Fields(strings.Join(nameParts, " "))) >= 2 {
				break
			}
		}
	}

	if len(nameParts) == 0 {
		return ""
	}
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(strings.Join(nameParts, " "), " "))
}

// ExtractSkills matches the known-skill vocabulary case-insensitively
// against the whole text. Output follows vocabulary order, is deduped
// after canonicalization (NodeJs -> Node.js) and capped at 20 entries.
func (e *extractorService) ExtractSkills(text string) []string {
	textLower := strings.ToLower(text)
	seen := make(map[string]bool)
	found := []string{}

	for _, skill := range e.vocab.Skills {
		if !strings.Contains(textLower, strings.ToLower(skill)) {
			continue
		}
		normalized := skill
		if skill == "NodeJs" {
			normalized = "Node.js"
		}
		if !seen[normalized] {
			seen[normalized] = true
			found = append(found, normalized)
		}
	}

	if len(found) > maxSkills {
		found = found[:maxSkills]
	}
	return found
}

// ExtractJobTitle scans the first 10 non-empty lines against the title
// vocabulary, then falls back to the full text. Line order wins within
// the head scan; vocabulary order breaks ties on a line.
func (e *extractorService) ExtractJobTitle(text string) string {
	lines := nonEmptyLines(text)
	for i := 0; i < len(lines) && i < titleLineScan; i++ {
		lineLower := strings.ToLower(lines[i])
		for _, title := range e.vocab.JobTitles {
			if strings.Contains(lineLower, strings.ToLower(title)) {
				return title
			}
		}
	}

	textLower := strings.ToLower(text)
	for _, title := range e.vocab.JobTitles {
		if strings.Contains(textLower, strings.ToLower(title)) {
			return title
		}
	}

	return ""
}

// ExtractExperience prefers an explicit "<N>+ years experience" claim.
// Failing that it counts role keywords inside an employment-history
// section and reports "<count>+ roles".
func (e *extractorService) ExtractExperience(text string) string {
	if match := yearsRegex.FindStringSubmatch(text); match != nil {
		return match[1] + " years"
	}

	if section := employmentRegex.FindStringSubmatch(text); section != nil {
		entries := e.roleRegex.FindAllString(section[1], -1)
		if len(entries) > 0 {
			return strconv.Itoa(len(entries)) + "+ roles"
		}
	}

	return ""
}

// ExtractSummary captures the paragraph following a summary-style header
// up to a blank line or a known section header, collapses internal
// whitespace, and truncates to 300 characters with an ellipsis.
func (e *extractorService) ExtractSummary(text string) string {
	match := summaryRegex.FindStringSubmatch(text)
	if match == nil {
		return ""
	}

	summary := strings.TrimSpace(whitespaceRegex.ReplaceAllString(match[1], " "))
	runes := []rune(summary)
	if len(runes) > maxSummaryLength {
		return string(runes[:maxSummaryLength]) + "..."
	}
	return summary
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

