package models

// CandidateProfile is the structured applicant data inferred from an
// uploaded CV. Every field defaults to its zero value when the matching
// heuristic finds nothing; extraction never fails a parse request.
type CandidateProfile struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`
	JobTitle   string   `json:"jobTitle"`
	Experience string   `json:"experience"`
	Summary    string   `json:"summary"`

	// Echoed back on apply so the CV can be attached to each email.
	CVFileBase64 string `json:"cvFileBase64,omitempty"`
	CVFileName   string `json:"cvFileName,omitempty"`
}

type ParseCVResponse struct {
	Success        bool             `json:"success"`
	Data           CandidateProfile `json:"data"`
	RawTextPreview string           `json:"raw_text_preview"`
}
