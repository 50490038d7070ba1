package models

// JobListing mirrors the JSearch response shape. The dispatch loop only
// reads job_id, job_title, employer_name, employer_website and
// job_apply_link; the rest is passed through to the client untouched.
type JobListing struct {
	JobID             string   `json:"job_id"`
	EmployerName      string   `json:"employer_name"`
	EmployerLogo      *string  `json:"employer_logo"`
	EmployerWebsite   *string  `json:"employer_website"`
	JobEmploymentType string   `json:"job_employment_type"`
	JobTitle          string   `json:"job_title"`
	JobApplyLink      string   `json:"job_apply_link"`
	JobDescription    string   `json:"job_description"`
	JobCity           string   `json:"job_city"`
	JobState          string   `json:"job_state"`
	JobCountry        string   `json:"job_country"`
	JobPostedAt       string   `json:"job_posted_at_datetime_utc"`
	JobMinSalary      *float64 `json:"job_min_salary"`
	JobMaxSalary      *float64 `json:"job_max_salary"`
	JobSalaryCurrency *string  `json:"job_salary_currency"`
	JobSalaryPeriod   *string  `json:"job_salary_period"`

	JobHighlights  *JobHighlights `json:"job_highlights,omitempty"`
	RequiredSkills []string       `json:"job_required_skills,omitempty"`
}

type JobHighlights struct {
	Qualifications   []string `json:"Qualifications,omitempty"`
	Responsibilities []string `json:"Responsibilities,omitempty"`
	Benefits         []string `json:"Benefits,omitempty"`
}

type JobSearchResponse struct {
	Status string       `json:"status"`
	Data   []JobListing `json:"data"`
}
