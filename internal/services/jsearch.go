package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"autoapply/autoapply-uae/internal/models"
)

// ErrSearchNotConfigured is returned when no RapidAPI key was provided.
var ErrSearchNotConfigured = errors.New("job search API key not configured")

// UpstreamError carries a non-200 reply from the listing source so the
// handler can surface the upstream status instead of fabricating one.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("jsearch API error: %d", e.StatusCode)
}

// SearchParams are the caller-facing search inputs. Geographic scoping
// to the UAE happens inside the client.
type SearchParams struct {
	Query          string
	Page           int
	EmploymentType string
	DatePosted     string
}

type JobSearchService interface {
	Search(ctx context.Context, params SearchParams) (*models.JobSearchResponse, error)
}

type jsearchClient struct {
	apiKey     string
	baseURL    string
	country    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewJSearchClient(apiKey, baseURL, country string, logger *zap.Logger) JobSearchService {
	return &jsearchClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		country: country,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

// Search implements JobSearchService.
func (c *jsearchClient) Search(ctx context.Context, params SearchParams) (*models.JobSearchResponse, error) {
	if c.apiKey == "" {
		return nil, ErrSearchNotConfigured
	}

	query := params.Query
	if query == "" {
		query = "software developer"
	}
	page := params.Page
	if page < 1 {
		page = 1
	}
	datePosted := params.DatePosted
	if datePosted == "" {
		datePosted = "all"
	}

	q := url.Values{}
	q.Set("query", query+" in UAE")
	q.Set("page", strconv.Itoa(page))
	q.Set("num_pages", "1")
	q.Set("date_posted", datePosted)
	q.Set("country", c.country)
	if params.EmploymentType != "" {
		q.Set("employment_types", params.EmploymentType)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", req.URL.Host)

	c.logger.Debug("searching jobs", zap.String("query", query), zap.Int("page", page))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("jsearch API error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(string(body), 500)),
		)
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result models.JobSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	return &result, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
