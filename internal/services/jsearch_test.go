package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestJSearchClientSearch(t *testing.T) {
	var gotQuery map[string]string
	var gotKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-rapidapi-key")
		q := r.URL.Query()
		gotQuery = map[string]string{
			"query":       q.Get("query"),
			"page":        q.Get("page"),
			"num_pages":   q.Get("num_pages"),
			"date_posted": q.Get("date_posted"),
			"country":     q.Get("country"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","data":[{"job_id":"j1","job_title":"Go Developer","employer_name":"Acme","job_apply_link":"https://acme.com/1"}]}`))
	}))
	defer srv.Close()

	c := NewJSearchClient("test-key", srv.URL, "ae", zap.NewNop())

	result, err := c.Search(context.Background(), SearchParams{Query: "go developer", Page: 2, DatePosted: "week"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotKey != "test-key" {
		t.Errorf("x-rapidapi-key = %q", gotKey)
	}
	if gotQuery["query"] != "go developer in UAE" {
		t.Errorf("query = %q, want UAE-scoped query", gotQuery["query"])
	}
	if gotQuery["page"] != "2" || gotQuery["num_pages"] != "1" {
		t.Errorf("paging params = %v", gotQuery)
	}
	if gotQuery["date_posted"] != "week" || gotQuery["country"] != "ae" {
		t.Errorf("filter params = %v", gotQuery)
	}

	if len(result.Data) != 1 || result.Data[0].JobID != "j1" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestJSearchClientDefaults(t *testing.T) {
	var q map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q = r.URL.Query()
		w.Write([]byte(`{"status":"OK","data":[]}`))
	}))
	defer srv.Close()

	c := NewJSearchClient("test-key", srv.URL, "ae", zap.NewNop())

	if _, err := c.Search(context.Background(), SearchParams{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := q["query"][0]; got != "software developer in UAE" {
		t.Errorf("default query = %q", got)
	}
	if got := q["page"][0]; got != "1" {
		t.Errorf("default page = %q", got)
	}
	if got := q["date_posted"][0]; got != "all" {
		t.Errorf("default date_posted = %q", got)
	}
	if _, ok := q["employment_types"]; ok {
		t.Errorf("employment_types must be omitted when unset")
	}
}

func TestJSearchClientUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer srv.Close()

	c := NewJSearchClient("test-key", srv.URL, "ae", zap.NewNop())

	_, err := c.Search(context.Background(), SearchParams{Query: "go"})
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d", upstream.StatusCode)
	}
}

func TestJSearchClientNotConfigured(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewJSearchClient("", srv.URL, "ae", zap.NewNop())

	_, err := c.Search(context.Background(), SearchParams{Query: "go"})
	if !errors.Is(err, ErrSearchNotConfigured) {
		t.Fatalf("expected ErrSearchNotConfigured, got %v", err)
	}
	if called {
		t.Errorf("no request must be made without an API key")
	}
}
