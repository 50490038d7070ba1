package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"autoapply/autoapply-uae/internal/models"
	"autoapply/autoapply-uae/internal/services"
)

type stubDispatcher struct {
	calls   int
	results []models.DispatchResult
}

func (d *stubDispatcher) Dispatch(_ context.Context, jobs []models.JobListing, profile models.CandidateProfile) (models.DispatchSummary, []models.DispatchResult) {
	d.calls++
	summary := models.DispatchSummary{Total: len(jobs), Applicant: profile.Name}
	for _, r := range d.results {
		if r.Status == models.StatusSent {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}
	return summary, d.results
}

var _ services.DispatcherService = (*stubDispatcher)(nil)

type stubAppRepo struct {
	created []*models.Application
}

func (r *stubAppRepo) Create(app *models.Application) error {
	r.created = append(r.created, app)
	return nil
}

func (r *stubAppRepo) FindByApplicantEmail(_ string, _ int) ([]models.Application, error) {
	return nil, nil
}

func newApplyApp(dispatcher services.DispatcherService, repo *stubAppRepo) *fiber.App {
	app := fiber.New()
	h := NewApplyHandler(dispatcher, repo, zap.NewNop())
	app.Post("/apply", h.HandleApply)
	return app
}

func postApply(t *testing.T, app *fiber.App, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/apply", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func validApplyRequest() models.ApplyRequest {
	return models.ApplyRequest{
		Jobs: []models.JobListing{
			{JobID: "j1", JobTitle: "Go Developer", EmployerName: "Acme", JobApplyLink: "https://acme.com/1"},
		},
		CVProfile: &models.CandidateProfile{Name: "Jane Doe", Email: "jane@example.com"},
	}
}

func TestHandleApplyEmptyJobs(t *testing.T) {
	dispatcher := &stubDispatcher{}
	app := newApplyApp(dispatcher, &stubAppRepo{})

	req := validApplyRequest()
	req.Jobs = nil

	resp := postApply(t, app, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if dispatcher.calls != 0 {
		t.Errorf("dispatcher must not run for empty job list")
	}
}

func TestHandleApplyMissingProfile(t *testing.T) {
	dispatcher := &stubDispatcher{}
	app := newApplyApp(dispatcher, &stubAppRepo{})

	req := validApplyRequest()
	req.CVProfile = nil

	resp := postApply(t, app, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}

	// A profile without name or email is just as unusable.
	req = validApplyRequest()
	req.CVProfile = &models.CandidateProfile{Email: "jane@example.com"}
	resp = postApply(t, app, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for missing name", resp.StatusCode)
	}

	if dispatcher.calls != 0 {
		t.Errorf("dispatcher must not run without a usable profile")
	}
}

func TestHandleApplyNotConfigured(t *testing.T) {
	app := newApplyApp(nil, &stubAppRepo{})

	resp := postApply(t, app, validApplyRequest())
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 without email credentials", resp.StatusCode)
	}
}

func TestHandleApplySuccess(t *testing.T) {
	dispatcher := &stubDispatcher{
		results: []models.DispatchResult{
			{JobID: "j1", JobTitle: "Go Developer", EmployerName: "Acme", SentTo: "careers@acme.com", Status: models.StatusSent, EmailID: "msg-1", Message: "Application email sent to careers@acme.com"},
		},
	}
	repo := &stubAppRepo{}
	app := newApplyApp(dispatcher, repo)

	resp := postApply(t, app, validApplyRequest())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body models.ApplyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if body.Summary.Total != 1 || body.Summary.Successful != 1 || body.Summary.Failed != 0 {
		t.Errorf("summary = %+v", body.Summary)
	}
	if len(body.Results) != 1 || body.Results[0].JobID != "j1" {
		t.Errorf("results = %+v", body.Results)
	}

	// History row recorded per result.
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 history row, got %d", len(repo.created))
	}
	if repo.created[0].ApplicantEmail != "jane@example.com" || repo.created[0].Status != models.StatusSent {
		t.Errorf("history row = %+v", repo.created[0])
	}
}
