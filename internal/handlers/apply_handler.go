package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"autoapply/autoapply-uae/internal/models"
	"autoapply/autoapply-uae/internal/repositories"
	"autoapply/autoapply-uae/internal/services"
)

type ApplyHandler struct {
	dispatcher services.DispatcherService // nil when no email credentials are configured
	appRepo    repositories.ApplicationRepository
	logger     *zap.Logger
}

func NewApplyHandler(
	dispatcher services.DispatcherService,
	appRepo repositories.ApplicationRepository,
	logger *zap.Logger,
) *ApplyHandler {
	return &ApplyHandler{
		dispatcher: dispatcher,
		appRepo:    appRepo,
		logger:     logger,
	}
}

// HandleApply handles POST /apply. Input validation happens before any
// send attempt; once the batch starts it always completes with a summary.
func (h *ApplyHandler) HandleApply(c *fiber.Ctx) error {
	var req models.ApplyRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.Jobs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No jobs provided",
		})
	}

	if req.CVProfile == nil || req.CVProfile.Name == "" || req.CVProfile.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "CV profile not provided",
		})
	}

	if h.dispatcher == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Email service not configured",
		})
	}

	summary, results := h.dispatcher.Dispatch(c.Context(), req.Jobs, *req.CVProfile)

	h.recordHistory(results, *req.CVProfile)

	return c.JSON(models.ApplyResponse{
		Summary: summary,
		Results: results,
	})
}

// recordHistory persists one row per result. Best-effort: the emails are
// already out, so a failed insert is logged and never fails the request.
func (h *ApplyHandler) recordHistory(results []models.DispatchResult, profile models.CandidateProfile) {
	if h.appRepo == nil {
		return
	}

	now := time.Now()
	for _, r := range results {
		app := &models.Application{
			ID:             uuid.New(),
			JobID:          r.JobID,
			JobTitle:       r.JobTitle,
			EmployerName:   r.EmployerName,
			ApplyLink:      r.ApplyLink,
			SentTo:         r.SentTo,
			ApplicantName:  profile.Name,
			ApplicantEmail: profile.Email,
			EmailID:        r.EmailID,
			Status:         r.Status,
			Message:        r.Message,
			AppliedAt:      now,
		}
		if err := h.appRepo.Create(app); err != nil {
			h.logger.Warn("failed to record application", zap.String("job_id", r.JobID), zap.Error(err))
		}
	}
}
