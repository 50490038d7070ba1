package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"autoapply/autoapply-uae/internal/services"
)

type JobsHandler struct {
	searchService services.JobSearchService
	logger        *zap.Logger
}

func NewJobsHandler(searchService services.JobSearchService, logger *zap.Logger) *JobsHandler {
	return &JobsHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// HandleSearchJobs handles GET /jobs
func (h *JobsHandler) HandleSearchJobs(c *fiber.Ctx) error {
	params := services.SearchParams{
		Query:          c.Query("query"),
		Page:           c.QueryInt("page", 1),
		EmploymentType: c.Query("employment_type"),
		DatePosted:     c.Query("date_posted"),
	}

	result, err := h.searchService.Search(c.Context(), params)
	if err != nil {
		if errors.Is(err, services.ErrSearchNotConfigured) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "API key not configured",
			})
		}

		var upstream *services.UpstreamError
		if errors.As(err, &upstream) {
			return c.Status(upstream.StatusCode).JSON(fiber.Map{
				"error": upstream.Error(),
			})
		}

		h.logger.Error("job search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch jobs",
		})
	}

	return c.JSON(result)
}
