package handlers

import (
	"github.com/gofiber/fiber/v2"

	"autoapply/autoapply-uae/internal/repositories"
)

const historyLimit = 100

type HistoryHandler struct {
	appRepo repositories.ApplicationRepository
}

func NewHistoryHandler(appRepo repositories.ApplicationRepository) *HistoryHandler {
	return &HistoryHandler{
		appRepo: appRepo,
	}
}

// HandleListApplications handles GET /applications
func (h *HistoryHandler) HandleListApplications(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email is required",
		})
	}

	apps, err := h.appRepo.FindByApplicantEmail(email, historyLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch applications",
		})
	}

	return c.JSON(fiber.Map{
		"applications": apps,
		"count":        len(apps),
	})
}
