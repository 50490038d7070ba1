package handlers

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"autoapply/autoapply-uae/internal/models"
	"autoapply/autoapply-uae/internal/services"
)

const rawTextPreviewLength = 500

type ParseCVHandler struct {
	pdfParser      services.PDFParserService
	extractor      services.ExtractorService
	storageService services.StorageService
	maxFileSize    int64
	logger         *zap.Logger
}

func NewParseCVHandler(
	pdfParser services.PDFParserService,
	extractor services.ExtractorService,
	storageService services.StorageService,
	maxFileSize int64,
	logger *zap.Logger,
) *ParseCVHandler {
	return &ParseCVHandler{
		pdfParser:      pdfParser,
		extractor:      extractor,
		storageService: storageService,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

// HandleParseCV handles POST /parse-cv
func (h *ParseCVHandler) HandleParseCV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	// Keep a copy of the upload. Best-effort: extraction does not depend
	// on the stored file.
	if _, _, err := h.storageService.SaveCV(data, fileHeader.Filename); err != nil {
		h.logger.Warn("failed to store uploaded CV", zap.String("filename", fileHeader.Filename), zap.Error(err))
	}

	text, err := h.pdfParser.ExtractText(data)
	if err != nil {
		h.logger.Warn("CV decode failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Failed to parse CV. Please ensure the file is a valid PDF.",
		})
	}

	profile := h.extractor.ParseCV(text)
	profile.CVFileBase64 = base64.StdEncoding.EncodeToString(data)
	profile.CVFileName = fileHeader.Filename

	preview := text
	if runes := []rune(preview); len(runes) > rawTextPreviewLength {
		preview = string(runes[:rawTextPreviewLength])
	}

	return c.JSON(models.ParseCVResponse{
		Success:        true,
		Data:           profile,
		RawTextPreview: preview,
	})
}
