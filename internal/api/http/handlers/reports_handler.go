package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	apperrors "github.com/insightfulai/platform/pkg/util"
)

// ReportsHandler exposes the report endpoints. Report generation is not
// implemented; responses are representative sample payloads.
type ReportsHandler struct{}

// NewReportsHandler constructs the handler.
func NewReportsHandler() *ReportsHandler {
	return &ReportsHandler{}
}

type generateReportRequest struct {
	Title      string   `json:"title"`
	ReportType string   `json:"report_type"`
	Sources    []string `json:"sources"`
}

// Generate handles POST /reports/generate.
func (h *ReportsHandler) Generate(c *fiber.Ctx) error {
	var req generateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" {
		return apperrors.NewValidationError("title required", nil)
	}
	if req.ReportType == "" {
		req.ReportType = "market-overview"
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"status":       "success",
		"message":      "Report generation initiated",
		"report_id":    uuid.NewString(),
		"title":        req.Title,
		"report_type":  req.ReportType,
		"sources":      req.Sources,
		"requested_at": time.Now().UTC().Format(time.RFC3339),
	})
}

// List handles GET /reports.
func (h *ReportsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"total": 2,
		"reports": []fiber.Map{
			{
				"id":          "rep-123",
				"title":       "Q3 Market Overview",
				"report_type": "market-overview",
				"status":      "completed",
				"created_at":  "2023-10-01T08:00:00Z",
			},
			{
				"id":          "rep-124",
				"title":       "Competitor Landscape",
				"report_type": "competitor-analysis",
				"status":      "processing",
				"created_at":  "2023-10-15T12:00:00Z",
			},
		},
	})
}
