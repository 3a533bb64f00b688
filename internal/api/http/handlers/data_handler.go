package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/insightfulai/platform/internal/api/dto"
	"github.com/insightfulai/platform/internal/jobs"
	apperrors "github.com/insightfulai/platform/pkg/util"
)

// DataHandler exposes the data-collection endpoints. The collection pipeline
// (scraping, social-media and news ingestion) is not implemented; responses
// are representative sample payloads, with job tracking served from Redis.
type DataHandler struct {
	jobs *jobs.Store
}

// NewDataHandler constructs the handler.
func NewDataHandler(jobStore *jobs.Store) *DataHandler {
	return &DataHandler{jobs: jobStore}
}

// WebScrape handles POST /data/web-scrape.
func (h *DataHandler) WebScrape(c *fiber.Ctx) error {
	var req dto.WebScrapeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.URL == "" {
		return apperrors.NewValidationError("url required", nil)
	}

	selectors := req.Selectors
	if len(selectors) == 0 {
		selectors = []string{"default selectors"}
	}

	return c.JSON(fiber.Map{
		"status":    "success",
		"message":   "Web scraping task initiated",
		"url":       req.URL,
		"selectors": selectors,
	})
}

// SocialMedia handles POST /data/social-media.
func (h *DataHandler) SocialMedia(c *fiber.Ctx) error {
	var q dto.SocialMediaQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	if q.Platform == "" || q.Query == "" {
		return apperrors.NewValidationError("platform and query required", nil)
	}
	if q.Limit <= 0 {
		q.Limit = 100
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": fmt.Sprintf("Social media data collection from %s initiated", q.Platform),
		"query":   q.Query,
		"limit":   q.Limit,
	})
}

// News handles POST /data/news.
func (h *DataHandler) News(c *fiber.Ctx) error {
	var q dto.NewsQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	if q.Query == "" {
		return apperrors.NewValidationError("query required", nil)
	}

	dateFrom := q.DateFrom
	if dateFrom == "" {
		dateFrom = "any"
	}
	dateTo := q.DateTo
	if dateTo == "" {
		dateTo = "present"
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"message":    "News data collection initiated",
		"query":      q.Query,
		"sources":    q.Sources,
		"date_range": fmt.Sprintf("%s to %s", dateFrom, dateTo),
	})
}

// Sources handles GET /data/sources.
func (h *DataHandler) Sources(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"web":          []string{"General websites", "E-commerce sites", "Forums", "Review sites"},
		"social_media": []string{"Twitter", "LinkedIn", "Reddit", "Facebook", "Instagram"},
		"news":         []string{"Major publications", "Industry blogs", "Press releases"},
		"public_data":  []string{"Government datasets", "Academic research", "Industry reports"},
	})
}

// Jobs handles GET /data/jobs.
func (h *DataHandler) Jobs(c *fiber.Ctx) error {
	var q dto.JobsQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}

	list, err := h.jobs.List(c.Context(), q.Status)
	if err != nil {
		return apperrors.MapError(err)
	}
	if list == nil {
		list = []*jobs.Job{}
	}
	return c.JSON(fiber.Map{"jobs": list})
}

// CancelJob handles DELETE /data/jobs/:id.
func (h *DataHandler) CancelJob(c *fiber.Ctx) error {
	jobID := c.Params("id")
	if jobID == "" {
		return apperrors.NewValidationError("job id required", nil)
	}

	if err := h.jobs.Delete(c.Context(), jobID); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": fmt.Sprintf("Job %s cancelled successfully", jobID),
	})
}

// CollectedData handles GET /data/data.
func (h *DataHandler) CollectedData(c *fiber.Ctx) error {
	var q dto.CollectedDataQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	if q.Limit <= 0 {
		q.Limit = 100
	}
	if q.Skip < 0 {
		q.Skip = 0
	}

	return c.JSON(fiber.Map{
		"total": 1000,
		"limit": q.Limit,
		"skip":  q.Skip,
		"data": []fiber.Map{
			{
				"id":      "sample-data-1",
				"source":  "twitter",
				"content": "Sample tweet content about a product",
				"metadata": fiber.Map{
					"author":    "user123",
					"timestamp": "2023-10-14T15:30:00Z",
					"likes":     45,
					"retweets":  12,
				},
				"sentiment": "positive",
				"entities":  []string{"product", "feature", "brand"},
			},
		},
	})
}
