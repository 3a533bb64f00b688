package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/insightfulai/platform/internal/api/dto"
	apperrors "github.com/insightfulai/platform/pkg/util"
)

// CompetitorsHandler exposes the competitor-tracking endpoints. Competitor
// persistence and monitoring are not implemented; responses echo validated
// inputs over representative sample payloads.
type CompetitorsHandler struct{}

// NewCompetitorsHandler constructs the handler.
func NewCompetitorsHandler() *CompetitorsHandler {
	return &CompetitorsHandler{}
}

// Create handles POST /competitors.
func (h *CompetitorsHandler) Create(c *fiber.Ctx) error {
	var req dto.CompetitorCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Website == "" || req.Industry == "" {
		return apperrors.NewValidationError("name, website, industry required", nil)
	}

	if req.SocialProfiles == nil {
		req.SocialProfiles = map[string]string{}
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":              "comp-" + uuid.NewString()[:8],
		"name":            req.Name,
		"website":         req.Website,
		"description":     req.Description,
		"industry":        req.Industry,
		"social_profiles": req.SocialProfiles,
		"tags":            req.Tags,
		"created_at":      time.Now().UTC().Format(time.RFC3339),
	})
}

// List handles GET /competitors.
func (h *CompetitorsHandler) List(c *fiber.Ctx) error {
	var q dto.CompetitorListQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}

	return c.JSON(fiber.Map{
		"total": 3,
		"competitors": []fiber.Map{
			{
				"id":       "comp-123",
				"name":     "Competitor A",
				"website":  "https://competitora.com",
				"industry": "SaaS",
				"tags":     []string{"market research", "analytics"},
			},
			{
				"id":       "comp-124",
				"name":     "Competitor B",
				"website":  "https://competitorb.com",
				"industry": "SaaS",
				"tags":     []string{"market research", "social media"},
			},
			{
				"id":       "comp-125",
				"name":     "Competitor C",
				"website":  "https://competitorc.com",
				"industry": "Market Research",
				"tags":     []string{"enterprise", "consulting"},
			},
		},
	})
}

// Get handles GET /competitors/:id.
func (h *CompetitorsHandler) Get(c *fiber.Ctx) error {
	competitorID := c.Params("id")
	return c.JSON(fiber.Map{
		"id":          competitorID,
		"name":        "Competitor A",
		"website":     "https://competitora.com",
		"description": "A leading provider of market research solutions",
		"industry":    "SaaS",
		"social_profiles": fiber.Map{
			"twitter":  "CompetitorA",
			"linkedin": "https://linkedin.com/company/competitora",
			"facebook": "CompetitorA",
		},
		"tags":       []string{"market research", "analytics"},
		"created_at": "2023-10-15T16:30:00Z",
		"updated_at": "2023-10-15T16:30:00Z",
	})
}

// Update handles PUT /competitors/:id.
func (h *CompetitorsHandler) Update(c *fiber.Ctx) error {
	competitorID := c.Params("id")

	var req dto.CompetitorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	name := req.Name
	if name == "" {
		name = "Competitor A"
	}
	website := req.Website
	if website == "" {
		website = "https://competitora.com"
	}
	description := req.Description
	if description == "" {
		description = "A leading provider of market research solutions"
	}
	industry := req.Industry
	if industry == "" {
		industry = "SaaS"
	}
	profiles := req.SocialProfiles
	if profiles == nil {
		profiles = map[string]string{
			"twitter":  "CompetitorA",
			"linkedin": "https://linkedin.com/company/competitora",
		}
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{"market research", "analytics"}
	}

	return c.JSON(fiber.Map{
		"id":              competitorID,
		"name":            name,
		"website":         website,
		"description":     description,
		"industry":        industry,
		"social_profiles": profiles,
		"tags":            tags,
		"updated_at":      time.Now().UTC().Format(time.RFC3339),
	})
}

// Delete handles DELETE /competitors/:id.
func (h *CompetitorsHandler) Delete(c *fiber.Ctx) error {
	competitorID := c.Params("id")
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": fmt.Sprintf("Competitor %s deleted successfully", competitorID),
	})
}

// Activity handles GET /competitors/:id/activity.
func (h *CompetitorsHandler) Activity(c *fiber.Ctx) error {
	competitorID := c.Params("id")

	var q dto.CompetitorActivityQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	if q.TimePeriod == "" {
		q.TimePeriod = "month"
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}
	activityType := q.ActivityType
	if activityType == "" {
		activityType = "all"
	}

	return c.JSON(fiber.Map{
		"competitor_id":   competitorID,
		"competitor_name": "Competitor A",
		"time_period":     q.TimePeriod,
		"activity_type":   activityType,
		"activities": []fiber.Map{
			{
				"id":          "act-123",
				"type":        "product",
				"title":       "New Feature Launch",
				"description": "Launched AI-powered sentiment analysis",
				"source":      "website",
				"url":         "https://competitora.com/blog/new-feature",
				"date":        "2023-10-10T09:00:00Z",
				"sentiment":   "neutral",
			},
			{
				"id":          "act-124",
				"type":        "social",
				"title":       "Twitter Announcement",
				"description": "Excited to announce our new partnership with...",
				"source":      "twitter",
				"url":         "https://twitter.com/CompetitorA/status/123456789",
				"date":        "2023-10-08T14:30:00Z",
				"sentiment":   "positive",
			},
			{
				"id":          "act-125",
				"type":        "news",
				"title":       "Industry Recognition",
				"description": "Competitor A named in Gartner Magic Quadrant",
				"source":      "TechNews",
				"url":         "https://technews.com/article/12345",
				"date":        "2023-10-05T11:15:00Z",
				"sentiment":   "positive",
			},
		},
	})
}

// Products handles GET /competitors/:id/products.
func (h *CompetitorsHandler) Products(c *fiber.Ctx) error {
	competitorID := c.Params("id")
	return c.JSON(fiber.Map{
		"competitor_id":   competitorID,
		"competitor_name": "Competitor A",
		"products": []fiber.Map{
			{
				"id":            "prod-123",
				"name":          "Market Analyzer Pro",
				"description":   "Advanced market analysis platform",
				"url":           "https://competitora.com/products/analyzer",
				"pricing_model": "subscription",
				"price_range":   "$499-$1999/month",
				"features": []string{
					"Social media monitoring",
					"Sentiment analysis",
					"Competitor tracking",
					"Report generation",
				},
				"last_updated": "2023-09-15T00:00:00Z",
			},
			{
				"id":            "prod-124",
				"name":          "Insights API",
				"description":   "API access to market data",
				"url":           "https://competitora.com/products/api",
				"pricing_model": "usage-based",
				"price_range":   "$0.01 per request",
				"features": []string{
					"Real-time data access",
					"Flexible integration",
					"Scalable pricing",
				},
				"last_updated": "2023-08-20T00:00:00Z",
			},
		},
	})
}

// Comparison handles GET /competitors/comparison.
func (h *CompetitorsHandler) Comparison(c *fiber.Ctx) error {
	var q dto.CompetitorComparisonQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	if len(q.CompetitorIDs) == 0 {
		return apperrors.NewValidationError("competitor_ids required", nil)
	}
	if len(q.Metrics) == 0 {
		q.Metrics = []string{"sentiment", "activity", "features"}
	}
	if q.TimePeriod == "" {
		q.TimePeriod = "quarter"
	}

	return c.JSON(fiber.Map{
		"competitors": []fiber.Map{
			{"id": "comp-123", "name": "Competitor A"},
			{"id": "comp-124", "name": "Competitor B"},
		},
		"time_period": q.TimePeriod,
		"metrics":     q.Metrics,
		"comparison": fiber.Map{
			"sentiment": fiber.Map{
				"Competitor A": 0.72,
				"Competitor B": 0.58,
			},
			"activity": fiber.Map{
				"Competitor A": fiber.Map{"social": 45, "news": 12, "product": 3, "total": 60},
				"Competitor B": fiber.Map{"social": 32, "news": 8, "product": 5, "total": 45},
			},
			"features": fiber.Map{
				"common": []string{
					"Social media monitoring",
					"Sentiment analysis",
					"Report generation",
				},
				"unique_to_A": []string{"Competitor tracking", "AI recommendations"},
				"unique_to_B": []string{"Custom dashboards", "Integration with CRM"},
			},
		},
	})
}
