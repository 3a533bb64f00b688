package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/insightfulai/platform/internal/api/dto"
	apperrors "github.com/insightfulai/platform/pkg/util"
)

// AnalysisHandler exposes the NLP analysis endpoints. Sentiment scoring,
// trend detection, entity extraction and topic modeling are not implemented;
// responses are representative sample payloads.
type AnalysisHandler struct{}

// NewAnalysisHandler constructs the handler.
func NewAnalysisHandler() *AnalysisHandler {
	return &AnalysisHandler{}
}

// Sentiment handles POST /analysis/sentiment.
func (h *AnalysisHandler) Sentiment(c *fiber.Ctx) error {
	var q dto.SentimentQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	if q.Text == "" {
		return apperrors.NewValidationError("text required", nil)
	}

	return c.JSON(fiber.Map{
		"text":       q.Text,
		"sentiment":  "positive",
		"confidence": 0.85,
		"details": fiber.Map{
			"positive": 0.85,
			"neutral":  0.10,
			"negative": 0.05,
		},
	})
}

// BatchSentiment handles POST /analysis/batch-sentiment.
func (h *AnalysisHandler) BatchSentiment(c *fiber.Ctx) error {
	var q dto.BatchSentimentQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	if q.DataSource == "" {
		return apperrors.NewValidationError("data_source required", nil)
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
		"status":      "success",
		"message":     "Batch sentiment analysis job initiated",
		"job_id":      uuid.NewString(),
		"data_source": q.DataSource,
		"filters": fiber.Map{
			"query":      q.Query,
			"date_range": fmt.Sprintf("%s to %s", dateFrom, dateTo),
		},
	})
}

// Trends handles GET /analysis/trends.
func (h *AnalysisHandler) Trends(c *fiber.Ctx) error {
	var q dto.TrendsQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	if q.DataSource == "" {
		return apperrors.NewValidationError("data_source required", nil)
	}
	if q.Timeframe == "" {
		q.Timeframe = "week"
	}

	return c.JSON(fiber.Map{
		"timeframe":   q.Timeframe,
		"data_source": q.DataSource,
		"topic":       q.Topic,
		"trends": []fiber.Map{
			{
				"topic":           "Product Feature X",
				"trend":           "rising",
				"change_percent":  15.5,
				"sentiment_shift": 0.2,
				"related_terms":   []string{"innovation", "improvement", "design"},
			},
			{
				"topic":           "Competitor Y",
				"trend":           "falling",
				"change_percent":  -8.3,
				"sentiment_shift": -0.15,
				"related_terms":   []string{"issue", "problem", "alternative"},
			},
		},
	})
}

// Entities handles GET /analysis/entities.
func (h *AnalysisHandler) Entities(c *fiber.Ctx) error {
	var q dto.EntitiesQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	if q.DataSource == "" {
		return apperrors.NewValidationError("data_source required", nil)
	}
	if len(q.EntityTypes) == 0 {
		q.EntityTypes = []string{"PERSON", "ORG", "PRODUCT"}
	}
	if q.Limit <= 0 {
		q.Limit = 100
	}

	return c.JSON(fiber.Map{
		"data_source":  q.DataSource,
		"entity_types": q.EntityTypes,
		"entities": []fiber.Map{
			{
				"text":             "Product X",
				"type":             "PRODUCT",
				"count":            156,
				"sentiment":        "positive",
				"related_entities": []string{"Company Y", "Feature Z"},
			},
			{
				"text":             "Company Y",
				"type":             "ORG",
				"count":            89,
				"sentiment":        "neutral",
				"related_entities": []string{"Product X", "CEO Name"},
			},
		},
	})
}

// Topics handles GET /analysis/topics.
func (h *AnalysisHandler) Topics(c *fiber.Ctx) error {
	var q dto.TopicsQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	if q.DataSource == "" {
		return apperrors.NewValidationError("data_source required", nil)
	}
	if q.NumTopics <= 0 {
		q.NumTopics = 5
	}

	return c.JSON(fiber.Map{
		"data_source": q.DataSource,
		"num_topics":  q.NumTopics,
		"topics": []fiber.Map{
			{
				"id":        1,
				"keywords":  []string{"price", "value", "cost", "expensive", "worth"},
				"weight":    0.35,
				"sentiment": "mixed",
			},
			{
				"id":        2,
				"keywords":  []string{"quality", "durability", "reliable", "build", "solid"},
				"weight":    0.28,
				"sentiment": "positive",
			},
			{
				"id":        3,
				"keywords":  []string{"feature", "functionality", "capability", "option", "setting"},
				"weight":    0.22,
				"sentiment": "positive",
			},
		},
	})
}

// Comparison handles GET /analysis/comparison.
func (h *AnalysisHandler) Comparison(c *fiber.Ctx) error {
	var q dto.EntityComparisonQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	if len(q.Entities) == 0 {
		return apperrors.NewValidationError("entities required", nil)
	}
	if len(q.Metrics) == 0 {
		q.Metrics = []string{"sentiment", "volume", "trend"}
	}
	if q.Timeframe == "" {
		q.Timeframe = "month"
	}

	return c.JSON(fiber.Map{
		"entities":  q.Entities,
		"metrics":   q.Metrics,
		"timeframe": q.Timeframe,
		"comparison": fiber.Map{
			"sentiment": fiber.Map{
				"Entity A": 0.65,
				"Entity B": 0.42,
			},
			"volume": fiber.Map{
				"Entity A": 1250,
				"Entity B": 980,
			},
			"trend": fiber.Map{
				"Entity A": 0.05,
				"Entity B": -0.03,
			},
		},
	})
}
