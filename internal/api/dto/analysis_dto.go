package dto

// SentimentQuery carries text for sentiment scoring.
type SentimentQuery struct {
	Text string `query:"text"`
}

// BatchSentimentQuery parameterizes a batch sentiment job.
type BatchSentimentQuery struct {
	DataSource string `query:"data_source"`
	Query      string `query:"query"`
	DateFrom   string `query:"date_from"`
	DateTo     string `query:"date_to"`
}

// TrendsQuery parameterizes trend detection.
type TrendsQuery struct {
	DataSource string `query:"data_source"`
	Timeframe  string `query:"timeframe"`
	Topic      string `query:"topic"`
}

// EntitiesQuery parameterizes entity extraction.
type EntitiesQuery struct {
	DataSource  string   `query:"data_source"`
	EntityTypes []string `query:"entity_types"`
	Limit       int      `query:"limit"`
}

// TopicsQuery parameterizes topic modeling.
type TopicsQuery struct {
	DataSource string `query:"data_source"`
	NumTopics  int    `query:"num_topics"`
}

// EntityComparisonQuery parameterizes cross-entity comparison.
type EntityComparisonQuery struct {
	Entities  []string `query:"entities"`
	Metrics   []string `query:"metrics"`
	Timeframe string   `query:"timeframe"`
}
