package dto

// CompetitorCreateRequest registers a competitor to track.
type CompetitorCreateRequest struct {
	Name           string            `json:"name"`
	Website        string            `json:"website"`
	Description    string            `json:"description"`
	Industry       string            `json:"industry"`
	SocialProfiles map[string]string `json:"social_profiles"`
	Tags           []string          `json:"tags"`
}

// CompetitorUpdateRequest updates a tracked competitor; all fields optional.
type CompetitorUpdateRequest struct {
	Name           string            `json:"name"`
	Website        string            `json:"website"`
	Description    string            `json:"description"`
	Industry       string            `json:"industry"`
	SocialProfiles map[string]string `json:"social_profiles"`
	Tags           []string          `json:"tags"`
}

// CompetitorListQuery filters the competitor listing.
type CompetitorListQuery struct {
	Industry string   `query:"industry"`
	Tags     []string `query:"tags"`
	Limit    int      `query:"limit"`
	Skip     int      `query:"skip"`
}

// CompetitorActivityQuery filters competitor activity.
type CompetitorActivityQuery struct {
	ActivityType string `query:"activity_type"`
	TimePeriod   string `query:"time_period"`
	Limit        int    `query:"limit"`
}

// CompetitorComparisonQuery parameterizes cross-competitor comparison.
type CompetitorComparisonQuery struct {
	CompetitorIDs []string `query:"competitor_ids"`
	Metrics       []string `query:"metrics"`
	TimePeriod    string   `query:"time_period"`
}
