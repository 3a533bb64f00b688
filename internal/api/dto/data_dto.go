package dto

// WebScrapeRequest starts a scraping task for a URL.
type WebScrapeRequest struct {
	URL       string   `json:"url"`
	Selectors []string `json:"selectors"`
}

// SocialMediaQuery parameterizes social-media collection.
type SocialMediaQuery struct {
	Platform string `query:"platform"`
	Query    string `query:"query"`
	Limit    int    `query:"limit"`
}

// NewsQuery parameterizes news collection.
type NewsQuery struct {
	Query    string   `query:"query"`
	Sources  []string `query:"sources"`
	DateFrom string   `query:"date_from"`
	DateTo   string   `query:"date_to"`
}

// JobsQuery filters tracked collection jobs.
type JobsQuery struct {
	Status string `query:"status"`
}

// CollectedDataQuery filters the collected-data listing.
type CollectedDataQuery struct {
	Source   string `query:"source"`
	Query    string `query:"query"`
	DateFrom string `query:"date_from"`
	DateTo   string `query:"date_to"`
	Limit    int    `query:"limit"`
	Skip     int    `query:"skip"`
}
