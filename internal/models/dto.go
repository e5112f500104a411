package models

import "time"

// Data Transfer Objects

type AnalyzeRequest struct {
	Text     string `json:"text"`
	FileName string `json:"fileName"`
}

// ReportSummary is the history-list row: enough to render the dashboard
// table without shipping the full document content.
type ReportSummary struct {
	ID                string    `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	FileName          string    `json:"fileName"`
	OverallSimilarity int       `json:"overallSimilarity"`
	AIProbability     float64   `json:"aiProbability"`
	WordCount         int       `json:"wordCount"`
	MatchCount        int       `json:"matchCount"`
}

// SourceDetail is one row of the primary-sources sidebar, sorted by index.
type SourceDetail struct {
	Index       int           `json:"index"`
	Source      string        `json:"source"`
	URL         string        `json:"url"`
	Category    MatchCategory `json:"category"`
	Similarity  int           `json:"similarity"`
	MatchedText string        `json:"matchedText"`
	Color       string        `json:"color"`
}

type HealthCheckResponse struct {
	Status            string    `json:"status"`
	GatewayConfigured bool      `json:"gateway_configured"`
	StoredReports     int       `json:"stored_reports"`
	Uptime            string    `json:"uptime"`
	Timestamp         time.Time `json:"timestamp"`
}
