package models

import (
	"time"
)

type MatchCategory string

const (
	CategoryInternetSource MatchCategory = "Internet Source"
	CategoryPublication    MatchCategory = "Publication"
	CategoryStudentPaper   MatchCategory = "Student Paper"
)

func (c MatchCategory) String() string {
	return string(c)
}

// SignalLevel is the coarse Low/Medium/High scale the detector reports
// for perplexity and burstiness.
type SignalLevel string

const (
	SignalLow    SignalLevel = "Low"
	SignalMedium SignalLevel = "Medium"
	SignalHigh   SignalLevel = "High"
)

// PlagiarismMatch is one claimed verbatim overlap between the submitted
// document and an external source. Index is 1-based and stable for the
// lifetime of the report; Similarity is a derived percentage, never below 1
// for an accepted match.
type PlagiarismMatch struct {
	Index       int           `json:"index"`
	Source      string        `json:"source"`
	URL         string        `json:"url"`
	Similarity  int           `json:"similarity"`
	MatchedText string        `json:"matchedText"`
	Category    MatchCategory `json:"category"`
}

type AIDetectionResult struct {
	AIScore    float64     `json:"aiScore"`
	Confidence float64     `json:"confidence"`
	Perplexity SignalLevel `json:"perplexity"`
	Burstiness SignalLevel `json:"burstiness"`
	Analysis   string      `json:"analysis"`
}

// DigitalReceipt is the submission metadata block printed on the report.
// The hash token is a display placeholder, not a content-addressing scheme.
type DigitalReceipt struct {
	SubmissionID   string `json:"submissionId"`
	SubmissionDate string `json:"submissionDate"`
	FileHash       string `json:"fileHash"`
	Author         string `json:"author"`
	CharacterCount int    `json:"characterCount"`
}

// AnalysisReport is the finalized result of one analysis run. It is built
// once by the assembler and never mutated afterwards; the JSON field names
// are the wire contract consumed by the report viewer.
type AnalysisReport struct {
	ID                    string            `json:"id"`
	Timestamp             time.Time         `json:"timestamp"`
	FileName              string            `json:"fileName"`
	OverallSimilarity     int               `json:"overallSimilarity"`
	InternetSimilarity    int               `json:"internetSimilarity"`
	PublicationSimilarity int               `json:"publicationSimilarity"`
	StudentSimilarity     int               `json:"studentSimilarity"`
	AIProbability         float64           `json:"aiProbability"`
	WordCount             int               `json:"wordCount"`
	Matches               []PlagiarismMatch `json:"matches"`
	AIResult              AIDetectionResult `json:"aiResult"`
	Content               string            `json:"content"`
	Receipt               DigitalReceipt    `json:"receipt"`
}

// GroundingSource is one web citation returned alongside the free-text
// match listing. When its URL equals a match's source token, its title
// overrides the derived display title.
type GroundingSource struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// MatchFindings is the raw output of the plagiarism gateway call before
// extraction: free text expected to contain a [MATCHES_START]/[MATCHES_END]
// block, plus the grounding citations.
type MatchFindings struct {
	Text      string
	Grounding []GroundingSource
}
