package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/HarshXTrisha/vericheck-pro/internal/models"
	"github.com/rs/zerolog"
)

// ModelGateway is the opaque text-analysis capability the pipeline depends
// on: given document text, return an unstructured match listing with
// grounding citations, and a structured AI-detection JSON payload. Both
// calls are synchronous request/response.
type ModelGateway interface {
	FindMatches(ctx context.Context, text string) (*models.MatchFindings, error)
	DetectAI(ctx context.Context, text string) (string, error)
	Configured() bool
}

type geminiClient struct {
	baseURL    string
	model      string
	apiKey     string
	retryCount int
	retryDelay time.Duration
	client     *http.Client
	logger     zerolog.Logger
}

func NewGeminiClient(baseURL, model, apiKey string, timeout time.Duration, retryCount int, retryDelay time.Duration, logger zerolog.Logger) ModelGateway {
	return &geminiClient{
		baseURL:    baseURL,
		model:      model,
		apiKey:     apiKey,
		retryCount: retryCount,
		retryDelay: retryDelay,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// generateContent request/response wire shapes, reduced to the fields the
// pipeline consumes.

type generateRequest struct {
	Contents         []requestContent  `json:"contents"`
	Tools            []requestTool     `json:"tools,omitempty"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type requestContent struct {
	Parts []contentPart `json:"parts"`
}

type contentPart struct {
	Text string `json:"text"`
}

type requestTool struct {
	GoogleSearch struct{} `json:"google_search"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []contentPart `json:"parts"`
		} `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []struct {
				Web *struct {
					URI   string `json:"uri"`
					Title string `json:"title"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

func (c *geminiClient) Configured() bool {
	return c.apiKey != ""
}

// FindMatches runs the web-grounded plagiarism call and returns the raw
// response text together with the grounding citations.
func (c *geminiClient) FindMatches(ctx context.Context, text string) (*models.MatchFindings, error) {
	req := generateRequest{
		Contents: []requestContent{{Parts: []contentPart{{Text: fmt.Sprintf(plagiarismPromptTemplate, text)}}}},
		Tools:    []requestTool{{}},
	}

	resp, err := c.generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("plagiarism scan call failed: %w", err)
	}

	findings := &models.MatchFindings{
		Text: candidateText(resp),
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web == nil {
				continue
			}
			findings.Grounding = append(findings.Grounding, models.GroundingSource{
				URL:   chunk.Web.URI,
				Title: chunk.Web.Title,
			})
		}
	}

	c.logger.Debug().
		Int("response_chars", len(findings.Text)).
		Int("grounding_sources", len(findings.Grounding)).
		Msg("Plagiarism scan response received")

	return findings, nil
}

// DetectAI runs the AI-detection call and returns the raw JSON string; the
// caller parses it and is responsible for the malformed-payload fallback.
func (c *geminiClient) DetectAI(ctx context.Context, text string) (string, error) {
	req := generateRequest{
		Contents:         []requestContent{{Parts: []contentPart{{Text: fmt.Sprintf(detectionPromptTemplate, text)}}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	}

	resp, err := c.generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("ai detection call failed: %w", err)
	}

	return candidateText(resp), nil
}

func (c *geminiClient) generate(ctx context.Context, payload generateRequest) (*generateResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)

	var lastErr error
	for i := 0; i <= c.retryCount; i++ {
		if i > 0 {
			c.logger.Warn().Int("attempt", i).Msg("Retrying model gateway call")
			time.Sleep(c.retryDelay * time.Duration(i))
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			lastErr = fmt.Errorf("failed to create request: %w", err)
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", c.apiKey)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("gateway request failed: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusOK {
			var decoded generateResponse
			if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
				resp.Body.Close()
				lastErr = fmt.Errorf("failed to decode gateway response: %w", err)
				continue
			}
			resp.Body.Close()
			return &decoded, nil
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		lastErr = fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil, fmt.Errorf("gateway call failed after %d attempts: %w", c.retryCount+1, lastErr)
}

func candidateText(resp *generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		out += part.Text
	}
	return out
}
