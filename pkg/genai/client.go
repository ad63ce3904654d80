package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ai-siteplanner-be/internal/pkg/apperrors"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com"

type ContentPart struct {
	Text string `json:"text"`
}

type Content struct {
	Parts []*ContentPart `json:"parts"`
	Role  string         `json:"role,omitempty"`
}

// GenerationConfig carries the per-request knobs the planner exposes.
// Temperature is passed through to the provider unexamined.
type GenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type GenerateRequest struct {
	Contents          []*Content        `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

type Candidate struct {
	Content *Content `json:"content"`
}

type GenerateResponse struct {
	Candidates []*Candidate `json:"candidates"`
}

const RoleUser = "user"

type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithBaseURL overrides the provider endpoint. Tests point it at a
// local httptest server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(apiKey, model string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether an API credential is present. Callers use
// it as a precondition before starting a multi-call workflow.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// GenerateJSON sends one user prompt with a system instruction and a
// JSON-biased response mode, and returns the raw model text. The text
// is NOT guaranteed to be valid JSON; that is the normalizer's problem.
func (c *Client) GenerateJSON(ctx context.Context, systemInstruction, userContent string, temperature float64) (string, error) {
	if !c.Configured() {
		return "", apperrors.ErrAPIKeyMissing
	}

	payload := GenerateRequest{
		Contents: []*Content{
			{
				Parts: []*ContentPart{{Text: userContent}},
				Role:  RoleUser,
			},
		},
		SystemInstruction: &Content{
			Parts: []*ContentPart{{Text: systemInstruction}},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:      temperature,
			ResponseMimeType: "application/json",
		},
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var genRes GenerateResponse
	err = json.Unmarshal(resBody, &genRes)
	if err != nil {
		return "", err
	}

	if len(genRes.Candidates) == 0 || genRes.Candidates[0].Content == nil || len(genRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response, no candidates returned")
	}

	return genRes.Candidates[0].Content.Parts[0].Text, nil
}
