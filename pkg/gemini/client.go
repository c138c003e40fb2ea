package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const baseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// ErrNotConfigured is returned when the API key was absent at startup
var ErrNotConfigured = errors.New("gemini API key not configured")

// Client calls the Gemini generateContent REST API for project evaluation
// and ranking. Prompts demand strict JSON; responses are stripped of
// markdown fences before parsing.
type Client struct {
	APIKey string
	Model  string
	client *http.Client
}

// NewClient creates a new Gemini client. An empty key produces an
// unconfigured client whose operations fail fast with ErrNotConfigured.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Client{
		APIKey: apiKey,
		Model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether the API key is present
func (c *Client) Configured() bool {
	return c.APIKey != ""
}

// EvaluationResult is one project evaluation as returned by the model
type EvaluationResult struct {
	Score           int      `json:"score"`
	Metrics         Metrics  `json:"metrics"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	Recommendations []string `json:"recommendations"`
}

// Metrics holds the seven per-criterion scores, 0-100 each
type Metrics struct {
	Innovation          int `json:"innovation"`
	TechnicalComplexity int `json:"technicalComplexity"`
	CodeQuality         int `json:"codeQuality"`
	Functionality       int `json:"functionality"`
	Design              int `json:"design"`
	Impact              int `json:"impact"`
	Documentation       int `json:"documentation"`
}

// RankEntry is one submission in a ranking request
type RankEntry struct {
	Description string `json:"description"`
	GithubLink  string `json:"githubLink"`
}

// RankResult is one entry of the model's ranking response. Index points into
// the request list that was sent.
type RankResult struct {
	Index    int    `json:"index"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// EvaluateProject scores one submission against the seven judging criteria
func (c *Client) EvaluateProject(ctx context.Context, description, githubLink string) (*EvaluationResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	prompt := fmt.Sprintf(`You are a hackathon judge. Evaluate the following project submission.

Project description:
%s

GitHub repository:
%s

Score the project 0-100 overall and 0-100 on each criterion: innovation,
technicalComplexity, codeQuality, functionality, design, impact,
documentation. List concrete strengths, improvements and recommendations.

Return strict JSON with structure:
{
  "score": int,
  "metrics": {
    "innovation": int,
    "technicalComplexity": int,
    "codeQuality": int,
    "functionality": int,
    "design": int,
    "impact": int,
    "documentation": int
  },
  "strengths": [string],
  "improvements": [string],
  "recommendations": [string]
}

Return ONLY the raw JSON without any markdown formatting, code blocks, or additional text.`, description, githubLink)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result EvaluationResult
	if err := json.Unmarshal([]byte(CleanJSONResponse(text)), &result); err != nil {
		return nil, fmt.Errorf("failed to parse evaluation JSON: %w\nResponse: %s", err, text)
	}
	return &result, nil
}

// RankProjects scores and orders all submissions in one call. Results carry
// the zero-based index of the corresponding request entry.
func (c *Client) RankProjects(ctx context.Context, entries []RankEntry) ([]RankResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	list, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rank entries: %w", err)
	}

	prompt := fmt.Sprintf(`You are a hackathon judge. Rank the following project submissions
from best to worst. The input is a JSON array; refer to each submission by its
zero-based position in that array.

Submissions:
%s

Return strict JSON: an array ordered best first, one entry per submission,
with structure:
[
  {"index": int, "score": int, "feedback": string}
]

"index" is the submission's zero-based position in the input array, "score"
is 0-100, "feedback" is one or two sentences. Every submission must appear
exactly once. Return ONLY the raw JSON without any markdown formatting, code
blocks, or additional text.`, string(list))

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var results []RankResult
	if err := json.Unmarshal([]byte(CleanJSONArray(text)), &results); err != nil {
		return nil, fmt.Errorf("failed to parse ranking JSON: %w\nResponse: %s", err, text)
	}
	if len(results) != len(entries) {
		return nil, fmt.Errorf("ranking returned %d results for %d submissions", len(results), len(entries))
	}
	return results, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
	Config   genConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
	TopK        int     `json:"topK"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Config:   genConfig{Temperature: 0.1, TopP: 0.8, TopK: 40},
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", baseURL, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var apiResponse generateResponse
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}
	if len(apiResponse.Candidates) == 0 || len(apiResponse.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no candidates in response")
	}
	return apiResponse.Candidates[0].Content.Parts[0].Text, nil
}

// CleanJSONResponse strips markdown fences and surrounding prose from a
// model response expected to be a JSON object
func CleanJSONResponse(content string) string {
	content = stripFences(content)
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start != -1 && end != -1 && end > start {
		content = content[start : end+1]
	}
	return strings.TrimSpace(content)
}

// CleanJSONArray strips markdown fences and surrounding prose from a model
// response expected to be a JSON array
func CleanJSONArray(content string) string {
	content = stripFences(content)
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start != -1 && end != -1 && end > start {
		content = content[start : end+1]
	}
	return strings.TrimSpace(content)
}

func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
