// Package anthropic calls the Anthropic Messages API for coaching analysis
// and drill question generation.
package anthropic

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

	"go.uber.org/zap"

	"clarity/internal/domain"
	"clarity/internal/ports"
)

// ErrMalformedAnalysis marks a response whose body could not be validated
// into an AnalysisResult. It is distinct from transport failure: a response
// missing fields or carrying out-of-range scores is never partial success.
var ErrMalformedAnalysis = errors.New("analysis response is malformed")

const apiVersion = "2023-06-01"

// Config controls the Anthropic client.
type Config struct {
	APIKey            string
	APIBaseURL        string
	Model             string
	AnalysisMaxTokens int
	QuestionMaxTokens int
	Timeout           time.Duration
}

// Client implements ports.AnalysisClient and ports.QuestionGenerator.
type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "https://api.anthropic.com"
	}
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-5-20250514"
	}
	if cfg.AnalysisMaxTokens <= 0 {
		cfg.AnalysisMaxTokens = 1500
	}
	if cfg.QuestionMaxTokens <= 0 {
		cfg.QuestionMaxTokens = 200
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

var altitudeGuidance = map[domain.QuestionType]string{
	domain.QuestionBigPicture: "This was a 30,000-foot strategic question. The answer should stay at the strategic level with frameworks, not dive into tactics.",
	domain.QuestionDrillDown:  "This was a tactical drill-down question. The answer should be specific and actionable with concrete steps.",
	domain.QuestionCurveball:  "This was a curveball/scenario question. The answer should show quick thinking with a structured response despite the surprise.",
	domain.QuestionDefend:     `This was a "defend your position" question. The answer should present a clear thesis with supporting arguments.`,
	domain.QuestionSimplify:   `This was a "simplify/explain" question. The answer should be accessible to a non-expert without jargon.`,
}

// Analyze sends the transcript for coaching feedback and validates the
// structured result before returning it.
func (c *Client) Analyze(ctx context.Context, req ports.AnalysisRequest) (domain.AnalysisResult, error) {
	text, err := c.complete(ctx, analysisPrompt(req), c.cfg.AnalysisMaxTokens)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	payload, ok := extractJSONObject(text)
	if !ok {
		c.log.Warn("analysis response carried no JSON object")
		return domain.AnalysisResult{}, fmt.Errorf("%w: no JSON object in response", ErrMalformedAnalysis)
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}
	if err := result.Validate(); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %v", ErrMalformedAnalysis, err)
	}
	return result, nil
}

// GenerateQuestion asks for a single fresh drill question and returns it
// trimmed of surrounding whitespace and quoting.
func (c *Client) GenerateQuestion(ctx context.Context, req ports.QuestionRequest) (string, error) {
	text, err := c.complete(ctx, questionPrompt(req), c.cfg.QuestionMaxTokens)
	if err != nil {
		return "", err
	}

	question := strings.TrimSpace(text)
	question = strings.Trim(question, `"'`)
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("question generation returned empty text")
	}
	return question, nil
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// complete runs one user-turn request and returns the first text block.
func (c *Client) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if c.cfg.APIKey == "" {
		return "", errors.New("ANTHROPIC_API_KEY is not configured")
	}

	body, err := json.Marshal(messagesRequest{
		Model:     c.cfg.Model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := strings.TrimRight(c.cfg.APIBaseURL, "/") + "/v1/messages"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.cfg.APIKey)
	httpReq.Header.Set("Anthropic-Version", apiVersion)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call analysis service: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var decoded messagesResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if decoded.Error != nil && decoded.Error.Message != "" {
			return "", fmt.Errorf("analysis service error: %s", decoded.Error.Message)
		}
		return "", fmt.Errorf("analysis service returned status %d", resp.StatusCode)
	}

	for _, block := range decoded.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", errors.New("response contained no text content")
}

// extractJSONObject returns the outermost {...} span of text, mirroring how
// the service is instructed to answer with a bare JSON object.
func extractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func analysisPrompt(req ports.AnalysisRequest) string {
	var b strings.Builder
	b.WriteString("You are a communication coach analyzing a spoken response to an unexpected question.\n\n")
	fmt.Fprintf(&b, "QUESTION: %q\n", req.Question)
	fmt.Fprintf(&b, "QUESTION TYPE: %s\n", req.QuestionType)
	b.WriteString(altitudeGuidance[req.QuestionType])
	b.WriteString("\n\nSPOKEN RESPONSE (transcribed):\n")
	fmt.Fprintf(&b, "%q\n\n", req.Transcript)
	b.WriteString(`Analyze this spoken response and return a JSON object with exactly this structure:
{
  "overall": <number 1-10>,
  "dimensions": {
    "structure": { "score": <1-10>, "note": "<one sentence>" },
    "clarity": { "score": <1-10>, "note": "<one sentence>" },
    "conciseness": { "score": <1-10>, "note": "<one sentence>" },
    "altitude": { "score": <1-10>, "note": "<one sentence>" },
    "confidence": { "score": <1-10>, "note": "<one sentence>" }
  },
  "summary": "<2-3 sentence overall assessment>",
  "keyImprovement": "<single most impactful thing to improve, one sentence>",
  "polishedVersion": "<rewrite of their response in 60-90 seconds of speaking time, keeping their ideas but with better structure, clarity, and confidence. Use their voice/style but eliminate filler and add structure.>",
  "fillerWords": [<array of filler phrases detected, e.g. "um", "like", "you know", "so basically", "I think maybe">]
}

Scoring guide:
- Structure: Did they frame/preview before diving in? Is there a clear beginning/middle/end?
- Clarity: Would a listener understand on first hearing? No ambiguity?
- Conciseness: Did they make their point efficiently? No rambling or repetition?
- Altitude: Did they answer at the right level for the question type?
- Confidence: No hedging ("I think maybe"), filler words, or unnecessary qualifiers?

Return ONLY the JSON object, no other text.`)
	return b.String()
}

func questionPrompt(req ports.QuestionRequest) string {
	var b strings.Builder
	b.WriteString("Generate a single interview/communication drill question.\n\n")
	fmt.Fprintf(&b, "Category: %s\n", req.Category)

	names := make([]string, len(req.Domains))
	for i, d := range req.Domains {
		names[i] = string(d)
	}
	fmt.Fprintf(&b, "Relevant domains: %s", strings.Join(names, ", "))

	switch req.Difficulty {
	case domain.DifficultyEasy:
		b.WriteString("\nDifficulty level: easy. Keep the question straightforward and common.")
	case domain.DifficultyHard:
		b.WriteString("\nDifficulty level: hard. Make the question challenging, nuanced, and require deep expertise.")
	case domain.DifficultyMedium:
		b.WriteString("\nDifficulty level: medium. Make it moderately challenging.")
	}

	b.WriteString(`

Category descriptions:
- big-picture: 30,000-foot strategic thinking questions
- drill-down: Tactical, step-by-step execution questions
- curveball: Unexpected scenario/crisis questions
- defend: "Defend a position" argumentative questions
- simplify: "Explain complex ideas simply" questions

Return ONLY the question text, nothing else. No quotes, no prefix, no explanation.`)
	return b.String()
}
