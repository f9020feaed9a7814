package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/parkerc/last-quiz-standing/internal/models"
)

const (
	maxRetries = 3
	baseDelay  = 500 * time.Millisecond
	maxDelay   = 5 * time.Second
)

// Client is an Oracle backed by an OpenAI-compatible chat completions API
type Client struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewClient builds an LLM oracle. baseURL points at an OpenAI-compatible
// endpoint root (tests aim it at an httptest server).
func NewClient(baseURL, apiKey, model string) *Client {
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// callChat posts one chat completion, retrying transport errors and rate
// limits with exponential backoff.
func (c *Client) callChat(ctx context.Context, temperature float64, messages []chatMessage) (string, error) {
	reqBody := chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
	}
	buf, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	var lastErr error
	delay := baseDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
			if delay > maxDelay {
				delay = maxDelay
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(buf))
		if err != nil {
			return "", err
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			lastErr = fmt.Errorf("rate limited (429), attempt %d/%d", attempt+1, maxRetries+1)
			continue
		}
		if resp.StatusCode >= 300 {
			resp.Body.Close()
			return "", fmt.Errorf("oracle error status: %s", resp.Status)
		}

		var cr chatResponse
		if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
			resp.Body.Close()
			return "", err
		}
		resp.Body.Close()

		if len(cr.Choices) == 0 {
			return "", fmt.Errorf("no choices returned from oracle")
		}
		return cr.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("max retries exceeded: %w", lastErr)
}

// cleanJSONResponse strips markdown code fences models sometimes wrap
// around JSON bodies
func cleanJSONResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

type generatedQuestion struct {
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	Options       []string `json:"options"`
}

// GenerateQuestion asks the model for one new trivia question
func (c *Client) GenerateQuestion(ctx context.Context, ageBracket string, pastQuestions []string) (*models.Question, error) {
	audience := "a general adult audience"
	if ageBracket != "" {
		audience = fmt.Sprintf("someone in the %q age bracket", ageBracket)
	}

	var history strings.Builder
	if len(pastQuestions) > 0 {
		history.WriteString("\nQuestions already asked this game, do NOT repeat or rephrase any of them:\n")
		for _, q := range pastQuestions {
			history.WriteString("- ")
			history.WriteString(q)
			history.WriteString("\n")
		}
	}

	system := `You write trivia questions for a live elimination quiz show.
Each question must have a single short factual answer and four plausible multiple-choice options including the correct one.
Respond ONLY with JSON: {"question": "...", "correct_answer": "...", "options": ["...", "...", "...", "..."]}`

	user := fmt.Sprintf(`Write one trivia question pitched at %s.%s`, audience, history.String())

	raw, err := c.callChat(ctx, 0.8, []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	})
	if err != nil {
		return nil, err
	}

	var gq generatedQuestion
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &gq); err != nil {
		return nil, fmt.Errorf("parse generated question: %w (raw=%s)", err, raw)
	}
	if gq.Question == "" || gq.CorrectAnswer == "" {
		return nil, fmt.Errorf("oracle returned an incomplete question (raw=%s)", raw)
	}
	return &models.Question{
		Text:          gq.Question,
		CorrectAnswer: gq.CorrectAnswer,
		Options:       gq.Options,
	}, nil
}

type verdict struct {
	Correct bool `json:"correct"`
}

// ValidateAnswer asks the model for a lenient correctness verdict
func (c *Client) ValidateAnswer(ctx context.Context, questionText, correctAnswer, submitted string) (bool, error) {
	system := `You grade quiz answers leniently. Accept minor typos, spelling mistakes, abbreviations and paraphrases that clearly mean the correct answer. Respond ONLY with JSON: {"correct": true} or {"correct": false}`

	user := fmt.Sprintf(`Question: %q
Correct answer: %q
Submitted answer: %q

Is the submitted answer correct?`, questionText, correctAnswer, submitted)

	raw, err := c.callChat(ctx, 0, []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	})
	if err != nil {
		return false, err
	}

	var v verdict
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &v); err != nil {
		return false, fmt.Errorf("parse verdict: %w (raw=%s)", err, raw)
	}
	return v.Correct, nil
}
