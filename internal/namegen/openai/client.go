package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/pdf-renamer/internal/namegen"
)

// maxPromptChars bounds how much document text is sent with each request.
const maxPromptChars = 4000

const systemPrompt = "You generate short and descriptive filenames for documents. " +
	"Filenames start with the client name, then the project name. " +
	"Filenames may contain letters, digits and spaces but no other punctuation. " +
	"Respond with a JSON object of the form {\"filename\": \"...\"}."

// DeriveName implements namegen.Strategy by asking the chat API for a short
// title. A transport or service failure affects only the current document;
// the caller skips it and moves on.
func (c *Client) DeriveName(ctx context.Context, text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", namegen.ErrNoName
	}
	if r := []rune(trimmed); len(r) > maxPromptChars {
		trimmed = string(r[:maxPromptChars])
	}

	rid := uuid.New().String()
	start := time.Now()
	c.log.Info("namegen.request.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(trimmed),
	)

	schema := buildTitleJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"max_tokens":      c.cfg.MaxTokens,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": "Provide a short filename for this document:\n" + trimmed},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("namegen.request.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("namegen.request.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("namegen.request.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("no choices in openai response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := validateJSONAgainstSchema(schema, content); err != nil {
		c.log.Error("namegen.request.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("schema validation failed: %w", err)
	}

	var out struct {
		Filename string `json:"filename"`
	}
	if err := json.Unmarshal(content, &out); err != nil {
		return "", fmt.Errorf("unmarshal title: %w", err)
	}

	title := out.Filename
	if r := []rune(title); len(r) > MaxTitleLength {
		title = string(r[:MaxTitleLength])
	}
	base := namegen.Sanitize(title)
	if base == "" {
		return "", namegen.ErrNoName
	}
	// The sanitizer lets punctuation like '-' or ',' through; generated
	// titles are held to the stricter class.
	if !namegen.IsValidFilename(base) {
		c.log.Warn("namegen.request.invalid_title",
			"req_id", rid, "title", title,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("title %q: %w", title, namegen.ErrInvalidName)
	}

	c.log.Info("namegen.request.ok",
		"req_id", rid,
		"base", base,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return base, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read openai response: %w", err)
	}
	return buf.Bytes(), nil
}
