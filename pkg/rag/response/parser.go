package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyText = errors.New("generated response has no text")

type modelPayload struct {
	Text   string   `json:"text"`
	Quotes []string `json:"quotes"`
}

// stripCodeFence removes a Markdown ```json or ``` wrapper around the body.
func stripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func parsePayload(raw string) (*modelPayload, error) {
	var payload modelPayload
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &payload); err != nil {
		return nil, fmt.Errorf("decode generated response: %w", err)
	}
	payload.Text = strings.TrimSpace(payload.Text)
	if payload.Text == "" {
		return nil, ErrEmptyText
	}

	quotes := make([]string, 0, MaxQuotes)
	for _, q := range payload.Quotes {
		if q = strings.TrimSpace(q); q == "" {
			continue
		}
		quotes = append(quotes, q)
		if len(quotes) == MaxQuotes {
			break
		}
	}
	payload.Quotes = quotes
	return &payload, nil
}
