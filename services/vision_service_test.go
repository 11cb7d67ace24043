package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidates_JSONArray(t *testing.T) {
	content := `[
		{"name": "grilled chicken breast", "confidence": 8, "visual_cues": "grill marks", "estimated_size": "medium", "preparation": "grilled"},
		{"name": "white rice", "confidence": 7, "visual_cues": "fluffy grains", "estimated_size": "large", "preparation": "steamed"}
	]`

	got := parseCandidates(content)
	require.Len(t, got, 2)
	assert.Equal(t, "grilled chicken breast", got[0].Name)
	assert.Equal(t, 8, got[0].Confidence)
	assert.Equal(t, "large", got[1].EstimatedSize)
}

func TestParseCandidates_MarkdownFences(t *testing.T) {
	content := "```json\n[{\"name\": \"tofu\", \"confidence\": 6, \"estimated_size\": \"small\"}]\n```"

	got := parseCandidates(content)
	require.Len(t, got, 1)
	assert.Equal(t, "tofu", got[0].Name)
	assert.Equal(t, 6, got[0].Confidence)
}

func TestParseCandidates_SingleObject(t *testing.T) {
	got := parseCandidates(`{"name": "salmon", "confidence": 9, "estimated_size": "medium"}`)
	require.Len(t, got, 1)
	assert.Equal(t, "salmon", got[0].Name)
}

func TestParseCandidates_ClampsConfidence(t *testing.T) {
	got := parseCandidates(`[{"name": "a", "confidence": 0}, {"name": "b", "confidence": 14}, {"name": ""}]`)
	require.Len(t, got, 2, "nameless entries are dropped")
	assert.Equal(t, 1, got[0].Confidence)
	assert.Equal(t, 10, got[1].Confidence)
}

func TestParseCandidates_ProseFallback(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantName string
	}{
		{"egg prose", "I can see what appears to be a hard boiled egg on a plate.", "hard-boiled egg"},
		{"chicken prose", "That looks like some cooked chicken with vegetables.", "chicken"},
		{"nothing clear", "There is no clear food visible in this image.", "unclear image"},
		{"unparseable", "^^^garbage^^^", "unidentified food"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCandidates(tt.content)
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantName, got[0].Name)
			assert.NotZero(t, got[0].Confidence)
		})
	}
}

func TestVisionService_Identify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req["model"])

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{
				"message": map[string]any{
					"content": `[{"name": "grilled chicken breast", "confidence": 8, "estimated_size": "medium", "preparation": "grilled"}]`,
				},
			}},
		})
	}))
	defer srv.Close()

	svc := &VisionService{
		apiKey:   "test-key",
		model:    "gpt-4o-mini",
		endpoint: srv.URL,
		client:   &http.Client{Timeout: 5 * time.Second},
	}

	got, err := svc.Identify(context.Background(), "aW1hZ2U=", "image/jpeg")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "grilled chicken breast", got[0].Name)
}

func TestVisionService_ErrorsAreUnavailable(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		svc := &VisionService{client: http.DefaultClient}
		_, err := svc.Identify(context.Background(), "aW1hZ2U=", "image/jpeg")
		assert.ErrorIs(t, err, ErrIdentificationUnavailable)
	})

	t.Run("upstream 500", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		svc := &VisionService{apiKey: "k", model: "m", endpoint: srv.URL, client: srv.Client()}
		_, err := svc.Identify(context.Background(), "aW1hZ2U=", "image/jpeg")
		assert.ErrorIs(t, err, ErrIdentificationUnavailable)
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		svc := &VisionService{
			apiKey:   "k",
			model:    "m",
			endpoint: "http://127.0.0.1:0",
			client:   &http.Client{Timeout: time.Second},
		}
		_, err := svc.Identify(context.Background(), "aW1hZ2U=", "image/jpeg")
		assert.ErrorIs(t, err, ErrIdentificationUnavailable)
	})
}
