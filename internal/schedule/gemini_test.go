package schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"nurse-roster/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeGemini returns a test server that answers generateContent with the
// given candidate text, plus a counter of calls received.
func fakeGemini(t *testing.T, status int, candidateText string, calls *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)
		assert.InDelta(t, 0.8, req.GenerationConfig.Temperature, 0.001)
		assert.NotNil(t, req.GenerationConfig.ResponseSchema)

		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`))
			return
		}

		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"role":  "model",
						"parts": []map[string]string{{"text": candidateText}},
					},
					"finishReason": "STOP",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func testClient(baseURL string) *GeminiClient {
	cfg := DefaultConfig("test-key")
	cfg.BaseURL = baseURL
	return NewGeminiClient(cfg, zap.NewNop())
}

func testNurses() []models.Nurse {
	return []models.Nurse{
		{ID: "1", Name: "Alice", Preferences: models.NewPreferences()},
		{ID: "2", Name: "Bob", Preferences: models.NewPreferences()},
	}
}

func TestGeminiClient_GenerateSuccess(t *testing.T) {
	doc := fullScheduleDoc()
	doc["monday"]["dayShift"] = []string{"Alice"}
	raw, _ := json.Marshal(doc)

	var calls atomic.Int64
	ts := fakeGemini(t, http.StatusOK, string(raw), &calls)
	defer ts.Close()

	sched, err := testClient(ts.URL).Generate(context.Background(), testNurses())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, sched[models.Monday].DayShift)
	assert.Equal(t, int64(1), calls.Load(), "exactly one outbound call, no retries")
}

func TestGeminiClient_GenerateServerError(t *testing.T) {
	var calls atomic.Int64
	ts := fakeGemini(t, http.StatusInternalServerError, "", &calls)
	defer ts.Close()

	_, err := testClient(ts.URL).Generate(context.Background(), testNurses())
	assert.ErrorIs(t, err, ErrGeneration)
	assert.Equal(t, int64(1), calls.Load(), "a failed attempt is not retried")
}

func TestGeminiClient_GenerateNonJSONCandidate(t *testing.T) {
	var calls atomic.Int64
	ts := fakeGemini(t, http.StatusOK, "sorry, I cannot do that", &calls)
	defer ts.Close()

	_, err := testClient(ts.URL).Generate(context.Background(), testNurses())
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGeminiClient_GenerateMissingDayKey(t *testing.T) {
	doc := fullScheduleDoc()
	delete(doc, "sunday")
	raw, _ := json.Marshal(doc)

	var calls atomic.Int64
	ts := fakeGemini(t, http.StatusOK, string(raw), &calls)
	defer ts.Close()

	_, err := testClient(ts.URL).Generate(context.Background(), testNurses())
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGeminiClient_GenerateTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // already closed: connection refused

	_, err := testClient(ts.URL).Generate(context.Background(), testNurses())
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGeminiClient_GenerateWithoutAPIKey(t *testing.T) {
	cfg := DefaultConfig("")
	client := NewGeminiClient(cfg, zap.NewNop())

	_, err := client.Generate(context.Background(), testNurses())
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGeminiClient_GenerateEmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	_, err := testClient(ts.URL).Generate(context.Background(), testNurses())
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGeminiClient_PromptCarriesPreferences(t *testing.T) {
	var gotPrompt string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		json.NewDecoder(r.Body).Decode(&req)
		gotPrompt = req.Contents[0].Parts[0].Text

		raw, _ := json.Marshal(fullScheduleDoc())
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{"parts": []map[string]string{{"text": string(raw)}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	nurses := testNurses()
	nurses[1].Preferences.UnavailableDays = map[models.DayOfWeek]string{models.Monday: "leave"}

	_, err := testClient(ts.URL).Generate(context.Background(), nurses)
	require.NoError(t, err)
	assert.Contains(t, gotPrompt, "Alice, Bob")
	assert.Contains(t, gotPrompt, "- Bob: Unavailable days: Monday (leave)")
}
