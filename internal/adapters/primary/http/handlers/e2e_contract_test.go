package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---------------------------------------------------------------------------
// Helper: assert JSON field exists and has expected type
// ---------------------------------------------------------------------------

func assertFieldString(t *testing.T, resp map[string]interface{}, key string) {
	t.Helper()
	val, ok := resp[key]
	assert.True(t, ok, "response missing field %q", key)
	if ok {
		_, isStr := val.(string)
		assert.True(t, isStr, "field %q should be string, got %T", key, val)
	}
}

func assertFieldNumber(t *testing.T, resp map[string]interface{}, key string) {
	t.Helper()
	val, ok := resp[key]
	assert.True(t, ok, "response missing field %q", key)
	if ok {
		_, isNum := val.(float64)
		assert.True(t, isNum, "field %q should be number, got %T", key, val)
	}
}

func assertFieldBool(t *testing.T, resp map[string]interface{}, key string) {
	t.Helper()
	val, ok := resp[key]
	assert.True(t, ok, "response missing field %q", key)
	if ok {
		_, isBool := val.(bool)
		assert.True(t, isBool, "field %q should be bool, got %T", key, val)
	}
}

// ---------------------------------------------------------------------------
// Contract: GET /
// ---------------------------------------------------------------------------

func TestContract_Home(t *testing.T) {
	for _, body := range []string{testArtifact, ""} {
		r := setupRouter(t, body)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assertFieldString(t, resp, "message")
		assertFieldBool(t, resp, "model_loaded")
		assertFieldString(t, resp, "status")
	}
}

// ---------------------------------------------------------------------------
// Contract: GET /health
// ---------------------------------------------------------------------------

func TestContract_Health(t *testing.T) {
	for _, body := range []string{testArtifact, ""} {
		r := setupRouter(t, body)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		resp := decode(t, w)
		assertFieldString(t, resp, "status")
		assertFieldBool(t, resp, "model_loaded")
		assertFieldString(t, resp, "model_path")
		assertFieldBool(t, resp, "model_exists")
	}
}

// ---------------------------------------------------------------------------
// Contract: POST /predict
// ---------------------------------------------------------------------------

func TestContract_Predict(t *testing.T) {
	r := setupRouter(t, testArtifact)

	w := postPredict(r, `{"years": 5}`)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assertFieldNumber(t, resp, "years_experience")
	assertFieldNumber(t, resp, "predicted_salary")
	assertFieldString(t, resp, "status")
	assert.Len(t, resp, 3)
}

func TestContract_PredictErrors(t *testing.T) {
	tests := []struct {
		name     string
		artifact string
		body     string
		code     int
	}{
		{"negative years", testArtifact, `{"years": -1}`, http.StatusBadRequest},
		{"missing years", testArtifact, `{}`, http.StatusUnprocessableEntity},
		{"model missing", "", `{"years": 5}`, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, tt.artifact)

			w := postPredict(r, tt.body)

			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
			assertFieldString(t, decode(t, w), "detail")
		})
	}
}
