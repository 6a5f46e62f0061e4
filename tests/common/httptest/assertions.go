//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertErrorResponse checks the status and that the body's message contains
// expectedMsg. Every error body carries a top-level "message".
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var body struct {
		Message string `json:"message"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedMsg != "" {
		assert.Contains(t, body.Message, expectedMsg,
			"Response message doesn't contain expected text")
	}
}

// AssertJSONField decodes the body as an object and compares one top-level field.
func AssertJSONField(t *testing.T, w *httptest.ResponseRecorder, key string, expected any) {
	t.Helper()

	var body map[string]any
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String()) {
		return
	}
	assert.Equal(t, expected, body[key], "field %s mismatch in %s", key, w.Body.String())
}

// AssertHeaders compares exact values; an empty expected value means the header must be present.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		if v == "" {
			assert.NotEmpty(t, w.Header().Get(k), "header %s missing", k)
			continue
		}
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
