//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

// AssertSuccessResponse checks the status and, for 2xx, decodes the body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "status mismatch, body: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "response is not JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that error.message contains expectedMsg.
// An empty expectedMsg only checks the envelope decodes.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()
	decodeError(t, w, expectedStatus, expectedMsg)
}

// AssertErrorDetail is AssertErrorResponse plus decoding the envelope's detail,
// e.g. the rejected upload rows or the missing retailer ids.
func AssertErrorDetail(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string, detail any) {
	t.Helper()
	env := decodeError(t, w, expectedStatus, expectedMsg)
	require.NotEmpty(t, env.Detail, "error has no detail: %s", w.Body.String())
	require.NoError(t, json.Unmarshal(env.Detail, detail))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) errorEnvelope {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "status mismatch, body: %s", w.Body.String())

	var env errorEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "error response is not JSON: %s", w.Body.String())
	if expectedMsg != "" {
		assert.Contains(t, env.Error.Message, expectedMsg)
	}
	return env
}
