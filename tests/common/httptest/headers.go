//go:build unit || e2e

package httptest

import (
	"mime"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertAttachment checks a download response: content type and the attachment filename.
func AssertAttachment(t *testing.T, w *httptest.ResponseRecorder, contentType, filename string) {
	t.Helper()

	assert.Equal(t, contentType, w.Header().Get("Content-Type"))
	disposition, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
	require.NoError(t, err, "Content-Disposition: %q", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "attachment", disposition)
	assert.Equal(t, filename, params["filename"])
}
