//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns a request body into a JSON object map and applies muts in order,
// so one valid body can be bent into each invalid variant of a table test.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m), "request body must be a JSON object")
	for _, f := range muts {
		f(m)
	}
	return m
}
