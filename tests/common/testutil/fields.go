//go:build unit || e2e

package testutil

// Field sets key to value; a nil value drops the key, which is how a missing field is sent.
func Field(key string, value any) func(m map[string]any) {
	if value == nil {
		return Omit(key)
	}
	return func(m map[string]any) {
		m[key] = value
	}
}

// Omit drops every key, e.g. the optional fields of a minimal create request.
func Omit(keys ...string) func(m map[string]any) {
	return func(m map[string]any) {
		for _, k := range keys {
			delete(m, k)
		}
	}
}
