//go:build unit || e2e

package testutil

// Field returns a mutation for DtoMap that sets key to value.
// Passing a nil value removes the key, which is how tests model
// an omitted field in a request body.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
