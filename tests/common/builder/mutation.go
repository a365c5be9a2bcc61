//go:build unit || e2e

package builder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body in its JSON map form, for validation grids
// that need fields a typed DTO cannot express (missing keys, wrong types).
type Mutation func(body map[string]any)

func Set(key string, value any) Mutation {
	return func(body map[string]any) { body[key] = value }
}

func Without(key string) Mutation {
	return func(body map[string]any) { delete(body, key) }
}

// Mutated round-trips dto through JSON and applies muts in order.
func Mutated(t *testing.T, dto any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, m := range muts {
		m(body)
	}
	return body
}
