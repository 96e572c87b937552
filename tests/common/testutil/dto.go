//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns a request DTO into its JSON object form so tests can drop or
// corrupt single fields.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, mutate := range muts {
		mutate(m)
	}
	return m
}

type Mutation = func(map[string]any)

func Set(key string, value any) Mutation {
	return func(m map[string]any) { m[key] = value }
}

func Without(keys ...string) Mutation {
	return func(m map[string]any) {
		for _, k := range keys {
			delete(m, k)
		}
	}
}
