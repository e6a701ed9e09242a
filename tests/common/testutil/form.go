//go:build unit || e2e

package testutil

import (
	"maps"
	"testing"
)

// FormMap copies base and applies muts in order, leaving base untouched.
func FormMap(t *testing.T, base map[string]any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	m := maps.Clone(base)
	if m == nil {
		m = map[string]any{}
	}
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value; a nil value removes the key.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

func Without(keys ...string) func(map[string]any) {
	return func(m map[string]any) {
		for _, k := range keys {
			delete(m, k)
		}
	}
}
