package shared

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	hexPattern := regexp.MustCompile(`^[0-9a-f]{32}$`)

	t.Run("set and get round trip", func(t *testing.T) {
		t.Parallel()
		ctx := SetTraceID(context.Background())
		traceID := GetTraceID(ctx)
		assert.Regexp(t, hexPattern, traceID)
	})

	t.Run("absent trace ID is empty", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", GetTraceID(context.Background()))
	})

	t.Run("consecutive trace IDs differ", func(t *testing.T) {
		t.Parallel()
		first := GetTraceID(SetTraceID(context.Background()))
		second := GetTraceID(SetTraceID(context.Background()))
		assert.NotEqual(t, first, second)
	})

	t.Run("fallback trace ID has the same shape", func(t *testing.T) {
		t.Parallel()
		assert.Regexp(t, hexPattern, generateFallbackTraceID())
	})
}
