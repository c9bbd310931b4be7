package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	newRequest := func(body string) *http.Request {
		return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	}

	t.Run("decodes a well-formed body", func(t *testing.T) {
		t.Parallel()

		var p payload
		err := DecodeJSON(newRequest(`{"name":"Spice Route"}`), &p)
		require.NoError(t, err)
		assert.Equal(t, "Spice Route", p.Name)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		var p payload
		err := DecodeJSON(newRequest(`{"name":"x","extra":true}`), &p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid request body")
	})

	t.Run("rejects trailing content", func(t *testing.T) {
		t.Parallel()

		var p payload
		err := DecodeJSON(newRequest(`{"name":"x"}{"name":"y"}`), &p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "trailing content")
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		t.Parallel()

		var p payload
		assert.Error(t, DecodeJSON(newRequest(""), &p))
	})
}
