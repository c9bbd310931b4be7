package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxRequestBody caps how much of a request body DecodeJSON reads. The
// largest legitimate dashboard payload is a full notification batch, which
// stays far below this.
const maxRequestBody = 1 << 20

// DecodeJSON decodes the request body into the given struct. Unknown fields
// and trailing content are rejected; a half-understood admin request must not
// be acted on.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("invalid request body: unexpected trailing content")
	}
	return nil
}
