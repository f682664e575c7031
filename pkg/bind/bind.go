// Package bind turns request bodies into validated request structs.
//
// Every mutating catalog route accepts a single JSON object. Decoding is
// strict about size (MAX_BODY_BYTES, default 4 MB, comfortably above the
// largest legal product payload) and about trailing content after the
// object. Field rules then run through pkg/validate and come back keyed
// by JSON field name, ready for the 400 details map.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/rajsingh19/wearhouse/config"
	"github.com/rajsingh19/wearhouse/pkg/validate"
)

// Decode failures handlers turn into a plain 400 message. The split
// matters mostly for logs and tests.
var (
	ErrTooLarge  = errors.New("request body exceeds the size limit")
	ErrMalformed = errors.New("request body is not valid JSON")
)

const defaultBodyCap = 4 << 20

func bodyCap() int64 {
	n, err := strconv.ParseInt(config.Get("MAX_BODY_BYTES", ""), 10, 64)
	if err != nil || n <= 0 {
		return defaultBodyCap
	}
	return n
}

// JSON decodes r.Body into dest and validates it.
// Returns (errs, nil) when the body decoded but failed field validation.
// Returns (nil, err) wrapping ErrTooLarge or ErrMalformed when the body
// itself is unusable; err.Error() is safe to send to the client.
func JSON(r *http.Request, dest any) (map[string]string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, bodyCap())

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w (%d bytes max)", ErrTooLarge, maxErr.Limit)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	// Anything after the first object is a malformed request, not slack
	// the decoder should silently swallow.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected content after JSON body", ErrMalformed)
	}

	if errs := validate.Struct(dest); validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, nil
}
