package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajsingh19/wearhouse/config"
)

type createPayload struct {
	Title string `json:"title" validate:"required"`
	Price *int   `json:"price" validate:"required,gte=0"`
}

func request(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestJSONBindsValidBody(t *testing.T) {
	var dest createPayload
	errs, err := JSON(request(`{"title":"Shirt","price":0}`), &dest)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, "Shirt", dest.Title)
	require.NotNil(t, dest.Price)
	assert.Equal(t, 0, *dest.Price)
}

func TestJSONReturnsFieldErrors(t *testing.T) {
	var dest createPayload
	errs, err := JSON(request(`{"price":-1}`), &dest)
	require.NoError(t, err)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "price")
}

func TestJSONRejectsMalformedBody(t *testing.T) {
	var dest createPayload
	_, err := JSON(request(`{"title":`), &dest)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestJSONRejectsTrailingContent(t *testing.T) {
	var dest createPayload
	_, err := JSON(request(`{"title":"Shirt","price":1} {"title":"Again"}`), &dest)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestJSONRejectsOversizedBody(t *testing.T) {
	config.Set("MAX_BODY_BYTES", "16")
	t.Cleanup(func() { config.Set("MAX_BODY_BYTES", "") })

	var dest createPayload
	_, err := JSON(request(`{"title":"`+strings.Repeat("x", 64)+`"}`), &dest)
	require.ErrorIs(t, err, ErrTooLarge)
}
