// Package ctx provides a request context for catalog handlers.
//
// Instead of accepting (http.ResponseWriter, *http.Request), a handler
// receives a single *Context with helpers for path params, query parsing,
// body binding, the resolved caller identity, and JSON responses:
//
//	func (pc *ProductController) Show(c *ctx.Context) {
//	    id := c.ParamUint("id")
//	    c.Success(product)
//	}
//
//	// Register with ctx.Wrap:
//	router.Get("/products/{id}", "products.show", ctx.Wrap(pc.Show))
package ctx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/rajsingh19/wearhouse/pkg/bind"
	"github.com/rajsingh19/wearhouse/pkg/middleware"
	"github.com/rajsingh19/wearhouse/pkg/response"
	"github.com/rajsingh19/wearhouse/pkg/validate"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc so it can be
// passed to any router method.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps a request/response pair and provides a helper API.
type Context struct {
	W      http.ResponseWriter
	R      *http.Request
	status int // written status code (0 = not written yet)
}

// pool recycles Context objects to reduce GC pressure.
var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	c.status = 0
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// ─── Request helpers ──────────────────────────────────────────────────────────

// Param returns a URL path parameter (e.g. "/products/{id}" → c.Param("id")).
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// ParamUint parses a URL path parameter as an unsigned integer.
// Returns 0 when the parameter is absent or not a number.
func (c *Context) ParamUint(key string) uint {
	n, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}

// Query returns a query-string value. Returns "" if not present.
func (c *Context) Query(key string) string {
	return c.R.URL.Query().Get(key)
}

// QueryInt parses a query-string value as an int, falling back to def when
// the value is absent or malformed.
func (c *Context) QueryInt(key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Header returns the value of a request header.
func (c *Context) Header(key string) string {
	return c.R.Header.Get(key)
}

// Method returns the HTTP method of the request.
func (c *Context) Method() string { return c.R.Method }

// Path returns the request URL path.
func (c *Context) Path() string { return c.R.URL.Path }

// ClientIP returns the real client IP, respecting X-Forwarded-For.
func (c *Context) ClientIP() string {
	if fwd := c.R.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.SplitN(fwd, ",", 2)[0]
	}
	if real := c.R.Header.Get("X-Real-Ip"); real != "" {
		return real
	}
	ip := c.R.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// Context returns the underlying request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// Identity returns the resolved caller identity injected by the auth
// middleware. ok is false on unauthenticated requests.
func (c *Context) Identity() (middleware.Identity, bool) {
	return middleware.IdentityFromCtx(c.R.Context())
}

// ─── Binding / Validation ─────────────────────────────────────────────────────

// BindJSON decodes the JSON body into dest and runs validation.
// On validation failure it sends a 400 with per-field details and returns
// false. On a malformed body it sends a 400 with the decode error.
// Returns true only when dest is valid and ready to use.
//
//	var input requests.CreateProduct
//	if !c.BindJSON(&input) {
//	    return // response already sent
//	}
func (c *Context) BindJSON(dest any) bool {
	errs, err := bind.JSON(c.R, dest)
	if err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return false
	}
	if validate.HasErrors(errs) {
		c.ValidationError(errs)
		return false
	}
	return true
}

// ─── Response helpers ─────────────────────────────────────────────────────────

// Status writes just the HTTP status code with an empty body.
func (c *Context) Status(code int) {
	c.status = code
	c.W.WriteHeader(code)
}

// JSON writes a JSON response with the given status code.
func (c *Context) JSON(code int, v any) {
	c.W.Header().Set("Content-Type", "application/json")
	c.W.WriteHeader(code)
	c.status = code
	json.NewEncoder(c.W).Encode(v) //nolint:errcheck
}

// Success sends a 200 with the given body.
func (c *Context) Success(v any) {
	c.JSON(http.StatusOK, v)
}

// Created sends a 201 with the given body.
func (c *Context) Created(v any) {
	c.JSON(http.StatusCreated, v)
}

// Error sends {"error": message} with the given status.
func (c *Context) Error(code int, message string) {
	c.JSON(code, response.ErrorBody{Error: message})
}

// ValidationError sends a 400 with field-level error details.
func (c *Context) ValidationError(errs map[string]string) {
	c.JSON(http.StatusBadRequest, response.ErrorBody{
		Error:   "Validation error",
		Details: errs,
	})
}

// Unauthorized sends a 401.
func (c *Context) Unauthorized() {
	c.Error(http.StatusUnauthorized, "Unauthorized")
}

// Forbidden sends a 403.
func (c *Context) Forbidden() {
	c.Error(http.StatusForbidden, "Forbidden")
}

// NotFound sends a 404.
func (c *Context) NotFound(message string) {
	c.Error(http.StatusNotFound, message)
}

// Internal logs nothing itself; the caller logs the cause, the client only
// ever sees the generic message.
func (c *Context) Internal() {
	c.Error(http.StatusInternalServerError, "Internal server error")
}

// String writes a plain-text response.
func (c *Context) String(code int, format string, args ...any) {
	c.W.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.W.WriteHeader(code)
	c.status = code
	fmt.Fprintf(c.W, format, args...)
}

// WrittenStatus returns the HTTP status code that was written to the response,
// or 0 if no response has been written yet.
func (c *Context) WrittenStatus() int { return c.status }
