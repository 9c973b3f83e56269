package routing

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// RequestData is the generic, transport-independent shape of an HTTP request:
// method, ordered path segments, multi-valued query parameters, multi-valued
// headers, and an optional body. Codecs read and write individual slots;
// the credential router only ever touches the Authorization header and
// leaves everything else to the application route codec.
type RequestData struct {
	Method  string
	Path    []string
	Query   url.Values
	Headers http.Header
	Body    mo.Option[[]byte]
}

// NewRequestData creates empty request data with initialized maps.
func NewRequestData() *RequestData {
	return &RequestData{
		Method:  "",
		Path:    nil,
		Query:   url.Values{},
		Headers: http.Header{},
		Body:    mo.None[[]byte](),
	}
}

// FromHTTPRequest captures an incoming request as request data.
// The body is read fully and restored on the request so downstream handlers
// can still consume it.
func FromHTTPRequest(r *http.Request) (*RequestData, error) {
	data := NewRequestData()
	data.Method = r.Method
	// Split the escaped form so encoded slashes stay inside their segment.
	data.Path = splitPath(r.URL.EscapedPath())
	data.Query = cloneValues(r.URL.Query())
	data.Headers = r.Header.Clone()

	if r.Body != nil && r.Body != http.NoBody {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("routing: read request body: %w", err)
		}
		// Restore body for downstream handlers
		r.Body = io.NopCloser(bytes.NewReader(body))
		if len(body) > 0 {
			data.Body = mo.Some(body)
		}
	}

	return data, nil
}

// URL resolves the request data against a base URL. Path segments are
// escaped individually and joined with single slashes; a trailing slash on
// the base never produces a doubled slash in the result.
func (d *RequestData) URL(base *url.URL) *url.URL {
	resolved := *base
	resolved.Path = joinPath(base.Path, d.Path, false)
	resolved.RawPath = joinPath(base.EscapedPath(), d.Path, true)
	resolved.RawQuery = d.Query.Encode()
	return &resolved
}

// HTTPRequest converts the request data into a concrete *http.Request
// anchored at the base URL. An empty method defaults to GET.
func (d *RequestData) HTTPRequest(ctx context.Context, base *url.URL) (*http.Request, error) {
	method := d.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader = http.NoBody
	if payload, ok := d.Body.Get(); ok {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, d.URL(base).String(), body)
	if err != nil {
		return nil, err
	}

	for name, values := range d.Headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	return req, nil
}

// Clone returns a deep copy. Codecs that need to speculatively encode can
// work on a clone and discard it on failure.
func (d *RequestData) Clone() *RequestData {
	clone := NewRequestData()
	clone.Method = d.Method
	clone.Path = append([]string(nil), d.Path...)
	clone.Query = cloneValues(d.Query)
	clone.Headers = d.Headers.Clone()
	clone.Body = d.Body.Map(func(body []byte) ([]byte, bool) {
		return append([]byte(nil), body...), true
	})
	return clone
}

// splitPath splits a URL path into its non-empty segments, unescaping each.
func splitPath(path string) []string {
	segments := lo.Filter(strings.Split(path, "/"), func(segment string, _ int) bool {
		return segment != ""
	})
	return lo.Map(segments, func(segment string, _ int) string {
		unescaped, err := url.PathUnescape(segment)
		if err != nil {
			return segment
		}
		return unescaped
	})
}

// joinPath joins the base path and segments with single slashes. When escape
// is set the segments are percent-encoded, producing the raw (wire) form.
func joinPath(basePath string, segments []string, escape bool) string {
	trimmed := strings.TrimRight(basePath, "/")
	if len(segments) == 0 {
		return trimmed
	}
	parts := segments
	if escape {
		parts = lo.Map(segments, func(segment string, _ int) string {
			return url.PathEscape(segment)
		})
	}
	return trimmed + "/" + strings.Join(parts, "/")
}

func cloneValues(values url.Values) url.Values {
	clone := url.Values{}
	for key, list := range values {
		clone[key] = append([]string(nil), list...)
	}
	return clone
}
