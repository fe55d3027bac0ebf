package restcore

import "net/http"

// HttpResponse is the abstract collaborator a materialized Response is
// flushed onto; concrete server binding is out of scope for this
// module. Adapters in adapter/nethttp and adapter/fasthttp implement
// it.
type HttpResponse interface {
	SetStatus(code int)
	SetHeader(name, value string)
	Write(body []byte) error
}

// Response is the framework-internal materialized response produced
// by Endpoint.handle, before it is flushed onto an HttpResponse by a
// transport adapter. Headers preserve insertion order and are never
// silently duplicated: SetHeaderIfAbsent is what extra_headers
// injection uses, so a header already set on the response (such as
// Content-Type) always wins. Handler functions registered through On
// return only a value and an error; they receive no *Response and
// cannot set headers of their own.
type Response struct {
	Status  int
	headers []ExtraHeader
	Body    []byte
}

// NewResponse returns a 200 OK response with an empty body.
func NewResponse() *Response {
	return &Response{Status: http.StatusOK}
}

// HasHeader reports whether name has already been set on this
// response.
func (r *Response) HasHeader(name string) bool {
	for _, h := range r.headers {
		if h.Name == name {
			return true
		}
	}
	return false
}

// SetHeader sets (or replaces) a header, always taking effect. The
// slot built by On uses it to set Content-Type on success responses.
func (r *Response) SetHeader(name string, values ...[]byte) {
	for i, h := range r.headers {
		if h.Name == name {
			r.headers[i].Values = values
			return
		}
	}
	r.headers = append(r.headers, ExtraHeader{Name: name, Values: values})
}

// SetHeaderIfAbsent adds a header only when name is not already
// present. This is the rule extra_headers injection follows: it never
// overrides a header the handler already set.
func (r *Response) SetHeaderIfAbsent(name string, values [][]byte) {
	if r.HasHeader(name) {
		return
	}
	r.headers = append(r.headers, ExtraHeader{Name: name, Values: values})
}

// Headers returns the response's headers in insertion order.
func (r *Response) Headers() []ExtraHeader {
	return r.headers
}

// errorResponse materializes a *Error into a JSON Response using the
// package default codec. Used on every failure path (404, 405, 501,
// parameter-parsing failures, handler errors and response-serialization
// failures), so error bodies are always encoded with SonicCodec, even
// on a router configured with WithCodec.
func errorResponse(err *Error) *Response {
	body, encErr := SonicCodec.Encode(err)
	if encErr != nil {
		// The Error record itself is always representable as JSON;
		// this path exists only so materialization can never fail
		// silently.
		body = []byte(`{"code":500,"message":"internal error","details":"failed to serialize error"}`)
	}

	resp := NewResponse()
	resp.Status = err.Code
	resp.Body = body
	resp.SetHeader("Content-Type", []byte("application/json"))
	return resp
}
