package restcore

import (
	"strings"

	"github.com/rohanthewiz/restcore/consts"
)

// HttpRequest is the abstract collaborator the core consumes; the
// transport (raw socket parsing, TLS, connection handling) that
// produces one is out of scope for this module. Adapters in
// adapter/nethttp and adapter/fasthttp implement it.
type HttpRequest interface {
	Method() string
	Path() string
	Header(name string) string
	// Body returns the full request body. JSON deserialization is
	// defined as "await the full body, then parse" — no streaming.
	Body() ([]byte, error)
}

// Request wraps the underlying HttpRequest together with its parsed
// path parameters, exposed to handlers by reference. The body is
// consumable once per request via DecodeJSON.
type Request[P any] struct {
	raw    HttpRequest
	Params P
	codec  Codec
}

// Raw returns the underlying transport-level request.
func (r *Request[P]) Raw() HttpRequest {
	return r.raw
}

// DecodeJSON reads the full request body and decodes it into v using
// the router's configured Codec. A Content-Type other than
// application/json (when the header is present at all) is treated as
// a bad request without attempting to parse the body.
func (r *Request[P]) DecodeJSON(v any) error {
	if ct := r.raw.Header(consts.HeaderContentType); ct != "" {
		if !strings.HasPrefix(ct, consts.MIMEJSON) {
			return BadRequestError("unexpected content type", "expected "+consts.MIMEJSON+", got "+ct)
		}
	}

	body, err := r.raw.Body()
	if err != nil {
		return BadRequestError("failed to read request body", err.Error())
	}

	if err := r.codec.Decode(body, v); err != nil {
		return BadRequestError("failed to parse request body", err.Error())
	}
	return nil
}
