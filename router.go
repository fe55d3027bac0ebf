package restcore

import (
	"context"
	"net/http"
	"strings"

	"github.com/rohanthewiz/restcore/consts"
	"github.com/rohanthewiz/restcore/core/ptree"
	"github.com/rohanthewiz/restcore/params"
	"go.uber.org/zap"
)

// Router is the user-facing composition object. It owns a PrefixTree
// of Endpoints and a draft Config that only takes effect when the
// router is bound or composed into a parent (see Add).
type Router struct {
	routes *ptree.Tree[*Endpoint]
	config Config
	codec  Codec
	logger *zap.Logger
}

// NewRouter returns an empty Router using the default sonic-backed
// Codec and a no-op logger. Use WithCodec/WithLogger/WithConfig to
// customize before registering routes.
func NewRouter() *Router {
	return &Router{
		routes: ptree.New[*Endpoint](),
		codec:  SonicCodec,
		logger: zap.NewNop(),
	}
}

// WithConfig sets the router's draft config, returning the router for
// chaining.
func (r *Router) WithConfig(c Config) *Router {
	r.config = c
	return r
}

// WithCodec overrides the JSON codec every handler on this router
// uses for request decoding and success-response encoding. Error
// responses are always encoded with SonicCodec.
func (r *Router) WithCodec(c Codec) *Router {
	r.codec = c
	return r
}

// WithLogger attaches a structured logger; the dispatcher emits one
// line per request through it.
func (r *Router) WithLogger(l *zap.Logger) *Router {
	r.logger = l
	return r
}

// On registers handler for method at pattern, using parser to extract
// P from the URL suffix past the pattern's static prefix. Because Go
// methods cannot introduce new type parameters beyond the receiver's,
// this lives as a package-level generic function rather than a Router
// method; On[P, R] backs both the dynamic convenience methods
// (P = params.DynamicParams) and a typed compile-time-frontend parser.
func On[P any, R any](r *Router, method, pattern string, parser params.Parser[P], handler func(context.Context, *Request[P]) (R, error)) {
	prefix, _ := params.SplitPattern(pattern)
	arity, _ := parser.ExpectedParams()

	slot := func(ctx context.Context, req HttpRequest, prefixLen int) *Response {
		parsed, err := parser.Parse(req.Path(), prefixLen)
		if err != nil {
			return errorResponse(fromParamsError(err))
		}

		request := &Request[P]{raw: req, Params: parsed, codec: r.codec}
		result, err := handler(ctx, request)
		if err != nil {
			if _, ok := err.(*params.Error); ok {
				return errorResponse(fromParamsError(err))
			}
			return errorResponse(ToError(err))
		}

		body, encErr := r.codec.Encode(result)
		if encErr != nil {
			return errorResponse(InternalError("failed to serialize response", encErr.Error()))
		}

		resp := NewResponse()
		resp.Status = http.StatusOK
		resp.SetHeader(consts.HeaderContentType, []byte(consts.MIMEJSON))
		resp.Body = body
		return resp
	}

	key := []byte(prefix)
	endpoint, _ := r.routes.Remove(key)
	if endpoint == nil {
		endpoint = newEndpoint()
	}
	endpoint.add(method, arity, pattern, slot)
	r.routes.Insert(key, endpoint)
}

func dynamicHandler(r *Router, method, pattern string, handler func(context.Context, *Request[params.DynamicParams]) (any, error)) {
	_, suffix := params.SplitPattern(pattern)
	On[params.DynamicParams, any](r, method, pattern, params.NewDynamicParser(suffix), handler)
}

// Get registers a GET handler using the dynamic parameter parser.
func (r *Router) Get(pattern string, handler func(context.Context, *Request[params.DynamicParams]) (any, error)) {
	dynamicHandler(r, consts.MethodGet, pattern, handler)
}

// Post registers a POST handler using the dynamic parameter parser.
func (r *Router) Post(pattern string, handler func(context.Context, *Request[params.DynamicParams]) (any, error)) {
	dynamicHandler(r, consts.MethodPost, pattern, handler)
}

// Put registers a PUT handler using the dynamic parameter parser.
func (r *Router) Put(pattern string, handler func(context.Context, *Request[params.DynamicParams]) (any, error)) {
	dynamicHandler(r, consts.MethodPut, pattern, handler)
}

// Patch registers a PATCH handler using the dynamic parameter parser.
func (r *Router) Patch(pattern string, handler func(context.Context, *Request[params.DynamicParams]) (any, error)) {
	dynamicHandler(r, consts.MethodPatch, pattern, handler)
}

// Delete registers a DELETE handler using the dynamic parameter parser.
func (r *Router) Delete(pattern string, handler func(context.Context, *Request[params.DynamicParams]) (any, error)) {
	dynamicHandler(r, consts.MethodDelete, pattern, handler)
}

// Head registers an explicit HEAD handler using the dynamic parameter
// parser. Most routes do not need this: Endpoint.handle already falls
// back to the GET handler when handle_head is enabled.
func (r *Router) Head(pattern string, handler func(context.Context, *Request[params.DynamicParams]) (any, error)) {
	dynamicHandler(r, consts.MethodHead, pattern, handler)
}

// Options registers an OPTIONS handler using the dynamic parameter
// parser.
func (r *Router) Options(pattern string, handler func(context.Context, *Request[params.DynamicParams]) (any, error)) {
	dynamicHandler(r, consts.MethodOptions, pattern, handler)
}

// Add composes child under prefix. Before merging, it walks every
// Endpoint in child's tree and fills any config option the child left
// unset with this router's own config — options the child already
// decided are never overridden. This happens once, at composition
// time; dispatch never consults a parent's config again, which keeps
// the hot path allocation-free with respect to config.
func (r *Router) Add(prefix string, child *Router) {
	child.routes.ForEach(func(endpoint **Endpoint) {
		(*endpoint).addConfig(r.config)
	})
	r.routes.Merge([]byte(prefix), child.routes)
}

// Routes pretty-prints every registered endpoint in lexicographic
// prefix order: one line per prefix, followed by an indented
// "METHOD pattern" line per handler slot in registration order.
func (r *Router) Routes() string {
	var b strings.Builder
	r.routes.Iter(func(key []byte, endpoint *Endpoint) bool {
		b.WriteString(string(key))
		b.WriteString("\n")
		for _, line := range endpoint.Slots() {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		return true
	})
	return b.String()
}
