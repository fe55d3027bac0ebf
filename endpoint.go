package restcore

import (
	"context"
	"strconv"
	"strings"

	"github.com/rohanthewiz/restcore/consts"
	"github.com/rohanthewiz/restcore/params"
)

// maxHandlerSlots bounds Endpoint's handler table: six slots cover the
// seven recognized methods minus the HEAD slot that is usually served
// by GET fallback instead of its own handler. Registering a seventh
// handler on one endpoint is a programming error, not a runtime
// condition to recover from.
const maxHandlerSlots = 6

// slotHandler is the uniform, type-erased callable every registered
// handler compiles down to: parse params, invoke the user handler,
// materialize the result. Built once per registration by On.
type slotHandler func(ctx context.Context, req HttpRequest, prefixLen int) *Response

type handlerSlot struct {
	method  string
	arity   int
	pattern string
	handle  slotHandler
}

// Endpoint is the value stored at each terminal of the route tree: a
// bounded set of (method, arity, handler) slots sharing one URL
// prefix, plus the config resolved for that prefix at composition
// time.
type Endpoint struct {
	slots        [maxHandlerSlots]handlerSlot
	count        int
	config       Config
	materialized MaterializedConfig
}

// newEndpoint returns an Endpoint with its config already materialized
// to defaults; addConfig/composition may still refine it before bind.
func newEndpoint() *Endpoint {
	ep := &Endpoint{}
	ep.materialized = ep.config.Materialize()
	return ep
}

// add appends a new handler slot. Panics if the endpoint already holds
// maxHandlerSlots handlers — an overflow the spec treats as fatal
// misuse, never a dispatch-time condition.
func (e *Endpoint) add(method string, arity int, pattern string, handle slotHandler) {
	if e.count >= maxHandlerSlots {
		panic("restcore: endpoint does not support more than " + strconv.Itoa(maxHandlerSlots) + " handlers for a single prefix")
	}
	e.slots[e.count] = handlerSlot{method: method, arity: arity, pattern: pattern, handle: handle}
	e.count++
}

// addConfig fills any option this endpoint's config left unset from
// parent, re-materializing afterward. Called once per endpoint when a
// Router is composed into a parent via Router.Add; never consulted
// again at dispatch time.
func (e *Endpoint) addConfig(parent Config) {
	e.config = e.config.Add(parent)
	e.materialized = e.config.Materialize()
}

// observedArity implements the trailing-slash-significant counting
// rule from spec.md §9: an empty suffix is arity 0; otherwise it is
// the count of '/'-separated tokens, including empty ones from a
// trailing slash.
func observedArity(path string, prefixLen int) int {
	suffix := path[prefixLen:]
	if suffix == "" {
		return 0
	}
	suffix = strings.TrimPrefix(suffix, "/")
	return len(strings.Split(suffix, "/"))
}

// handle implements spec.md §4.3's dispatch algorithm: match on
// (method, arity), fall back to GET for HEAD when configured, else
// report 404 or 405 as appropriate, then apply extra_headers.
func (e *Endpoint) handle(ctx context.Context, method string, req HttpRequest, prefixLen int) *Response {
	arity := observedArity(req.Path(), prefixLen)

	wrongArity := false
	for i := 0; i < e.count; i++ {
		s := e.slots[i]
		if s.method != method {
			continue
		}
		if s.arity == arity {
			resp := s.handle(ctx, req, prefixLen)
			e.injectExtraHeaders(resp)
			return resp
		}
		wrongArity = true
	}

	if wrongArity {
		resp := errorResponse(NotFoundError("the prefix matched, but no handler accepts this many path segments"))
		e.injectExtraHeaders(resp)
		return resp
	}

	if method == consts.MethodHead && e.materialized.HandleHead {
		for i := 0; i < e.count; i++ {
			s := e.slots[i]
			if s.method == consts.MethodGet && s.arity == arity {
				resp := s.handle(ctx, req, prefixLen)
				resp.Body = nil
				e.injectExtraHeaders(resp)
				return resp
			}
		}
	}

	resp := errorResponse(MethodNotAllowedError(
		"Method "+method+" is not allowed.",
		"Allowed methods: "+e.allowedMethods(),
	))
	e.injectExtraHeaders(resp)
	return resp
}

func (e *Endpoint) allowedMethods() string {
	var methods []string
	for i := 0; i < e.count; i++ {
		methods = append(methods, e.slots[i].method)
	}
	return strings.Join(methods, ",")
}

func (e *Endpoint) injectExtraHeaders(resp *Response) {
	for _, h := range e.materialized.ExtraHeaders {
		resp.SetHeaderIfAbsent(h.Name, h.Values)
	}
}

// Slots returns "METHOD pattern" for each registered handler, in
// registration order, for Router.Routes to render one indented line
// per slot.
func (e *Endpoint) Slots() []string {
	if e.count == 0 {
		return []string{"empty handler"}
	}
	lines := make([]string, 0, e.count)
	for i := 0; i < e.count; i++ {
		lines = append(lines, e.slots[i].method+" "+e.slots[i].pattern)
	}
	return lines
}

// fromParamsError maps a params.Error to the wire Error record per
// spec.md §4.2's exact taxonomy.
func fromParamsError(err error) *Error {
	pe, ok := err.(*params.Error)
	if !ok {
		return InternalError("internal parameter error", err.Error())
	}

	switch pe.Kind {
	case params.KindUnknownParameter:
		return InternalError(
			"Tried to access non-existent parameter. That's most likely a bug in the handler.",
			pe.Param,
		)
	case params.KindInvalidType:
		return BadRequestError(
			"Error while parsing parameter \""+pe.Param+"\" from \""+pe.Path+"\"",
			pe.Detail,
		)
	case params.KindNotFound:
		return NotFoundError("The resource exists, but expects a parameter.")
	case params.KindInvalidSegment:
		return NotFoundError("The resource exists, but the path is invalid. Got \"" + pe.Got + "\", expected \"" + pe.Want + "\"")
	default:
		return InternalError("internal parameter error", err.Error())
	}
}
